package cli

import (
	"fmt"

	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/format"
)

type HistoryCmd struct {
	Format string `help:"Output format." enum:"table,yaml" default:"table"`
	Limit  int    `help:"Show at most this many days (0 for all)." default:"7"`
}

type historyRow struct {
	Date      string `yaml:"date"`
	Completed int    `yaml:"completed"`
	Total     int    `yaml:"total"`
	Rate      string `yaml:"rate"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	history := ctx.Store.History()
	if c.Limit > 0 && len(history) > c.Limit {
		history = history[:c.Limit]
	}

	rows := make([]historyRow, 0, len(history))
	for _, s := range history {
		rows = append(rows, historyRow{
			Date:      s.Date.Format(constants.DateFormat),
			Completed: s.CompletedTasks,
			Total:     s.TotalTasks,
			Rate:      format.Percent(s.CompletionRate()),
		})
	}

	w := ctx.out()
	if c.Format == "yaml" {
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("encoding history: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No history yet.")
		return nil
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Date"), bold("Done"), bold("Total"), bold("Rate"))
	for _, r := range rows {
		tbl.AddRow(r.Date, r.Completed, r.Total, r.Rate)
	}
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	tbl.RightAlign(3)
	fmt.Fprintln(w, tbl)
	return nil
}
