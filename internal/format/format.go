// Package format renders metrics and times for the TUI and CLI.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/lockd/internal/constants"
)

// Percent renders a 0..1 ratio as a whole percentage, clamping out-of-range input.
func Percent(ratio float64) string {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	ratio = math.Max(0, math.Min(1, ratio))
	return fmt.Sprintf("%.0f%%", ratio*100)
}

func Decimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func Weight(lb float64) string {
	return fmt.Sprintf("%.0f lb", lb)
}

func Volume(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// CompactCount groups thousands, e.g. 12,480.
func CompactCount(n int) string {
	return humanize.Comma(int64(n))
}

// TimeRange renders "07:00-07:40".
func TimeRange(start, end time.Time) string {
	return start.Format(constants.TimeFormat) + "-" + end.Format(constants.TimeFormat)
}

// Minutes renders a duration in minutes, e.g. "70m" or "2h 10m".
func Minutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	if total%60 == 0 {
		return fmt.Sprintf("%dh", total/60)
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// Ago renders t relative to now, e.g. "3 hours ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
