package models

// DayTemplate is a reusable blueprint of time blocks. It never references live tasks.
type DayTemplate struct {
	ID    string         `json:"id" yaml:"id"`
	Name  string         `json:"name" yaml:"name"`
	Tasks []TemplateTask `json:"tasks" yaml:"tasks"`
}

type TemplateTask struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Category        string   `json:"category" yaml:"category"`
	StartHour       int      `json:"start_hour" yaml:"start_hour"`
	StartMinute     int      `json:"start_minute" yaml:"start_minute"`
	DurationMinutes int      `json:"duration_minutes" yaml:"duration_minutes"`
	Priority        Priority `json:"priority" yaml:"priority"`
	Source          Source   `json:"source" yaml:"source"`
}

// TotalMinutes sums the durations of every block in the template.
func (t DayTemplate) TotalMinutes() int {
	total := 0
	for _, tt := range t.Tasks {
		total += tt.DurationMinutes
	}
	return total
}
