package assessment

import (
	"fmt"
	"strings"

	"example.com/wellbeing-wheel/backend/internal/catalog"
)

const (
	scorePlaceholder = "N/A"
	datePlaceholder  = "not set"
	reportDateLayout = "02/01/2006"
)

type Report struct {
	Results    string `json:"assessment_results"`
	ActionPlan string `json:"action_plan"`
}

// BuildReport собирает текстовый отчет: результаты по пунктам и план действий.
func (r *Record) BuildReport() Report {
	return Report{
		Results:    r.buildResults(),
		ActionPlan: r.buildActionPlan(),
	}
}

func (r *Record) buildResults() string {
	var b strings.Builder
	for _, item := range catalog.Items() {
		score := r.scoreFor(item.ID)

		current := scorePlaceholder
		desired := scorePlaceholder
		difference := scorePlaceholder
		if score != nil && score.Current != nil {
			current = fmt.Sprintf("%d", *score.Current)
		}
		if score != nil && score.Desired != nil {
			desired = fmt.Sprintf("%d", *score.Desired)
		}
		if score != nil && score.Current != nil && score.Desired != nil {
			difference = fmt.Sprintf("%d", *score.Desired-*score.Current)
		}

		fmt.Fprintf(&b, "%s: current %s, desired %s, difference %s\n", item.Name, current, desired, difference)
	}
	return b.String()
}

func (r *Record) buildActionPlan() string {
	var b strings.Builder
	for _, improvement := range r.Improvements {
		name := improvement.ItemID
		if item, ok := catalog.ItemByID(improvement.ItemID); ok {
			name = item.Name
		}

		fmt.Fprintf(&b, "%s:\n", name)
		for _, action := range improvement.Actions {
			if action.Text == "" {
				continue
			}

			date := datePlaceholder
			if action.DueDate != nil {
				date = action.DueDate.Format(reportDateLayout)
			}
			fmt.Fprintf(&b, "  - %s (%s)\n", action.Text, date)
		}
	}
	return b.String()
}
