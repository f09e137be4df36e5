package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/genbadev/genba/internal/store"
)

type jsonExport struct {
	ExportedAt string       `json:"exported_at"`
	Count      int          `json:"count"`
	Reports    []jsonReport `json:"reports"`
}

type jsonReport struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Project      string `json:"project"`
	Location     string `json:"location"`
	Weather      string `json:"weather"`
	Temperature  string `json:"temperature"`
	Reporter     string `json:"reporter"`
	Supervisor   string `json:"supervisor"`
	WorkHours    string `json:"work_hours"`
	Planned      int    `json:"progress_planned"`
	Actual       int    `json:"progress_actual"`
	WorkItems    int    `json:"work_items"`
	Changes      int    `json:"changes"`
	Requests     int    `json:"client_requests"`
	Feedback     int    `json:"worker_feedback"`
	Concerns     int    `json:"concerns"`
	Photos       int    `json:"photos"`
	Notes        string `json:"notes,omitempty"`
	TomorrowPlan string `json:"tomorrow_plan,omitempty"`
}

// ToJSON writes the given report set to path as an indented JSON envelope.
func ToJSON(reports []store.DailyReport, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(reports),
	}

	for _, r := range reports {
		export.Reports = append(export.Reports, jsonReport{
			ID:           r.ID,
			Date:         r.Date.Local().Format("2006-01-02"),
			Project:      r.ProjectName,
			Location:     r.Location,
			Weather:      r.Weather,
			Temperature:  formatTemp(r.Temperature),
			Reporter:     r.Reporter,
			Supervisor:   r.Supervisor,
			WorkHours:    formatHours(r.WorkHours),
			Planned:      r.Progress.Planned,
			Actual:       r.Progress.Actual,
			WorkItems:    len(r.WorkCompleted),
			Changes:      len(r.Changes),
			Requests:     len(r.ClientRequests),
			Feedback:     len(r.WorkerFeedback),
			Concerns:     len(r.Concerns),
			Photos:       len(r.Photos),
			Notes:        r.Notes,
			TomorrowPlan: r.TomorrowPlan,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
