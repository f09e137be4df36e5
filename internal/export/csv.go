package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/genbadev/genba/internal/store"
)

// ToCSV writes the given report set to path, one row per report with
// nested lists flattened to counts.
func ToCSV(reports []store.DailyReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"ID", "Date", "Project", "Location", "Weather", "Temperature",
		"Reporter", "Supervisor", "Work Hours", "Planned %", "Actual %",
		"Changes", "Requests", "Concerns", "Photos", "Notes",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range reports {
		row := []string{
			r.ID,
			r.Date.Local().Format("2006-01-02"),
			r.ProjectName,
			r.Location,
			r.Weather,
			formatTemp(r.Temperature),
			r.Reporter,
			r.Supervisor,
			formatHours(r.WorkHours),
			fmt.Sprintf("%d", r.Progress.Planned),
			fmt.Sprintf("%d", r.Progress.Actual),
			fmt.Sprintf("%d", len(r.Changes)),
			fmt.Sprintf("%d", len(r.ClientRequests)),
			fmt.Sprintf("%d", len(r.Concerns)),
			fmt.Sprintf("%d", len(r.Photos)),
			r.Notes,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatTemp(t float64) string {
	return fmt.Sprintf("%.1f°C", t)
}

func formatHours(h store.WorkHours) string {
	if h.Start == "" && h.End == "" {
		return ""
	}
	return h.Start + "–" + h.End
}
