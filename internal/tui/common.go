package tui

import (
	"time"

	"github.com/genbadev/genba/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewReports
	viewSiteLog
	viewProjects
	viewSettings
)

var viewNames = []string{"Dashboard", "Reports", "Site Log", "Projects", "Settings"}

// --- Messages ---

type reportCreatedMsg struct {
	report *store.DailyReport
}

type reportDeletedMsg struct{}

type projectSavedMsg struct{}

type recordAddedMsg struct {
	kind string // "change", "request", "feedback", "concern", "photo"
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

func formatDateLong(t time.Time) string {
	return t.Local().Format("Mon, Jan 02 2006")
}

// weatherChoices are the options offered by the report form.
var weatherChoices = []string{"sunny", "cloudy", "rain", "heavy rain", "snow", "windy"}

func boolMark(b bool) string {
	if b {
		return "●"
	}
	return " "
}

func clampCursor(cursor, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
