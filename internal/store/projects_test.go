package store

import (
	"testing"
	"time"
)

func sampleProject(name string, active bool) ProjectInfo {
	return ProjectInfo{
		Name:       name,
		Location:   "1 Main St",
		Client:     "Acme",
		Supervisor: "Ito",
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local),
		IsActive:   active,
	}
}

// ============================================================
// Project CRUD
// ============================================================

func TestCreateProject(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreateProject(sampleProject("Site A", true))
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Fatal("expected a generated identity")
	}

	got := s.GetProjectByID(p.ID)
	if got == nil || got.Name != "Site A" {
		t.Fatalf("project not stored: %+v", got)
	}
}

func TestUpdateProjectShallowMerge(t *testing.T) {
	s := newTestStore(t)
	p, _ := s.CreateProject(sampleProject("Site A", true))

	name := "Site A Phase 2"
	inactive := false
	if err := s.UpdateProject(p.ID, ProjectPatch{Name: &name, IsActive: &inactive}); err != nil {
		t.Fatal(err)
	}

	got := s.GetProjectByID(p.ID)
	if got.Name != "Site A Phase 2" || got.IsActive {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Client != "Acme" || got.Supervisor != "Ito" {
		t.Fatalf("unpatched fields changed: %+v", got)
	}
}

func TestUpdateProjectUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.CreateProject(sampleProject("Site A", true))

	name := "nope"
	if err := s.UpdateProject("missing", ProjectPatch{Name: &name}); err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if s.Projects()[0].Name != "Site A" {
		t.Fatal("collection changed on unknown id")
	}
}

func TestDeleteProject(t *testing.T) {
	s := newTestStore(t)
	p, _ := s.CreateProject(sampleProject("Site A", true))

	if err := s.DeleteProject(p.ID); err != nil {
		t.Fatal(err)
	}
	if s.GetProjectByID(p.ID) != nil {
		t.Fatal("deleted project still present")
	}

	if err := s.DeleteProject("missing"); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteProjectDoesNotCascade(t *testing.T) {
	s := newTestStore(t)
	p, _ := s.CreateProject(sampleProject("Site A", true))
	r, _ := s.CreateReport(sampleReport("Site A", time.Now()))

	s.DeleteProject(p.ID)

	got := s.GetReportByID(r.ID)
	if got == nil || got.ProjectName != "Site A" {
		t.Fatal("reports must survive their project's deletion")
	}
}

func TestGetActiveProjects(t *testing.T) {
	s := newTestStore(t)
	s.CreateProject(sampleProject("Active 1", true))
	s.CreateProject(sampleProject("Done", false))
	s.CreateProject(sampleProject("Active 2", true))

	got := s.GetActiveProjects()
	if len(got) != 2 {
		t.Fatalf("expected 2 active projects, got %d", len(got))
	}
	for _, p := range got {
		if !p.IsActive {
			t.Fatalf("inactive project leaked: %+v", p)
		}
	}
}

// ============================================================
// Settings
// ============================================================

func TestUpdateSettingsShallowMerge(t *testing.T) {
	s := newTestStore(t)

	reporter := "Sato"
	if err := s.UpdateSettings(SettingsPatch{DefaultReporter: &reporter}); err != nil {
		t.Fatal(err)
	}

	got := s.Settings()
	if got.DefaultReporter != "Sato" {
		t.Fatalf("patch not applied: %+v", got)
	}
	// Untouched fields keep their defaults.
	if !got.Notifications.DailyReminder || got.Notifications.ReminderTime != "08:00" {
		t.Fatalf("unpatched notifications changed: %+v", got.Notifications)
	}
}

func TestUpdateSettingsReplacesNotificationsWholesale(t *testing.T) {
	s := newTestStore(t)

	n := NotificationSettings{WeeklyReport: true}
	if err := s.UpdateSettings(SettingsPatch{Notifications: &n}); err != nil {
		t.Fatal(err)
	}

	got := s.Settings().Notifications
	if got.DailyReminder || got.ReminderTime != "" || !got.WeeklyReport {
		t.Fatalf("nested settings must be replaced, not deep-merged: %+v", got)
	}
}

func TestUpdateSettingsFavoriteTemplates(t *testing.T) {
	s := newTestStore(t)

	templates := []string{"demolition day", "concrete pour"}
	if err := s.UpdateSettings(SettingsPatch{FavoriteTemplates: &templates}); err != nil {
		t.Fatal(err)
	}
	got := s.Settings().FavoriteTemplates
	if len(got) != 2 || got[0] != "demolition day" {
		t.Fatalf("templates not replaced: %v", got)
	}
}
