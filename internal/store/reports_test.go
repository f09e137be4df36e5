package store

import (
	"testing"
	"time"
)

// ============================================================
// CreateReport
// ============================================================

func TestCreateReport(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	setClock(s, at)

	r, err := s.CreateReport(sampleReport("Site A", at))
	if err != nil {
		t.Fatal(err)
	}
	if r.ID == "" {
		t.Fatal("expected a generated identity")
	}
	if !r.CreatedAt.Equal(r.UpdatedAt) {
		t.Fatalf("createdAt != updatedAt on a fresh report: %v vs %v", r.CreatedAt, r.UpdatedAt)
	}
	if !r.CreatedAt.Equal(at) {
		t.Fatalf("createdAt should come from the clock: %v", r.CreatedAt)
	}

	cur := s.CurrentReport()
	if cur == nil || cur.ID != r.ID {
		t.Fatal("created report should become current")
	}
}

func TestCreateReportUniqueIdentities(t *testing.T) {
	s := newTestStore(t)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		r, err := s.CreateReport(sampleReport("Site A", time.Now()))
		if err != nil {
			t.Fatal(err)
		}
		if seen[r.ID] {
			t.Fatalf("duplicate identity %q", r.ID)
		}
		seen[r.ID] = true
	}
}

// ============================================================
// UpdateReport
// ============================================================

func TestUpdateReportShallowMerge(t *testing.T) {
	s := newTestStore(t)
	t0 := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	setClock(s, t0)
	r, _ := s.CreateReport(sampleReport("Site A", t0))

	setClock(s, t0.Add(time.Minute))
	notes := "poured foundation"
	progress := Progress{Planned: 60, Actual: 55}
	if err := s.UpdateReport(r.ID, ReportPatch{Notes: &notes, Progress: &progress}); err != nil {
		t.Fatal(err)
	}

	got := s.GetReportByID(r.ID)
	if got.Notes != "poured foundation" {
		t.Fatalf("patched field not applied: %q", got.Notes)
	}
	if got.Progress.Actual != 55 {
		t.Fatalf("nested struct should be replaced wholesale: %+v", got.Progress)
	}
	// Untouched fields survive.
	if got.Weather != "sunny" || got.Reporter != "Sato" {
		t.Fatalf("unpatched fields changed: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("updatedAt should advance: %v vs %v", got.UpdatedAt, got.CreatedAt)
	}
	if !got.CreatedAt.Equal(r.CreatedAt) {
		t.Fatal("createdAt must never change on update")
	}
}

func TestUpdateReportReplacesNestedWholesale(t *testing.T) {
	s := newTestStore(t)
	r, _ := s.CreateReport(sampleReport("Site A", time.Now()))

	hours := WorkHours{Start: "07:00"}
	s.UpdateReport(r.ID, ReportPatch{WorkHours: &hours})

	got := s.GetReportByID(r.ID)
	if got.WorkHours.End != "" {
		t.Fatalf("nested WorkHours must be replaced, not deep-merged: %+v", got.WorkHours)
	}
}

func TestUpdateReportUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.CreateReport(sampleReport("Site A", time.Now()))

	notes := "nope"
	if err := s.UpdateReport("missing", ReportPatch{Notes: &notes}); err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if got := len(s.GetReportSummaries()); got != 1 {
		t.Fatalf("collection changed on unknown id: %d reports", got)
	}
}

func TestUpdateReportRefreshesCurrent(t *testing.T) {
	s := newTestStore(t)
	r, _ := s.CreateReport(sampleReport("Site A", time.Now()))

	notes := "updated"
	s.UpdateReport(r.ID, ReportPatch{Notes: &notes})

	cur := s.CurrentReport()
	if cur == nil || cur.Notes != "updated" {
		t.Fatalf("current report should be refreshed: %+v", cur)
	}
}

// ============================================================
// DeleteReport
// ============================================================

func TestDeleteReport(t *testing.T) {
	s := newTestStore(t)
	r, _ := s.CreateReport(sampleReport("Site A", time.Now()))

	if err := s.DeleteReport(r.ID); err != nil {
		t.Fatal(err)
	}
	if s.GetReportByID(r.ID) != nil {
		t.Fatal("deleted report still present")
	}
	if s.CurrentReport() != nil {
		t.Fatal("deleting the current report should clear it")
	}
}

func TestDeleteReportUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.CreateReport(sampleReport("Site A", time.Now()))

	if err := s.DeleteReport("missing"); err != nil {
		t.Fatal(err)
	}
	if got := len(s.GetReportSummaries()); got != 1 {
		t.Fatalf("expected 1 report, got %d", got)
	}
}

func TestDeleteReportKeepsOtherCurrent(t *testing.T) {
	s := newTestStore(t)
	r1, _ := s.CreateReport(sampleReport("Site A", time.Now()))
	r2, _ := s.CreateReport(sampleReport("Site B", time.Now()))

	s.DeleteReport(r1.ID)
	cur := s.CurrentReport()
	if cur == nil || cur.ID != r2.ID {
		t.Fatal("deleting a non-current report must not clear current")
	}
}

// ============================================================
// Queries
// ============================================================

func TestGetReportsByProject(t *testing.T) {
	s := newTestStore(t)
	s.CreateReport(sampleReport("Site A", time.Now()))
	s.CreateReport(sampleReport("Site B", time.Now()))
	s.CreateReport(sampleReport("Site A", time.Now()))

	got := s.GetReportsByProject("Site A")
	if len(got) != 2 {
		t.Fatalf("expected 2 reports for Site A, got %d", len(got))
	}
	for _, r := range got {
		if r.ProjectName != "Site A" {
			t.Fatalf("wrong project in result: %q", r.ProjectName)
		}
	}
}

func TestGetRecentReports(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		s.CreateReport(sampleReport("Site A", base.AddDate(0, 0, i)))
	}

	got := s.GetRecentReports(3)
	if len(got) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Fatal("reports should be ordered by date descending")
		}
	}
	if !got[0].Date.Equal(base.AddDate(0, 0, 4)) {
		t.Fatalf("newest report should come first, got %v", got[0].Date)
	}
}

func TestGetRecentReportsDefaultLimit(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < 15; i++ {
		s.CreateReport(sampleReport("Site A", base.AddDate(0, 0, i)))
	}

	if got := len(s.GetRecentReports(0)); got != 10 {
		t.Fatalf("default limit should be 10, got %d", got)
	}
}

func TestGetRecentReportsDoesNotReorderStore(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	// Insert newest first so a sorted copy differs from store order.
	s.CreateReport(sampleReport("newest", base.AddDate(0, 0, 2)))
	s.CreateReport(sampleReport("oldest", base))
	s.CreateReport(sampleReport("middle", base.AddDate(0, 0, 1)))

	first := s.GetRecentReports(10)
	second := s.GetRecentReports(10)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatal("repeated query should yield the same order")
		}
	}

	// Store order (insertion order) must be untouched by the sort.
	byProject := s.GetReportsByProject("newest")
	if len(byProject) != 1 {
		t.Fatal("store contents changed")
	}
	summaries := s.GetReportSummaries()
	if summaries[0].ProjectName != "newest" || summaries[1].ProjectName != "oldest" {
		t.Fatalf("backing collection was reordered: %v, %v", summaries[0].ProjectName, summaries[1].ProjectName)
	}
}

func TestGetTodayReport(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	setClock(s, at)

	if s.GetTodayReport() != nil {
		t.Fatal("empty store should have no today report")
	}

	s.CreateReport(sampleReport("Site A", at.AddDate(0, 0, -1)))
	if s.GetTodayReport() != nil {
		t.Fatal("yesterday's report must not match today")
	}

	// Same calendar day, different hour.
	r, _ := s.CreateReport(sampleReport("Site A", time.Date(2024, 3, 15, 7, 0, 0, 0, time.Local)))
	got := s.GetTodayReport()
	if got == nil || got.ID != r.ID {
		t.Fatal("expected the report dated today")
	}
}

func TestGetTodayReportReturnsFirstMatch(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	setClock(s, at)

	r1, _ := s.CreateReport(sampleReport("Site A", at))
	s.CreateReport(sampleReport("Site B", at))

	got := s.GetTodayReport()
	if got == nil || got.ID != r1.ID {
		t.Fatal("duplicate same-day reports: first in store order wins")
	}
}

func TestFilterReports(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	s.CreateReport(sampleReport("Site A", base))
	s.CreateReport(sampleReport("Site B", base.AddDate(0, 0, 5)))
	s.CreateReport(sampleReport("Site A", base.AddDate(0, 0, 10)))

	if got := len(s.FilterReports(ReportFilter{})); got != 3 {
		t.Fatalf("zero filter should match all, got %d", got)
	}
	if got := len(s.FilterReports(ReportFilter{ProjectName: "Site A"})); got != 2 {
		t.Fatalf("project filter: expected 2, got %d", got)
	}

	from := base.AddDate(0, 0, 3)
	to := base.AddDate(0, 0, 8)
	got := s.FilterReports(ReportFilter{From: &from, To: &to})
	if len(got) != 1 || got[0].ProjectName != "Site B" {
		t.Fatalf("date filter: %+v", got)
	}
}

// ============================================================
// Summaries
// ============================================================

func TestGetReportSummaries(t *testing.T) {
	s := newTestStore(t)
	draft := sampleReport("Site A", time.Now())
	draft.Concerns = []Concern{{Description: "crane access", RiskLevel: RiskHigh}}
	draft.Photos = []Photo{{Filename: "a.jpg"}, {Filename: "b.jpg"}}
	r, _ := s.CreateReport(draft)

	sums := s.GetReportSummaries()
	if len(sums) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(sums))
	}
	sum := sums[0]
	if sum.ID != r.ID || sum.ProjectName != "Site A" {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.Status != StatusSubmitted {
		t.Fatalf("status is a fixed placeholder, got %q", sum.Status)
	}
	if !sum.HasConcerns || sum.HasChanges || sum.HasRequests {
		t.Fatalf("presence flags wrong: %+v", sum)
	}
	if sum.PhotoCount != 2 {
		t.Fatalf("expected 2 photos, got %d", sum.PhotoCount)
	}
}

// ============================================================
// Nested record helpers
// ============================================================

func TestAddChange(t *testing.T) {
	s := newTestStore(t)
	r, _ := s.CreateReport(sampleReport("Site A", time.Now()))

	err := s.AddChange(r.ID, ChangeRecord{
		Category:    ChangeEquipment,
		Description: "crane swapped for a smaller unit",
		Impact:      ImpactCaution,
		ReportedBy:  "Sato",
	})
	if err != nil {
		t.Fatal(err)
	}

	got := s.GetReportByID(r.ID)
	if len(got.Changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(got.Changes))
	}
	c := got.Changes[0]
	if c.ID == "" {
		t.Fatal("change should get a generated identity")
	}
	if c.Timestamp.IsZero() {
		t.Fatal("change should get a timestamp")
	}
}

func TestAddConcernDefaultsStatus(t *testing.T) {
	s := newTestStore(t)
	r, _ := s.CreateReport(sampleReport("Site A", time.Now()))

	s.AddConcern(r.ID, Concern{
		Category:    ConcernSafety,
		Description: "missing guardrail on level 2",
		RiskLevel:   RiskUrgent,
	})

	got := s.GetReportByID(r.ID)
	if got.Concerns[0].Status != ConcernNew {
		t.Fatalf("new concerns default to %q, got %q", ConcernNew, got.Concerns[0].Status)
	}
}

func TestAddPhotoLinksReport(t *testing.T) {
	s := newTestStore(t)
	r, _ := s.CreateReport(sampleReport("Site A", time.Now()))

	s.AddPhoto(r.ID, Photo{Filename: "wall.jpg", Category: PhotoIssue})

	got := s.GetReportByID(r.ID)
	if len(got.Photos) != 1 {
		t.Fatalf("expected 1 photo, got %d", len(got.Photos))
	}
	if got.Photos[0].AssociatedReportID != r.ID {
		t.Fatal("photo should be linked back to its report")
	}
}

func TestAddCommunication(t *testing.T) {
	s := newTestStore(t)
	r, _ := s.CreateReport(sampleReport("Site A", time.Now()))

	s.AddCommunication(r.ID, Communication{
		Type:          CommClient,
		Content:       "confirmed the revised schedule",
		ContactPerson: "Yamada",
		Method:        MethodPhone,
	})

	got := s.GetReportByID(r.ID)
	if len(got.Communications) != 1 {
		t.Fatalf("expected 1 communication, got %d", len(got.Communications))
	}
	if got.Communications[0].ID == "" || got.Communications[0].Timestamp.IsZero() {
		t.Fatal("communication should be stamped with identity and timestamp")
	}
}

func TestAddRecordUnknownReportIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddChange("missing", ChangeRecord{Description: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddConcern("missing", Concern{Description: "x"}); err != nil {
		t.Fatal(err)
	}
}

func TestSetCurrentReport(t *testing.T) {
	s := newTestStore(t)
	r1, _ := s.CreateReport(sampleReport("Site A", time.Now()))
	s.CreateReport(sampleReport("Site B", time.Now()))

	s.SetCurrentReport(r1.ID)
	cur := s.CurrentReport()
	if cur == nil || cur.ID != r1.ID {
		t.Fatal("current not switched")
	}

	s.SetCurrentReport("missing")
	if s.CurrentReport() != nil {
		t.Fatal("unknown id should clear the current report")
	}
}

// ============================================================
// End-to-end scenario
// ============================================================

func TestProjectReportLifecycle(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreateProject(ProjectInfo{
		Name:       "Site A",
		Client:     "Acme",
		Location:   "1 Main St",
		Supervisor: "Ito",
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local),
		IsActive:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Fatal("project should get a generated id")
	}
	if len(s.Projects()) != 1 {
		t.Fatal("expected 1 project")
	}

	r, err := s.CreateReport(sampleReport("Site A", time.Now()))
	if err != nil {
		t.Fatal(err)
	}

	today := s.GetTodayReport()
	if today == nil || today.ID != r.ID {
		t.Fatal("today lookup should find the new report")
	}

	progress := Progress{Planned: 50, Actual: 40}
	if err := s.UpdateReport(r.ID, ReportPatch{Progress: &progress}); err != nil {
		t.Fatal(err)
	}
	if got := s.GetReportByID(r.ID); got.Progress.Actual != 40 {
		t.Fatalf("progress update lost: %+v", got.Progress)
	}

	// Deleting the project must not cascade to its reports.
	if err := s.DeleteProject(p.ID); err != nil {
		t.Fatal(err)
	}
	if len(s.Projects()) != 0 {
		t.Fatal("project should be gone")
	}
	if got := s.GetReportByID(r.ID); got == nil || got.ProjectName != "Site A" {
		t.Fatal("report must survive its project's deletion unchanged")
	}
}
