package store

import (
	"sort"
	"time"
)

// ReportPatch is a partial update for a report. Nil fields are left alone;
// set fields replace the existing value wholesale. This is a shallow merge
// on purpose: a patched WorkHours or Progress overwrites the whole nested
// struct, and a patched list replaces the whole list. Callers that want to
// change one element must supply the full nested value.
type ReportPatch struct {
	Date           *time.Time
	ProjectName    *string
	Location       *string
	Weather        *string
	Temperature    *float64
	Reporter       *string
	Supervisor     *string
	WorkHours      *WorkHours
	WorkCompleted  *[]WorkItem
	Progress       *Progress
	Materials      *[]Material
	Workers        *[]Worker
	Changes        *[]ChangeRecord
	ClientRequests *[]ClientRequest
	WorkerFeedback *[]WorkerFeedback
	Concerns       *[]Concern
	Photos         *[]Photo
	TomorrowPlan   *string
	Communications *[]Communication
	Notes          *string
}

func (p ReportPatch) apply(r *DailyReport) {
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.ProjectName != nil {
		r.ProjectName = *p.ProjectName
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Weather != nil {
		r.Weather = *p.Weather
	}
	if p.Temperature != nil {
		r.Temperature = *p.Temperature
	}
	if p.Reporter != nil {
		r.Reporter = *p.Reporter
	}
	if p.Supervisor != nil {
		r.Supervisor = *p.Supervisor
	}
	if p.WorkHours != nil {
		r.WorkHours = *p.WorkHours
	}
	if p.WorkCompleted != nil {
		r.WorkCompleted = *p.WorkCompleted
	}
	if p.Progress != nil {
		r.Progress = *p.Progress
	}
	if p.Materials != nil {
		r.Materials = *p.Materials
	}
	if p.Workers != nil {
		r.Workers = *p.Workers
	}
	if p.Changes != nil {
		r.Changes = *p.Changes
	}
	if p.ClientRequests != nil {
		r.ClientRequests = *p.ClientRequests
	}
	if p.WorkerFeedback != nil {
		r.WorkerFeedback = *p.WorkerFeedback
	}
	if p.Concerns != nil {
		r.Concerns = *p.Concerns
	}
	if p.Photos != nil {
		r.Photos = *p.Photos
	}
	if p.TomorrowPlan != nil {
		r.TomorrowPlan = *p.TomorrowPlan
	}
	if p.Communications != nil {
		r.Communications = *p.Communications
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

// CreateReport stores r with a fresh identity and createdAt == updatedAt,
// makes it the current report, and persists. The store does no validation;
// callers validate before they get here. The returned error is only ever a
// persistence failure — the in-memory state is committed either way.
func (s *Store) CreateReport(r DailyReport) (*DailyReport, error) {
	s.mu.Lock()
	now := s.now()
	r.ID = s.newID()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.reports = append(s.reports, r)
	cur := r
	s.current = &cur
	err := s.save()
	s.mu.Unlock()

	s.notify()
	return &r, err
}

// UpdateReport shallow-merges patch over the report with the given id and
// bumps updatedAt. An unknown id is a silent no-op. The current report is
// refreshed identically when it is the one updated.
func (s *Store) UpdateReport(id string, patch ReportPatch) error {
	s.mu.Lock()
	idx := s.reportIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	patch.apply(&s.reports[idx])
	s.reports[idx].UpdatedAt = s.now()
	if s.current != nil && s.current.ID == id {
		cur := s.reports[idx]
		s.current = &cur
	}
	err := s.save()
	s.mu.Unlock()

	s.notify()
	return err
}

// DeleteReport removes the report with the given id, clearing the current
// report if it was the one deleted. Unknown ids are a no-op.
func (s *Store) DeleteReport(id string) error {
	s.mu.Lock()
	idx := s.reportIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.reports = append(s.reports[:idx], s.reports[idx+1:]...)
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	err := s.save()
	s.mu.Unlock()

	s.notify()
	return err
}

// GetReportByID returns a copy of the matching report, or nil.
func (s *Store) GetReportByID(id string) *DailyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.reportIndex(id); idx >= 0 {
		r := s.reports[idx]
		return &r
	}
	return nil
}

// GetReportsByProject returns all reports for the named project in store
// order.
func (s *Store) GetReportsByProject(projectName string) []DailyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []DailyReport
	for _, r := range s.reports {
		if r.ProjectName == projectName {
			out = append(out, r)
		}
	}
	return out
}

// GetRecentReports returns up to limit reports ordered by date descending.
// limit <= 0 means 10. The backing collection is never reordered; this is
// a pure query over a copy.
func (s *Store) GetRecentReports(limit int) []DailyReport {
	if limit <= 0 {
		limit = 10
	}
	s.mu.RLock()
	out := make([]DailyReport, len(s.reports))
	copy(out, s.reports)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GetTodayReport returns the first report dated on the current local
// calendar day, or nil. Duplicate same-day reports are possible; only the
// first in store order is returned.
func (s *Store) GetTodayReport() *DailyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	today := s.now()
	for _, r := range s.reports {
		if sameDay(r.Date, today) {
			r := r
			return &r
		}
	}
	return nil
}

// FilterReports returns reports matching f in store order. A zero filter
// matches everything. From is inclusive, To exclusive, compared by local
// calendar day boundaries supplied by the caller.
func (s *Store) FilterReports(f ReportFilter) []DailyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []DailyReport
	for _, r := range s.reports {
		if f.ProjectName != "" && r.ProjectName != f.ProjectName {
			continue
		}
		if f.From != nil && r.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && !r.Date.Before(*f.To) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// GetReportSummaries projects every report into its list-view summary.
// Status is always StatusSubmitted for now; the workflow that would derive
// draft/approved/needs_revision was never defined.
// TODO: derive Status once a submission workflow exists.
func (s *Store) GetReportSummaries() []ReportSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ReportSummary, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, ReportSummary{
			ID:          r.ID,
			Date:        r.Date,
			ProjectName: r.ProjectName,
			Status:      StatusSubmitted,
			HasChanges:  len(r.Changes) > 0,
			HasRequests: len(r.ClientRequests) > 0,
			HasConcerns: len(r.Concerns) > 0,
			PhotoCount:  len(r.Photos),
		})
	}
	return out
}

// CurrentReport returns a copy of the current report, or nil.
func (s *Store) CurrentReport() *DailyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	r := *s.current
	return &r
}

// SetCurrentReport makes the report with the given id current. An unknown
// id clears it.
func (s *Store) SetCurrentReport(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.reportIndex(id); idx >= 0 {
		cur := s.reports[idx]
		s.current = &cur
		return
	}
	s.current = nil
}

// reportIndex must be called with s.mu held.
func (s *Store) reportIndex(id string) int {
	for i := range s.reports {
		if s.reports[i].ID == id {
			return i
		}
	}
	return -1
}
