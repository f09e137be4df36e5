package store

// Append operations for the nested record lists. Each stamps a fresh
// identity and timestamp, then routes through UpdateReport so the merge
// and persistence semantics are identical to a caller-built patch.

func (s *Store) AddChange(reportID string, c ChangeRecord) error {
	r := s.GetReportByID(reportID)
	if r == nil {
		return nil
	}
	c.ID = s.newID()
	if c.Timestamp.IsZero() {
		c.Timestamp = s.now()
	}
	changes := append(r.Changes, c)
	return s.UpdateReport(reportID, ReportPatch{Changes: &changes})
}

func (s *Store) AddClientRequest(reportID string, cr ClientRequest) error {
	r := s.GetReportByID(reportID)
	if r == nil {
		return nil
	}
	cr.ID = s.newID()
	if cr.Timestamp.IsZero() {
		cr.Timestamp = s.now()
	}
	requests := append(r.ClientRequests, cr)
	return s.UpdateReport(reportID, ReportPatch{ClientRequests: &requests})
}

func (s *Store) AddWorkerFeedback(reportID string, fb WorkerFeedback) error {
	r := s.GetReportByID(reportID)
	if r == nil {
		return nil
	}
	fb.ID = s.newID()
	if fb.Timestamp.IsZero() {
		fb.Timestamp = s.now()
	}
	feedback := append(r.WorkerFeedback, fb)
	return s.UpdateReport(reportID, ReportPatch{WorkerFeedback: &feedback})
}

func (s *Store) AddConcern(reportID string, c Concern) error {
	r := s.GetReportByID(reportID)
	if r == nil {
		return nil
	}
	c.ID = s.newID()
	if c.Timestamp.IsZero() {
		c.Timestamp = s.now()
	}
	if c.Status == "" {
		c.Status = ConcernNew
	}
	concerns := append(r.Concerns, c)
	return s.UpdateReport(reportID, ReportPatch{Concerns: &concerns})
}

func (s *Store) AddPhoto(reportID string, p Photo) error {
	r := s.GetReportByID(reportID)
	if r == nil {
		return nil
	}
	p.ID = s.newID()
	if p.Timestamp.IsZero() {
		p.Timestamp = s.now()
	}
	p.AssociatedReportID = reportID
	photos := append(r.Photos, p)
	return s.UpdateReport(reportID, ReportPatch{Photos: &photos})
}

func (s *Store) AddCommunication(reportID string, c Communication) error {
	r := s.GetReportByID(reportID)
	if r == nil {
		return nil
	}
	c.ID = s.newID()
	if c.Timestamp.IsZero() {
		c.Timestamp = s.now()
	}
	comms := append(r.Communications, c)
	return s.UpdateReport(reportID, ReportPatch{Communications: &comms})
}
