package store

import "time"

// ProjectPatch is a partial update for a project; nil fields are left
// alone. Same shallow-merge contract as ReportPatch.
type ProjectPatch struct {
	Name        *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	Client      *string
	Supervisor  *string
	Description *string
	IsActive    *bool
}

func (p ProjectPatch) apply(pr *ProjectInfo) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Location != nil {
		pr.Location = *p.Location
	}
	if p.StartDate != nil {
		pr.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		pr.EndDate = *p.EndDate
	}
	if p.Client != nil {
		pr.Client = *p.Client
	}
	if p.Supervisor != nil {
		pr.Supervisor = *p.Supervisor
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.IsActive != nil {
		pr.IsActive = *p.IsActive
	}
}

// CreateProject stores p with a fresh identity and persists.
func (s *Store) CreateProject(p ProjectInfo) (*ProjectInfo, error) {
	s.mu.Lock()
	p.ID = s.newID()
	s.projects = append(s.projects, p)
	err := s.save()
	s.mu.Unlock()

	s.notify()
	return &p, err
}

// UpdateProject shallow-merges patch over the project with the given id.
// An unknown id is a silent no-op.
func (s *Store) UpdateProject(id string, patch ProjectPatch) error {
	s.mu.Lock()
	idx := s.projectIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	patch.apply(&s.projects[idx])
	err := s.save()
	s.mu.Unlock()

	s.notify()
	return err
}

// DeleteProject removes the project with the given id. Reports keep their
// project name link; nothing cascades.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	idx := s.projectIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	err := s.save()
	s.mu.Unlock()

	s.notify()
	return err
}

// GetProjectByID returns a copy of the matching project, or nil.
func (s *Store) GetProjectByID(id string) *ProjectInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.projectIndex(id); idx >= 0 {
		p := s.projects[idx]
		return &p
	}
	return nil
}

// Projects returns a copy of all projects in store order.
func (s *Store) Projects() []ProjectInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ProjectInfo, len(s.projects))
	copy(out, s.projects)
	return out
}

// GetActiveProjects returns the projects whose IsActive flag is set.
func (s *Store) GetActiveProjects() []ProjectInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ProjectInfo
	for _, p := range s.projects {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// projectIndex must be called with s.mu held.
func (s *Store) projectIndex(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
