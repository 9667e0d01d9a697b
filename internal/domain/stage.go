package domain

// ProjectStage is one phase of the project lifecycle. It owns its links;
// the stage name is the merge/match key across imports.
type ProjectStage struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Description string      `json:"description"`
	Status      StageStatus `json:"status"`
	Links       []*Link     `json:"links"`
}

// NewStage constructs a stage from a partial record, defaulting the ID and
// status and normalizing any links carried in the record.
func NewStage(data ProjectStage) *ProjectStage {
	s := data
	s.Normalize()
	return &s
}

// Normalize fills defaults in place, recursively normalizing owned links.
func (s *ProjectStage) Normalize() {
	if s.ID == "" {
		s.ID = NewID("stage")
	}
	if s.Status == "" {
		s.Status = StagePlanned
	}
	// Decoded link arrays may carry null entries; drop them.
	kept := s.Links[:0]
	for _, l := range s.Links {
		if l == nil {
			continue
		}
		l.Normalize()
		kept = append(kept, l)
	}
	s.Links = kept
	if s.Links == nil {
		s.Links = []*Link{}
	}
}

// AddLink appends a link to the stage.
func (s *ProjectStage) AddLink(l *Link) {
	if l == nil {
		return
	}
	l.Normalize()
	s.Links = append(s.Links, l)
}

// RemoveLink filters out the link with the given ID. Absent IDs are a no-op.
func (s *ProjectStage) RemoveLink(linkID string) {
	kept := s.Links[:0]
	for _, l := range s.Links {
		if l.ID != linkID {
			kept = append(kept, l)
		}
	}
	s.Links = kept
}

// GetLink returns the link with the given ID, or nil.
func (s *ProjectStage) GetLink(linkID string) *Link {
	for _, l := range s.Links {
		if l.ID == linkID {
			return l
		}
	}
	return nil
}

// UpdateLink replaces the link with the same ID. Returns false without
// modifying anything when the ID is unknown.
func (s *ProjectStage) UpdateLink(updated *Link) bool {
	if updated == nil {
		return false
	}
	for idx, l := range s.Links {
		if l.ID == updated.ID {
			updated.Normalize()
			s.Links[idx] = updated
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the stage and everything below it.
func (s *ProjectStage) Clone() *ProjectStage {
	c := *s
	c.Links = make([]*Link, 0, len(s.Links))
	for _, l := range s.Links {
		c.Links = append(c.Links, l.Clone())
	}
	return &c
}
