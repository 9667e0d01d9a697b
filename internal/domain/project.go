package domain

// Project is the root aggregate: the single working document the rest of the
// system operates on. It exclusively owns its stages, which own their links,
// which own their items — a strict tree with no sharing.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
	Stages      []*ProjectStage `json:"stages"`
}

// NewProject constructs a project from a partial record, defaulting identity,
// name and timestamps and normalizing any stages carried in the record.
func NewProject(data Project) *Project {
	p := data
	p.Normalize()
	return &p
}

// Normalize fills defaults in place, recursively normalizing owned stages.
func (p *Project) Normalize() {
	if p.ID == "" {
		p.ID = NewID("project")
	}
	if p.Name == "" {
		p.Name = DefaultProjectName
	}
	if p.CreatedAt == "" {
		p.CreatedAt = NowTimestamp()
	}
	if p.UpdatedAt == "" {
		p.UpdatedAt = NowTimestamp()
	}
	// Decoded stage arrays may carry null entries; drop them.
	kept := p.Stages[:0]
	for _, s := range p.Stages {
		if s == nil {
			continue
		}
		s.Normalize()
		kept = append(kept, s)
	}
	p.Stages = kept
	if p.Stages == nil {
		p.Stages = []*ProjectStage{}
	}
}

// Touch records that the tree below this project was mutated.
func (p *Project) Touch() {
	p.UpdatedAt = NowTimestamp()
}

// AddStage appends a stage and touches the project.
func (p *Project) AddStage(s *ProjectStage) {
	if s == nil {
		return
	}
	s.Normalize()
	p.Stages = append(p.Stages, s)
	p.Touch()
}

// RemoveStage filters out the stage with the given ID and touches the
// project. Absent IDs are a no-op.
func (p *Project) RemoveStage(stageID string) {
	kept := p.Stages[:0]
	for _, s := range p.Stages {
		if s.ID != stageID {
			kept = append(kept, s)
		}
	}
	p.Stages = kept
	p.Touch()
}

// GetStage returns the stage with the given ID, or nil.
func (p *Project) GetStage(stageID string) *ProjectStage {
	for _, s := range p.Stages {
		if s.ID == stageID {
			return s
		}
	}
	return nil
}

// UpdateStage replaces the stage with the same ID and touches the project.
// Returns false without modifying anything when the ID is unknown.
func (p *Project) UpdateStage(updated *ProjectStage) bool {
	if updated == nil {
		return false
	}
	for idx, s := range p.Stages {
		if s.ID == updated.ID {
			updated.Normalize()
			p.Stages[idx] = updated
			p.Touch()
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the whole tree.
func (p *Project) Clone() *Project {
	c := *p
	c.Stages = make([]*ProjectStage, 0, len(p.Stages))
	for _, s := range p.Stages {
		c.Stages = append(c.Stages, s.Clone())
	}
	return &c
}
