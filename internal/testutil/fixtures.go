package testutil

import (
	"github.com/alexanderramin/gantry/internal/domain"
)

// Item options
type ItemOption func(*domain.Item)

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(i *domain.Item) {
		i.Status = s
	}
}

func WithPriority(p domain.ItemPriority) ItemOption {
	return func(i *domain.Item) {
		i.Priority = p
	}
}

func WithParticipants(names ...string) ItemOption {
	return func(i *domain.Item) {
		i.Participants = names
	}
}

func WithDates(start, end string) ItemOption {
	return func(i *domain.Item) {
		i.StartDate = start
		i.EndDate = end
	}
}

func WithNotes(notes string) ItemOption {
	return func(i *domain.Item) {
		i.Notes = notes
	}
}

// NewTestItem builds a normalized item with the given description.
func NewTestItem(description string, opts ...ItemOption) *domain.Item {
	item := &domain.Item{
		Description:  description,
		Participants: []string{"Tester"},
	}
	for _, opt := range opts {
		opt(item)
	}
	item.Normalize()
	return item
}

// NewTestLink builds a link owning the given items.
func NewTestLink(name string, items ...*domain.Item) *domain.Link {
	link := domain.NewLink(domain.Link{Name: name, Owner: "Owner of " + name})
	for _, it := range items {
		link.AddItem(it)
	}
	return link
}

// NewTestStage builds a stage owning the given links.
func NewTestStage(name string, links ...*domain.Link) *domain.ProjectStage {
	stage := domain.NewStage(domain.ProjectStage{Name: name})
	for _, l := range links {
		stage.AddLink(l)
	}
	return stage
}

// NewTestProject builds a project owning the given stages.
func NewTestProject(name string, stages ...*domain.ProjectStage) *domain.Project {
	project := domain.NewProject(domain.Project{Name: name})
	for _, s := range stages {
		project.AddStage(s)
	}
	return project
}
