package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/interchange"
	"github.com/alexanderramin/gantry/internal/repository"
)

// StorageKey is the fixed document-store key holding the current project.
const StorageKey = "gantry/current-project"

type projectStore struct {
	docs    repository.DocumentStore
	logger  *slog.Logger
	current *domain.Project
}

// NewProjectService creates a ProjectService over the given document store.
// A nil logger discards log output.
func NewProjectService(docs repository.DocumentStore, logger *slog.Logger) ProjectService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectStore{docs: docs, logger: logger}
}

func (s *projectStore) CurrentProject(ctx context.Context) *domain.Project {
	if s.current == nil {
		if s.loadFromStore(ctx) == nil {
			s.createDefaultProject(ctx)
		}
	}
	return s.current
}

func (s *projectStore) ProjectStages(ctx context.Context) []*domain.ProjectStage {
	return s.CurrentProject(ctx).Stages
}

// createDefaultProject builds the fixed default tree: nine lifecycle stages,
// each seeded with the six management threads, plus one sample item on the
// first stage's first link.
func (s *projectStore) createDefaultProject(ctx context.Context) *domain.Project {
	project := domain.NewProject(domain.Project{
		Name:        domain.DefaultProjectName,
		Description: "Full-lifecycle management of a hospital construction programme",
		StartDate:   domain.Today(),
	})

	for _, stageName := range domain.DefaultStageNames {
		stage := domain.NewStage(domain.ProjectStage{
			Name:        stageName,
			Description: fmt.Sprintf("Work related to the %s stage", stageName),
		})
		for i, seed := range domain.DefaultLinks {
			stage.AddLink(domain.NewLink(domain.Link{
				Name:  seed.Name,
				Owner: seed.Owner,
				Color: domain.PaletteColor(i),
			}))
		}
		project.AddStage(stage)
	}

	if len(project.Stages) > 0 && len(project.Stages[0].Links) > 0 {
		project.Stages[0].Links[0].AddItem(domain.SampleItem())
	}

	s.current = project
	s.SaveToStore(ctx)
	return project
}

func (s *projectStore) LoadProjectData(ctx context.Context, data []byte) (*domain.Project, error) {
	project, err := interchange.ParseProject(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	s.current = project
	s.SaveToStore(ctx)
	return s.current, nil
}

func (s *projectStore) LoadProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p == nil {
		return nil, ErrDataFormat
	}
	p.Normalize()
	s.current = p
	s.SaveToStore(ctx)
	return s.current, nil
}

func (s *projectStore) ExportProjectData(context.Context) (string, error) {
	if s.current == nil {
		return "", ErrNoProject
	}
	return interchange.Stringify(s.current, true)
}

func (s *projectStore) AddStage(ctx context.Context, data domain.ProjectStage) *domain.ProjectStage {
	project := s.CurrentProject(ctx)
	stage := domain.NewStage(data)
	project.AddStage(stage)
	s.SaveToStore(ctx)
	return stage
}

func (s *projectStore) RemoveStage(ctx context.Context, stageID string) {
	s.CurrentProject(ctx).RemoveStage(stageID)
	s.SaveToStore(ctx)
}

func (s *projectStore) UpdateStage(ctx context.Context, updated *domain.ProjectStage) bool {
	if !s.CurrentProject(ctx).UpdateStage(updated) {
		return false
	}
	s.SaveToStore(ctx)
	return true
}

func (s *projectStore) GetStage(ctx context.Context, stageID string) *domain.ProjectStage {
	return s.CurrentProject(ctx).GetStage(stageID)
}

func (s *projectStore) AddLink(ctx context.Context, stageID string, data domain.Link) *domain.Link {
	stage := s.GetStage(ctx, stageID)
	if stage == nil {
		return nil
	}
	link := domain.NewLink(data)
	stage.AddLink(link)
	s.CurrentProject(ctx).Touch()
	s.SaveToStore(ctx)
	return link
}

func (s *projectStore) RemoveLink(ctx context.Context, stageID, linkID string) bool {
	stage := s.GetStage(ctx, stageID)
	if stage == nil {
		return false
	}
	stage.RemoveLink(linkID)
	s.CurrentProject(ctx).Touch()
	s.SaveToStore(ctx)
	return true
}

func (s *projectStore) UpdateLink(ctx context.Context, stageID string, updated *domain.Link) bool {
	stage := s.GetStage(ctx, stageID)
	if stage == nil {
		return false
	}
	if !stage.UpdateLink(updated) {
		return false
	}
	s.CurrentProject(ctx).Touch()
	s.SaveToStore(ctx)
	return true
}

func (s *projectStore) GetLink(ctx context.Context, stageID, linkID string) *domain.Link {
	stage := s.GetStage(ctx, stageID)
	if stage == nil {
		return nil
	}
	return stage.GetLink(linkID)
}

func (s *projectStore) SaveToStore(ctx context.Context) {
	if s.current == nil {
		return
	}
	data, err := interchange.Stringify(s.current, false)
	if err != nil {
		s.logger.Error("serializing project for storage", "error", err)
		return
	}
	if err := s.docs.Put(ctx, StorageKey, []byte(data)); err != nil {
		s.logger.Error("saving project to store", "error", err)
	}
}

// loadFromStore returns the stored project or nil when the store is empty,
// unreadable, or holds an unparseable document.
func (s *projectStore) loadFromStore(ctx context.Context) *domain.Project {
	data, ok, err := s.docs.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Error("loading project from store", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	project, err := interchange.ParseProject(data)
	if err != nil {
		s.logger.Error("parsing stored project", "error", err)
		return nil
	}
	s.current = project
	return project
}

func (s *projectStore) ClearStore(ctx context.Context) {
	if err := s.docs.Delete(ctx, StorageKey); err != nil {
		s.logger.Error("clearing project store", "error", err)
	}
}

func (s *projectStore) ResetProject(ctx context.Context) *domain.Project {
	s.ClearStore(ctx)
	s.current = nil
	return s.createDefaultProject(ctx)
}
