package template

import (
	"fmt"

	"github.com/alexanderramin/gantry/internal/domain"
)

// List returns all available templates in display order.
func List() []Template {
	return Catalog
}

// Get returns the template with the given ID.
func Get(id string) (*Template, error) {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}

// Build constructs a complete project tree from a template: the template's
// stage set, each stage carrying the template's management threads, with the
// per-cell seed items attached.
func Build(id string) (*domain.Project, error) {
	tmpl, err := Get(id)
	if err != nil {
		return nil, err
	}

	project := domain.NewProject(domain.Project{
		Name:        tmpl.Name,
		Description: tmpl.Description,
	})

	seeds := linkSeeds(tmpl.ID)
	for _, stageName := range stageNames(tmpl.ID) {
		stage := domain.NewStage(domain.ProjectStage{
			Name:        stageName,
			Description: fmt.Sprintf("Work related to the %s stage", stageName),
		})
		for i, seed := range seeds {
			link := domain.NewLink(domain.Link{
				Name:  seed.Name,
				Owner: seed.Owner,
				Color: domain.PaletteColor(i),
			})
			for _, data := range sampleItems(tmpl.ID, stageName, seed.Name) {
				link.AddItem(domain.NewItem(data))
			}
			stage.AddLink(link)
		}
		project.AddStage(stage)
	}

	return project, nil
}
