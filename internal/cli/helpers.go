package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/service"
)

// resolveStage resolves user input to a stage: exact ID, then
// case-insensitive exact name, then unique ID prefix.
func resolveStage(ctx context.Context, app *App, input string) (*domain.ProjectStage, error) {
	if input == "" {
		return nil, fmt.Errorf("stage is required")
	}

	stages := app.Projects.ProjectStages(ctx)

	for _, s := range stages {
		if s.ID == input {
			return s, nil
		}
	}
	for _, s := range stages {
		if strings.EqualFold(s.Name, input) {
			return s, nil
		}
	}

	var matches []*domain.ProjectStage
	for _, s := range stages {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", service.ErrStageNotFound, input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("stage %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveLink resolves user input to a link within a stage, with the same
// matching order as resolveStage.
func resolveLink(stage *domain.ProjectStage, input string) (*domain.Link, error) {
	if input == "" {
		return nil, fmt.Errorf("link is required")
	}

	for _, l := range stage.Links {
		if l.ID == input {
			return l, nil
		}
	}
	for _, l := range stage.Links {
		if strings.EqualFold(l.Name, input) {
			return l, nil
		}
	}

	var matches []*domain.Link
	for _, l := range stage.Links {
		if strings.HasPrefix(l.ID, input) {
			matches = append(matches, l)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w in stage %q: %q", service.ErrLinkNotFound, stage.Name, input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("link %q is ambiguous (%d matches)", input, len(matches))
	}
}

// truncate shortens s for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
