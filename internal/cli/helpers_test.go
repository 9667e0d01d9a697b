package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/alexanderramin/gantry/internal/service"
	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	docs := repository.NewSQLiteDocumentStore(testutil.NewTestDB(t))
	projects := service.NewProjectService(docs, nil)
	return &App{
		Projects: projects,
		Items:    service.NewItemService(projects, nil),
	}
}

func TestResolveStage(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stages := app.Projects.ProjectStages(ctx)
	first := stages[0]

	byID, err := resolveStage(ctx, app, first.ID)
	require.NoError(t, err)
	assert.Same(t, first, byID)

	byName, err := resolveStage(ctx, app, "construction documents")
	require.NoError(t, err)
	assert.Equal(t, "Construction Documents", byName.Name)

	_, err = resolveStage(ctx, app, "")
	assert.Error(t, err)

	_, err = resolveStage(ctx, app, "no-such-stage")
	assert.ErrorIs(t, err, service.ErrStageNotFound)

	// Every stage ID shares the "stage" prefix, so a bare prefix is ambiguous.
	_, err = resolveStage(ctx, app, first.ID[:5])
	assert.Error(t, err)
}

func TestResolveLink(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stage := app.Projects.ProjectStages(ctx)[0]
	first := stage.Links[0]

	byID, err := resolveLink(stage, first.ID)
	require.NoError(t, err)
	assert.Same(t, first, byID)

	byName, err := resolveLink(stage, "design conversion")
	require.NoError(t, err)
	assert.Equal(t, "Design Conversion", byName.Name)

	_, err = resolveLink(stage, "")
	assert.Error(t, err)

	_, err = resolveLink(stage, "no-such-link")
	assert.ErrorIs(t, err, service.ErrLinkNotFound)
}

func TestParseStatusFilter(t *testing.T) {
	status, err := parseStatusFilter("in-progress")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, status)

	_, err = parseStatusFilter("blocked")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestParsePriorityFilter(t *testing.T) {
	priority, err := parsePriorityFilter("high")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, priority)

	_, err = parsePriorityFilter("urgent")
	assert.ErrorIs(t, err, service.ErrInvalidPriority)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer text", 5))
	assert.Equal(t, "l", truncate("long", 1))
}
