package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree() *Project {
	item := NewItem(Item{Description: "Review drawings", Participants: []string{"Architect"}})
	link := NewLink(Link{Name: "Design Conversion", Owner: "Delivery partner lead"})
	link.AddItem(item)
	stage := NewStage(ProjectStage{Name: "Construction Documents"})
	stage.AddLink(link)
	project := NewProject(Project{Name: "North Wing"})
	project.AddStage(stage)
	return project
}

func TestNewProject_Defaults(t *testing.T) {
	p := NewProject(Project{})

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, DefaultProjectName, p.Name)
	assert.NotEmpty(t, p.CreatedAt)
	assert.NotEmpty(t, p.UpdatedAt)
	assert.NotNil(t, p.Stages)
}

func TestProject_RoundTrip(t *testing.T) {
	project := buildTree()

	data, err := json.Marshal(project)
	require.NoError(t, err)

	var decoded Project
	require.NoError(t, json.Unmarshal(data, &decoded))
	decoded.Normalize()

	assert.Equal(t, *project, decoded)
}

func TestProject_StageCRUD(t *testing.T) {
	p := NewProject(Project{Name: "P"})
	stage := NewStage(ProjectStage{Name: "S1"})
	p.AddStage(stage)

	assert.Same(t, stage, p.GetStage(stage.ID))
	assert.Nil(t, p.GetStage("missing"))

	renamed := stage.Clone()
	renamed.Name = "S1 renamed"
	assert.True(t, p.UpdateStage(renamed))
	assert.Equal(t, "S1 renamed", p.GetStage(stage.ID).Name)

	unknown := NewStage(ProjectStage{Name: "ghost"})
	assert.False(t, p.UpdateStage(unknown))

	p.RemoveStage(stage.ID)
	assert.Nil(t, p.GetStage(stage.ID))
	p.RemoveStage("missing") // no-op
	assert.Empty(t, p.Stages)
}

func TestProject_MutationTouchesUpdatedAt(t *testing.T) {
	p := NewProject(Project{Name: "P"})
	p.UpdatedAt = "2020-01-01T00:00:00Z"

	p.AddStage(NewStage(ProjectStage{Name: "S"}))
	assert.NotEqual(t, "2020-01-01T00:00:00Z", p.UpdatedAt)
}

func TestStage_LinkCRUD(t *testing.T) {
	s := NewStage(ProjectStage{Name: "S"})
	assert.Equal(t, StagePlanned, s.Status)

	link := NewLink(Link{Name: "L"})
	s.AddLink(link)
	assert.Same(t, link, s.GetLink(link.ID))
	assert.Nil(t, s.GetLink("missing"))

	updated := link.Clone()
	updated.Owner = "New owner"
	assert.True(t, s.UpdateLink(updated))
	assert.Equal(t, "New owner", s.GetLink(link.ID).Owner)
	assert.False(t, s.UpdateLink(NewLink(Link{Name: "ghost"})))

	s.RemoveLink(link.ID)
	assert.Empty(t, s.Links)
}

func TestLink_ItemCRUD(t *testing.T) {
	l := NewLink(Link{Name: "L"})
	assert.NotEmpty(t, l.Color)

	item := NewItem(Item{Description: "D"})
	l.AddItem(item)
	assert.Same(t, item, l.GetItem(item.ID))
	assert.Nil(t, l.GetItem("missing"))

	updated := item.Clone()
	updated.Description = "D2"
	assert.True(t, l.UpdateItem(updated))
	assert.Equal(t, "D2", l.GetItem(item.ID).Description)
	assert.False(t, l.UpdateItem(NewItem(Item{Description: "ghost"})))

	l.RemoveItem(item.ID)
	assert.Empty(t, l.Items)
}

func TestProject_NormalizeDropsNullEntries(t *testing.T) {
	data := []byte(`{"stages":[
		null,
		{"name":"S","links":[null,{"name":"L","items":[null]}]}
	]}`)

	var p Project
	require.NoError(t, json.Unmarshal(data, &p))
	p.Normalize()

	require.Len(t, p.Stages, 1)
	assert.Equal(t, "S", p.Stages[0].Name)
	require.Len(t, p.Stages[0].Links, 1)
	assert.Empty(t, p.Stages[0].Links[0].Items)
}

func TestProject_CloneIsDeep(t *testing.T) {
	project := buildTree()
	clone := project.Clone()

	clone.Stages[0].Links[0].Items[0].Description = "changed"
	clone.Stages[0].Name = "changed"

	assert.Equal(t, "Review drawings", project.Stages[0].Links[0].Items[0].Description)
	assert.Equal(t, "Construction Documents", project.Stages[0].Name)
}
