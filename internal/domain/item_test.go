package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Defaults(t *testing.T) {
	item := NewItem(Item{Description: "Pour foundations"})

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, StatusTodo, item.Status)
	assert.Equal(t, PriorityMedium, item.Priority)
	assert.NotNil(t, item.Participants)
	assert.Empty(t, item.Participants)
}

func TestNewItem_KeepsProvidedFields(t *testing.T) {
	item := NewItem(Item{
		ID:           "item-1",
		Description:  "Install medical gas lines",
		Participants: []string{"MEP", "Supplier"},
		Status:       StatusInProgress,
		Priority:     PriorityHigh,
		StartDate:    "2026-02-01",
		EndDate:      "2026-03-15",
		Notes:        "coordinate with cleanroom works",
	})

	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, StatusInProgress, item.Status)
	assert.Equal(t, PriorityHigh, item.Priority)
	assert.Equal(t, []string{"MEP", "Supplier"}, item.Participants)
}

func TestItem_NormalizeIdempotent(t *testing.T) {
	item := NewItem(Item{Description: "Survey site"})
	before := *item
	item.Normalize()
	assert.Equal(t, before, *item)
}

func TestItem_RoundTrip(t *testing.T) {
	item := NewItem(Item{
		Description:  "Commission HVAC",
		Participants: []string{"Contractor"},
		Status:       StatusDone,
		Priority:     PriorityLow,
		StartDate:    "2026-01-01",
		EndDate:      "2026-01-20",
		Notes:        "signed off",
	})

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded Item
	require.NoError(t, json.Unmarshal(data, &decoded))
	decoded.Normalize()

	assert.Equal(t, *item, decoded)
}

func TestItem_Clone(t *testing.T) {
	item := NewItem(Item{Description: "X", Participants: []string{"A"}})
	clone := item.Clone()

	clone.Participants[0] = "B"
	clone.Description = "Y"

	assert.Equal(t, "A", item.Participants[0])
	assert.Equal(t, "X", item.Description)
}

func TestIDGeneration_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID("item")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
