package interchange

import (
	"testing"

	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var v map[string]any
	require.NoError(t, Parse([]byte(`{"a":1}`), &v))
	assert.Equal(t, float64(1), v["a"])

	err := Parse([]byte(`{broken`), &v)
	assert.ErrorIs(t, err, ErrParse)
}

func TestStringify(t *testing.T) {
	compact, err := Stringify(map[string]int{"a": 1}, false)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, compact)

	pretty, err := Stringify(map[string]int{"a": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", pretty)
}

func TestDecodeProject_PreservesAbsentLists(t *testing.T) {
	p, err := DecodeProject([]byte(`{"name":"P"}`))
	require.NoError(t, err)

	assert.Empty(t, p.ID)
	assert.Nil(t, p.Stages)
}

func TestParseProject_Normalizes(t *testing.T) {
	data := []byte(`{"stages":[{"name":"S","links":[{"name":"L","items":[{"description":"D"}]}]}]}`)
	p, err := ParseProject(data)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.DefaultProjectName, p.Name)
	require.Len(t, p.Stages, 1)
	assert.NotEmpty(t, p.Stages[0].ID)
	require.Len(t, p.Stages[0].Links, 1)
	assert.NotEmpty(t, p.Stages[0].Links[0].Color)

	item := p.Stages[0].Links[0].Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.StatusTodo, item.Status)
	assert.Equal(t, domain.PriorityMedium, item.Priority)
}

func TestParseProject_DropsNullEntries(t *testing.T) {
	p, err := ParseProject([]byte(`{"stages":[null]}`))
	require.NoError(t, err)
	assert.Empty(t, p.Stages)
	assert.NotNil(t, p.Stages)
}

func TestParseProject_BadData(t *testing.T) {
	_, err := ParseProject([]byte(`not json at all`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestIsValidJSON(t *testing.T) {
	assert.True(t, IsValidJSON([]byte(`{"a":[1,2]}`)))
	assert.True(t, IsValidJSON([]byte(`"just a string"`)))
	assert.False(t, IsValidJSON([]byte(`{"a":`)))
}

func TestPrettify(t *testing.T) {
	out, err := Prettify([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)

	_, err = Prettify([]byte(`{broken`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestDeepCloneProject(t *testing.T) {
	original := testutil.NewTestProject("P",
		testutil.NewTestStage("S",
			testutil.NewTestLink("L", testutil.NewTestItem("D"))))

	clone, err := DeepCloneProject(original)
	require.NoError(t, err)
	assert.Equal(t, *original, *clone)

	clone.Stages[0].Links[0].Items[0].Description = "changed"
	assert.Equal(t, "D", original.Stages[0].Links[0].Items[0].Description)
}
