package interchange

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProjectData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"P"}`), 0644))

	data, err := ReadProjectData(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"P"}`), data)
}

func TestReadProjectData_RejectsNonJSONExtension(t *testing.T) {
	_, err := ReadProjectData("/tmp/project.txt")
	assert.ErrorIs(t, err, ErrNotJSONFile)
}

func TestReadProjectData_MissingFile(t *testing.T) {
	_, err := ReadProjectData(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotJSONFile)
}

func TestWriteProjectData_AppendsExtension(t *testing.T) {
	dir := t.TempDir()

	written, err := WriteProjectData(filepath.Join(dir, "export"), []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "export.json"), written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), data)
}

func TestWriteProjectData_KeepsExtension(t *testing.T) {
	dir := t.TempDir()

	written, err := WriteProjectData(filepath.Join(dir, "export.JSON"), []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "export.JSON"), written)
}

func TestGenerateFileName(t *testing.T) {
	name := GenerateFileName("hospital", "json")
	assert.Regexp(t, regexp.MustCompile(`^hospital-\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}\.json$`), name)

	defaulted := GenerateFileName("", "")
	assert.Regexp(t, regexp.MustCompile(`^project-data-.+\.json$`), defaulted)
}

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1258291, "1.2 MB"},
		{1073741824, "1 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatFileSize(tc.bytes), "bytes=%d", tc.bytes)
	}
}
