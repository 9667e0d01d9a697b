package interchange

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNotJSONFile indicates a file that does not carry the .json extension.
var ErrNotJSONFile = errors.New("not a JSON file")

// ReadProjectData reads a .json file and returns its contents. The extension
// check mirrors the import dialog's file filter; parsing and validation are
// separate steps so callers get the full pipeline: read, parse, validate,
// load.
func ReadProjectData(path string) ([]byte, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return nil, fmt.Errorf("%w: %s", ErrNotJSONFile, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return data, nil
}

// WriteProjectData writes serialized project data to path, appending the
// .json extension when missing.
func WriteProjectData(path string, data []byte) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		path += ".json"
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing project file: %w", err)
	}
	return path, nil
}

// GenerateFileName builds "<base>-<timestamp>.<ext>" with an ISO-derived
// timestamp. Collision-resistant for sequential exports within one process,
// not guaranteed unique across millisecond boundaries.
func GenerateFileName(base, ext string) string {
	if base == "" {
		base = "project-data"
	}
	if ext == "" {
		ext = "json"
	}
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("%s-%s.%s", base, stamp, ext)
}

// FormatFileSize renders a byte count with a binary-unit suffix.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	size := float64(bytes)
	idx := 0
	for size >= 1024 && idx < len(units)-1 {
		size /= 1024
		idx++
	}
	n := strconv.FormatFloat(size, 'f', 2, 64)
	n = strings.TrimRight(strings.TrimRight(n, "0"), ".")
	return n + " " + units[idx]
}
