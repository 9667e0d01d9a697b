// Package interchange handles the JSON wire format of the project tree:
// parsing, serialization, structural validation, additive merge, and file
// round-trips. The rest of the core works on in-memory values only.
package interchange

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/gantry/internal/domain"
)

var (
	// ErrParse indicates malformed JSON text.
	ErrParse = errors.New("json parse failed")

	// ErrSerialize indicates a value that could not be encoded as JSON.
	ErrSerialize = errors.New("json serialize failed")
)

// Parse decodes JSON into v, re-raising codec failures as ErrParse with the
// original message embedded.
func Parse(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

// Stringify encodes v as JSON, pretty-printed with two-space indentation
// when pretty is set.
func Stringify(v any, pretty bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return string(data), nil
}

// DecodeProject decodes a serialized project tree without normalizing it.
// Missing fields stay zero-valued and absent lists stay nil, which is what
// ValidateProjectData inspects.
func DecodeProject(data []byte) (*domain.Project, error) {
	var p domain.Project
	if err := Parse(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseProject decodes a serialized project tree and normalizes it, so the
// result is a fully defaulted aggregate regardless of which optional fields
// the input carried.
func ParseProject(data []byte) (*domain.Project, error) {
	p, err := DecodeProject(data)
	if err != nil {
		return nil, err
	}
	p.Normalize()
	return p, nil
}

// IsValidJSON reports whether data is well-formed JSON.
func IsValidJSON(data []byte) bool {
	return json.Valid(data)
}

// Compress re-encodes v without insignificant whitespace.
func Compress(v any) (string, error) {
	return Stringify(v, false)
}

// Prettify parses a JSON string and re-encodes it with indentation.
func Prettify(data []byte) (string, error) {
	var v any
	if err := Parse(data, &v); err != nil {
		return "", err
	}
	return Stringify(v, true)
}

// DeepCloneProject copies a project tree through its serialized form.
func DeepCloneProject(p *domain.Project) (*domain.Project, error) {
	s, err := Stringify(p, false)
	if err != nil {
		return nil, err
	}
	return ParseProject([]byte(s))
}
