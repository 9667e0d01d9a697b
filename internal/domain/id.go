package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates an opaque identifier of the form
// "<prefix>-<unix millis>-<random suffix>". IDs are collision-resistant for
// practical purposes, not cryptographically guaranteed unique.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// NowTimestamp returns the current UTC time in RFC 3339 format, the layout
// used for createdAt/updatedAt on the project aggregate.
func NowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Today returns the current calendar date in DateLayout.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
