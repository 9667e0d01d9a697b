package domain

import "math/rand"

// DefaultProjectName is used when a project record carries no name.
const DefaultProjectName = "Hospital Construction Programme"

// DefaultStageNames is the fixed set of lifecycle stages seeded into a
// default project, in display order.
var DefaultStageNames = []string{
	"Approval & Feasibility",
	"Pre-Design",
	"Concept & Schematic Design",
	"Construction Documents",
	"Tendering & Award",
	"Construction",
	"Completion & Acceptance",
	"Pre-Opening Fit-Out",
	"Operations & Maintenance",
}

// LinkSeed names one of the six fixed management threads and its
// responsible owner.
type LinkSeed struct {
	Name  string
	Owner string
}

// DefaultLinks is the fixed set of six management threads seeded into every
// stage, in display order.
var DefaultLinks = []LinkSeed{
	{Name: "Requirement Generation", Owner: "Hospital lead"},
	{Name: "Design Conversion", Owner: "Delivery partner lead"},
	{Name: "Procurement Integration", Owner: "Hospital lead"},
	{Name: "Construction Control", Owner: "Delivery partner lead"},
	{Name: "Operations Handoff", Owner: "Hospital lead"},
	{Name: "Continuous Improvement", Owner: "Administration centre lead"},
}

// LinkPalette holds the display colors assigned to links.
var LinkPalette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6", "#06B6D4",
}

// DefaultColor picks a display color for a link created without one.
func DefaultColor() string {
	return LinkPalette[rand.Intn(len(LinkPalette))]
}

// PaletteColor returns the palette color for the link at the given position,
// wrapping around for positions beyond the palette.
func PaletteColor(index int) string {
	if index < 0 {
		index = 0
	}
	return LinkPalette[index%len(LinkPalette)]
}

// SampleItem returns the work item seeded into the first link of the first
// stage of a default project.
func SampleItem() *Item {
	return NewItem(Item{
		Description:  "Front-load medical process requirements",
		Participants: []string{"Planning", "Architecture", "Medical process consulting"},
		Status:       StatusTodo,
		Priority:     PriorityHigh,
		Notes:        "Pin down the hospital's functional needs and clinical workflows",
	})
}
