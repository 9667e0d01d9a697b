// Package template holds the fixed project templates and builds full project
// trees from them. Applying a template goes through the project service's
// load entrypoint, so a template behaves exactly like an imported project.
package template

import (
	"errors"

	"github.com/alexanderramin/gantry/internal/domain"
)

// ErrTemplateNotFound indicates an unknown template ID.
var ErrTemplateNotFound = errors.New("template not found")

// Template describes one fixed project template.
type Template struct {
	ID          string
	Name        string
	Description string
	Category    string
	Features    []string
}

// Catalog is the fixed set of available templates, in display order.
var Catalog = []Template{
	{
		ID:          "hospital-comprehensive",
		Name:        "General Hospital Programme",
		Description: "For large general hospitals, covering the full medical process design and equipment fit-out",
		Category:    "Healthcare construction",
		Features: []string{
			"Complete medical process design",
			"Cleanroom operating suites",
			"Medical gas systems",
			"HIS/LIS/PACS integration",
			"Infection control workflows",
			"Emergency response planning",
		},
	},
	{
		ID:          "hospital-specialized",
		Name:        "Specialist Hospital Programme",
		Description: "For specialist hospitals such as oncology or cardiovascular centres",
		Category:    "Healthcare construction",
		Features: []string{
			"Specialist medical processes",
			"Special equipment fit-out",
			"Dedicated clean-air systems",
			"Research laboratories",
			"Teaching and training areas",
		},
	},
	{
		ID:          "hospital-community",
		Name:        "Community Hospital Programme",
		Description: "For community health centres and small hospitals",
		Category:    "Healthcare construction",
		Features: []string{
			"Core clinical functions",
			"Preventive care services",
			"Family doctor workstations",
			"Health management centre",
			"Community-facing amenities",
		},
	},
	{
		ID:          "hospital-renovation",
		Name:        "Hospital Renovation & Extension",
		Description: "For renovating and extending an operating hospital",
		Category:    "Renovation",
		Features: []string{
			"Condition survey and assessment",
			"Phased construction planning",
			"Construction during operations",
			"Systems upgrade and replacement",
			"Functional re-planning",
		},
	},
}

// stageNames returns the stage set for a template. Comprehensive and
// specialist programmes use the default lifecycle; community and renovation
// programmes carry reduced, renamed stage sets.
func stageNames(templateID string) []string {
	switch templateID {
	case "hospital-community":
		return []string{
			"Project Approval",
			"Concept Design",
			"Construction Drawings",
			"Construction",
			"Completion & Acceptance",
			"Operations & Maintenance",
		}
	case "hospital-renovation":
		return []string{
			"Condition Survey",
			"Renovation Concept",
			"Construction Drawings",
			"Phased Construction",
			"Systems Commissioning",
			"Acceptance & Handover",
			"Operations & Maintenance",
		}
	default:
		return domain.DefaultStageNames
	}
}

// linkSeeds returns the management threads for a template. Community
// programmes keep only the first five.
func linkSeeds(templateID string) []domain.LinkSeed {
	if templateID == "hospital-community" {
		return domain.DefaultLinks[:5]
	}
	return domain.DefaultLinks
}

// sampleItems returns the seed items for one stage/link cell. Seeding keys
// off exact stage and link names, so templates whose stage sets rename a
// stage simply do not receive that stage's seeds.
func sampleItems(templateID, stageName, linkName string) []domain.Item {
	var items []domain.Item

	if stageName == "Project Approval" && linkName == "Requirement Generation" {
		items = append(items, domain.Item{
			Description:  "Front-load medical process requirements",
			Participants: []string{"Planning", "Architecture", "Medical process consulting"},
			Status:       domain.StatusTodo,
			Priority:     domain.PriorityHigh,
			Notes:        "Pin down the hospital's functional needs and clinical workflows",
		})
		if templateID == "hospital-comprehensive" {
			items = append(items, domain.Item{
				Description:  "Survey specialist department requirements",
				Participants: []string{"Medical process consulting", "Clinical specialists", "Hospital"},
				Status:       domain.StatusTodo,
				Priority:     domain.PriorityHigh,
				Notes:        "Capture the special needs of each specialist department",
			})
		}
	}

	if stageName == "Construction Documents" && linkName == "Design Conversion" {
		items = append(items, domain.Item{
			Description:  "Medical gas system design",
			Participants: []string{"MEP", "Medical process", "Equipment suppliers"},
			Status:       domain.StatusTodo,
			Priority:     domain.PriorityMedium,
			Notes:        "Central oxygen supply, vacuum suction and related systems",
		})
		if templateID != "hospital-community" {
			items = append(items, domain.Item{
				Description:  "Cleanroom operating suite design",
				Participants: []string{"Architecture", "MEP", "Clean-air specialists"},
				Status:       domain.StatusTodo,
				Priority:     domain.PriorityHigh,
				Notes:        "Operating suites designed to cleanroom standards",
			})
		}
	}

	if stageName == "Construction" && linkName == "Construction Control" {
		items = append(items, domain.Item{
			Description:  "Medical equipment installation and commissioning",
			Participants: []string{"Equipment suppliers", "Contractor", "Site supervision"},
			Status:       domain.StatusTodo,
			Priority:     domain.PriorityMedium,
			Notes:        "Install and commission the medical equipment",
		})
	}

	return items
}
