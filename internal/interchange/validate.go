package interchange

import (
	"fmt"

	"github.com/alexanderramin/gantry/internal/domain"
)

// ValidateProjectData checks the structural shape of a decoded project tree:
// every stage needs id, name, and a links list; every link needs id, name,
// and an items list; every item needs id and description. The result carries
// one message per missing field per entity — the full defect list in one
// pass, not just the first failure. A present-but-empty list is valid; a
// null entry inside a list is reported as a defect of its own.
//
// Validation is advisory; callers decide whether to proceed.
func ValidateProjectData(p *domain.Project) domain.ValidationResult {
	var errs []string

	if p == nil {
		return domain.ValidationResult{IsValid: false, Errors: []string{"project data must be an object"}}
	}
	if p.Stages == nil {
		errs = append(errs, "project is missing the stages list")
	}

	for si, stage := range p.Stages {
		prefix := fmt.Sprintf("stage %d", si+1)
		if stage == nil {
			errs = append(errs, prefix+" is null")
			continue
		}
		if stage.ID == "" {
			errs = append(errs, prefix+" is missing an id")
		}
		if stage.Name == "" {
			errs = append(errs, prefix+" is missing a name")
		}
		if stage.Links == nil {
			errs = append(errs, prefix+" is missing the links list")
			continue
		}
		for li, link := range stage.Links {
			lprefix := fmt.Sprintf("%s link %d", prefix, li+1)
			if link == nil {
				errs = append(errs, lprefix+" is null")
				continue
			}
			if link.ID == "" {
				errs = append(errs, lprefix+" is missing an id")
			}
			if link.Name == "" {
				errs = append(errs, lprefix+" is missing a name")
			}
			if link.Items == nil {
				errs = append(errs, lprefix+" is missing the items list")
				continue
			}
			for ii, item := range link.Items {
				iprefix := fmt.Sprintf("%s item %d", lprefix, ii+1)
				if item == nil {
					errs = append(errs, iprefix+" is null")
					continue
				}
				if item.ID == "" {
					errs = append(errs, iprefix+" is missing an id")
				}
				if item.Description == "" {
					errs = append(errs, iprefix+" is missing a description")
				}
			}
		}
	}

	return domain.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
