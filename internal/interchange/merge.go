package interchange

import "github.com/alexanderramin/gantry/internal/domain"

// MergeProjectData combines two project trees additively. The base tree is
// deep-cloned and never mutated. For each incoming stage, the first base
// stage with the same name is the merge target; within a matched stage the
// first base link with the same name is the link target. Matched links get
// the incoming items appended after the base items, with no item-level
// deduplication. Unmatched links and stages are appended whole. Nothing is
// ever deleted.
//
// Names are not required to be unique; when duplicates exist only the first
// occurrence is ever a merge target.
func MergeProjectData(base, incoming *domain.Project) (*domain.Project, error) {
	merged, err := DeepCloneProject(base)
	if err != nil {
		return nil, err
	}
	if incoming == nil {
		return merged, nil
	}

	for _, inStage := range incoming.Stages {
		target := stageByName(merged, inStage.Name)
		if target == nil {
			merged.Stages = append(merged.Stages, inStage.Clone())
			continue
		}
		for _, inLink := range inStage.Links {
			linkTarget := linkByName(target, inLink.Name)
			if linkTarget == nil {
				target.Links = append(target.Links, inLink.Clone())
				continue
			}
			for _, it := range inLink.Items {
				linkTarget.Items = append(linkTarget.Items, it.Clone())
			}
		}
	}

	return merged, nil
}

func stageByName(p *domain.Project, name string) *domain.ProjectStage {
	for _, s := range p.Stages {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func linkByName(s *domain.ProjectStage, name string) *domain.Link {
	for _, l := range s.Links {
		if l.Name == name {
			return l
		}
	}
	return nil
}
