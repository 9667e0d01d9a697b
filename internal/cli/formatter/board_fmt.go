package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantry/internal/domain"
)

// RenderBoard renders the project as a horizontal board: one section per
// stage, one lane per link, items listed in display order with status and
// priority indicators.
func RenderBoard(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(render(StyleHeader, p.Name))
	if span := dateSpan(p.StartDate, p.EndDate); span != "" {
		b.WriteString("  " + render(StyleDim, span))
	}
	b.WriteString("\n\n")

	for _, stage := range p.Stages {
		b.WriteString(renderStageRow(stage))
		b.WriteString("\n")
	}

	return b.String()
}

func renderStageRow(stage *domain.ProjectStage) string {
	var b strings.Builder

	header := render(StyleBold, stage.Name)
	meta := []string{string(stage.Status)}
	if span := dateSpan(stage.StartDate, stage.EndDate); span != "" {
		meta = append(meta, span)
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", header, render(StyleDim, strings.Join(meta, "  "))))

	for _, link := range stage.Links {
		b.WriteString(fmt.Sprintf("  %s %s %s",
			LinkSwatch(link.Color),
			render(StyleFg, link.Name),
			render(StyleDim, "("+link.Owner+")")))
		if len(link.Items) == 0 {
			b.WriteString(render(StyleDim, "  —") + "\n")
			continue
		}
		b.WriteString("\n")
		for _, it := range link.Items {
			line := fmt.Sprintf("      %s %s [%s]",
				StatusLabel(it.Status), it.Description, PriorityLabel(it.Priority))
			if span := dateSpan(it.StartDate, it.EndDate); span != "" {
				line += "  " + render(StyleDim, span)
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// dateSpan renders "start → end" with absent ends left open.
func dateSpan(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " →"
	case start == "":
		return "→ " + end
	default:
		return start + " → " + end
	}
}
