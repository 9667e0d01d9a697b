package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantry/internal/domain"
)

const barWidth = 24

// RenderDashboard renders aggregate item statistics as a small dashboard:
// total, a bar per status bucket, and a bar per priority bucket.
func RenderDashboard(stats domain.ItemStatistics) string {
	var b strings.Builder

	b.WriteString(render(StyleHeader, "Item statistics") + "\n\n")
	b.WriteString(fmt.Sprintf("Total items: %s\n\n", render(StyleBold, fmt.Sprintf("%d", stats.Total))))

	b.WriteString(render(StyleBold, "By status") + "\n")
	for _, status := range []domain.ItemStatus{domain.StatusTodo, domain.StatusInProgress, domain.StatusDone} {
		label := render(StatusStyle(status), fmt.Sprintf("%-12s", status))
		b.WriteString(fmt.Sprintf("  %s %s %d\n", label, bar(stats.ByStatus[status], stats.Total), stats.ByStatus[status]))
	}

	b.WriteString("\n" + render(StyleBold, "By priority") + "\n")
	for _, priority := range []domain.ItemPriority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		label := fmt.Sprintf("%-12s", priority)
		b.WriteString(fmt.Sprintf("  %s %s %d\n", label, bar(stats.ByPriority[priority], stats.Total), stats.ByPriority[priority]))
	}

	return b.String()
}

// bar scales a count against the total into a fixed-width block bar. A
// non-zero count always shows at least one filled cell.
func bar(count, total int) string {
	filled := 0
	if total > 0 {
		filled = count * barWidth / total
	}
	if count > 0 && filled == 0 {
		filled = 1
	}
	return render(StyleGreen, strings.Repeat("█", filled)) +
		render(StyleDim, strings.Repeat("░", barWidth-filled))
}
