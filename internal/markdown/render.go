package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/taskeasy/internal/model"
	"github.com/rogersnm/taskeasy/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	highStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	todoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	inProgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true)
)

const EmptyState = "No tasks yet. Create your first task with: taskeasy task create <title>\n" +
	"Tasks are sorted by priority: High → Medium → Low"

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func PriorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return highStyle
	case model.PriorityMedium:
		return mediumStyle
	case model.PriorityLow:
		return lowStyle
	default:
		return labelStyle
	}
}

func StatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusDone:
		return doneStyle
	case model.StatusInProgress:
		return inProgStyle
	default:
		return todoStyle
	}
}

func RenderPriority(p model.Priority) string {
	return PriorityStyle(p).Render(p.Label())
}

func RenderStatus(s model.Status) string {
	return StatusStyle(s).Render(s.Label())
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// RenderDates shows "Created: X", plus "• Updated: Y" once the task has been edited.
func RenderDates(t *model.Task, now time.Time) string {
	s := "Created: " + RelativeTime(t.CreatedAt, now)
	if t.Edited() {
		s += " • Updated: " + RelativeTime(t.UpdatedAt, now)
	}
	return subtleStyle.Render(s)
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}

// RenderStats renders the summary line, e.g.
// "4 tasks created • 1 done • 2 active • 1 todo • Priority: 2H/1M/1L".
func RenderStats(total int, ps store.PriorityStats, ss store.StatusStats) string {
	plural := "s"
	if total == 1 {
		plural = ""
	}
	s := fmt.Sprintf("%d task%s created", total, plural)
	if total > 0 {
		s += fmt.Sprintf(" • %d done • %d active • %d todo • Priority: %s", ss.Done, ss.InProgress, ss.Todo, ps)
	}
	return s
}

// RenderStoreStats renders the summary line for everything in st.
func RenderStoreStats(st *store.TaskStore) string {
	return RenderStats(len(st.Tasks()), st.PriorityStats(), st.StatusStats())
}
