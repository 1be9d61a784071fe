package markdown

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogersnm/taskeasy/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

// RenderTaskTable renders tasks in the order given.
func RenderTaskTable(tasks []model.Task, now time.Time) string {
	if len(tasks) == 0 {
		return EmptyState
	}
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		updated := ""
		if t.Edited() {
			updated = RelativeTime(t.UpdatedAt, now)
		}
		rows[i] = []string{
			t.ID,
			t.Title,
			RenderPriority(t.Priority),
			RenderStatus(t.Status),
			RelativeTime(t.CreatedAt, now),
			updated,
		}
	}
	return renderTable([]string{"ID", "Title", "Priority", "Status", "Created", "Updated"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
