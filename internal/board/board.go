// Package board is the interactive task board: a priority-ordered list with
// keyboard shortcuts that go through the store like every other caller.
package board

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/taskeasy/internal/markdown"
	"github.com/rogersnm/taskeasy/internal/model"
	"github.com/rogersnm/taskeasy/internal/store"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle  = lipgloss.NewStyle().Bold(true)
	editingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// header (title, stats, blank) and footer (message, help)
const chromeLines = 5

// Model holds the board state. The editing pointer lives only here; the store
// knows nothing about it.
type Model struct {
	store     *store.TaskStore
	tasks     []model.Task
	cursor    int
	editingID string
	message   string
	failed    bool
	viewport  viewport.Model
	width     int
	height    int
	now       func() time.Time
}

var _ tea.Model = Model{}

func New(st *store.TaskStore) Model {
	m := Model{
		store:    st,
		viewport: viewport.New(80, 20),
		now:      time.Now,
	}
	m.refresh()
	return m
}

// WithClock overrides the clock used for relative dates.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	m.refresh()
	return m
}

func (m Model) Tasks() []model.Task { return m.tasks }
func (m Model) Cursor() int         { return m.cursor }
func (m Model) EditingID() string   { return m.editingID }
func (m Model) Message() string     { return m.message }

// Selected returns the task under the cursor.
func (m Model) Selected() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeLines, 1)
		m.render()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "enter":
			m.toggleEditing()
		case "s":
			m.cycle(func(t model.Task) model.TaskUpdate {
				next := t.Status.Next()
				return model.TaskUpdate{Status: &next}
			})
		case "p":
			m.cycle(func(t model.Task) model.TaskUpdate {
				next := t.Priority.Next()
				return model.TaskUpdate{Priority: &next}
			})
		}
		m.render()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) toggleEditing() {
	t, ok := m.Selected()
	if !ok {
		return
	}
	if m.editingID == t.ID {
		m.editingID = ""
		m.setMessage("", false)
		return
	}
	m.editingID = t.ID
	m.setMessage("Editing "+t.Title, false)
}

func (m *Model) cycle(change func(model.Task) model.TaskUpdate) {
	t, ok := m.Selected()
	if !ok {
		return
	}
	updated, err := m.store.Update(t.ID, change(t))
	if err != nil {
		var nf *store.NotFoundError
		if errors.As(err, &nf) && m.editingID == t.ID {
			m.editingID = ""
		}
		m.setMessage(err.Error(), true)
		m.refresh()
		return
	}
	m.setMessage(fmt.Sprintf("%s: %s, %s", updated.Title, updated.Priority.Label(), updated.Status.Label()), false)
	m.refresh()
	m.follow(updated.ID)
}

func (m *Model) setMessage(msg string, failed bool) {
	m.message = msg
	m.failed = failed
}

// refresh re-queries the store and clamps the cursor.
func (m *Model) refresh() {
	m.tasks = m.store.SortedByPriority()
	if m.editingID != "" {
		if _, err := m.store.Get(m.editingID); err != nil {
			m.editingID = ""
		}
	}
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.render()
}

// follow moves the cursor to the task with the given id, which may have moved
// after a priority change.
func (m *Model) follow(taskID string) {
	for i, t := range m.tasks {
		if t.ID == taskID {
			m.cursor = i
			break
		}
	}
	m.render()
}

func (m *Model) render() {
	if len(m.tasks) == 0 {
		m.viewport.SetContent(markdown.EmptyState)
		m.viewport.SetYOffset(0)
		return
	}

	now := m.now()
	lines := make([]string, 0, len(m.tasks))
	for i, t := range m.tasks {
		lines = append(lines, m.formatLine(i, t, now))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	top := m.viewport.YOffset
	switch {
	case m.cursor < top:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= top+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m Model) formatLine(i int, t model.Task, now time.Time) string {
	indicator := "  "
	if i == m.cursor {
		indicator = "> "
	}
	line := fmt.Sprintf("%s%s %s %s  %s",
		indicator,
		markdown.PriorityStyle(t.Priority).Width(8).Render(t.Priority.Label()),
		markdown.StatusStyle(t.Status).Width(12).Render(t.Status.Label()),
		t.Title,
		helpStyle.Render(markdown.RelativeTime(t.CreatedAt, now)),
	)
	if t.ID == m.editingID {
		line += " " + editingStyle.Render("[editing]")
	}
	if i == m.cursor {
		return cursorStyle.Render(line)
	}
	return line
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TaskEasy"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(markdown.RenderStoreStats(m.store)))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.message != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.message))
		} else {
			b.WriteString(m.message)
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move • enter edit • s status • p priority • q quit"))
	return b.String()
}

// Run starts the board on the terminal and blocks until it exits.
func Run(st *store.TaskStore) error {
	_, err := tea.NewProgram(New(st), tea.WithAltScreen()).Run()
	return err
}
