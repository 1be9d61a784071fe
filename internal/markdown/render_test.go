package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/rogersnm/taskeasy/internal/kv"
	"github.com/rogersnm/taskeasy/internal/model"
	"github.com/rogersnm/taskeasy/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{time.Minute, "1m ago"},
		{59 * time.Minute, "59m ago"},
		{time.Hour, "1h ago"},
		{23 * time.Hour, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{6 * 24 * time.Hour, "6d ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now), tt.ago.String())
	}
}

func TestRelativeTime_OlderThanWeek(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	then := time.Date(2026, 2, 1, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "Feb 1", RelativeTime(then, now))
}

func TestRenderStats(t *testing.T) {
	ps := store.PriorityStats{High: 2, Medium: 1, Low: 1}
	ss := store.StatusStats{Todo: 1, InProgress: 2, Done: 1}
	assert.Equal(t, "4 tasks created • 1 done • 2 active • 1 todo • Priority: 2H/1M/1L", RenderStats(4, ps, ss))
}

func TestRenderStats_Singular(t *testing.T) {
	ps := store.PriorityStats{Low: 1}
	ss := store.StatusStats{Todo: 1}
	assert.Equal(t, "1 task created • 0 done • 0 active • 1 todo • Priority: 0H/0M/1L", RenderStats(1, ps, ss))
}

func TestRenderStats_Empty(t *testing.T) {
	assert.Equal(t, "0 tasks created", RenderStats(0, store.PriorityStats{}, store.StatusStats{}))
}

func TestRenderStoreStats(t *testing.T) {
	st := store.New(kv.NewMemory())
	_, err := st.Create(model.TaskInput{Title: "A", Priority: model.PriorityHigh, Status: model.StatusDone})
	require.NoError(t, err)
	_, err = st.Create(model.TaskInput{Title: "B", Priority: model.PriorityLow, Status: model.StatusTodo})
	require.NoError(t, err)
	assert.Equal(t, "2 tasks created • 1 done • 0 active • 1 todo • Priority: 1H/0M/1L", RenderStoreStats(st))
}

func TestRenderTaskTable_Empty(t *testing.T) {
	assert.Equal(t, EmptyState, RenderTaskTable(nil, time.Now()))
}

func TestRenderTaskTable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "aaaaaaaaaa", Title: "Ship it", Priority: model.PriorityHigh, Status: model.StatusTodo,
			CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "bbbbbbbbbb", Title: "Tidy up", Priority: model.PriorityLow, Status: model.StatusDone,
			CreatedAt: now.Add(-3 * 24 * time.Hour), UpdatedAt: now.Add(-5 * time.Minute)},
	}
	out := RenderTaskTable(tasks, now)
	for _, want := range []string{"ID", "Title", "Priority", "Status", "Created", "Updated",
		"aaaaaaaaaa", "Ship it", "High", "To Do", "2h ago",
		"bbbbbbbbbb", "Tidy up", "Low", "Done", "3d ago", "5m ago"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Ship it"), strings.Index(out, "Tidy up"))
}

func TestRenderDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	task := sampleTask()
	task.CreatedAt = now.Add(-time.Hour)
	task.UpdatedAt = task.CreatedAt
	out := RenderDates(task, now)
	assert.Contains(t, out, "Created: 1h ago")
	assert.NotContains(t, out, "Updated")

	task.UpdatedAt = now
	assert.Contains(t, RenderDates(task, now), "Updated: Just now")
}

func TestRenderLabels(t *testing.T) {
	assert.Contains(t, RenderPriority(model.PriorityMedium), "Medium")
	assert.Contains(t, RenderStatus(model.StatusInProgress), "In Progress")
	assert.Contains(t, RenderField("Status", "x"), "Status:")
}

func TestRenderEntityHeader(t *testing.T) {
	out := RenderEntityHeader("Ship it", []string{"a", "b"})
	assert.Contains(t, out, "Ship it")
	assert.Contains(t, out, "  a\n")
	assert.Contains(t, out, "  b\n")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Heading\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "bold")
}
