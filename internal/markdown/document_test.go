package markdown

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rogersnm/taskeasy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTask() *model.Task {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.Task{
		ID:          "abc23def45",
		Title:       "Write report",
		Description: "Quarterly numbers.",
		Priority:    model.PriorityHigh,
		Status:      model.StatusTodo,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestEncodeTask(t *testing.T) {
	out, err := EncodeTask(sampleTask())
	require.NoError(t, err)
	s := string(out)
	assert.True(t, strings.HasPrefix(s, "---\n"))
	assert.Contains(t, s, "id: abc23def45\n")
	assert.Contains(t, s, "title: Write report\n")
	assert.Contains(t, s, "priority: high\n")
	assert.Contains(t, s, "status: to-do\n")
	assert.True(t, strings.HasSuffix(s, "---\n\nQuarterly numbers.\n"))
}

func TestEncodeTask_NoDescription(t *testing.T) {
	task := sampleTask()
	task.Description = ""
	out, err := EncodeTask(task)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "---\n"))
}

func TestDecodeTask_RoundTrip(t *testing.T) {
	task := sampleTask()
	out, err := EncodeTask(task)
	require.NoError(t, err)

	doc, desc, err := DecodeTask(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, task.ID, doc.ID)
	assert.Equal(t, task.Title, doc.Title)
	assert.Equal(t, task.Priority, doc.Priority)
	assert.Equal(t, task.Status, doc.Status)
	assert.Equal(t, task.Description, desc)
	assert.True(t, doc.Update(task, desc).Empty())
}

func TestDecodeTask_EditedFields(t *testing.T) {
	input := `---
id: abc23def45
title: "Write the report"
priority: low
status: in-progress
---

Numbers for Q3.
`
	task := sampleTask()
	doc, desc, err := DecodeTask(strings.NewReader(input))
	require.NoError(t, err)

	upd := doc.Update(task, desc)
	require.NotNil(t, upd.Title)
	assert.Equal(t, "Write the report", *upd.Title)
	require.NotNil(t, upd.Description)
	assert.Equal(t, "Numbers for Q3.", *upd.Description)
	require.NotNil(t, upd.Priority)
	assert.Equal(t, model.PriorityLow, *upd.Priority)
	require.NotNil(t, upd.Status)
	assert.Equal(t, model.StatusInProgress, *upd.Status)
}

func TestDecodeTask_OnlyTitleChanged(t *testing.T) {
	input := `---
title: Renamed
priority: high
status: to-do
---

Quarterly numbers.
`
	task := sampleTask()
	doc, desc, err := DecodeTask(strings.NewReader(input))
	require.NoError(t, err)

	upd := doc.Update(task, desc)
	require.NotNil(t, upd.Title)
	assert.Nil(t, upd.Description)
	assert.Nil(t, upd.Priority)
	assert.Nil(t, upd.Status)
}

func TestDecodeTask_InvalidYAML(t *testing.T) {
	input := "---\ntitle: [unclosed\n---\n"
	_, _, err := DecodeTask(strings.NewReader(input))
	assert.Error(t, err)
}
