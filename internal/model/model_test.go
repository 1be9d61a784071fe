package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Valid(t *testing.T) {
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		assert.True(t, p.Valid())
	}
	for _, p := range []Priority{"", "HIGH", "urgent", " high"} {
		assert.False(t, p.Valid(), "expected %q to be invalid", p)
	}
}

func TestPriority_Rank(t *testing.T) {
	assert.Equal(t, 1, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 3, PriorityLow.Rank())
	assert.Equal(t, 4, Priority("bogus").Rank())
}

func TestPriority_Next(t *testing.T) {
	assert.Equal(t, PriorityMedium, PriorityHigh.Next())
	assert.Equal(t, PriorityLow, PriorityMedium.Next())
	assert.Equal(t, PriorityHigh, PriorityLow.Next())
	assert.Equal(t, PriorityHigh, Priority("").Next())
}

func TestStatus_ValidAndLabels(t *testing.T) {
	assert.True(t, StatusTodo.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, Status("in_progress").Valid())

	assert.Equal(t, "To Do", StatusTodo.Label())
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "Done", StatusDone.Label())
}

func TestStatus_Next(t *testing.T) {
	assert.Equal(t, StatusInProgress, StatusTodo.Next())
	assert.Equal(t, StatusDone, StatusInProgress.Next())
	assert.Equal(t, StatusTodo, StatusDone.Next())
}

type named struct{}

func (named) String() string { return "named" }

func TestText(t *testing.T) {
	s := "ptr"
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"  spaced  ", "  spaced  "},
		{&s, "ptr"},
		{(*string)(nil), ""},
		{true, "true"},
		{false, "false"},
		{123, "123"},
		{int64(-7), "-7"},
		{uint8(9), "9"},
		{1.5, "1.5"},
		{2.0, "2"},
		{1e21, "1000000000000000000000"},
		{json.Number("42"), "42"},
		{named{}, "named"},
		{errors.New("boom"), "boom"},
		{map[string]any{"a": 1}, `{"a":1}`},
		{[]int{1, 2}, "[1,2]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Text(tt.in), "Text(%#v)", tt.in)
	}
}

func TestUpdateFromFields_PresentKeysOnly(t *testing.T) {
	u := UpdateFromFields(map[string]any{"status": "done"})
	require.NotNil(t, u.Status)
	assert.Equal(t, StatusDone, *u.Status)
	assert.Nil(t, u.Title)
	assert.Nil(t, u.Description)
	assert.Nil(t, u.Priority)
}

func TestUpdateFromFields_NilValueIsProvided(t *testing.T) {
	u := UpdateFromFields(map[string]any{"title": nil, "description": 12})
	require.NotNil(t, u.Title)
	assert.Equal(t, "", *u.Title)
	require.NotNil(t, u.Description)
	assert.Equal(t, "12", *u.Description)
}

func TestTaskUpdate_Empty(t *testing.T) {
	assert.True(t, TaskUpdate{}.Empty())
	title := "x"
	assert.False(t, TaskUpdate{Title: &title}.Empty())
}

func TestInputFromFields(t *testing.T) {
	in := InputFromFields(map[string]any{"title": 5, "priority": "high"})
	assert.Equal(t, 5, in.Title)
	assert.Nil(t, in.Description)
	assert.Equal(t, PriorityHigh, in.Priority)
	assert.Equal(t, Status(""), in.Status)
}

func TestTask_Edited(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	task := &Task{CreatedAt: now, UpdatedAt: now}
	assert.False(t, task.Edited())
	task.UpdatedAt = now.Add(time.Minute)
	assert.True(t, task.Edited())
}
