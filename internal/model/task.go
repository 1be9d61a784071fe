package model

import "time"

type Task struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description,omitempty"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	Status      Status    `json:"status" yaml:"status"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updated_at"`
}

// Edited reports whether the task has been updated since creation.
func (t *Task) Edited() bool {
	return !t.UpdatedAt.Equal(t.CreatedAt)
}

// Candidate is the set of fields checked by validation. Title is the
// coerced but untrimmed title.
type Candidate struct {
	Title    string
	Priority Priority
	Status   Status
}

// TaskInput carries the fields for a new task. Title and Description accept
// loosely typed values and are converted with Text.
type TaskInput struct {
	Title       any
	Description any
	Priority    Priority
	Status      Status
}

// TaskUpdate carries a partial update. Nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
}

// Empty reports whether no field is set.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil && u.Status == nil
}

// UpdateFromFields builds a TaskUpdate from loosely typed fields such as a
// decoded JSON object. A key that is present sets its field, even when the
// value is nil; absent keys are left unset. Unknown keys are ignored.
func UpdateFromFields(fields map[string]any) TaskUpdate {
	var u TaskUpdate
	if v, ok := fields["title"]; ok {
		s := Text(v)
		u.Title = &s
	}
	if v, ok := fields["description"]; ok {
		s := Text(v)
		u.Description = &s
	}
	if v, ok := fields["priority"]; ok {
		p := Priority(Text(v))
		u.Priority = &p
	}
	if v, ok := fields["status"]; ok {
		s := Status(Text(v))
		u.Status = &s
	}
	return u
}

// InputFromFields is the TaskInput counterpart of UpdateFromFields.
func InputFromFields(fields map[string]any) TaskInput {
	return TaskInput{
		Title:       fields["title"],
		Description: fields["description"],
		Priority:    Priority(Text(fields["priority"])),
		Status:      Status(Text(fields["status"])),
	}
}
