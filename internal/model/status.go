package model

type Status string

const (
	StatusTodo       Status = "to-do"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

var validStatuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Statuses returns the valid statuses in workflow order.
func Statuses() []Status {
	return append([]Status(nil), validStatuses...)
}

func (s Status) Valid() bool {
	for _, v := range validStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Label is the human-readable form used when rendering.
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// Next cycles to-do -> in-progress -> done -> to-do.
func (s Status) Next() Status {
	for i, v := range validStatuses {
		if s == v {
			return validStatuses[(i+1)%len(validStatuses)]
		}
	}
	return StatusTodo
}
