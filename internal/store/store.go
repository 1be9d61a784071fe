// Package store owns the task collection: validation, create and update,
// priority ordering and aggregate counts, with the whole collection written
// back to a key-value storage slot after every mutation.
package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rogersnm/taskeasy/internal/id"
	"github.com/rogersnm/taskeasy/internal/kv"
	"github.com/rogersnm/taskeasy/internal/model"
)

// StorageKey is the slot the collection is persisted under.
const StorageKey = "taskeasy-tasks"

const maxIDAttempts = 10

// Reporter receives storage failures. It is never given validation errors.
type Reporter interface {
	Report(msg string, err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(msg string, err error)

func (f ReporterFunc) Report(msg string, err error) { f(msg, err) }

type discard struct{}

func (discard) Report(string, error) {}

// TaskStore is not safe for concurrent use.
type TaskStore struct {
	tasks    []*model.Task
	storage  kv.Storage
	key      string
	reporter Reporter
	now      func() time.Time
	newID    func() (string, error)
}

type Option func(*TaskStore)

func WithReporter(r Reporter) Option {
	return func(s *TaskStore) {
		if r != nil {
			s.reporter = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) { s.now = now }
}

func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *TaskStore) { s.newID = gen }
}

// WithKey overrides StorageKey.
func WithKey(key string) Option {
	return func(s *TaskStore) { s.key = key }
}

// New loads the collection from storage. A nil storage gives an empty,
// unpersisted store; read and parse failures are reported and also give an
// empty store.
func New(storage kv.Storage, opts ...Option) *TaskStore {
	s := &TaskStore{
		storage:  storage,
		key:      StorageKey,
		reporter: discard{},
		now:      now,
		newID:    id.New,
	}
	for _, o := range opts {
		o(s)
	}
	s.tasks = s.load()
	return s
}

func (s *TaskStore) load() []*model.Task {
	if s.storage == nil {
		return nil
	}
	blob, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.reporter.Report("Error loading tasks", err)
		return nil
	}
	if !ok || blob == "" {
		return nil
	}
	tasks, err := Decode(blob)
	if err != nil {
		s.reporter.Report("Error loading tasks", err)
		return nil
	}
	return tasks
}

func (s *TaskStore) save() {
	if s.storage == nil {
		return
	}
	blob, err := Encode(s.tasks)
	if err != nil {
		s.reporter.Report("Error saving tasks", err)
		return
	}
	if err := s.storage.Set(s.key, blob); err != nil {
		s.reporter.Report("Error saving tasks", err)
	}
}

// Create validates in and appends a new task.
func (s *TaskStore) Create(in model.TaskInput) (*model.Task, error) {
	title := model.Text(in.Title)
	if err := firstError(Validate(model.Candidate{
		Title:    title,
		Priority: in.Priority,
		Status:   in.Status,
	})); err != nil {
		return nil, err
	}

	tid, err := s.uniqueID()
	if err != nil {
		return nil, err
	}

	ts := s.now()
	t := &model.Task{
		ID:          tid,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(model.Text(in.Description)),
		Priority:    in.Priority,
		Status:      in.Status,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	s.tasks = append(s.tasks, t)
	s.save()

	out := *t
	return &out, nil
}

// Update merges upd over the task with the given id and revalidates. On any
// error the stored task is left untouched.
func (s *TaskStore) Update(taskID string, upd model.TaskUpdate) (*model.Task, error) {
	idx := s.indexOf(taskID)
	if idx < 0 {
		return nil, &NotFoundError{ID: taskID}
	}

	merged := *s.tasks[idx]
	if upd.Title != nil {
		merged.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		merged.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Priority != nil {
		merged.Priority = *upd.Priority
	}
	if upd.Status != nil {
		merged.Status = *upd.Status
	}

	if err := firstError(Validate(model.Candidate{
		Title:    merged.Title,
		Priority: merged.Priority,
		Status:   merged.Status,
	})); err != nil {
		return nil, err
	}

	merged.UpdatedAt = s.now()
	if merged.UpdatedAt.Before(merged.CreatedAt) {
		merged.UpdatedAt = merged.CreatedAt
	}
	s.tasks[idx] = &merged
	s.save()

	out := merged
	return &out, nil
}

// Get returns a copy of the task with the given id.
func (s *TaskStore) Get(taskID string) (*model.Task, error) {
	idx := s.indexOf(taskID)
	if idx < 0 {
		return nil, &NotFoundError{ID: taskID}
	}
	out := *s.tasks[idx]
	return &out, nil
}

// Tasks returns copies of all non-nil entries in creation order.
func (s *TaskStore) Tasks() []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// Len counts raw entries, including nil ones loaded from storage.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// SortedByPriority returns a new slice ordered high, medium, low. Entries
// that are nil or have no priority are dropped; ties keep creation order.
func (s *TaskStore) SortedByPriority() []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t == nil || t.Priority == "" {
			continue
		}
		out = append(out, *t)
	}
	slices.SortStableFunc(out, func(a, b model.Task) int {
		return a.Priority.Rank() - b.Priority.Rank()
	})
	return out
}

type PriorityStats struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

func (p PriorityStats) String() string {
	return fmt.Sprintf("%dH/%dM/%dL", p.High, p.Medium, p.Low)
}

// PriorityStats counts tasks by priority. Unrecognized priorities are ignored.
func (s *TaskStore) PriorityStats() PriorityStats {
	var ps PriorityStats
	for _, t := range s.tasks {
		if t == nil {
			continue
		}
		switch t.Priority {
		case model.PriorityHigh:
			ps.High++
		case model.PriorityMedium:
			ps.Medium++
		case model.PriorityLow:
			ps.Low++
		}
	}
	return ps
}

type StatusStats struct {
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
}

// StatusStats counts tasks by status. Unrecognized statuses are ignored.
func (s *TaskStore) StatusStats() StatusStats {
	var ss StatusStats
	for _, t := range s.tasks {
		if t == nil {
			continue
		}
		switch t.Status {
		case model.StatusTodo:
			ss.Todo++
		case model.StatusInProgress:
			ss.InProgress++
		case model.StatusDone:
			ss.Done++
		}
	}
	return ss
}

func (s *TaskStore) indexOf(taskID string) int {
	return slices.IndexFunc(s.tasks, func(t *model.Task) bool {
		return t != nil && t.ID == taskID
	})
}

func (s *TaskStore) uniqueID() (string, error) {
	for range maxIDAttempts {
		tid, err := s.newID()
		if err != nil {
			return "", err
		}
		if tid != "" && s.indexOf(tid) < 0 {
			return tid, nil
		}
	}
	return "", fmt.Errorf("generating id: no unique id after %d attempts", maxIDAttempts)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
