// Package store holds the authoritative in-memory todo collection.
package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"todoapi/internal/domain"
)

// Patch is a partial update: nil pointer = leave the field unchanged.
// SetDueDate marks that DueDate carries a value (possibly nil, which clears).
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *domain.Priority
	DueDate     *time.Time
	SetDueDate  bool
}

// TodoStore owns the collection and the id counter. The mutex restores the
// per-request atomicity the routes need under Go's concurrent handlers;
// there are no cross-request transactions.
type TodoStore struct {
	mu    sync.RWMutex
	seq   int64
	todos []domain.Todo
}

func New() *TodoStore {
	return &TodoStore{}
}

// Insert appends a new todo in insertion order. Ids are decimal strings of a
// counter starting at 1; an id is never reused, even after deletion.
func (s *TodoStore) Insert(title, description string, priority domain.Priority, dueDate *time.Time) domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !priority.Valid() {
		priority = domain.PriorityMedium
	}
	s.seq++
	now := time.Now().UTC()
	t := domain.Todo{
		ID:          strconv.FormatInt(s.seq, 10),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.todos = append(s.todos, t)
	return t
}

// Get returns the todo with the given id, or false if absent.
func (s *TodoStore) Get(id string) (domain.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			return s.todos[i], true
		}
	}
	return domain.Todo{}, false
}

// Update applies the fields present in the patch and refreshes UpdatedAt.
// Returns false if no todo has the given id.
func (s *TodoStore) Update(id string, p Patch) (domain.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		t := &s.todos[i]
		if p.Title != nil {
			t.Title = strings.TrimSpace(*p.Title)
		}
		if p.Description != nil {
			t.Description = strings.TrimSpace(*p.Description)
		}
		if p.Completed != nil {
			t.Completed = *p.Completed
		}
		if p.Priority != nil && p.Priority.Valid() {
			t.Priority = *p.Priority
		}
		if p.SetDueDate {
			t.DueDate = p.DueDate
		}
		t.UpdatedAt = time.Now().UTC()
		return *t, true
	}
	return domain.Todo{}, false
}

// Delete removes the todo with the given id, preserving the relative order
// of the remaining records, and returns the removed value.
func (s *TodoStore) Delete(id string) (domain.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			t := s.todos[i]
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return t, true
		}
	}
	return domain.Todo{}, false
}

// All returns a copy of the collection in insertion order. Mutating the
// returned slice does not affect the store.
func (s *TodoStore) All() []domain.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}
