package service

import (
	"errors"
	"time"

	"todoapi/internal/domain"
	"todoapi/internal/query"
	"todoapi/internal/stats"
	"todoapi/internal/store"
)

var ErrNotFound = errors.New("todo not found")

// TodoService orchestrates the store, query engine and stats aggregator.
// Nothing here blocks, so methods take no context.
type TodoService struct {
	store *store.TodoStore
}

func NewTodoService(s *store.TodoStore) *TodoService {
	return &TodoService{store: s}
}

func (s *TodoService) Create(title, description string, priority domain.Priority, dueDate *time.Time) domain.Todo {
	return s.store.Insert(title, description, priority, dueDate)
}

// List returns the filtered, sorted view and its length.
func (s *TodoService) List(f query.Filters) ([]domain.Todo, int) {
	list := f.Apply(s.store.All())
	return list, len(list)
}

func (s *TodoService) Get(id string) (domain.Todo, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return domain.Todo{}, ErrNotFound
	}
	return t, nil
}

func (s *TodoService) Update(id string, p store.Patch) (domain.Todo, error) {
	t, ok := s.store.Update(id, p)
	if !ok {
		return domain.Todo{}, ErrNotFound
	}
	return t, nil
}

// Complete is the shorthand for updating only the completed flag.
func (s *TodoService) Complete(id string) (domain.Todo, error) {
	done := true
	return s.Update(id, store.Patch{Completed: &done})
}

func (s *TodoService) Delete(id string) (domain.Todo, error) {
	t, ok := s.store.Delete(id)
	if !ok {
		return domain.Todo{}, ErrNotFound
	}
	return t, nil
}

// Stats recomputes the summary on every call.
func (s *TodoService) Stats() stats.Summary {
	return stats.Collect(s.store.All(), time.Now().UTC())
}
