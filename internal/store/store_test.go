package store

import (
	"testing"
	"time"

	"todoapi/internal/domain"
)

func TestInsertDefaults(t *testing.T) {
	s := New()
	todo := s.Insert("  Buy milk  ", "", "", nil)

	if todo.ID != "1" {
		t.Errorf("first id = %q, want %q", todo.ID, "1")
	}
	if todo.Title != "Buy milk" {
		t.Errorf("title = %q, want trimmed %q", todo.Title, "Buy milk")
	}
	if todo.Completed {
		t.Error("new todo should not be completed")
	}
	if todo.Priority != domain.PriorityMedium {
		t.Errorf("priority = %q, want default %q", todo.Priority, domain.PriorityMedium)
	}
	if !todo.CreatedAt.Equal(todo.UpdatedAt) {
		t.Errorf("createdAt %v != updatedAt %v at creation", todo.CreatedAt, todo.UpdatedAt)
	}
	if todo.DueDate != nil {
		t.Errorf("dueDate = %v, want nil", todo.DueDate)
	}
}

func TestIDsAreSequentialAndNeverReused(t *testing.T) {
	s := New()
	s.Insert("a", "", domain.PriorityLow, nil)
	b := s.Insert("b", "", domain.PriorityLow, nil)
	if b.ID != "2" {
		t.Fatalf("second id = %q, want %q", b.ID, "2")
	}
	if _, ok := s.Delete("2"); !ok {
		t.Fatal("delete of existing id failed")
	}
	c := s.Insert("c", "", domain.PriorityLow, nil)
	if c.ID != "3" {
		t.Errorf("id after delete = %q, want %q (ids must not be reused)", c.ID, "3")
	}
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	s := New()
	created := s.Insert("task", "desc", domain.PriorityLow, nil)

	time.Sleep(time.Millisecond)
	done := true
	got, ok := s.Update(created.ID, Patch{Completed: &done})
	if !ok {
		t.Fatal("update of existing id failed")
	}
	if !got.Completed {
		t.Error("completed not applied")
	}
	if got.Title != "task" || got.Description != "desc" || got.Priority != domain.PriorityLow {
		t.Errorf("unspecified fields changed: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt must be immutable")
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updatedAt %v not after %v", got.UpdatedAt, created.UpdatedAt)
	}
}

func TestUpdateTrimsStrings(t *testing.T) {
	s := New()
	created := s.Insert("task", "", domain.PriorityLow, nil)

	title := "  renamed  "
	got, ok := s.Update(created.ID, Patch{Title: &title})
	if !ok {
		t.Fatal("update failed")
	}
	if got.Title != "renamed" {
		t.Errorf("title = %q, want trimmed %q", got.Title, "renamed")
	}
}

func TestUpdateDueDateSetAndClear(t *testing.T) {
	s := New()
	created := s.Insert("task", "", domain.PriorityLow, nil)

	due := time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC)
	got, ok := s.Update(created.ID, Patch{DueDate: &due, SetDueDate: true})
	if !ok || got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("set due date: got %+v", got.DueDate)
	}

	got, ok = s.Update(created.ID, Patch{SetDueDate: true})
	if !ok || got.DueDate != nil {
		t.Errorf("clear due date: got %+v, want nil", got.DueDate)
	}

	// Patch without SetDueDate must not touch the date.
	if _, ok := s.Update(created.ID, Patch{DueDate: &due, SetDueDate: true}); !ok {
		t.Fatal("update failed")
	}
	title := "x"
	got, _ = s.Update(created.ID, Patch{Title: &title})
	if got.DueDate == nil {
		t.Error("due date cleared by unrelated patch")
	}
}

func TestDeletePreservesOrder(t *testing.T) {
	s := New()
	s.Insert("a", "", domain.PriorityLow, nil)
	s.Insert("b", "", domain.PriorityLow, nil)
	s.Insert("c", "", domain.PriorityLow, nil)

	removed, ok := s.Delete("2")
	if !ok || removed.Title != "b" {
		t.Fatalf("delete returned %+v, ok=%v", removed, ok)
	}

	all := s.All()
	if len(all) != 2 || all[0].Title != "a" || all[1].Title != "c" {
		t.Errorf("order after delete: %+v", all)
	}
}

func TestNotFoundOutcomes(t *testing.T) {
	s := New()
	s.Insert("a", "", domain.PriorityLow, nil)

	for _, id := range []string{"999", "abc", ""} {
		if _, ok := s.Get(id); ok {
			t.Errorf("Get(%q) found something", id)
		}
		if _, ok := s.Update(id, Patch{}); ok {
			t.Errorf("Update(%q) found something", id)
		}
		if _, ok := s.Delete(id); ok {
			t.Errorf("Delete(%q) found something", id)
		}
	}
	if len(s.All()) != 1 {
		t.Error("failed lookups must not mutate the collection")
	}
}

func TestAllReturnsACopy(t *testing.T) {
	s := New()
	s.Insert("a", "", domain.PriorityLow, nil)

	all := s.All()
	all[0].Title = "mutated"

	got, _ := s.Get("1")
	if got.Title != "a" {
		t.Error("mutating the All() slice leaked into the store")
	}
}
