package query

import (
	"net/url"
	"testing"
	"time"

	"todoapi/internal/domain"
)

func mkTodo(id, title, desc string, completed bool, prio domain.Priority, created time.Time, due *time.Time) domain.Todo {
	return domain.Todo{
		ID: id, Title: title, Description: desc, Completed: completed,
		Priority: prio, CreatedAt: created, UpdatedAt: created, DueDate: due,
	}
}

func ts(day int) time.Time {
	return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
}

func fixture() []domain.Todo {
	due := ts(20)
	return []domain.Todo{
		mkTodo("1", "Buy milk", "from the corner shop", false, domain.PriorityLow, ts(1), nil),
		mkTodo("2", "write report", "", true, domain.PriorityHigh, ts(2), &due),
		mkTodo("3", "Call dentist", "about the MILK tooth", false, domain.PriorityMedium, ts(3), nil),
	}
}

func ids(todos []domain.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, f Filters)
	}{
		{"defaults", "", func(t *testing.T, f Filters) {
			if f.SortBy != SortByCreatedAt || f.Order != OrderDesc {
				t.Errorf("defaults = %q/%q", f.SortBy, f.Order)
			}
			if f.Completed != nil || f.Priority != "" || f.Search != "" {
				t.Errorf("unexpected filters: %+v", f)
			}
		}},
		{"completed true", "completed=true", func(t *testing.T, f Filters) {
			if f.Completed == nil || !*f.Completed {
				t.Errorf("completed = %v", f.Completed)
			}
		}},
		{"completed garbage ignored", "completed=yes", func(t *testing.T, f Filters) {
			if f.Completed != nil {
				t.Errorf("completed = %v, want nil", f.Completed)
			}
		}},
		{"invalid priority ignored", "priority=urgent", func(t *testing.T, f Filters) {
			if f.Priority != "" {
				t.Errorf("priority = %q, want empty", f.Priority)
			}
		}},
		{"invalid sortBy falls back", "sortBy=bogus&order=asc", func(t *testing.T, f Filters) {
			if f.SortBy != SortByCreatedAt {
				t.Errorf("sortBy = %q", f.SortBy)
			}
			if f.Order != OrderAsc {
				t.Errorf("order = %q", f.Order)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, ParseFilters(values))
		})
	}
}

func TestFilterByCompleted(t *testing.T) {
	v := true
	got := Filters{Completed: &v, SortBy: SortByCreatedAt, Order: OrderAsc}.Apply(fixture())
	if !equalIDs(ids(got), "2") {
		t.Errorf("got %v, want [2]", ids(got))
	}
}

func TestFilterByPriority(t *testing.T) {
	got := Filters{Priority: domain.PriorityLow, SortBy: SortByCreatedAt, Order: OrderAsc}.Apply(fixture())
	if !equalIDs(ids(got), "1") {
		t.Errorf("got %v, want [1]", ids(got))
	}
}

func TestNoPriorityFilterReturnsAll(t *testing.T) {
	got := Filters{SortBy: SortByCreatedAt, Order: OrderAsc}.Apply(fixture())
	if len(got) != 3 {
		t.Errorf("got %d todos, want 3", len(got))
	}
}

func TestSearchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	got := Filters{Search: "milk", SortBy: SortByCreatedAt, Order: OrderAsc}.Apply(fixture())
	// "Buy milk" by title, "Call dentist" by description ("MILK tooth").
	if !equalIDs(ids(got), "1", "3") {
		t.Errorf("got %v, want [1 3]", ids(got))
	}
}

func TestSortByTitleIgnoresCase(t *testing.T) {
	got := Filters{SortBy: SortByTitle, Order: OrderAsc}.Apply(fixture())
	if !equalIDs(ids(got), "1", "3", "2") {
		t.Errorf("asc by title: %v, want [1 3 2]", ids(got))
	}
	got = Filters{SortBy: SortByTitle, Order: OrderDesc}.Apply(fixture())
	if !equalIDs(ids(got), "2", "3", "1") {
		t.Errorf("desc by title: %v, want [2 3 1]", ids(got))
	}
}

func TestSortByPriorityDescGroupsHighFirst(t *testing.T) {
	got := Filters{SortBy: SortByPriority, Order: OrderDesc}.Apply(fixture())
	if !equalIDs(ids(got), "2", "3", "1") {
		t.Errorf("got %v, want [2 3 1]", ids(got))
	}
}

func TestSortByDueDateTreatsMissingAsEpoch(t *testing.T) {
	// Ascending: the two without due dates (epoch) first, in insertion order.
	got := Filters{SortBy: SortByDueDate, Order: OrderAsc}.Apply(fixture())
	if !equalIDs(ids(got), "1", "3", "2") {
		t.Errorf("asc by dueDate: %v, want [1 3 2]", ids(got))
	}
	got = Filters{SortBy: SortByDueDate, Order: OrderDesc}.Apply(fixture())
	if !equalIDs(ids(got), "2", "1", "3") {
		t.Errorf("desc by dueDate: %v, want [2 1 3]", ids(got))
	}
}

func TestDefaultSortIsCreatedAtDesc(t *testing.T) {
	got := Filters{SortBy: SortByCreatedAt, Order: OrderDesc}.Apply(fixture())
	if !equalIDs(ids(got), "3", "2", "1") {
		t.Errorf("got %v, want [3 2 1]", ids(got))
	}
}

func TestEqualKeysKeepInsertionOrder(t *testing.T) {
	same := []domain.Todo{
		mkTodo("1", "a", "", false, domain.PriorityMedium, ts(1), nil),
		mkTodo("2", "b", "", false, domain.PriorityMedium, ts(2), nil),
		mkTodo("3", "c", "", false, domain.PriorityMedium, ts(3), nil),
	}
	got := Filters{SortBy: SortByPriority, Order: OrderDesc}.Apply(same)
	if !equalIDs(ids(got), "1", "2", "3") {
		t.Errorf("ties must keep insertion order, got %v", ids(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := fixture()
	Filters{SortBy: SortByTitle, Order: OrderAsc}.Apply(in)
	if !equalIDs(ids(in), "1", "2", "3") {
		t.Errorf("input reordered: %v", ids(in))
	}
}
