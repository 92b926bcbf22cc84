// Package query derives filtered, sorted views of the collection without
// touching the store.
package query

import (
	"net/url"
	"sort"
	"strings"

	"todoapi/internal/domain"
)

type SortKey string

const (
	SortByTitle     SortKey = "title"
	SortByPriority  SortKey = "priority"
	SortByDueDate   SortKey = "dueDate"
	SortByCreatedAt SortKey = "createdAt"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Filters is the resolved set of list parameters. Zero values mean
// "no filter" for Completed, Priority and Search.
type Filters struct {
	Completed *bool
	Priority  domain.Priority
	Search    string
	SortBy    SortKey
	Order     Order
}

// ParseFilters resolves the query string into Filters. Unknown or invalid
// values are dropped silently: an unparseable completed or priority applies
// no filter, an unknown sortBy falls back to createdAt, anything but "asc"
// sorts descending.
func ParseFilters(values url.Values) Filters {
	f := Filters{SortBy: SortByCreatedAt, Order: OrderDesc}

	switch values.Get("completed") {
	case "true":
		v := true
		f.Completed = &v
	case "false":
		v := false
		f.Completed = &v
	}
	if p := domain.Priority(values.Get("priority")); p.Valid() {
		f.Priority = p
	}
	f.Search = values.Get("search")
	switch k := SortKey(values.Get("sortBy")); k {
	case SortByTitle, SortByPriority, SortByDueDate, SortByCreatedAt:
		f.SortBy = k
	}
	if Order(values.Get("order")) == OrderAsc {
		f.Order = OrderAsc
	}
	return f
}

// Apply filters then sorts a fresh slice. The input is expected in insertion
// order; the sort is stable, so equal keys keep that order.
func (f Filters) Apply(todos []domain.Todo) []domain.Todo {
	out := make([]domain.Todo, 0, len(todos))
	for _, t := range todos {
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Search != "" && !matchesSearch(t, f.Search) {
			continue
		}
		out = append(out, t)
	}

	less := lessFunc(f.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		if f.Order == OrderAsc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

// matchesSearch is a case-insensitive substring match against title or
// description. An empty description never matches.
func matchesSearch(t domain.Todo, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), q)
}

// lessFunc returns the ascending comparator for one sort key.
func lessFunc(key SortKey) func(a, b domain.Todo) bool {
	switch key {
	case SortByTitle:
		return func(a, b domain.Todo) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByPriority:
		return func(a, b domain.Todo) bool {
			return a.Priority.Rank() < b.Priority.Rank()
		}
	case SortByDueDate:
		return func(a, b domain.Todo) bool {
			return dueMillis(a) < dueMillis(b)
		}
	default:
		return func(a, b domain.Todo) bool {
			return a.CreatedAt.UnixMilli() < b.CreatedAt.UnixMilli()
		}
	}
}

// dueMillis treats a missing due date as the epoch (0).
func dueMillis(t domain.Todo) int64 {
	if t.DueDate == nil {
		return 0
	}
	return t.DueDate.UnixMilli()
}
