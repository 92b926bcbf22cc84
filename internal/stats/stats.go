// Package stats computes summary counters over the full collection.
package stats

import (
	"time"

	"todoapi/internal/domain"
)

type Summary struct {
	Total     int
	Completed int
	Pending   int
	High      int
	Medium    int
	Low       int
	Overdue   int
}

// Collect recomputes all counters from scratch. A todo is overdue when it is
// not completed and its due date is strictly before now; a todo without a
// due date is never overdue.
func Collect(todos []domain.Todo, now time.Time) Summary {
	var s Summary
	s.Total = len(todos)
	for _, t := range todos {
		if t.Completed {
			s.Completed++
		}
		switch t.Priority {
		case domain.PriorityHigh:
			s.High++
		case domain.PriorityMedium:
			s.Medium++
		case domain.PriorityLow:
			s.Low++
		}
		if !t.Completed && t.DueDate != nil && t.DueDate.Before(now) {
			s.Overdue++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}
