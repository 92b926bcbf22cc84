package dto

import (
	"encoding/json"
	"strings"
	"time"

	"todoapi/internal/domain"
)

// DueDate parses dueDate from JSON as either date-only ("2006-01-02") or RFC3339.
// Date-only is stored as start of that day in UTC. An explicit null (or empty
// string) clears the date. A value that parses as neither is remembered as
// invalid so Validate can report it instead of failing the whole bind.
type DueDate struct {
	t       *time.Time
	set     bool
	invalid bool
}

var dueDateLayouts = []string{
	"2006-01-02",          // date only
	time.RFC3339,          // 2006-01-02T15:04:05Z07:00
	time.RFC3339Nano,      // with nanoseconds
	"2006-01-02T15:04:05", // no zone, assume UTC
}

func (d *DueDate) UnmarshalJSON(data []byte) error {
	d.set = true
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		d.invalid = true
		return nil
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	for _, layout := range dueDateLayouts {
		parsed, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// If it was date-only (no time component), use start of day UTC
		if layout == "2006-01-02" {
			parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		}
		parsed = parsed.UTC()
		d.t = &parsed
		return nil
	}
	d.invalid = true
	return nil
}

// Set reports whether the field appeared in the JSON body at all.
func (d DueDate) Set() bool { return d.set }

// Invalid reports whether the field appeared but did not parse.
func (d DueDate) Invalid() bool { return d.invalid }

// Ptr returns *time.Time for use in service/store.
func (d DueDate) Ptr() *time.Time { return d.t }

const (
	msgTitleRequired   = "title is required and must not be empty or whitespace"
	msgTitleEmpty      = "title must not be empty or whitespace"
	msgPriorityInvalid = "priority must be one of: low, medium, high"
	msgDueDateInvalid  = "dueDate must be a valid date (YYYY-MM-DD or RFC3339)"
)

type CreateTodoRequest struct {
	Title       *string `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"` // optional, defaults to medium
	DueDate     DueDate `json:"dueDate"`  // optional: "2026-02-19" or RFC3339
}

// Validate returns the list of rule violations; empty means valid.
func (r CreateTodoRequest) Validate() []string {
	var problems []string
	if r.Title == nil || strings.TrimSpace(*r.Title) == "" {
		problems = append(problems, msgTitleRequired)
	}
	if r.Priority != "" && !domain.Priority(r.Priority).Valid() {
		problems = append(problems, msgPriorityInvalid)
	}
	if r.DueDate.Invalid() {
		problems = append(problems, msgDueDateInvalid)
	}
	return problems
}

// UpdateTodoRequest is a partial update: nil pointer = leave unchanged.
// DueDate distinguishes absent (no change) from explicit null (clear).
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     DueDate `json:"dueDate"`
}

// Validate checks only the fields present in the payload.
func (r UpdateTodoRequest) Validate() []string {
	var problems []string
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		problems = append(problems, msgTitleEmpty)
	}
	if r.Priority != nil && !domain.Priority(*r.Priority).Valid() {
		problems = append(problems, msgPriorityInvalid)
	}
	if r.DueDate.Invalid() {
		problems = append(problems, msgDueDateInvalid)
	}
	return problems
}

type TodoResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FiltersEcho mirrors the resolved query parameters back to the caller.
type FiltersEcho struct {
	Completed *bool  `json:"completed,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Search    string `json:"search,omitempty"`
	SortBy    string `json:"sortBy"`
	Order     string `json:"order"`
}

type ListTodosResponse struct {
	Todos   []TodoResponse `json:"todos"`
	Total   int            `json:"total"`
	Filters FiltersEcho    `json:"filters"`
}

// TodoEnvelope wraps a single todo for GET responses.
type TodoEnvelope struct {
	Todo TodoResponse `json:"todo"`
}

// MutationResponse is the body of every successful write.
type MutationResponse struct {
	Message string       `json:"message"`
	Todo    TodoResponse `json:"todo"`
}

type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type StatsResponse struct {
	Total      int               `json:"total"`
	Completed  int               `json:"completed"`
	Pending    int               `json:"pending"`
	Priorities PriorityBreakdown `json:"priorities"`
	Overdue    int               `json:"overdue"`
}

// ErrorResponse is the body of every failure. Details carries the itemized
// validation violations when there are any.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
