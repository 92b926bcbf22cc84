package handlers

import (
	"errors"
	"net/http"

	dom "todoapi/internal/domain"
	"todoapi/internal/dto"
	"todoapi/internal/query"
	"todoapi/internal/service"
	"todoapi/internal/store"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Details: problems})
		return
	}

	t := h.svc.Create(*req.Title, req.Description, dom.Priority(req.Priority), req.DueDate.Ptr())
	c.JSON(http.StatusCreated, dto.MutationResponse{Message: "todo created", Todo: todoToResponse(t)})
}

// List godoc
// @Summary      List todos with optional filtering and sorting
// @Tags         todos
// @Produce      json
// @Param        completed  query  string  false  "true or false"
// @Param        priority   query  string  false  "low, medium or high"
// @Param        search     query  string  false  "substring of title or description"
// @Param        sortBy     query  string  false  "title, priority, dueDate or createdAt"
// @Param        order      query  string  false  "asc or desc"
// @Success      200  {object}  dto.ListTodosResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	f := query.ParseFilters(c.Request.URL.Query())
	list, total := h.svc.List(f)
	c.JSON(http.StatusOK, dto.ListTodosResponse{
		Todos:   todosToResponses(list),
		Total:   total,
		Filters: filtersEcho(f),
	})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	t, err := h.svc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "todo not found"})
		return
	}
	c.JSON(http.StatusOK, dto.TodoEnvelope{Todo: todoToResponse(t)})
}

// Update godoc
// @Summary      Partially update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Partial update"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Details: problems})
		return
	}

	p := store.Patch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		pr := dom.Priority(*req.Priority)
		p.Priority = &pr
	}
	if req.DueDate.Set() {
		p.DueDate = req.DueDate.Ptr()
		p.SetDueDate = true
	}

	t, err := h.svc.Update(c.Param("id"), p)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Message: "todo updated", Todo: todoToResponse(t)})
}

// Complete godoc
// @Summary      Mark a todo as completed
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /todos/{id}/complete [post]
func (h *TodoHandler) Complete(c *gin.Context) {
	t, err := h.svc.Complete(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "todo not found"})
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Message: "todo completed", Todo: todoToResponse(t)})
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	t, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "todo not found"})
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Message: "todo deleted", Todo: todoToResponse(t)})
}

// Stats godoc
// @Summary      Collection summary counters
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /stats [get]
func (h *TodoHandler) Stats(c *gin.Context) {
	s := h.svc.Stats()
	c.JSON(http.StatusOK, dto.StatsResponse{
		Total:     s.Total,
		Completed: s.Completed,
		Pending:   s.Pending,
		Priorities: dto.PriorityBreakdown{
			High:   s.High,
			Medium: s.Medium,
			Low:    s.Low,
		},
		Overdue: s.Overdue,
	})
}

func filtersEcho(f query.Filters) dto.FiltersEcho {
	return dto.FiltersEcho{
		Completed: f.Completed,
		Priority:  string(f.Priority),
		Search:    f.Search,
		SortBy:    string(f.SortBy),
		Order:     string(f.Order),
	}
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
