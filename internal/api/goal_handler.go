package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"preptrack/internal/api/middleware"
	"preptrack/internal/database"
	"preptrack/internal/store"
)

// GoalHandler serves daily preparation goals. Goals are created and toggled,
// never edited or deleted.
type GoalHandler struct {
	store *store.Store
}

// NewGoalHandler constructs the goal handler.
func NewGoalHandler(st *store.Store) *GoalHandler {
	return &GoalHandler{store: st}
}

type createGoalRequest struct {
	UserID uint       `json:"userId"`
	Title  string     `json:"title" binding:"required,max=255"`
	Date   *time.Time `json:"date"`
}

type goalResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	Date        time.Time `json:"date"`
}

func newGoalResponse(goal database.Goal) goalResponse {
	return goalResponse{
		ID:          goal.ID,
		UserID:      goal.UserID,
		Title:       goal.Title,
		IsCompleted: goal.IsCompleted,
		Date:        goal.Date,
	}
}

// ListGoals returns every goal owned by the acting user.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}

	goals, err := h.store.ListGoals(c.Request.Context(), userID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list goals failed", slog.Any("error", err))
		Internal(c, "failed to list goals")
		return
	}

	items := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		items = append(items, newGoalResponse(g))
	}
	c.JSON(http.StatusOK, items)
}

// CreateGoal inserts a goal owned by the acting user; the date defaults to
// the request time.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.UserID == 0 {
		Unauthorized(c)
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	goal := database.Goal{
		UserID: req.UserID,
		Title:  req.Title,
		Date:   date,
	}
	if err := h.store.CreateGoal(c.Request.Context(), &goal); err != nil {
		middleware.LoggerFromContext(c).Error("create goal failed", slog.Any("error", err))
		Internal(c, "failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, newGoalResponse(goal))
}

type toggleGoalRequest struct {
	UserID uint `json:"userId"`
}

// ToggleGoal flips a goal's completion state.
func (h *GoalHandler) ToggleGoal(c *gin.Context) {
	var req toggleGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.UserID == 0 {
		Unauthorized(c)
		return
	}

	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "invalid goal id")
		return
	}

	goal, err := h.store.ToggleGoal(c.Request.Context(), id, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "goal not found")
			return
		}
		middleware.LoggerFromContext(c).Error("toggle goal failed", slog.Any("error", err))
		Internal(c, "failed to toggle goal")
		return
	}

	c.JSON(http.StatusOK, newGoalResponse(*goal))
}
