package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"preptrack/internal/api/middleware"
	"preptrack/internal/database"
	"preptrack/internal/store"
)

// CompanyNoteHandler serves per-company interview notes.
type CompanyNoteHandler struct {
	store *store.Store
}

// NewCompanyNoteHandler constructs the company-note handler.
func NewCompanyNoteHandler(st *store.Store) *CompanyNoteHandler {
	return &CompanyNoteHandler{store: st}
}

type createCompanyNoteRequest struct {
	UserID    uint   `json:"userId"`
	CompanyID uint   `json:"companyId" binding:"required"`
	Title     string `json:"title" binding:"required,max=255"`
	Content   string `json:"content" binding:"required"`
}

type updateCompanyNoteRequest struct {
	UserID  uint   `json:"userId"`
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

type companyNoteResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	CompanyID uint      `json:"companyId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newCompanyNoteResponse(note database.CompanyNote) companyNoteResponse {
	return companyNoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		CompanyID: note.CompanyID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ListCompanyNotes returns the acting user's notes, optionally filtered by a
// companyId query parameter.
func (h *CompanyNoteHandler) ListCompanyNotes(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}

	var companyID *uint
	if raw := strings.TrimSpace(c.Query("companyId")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			BadRequest(c, "invalid companyId")
			return
		}
		id := uint(parsed)
		companyID = &id
	}

	notes, err := h.store.ListCompanyNotes(c.Request.Context(), userID, companyID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list company notes failed", slog.Any("error", err))
		Internal(c, "failed to list notes")
		return
	}

	items := make([]companyNoteResponse, 0, len(notes))
	for _, note := range notes {
		items = append(items, newCompanyNoteResponse(note))
	}
	c.JSON(http.StatusOK, items)
}

// CreateCompanyNote inserts a note after the store verifies that the company
// exists and belongs to the acting user.
func (h *CompanyNoteHandler) CreateCompanyNote(c *gin.Context) {
	var req createCompanyNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.UserID == 0 {
		Unauthorized(c)
		return
	}

	note := database.CompanyNote{
		UserID:    req.UserID,
		CompanyID: req.CompanyID,
		Title:     req.Title,
		Content:   req.Content,
	}
	if err := h.store.CreateCompanyNote(c.Request.Context(), &note); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "company not found")
			return
		}
		middleware.LoggerFromContext(c).Error("create company note failed", slog.Any("error", err))
		Internal(c, "failed to create note")
		return
	}

	c.JSON(http.StatusCreated, newCompanyNoteResponse(note))
}

// UpdateCompanyNote replaces a note's title and content.
func (h *CompanyNoteHandler) UpdateCompanyNote(c *gin.Context) {
	var req updateCompanyNoteRequest
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
		BadRequest(c, "invalid note id")
		return
	}

	updates := map[string]any{
		"title":   req.Title,
		"content": req.Content,
	}
	note, err := h.store.UpdateCompanyNote(c.Request.Context(), id, req.UserID, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "note not found")
			return
		}
		middleware.LoggerFromContext(c).Error("update company note failed", slog.Any("error", err))
		Internal(c, "failed to update note")
		return
	}

	c.JSON(http.StatusOK, newCompanyNoteResponse(*note))
}

// DeleteCompanyNote removes a note owned by the acting user.
func (h *CompanyNoteHandler) DeleteCompanyNote(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "invalid note id")
		return
	}

	if err := h.store.DeleteCompanyNote(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "note not found")
			return
		}
		middleware.LoggerFromContext(c).Error("delete company note failed", slog.Any("error", err))
		Internal(c, "failed to delete note")
		return
	}

	c.Status(http.StatusNoContent)
}
