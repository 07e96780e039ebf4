package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"preptrack/internal/api/middleware"
	"preptrack/internal/store"
)

// TipHandler serves the shared, read-only tip catalog.
type TipHandler struct {
	store *store.Store
}

// NewTipHandler constructs the tip handler.
func NewTipHandler(st *store.Store) *TipHandler {
	return &TipHandler{store: st}
}

type tipResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// ListTips returns the full catalog; tips are not user-scoped.
func (h *TipHandler) ListTips(c *gin.Context) {
	tips, err := h.store.ListTips(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("list tips failed", slog.Any("error", err))
		Internal(c, "failed to list tips")
		return
	}

	items := make([]tipResponse, 0, len(tips))
	for _, tip := range tips {
		items = append(items, tipResponse{
			ID:       tip.ID,
			Title:    tip.Title,
			Category: tip.Category,
			Content:  tip.Content,
		})
	}
	c.JSON(http.StatusOK, items)
}
