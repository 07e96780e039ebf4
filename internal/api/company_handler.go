package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"preptrack/internal/api/middleware"
	"preptrack/internal/database"
	"preptrack/internal/store"
)

// CompanyHandler serves the user's application pipeline.
type CompanyHandler struct {
	store *store.Store
}

// NewCompanyHandler constructs the company handler.
func NewCompanyHandler(st *store.Store) *CompanyHandler {
	return &CompanyHandler{store: st}
}

type createCompanyRequest struct {
	UserID      uint   `json:"userId"`
	CompanyName string `json:"companyName" binding:"required,max=255"`
	Role        string `json:"role" binding:"required,max=255"`
	Status      string `json:"status" binding:"required,oneof=wishlist applied interviewing offer rejected"`
	Notes       string `json:"notes"`
}

type updateCompanyRequest struct {
	UserID      uint    `json:"userId"`
	CompanyName *string `json:"companyName" binding:"omitempty,max=255"`
	Role        *string `json:"role" binding:"omitempty,max=255"`
	Status      *string `json:"status" binding:"omitempty,oneof=wishlist applied interviewing offer rejected"`
	Notes       *string `json:"notes"`
}

type companyResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"userId"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func newCompanyResponse(company database.Company) companyResponse {
	return companyResponse{
		ID:          company.ID,
		UserID:      company.UserID,
		CompanyName: company.CompanyName,
		Role:        company.Role,
		Status:      company.Status,
		Notes:       company.Notes,
	}
}

// ListCompanies returns every pipeline entry owned by the acting user.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}

	companies, err := h.store.ListCompanies(c.Request.Context(), userID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list companies failed", slog.Any("error", err))
		Internal(c, "failed to list companies")
		return
	}

	items := make([]companyResponse, 0, len(companies))
	for _, company := range companies {
		items = append(items, newCompanyResponse(company))
	}
	c.JSON(http.StatusOK, items)
}

// CreateCompany inserts a pipeline entry owned by the acting user.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.UserID == 0 {
		Unauthorized(c)
		return
	}

	company := database.Company{
		UserID:      req.UserID,
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if err := h.store.CreateCompany(c.Request.Context(), &company); err != nil {
		middleware.LoggerFromContext(c).Error("create company failed", slog.Any("error", err))
		Internal(c, "failed to create company")
		return
	}

	c.JSON(http.StatusCreated, newCompanyResponse(company))
}

// UpdateCompany applies a partial patch to a pipeline entry owned by the
// acting user.
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req updateCompanyRequest
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
		BadRequest(c, "invalid company id")
		return
	}

	updates := map[string]any{}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	company, err := h.store.UpdateCompany(c.Request.Context(), id, req.UserID, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "company not found")
			return
		}
		middleware.LoggerFromContext(c).Error("update company failed", slog.Any("error", err))
		Internal(c, "failed to update company")
		return
	}

	c.JSON(http.StatusOK, newCompanyResponse(*company))
}
