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

// SkillHandler serves the per-user skill inventory.
type SkillHandler struct {
	store *store.Store
}

// NewSkillHandler constructs the skill handler.
func NewSkillHandler(st *store.Store) *SkillHandler {
	return &SkillHandler{store: st}
}

type createSkillRequest struct {
	UserID      uint   `json:"userId"`
	SkillName   string `json:"skillName" binding:"required,max=255"`
	Category    string `json:"category" binding:"required,oneof=technical aptitude soft-skills"`
	Level       *int   `json:"level"`
	TargetLevel *int   `json:"targetLevel"`
}

type updateSkillRequest struct {
	UserID      uint    `json:"userId"`
	SkillName   *string `json:"skillName" binding:"omitempty,max=255"`
	Category    *string `json:"category" binding:"omitempty,oneof=technical aptitude soft-skills"`
	Level       *int    `json:"level"`
	TargetLevel *int    `json:"targetLevel"`
}

type skillResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"userId"`
	SkillName   string `json:"skillName"`
	Category    string `json:"category"`
	Level       int    `json:"level"`
	TargetLevel int    `json:"targetLevel"`
}

func newSkillResponse(skill database.Skill) skillResponse {
	return skillResponse{
		ID:          skill.ID,
		UserID:      skill.UserID,
		SkillName:   skill.SkillName,
		Category:    skill.Category,
		Level:       skill.Level,
		TargetLevel: skill.TargetLevel,
	}
}

// clampLevel bounds proficiency values to [0,100] before they reach the
// store; the store does not re-validate.
func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ListSkills returns every skill owned by the acting user.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}

	skills, err := h.store.ListSkills(c.Request.Context(), userID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list skills failed", slog.Any("error", err))
		Internal(c, "failed to list skills")
		return
	}

	items := make([]skillResponse, 0, len(skills))
	for _, s := range skills {
		items = append(items, newSkillResponse(s))
	}
	c.JSON(http.StatusOK, items)
}

// CreateSkill inserts a skill owned by the acting user.
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.UserID == 0 {
		Unauthorized(c)
		return
	}

	level := 0
	if req.Level != nil {
		level = clampLevel(*req.Level)
	}
	targetLevel := 100
	if req.TargetLevel != nil {
		targetLevel = clampLevel(*req.TargetLevel)
	}

	skill := database.Skill{
		UserID:      req.UserID,
		SkillName:   req.SkillName,
		Category:    req.Category,
		Level:       level,
		TargetLevel: targetLevel,
	}
	if err := h.store.CreateSkill(c.Request.Context(), &skill); err != nil {
		middleware.LoggerFromContext(c).Error("create skill failed", slog.Any("error", err))
		Internal(c, "failed to create skill")
		return
	}

	c.JSON(http.StatusCreated, newSkillResponse(skill))
}

// UpdateSkill applies a partial patch to a skill owned by the acting user.
// A foreign or missing skill is reported identically as not found.
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	var req updateSkillRequest
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
		BadRequest(c, "invalid skill id")
		return
	}

	updates := map[string]any{}
	if req.SkillName != nil {
		updates["skill_name"] = *req.SkillName
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Level != nil {
		updates["level"] = clampLevel(*req.Level)
	}
	if req.TargetLevel != nil {
		updates["target_level"] = clampLevel(*req.TargetLevel)
	}

	skill, err := h.store.UpdateSkill(c.Request.Context(), id, req.UserID, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "skill not found")
			return
		}
		middleware.LoggerFromContext(c).Error("update skill failed", slog.Any("error", err))
		Internal(c, "failed to update skill")
		return
	}

	c.JSON(http.StatusOK, newSkillResponse(*skill))
}

// DeleteSkill removes a skill owned by the acting user.
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "invalid skill id")
		return
	}

	if err := h.store.DeleteSkill(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "skill not found")
			return
		}
		middleware.LoggerFromContext(c).Error("delete skill failed", slog.Any("error", err))
		Internal(c, "failed to delete skill")
		return
	}

	c.Status(http.StatusNoContent)
}
