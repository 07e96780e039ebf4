package api

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"preptrack/internal/api/middleware"
	"preptrack/internal/store"
)

// ProfileHandler serves the per-user singleton profile, including the
// optional profile image stored as a blob.
type ProfileHandler struct {
	store         *store.Store
	storage       objectStorage
	clamdAddr     string
	maxImageBytes int64
}

// NewProfileHandler constructs the profile handler.
func NewProfileHandler(st *store.Store, storageClient objectStorage, clamdAddr string, maxImageBytes int64) *ProfileHandler {
	return &ProfileHandler{
		store:         st,
		storage:       storageClient,
		clamdAddr:     clamdAddr,
		maxImageBytes: maxImageBytes,
	}
}

type profileRequest struct {
	UserID         uint    `json:"userId"`
	FullName       *string `json:"fullName" binding:"omitempty,max=255"`
	Email          *string `json:"email" binding:"omitempty,email,max=255"`
	Phone          *string `json:"phone" binding:"omitempty,max=64"`
	Department     *string `json:"department" binding:"omitempty,max=128"`
	AcademicStatus *string `json:"academicStatus" binding:"omitempty,max=128"`
	GraduationYear *int    `json:"graduationYear"`
}

type profileResponse struct {
	ID              uint   `json:"id"`
	UserID          uint   `json:"userId"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Department      string `json:"department"`
	AcademicStatus  string `json:"academicStatus"`
	GraduationYear  int    `json:"graduationYear"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// GetProfile returns the acting user's profile, or an empty object if none
// has been written yet.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}

	profile, err := h.store.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		middleware.LoggerFromContext(c).Error("get profile failed", slog.Any("error", err))
		Internal(c, "failed to load profile")
		return
	}

	resp := profileResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		FullName:       profile.FullName,
		Email:          profile.Email,
		Phone:          profile.Phone,
		Department:     profile.Department,
		AcademicStatus: profile.AcademicStatus,
		GraduationYear: profile.GraduationYear,
	}
	if profile.ProfileImageKey != "" {
		url, err := h.storage.GeneratePresignedURL(c.Request.Context(), profile.ProfileImageKey, presignTTL)
		if err != nil {
			middleware.LoggerFromContext(c).Error("presign profile image failed", slog.Any("error", err))
		} else {
			resp.ProfileImageURL = url
		}
	}

	c.JSON(http.StatusOK, resp)
}

// UpsertProfile patches the acting user's profile in place, creating it on
// first write. Accepts JSON, or multipart form data carrying an optional
// image file.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.upsertFromForm(c)
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.UserID == 0 {
		BadRequest(c, "missing userId")
		return
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.AcademicStatus != nil {
		updates["academic_status"] = *req.AcademicStatus
	}
	if req.GraduationYear != nil {
		updates["graduation_year"] = *req.GraduationYear
	}

	h.applyUpsert(c, req.UserID, updates)
}

func (h *ProfileHandler) upsertFromForm(c *gin.Context) {
	rawUserID := strings.TrimSpace(c.PostForm("userId"))
	if rawUserID == "" {
		BadRequest(c, "missing userId")
		return
	}
	parsed, err := strconv.ParseUint(rawUserID, 10, 32)
	if err != nil || parsed == 0 {
		BadRequest(c, "invalid userId")
		return
	}
	userID := uint(parsed)

	updates := map[string]any{}
	formFields := map[string]string{
		"fullName":       "full_name",
		"email":          "email",
		"phone":          "phone",
		"department":     "department",
		"academicStatus": "academic_status",
	}
	for field, column := range formFields {
		if value, ok := c.GetPostForm(field); ok {
			updates[column] = value
		}
	}
	if raw, ok := c.GetPostForm("graduationYear"); ok {
		year, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			BadRequest(c, "invalid graduationYear")
			return
		}
		updates["graduation_year"] = year
	}

	file, err := c.FormFile("image")
	if err == nil {
		objectKey, status, msg := h.uploadProfileImage(c, userID, file)
		if msg != "" {
			Error(c, status, msg)
			return
		}
		updates["profile_image_key"] = objectKey
	}

	h.applyUpsert(c, userID, updates)
}

func (h *ProfileHandler) uploadProfileImage(c *gin.Context, userID uint, file *multipart.FileHeader) (objectKey string, status int, errMsg string) {
	if file.Size > h.maxImageBytes {
		return "", http.StatusBadRequest, "image too large"
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return "", http.StatusBadRequest, "unsupported image type"
	}

	if h.clamdAddr != "" {
		if err := scanUpload(h.clamdAddr, file); err != nil {
			if errors.Is(err, errMaliciousFile) {
				return "", http.StatusBadRequest, "malicious file detected"
			}
			middleware.LoggerFromContext(c).Error("scan profile image failed", slog.Any("error", err))
			return "", http.StatusInternalServerError, "failed to scan image"
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		return "", http.StatusInternalServerError, "failed to open image"
	}
	defer fileReader.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey = fmt.Sprintf("profile-images/%d/%s%s", userID, uuid.NewString(), ext)
	if _, err := h.storage.UploadFile(c.Request.Context(), objectKey, fileReader, file.Size, contentType); err != nil {
		middleware.LoggerFromContext(c).Error("upload profile image failed", slog.Any("error", err))
		return "", http.StatusInternalServerError, "failed to upload image"
	}
	return objectKey, 0, ""
}

func (h *ProfileHandler) applyUpsert(c *gin.Context, userID uint, updates map[string]any) {
	ctx := c.Request.Context()

	var oldImageKey string
	if newKey, replacing := updates["profile_image_key"]; replacing {
		if existing, err := h.store.GetProfile(ctx, userID); err == nil && existing.ProfileImageKey != "" && existing.ProfileImageKey != newKey {
			oldImageKey = existing.ProfileImageKey
		}
	}

	profile, err := h.store.UpsertProfile(ctx, userID, updates)
	if err != nil {
		middleware.LoggerFromContext(c).Error("upsert profile failed", slog.Any("error", err))
		Internal(c, "failed to save profile")
		return
	}

	// The replaced image is unreferenced now; removal is best effort.
	if oldImageKey != "" {
		if err := h.storage.DeleteObject(ctx, oldImageKey); err != nil {
			middleware.LoggerFromContext(c).Error("delete old profile image failed",
				slog.String("objectKey", oldImageKey), slog.Any("error", err))
		}
	}

	resp := profileResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		FullName:       profile.FullName,
		Email:          profile.Email,
		Phone:          profile.Phone,
		Department:     profile.Department,
		AcademicStatus: profile.AcademicStatus,
		GraduationYear: profile.GraduationYear,
	}
	if profile.ProfileImageKey != "" {
		if url, err := h.storage.GeneratePresignedURL(ctx, profile.ProfileImageKey, presignTTL); err == nil {
			resp.ProfileImageURL = url
		}
	}

	c.JSON(http.StatusOK, resp)
}
