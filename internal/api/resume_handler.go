package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"preptrack/internal/api/middleware"
	"preptrack/internal/database"
	"preptrack/internal/store"
)

// ResumeHandler serves the per-user singleton resume file. Replacement is
// destroy-before-create: the old blob and row are removed before the new
// upload lands, so a user can briefly have no resume but never two.
type ResumeHandler struct {
	store          *store.Store
	storage        objectStorage
	clamdAddr      string
	maxResumeBytes int64
}

// NewResumeHandler constructs the resume handler.
func NewResumeHandler(st *store.Store, storageClient objectStorage, clamdAddr string, maxResumeBytes int64) *ResumeHandler {
	return &ResumeHandler{
		store:          st,
		storage:        storageClient,
		clamdAddr:      clamdAddr,
		maxResumeBytes: maxResumeBytes,
	}
}

type resumeResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	FileName    string    `json:"fileName"`
	UploadedAt  time.Time `json:"uploadedAt"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
}

func (h *ResumeHandler) newResumeResponse(c *gin.Context, resume database.Resume) resumeResponse {
	resp := resumeResponse{
		ID:         resume.ID,
		UserID:     resume.UserID,
		FileName:   resume.FileName,
		UploadedAt: resume.UploadedAt,
	}
	if resume.ObjectKey != "" {
		url, err := h.storage.GeneratePresignedURL(c.Request.Context(), resume.ObjectKey, presignTTL)
		if err != nil {
			middleware.LoggerFromContext(c).Error("presign resume failed", slog.Any("error", err))
		} else {
			resp.DownloadURL = url
		}
	}
	return resp
}

// GetResume returns the acting user's resume record, or null when none
// exists.
func (h *ResumeHandler) GetResume(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}

	resume, err := h.store.GetResume(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		middleware.LoggerFromContext(c).Error("get resume failed", slog.Any("error", err))
		Internal(c, "failed to load resume")
		return
	}

	c.JSON(http.StatusOK, h.newResumeResponse(c, *resume))
}

// UploadResume stores a new resume file, replacing any previous one. The old
// blob is removed first, then the old row, then the new blob and row are
// written; an interruption leaves the user with no resume rather than a row
// pointing at a missing file.
func (h *ResumeHandler) UploadResume(c *gin.Context) {
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

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}
	if file.Size > h.maxResumeBytes {
		BadRequest(c, "file too large")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".pdf", ".doc", ".docx":
	default:
		BadRequest(c, "unsupported file type")
		return
	}

	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c).With(slog.Uint64("user_id", uint64(userID)))

	if h.clamdAddr != "" {
		if err := scanUpload(h.clamdAddr, file); err != nil {
			if errors.Is(err, errMaliciousFile) {
				BadRequest(c, "malicious file detected")
				return
			}
			logger.Error("scan resume failed", slog.Any("error", err))
			Internal(c, "failed to scan file")
			return
		}
	}

	// Destroy the previous resume before the new one exists anywhere.
	existing, err := h.store.GetResume(ctx, userID)
	switch {
	case err == nil:
		if err := h.storage.DeleteObject(ctx, existing.ObjectKey); err != nil {
			logger.Error("delete old resume blob failed", slog.Any("error", err))
			Internal(c, "failed to replace resume")
			return
		}
		if err := h.store.DeleteResume(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
			logger.Error("delete old resume row failed", slog.Any("error", err))
			Internal(c, "failed to replace resume")
			return
		}
	case !errors.Is(err, store.ErrNotFound):
		logger.Error("lookup existing resume failed", slog.Any("error", err))
		Internal(c, "failed to replace resume")
		return
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer fileReader.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("resumes/%d/%s%s", userID, uuid.NewString(), ext)
	if _, err := h.storage.UploadFile(ctx, objectKey, fileReader, file.Size, contentType); err != nil {
		logger.Error("upload resume failed", slog.Any("error", err))
		Internal(c, "failed to upload file")
		return
	}

	resume := database.Resume{
		UserID:     userID,
		FileName:   filepath.Base(file.Filename),
		ObjectKey:  objectKey,
		UploadedAt: time.Now(),
	}
	if err := h.store.CreateResume(ctx, &resume); err != nil {
		logger.Error("insert resume row failed", slog.Any("error", err))
		// Orphaned blob cleanup is best effort; the row must not outlive it.
		if delErr := h.storage.DeleteObject(ctx, objectKey); delErr != nil {
			logger.Error("cleanup orphaned resume blob failed", slog.Any("error", delErr))
		}
		Internal(c, "failed to save resume")
		return
	}

	c.JSON(http.StatusCreated, h.newResumeResponse(c, resume))
}

// DeleteResume removes the acting user's resume, blob first.
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, ok := queryPrincipal(c)
	if !ok {
		BadRequest(c, "missing userId")
		return
	}

	ctx := c.Request.Context()
	resume, err := h.store.GetResume(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "resume not found")
			return
		}
		middleware.LoggerFromContext(c).Error("get resume failed", slog.Any("error", err))
		Internal(c, "failed to delete resume")
		return
	}

	if err := h.storage.DeleteObject(ctx, resume.ObjectKey); err != nil {
		middleware.LoggerFromContext(c).Error("delete resume blob failed", slog.Any("error", err))
		Internal(c, "failed to delete resume")
		return
	}
	if err := h.store.DeleteResume(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
		middleware.LoggerFromContext(c).Error("delete resume row failed", slog.Any("error", err))
		Internal(c, "failed to delete resume")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
