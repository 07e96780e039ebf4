package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"preptrack/internal/config"
	"preptrack/internal/store"
)

// RegisterRoutes mounts every resource endpoint under /api.
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	storageClient objectStorage,
	logger *slog.Logger,
	cfg *config.Config,
) {
	st := store.New(db)

	authHandler := NewAuthHandler(st, redisClient, logger,
		cfg.Login.RateLimitPerHour, cfg.Login.LockThreshold, cfg.Login.LockTTL)
	profileHandler := NewProfileHandler(st, storageClient, cfg.Uploads.ClamdAddr, cfg.Uploads.MaxImageBytes)
	resumeHandler := NewResumeHandler(st, storageClient, cfg.Uploads.ClamdAddr, cfg.Uploads.MaxResumeBytes)
	skillHandler := NewSkillHandler(st)
	goalHandler := NewGoalHandler(st)
	companyHandler := NewCompanyHandler(st)
	noteHandler := NewCompanyNoteHandler(st)
	tipHandler := NewTipHandler(st)

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/register", authHandler.Register)
		apiGroup.POST("/login", authHandler.Login)

		apiGroup.GET("/profile", profileHandler.GetProfile)
		apiGroup.PUT("/profile", profileHandler.UpsertProfile)

		apiGroup.GET("/resume", resumeHandler.GetResume)
		apiGroup.POST("/resume", resumeHandler.UploadResume)
		apiGroup.DELETE("/resume", resumeHandler.DeleteResume)

		apiGroup.GET("/skills", skillHandler.ListSkills)
		apiGroup.POST("/skills", skillHandler.CreateSkill)
		apiGroup.PATCH("/skills/:id", skillHandler.UpdateSkill)
		apiGroup.DELETE("/skills/:id", skillHandler.DeleteSkill)

		apiGroup.GET("/goals", goalHandler.ListGoals)
		apiGroup.POST("/goals", goalHandler.CreateGoal)
		apiGroup.PATCH("/goals/:id/toggle", goalHandler.ToggleGoal)

		apiGroup.GET("/companies", companyHandler.ListCompanies)
		apiGroup.POST("/companies", companyHandler.CreateCompany)
		apiGroup.PATCH("/companies/:id", companyHandler.UpdateCompany)

		apiGroup.GET("/company-notes", noteHandler.ListCompanyNotes)
		apiGroup.POST("/company-notes", noteHandler.CreateCompanyNote)
		apiGroup.PUT("/company-notes/:id", noteHandler.UpdateCompanyNote)
		apiGroup.DELETE("/company-notes/:id", noteHandler.DeleteCompanyNote)

		apiGroup.GET("/tips", tipHandler.ListTips)
	}
}
