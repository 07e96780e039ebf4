package database

import (
	"fmt"

	"gorm.io/gorm"
)

// SeedTips inserts the shared tip catalog once, at process start. The tips
// table is read-only through the API; inserting only when it is empty keeps
// the bootstrap idempotent across restarts.
func SeedTips(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Tip{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tips: %w", err)
	}
	if count > 0 {
		return nil
	}

	tips := []Tip{
		{
			Title:    "STAR Method",
			Category: "interview",
			Content:  "Situation, Task, Action, Result - use this for behavioral questions.",
		},
		{
			Title:    "Resume Formatting",
			Category: "resume",
			Content:  "Keep it to one page. Use action verbs. Quantify achievements.",
		},
		{
			Title:    "Track Everything",
			Category: "general",
			Content:  "Log every application and follow up after a week of silence.",
		},
	}

	if err := db.Create(&tips).Error; err != nil {
		return fmt.Errorf("seed tips: %w", err)
	}
	return nil
}
