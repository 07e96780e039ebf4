package database

import (
	"time"

	"gorm.io/gorm"
)

// User is the ownership root. Every per-user row carries its ID as UserID,
// and every store operation filters by it.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"size:255"`
}

// UserProfile is the at-most-one profile row per user, created lazily on the
// first profile write. ProfileImageKey is an object key in the blob store.
type UserProfile struct {
	gorm.Model
	UserID          uint   `gorm:"uniqueIndex"`
	FullName        string `gorm:"size:255"`
	Email           string `gorm:"size:255"`
	Phone           string `gorm:"size:64"`
	Department      string `gorm:"size:128"`
	AcademicStatus  string `gorm:"size:128"`
	GraduationYear  int
	ProfileImageKey string `gorm:"size:512"`
}

// Resume is the at-most-one uploaded resume per user. Rows are hard-deleted
// on replacement so the unique user index can be reused.
type Resume struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex"`
	FileName   string `gorm:"size:255"`
	ObjectKey  string `gorm:"size:512"`
	UploadedAt time.Time
}

// Skill tracks proficiency toward a target level, both clamped to [0,100]
// before they reach the store.
type Skill struct {
	gorm.Model
	UserID      uint   `gorm:"index"`
	SkillName   string `gorm:"size:255"`
	Category    string `gorm:"size:32"` // technical | aptitude | soft-skills
	Level       int
	TargetLevel int
}

// Goal is a daily preparation goal. Completion toggling is its only mutation.
type Goal struct {
	gorm.Model
	UserID      uint   `gorm:"index"`
	Title       string `gorm:"size:255"`
	IsCompleted bool
	Date        time.Time
}

// Company is one entry in the user's application pipeline.
type Company struct {
	gorm.Model
	UserID      uint   `gorm:"index"`
	CompanyName string `gorm:"size:255"`
	Role        string `gorm:"size:255"`
	Status      string `gorm:"size:32"` // wishlist | applied | interviewing | offer | rejected
	Notes       string
}

// CompanyNote always references a Company owned by the same user.
type CompanyNote struct {
	gorm.Model
	UserID    uint   `gorm:"index"`
	CompanyID uint   `gorm:"index"`
	Title     string `gorm:"size:255"`
	Content   string
}

// Tip is a globally shared advice record, seeded at startup and read-only
// through the API.
type Tip struct {
	gorm.Model
	Title    string `gorm:"size:255"`
	Category string `gorm:"size:32"` // interview | resume | general
	Content  string
}

// AllModels lists every model for migration.
func AllModels() []any {
	return []any{
		&User{},
		&UserProfile{},
		&Resume{},
		&Skill{},
		&Goal{},
		&Company{},
		&CompanyNote{},
		&Tip{},
	}
}
