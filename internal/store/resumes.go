package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"preptrack/internal/database"
)

// GetResume returns the owner's resume row, or ErrNotFound if none exists.
func (s *Store) GetResume(ctx context.Context, ownerID uint) (*database.Resume, error) {
	var resume database.Resume
	err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).First(&resume).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}
	return &resume, nil
}

// CreateResume inserts a resume row; resume.UserID must already be set and
// must not have an existing row (the caller deletes the old one first).
func (s *Store) CreateResume(ctx context.Context, resume *database.Resume) error {
	return s.db.WithContext(ctx).Create(resume).Error
}

// DeleteResume hard-deletes the owner's resume row so the unique user index
// frees up for the replacement. ErrNotFound when the owner has no resume.
func (s *Store) DeleteResume(ctx context.Context, ownerID uint) error {
	res := s.db.WithContext(ctx).Unscoped().Where("user_id = ?", ownerID).Delete(&database.Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
