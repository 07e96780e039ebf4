package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"preptrack/internal/database"
)

// GetProfile returns the owner's profile row, or ErrNotFound if none exists
// yet. Profiles are created lazily by UpsertProfile.
func (s *Store) GetProfile(ctx context.Context, ownerID uint) (*database.UserProfile, error) {
	var profile database.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile patches the owner's singleton profile in place, inserting it
// first if it does not exist.
func (s *Store) UpsertProfile(ctx context.Context, ownerID uint, updates map[string]any) (*database.UserProfile, error) {
	var profile database.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = database.UserProfile{UserID: ownerID}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).First(&profile, profile.ID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
