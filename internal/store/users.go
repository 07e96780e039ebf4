package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"preptrack/internal/database"
)

// CreateUser inserts a new account row.
func (s *Store) CreateUser(ctx context.Context, user *database.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// FindUserByEmail looks an account up by its unique email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*database.User, error) {
	var user database.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}
	return &user, nil
}
