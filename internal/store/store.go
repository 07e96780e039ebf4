package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches an (id, owner) pair. A row that
// exists but belongs to another owner is reported identically, so callers
// cannot probe for other users' data.
var ErrNotFound = errors.New("record not found")

// Store provides owner-scoped CRUD over the tracker entities. Every signature
// that touches per-user data takes the acting user's id and folds it into the
// query filter; that filter is the entire tenant-isolation mechanism.
type Store struct {
	db *gorm.DB
}

// New wraps a GORM handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func listOwned[T any](ctx context.Context, db *gorm.DB, ownerID uint) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func getOwned[T any](ctx context.Context, db *gorm.DB, id, ownerID uint) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}
	return &row, nil
}

// updateOwned applies a partial patch to the row matching both id and owner,
// then reloads it. The initial lookup doubles as the cross-tenant write guard.
func updateOwned[T any](ctx context.Context, db *gorm.DB, id, ownerID uint, updates map[string]any) (*T, error) {
	row, err := getOwned[T](ctx, db, id, ownerID)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return row, nil
	}
	if err := db.WithContext(ctx).Model(row).Updates(updates).Error; err != nil {
		return nil, err
	}
	return getOwned[T](ctx, db, id, ownerID)
}

func deleteOwned[T any](ctx context.Context, db *gorm.DB, id, ownerID uint) error {
	res := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
