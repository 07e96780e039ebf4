package store

import (
	"context"

	"preptrack/internal/database"
)

// ListTips returns the full shared tip catalog. Tips are the one entity with
// no owner scoping.
func (s *Store) ListTips(ctx context.Context) ([]database.Tip, error) {
	tips := make([]database.Tip, 0)
	if err := s.db.WithContext(ctx).Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}
