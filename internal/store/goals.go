package store

import (
	"context"

	"preptrack/internal/database"
)

// ListGoals returns every goal owned by ownerID.
func (s *Store) ListGoals(ctx context.Context, ownerID uint) ([]database.Goal, error) {
	return listOwned[database.Goal](ctx, s.db, ownerID)
}

// CreateGoal inserts a goal; goal.UserID must already be set.
func (s *Store) CreateGoal(ctx context.Context, goal *database.Goal) error {
	return s.db.WithContext(ctx).Create(goal).Error
}

// ToggleGoal negates IsCompleted on the goal matching (id, ownerID). Toggling
// is the only mutation path for goals.
func (s *Store) ToggleGoal(ctx context.Context, id, ownerID uint) (*database.Goal, error) {
	goal, err := getOwned[database.Goal](ctx, s.db, id, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(goal).Update("is_completed", !goal.IsCompleted).Error; err != nil {
		return nil, err
	}
	return getOwned[database.Goal](ctx, s.db, id, ownerID)
}
