package store

import (
	"context"

	"preptrack/internal/database"
)

// ListSkills returns every skill owned by ownerID.
func (s *Store) ListSkills(ctx context.Context, ownerID uint) ([]database.Skill, error) {
	return listOwned[database.Skill](ctx, s.db, ownerID)
}

// CreateSkill inserts a skill; skill.UserID must already be set.
func (s *Store) CreateSkill(ctx context.Context, skill *database.Skill) error {
	return s.db.WithContext(ctx).Create(skill).Error
}

// UpdateSkill patches the skill matching (id, ownerID).
func (s *Store) UpdateSkill(ctx context.Context, id, ownerID uint, updates map[string]any) (*database.Skill, error) {
	return updateOwned[database.Skill](ctx, s.db, id, ownerID, updates)
}

// DeleteSkill removes the skill matching (id, ownerID); ErrNotFound when no
// row matched.
func (s *Store) DeleteSkill(ctx context.Context, id, ownerID uint) error {
	return deleteOwned[database.Skill](ctx, s.db, id, ownerID)
}
