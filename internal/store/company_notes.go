package store

import (
	"context"

	"preptrack/internal/database"
)

// ListCompanyNotes returns the owner's notes, optionally narrowed to one
// company. The company filter stacks on top of the owner filter, so a foreign
// companyId simply yields an empty list.
func (s *Store) ListCompanyNotes(ctx context.Context, ownerID uint, companyID *uint) ([]database.CompanyNote, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}
	notes := make([]database.CompanyNote, 0)
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateCompanyNote inserts a note after verifying that note.CompanyID
// references a company owned by the same user. A missing or foreign company
// yields ErrNotFound.
func (s *Store) CreateCompanyNote(ctx context.Context, note *database.CompanyNote) error {
	if _, err := getOwned[database.Company](ctx, s.db, note.CompanyID, note.UserID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(note).Error
}

// UpdateCompanyNote patches the note matching (id, ownerID).
func (s *Store) UpdateCompanyNote(ctx context.Context, id, ownerID uint, updates map[string]any) (*database.CompanyNote, error) {
	return updateOwned[database.CompanyNote](ctx, s.db, id, ownerID, updates)
}

// DeleteCompanyNote removes the note matching (id, ownerID); ErrNotFound when
// no row matched.
func (s *Store) DeleteCompanyNote(ctx context.Context, id, ownerID uint) error {
	return deleteOwned[database.CompanyNote](ctx, s.db, id, ownerID)
}
