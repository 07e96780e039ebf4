package store

import (
	"context"

	"preptrack/internal/database"
)

// ListCompanies returns every pipeline entry owned by ownerID.
func (s *Store) ListCompanies(ctx context.Context, ownerID uint) ([]database.Company, error) {
	return listOwned[database.Company](ctx, s.db, ownerID)
}

// CreateCompany inserts a company; company.UserID must already be set.
func (s *Store) CreateCompany(ctx context.Context, company *database.Company) error {
	return s.db.WithContext(ctx).Create(company).Error
}

// UpdateCompany patches the company matching (id, ownerID).
func (s *Store) UpdateCompany(ctx context.Context, id, ownerID uint, updates map[string]any) (*database.Company, error) {
	return updateOwned[database.Company](ctx, s.db, id, ownerID, updates)
}

// GetCompany returns the company matching (id, ownerID). Used to verify
// note references before creating a CompanyNote.
func (s *Store) GetCompany(ctx context.Context, id, ownerID uint) (*database.Company, error) {
	return getOwned[database.Company](ctx, s.db, id, ownerID)
}
