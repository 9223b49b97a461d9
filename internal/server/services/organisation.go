package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/orgkeeper/internal/server/models"
	"github.com/dmitrijs2005/orgkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// OrganisationService provides tenancy operations scoped to an owner.
type OrganisationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOrganisationService(db *sql.DB, m repomanager.RepositoryManager) *OrganisationService {
	return &OrganisationService{db: db, repomanager: m}
}

// List returns the organisations owned by ownerID only; it never crosses
// tenants.
func (s *OrganisationService) List(ctx context.Context, ownerID string) ([]*models.Organisation, error) {
	repo := s.repomanager.Organisations(s.db)

	orgs, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing organisations: %w", err)
	}

	return orgs, nil
}

// Create persists a new organisation owned by ownerID. The owner always
// comes from the authenticated caller, never from the request body.
func (s *OrganisationService) Create(ctx context.Context, ownerID, name, description string) (*models.Organisation, error) {
	if name == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "name", Message: "Name is required"}}}
	}

	org := &models.Organisation{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}

	repo := s.repomanager.Organisations(s.db)
	created, err := repo.Create(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("error creating organisation: %w", err)
	}

	return created, nil
}
