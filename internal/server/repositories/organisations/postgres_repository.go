package organisations

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/orgkeeper/internal/dbx"
	"github.com/dmitrijs2005/orgkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, org *models.Organisation) (*models.Organisation, error) {

	query :=
		`INSERT INTO organisations (id, name, description, owner_id)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		org.ID, org.Name, org.Description, org.OwnerID).Scan(&org.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return org, nil
}

// ListByOwner returns the organisations owned by ownerID. No ordering is
// guaranteed.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Organisation, error) {
	query :=
		`SELECT id, name, description, owner_id, created_at FROM organisations
		 WHERE owner_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var orgs []*models.Organisation
	for rows.Next() {
		org := &models.Organisation{}
		if err := rows.Scan(&org.ID, &org.Name, &org.Description, &org.OwnerID, &org.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return orgs, nil
}
