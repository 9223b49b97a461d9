package organisations

import (
	"context"

	"github.com/dmitrijs2005/orgkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, org *models.Organisation) (*models.Organisation, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Organisation, error)
}
