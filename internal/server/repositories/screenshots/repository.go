package screenshots

import (
	"context"

	"github.com/dmitrijs2005/workfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, screenshot *models.Screenshot) (*models.Screenshot, error)
	ListBySession(ctx context.Context, sessionID string) ([]*models.Screenshot, error)
}
