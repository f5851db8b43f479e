package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/server/models"
)

// ListAllFilter narrows the admin listing. Zero values mean "no filter".
type ListAllFilter struct {
	// DayStart/DayEnd bound clock_in_time to one calendar day.
	DayStart time.Time
	DayEnd   time.Time
	// UserIDPrefix matches user ids by prefix.
	UserIDPrefix string
}

type Repository interface {
	Create(ctx context.Context, userID string, clockIn time.Time) (*models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	GetOpenByUser(ctx context.Context, userID string) (*models.Session, error)
	SetBreakStart(ctx context.Context, id string, at time.Time) error
	FoldBreak(ctx context.Context, id string, addSeconds int64) error
	Close(ctx context.Context, id string, clockOut time.Time, totalDurationSeconds int64) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Session, error)
	ListAll(ctx context.Context, filter ListAllFilter) ([]*models.Session, error)
}
