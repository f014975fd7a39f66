package ports

import (
	"context"

	"github.com/parentfeel/parentfeel-cli/internal/domain"
)

type RecordRepository interface {
	GetByID(ctx context.Context, id domain.RecordID) (domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, record domain.Record) error
	Delete(ctx context.Context, id domain.RecordID) error
}
