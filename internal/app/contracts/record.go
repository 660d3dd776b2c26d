package contracts

import (
	"context"

	"clinidash-core/internal/app/models"
	"clinidash-core/internal/pkg/dto/requests"
)

type RecordService interface {
	FetchAll(ctx context.Context, opts *FetchOptions) ([]models.ClinicalRecord, error)
	Create(ctx context.Context, request *requests.CreateHistoria) (*models.ClinicalRecord, error)
	Update(ctx context.Context, recordID int, request *requests.UpdateHistoria) (*models.ClinicalRecord, error)
	Delete(ctx context.Context, recordID int) error
	Cached() []models.ClinicalRecord
	Loading() bool
	LastError() string
}
