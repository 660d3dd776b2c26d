package contracts

import (
	"context"

	"clinidash-core/internal/app/models"
	"clinidash-core/internal/pkg/dto/requests"
)

type PlanService interface {
	FetchAll(ctx context.Context, opts *FetchOptions) ([]models.TreatmentPlan, error)
	Create(ctx context.Context, request *requests.CreatePlan) (*models.TreatmentPlan, error)
	Update(ctx context.Context, planID int, request *requests.UpdatePlan) (*models.TreatmentPlan, error)
	Delete(ctx context.Context, planID int) error
	UpdateCompliance(ctx context.Context, planID, prescriptionID int, request *requests.UpdateCompliance) (*models.TreatmentPlan, error)
	Cached() []models.TreatmentPlan
	Loading() bool
	LastError() string
}
