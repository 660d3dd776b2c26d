package contracts

import (
	"context"

	"clinidash-core/internal/app/models"
	"clinidash-core/internal/pkg/dto/requests"
)

type PatientService interface {
	FetchAll(ctx context.Context, opts *FetchOptions) ([]models.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	Update(ctx context.Context, patientID int, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, patientID int) error
	AssignGestor(ctx context.Context, patientID int, request *requests.AssignGestor) (*models.Patient, error)
	Cached() []models.Patient
	Loading() bool
	LastError() string
}
