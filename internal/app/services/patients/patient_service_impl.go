package patients

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/app/models"
	"clinidash-core/internal/pkg/constvars"
	"clinidash-core/internal/pkg/dto/requests"
	"clinidash-core/internal/pkg/exceptions"
	"clinidash-core/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var patientEnvelopeKeys = []string{"patient", "paciente", "data"}

type patientService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger

	mu        sync.RWMutex
	cache     []models.Patient
	pending   int
	lastError string
}

func NewPatientService(apiGateway contracts.APIGateway, logger *zap.Logger) contracts.PatientService {
	return &patientService{
		Gateway: apiGateway,
		Log:     logger,
	}
}

func (s *patientService) FetchAll(ctx context.Context, opts *contracts.FetchOptions) ([]models.Patient, error) {
	s.begin()
	defer s.end()

	list, err := s.Gateway.FetchList(ctx, constvars.ResourcePatients, nil, opts)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientFetchPatients)
	}
	if list == nil {
		// Aborted cancelable fetch; the cache stays as it was.
		return nil, nil
	}

	patients := make([]models.Patient, 0, len(list))
	for _, raw := range list {
		var patient models.Patient
		if err := json.Unmarshal(raw, &patient); err != nil {
			return nil, s.fail(exceptions.ErrCannotParseJSON(err), constvars.ErrClientFetchPatients)
		}
		patients = append(patients, patient)
	}

	s.mu.Lock()
	s.cache = patients
	s.lastError = ""
	s.mu.Unlock()

	return s.Cached(), nil
}

func (s *patientService) Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	s.begin()
	defer s.end()

	var raw json.RawMessage
	err := s.Gateway.PostJSON(ctx, constvars.ResourcePatients, request, &raw)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientCreatePatient)
	}

	created := new(models.Patient)
	err = utils.DecodeEntity(raw, patientEnvelopeKeys, created)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientCreatePatient)
	}

	// Append only after the upstream confirms; the id is server-assigned.
	s.mu.Lock()
	s.cache = append(s.cache, *created)
	s.lastError = ""
	s.mu.Unlock()

	return created, nil
}

func (s *patientService) Update(ctx context.Context, patientID int, request *requests.UpdatePatient) (*models.Patient, error) {
	s.begin()
	defer s.end()

	var raw json.RawMessage
	err := s.Gateway.PutJSON(ctx, fmt.Sprintf("%s/%d", constvars.ResourcePatients, patientID), request, &raw)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientUpdatePatient)
	}

	updated := new(models.Patient)
	err = utils.DecodeEntity(raw, patientEnvelopeKeys, updated)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientUpdatePatient)
	}
	if updated.ID == 0 {
		updated.ID = patientID
	}

	s.replace(*updated)
	return updated, nil
}

func (s *patientService) Delete(ctx context.Context, patientID int) error {
	s.begin()
	defer s.end()

	err := s.Gateway.DeleteJSON(ctx, fmt.Sprintf("%s/%d", constvars.ResourcePatients, patientID))
	if err != nil {
		return s.fail(err, constvars.ErrClientDeletePatient)
	}

	// Only drop the record once the upstream confirmed the delete.
	s.mu.Lock()
	for i := range s.cache {
		if s.cache[i].ID == patientID {
			s.cache = append(s.cache[:i], s.cache[i+1:]...)
			break
		}
	}
	s.lastError = ""
	s.mu.Unlock()
	return nil
}

func (s *patientService) AssignGestor(ctx context.Context, patientID int, request *requests.AssignGestor) (*models.Patient, error) {
	s.begin()
	defer s.end()

	var raw json.RawMessage
	err := s.Gateway.PostJSON(ctx, fmt.Sprintf(constvars.EndpointAssignFmt, patientID), request, &raw)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientAssignGestor)
	}

	updated := new(models.Patient)
	err = utils.DecodeEntity(raw, patientEnvelopeKeys, updated)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientAssignGestor)
	}
	if updated.ID == 0 {
		updated.ID = patientID
		updated.GestorID = request.GestorID
	}

	s.replace(*updated)
	return updated, nil
}

func (s *patientService) Cached() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]models.Patient, len(s.cache))
	copy(snapshot, s.cache)
	return snapshot
}

func (s *patientService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

func (s *patientService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *patientService) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *patientService) end() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

// replace swaps the cached record matching the update in place, preserving
// order. A miss leaves the cache untouched; the caller still gets the
// record.
func (s *patientService) replace(updated models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cache {
		if s.cache[i].ID == updated.ID {
			s.cache[i] = updated
			break
		}
	}
	s.lastError = ""
}

// fail records the latest user-facing failure message, preferring whatever
// the upstream said over the per-operation default.
func (s *patientService) fail(err error, fallback string) error {
	message := fallback
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		message = customErr.ClientMessage
	}
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()

	s.Log.Error("patientService request failed",
		zap.String("client_message", message),
		zap.Error(err),
	)
	return err
}
