package plans

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

var planEnvelopeKeys = []string{"plan", "data"}

type planService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger

	mu        sync.RWMutex
	cache     []models.TreatmentPlan
	pending   int
	lastError string
}

func NewPlanService(apiGateway contracts.APIGateway, logger *zap.Logger) contracts.PlanService {
	return &planService{
		Gateway: apiGateway,
		Log:     logger,
	}
}

func (s *planService) FetchAll(ctx context.Context, opts *contracts.FetchOptions) ([]models.TreatmentPlan, error) {
	s.begin()
	defer s.end()

	list, err := s.Gateway.FetchList(ctx, constvars.ResourcePlans, nil, opts)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientFetchPlans)
	}
	if list == nil {
		return nil, nil
	}

	plans := make([]models.TreatmentPlan, 0, len(list))
	for _, raw := range list {
		var plan models.TreatmentPlan
		if err := json.Unmarshal(raw, &plan); err != nil {
			return nil, s.fail(exceptions.ErrCannotParseJSON(err), constvars.ErrClientFetchPlans)
		}
		plans = append(plans, plan)
	}

	s.mu.Lock()
	s.cache = plans
	s.lastError = ""
	s.mu.Unlock()

	return s.Cached(), nil
}

func (s *planService) Create(ctx context.Context, request *requests.CreatePlan) (*models.TreatmentPlan, error) {
	s.begin()
	defer s.end()

	var raw json.RawMessage
	err := s.Gateway.PostJSON(ctx, constvars.ResourcePlans, request, &raw)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientSavePlan)
	}

	created := new(models.TreatmentPlan)
	err = utils.DecodeEntity(raw, planEnvelopeKeys, created)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientSavePlan)
	}

	s.mu.Lock()
	s.cache = append(s.cache, *created)
	s.lastError = ""
	s.mu.Unlock()

	return created, nil
}

func (s *planService) Update(ctx context.Context, planID int, request *requests.UpdatePlan) (*models.TreatmentPlan, error) {
	s.begin()
	defer s.end()

	var raw json.RawMessage
	err := s.Gateway.PutJSON(ctx, fmt.Sprintf("%s/%d", constvars.ResourcePlans, planID), request, &raw)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientSavePlan)
	}

	updated := new(models.TreatmentPlan)
	err = utils.DecodeEntity(raw, planEnvelopeKeys, updated)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientSavePlan)
	}
	if updated.ID == 0 {
		updated.ID = planID
	}

	s.replace(*updated)
	return updated, nil
}

func (s *planService) Delete(ctx context.Context, planID int) error {
	s.begin()
	defer s.end()

	err := s.Gateway.DeleteJSON(ctx, fmt.Sprintf("%s/%d", constvars.ResourcePlans, planID))
	if err != nil {
		return s.fail(err, constvars.ErrClientDeletePlan)
	}

	s.mu.Lock()
	for i := range s.cache {
		if s.cache[i].ID == planID {
			s.cache = append(s.cache[:i], s.cache[i+1:]...)
			break
		}
	}
	s.lastError = ""
	s.mu.Unlock()
	return nil
}

func (s *planService) UpdateCompliance(ctx context.Context, planID, prescriptionID int, request *requests.UpdateCompliance) (*models.TreatmentPlan, error) {
	s.begin()
	defer s.end()

	path := fmt.Sprintf("%s/%d/prescriptions/%d", constvars.ResourcePlans, planID, prescriptionID)

	var raw json.RawMessage
	err := s.Gateway.PatchJSON(ctx, path, request, &raw)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientCompliance)
	}

	updated := new(models.TreatmentPlan)
	err = utils.DecodeEntity(raw, planEnvelopeKeys, updated)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientCompliance)
	}
	if updated.ID == 0 {
		// Some upstream versions answer 204 here; patch the cached copy so
		// the dashboard reflects the toggle without a refetch.
		updated = s.patchCachedCompliance(planID, prescriptionID, request.Cumplido)
	}

	s.replace(*updated)
	return updated, nil
}

func (s *planService) Cached() []models.TreatmentPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]models.TreatmentPlan, len(s.cache))
	copy(snapshot, s.cache)
	return snapshot
}

func (s *planService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

func (s *planService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *planService) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *planService) end() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

func (s *planService) replace(updated models.TreatmentPlan) {
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

func (s *planService) patchCachedCompliance(planID, prescriptionID int, cumplido bool) *models.TreatmentPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.cache {
		if s.cache[i].ID != planID {
			continue
		}
		plan := s.cache[i]
		prescriptions := make([]models.Prescription, len(plan.Prescripciones))
		copy(prescriptions, plan.Prescripciones)
		for j := range prescriptions {
			if prescriptions[j].ID == prescriptionID {
				prescriptions[j].Cumplido = cumplido
			}
		}
		plan.Prescripciones = prescriptions
		return &plan
	}
	return &models.TreatmentPlan{ID: planID}
}

func (s *planService) fail(err error, fallback string) error {
	message := fallback
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		message = customErr.ClientMessage
	}
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()

	s.Log.Error("planService request failed",
		zap.String("client_message", message),
		zap.Error(err),
	)
	return err
}
