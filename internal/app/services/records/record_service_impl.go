package records

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

var recordEnvelopeKeys = []string{"record", "historia", "registro", "data"}

type recordService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger

	mu        sync.RWMutex
	cache     []models.ClinicalRecord
	pending   int
	lastError string
}

func NewRecordService(apiGateway contracts.APIGateway, logger *zap.Logger) contracts.RecordService {
	return &recordService{
		Gateway: apiGateway,
		Log:     logger,
	}
}

func (s *recordService) FetchAll(ctx context.Context, opts *contracts.FetchOptions) ([]models.ClinicalRecord, error) {
	s.begin()
	defer s.end()

	list, err := s.Gateway.FetchList(ctx, constvars.ResourceHistoria, nil, opts)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientFetchHistorias)
	}
	if list == nil {
		return nil, nil
	}

	historias := make([]models.ClinicalRecord, 0, len(list))
	for _, raw := range list {
		var record models.ClinicalRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, s.fail(exceptions.ErrCannotParseJSON(err), constvars.ErrClientFetchHistorias)
		}
		historias = append(historias, record)
	}

	s.mu.Lock()
	s.cache = historias
	s.lastError = ""
	s.mu.Unlock()

	return s.Cached(), nil
}

func (s *recordService) Create(ctx context.Context, request *requests.CreateHistoria) (*models.ClinicalRecord, error) {
	s.begin()
	defer s.end()

	var raw json.RawMessage
	err := s.Gateway.PostJSON(ctx, constvars.ResourceHistoria, request, &raw)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientSaveHistoria)
	}

	created := new(models.ClinicalRecord)
	err = utils.DecodeEntity(raw, recordEnvelopeKeys, created)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientSaveHistoria)
	}

	s.mu.Lock()
	s.cache = append(s.cache, *created)
	s.lastError = ""
	s.mu.Unlock()

	return created, nil
}

func (s *recordService) Update(ctx context.Context, recordID int, request *requests.UpdateHistoria) (*models.ClinicalRecord, error) {
	s.begin()
	defer s.end()

	var raw json.RawMessage
	err := s.Gateway.PatchJSON(ctx, fmt.Sprintf("%s/%d", constvars.ResourceHistoria, recordID), request, &raw)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientSaveHistoria)
	}

	updated := new(models.ClinicalRecord)
	err = utils.DecodeEntity(raw, recordEnvelopeKeys, updated)
	if err != nil {
		return nil, s.fail(err, constvars.ErrClientSaveHistoria)
	}
	if updated.ID == 0 {
		updated.ID = recordID
	}

	s.replace(*updated)
	return updated, nil
}

func (s *recordService) Delete(ctx context.Context, recordID int) error {
	s.begin()
	defer s.end()

	err := s.Gateway.DeleteJSON(ctx, fmt.Sprintf("%s/%d", constvars.ResourceHistoria, recordID))
	if err != nil {
		return s.fail(err, constvars.ErrClientDeleteHistoria)
	}

	s.mu.Lock()
	for i := range s.cache {
		if s.cache[i].ID == recordID {
			s.cache = append(s.cache[:i], s.cache[i+1:]...)
			break
		}
	}
	s.lastError = ""
	s.mu.Unlock()
	return nil
}

func (s *recordService) Cached() []models.ClinicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]models.ClinicalRecord, len(s.cache))
	copy(snapshot, s.cache)
	return snapshot
}

func (s *recordService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

func (s *recordService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *recordService) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *recordService) end() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

func (s *recordService) replace(updated models.ClinicalRecord) {
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

func (s *recordService) fail(err error, fallback string) error {
	message := fallback
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		message = customErr.ClientMessage
	}
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()

	s.Log.Error("recordService request failed",
		zap.String("client_message", message),
		zap.Error(err),
	)
	return err
}
