package plans

import (
	"context"
	"net/url"
	"testing"

	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/pkg/dto/requests"
	"clinidash-core/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type scriptedGateway struct {
	listResult []json.RawMessage
	listErr    error
	body       json.RawMessage
	err        error
	paths      []string
}

func (g *scriptedGateway) FetchList(ctx context.Context, key string, params url.Values, opts *contracts.FetchOptions) ([]json.RawMessage, error) {
	g.paths = append(g.paths, key)
	return g.listResult, g.listErr
}

func (g *scriptedGateway) GetJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	g.paths = append(g.paths, path)
	return g.respond(out)
}

func (g *scriptedGateway) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	g.paths = append(g.paths, path)
	return g.respond(out)
}

func (g *scriptedGateway) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	g.paths = append(g.paths, path)
	return g.respond(out)
}

func (g *scriptedGateway) PatchJSON(ctx context.Context, path string, body, out interface{}) error {
	g.paths = append(g.paths, path)
	return g.respond(out)
}

func (g *scriptedGateway) DeleteJSON(ctx context.Context, path string) error {
	g.paths = append(g.paths, path)
	return g.err
}

func (g *scriptedGateway) SetUnauthorizedHandler(handler func()) {}

func (g *scriptedGateway) respond(out interface{}) error {
	if g.err != nil {
		return g.err
	}
	if out == nil || g.body == nil {
		return nil
	}
	return json.Unmarshal(g.body, out)
}

const planWithPrescriptions = `{
	"id_plan": 1,
	"id_paciente": 3,
	"descripcion": "Control de hipertension",
	"prescripciones": [
		{"id_prescripcion": 10, "medicamento": "Enalapril", "cumplido": false},
		{"id_prescripcion": 11, "medicamento": "Aspirina", "cumplido": true}
	]
}`

func TestPlanServiceFetchAll(t *testing.T) {
	t.Run("Parses Nested Prescriptions", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: []json.RawMessage{json.RawMessage(planWithPrescriptions)},
		}
		service := NewPlanService(apiGateway, zap.NewNop())

		plans, err := service.FetchAll(context.Background(), nil)

		assert.NoError(t, err)
		assert.Len(t, plans, 1)
		assert.Len(t, plans[0].Prescripciones, 2)
		assert.Equal(t, "Enalapril", plans[0].Prescripciones[0].Medicamento)
		assert.False(t, plans[0].Prescripciones[0].Cumplido)
	})

	t.Run("Aborted Fetch Returns Nil Without Error", func(t *testing.T) {
		apiGateway := &scriptedGateway{}
		service := NewPlanService(apiGateway, zap.NewNop())

		plans, err := service.FetchAll(context.Background(), &contracts.FetchOptions{Cancelable: true})

		assert.NoError(t, err)
		assert.Nil(t, plans)
	})
}

func TestPlanServiceCreate(t *testing.T) {
	t.Run("Appends The Confirmed Plan", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			body: json.RawMessage(`{"plan":{"id_plan":5,"id_paciente":3,"descripcion":"Rehabilitacion"}}`),
		}
		service := NewPlanService(apiGateway, zap.NewNop())

		created, err := service.Create(context.Background(), &requests.CreatePlan{
			PacienteID: 3, Descripcion: "Rehabilitacion",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, created.ID)
		assert.Len(t, service.Cached(), 1)
	})
}

func TestPlanServiceUpdateCompliance(t *testing.T) {
	t.Run("Uses The Nested Prescription Path", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			body: json.RawMessage(planWithPrescriptions),
		}
		service := NewPlanService(apiGateway, zap.NewNop())

		_, err := service.UpdateCompliance(context.Background(), 1, 10, &requests.UpdateCompliance{Cumplido: true})

		assert.NoError(t, err)
		assert.Equal(t, []string{"planes/1/prescriptions/10"}, apiGateway.paths)
	})

	t.Run("Bodyless Response Toggles The Cached Copy", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: []json.RawMessage{json.RawMessage(planWithPrescriptions)},
		}
		service := NewPlanService(apiGateway, zap.NewNop())
		service.FetchAll(context.Background(), nil)

		updated, err := service.UpdateCompliance(context.Background(), 1, 10, &requests.UpdateCompliance{Cumplido: true})

		assert.NoError(t, err)
		assert.True(t, updated.Prescripciones[0].Cumplido, "the toggle lands without a refetch")
		assert.True(t, service.Cached()[0].Prescripciones[0].Cumplido)
		assert.True(t, service.Cached()[0].Prescripciones[1].Cumplido, "other prescriptions keep their state")
	})

	t.Run("Unknown Plan Yields A Stub", func(t *testing.T) {
		apiGateway := &scriptedGateway{}
		service := NewPlanService(apiGateway, zap.NewNop())

		updated, err := service.UpdateCompliance(context.Background(), 42, 1, &requests.UpdateCompliance{Cumplido: true})

		assert.NoError(t, err)
		assert.Equal(t, 42, updated.ID)
	})
}

func TestPlanServiceDelete(t *testing.T) {
	t.Run("Removes The Plan After Confirmation", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: []json.RawMessage{json.RawMessage(planWithPrescriptions)},
		}
		service := NewPlanService(apiGateway, zap.NewNop())
		service.FetchAll(context.Background(), nil)

		err := service.Delete(context.Background(), 1)

		assert.NoError(t, err)
		assert.Empty(t, service.Cached())
	})

	t.Run("Failure Records A Message", func(t *testing.T) {
		apiGateway := &scriptedGateway{err: exceptions.ErrSendHTTPRequest(nil)}
		service := NewPlanService(apiGateway, zap.NewNop())

		err := service.Delete(context.Background(), 1)

		assert.Error(t, err)
		assert.NotEmpty(t, service.LastError())
	})
}
