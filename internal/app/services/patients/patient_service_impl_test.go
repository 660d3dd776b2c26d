package patients

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

// scriptedGateway answers every call with the configured raw body or error.
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

func rawList(items ...string) []json.RawMessage {
	list := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		list = append(list, json.RawMessage(item))
	}
	return list
}

func TestPatientServiceFetchAll(t *testing.T) {
	t.Run("Replaces The Cache", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: rawList(
				`{"id_paciente":1,"nombre":"Ana","apellido":"Gomez","ci":"V100"}`,
				`{"id_paciente":2,"nombre":"Luis","apellido":"Perez","ci":"V200"}`,
			),
		}
		service := NewPatientService(apiGateway, zap.NewNop())

		patients, err := service.FetchAll(context.Background(), nil)

		assert.NoError(t, err)
		assert.Len(t, patients, 2)
		assert.Equal(t, "Ana", patients[0].Nombre)
		assert.Equal(t, 2, service.Cached()[1].ID)
		assert.Empty(t, service.LastError())
	})

	t.Run("Aborted Fetch Leaves The Cache Alone", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: rawList(`{"id_paciente":1,"nombre":"Ana","apellido":"Gomez","ci":"V100"}`),
		}
		service := NewPatientService(apiGateway, zap.NewNop())
		service.FetchAll(context.Background(), nil)

		apiGateway.listResult = nil
		patients, err := service.FetchAll(context.Background(), &contracts.FetchOptions{Cancelable: true})

		assert.NoError(t, err, "an abort is not a failure")
		assert.Nil(t, patients)
		assert.Len(t, service.Cached(), 1, "the previous snapshot survives")
	})

	t.Run("Failure Records The Upstream Message", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listErr: exceptions.ErrUpstreamRejected("acceso denegado", 403),
		}
		service := NewPatientService(apiGateway, zap.NewNop())

		_, err := service.FetchAll(context.Background(), nil)

		assert.Error(t, err)
		assert.Equal(t, "acceso denegado", service.LastError())
	})

	t.Run("Empty List Clears The Cache", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: rawList(`{"id_paciente":1,"nombre":"Ana","apellido":"Gomez","ci":"V100"}`),
		}
		service := NewPatientService(apiGateway, zap.NewNop())
		service.FetchAll(context.Background(), nil)

		apiGateway.listResult = []json.RawMessage{}
		patients, err := service.FetchAll(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, patients)
		assert.Empty(t, service.Cached(), "an empty completed fetch is authoritative")
	})
}

func TestPatientServiceCreate(t *testing.T) {
	t.Run("Appends After Confirmation", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			body: json.RawMessage(`{"id_paciente":101,"nombre":"Eva","apellido":"Diaz","ci":"V300"}`),
		}
		service := NewPatientService(apiGateway, zap.NewNop())

		created, err := service.Create(context.Background(), &requests.CreatePatient{
			Nombre: "Eva", Apellido: "Diaz", CI: "V300",
		})

		assert.NoError(t, err)
		assert.Equal(t, 101, created.ID, "the id comes from the upstream")
		assert.Len(t, service.Cached(), 1)
		assert.Equal(t, 101, service.Cached()[0].ID)
	})

	t.Run("Unwraps A Singular Envelope", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			body: json.RawMessage(`{"paciente":{"id_paciente":7,"nombre":"Mia","apellido":"Rios","ci":"V400"}}`),
		}
		service := NewPatientService(apiGateway, zap.NewNop())

		created, err := service.Create(context.Background(), &requests.CreatePatient{
			Nombre: "Mia", Apellido: "Rios", CI: "V400",
		})

		assert.NoError(t, err)
		assert.Equal(t, 7, created.ID)
	})

	t.Run("Rejection Leaves The Cache Untouched", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			err: exceptions.ErrUpstreamRejected("ci duplicada", 409),
		}
		service := NewPatientService(apiGateway, zap.NewNop())

		created, err := service.Create(context.Background(), &requests.CreatePatient{
			Nombre: "Eva", Apellido: "Diaz", CI: "V300",
		})

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.Empty(t, service.Cached())
		assert.Equal(t, "ci duplicada", service.LastError())
	})
}

func TestPatientServiceUpdate(t *testing.T) {
	t.Run("Replaces In Place Preserving Order", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: rawList(
				`{"id_paciente":1,"nombre":"Ana","apellido":"Gomez","ci":"V100"}`,
				`{"id_paciente":2,"nombre":"Luis","apellido":"Perez","ci":"V200"}`,
			),
		}
		service := NewPatientService(apiGateway, zap.NewNop())
		service.FetchAll(context.Background(), nil)

		apiGateway.body = json.RawMessage(`{"id_paciente":1,"nombre":"Ana Maria","apellido":"Gomez","ci":"V100"}`)
		updated, err := service.Update(context.Background(), 1, &requests.UpdatePatient{Nombre: "Ana Maria"})

		assert.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.Nombre)

		cached := service.Cached()
		assert.Equal(t, 1, cached[0].ID, "order is preserved")
		assert.Equal(t, "Ana Maria", cached[0].Nombre)
		assert.Equal(t, 2, cached[1].ID)
	})

	t.Run("Bodyless Response Falls Back To The Path Id", func(t *testing.T) {
		apiGateway := &scriptedGateway{}
		service := NewPatientService(apiGateway, zap.NewNop())

		updated, err := service.Update(context.Background(), 5, &requests.UpdatePatient{Nombre: "Eva"})

		assert.NoError(t, err)
		assert.Equal(t, 5, updated.ID)
	})

	t.Run("Cache Miss Still Returns The Record", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			body: json.RawMessage(`{"id_paciente":99,"nombre":"Nueva","apellido":"Alta","ci":"V900"}`),
		}
		service := NewPatientService(apiGateway, zap.NewNop())

		updated, err := service.Update(context.Background(), 99, &requests.UpdatePatient{Nombre: "Nueva"})

		assert.NoError(t, err)
		assert.Equal(t, 99, updated.ID)
		assert.Empty(t, service.Cached(), "an unknown id never grows the cache")
	})
}

func TestPatientServiceDelete(t *testing.T) {
	t.Run("Removes After Confirmation", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: rawList(
				`{"id_paciente":1,"nombre":"Ana","apellido":"Gomez","ci":"V100"}`,
				`{"id_paciente":2,"nombre":"Luis","apellido":"Perez","ci":"V200"}`,
			),
		}
		service := NewPatientService(apiGateway, zap.NewNop())
		service.FetchAll(context.Background(), nil)

		err := service.Delete(context.Background(), 1)

		assert.NoError(t, err)
		cached := service.Cached()
		assert.Len(t, cached, 1)
		assert.Equal(t, 2, cached[0].ID)
	})

	t.Run("Rejection Keeps The Record", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			listResult: rawList(`{"id_paciente":1,"nombre":"Ana","apellido":"Gomez","ci":"V100"}`),
		}
		service := NewPatientService(apiGateway, zap.NewNop())
		service.FetchAll(context.Background(), nil)

		apiGateway.err = exceptions.ErrUpstreamRejected("tiene planes activos", 409)
		err := service.Delete(context.Background(), 1)

		assert.Error(t, err)
		assert.Len(t, service.Cached(), 1, "nothing is removed until the upstream confirms")
		assert.Equal(t, "tiene planes activos", service.LastError())
	})
}

func TestPatientServiceAssignGestor(t *testing.T) {
	t.Run("Hits The Assign Endpoint", func(t *testing.T) {
		apiGateway := &scriptedGateway{
			body: json.RawMessage(`{"id_paciente":3,"nombre":"Ana","apellido":"Gomez","ci":"V100","id_gestor":12}`),
		}
		service := NewPatientService(apiGateway, zap.NewNop())

		updated, err := service.AssignGestor(context.Background(), 3, &requests.AssignGestor{GestorID: 12})

		assert.NoError(t, err)
		assert.Equal(t, 12, updated.GestorID)
		assert.Equal(t, []string{"patients/3/assign-gestor"}, apiGateway.paths)
	})

	t.Run("Bodyless Response Applies The Assignment Locally", func(t *testing.T) {
		apiGateway := &scriptedGateway{}
		service := NewPatientService(apiGateway, zap.NewNop())

		updated, err := service.AssignGestor(context.Background(), 3, &requests.AssignGestor{GestorID: 12})

		assert.NoError(t, err)
		assert.Equal(t, 3, updated.ID)
		assert.Equal(t, 12, updated.GestorID)
	})
}

func TestPatientServiceLoading(t *testing.T) {
	t.Run("Brackets Every Operation", func(t *testing.T) {
		apiGateway := &scriptedGateway{listResult: rawList()}
		service := NewPatientService(apiGateway, zap.NewNop())

		assert.False(t, service.Loading())
		service.FetchAll(context.Background(), nil)
		assert.False(t, service.Loading(), "loading resets once the call settles")
	})

	t.Run("Resets After A Failure", func(t *testing.T) {
		apiGateway := &scriptedGateway{listErr: exceptions.ErrSendHTTPRequest(nil)}
		service := NewPatientService(apiGateway, zap.NewNop())

		service.FetchAll(context.Background(), nil)

		assert.False(t, service.Loading(), "a failed call must not leave loading stuck")
	})
}
