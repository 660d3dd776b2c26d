package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/services/modals"
	"clinidash-core/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newModalTestRouter() *chi.Mux {
	internalConfig := &config.InternalConfig{
		Modal: config.Modal{ClearDelayInMilliseconds: 300},
	}
	registry := modals.NewModalRegistry(internalConfig, zap.NewNop())
	ctrl := NewModalController(zap.NewNop(), registry)

	router := chi.NewRouter()
	router.Get("/modales/{name}", ctrl.State)
	router.Post("/modales/{name}/abrir", ctrl.Open)
	router.Post("/modales/{name}/cerrar", ctrl.Close)
	return router
}

func TestModalControllerRoundTrip(t *testing.T) {
	t.Run("Open Then State", func(t *testing.T) {
		router := newModalTestRouter()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(constvars.MethodPost,
			"/modales/"+constvars.ModalViewPaciente+"/abrir",
			strings.NewReader(`{"payload":{"id_paciente":3}}`)))
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(constvars.MethodGet,
			"/modales/"+constvars.ModalViewPaciente, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"isOpen":true`)
		assert.Contains(t, rr.Body.String(), `"id_paciente":3`)
	})

	t.Run("Open With No Body", func(t *testing.T) {
		router := newModalTestRouter()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(constvars.MethodPost,
			"/modales/"+constvars.ModalRegistro+"/abrir", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"isOpen":true`)
	})

	t.Run("Close Keeps Payload In The Response", func(t *testing.T) {
		router := newModalTestRouter()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(constvars.MethodPost,
			"/modales/"+constvars.ModalEditPlan+"/abrir",
			strings.NewReader(`{"payload":{"id_plan":5}}`)))
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(constvars.MethodPost,
			"/modales/"+constvars.ModalEditPlan+"/cerrar", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"isOpen":false`)
		assert.Contains(t, rr.Body.String(), `"id_plan":5`, "the payload lingers through the grace window")
	})

	t.Run("Unknown Slot Reports Closed", func(t *testing.T) {
		router := newModalTestRouter()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(constvars.MethodGet, "/modales/noSuchModal", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"isOpen":false`)
	})
}
