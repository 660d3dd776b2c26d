package controllers

import (
	"net/http"

	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/pkg/constvars"
	"clinidash-core/internal/pkg/dto/requests"
	"clinidash-core/internal/pkg/exceptions"
	"clinidash-core/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ModalController struct {
	Log    *zap.Logger
	Modals contracts.ModalRegistry
}

func NewModalController(logger *zap.Logger, modals contracts.ModalRegistry) *ModalController {
	return &ModalController{
		Log:    logger,
		Modals: modals,
	}
}

func (ctrl *ModalController) Open(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	request := new(requests.OpenModal)
	if r.Body != nil && r.ContentLength != 0 {
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	ctrl.Modals.Open(name, request.Payload)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModalOpenedMessage, ctrl.Modals.State(name))
}

func (ctrl *ModalController) Close(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ctrl.Modals.Close(name)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModalClosedMessage, ctrl.Modals.State(name))
}

func (ctrl *ModalController) State(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModalStateMessage, ctrl.Modals.State(name))
}

func (ctrl *ModalController) Names(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModalStateMessage, ctrl.Modals.Names())
}
