package controllers

import (
	"net/http"
	"time"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/pkg/constvars"
	"clinidash-core/internal/pkg/dto/requests"
	"clinidash-core/internal/pkg/exceptions"
	"clinidash-core/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RecordController struct {
	Log           *zap.Logger
	RecordService contracts.RecordService
	Toasts        contracts.ToastNotifier
	ToastDuration time.Duration
}

func NewRecordController(logger *zap.Logger, recordService contracts.RecordService, toasts contracts.ToastNotifier, internalConfig *config.InternalConfig) *RecordController {
	return &RecordController{
		Log:           logger,
		RecordService: recordService,
		Toasts:        toasts,
		ToastDuration: time.Duration(internalConfig.Toast.DefaultDurationInMilliseconds) * time.Millisecond,
	}
}

func (ctrl *RecordController) FindAll(w http.ResponseWriter, r *http.Request) {
	opts := &contracts.FetchOptions{
		Cancelable: r.URL.Query().Get("cancelable") == "true",
	}

	records, err := ctrl.RecordService.FetchAll(r.Context(), opts)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if records == nil && opts.Cancelable {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListFetchedMessage, []interface{}{})
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListFetchedMessage, records)
}

func (ctrl *RecordController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateHistoria)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		customErr := exceptions.ErrInputValidation(err)
		ctrl.Toasts.Show(customErr.ClientMessage, constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, customErr)
		return
	}

	record, err := ctrl.RecordService.Create(r.Context(), request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.HistoriaSavedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.HistoriaSavedMessage, record)
}

func (ctrl *RecordController) Update(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "record_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateHistoria)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	record, err := ctrl.RecordService.Update(r.Context(), recordID, request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.HistoriaSavedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HistoriaSavedMessage, record)
}

func (ctrl *RecordController) Delete(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "record_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.RecordService.Delete(r.Context(), recordID)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.HistoriaDeletedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HistoriaDeletedMessage, nil)
}
