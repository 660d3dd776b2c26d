package controllers

import (
	"net/http"
	"strconv"
	"time"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/pkg/constvars"
	"clinidash-core/internal/pkg/dto/requests"
	"clinidash-core/internal/pkg/exceptions"
	"clinidash-core/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientService contracts.PatientService
	Toasts         contracts.ToastNotifier
	ToastDuration  time.Duration
}

func NewPatientController(logger *zap.Logger, patientService contracts.PatientService, toasts contracts.ToastNotifier, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientService: patientService,
		Toasts:         toasts,
		ToastDuration:  time.Duration(internalConfig.Toast.DefaultDurationInMilliseconds) * time.Millisecond,
	}
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	opts := &contracts.FetchOptions{
		Cancelable: r.URL.Query().Get("cancelable") == "true",
	}

	patients, err := ctrl.PatientService.FetchAll(r.Context(), opts)
	if err != nil {
		// List failures stay inline; the view renders LastError, no toast.
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if patients == nil && opts.Cancelable {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListFetchedMessage, []interface{}{})
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListFetchedMessage, patients)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePatient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreatePatientRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		customErr := exceptions.ErrInputValidation(err)
		ctrl.Toasts.Show(customErr.ClientMessage, constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, customErr)
		return
	}

	patient, err := ctrl.PatientService.Create(r.Context(), request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.PatientCreatedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientCreatedMessage, patient)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "patient_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePatient)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	patient, err := ctrl.PatientService.Update(r.Context(), patientID, request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.PatientUpdatedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientUpdatedMessage, patient)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "patient_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.PatientService.Delete(r.Context(), patientID)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.PatientDeletedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDeletedMessage, nil)
}

func (ctrl *PatientController) AssignGestor(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "patient_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AssignGestor)
	err = json.NewDecoder(r.Body).Decode(&request)
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

	patient, err := ctrl.PatientService.AssignGestor(r.Context(), patientID, request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.GestorAssignedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GestorAssignedMessage, patient)
}

func pathID(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.WrapWithError(err, constvars.StatusBadRequest, exceptions.KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}
	return id, nil
}
