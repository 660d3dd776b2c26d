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

type PlanController struct {
	Log           *zap.Logger
	PlanService   contracts.PlanService
	Toasts        contracts.ToastNotifier
	ToastDuration time.Duration
}

func NewPlanController(logger *zap.Logger, planService contracts.PlanService, toasts contracts.ToastNotifier, internalConfig *config.InternalConfig) *PlanController {
	return &PlanController{
		Log:           logger,
		PlanService:   planService,
		Toasts:        toasts,
		ToastDuration: time.Duration(internalConfig.Toast.DefaultDurationInMilliseconds) * time.Millisecond,
	}
}

func (ctrl *PlanController) FindAll(w http.ResponseWriter, r *http.Request) {
	opts := &contracts.FetchOptions{
		Cancelable: r.URL.Query().Get("cancelable") == "true",
	}

	plans, err := ctrl.PlanService.FetchAll(r.Context(), opts)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if plans == nil && opts.Cancelable {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListFetchedMessage, []interface{}{})
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListFetchedMessage, plans)
}

func (ctrl *PlanController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePlan)
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

	plan, err := ctrl.PlanService.Create(r.Context(), request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.PlanSavedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PlanSavedMessage, plan)
}

func (ctrl *PlanController) Update(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "plan_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePlan)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	plan, err := ctrl.PlanService.Update(r.Context(), planID, request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.PlanSavedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PlanSavedMessage, plan)
}

func (ctrl *PlanController) Delete(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "plan_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.PlanService.Delete(r.Context(), planID)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.PlanDeletedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PlanDeletedMessage, nil)
}

func (ctrl *PlanController) UpdateCompliance(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "plan_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	prescriptionID, err := pathID(r, "prescription_id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateCompliance)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	plan, err := ctrl.PlanService.UpdateCompliance(r.Context(), planID, prescriptionID, request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.ComplianceUpdatedMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ComplianceUpdatedMessage, plan)
}
