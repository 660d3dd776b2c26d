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

type ToastController struct {
	Log             *zap.Logger
	Toasts          contracts.ToastNotifier
	DefaultDuration time.Duration
}

func NewToastController(logger *zap.Logger, toasts contracts.ToastNotifier, internalConfig *config.InternalConfig) *ToastController {
	return &ToastController{
		Log:             logger,
		Toasts:          toasts,
		DefaultDuration: time.Duration(internalConfig.Toast.DefaultDurationInMilliseconds) * time.Millisecond,
	}
}

func (ctrl *ToastController) Show(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ShowToast)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	duration := ctrl.DefaultDuration
	if request.DurationInMilliseconds != 0 {
		duration = time.Duration(request.DurationInMilliseconds) * time.Millisecond
	}

	ctrl.Toasts.Show(request.Text, request.Kind, duration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToastShownMessage, ctrl.Toasts.Current())
}

func (ctrl *ToastController) Current(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToastStateMessage, ctrl.Toasts.Current())
}

func (ctrl *ToastController) Dismiss(w http.ResponseWriter, r *http.Request) {
	ctrl.Toasts.Dismiss()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToastDismissedMessage, nil)
}
