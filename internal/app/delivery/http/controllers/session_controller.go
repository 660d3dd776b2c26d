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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log           *zap.Logger
	SessionStore  contracts.SessionStore
	Toasts        contracts.ToastNotifier
	ToastDuration time.Duration
}

func NewSessionController(logger *zap.Logger, sessionStore contracts.SessionStore, toasts contracts.ToastNotifier, internalConfig *config.InternalConfig) *SessionController {
	return &SessionController{
		Log:           logger,
		SessionStore:  sessionStore,
		Toasts:        toasts,
		ToastDuration: time.Duration(internalConfig.Toast.DefaultDurationInMilliseconds) * time.Millisecond,
	}
}

func (ctrl *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		// Client-side precondition failures become toasts here and never
		// travel past the form handler.
		customErr := exceptions.ErrInputValidation(err)
		ctrl.Toasts.Show(customErr.ClientMessage, constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, customErr)
		return
	}

	session, err := ctrl.SessionStore.Login(r.Context(), request)
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.LoginSuccessMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, session)
}

func (ctrl *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	err := ctrl.SessionStore.Logout(r.Context())
	if err != nil {
		ctrl.Toasts.Show(clientMessage(err), constvars.ToastError, ctrl.ToastDuration)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Toasts.Show(constvars.LogoutSuccessMessage, constvars.ToastSuccess, ctrl.ToastDuration)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *SessionController) Current(w http.ResponseWriter, r *http.Request) {
	session := ctrl.SessionStore.Current()
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, session)
}

func (ctrl *SessionController) Profile(w http.ResponseWriter, r *http.Request) {
	userID := 0
	if rawID := r.URL.Query().Get("id"); rawID != "" {
		parsed, err := strconv.Atoi(rawID)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		userID = parsed
	}

	profile, err := ctrl.SessionStore.LoadProfile(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileLoadedMessage, profile)
}

// clientMessage extracts the user-facing text of a failure for toast
// display, falling back to the generic application error.
func clientMessage(err error) string {
	if customErr, ok := err.(*exceptions.CustomError); ok && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
