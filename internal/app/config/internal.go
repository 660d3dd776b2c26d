package config

import (
	"clinidash-core/internal/pkg/utils"
)

type InternalConfig struct {
	App    App
	API    API
	Modal  Modal
	Toast  Toast
	Events Events
}

type App struct {
	Env             string
	Port            string
	Version         string
	EndpointPrefix  string
	LoginRoute      string
	MaxRequests     int
	ShutdownTimeout int
}

type API struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	RequestsPerSecond       int
	RequestBurst            int
	SessionTTLInHours       int
}

type Modal struct {
	// ClearDelayInMilliseconds is the grace window between closing a slot
	// and wiping its payload, so exit animations never unmount on nil.
	ClearDelayInMilliseconds int
}

type Toast struct {
	DefaultDurationInMilliseconds int
}

type Events struct {
	SessionQueue string
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":3100"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "core"),
			LoginRoute:      utils.GetEnvString("APP_LOGIN_ROUTE", "/login"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		API: API{
			BaseUrl:                 utils.GetEnvString("API_BASE_URL", "http://localhost:4000/api"),
			RequestTimeoutInSeconds: utils.GetEnvInt("API_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RequestsPerSecond:       utils.GetEnvInt("API_REQUESTS_PER_SECOND", 20),
			RequestBurst:            utils.GetEnvInt("API_REQUEST_BURST", 40),
			SessionTTLInHours:       utils.GetEnvInt("API_SESSION_TTL_IN_HOURS", 12),
		},
		Modal: Modal{
			ClearDelayInMilliseconds: utils.GetEnvInt("MODAL_CLEAR_DELAY_IN_MILLISECONDS", 300),
		},
		Toast: Toast{
			DefaultDurationInMilliseconds: utils.GetEnvInt("TOAST_DEFAULT_DURATION_IN_MILLISECONDS", 4000),
		},
		Events: Events{
			SessionQueue: utils.GetEnvString("EVENTS_SESSION_QUEUE", "clinidash.session.events"),
		},
	}
}
