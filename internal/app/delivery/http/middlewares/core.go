package middlewares

import (
	"context"
	"net/http"
	"time"

	"clinidash-core/internal/pkg/constvars"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log *zap.Logger
}

func NewMiddlewares(logger *zap.Logger) *Middlewares {
	return &Middlewares{
		Log: logger,
	}
}

// RequestID tags every bridge request with a uuid so core logs can be
// correlated with the rendering layer's actions.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		m.Log.Debug("bridge request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
