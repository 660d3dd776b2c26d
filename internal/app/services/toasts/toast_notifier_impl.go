package toasts

import (
	"sync"
	"time"

	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/app/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type toastNotifier struct {
	Log *zap.Logger

	mu      sync.Mutex
	current *models.Toast
	timer   *time.Timer
}

func NewToastNotifier(logger *zap.Logger) contracts.ToastNotifier {
	return &toastNotifier{
		Log: logger,
	}
}

func (n *toastNotifier) Show(text, kind string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}

	toast := &models.Toast{
		ID:   uuid.New().String(),
		Text: text,
		Kind: kind,
	}
	n.current = toast

	// duration <= 0 means sticky: only an explicit Dismiss removes it.
	if duration <= 0 {
		return
	}

	n.timer = time.AfterFunc(duration, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// A later Show may have replaced us; only the owning toast expires.
		if n.current != nil && n.current.ID == toast.ID {
			n.current = nil
			n.timer = nil
		}
	})
}

func (n *toastNotifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

func (n *toastNotifier) Current() *models.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
