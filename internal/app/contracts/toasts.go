package contracts

import (
	"time"

	"clinidash-core/internal/app/models"
)

type ToastNotifier interface {
	// Show replaces any visible toast. duration <= 0 means sticky.
	Show(text, kind string, duration time.Duration)
	Dismiss()
	Current() *models.Toast
}
