package modals

import (
	"sync"
	"time"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/app/models"
	"clinidash-core/internal/pkg/constvars"

	"go.uber.org/zap"
)

// slotNames is the closed set of dialogs the dashboard knows about. Opening
// anything else is a caller bug and is ignored.
var slotNames = []string{
	constvars.ModalRegistro,
	constvars.ModalViewPaciente,
	constvars.ModalEditPaciente,
	constvars.ModalAsignarGestor,
	constvars.ModalViewPlan,
	constvars.ModalEditPlan,
	constvars.ModalCrearHistoria,
	constvars.ModalEditHistoria,
	constvars.ModalConfirmarBorrar,
}

type slot struct {
	isOpen  bool
	payload map[string]interface{}
	// clearTimer is armed on Close and disarmed when the slot reopens before
	// the grace window elapses, so a fresh payload is never wiped by a stale
	// close.
	clearTimer *time.Timer
}

type modalRegistry struct {
	Log        *zap.Logger
	ClearDelay time.Duration

	mu    sync.Mutex
	slots map[string]*slot
}

func NewModalRegistry(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ModalRegistry {
	slots := make(map[string]*slot, len(slotNames))
	for _, name := range slotNames {
		slots[name] = &slot{}
	}
	return &modalRegistry{
		Log:        logger,
		ClearDelay: time.Duration(internalConfig.Modal.ClearDelayInMilliseconds) * time.Millisecond,
		slots:      slots,
	}
}

func (r *modalRegistry) Open(name string, payload map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.slots[name]
	if !ok {
		r.Log.Warn(constvars.ErrDevUnknownModalSlot,
			zap.String(constvars.LoggingModalKey, name),
		)
		return
	}

	if current.clearTimer != nil {
		current.clearTimer.Stop()
		current.clearTimer = nil
	}

	if payload == nil {
		payload = map[string]interface{}{}
	}
	// Reopening an open slot just replaces the payload; there is no queue.
	current.isOpen = true
	current.payload = payload
}

func (r *modalRegistry) Close(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.slots[name]
	if !ok {
		r.Log.Warn(constvars.ErrDevUnknownModalSlot,
			zap.String(constvars.LoggingModalKey, name),
		)
		return
	}
	if !current.isOpen {
		return
	}

	// Visually closed right away; the payload survives the grace window so
	// the exit animation has content to render.
	current.isOpen = false
	if current.clearTimer != nil {
		current.clearTimer.Stop()
	}
	current.clearTimer = time.AfterFunc(r.ClearDelay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if current.isOpen {
			return
		}
		current.payload = nil
		current.clearTimer = nil
	})
}

func (r *modalRegistry) IsOpen(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.slots[name]
	return ok && current.isOpen
}

func (r *modalRegistry) Payload(name string) map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.slots[name]
	if !ok || current.payload == nil {
		return map[string]interface{}{}
	}
	return current.payload
}

func (r *modalRegistry) State(name string) models.ModalState {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.slots[name]
	if !ok {
		return models.ModalState{Payload: map[string]interface{}{}}
	}
	if current.payload == nil {
		return models.ModalState{IsOpen: current.isOpen, Payload: map[string]interface{}{}}
	}
	return models.ModalState{IsOpen: current.isOpen, Payload: current.payload}
}

func (r *modalRegistry) Names() []string {
	names := make([]string, len(slotNames))
	copy(names, slotNames)
	return names
}
