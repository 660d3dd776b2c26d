package contracts

import "clinidash-core/internal/app/models"

type ModalRegistry interface {
	Open(name string, payload map[string]interface{})
	Close(name string)
	IsOpen(name string) bool
	// Payload never returns nil; closed slots report an empty map.
	Payload(name string) map[string]interface{}
	State(name string) models.ModalState
	Names() []string
}
