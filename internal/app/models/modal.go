package models

// ModalState is the externally visible state of one modal slot. Payload is
// never nil on reads; closed slots report an empty map.
type ModalState struct {
	IsOpen  bool                   `json:"isOpen"`
	Payload map[string]interface{} `json:"payload"`
}
