package models

// Toast is the single-slot notification. Only one is visible at a time; the
// latest Show wins.
type Toast struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Kind string `json:"kind"`
}
