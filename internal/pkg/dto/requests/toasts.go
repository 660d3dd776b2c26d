package requests

type ShowToast struct {
	Text                   string `json:"text" validate:"required"`
	Kind                   string `json:"kind" validate:"required,oneof=success error warning info"`
	DurationInMilliseconds int    `json:"duration_ms"`
}
