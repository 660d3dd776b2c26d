package requests

type OpenModal struct {
	Payload map[string]interface{} `json:"payload"`
}
