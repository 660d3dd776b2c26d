package requests

type CreatePlan struct {
	PacienteID  int    `json:"id_paciente" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	FechaInicio string `json:"fecha_inicio,omitempty"`
	FechaFin    string `json:"fecha_fin,omitempty"`
}

type UpdatePlan struct {
	Descripcion string `json:"descripcion,omitempty"`
	FechaInicio string `json:"fecha_inicio,omitempty"`
	FechaFin    string `json:"fecha_fin,omitempty"`
	Estado      string `json:"estado,omitempty"`
}

type UpdateCompliance struct {
	Cumplido bool `json:"cumplido"`
}
