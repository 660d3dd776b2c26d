package requests

type CreateHistoria struct {
	PacienteID  int    `json:"id_paciente" validate:"required"`
	Diagnostico string `json:"diagnostico" validate:"required"`
	Fecha       string `json:"fecha,omitempty"`
	Tratamiento string `json:"tratamiento,omitempty"`
	Notas       string `json:"notas,omitempty"`
}

// UpdateHistoria is a partial PATCH body; zero fields are omitted on the
// wire so the upstream only touches what was sent.
type UpdateHistoria struct {
	Diagnostico string `json:"diagnostico,omitempty"`
	Fecha       string `json:"fecha,omitempty"`
	Tratamiento string `json:"tratamiento,omitempty"`
	Notas       string `json:"notas,omitempty"`
}
