package models

// ClinicalRecord is one historia entry.
type ClinicalRecord struct {
	ID          int    `json:"id_registro"`
	PacienteID  int    `json:"id_paciente"`
	Fecha       string `json:"fecha,omitempty"`
	Diagnostico string `json:"diagnostico"`
	Tratamiento string `json:"tratamiento,omitempty"`
	Notas       string `json:"notas,omitempty"`
	MedicoID    int    `json:"id_medico,omitempty"`
}
