package models

type Prescription struct {
	ID          int    `json:"id_prescripcion"`
	Medicamento string `json:"medicamento"`
	Dosis       string `json:"dosis,omitempty"`
	Frecuencia  string `json:"frecuencia,omitempty"`
	Cumplido    bool   `json:"cumplido"`
}

// TreatmentPlan is one entry of the planes list, prescriptions included.
type TreatmentPlan struct {
	ID             int            `json:"id_plan"`
	PacienteID     int            `json:"id_paciente"`
	Descripcion    string         `json:"descripcion"`
	FechaInicio    string         `json:"fecha_inicio,omitempty"`
	FechaFin       string         `json:"fecha_fin,omitempty"`
	Estado         string         `json:"estado,omitempty"`
	Prescripciones []Prescription `json:"prescripciones,omitempty"`
}
