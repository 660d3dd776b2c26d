package models

// Patient mirrors one record of the upstream patient list. Field names are
// the upstream's wire names; the caches hold these structs as-is.
type Patient struct {
	ID              int    `json:"id_paciente"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	CI              string `json:"ci"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	Direccion       string `json:"direccion,omitempty"`
	GestorID        int    `json:"id_gestor,omitempty"`
}
