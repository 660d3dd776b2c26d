package requests

type CreatePatient struct {
	Nombre          string `json:"nombre" validate:"required"`
	Apellido        string `json:"apellido" validate:"required"`
	CI              string `json:"ci" validate:"required,alphanum"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	Direccion       string `json:"direccion,omitempty"`
}

type UpdatePatient struct {
	Nombre          string `json:"nombre,omitempty"`
	Apellido        string `json:"apellido,omitempty"`
	CI              string `json:"ci,omitempty"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	Direccion       string `json:"direccion,omitempty"`
}

type AssignGestor struct {
	GestorID int `json:"id_gestor" validate:"required"`
}
