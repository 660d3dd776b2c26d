package responses

// UpstreamUser is the identity block the upstream returns from auth/login
// and auth/verify.
type UpstreamUser struct {
	IDUsuario     int    `json:"id_usuario"`
	TipoUsuario   string `json:"tipo_usuario"`
	NombreUsuario string `json:"nombre_usuario"`
}

type UpstreamLogin struct {
	User UpstreamUser `json:"user"`
}

// UpstreamProfile is the enriched identity from GET profile?id=.
type UpstreamProfile struct {
	IDUsuario     int    `json:"id_usuario"`
	TipoUsuario   string `json:"tipo_usuario"`
	NombreUsuario string `json:"nombre_usuario"`
	Nombre        string `json:"nombre,omitempty"`
	Apellido      string `json:"apellido,omitempty"`
	Email         string `json:"email,omitempty"`
	Telefono      string `json:"telefono,omitempty"`
}

// UpstreamError is the body shape probed for a failure message; the upstream
// has used both field names.
type UpstreamError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
