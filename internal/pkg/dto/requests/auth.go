package requests

// Login carries the credentials exactly once, from the bridge to the
// upstream call. The identifier may be an email or a username; the upstream
// accepts either field.
type Login struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UpstreamLogin is the wire shape of POST auth/login. Only one of Email or
// NombreUsuario is set.
type UpstreamLogin struct {
	Email         string `json:"email,omitempty"`
	NombreUsuario string `json:"nombre_usuario,omitempty"`
	Password      string `json:"password"`
}
