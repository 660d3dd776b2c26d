package models

// User is the minimal persisted identity. It is the only thing written to
// the shared store besides the profile, and the profile must always agree
// with it on ID, Role and Username.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Profile is the enriched identity fetched lazily from the upstream. It is a
// superset of User; enrichment never changes the identity fields.
type Profile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Nombre   string `json:"nombre,omitempty"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefono string `json:"telefono,omitempty"`
}

type Session struct {
	User    *User    `json:"user"`
	Profile *Profile `json:"profile"`
}

// MinimalProfile derives the profile visible right after login, before
// LoadProfile has enriched it.
func (u *User) MinimalProfile() *Profile {
	return &Profile{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// Matches reports whether the profile still agrees with the minimal
// identity. A mismatch invalidates the whole session.
func (p *Profile) Matches(u *User) bool {
	if p == nil || u == nil {
		return false
	}
	return p.ID == u.ID && p.Role == u.Role && p.Username == u.Username
}
