package utils

import (
	"strings"

	"clinidash-core/internal/pkg/dto/requests"
)

// SanitizeLoginRequest trims the identifier and lowercases it when it looks
// like an email. Passwords are never altered.
func SanitizeLoginRequest(request *requests.Login) {
	request.Identifier = strings.TrimSpace(request.Identifier)
	if strings.Contains(request.Identifier, "@") {
		request.Identifier = strings.ToLower(request.Identifier)
	}
}

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.Nombre = strings.TrimSpace(request.Nombre)
	request.Apellido = strings.TrimSpace(request.Apellido)
	request.CI = strings.TrimSpace(request.CI)
	request.Telefono = strings.TrimSpace(request.Telefono)
	request.Direccion = strings.TrimSpace(request.Direccion)
}
