package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"alphanum":  "must contain only alphanumeric characters",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"len":       "must be %s characters long",
	"oneof":     "must be one of [%s]",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_type": "must be one of 'paciente', 'medico', 'gestor' or 'admin'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}
