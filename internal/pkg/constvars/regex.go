package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*(),.?":{}|<>]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
)
