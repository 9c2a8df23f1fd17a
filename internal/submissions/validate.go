package submissions

import (
	"regexp"
	"strings"
)

const (
	MessageRequiredFields = "Please fill in all required fields."
	MessageInvalidEmail   = "Please enter a valid email address."
)

// notSpace excludes Unicode whitespace and BOM; RE2's \s is ASCII only.
const notSpace = `[^\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}@]`

// Permissive: local@domain.tld, no RFC 5322.
var emailPattern = regexp.MustCompile(`^` + notSpace + `+@` + notSpace + `+\.` + notSpace + `+$`)

// Validate checks the required form fields and returns them trimmed.
func Validate(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return "", "", &ValidationError{Field: "name", Message: MessageRequiredFields}
	}
	if email == "" {
		return "", "", &ValidationError{Field: "email", Message: MessageRequiredFields}
	}
	if !emailPattern.MatchString(email) {
		return "", "", &ValidationError{Field: "email", Message: MessageInvalidEmail}
	}
	return name, email, nil
}
