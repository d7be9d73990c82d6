package registration

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// FieldError es una violación de regla, con scope de campo y mensaje legible.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors junta todas las violaciones de un submit.
// Se devuelven completas (sin short-circuit) para que la UI muestre todo.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	phoneRe = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateTutor aplica las reglas de campos del tutor.
// Strings sólo-espacios cuentan como ausentes.
func ValidateTutor(in TutorInput) ValidationErrors {
	var errs ValidationErrors

	name := strings.TrimSpace(in.FullName)
	switch {
	case name == "":
		errs = append(errs, FieldError{"full_name", "full name is required"})
	case len([]rune(name)) < 3:
		errs = append(errs, FieldError{"full_name", "full name must have at least 3 characters"})
	case len([]rune(name)) > 100:
		errs = append(errs, FieldError{"full_name", "full name must have at most 100 characters"})
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs = append(errs, FieldError{"email", "email is required"})
	case len(email) > 255:
		errs = append(errs, FieldError{"email", "email must have at most 255 characters"})
	case !emailRe.MatchString(email):
		errs = append(errs, FieldError{"email", "invalid email format"})
	}

	phone := strings.TrimSpace(in.Phone)
	switch {
	case phone == "":
		errs = append(errs, FieldError{"phone", "phone is required"})
	case !phoneRe.MatchString(phone):
		errs = append(errs, FieldError{"phone", "phone must match (11) 99999-9999"})
	}

	if msg := passwordRuleViolation(in.Password); msg != "" {
		errs = append(errs, FieldError{"password", msg})
	}

	if !in.LGPDConsent {
		errs = append(errs, FieldError{"lgpd_consent", "LGPD consent is required"})
	}

	return errs
}

func passwordRuleViolation(pw string) string {
	if len(pw) < 8 {
		return "password must have at least 8 characters"
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return "password must contain a lowercase letter, an uppercase letter and a digit"
	}
	return ""
}

// ValidatePets valida cada entrada por separado más la regla de colección:
// al menos una mascota por inscripción.
func ValidatePets(in []PetInput) ValidationErrors {
	var errs ValidationErrors

	if len(in) == 0 {
		errs = append(errs, FieldError{"pets", "at least one pet is required"})
		return errs
	}

	for i, p := range in {
		prefix := fmt.Sprintf("pets[%d].", i)

		name := strings.TrimSpace(p.Name)
		switch {
		case name == "":
			errs = append(errs, FieldError{prefix + "name", "pet name is required"})
		case len([]rune(name)) < 2:
			errs = append(errs, FieldError{prefix + "name", "pet name must have at least 2 characters"})
		case len([]rune(name)) > 50:
			errs = append(errs, FieldError{prefix + "name", "pet name must have at most 50 characters"})
		}

		if p.Species == "" {
			errs = append(errs, FieldError{prefix + "species", "species is required"})
		} else if !ValidSpecies(p.Species) {
			errs = append(errs, FieldError{prefix + "species", "species must be one of dog, cat, bird, other"})
		}
	}

	return errs
}

// FormatPhone es el transform de display: toma los dígitos crudos (hasta 11)
// y arma "(DD) DDDDD-DDDD". Se aplica antes de validar, no como regla.
func FormatPhone(raw string) string {
	var digits []rune
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) > 11 {
		return raw
	}

	n := len(digits)
	if n < 10 {
		return string(digits)
	}

	ddd := string(digits[:2])
	local := digits[2:]
	cut := len(local) - 4
	return fmt.Sprintf("(%s) %s-%s", ddd, string(local[:cut]), string(local[cut:]))
}
