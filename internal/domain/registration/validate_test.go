package registration

import (
	"testing"
)

func validTutor() TutorInput {
	return TutorInput{
		FullName:    "Ana Silva",
		Email:       "ana.silva@example.com",
		Phone:       "(11) 98765-4321",
		Password:    "Passw0rd",
		LGPDConsent: true,
	}
}

func hasFieldError(errs ValidationErrors, field string) bool {
	for _, fe := range errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func TestValidateTutor_ValidInput_NoErrors(t *testing.T) {
	if errs := ValidateTutor(validTutor()); len(errs) != 0 {
		t.Fatalf("expected no errors for valid tutor, got %#v", errs)
	}
}

func TestValidateTutor_FieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TutorInput)
		field  string
	}{
		{"empty name", func(in *TutorInput) { in.FullName = "" }, "full_name"},
		{"whitespace name", func(in *TutorInput) { in.FullName = "   " }, "full_name"},
		{"name too short", func(in *TutorInput) { in.FullName = "Jo" }, "full_name"},
		{"name too long", func(in *TutorInput) { in.FullName = repeatRune('a', 101) }, "full_name"},
		{"empty email", func(in *TutorInput) { in.Email = "" }, "email"},
		{"bad email", func(in *TutorInput) { in.Email = "not-an-email" }, "email"},
		{"email too long", func(in *TutorInput) { in.Email = repeatRune('a', 250) + "@x.com" }, "email"},
		{"empty phone", func(in *TutorInput) { in.Phone = "" }, "phone"},
		{"unformatted phone", func(in *TutorInput) { in.Phone = "11987654321" }, "phone"},
		{"bad phone shape", func(in *TutorInput) { in.Phone = "(11) 123-4567" }, "phone"},
		{"short password", func(in *TutorInput) { in.Password = "Ab1" }, "password"},
		{"password without upper", func(in *TutorInput) { in.Password = "passw0rd" }, "password"},
		{"password without lower", func(in *TutorInput) { in.Password = "PASSW0RD" }, "password"},
		{"password without digit", func(in *TutorInput) { in.Password = "Password" }, "password"},
		{"no lgpd consent", func(in *TutorInput) { in.LGPDConsent = false }, "lgpd_consent"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validTutor()
			tc.mutate(&in)

			errs := ValidateTutor(in)
			if !hasFieldError(errs, tc.field) {
				t.Fatalf("expected error on %q, got %#v", tc.field, errs)
			}
		})
	}
}

func TestValidateTutor_CollectsAllErrors(t *testing.T) {
	// Todo vacío: una violación por campo, no short-circuit en la primera.
	errs := ValidateTutor(TutorInput{})
	for _, field := range []string{"full_name", "email", "phone", "password", "lgpd_consent"} {
		if !hasFieldError(errs, field) {
			t.Fatalf("expected error on %q among %#v", field, errs)
		}
	}
}

func TestValidateTutor_AcceptsBothPhoneLengths(t *testing.T) {
	for _, phone := range []string{"(11) 98765-4321", "(11) 8765-4321"} {
		in := validTutor()
		in.Phone = phone
		if errs := ValidateTutor(in); hasFieldError(errs, "phone") {
			t.Fatalf("expected %q to be valid, got %#v", phone, errs)
		}
	}
}

func TestValidatePets_RequiresAtLeastOne(t *testing.T) {
	errs := ValidatePets(nil)
	if !hasFieldError(errs, "pets") {
		t.Fatalf("expected collection error, got %#v", errs)
	}
}

func TestValidatePets_IndexedFieldErrors(t *testing.T) {
	errs := ValidatePets([]PetInput{
		{Name: "Rex", Species: SpeciesDog},
		{Name: "X", Species: Species("hamster")},
	})

	if hasFieldError(errs, "pets[0].name") || hasFieldError(errs, "pets[0].species") {
		t.Fatalf("first pet is valid, got %#v", errs)
	}
	if !hasFieldError(errs, "pets[1].name") {
		t.Fatalf("expected short-name error on pets[1], got %#v", errs)
	}
	if !hasFieldError(errs, "pets[1].species") {
		t.Fatalf("expected species error on pets[1], got %#v", errs)
	}
}

func TestValidatePets_MissingSpecies(t *testing.T) {
	errs := ValidatePets([]PetInput{{Name: "Rex"}})
	if !hasFieldError(errs, "pets[0].species") {
		t.Fatalf("expected species required, got %#v", errs)
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"11987654321", "(11) 98765-4321"},
		{"1187654321", "(11) 8765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"11 98765 4321", "(11) 98765-4321"},
		{"119876", "119876"},   // incompleto: se devuelven los dígitos tal cual
		{"", ""},
	}

	for _, tc := range cases {
		if got := FormatPhone(tc.raw); got != tc.want {
			t.Fatalf("FormatPhone(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestFormatLuckyNumber_ZeroPadded(t *testing.T) {
	cases := map[int64]string{
		1:       "000001",
		1234:    "001234",
		999999:  "999999",
		1000000: "1000000", // por encima del padding no se trunca
	}
	for n, want := range cases {
		if got := FormatLuckyNumber(n); got != want {
			t.Fatalf("FormatLuckyNumber(%d) = %q, want %q", n, got, want)
		}
	}
}

func repeatRune(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
