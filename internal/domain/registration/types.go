package registration

// Species define las especies aceptadas en la inscripción.
// @Enum dog, cat, bird, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesBird  Species = "bird"
	SpeciesOther Species = "other"
)

func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesOther:
		return true
	}
	return false
}

// TutorInput son los datos del tutor tal como llegan del formulario.
// Password viaja en claro hasta el gateway; los adapters la hashean antes
// de persistir.
type TutorInput struct {
	FullName string
	Email    string
	Phone    string
	Password string

	LGPDConsent bool

	SocialMedia             string
	ImagePublicationConsent bool
}

// PetInput es una entrada del sub-formulario repetible de mascotas.
type PetInput struct {
	Name    string
	Species Species
	Breed   string

	// Key devuelta por el upload de foto (opcional).
	PhotoKey string
}
