package search

// Result es una tupla plana (tutor, mascota, número) como la devuelve la
// búsqueda de colaboradores.
type Result struct {
	TutorID    string `json:"tutor_id"`
	TutorName  string `json:"tutor_name"`
	TutorEmail string `json:"tutor_email"`
	TutorPhone string `json:"tutor_phone"`

	PetID   string `json:"pet_id"`
	PetName string `json:"pet_name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`

	LuckyNumber int64 `json:"lucky_number"`

	LGPDConsent             bool `json:"lgpd_consent"`
	ImagePublicationConsent bool `json:"image_publication_consent"`
}
