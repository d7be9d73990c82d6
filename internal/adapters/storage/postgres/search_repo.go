package postgres

import (
	"context"
	"database/sql"

	"pets-day-registration/internal/domain/search"
)

type SearchRepo struct {
	db *sql.DB
}

func NewSearchRepo(db *sql.DB) *SearchRepo {
	return &SearchRepo{db: db}
}

// Search replica la búsqueda fuzzy del procedimiento original: substring
// case-insensitive sobre nombre de tutor, nombre de mascota y el ticket
// (comparado zero-padded, que es como se muestra).
func (r *SearchRepo) Search(ctx context.Context, term string) ([]search.Result, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			t.id, t.nome, t.email, t.telefone,
			t.lgpd_consent, t.image_publication_consent,
			p.id, p.nome_pet, p.especie, p.raca,
			COALESCE(p.numero_sorte, 0)
		FROM pets p
		JOIN tutores t ON t.id = p.id_tutor
		WHERE t.nome ILIKE '%' || $1 || '%'
		   OR p.nome_pet ILIKE '%' || $1 || '%'
		   OR lpad(COALESCE(p.numero_sorte, 0)::text, 6, '0') LIKE '%' || $1 || '%'
		ORDER BY p.created_at ASC
	`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]search.Result, 0)
	for rows.Next() {
		var res search.Result
		if err := rows.Scan(
			&res.TutorID,
			&res.TutorName,
			&res.TutorEmail,
			&res.TutorPhone,
			&res.LGPDConsent,
			&res.ImagePublicationConsent,
			&res.PetID,
			&res.PetName,
			&res.Species,
			&res.Breed,
			&res.LuckyNumber,
		); err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, rows.Err()
}
