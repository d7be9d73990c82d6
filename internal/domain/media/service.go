package media

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

const MaxPhotoSize = 5 << 20 // 5MB

var (
	ErrEmptyPhoto      = errors.New("photo is empty")
	ErrPhotoTooLarge   = errors.New("photo must be at most 5MB")
	ErrUnsupportedType = errors.New("only jpeg and png photos are accepted")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// SavePetPhoto aplica el pre-check de tamaño/tipo y guarda el blob.
// El tipo se sniffea del contenido, no del filename ni del header del client.
// Devuelve la key para referenciar la foto desde el paso de mascotas.
func (s *Service) SavePetPhoto(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}
	if len(data) > MaxPhotoSize {
		return "", ErrPhotoTooLarge
	}

	contentType := http.DetectContentType(data)
	var ext string
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		return "", ErrUnsupportedType
	}

	key := "pet-photos/" + uuid.NewString() + ext
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return "", err
	}
	return key, nil
}
