package media

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// firmas mínimas que http.DetectContentType reconoce
var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n")
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0}
)

type testStore struct {
	key         string
	contentType string
	data        []byte
	err         error
}

func (s *testStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.key = key
	s.contentType = contentType
	s.data = data
	return nil
}

func TestService_SavePetPhoto_PNG(t *testing.T) {
	store := &testStore{}
	svc := NewService(store)

	data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	key, err := svc.SavePetPhoto(context.Background(), data)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "pet-photos/"))
	require.True(t, strings.HasSuffix(key, ".png"))
	require.Equal(t, "image/png", store.contentType)
	require.Equal(t, data, store.data)
}

func TestService_SavePetPhoto_JPEG(t *testing.T) {
	store := &testStore{}
	svc := NewService(store)

	data := append(append([]byte{}, jpegHeader...), bytes.Repeat([]byte{0}, 64)...)
	key, err := svc.SavePetPhoto(context.Background(), data)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(key, ".jpg"))
	require.Equal(t, "image/jpeg", store.contentType)
}

func TestService_SavePetPhoto_Empty(t *testing.T) {
	svc := NewService(&testStore{})
	_, err := svc.SavePetPhoto(context.Background(), nil)
	require.ErrorIs(t, err, ErrEmptyPhoto)
}

func TestService_SavePetPhoto_TooLarge(t *testing.T) {
	store := &testStore{}
	svc := NewService(store)

	data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxPhotoSize)...)
	_, err := svc.SavePetPhoto(context.Background(), data)
	require.ErrorIs(t, err, ErrPhotoTooLarge)
	require.Empty(t, store.key, "oversized photo must not be stored")
}

func TestService_SavePetPhoto_UnsupportedType(t *testing.T) {
	store := &testStore{}
	svc := NewService(store)

	_, err := svc.SavePetPhoto(context.Background(), []byte("GIF89a...."))
	require.ErrorIs(t, err, ErrUnsupportedType)
	require.Empty(t, store.key)
}

func TestService_SavePetPhoto_UniqueKeys(t *testing.T) {
	store := &testStore{}
	svc := NewService(store)

	data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 16)...)
	k1, err := svc.SavePetPhoto(context.Background(), data)
	require.NoError(t, err)
	k2, err := svc.SavePetPhoto(context.Background(), data)
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}
