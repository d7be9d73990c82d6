package media

import "context"

// Store persiste blobs de fotos. La key la decide el servicio.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}
