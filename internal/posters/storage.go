package posters

import (
	"context"
	"errors"
	"io"
)

// AssetStorage persists mirrored images and returns their location.
type AssetStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

var (
	// ErrAssetStorageUnavailable indicates no object store is configured.
	ErrAssetStorageUnavailable = errors.New("poster storage unavailable")
	// ErrMirrorClosed is returned once Shutdown has been called.
	ErrMirrorClosed = errors.New("poster mirror closed")
)
