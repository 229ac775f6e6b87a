package ports

import "context"

// ImageStore is the existence oracle over the local image store.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ImageStore interface {
	// Exists reports whether an image matching the tag is present locally.
	// The query is read-only. If the store itself cannot be queried the
	// error wraps domain.ErrOracleUnavailable; absence is never reported
	// through the error value.
	Exists(ctx context.Context, tag string) (bool, error)
}
