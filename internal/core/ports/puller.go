package ports

import "context"

// ImagePuller fetches pre-built images from the remote registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=puller.go -destination=mocks/mock_puller.go -package=mocks
type ImagePuller interface {
	// Pull blocks until the image for the given tag has been fetched.
	// Failure is returned as an error wrapping domain.ErrPullFailed.
	Pull(ctx context.Context, tag string) error
}
