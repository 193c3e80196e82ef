// File: services/storage/interface.go
package storage

import "context"

// StorageService is the external CDN collaborator that holds blog images.
type StorageService interface {
	// UploadImage stores a local file under destFolder and returns its
	// public delivery URL.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}
