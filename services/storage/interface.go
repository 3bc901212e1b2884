package storage

import (
	"context"
	"time"
)

// Upload folders per document kind.
const (
	FolderVaccinations = "furytails/vaccinations"
	FolderReceipts     = "furytails/receipts"
	FolderFeeding      = "furytails/feeding"
)

// StorageService defines the interface for image storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns
	// its permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL returns a public URL for a stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
	// GetSecureDownloadURL returns a signed, short-lived URL for a
	// stored file.
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}
