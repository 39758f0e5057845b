package filestorage

import "mime/multipart"

// FileStorage defines the interface for upload storage. The local disk
// implementation backs club logos, event banners, profile photos and
// resumes; an object-store implementation can replace it behind this
// interface.
type FileStorage interface {
	// SaveFile stores a file under the storage root and returns its public URL
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath stores a file under the given subdirectory
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file given its public URL
	DeleteFile(filePath string) error

	// GetFullPath resolves a public file URL to its filesystem path
	GetFullPath(fileURL string) string
}

var _ FileStorage = (*LocalStorage)(nil)
