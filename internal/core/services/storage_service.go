package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/config"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// allowedMimeTypes is the upload allow-list: PDF, legacy and modern
// Word/Excel formats, JPEG and PNG.
var allowedMimeTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"image/jpeg": {},
	"image/png":  {},
	"image/jpg":  {},
}

// UploadedFile describes a file accepted by the transport layer and staged
// in the temp directory, waiting for validation.
type UploadedFile struct {
	OriginalName string
	MimeType     string
	Size         int64
	TempPath     string
}

// StorageService persists uploaded files under a date-partitioned tree and
// derives public URLs from storage-relative paths. All filenames are
// generated server-side; a caller-supplied path component is never trusted
// for writes.
type StorageService struct {
	uploadDir   string
	maxFileSize int64
	baseURL     string
}

// NewStorageService creates a new storage service
func NewStorageService(cfg *config.Config) *StorageService {
	return &StorageService{
		uploadDir:   cfg.Storage.UploadDir,
		maxFileSize: cfg.Storage.MaxFileSize,
		baseURL:     cfg.Storage.PublicBaseURL,
	}
}

// ValidateFileType reports whether the declared MIME type is allowed
func (s *StorageService) ValidateFileType(mimeType string) bool {
	_, ok := allowedMimeTypes[mimeType]
	return ok
}

// ValidateFileSize reports whether the byte size is within the limit
func (s *StorageService) ValidateFileSize(size int64) bool {
	return size <= s.maxFileSize
}

// Save validates the staged file and moves it into the year/month partition,
// returning the storage-relative path with forward-slash separators.
func (s *StorageService) Save(file *UploadedFile) (string, error) {
	if !s.ValidateFileType(file.MimeType) {
		return "", domain.ErrFileTypeNotAllowed
	}
	if !s.ValidateFileSize(file.Size) {
		return "", domain.ErrFileTooLarge
	}

	now := time.Now()
	year := fmt.Sprintf("%d", now.Year())
	month := fmt.Sprintf("%02d", int(now.Month()))

	dir := filepath.Join(s.uploadDir, year, month)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Millisecond timestamp plus a random fragment: two uploads in the same
	// millisecond with the same sanitized name must not collide.
	name := fmt.Sprintf("%d-%s-%s", now.UnixMilli(), uuid.NewString()[:8], SanitizeFileName(file.OriginalName))
	dest := filepath.Join(dir, name)

	if err := copyFile(file.TempPath, dest); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	if err := os.Remove(file.TempPath); err != nil {
		log.Printf("⚠️ Failed to remove temp file %s: %v", file.TempPath, err)
	}

	rel, err := filepath.Rel(s.uploadDir, dest)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// Delete removes a stored file. A missing file is not an error; any other
// I/O failure is logged as a warning and swallowed, which keeps document
// deletion from failing over an orphaned file.
func (s *StorageService) Delete(relPath string) {
	if relPath == "" {
		return
	}

	full := filepath.Join(s.uploadDir, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Failed to delete stored file %s: %v", relPath, err)
	}
}

// PublicURL derives the public URL for a storage-relative path. Pure
// function, no I/O; the URL is always baseURL + "/uploads/" + path.
func (s *StorageService) PublicURL(relPath string) string {
	return s.baseURL + "/uploads/" + strings.ReplaceAll(relPath, "\\", "/")
}

// UploadDir returns the storage root
func (s *StorageService) UploadDir() string {
	return s.uploadDir
}

// AbsolutePath resolves a storage-relative path against the upload root
func (s *StorageService) AbsolutePath(relPath string) string {
	return filepath.Join(s.uploadDir, filepath.FromSlash(relPath))
}

// TempDir returns the staging directory for in-flight uploads
func (s *StorageService) TempDir() string {
	return filepath.Join(s.uploadDir, "temp")
}

// MaxFileSize returns the configured upload limit in bytes
func (s *StorageService) MaxFileSize() int64 {
	return s.maxFileSize
}

// SanitizeFileName strips diacritics, lowercases and replaces anything
// outside [a-z0-9.-_] with underscores.
func SanitizeFileName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	stripped = strings.ToLower(stripped)

	var b strings.Builder
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
