package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/config"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *StorageService {
	t.Helper()
	cfg := &config.Config{
		Storage: config.StorageConfig{
			UploadDir:     t.TempDir(),
			MaxFileSize:   10 * 1024 * 1024,
			PublicBaseURL: "https://capuchinhosmaraba.org",
		},
	}
	return NewStorageService(cfg)
}

func stageFile(t *testing.T, storage *StorageService, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(storage.TempDir(), 0o755))
	path := filepath.Join(storage.TempDir(), "staged-upload")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateFileType(t *testing.T) {
	s := newTestStorage(t)

	allowed := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"image/jpeg",
		"image/png",
	}
	for _, mime := range allowed {
		assert.True(t, s.ValidateFileType(mime), mime)
	}

	rejected := []string{
		"application/x-msdownload",
		"text/html",
		"application/zip",
		"",
	}
	for _, mime := range rejected {
		assert.False(t, s.ValidateFileType(mime), mime)
	}
}

func TestValidateFileSize(t *testing.T) {
	s := newTestStorage(t)

	assert.True(t, s.ValidateFileSize(0))
	assert.True(t, s.ValidateFileSize(10*1024*1024))
	assert.False(t, s.ValidateFileSize(10*1024*1024+1))
}

func TestSave_PartitionsByDate(t *testing.T) {
	s := newTestStorage(t)
	temp := stageFile(t, s, "conteudo do pdf")

	rel, err := s.Save(&UploadedFile{
		OriginalName: "Relatório Anual.pdf",
		MimeType:     "application/pdf",
		Size:         15,
		TempPath:     temp,
	})
	require.NoError(t, err)

	now := time.Now()
	prefix := fmt.Sprintf("%d/%02d/", now.Year(), int(now.Month()))
	assert.True(t, strings.HasPrefix(rel, prefix), "path %q should live under %q", rel, prefix)
	assert.NotContains(t, rel, "\\")

	// Diacritics are stripped and the name lowercased
	assert.True(t, strings.HasSuffix(rel, "-relatorio_anual.pdf"), rel)

	// File moved into place, temp removed
	data, err := os.ReadFile(s.AbsolutePath(rel))
	require.NoError(t, err)
	assert.Equal(t, "conteudo do pdf", string(data))

	_, err = os.Stat(temp)
	assert.True(t, os.IsNotExist(err))
}

func TestSave_UniqueNamesForSameInput(t *testing.T) {
	s := newTestStorage(t)

	first, err := s.Save(&UploadedFile{
		OriginalName: "ata.pdf",
		MimeType:     "application/pdf",
		Size:         1,
		TempPath:     stageFile(t, s, "a"),
	})
	require.NoError(t, err)

	second, err := s.Save(&UploadedFile{
		OriginalName: "ata.pdf",
		MimeType:     "application/pdf",
		Size:         1,
		TempPath:     stageFile(t, s, "b"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSave_RejectsBeforeWriting(t *testing.T) {
	s := newTestStorage(t)
	temp := stageFile(t, s, "payload")

	_, err := s.Save(&UploadedFile{
		OriginalName: "virus.exe",
		MimeType:     "application/x-msdownload",
		Size:         7,
		TempPath:     temp,
	})
	assert.ErrorIs(t, err, domain.ErrFileTypeNotAllowed)

	_, err = s.Save(&UploadedFile{
		OriginalName: "grande.pdf",
		MimeType:     "application/pdf",
		Size:         10*1024*1024 + 1,
		TempPath:     temp,
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	// Rejected uploads never reach a year partition
	entries, err := os.ReadDir(s.UploadDir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, "temp", e.Name())
	}
}

func TestDelete_MissingFileIsSilent(t *testing.T) {
	s := newTestStorage(t)

	// Neither call may panic or create anything
	s.Delete("")
	s.Delete("2026/01/missing.pdf")
}

func TestDelete_RemovesStoredFile(t *testing.T) {
	s := newTestStorage(t)

	rel, err := s.Save(&UploadedFile{
		OriginalName: "boletim.pdf",
		MimeType:     "application/pdf",
		Size:         4,
		TempPath:     stageFile(t, s, "abcd"),
	})
	require.NoError(t, err)

	s.Delete(rel)

	_, err = os.Stat(s.AbsolutePath(rel))
	assert.True(t, os.IsNotExist(err))
}

func TestPublicURL(t *testing.T) {
	s := newTestStorage(t)

	assert.Equal(t,
		"https://capuchinhosmaraba.org/uploads/2026/02/175000-abc-relatorio.pdf",
		s.PublicURL("2026/02/175000-abc-relatorio.pdf"))

	// Backslashes never leak into URLs
	assert.Equal(t,
		"https://capuchinhosmaraba.org/uploads/2026/02/a.pdf",
		s.PublicURL("2026\\02\\a.pdf"))
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Relatório Anual (2025).PDF", "relatorio_anual__2025_.pdf"},
		{"prestação-de-contas.pdf", "prestacao-de-contas.pdf"},
		{"ata_01.docx", "ata_01.docx"},
		{"çãõéü.pdf", "caoeu.pdf"},
		{"../../etc/passwd", ".._.._etc_passwd"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.in), tt.in)
	}
}
