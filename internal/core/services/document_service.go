package services

import (
	"context"
	"errors"
	"log"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/models"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/repositories"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/pagination"

	"gorm.io/gorm"
)

// Document errors
var ErrDocumentNotFound = errors.New("document not found")

// DocumentService orchestrates the document lifecycle: upload validation,
// file persistence, repository writes and the listing contracts.
type DocumentService struct {
	docRepo repositories.DocumentRepository
	storage *StorageService
}

// NewDocumentService creates a new document service
func NewDocumentService(docRepo repositories.DocumentRepository, storage *StorageService) *DocumentService {
	return &DocumentService{
		docRepo: docRepo,
		storage: storage,
	}
}

// CreateDocumentInput represents create document input
type CreateDocumentInput struct {
	Title       string
	Category    domain.Category
	Note        string
	Period      string // YYYY-MM
	File        *UploadedFile
	CreatedByID string
}

// UpdateDocumentInput represents the partial update allowed on a document.
// Nil fields are left untouched.
type UpdateDocumentInput struct {
	Title  *string
	Note   *string
	Status *domain.Status
}

// PaginatedDocuments is the paginated listing result. Field names follow the
// site's published contract.
type PaginatedDocuments struct {
	Documents  []*models.Document `json:"documentos"`
	Total      int64              `json:"total"`
	Page       int                `json:"pagina"`
	TotalPages int                `json:"totalPaginas"`
	Limit      int                `json:"limite"`
}

// DocumentStats aggregates document counts for the admin dashboard
type DocumentStats struct {
	Total      int                    `json:"total"`
	Active     int                    `json:"ativos"`
	Inactive   int                    `json:"inativos"`
	Archived   int                    `json:"arquivados"`
	ByCategory []domain.CategoryCount `json:"porCategoria"`
}

// Create validates the upload (type, then size), persists the file, derives
// the public URL and creates the row. A rejected file short-circuits before
// any storage or database write.
func (s *DocumentService) Create(ctx context.Context, input *CreateDocumentInput) (*models.Document, error) {
	if !s.storage.ValidateFileType(input.File.MimeType) {
		return nil, domain.ErrFileTypeNotAllowed
	}
	if !s.storage.ValidateFileSize(input.File.Size) {
		return nil, domain.ErrFileTooLarge
	}

	relPath, err := s.storage.Save(input.File)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		Title:       input.Title,
		Category:    input.Category,
		Note:        input.Note,
		Period:      input.Period,
		FileName:    input.File.OriginalName,
		FilePath:    relPath,
		FileType:    input.File.MimeType,
		FileSize:    input.File.Size,
		Status:      domain.StatusActive,
		PublicURL:   s.storage.PublicURL(relPath),
		CreatedByID: input.CreatedByID,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	log.Printf("✅ Document created: %s (%s)", doc.Title, doc.ID)

	return doc, nil
}

// GetByID returns a document with its creator loaded
func (s *DocumentService) GetByID(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	s.refreshURL(doc)
	return doc, nil
}

// ListAll lists documents matching the filter
func (s *DocumentService) ListAll(ctx context.Context, filter domain.DocumentFilter) ([]*models.Document, error) {
	docs, err := s.docRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.refreshURLs(docs)
	return docs, nil
}

// ListActive lists documents with status forced to active
func (s *DocumentService) ListActive(ctx context.Context, filter domain.DocumentFilter) ([]*models.Document, error) {
	docs, err := s.docRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.refreshURLs(docs)
	return docs, nil
}

// ListPaginated lists documents with 1-based pagination and optional search.
// A page past the last one yields an empty list with correct totals.
func (s *DocumentService) ListPaginated(ctx context.Context, page, limit int, filter domain.DocumentFilter, search string) (*PaginatedDocuments, error) {
	params := pagination.New(page, limit)

	docs, total, err := s.docRepo.ListPaginated(ctx, params.Offset, params.Limit, filter, search)
	if err != nil {
		return nil, err
	}
	s.refreshURLs(docs)

	return &PaginatedDocuments{
		Documents:  docs,
		Total:      total,
		Page:       params.Page,
		TotalPages: pagination.TotalPages(total, params.Limit),
		Limit:      params.Limit,
	}, nil
}

// ListActivePaginated is the public listing: ListPaginated with status
// forced to active regardless of the caller's filter.
func (s *DocumentService) ListActivePaginated(ctx context.Context, page, limit int, filter domain.DocumentFilter, search string) (*PaginatedDocuments, error) {
	filter.Status = domain.StatusActive
	return s.ListPaginated(ctx, page, limit, filter, search)
}

// Update applies the allowed partial fields to an existing document
func (s *DocumentService) Update(ctx context.Context, id string, input *UpdateDocumentInput) (*models.Document, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["titulo"] = *input.Title
	}
	if input.Note != nil {
		updates["nota"] = *input.Note
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) > 0 {
		if err := s.docRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

// Delete removes the backing file (best effort), then the row
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.storage.Delete(doc.FilePath)

	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Document deleted: %s", id)
	return nil
}

// Stats aggregates totals per status and active counts per category
func (s *DocumentService) Stats(ctx context.Context) (*DocumentStats, error) {
	docs, err := s.docRepo.ListAll(ctx, domain.DocumentFilter{})
	if err != nil {
		return nil, err
	}

	byCategory, err := s.docRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DocumentStats{
		Total:      len(docs),
		ByCategory: byCategory,
	}
	for _, d := range docs {
		switch d.Status {
		case domain.StatusActive:
			stats.Active++
		case domain.StatusInactive:
			stats.Inactive++
		case domain.StatusArchived:
			stats.Archived++
		}
	}

	return stats, nil
}

// FilePath resolves the absolute path of a document's stored file, for the
// download endpoint only. The path always comes from the stored
// storage-relative value, never from the caller.
func (s *DocumentService) FilePath(doc *models.Document) string {
	return s.storage.AbsolutePath(doc.FilePath)
}

// The public URL is a pure function of the stored path and the configured
// base; it is recomputed on every read so a base URL change never serves
// stale hosts.
func (s *DocumentService) refreshURL(doc *models.Document) {
	doc.PublicURL = s.storage.PublicURL(doc.FilePath)
}

func (s *DocumentService) refreshURLs(docs []*models.Document) {
	for _, d := range docs {
		s.refreshURL(d)
	}
}
