package repositories

import (
	"context"
	"strings"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/models"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"

	"gorm.io/gorm"
)

// documentRepository implements DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create creates a new document
func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// GetByID gets a document by ID with its creator
func (r *documentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("id = ?", id).
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// applyFilter adds the conjunctive filter clauses. Empty fields are skipped.
func applyFilter(q *gorm.DB, filter domain.DocumentFilter) *gorm.DB {
	if filter.Category != "" {
		q = q.Where("categoria = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Period != "" {
		q = q.Where("data = ?", filter.Period)
	}
	return q
}

// ListAll lists documents matching the filter, newest first
func (r *documentRepository) ListAll(ctx context.Context, filter domain.DocumentFilter) ([]*models.Document, error) {
	var docs []*models.Document
	q := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Order("criado_em DESC")
	err := applyFilter(q, filter).Find(&docs).Error
	return docs, err
}

// ListActive is ListAll with status forced to active
func (r *documentRepository) ListActive(ctx context.Context, filter domain.DocumentFilter) ([]*models.Document, error) {
	filter.Status = domain.StatusActive
	return r.ListAll(ctx, filter)
}

// ListPaginated lists documents with offset/limit pagination and an optional
// case-insensitive search over title and note. Ordering is fixed to newest first.
func (r *documentRepository) ListPaginated(ctx context.Context, offset, limit int, filter domain.DocumentFilter, search string) ([]*models.Document, int64, error) {
	var docs []*models.Document
	var total int64

	base := applyFilter(r.db.WithContext(ctx).Model(&models.Document{}), filter)
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		base = base.Where("(LOWER(titulo) LIKE ? OR LOWER(nota) LIKE ?)", term, term)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Preload("CreatedBy").
		Order("criado_em DESC").
		Offset(offset).
		Limit(limit).
		Find(&docs).Error

	return docs, total, err
}

// Update applies a partial update to a document
func (r *documentRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Document{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a document row
func (r *documentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Document{}).Error
}

// CountByCategory counts active documents grouped by category
func (r *documentRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	var rows []domain.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Select("categoria AS category, COUNT(*) AS total").
		Where("status = ?", domain.StatusActive).
		Group("categoria").
		Scan(&rows).Error
	return rows, err
}
