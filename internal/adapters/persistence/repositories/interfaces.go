package repositories

import (
	"context"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/models"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// DocumentRepository defines document repository interface
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id string) (*models.Document, error)
	ListAll(ctx context.Context, filter domain.DocumentFilter) ([]*models.Document, error)
	ListActive(ctx context.Context, filter domain.DocumentFilter) ([]*models.Document, error)
	ListPaginated(ctx context.Context, offset, limit int, filter domain.DocumentFilter, search string) ([]*models.Document, int64, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
}
