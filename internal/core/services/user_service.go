package services

import (
	"context"
	"errors"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/models"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/adapters/persistence/repositories"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"

	"gorm.io/gorm"
)

// UserService handles user management business logic (admin surface)
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateUserInput represents the partial update an admin may apply to a user
type UpdateUserInput struct {
	Name     *string
	Role     *domain.Role
	IsActive *bool
}

// List returns sanitized projections of all users
func (s *UserService) List(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.UserResponse, len(users))
	for i, u := range users {
		out[i] = u.ToResponse()
	}
	return out, nil
}

// GetByID returns one sanitized user projection
func (s *UserService) GetByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// Update applies the provided subset of name/role/active to a user
func (s *UserService) Update(ctx context.Context, id string, input *UpdateUserInput) (*models.UserResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["nome"] = *input.Name
	}
	if input.Role != nil {
		updates["tipo"] = *input.Role
	}
	if input.IsActive != nil {
		updates["ativo"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

// Delete removes a staff account. Documents keep their criado_por_id, so
// deleting an account never touches published content.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
