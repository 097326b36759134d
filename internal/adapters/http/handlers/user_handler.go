package handlers

import (
	"errors"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/services"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles staff account management (admin only)
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents the partial user update request body
type UpdateUserRequest struct {
	Name     *string `json:"nome"`
	Role     *string `json:"tipo"`
	IsActive *bool   `json:"ativo"`
}

// List handles the staff listing
// @Summary List users
// @Description List all staff accounts
// @Tags Users
// @Produce json
// @Success 200 {array} models.UserResponse
// @Security BearerAuth
// @Router /usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar usuários")
	}

	return c.JSON(users)
}

// GetByID handles staff account retrieval
// @Summary Get user
// @Description Get a staff account by id
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /usuarios/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.InternalServerError(c, "Erro ao buscar usuário")
	}

	return c.JSON(user)
}

// Update handles the partial staff account update
// @Summary Update user
// @Description Update name, role and/or active flag of a staff account
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /usuarios/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	input := &services.UpdateUserInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return response.BadRequest(c, "Tipo de usuário inválido")
		}
		input.Role = &role
	}

	user, err := h.userService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.InternalServerError(c, "Erro ao atualizar usuário")
	}

	return c.JSON(user)
}

// Delete handles staff account removal
// @Summary Delete user
// @Description Remove a staff account
// @Tags Users
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /usuarios/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	// An admin cannot remove their own account
	if callerID, _ := c.Locals("userID").(string); callerID == id {
		return response.BadRequest(c, "Não é possível excluir a própria conta")
	}

	if err := h.userService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.InternalServerError(c, "Erro ao excluir usuário")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
