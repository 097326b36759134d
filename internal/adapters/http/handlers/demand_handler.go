package handlers

import (
	"strings"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/services"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DemandHandler relays community demand submissions to the mail form service
type DemandHandler struct {
	demandService *services.DemandService
}

// NewDemandHandler creates a new demand handler
func NewDemandHandler(demandService *services.DemandService) *DemandHandler {
	return &DemandHandler{demandService: demandService}
}

// Send handles a community demand submission
// @Summary Send demand
// @Description Relay a community demand form to the configured mail endpoint
// @Tags Demand
// @Accept json
// @Produce json
// @Param body body services.DemandInput true "Demand form"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorBody
// @Router /demanda [post]
func (h *DemandHandler) Send(c *fiber.Ctx) error {
	var input services.DemandInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if input.Name == "" || input.Subject == "" || input.Message == "" {
		return response.BadRequest(c, "Nome, assunto e mensagem são obrigatórios")
	}

	if err := h.demandService.Send(c.Context(), &input); err != nil {
		return response.InternalServerError(c, "Erro ao enviar demanda")
	}

	return c.JSON(fiber.Map{"mensagem": "Demanda enviada com sucesso"})
}
