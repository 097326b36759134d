package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/domain"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/core/services"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/pagination"
	"github.com/comunicacaocapuchinhosmaraba-ai/backendcapuchinhos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DocumentHandler handles document endpoints
type DocumentHandler struct {
	docService *services.DocumentService
	storage    *services.StorageService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService *services.DocumentService, storage *services.StorageService) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		storage:    storage,
	}
}

// UpdateDocumentRequest represents the partial update request body
type UpdateDocumentRequest struct {
	Title  *string `json:"titulo"`
	Note   *string `json:"nota"`
	Status *string `json:"status"`
}

// parseFilter reads the conjunctive filter from query params, validating
// enum values at the boundary so invalid strings never reach the domain.
func parseFilter(c *fiber.Ctx) (domain.DocumentFilter, error) {
	var filter domain.DocumentFilter

	if raw := c.Query("categoria"); raw != "" {
		cat, err := domain.ParseCategory(raw)
		if err != nil {
			return filter, err
		}
		filter.Category = cat
	}
	if raw := c.Query("status"); raw != "" {
		st, err := domain.ParseStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = st
	}
	filter.Period = c.Query("data")

	return filter, nil
}

// Create handles document creation with file upload
// @Summary Create document
// @Description Upload a file and create a document record
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param arquivo formData file true "Document file"
// @Param titulo formData string true "Title"
// @Param categoria formData string true "Category"
// @Param data formData string true "Period (YYYY-MM)"
// @Param nota formData string false "Note"
// @Success 201 {object} models.Document
// @Failure 400 {object} response.ErrorBody
// @Security BearerAuth
// @Router /documentos [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		return response.BadRequest(c, "Arquivo é obrigatório")
	}

	title := strings.TrimSpace(c.FormValue("titulo"))
	rawCategory := c.FormValue("categoria")
	period := strings.TrimSpace(c.FormValue("data"))
	note := c.FormValue("nota")

	if title == "" || rawCategory == "" || period == "" {
		return response.BadRequest(c, "Título, categoria e data são obrigatórios")
	}

	category, err := domain.ParseCategory(rawCategory)
	if err != nil {
		return response.BadRequest(c, "Categoria inválida")
	}

	// Stage the upload in the temp directory; the storage engine moves it
	// into its final partition only after validation passes.
	tempPath := filepath.Join(h.storage.TempDir(), uuid.NewString()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, tempPath); err != nil {
		return response.InternalServerError(c, "Erro ao receber arquivo")
	}

	userID, _ := c.Locals("userID").(string)

	doc, err := h.docService.Create(c.Context(), &services.CreateDocumentInput{
		Title:    title,
		Category: category,
		Note:     note,
		Period:   period,
		File: &services.UploadedFile{
			OriginalName: fileHeader.Filename,
			MimeType:     fileHeader.Header.Get(fiber.HeaderContentType),
			Size:         fileHeader.Size,
			TempPath:     tempPath,
		},
		CreatedByID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFileTypeNotAllowed):
			return response.BadRequest(c, "Tipo de arquivo não permitido. Use PDF, DOC, DOCX, XLS, XLSX ou imagens.")
		case errors.Is(err, domain.ErrFileTooLarge):
			return response.BadRequest(c, "Arquivo muito grande. Tamanho máximo: 10MB")
		default:
			return response.InternalServerError(c, "Erro ao criar documento")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

// ListAll handles the admin listing
// @Summary List documents
// @Description List all documents with optional filters
// @Tags Documents
// @Produce json
// @Param categoria query string false "Category filter"
// @Param status query string false "Status filter"
// @Param data query string false "Period filter (YYYY-MM)"
// @Success 200 {array} models.Document
// @Security BearerAuth
// @Router /documentos [get]
func (h *DocumentHandler) ListAll(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return response.BadRequest(c, "Filtro inválido")
	}

	docs, err := h.docService.ListAll(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar documentos")
	}

	return c.JSON(docs)
}

// ListPaginated handles the admin paginated listing with search
// @Summary List documents paginated
// @Description Paginated document listing with optional filters and search
// @Tags Documents
// @Produce json
// @Param pagina query int false "Page (1-based)"
// @Param limite query int false "Page size"
// @Param busca query string false "Search term over title and note"
// @Success 200 {object} services.PaginatedDocuments
// @Security BearerAuth
// @Router /documentos/paginado [get]
func (h *DocumentHandler) ListPaginated(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return response.BadRequest(c, "Filtro inválido")
	}

	params := pagination.GetParams(c)
	result, err := h.docService.ListPaginated(c.Context(), params.Page, params.Limit, filter, c.Query("busca"))
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar documentos")
	}

	return c.JSON(result)
}

// ListPublic handles the public listing: always active documents only
// @Summary List public documents
// @Description Paginated listing of active documents for the public site
// @Tags Documents
// @Produce json
// @Param pagina query int false "Page (1-based)"
// @Param limite query int false "Page size"
// @Param categoria query string false "Category filter"
// @Param data query string false "Period filter (YYYY-MM)"
// @Param busca query string false "Search term"
// @Success 200 {object} services.PaginatedDocuments
// @Router /documentos/publicos [get]
func (h *DocumentHandler) ListPublic(c *fiber.Ctx) error {
	var filter domain.DocumentFilter
	if raw := c.Query("categoria"); raw != "" {
		cat, err := domain.ParseCategory(raw)
		if err != nil {
			return response.BadRequest(c, "Categoria inválida")
		}
		filter.Category = cat
	}
	filter.Period = c.Query("data")

	params := pagination.GetParams(c)
	result, err := h.docService.ListActivePaginated(c.Context(), params.Page, params.Limit, filter, c.Query("busca"))
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar documentos")
	}

	return c.JSON(result)
}

// GetByID handles document retrieval by id
// @Summary Get document
// @Description Get a document by id, including its creator
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /documentos/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	doc, err := h.docService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return response.NotFound(c, "Documento não encontrado")
		}
		return response.InternalServerError(c, "Erro ao buscar documento")
	}

	return c.JSON(doc)
}

// Download streams the stored file with the document title as name
// @Summary Download document file
// @Description Download the stored file of a public document
// @Tags Documents
// @Produce octet-stream
// @Param id path string true "Document ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorBody
// @Router /documentos/publicos/{id}/download [get]
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	doc, err := h.docService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return response.NotFound(c, "Documento não encontrado")
		}
		return response.InternalServerError(c, "Erro ao buscar documento")
	}

	if doc.FilePath == "" {
		return response.BadRequest(c, "Documento não possui arquivo associado")
	}

	name := doc.Title
	if name == "" {
		name = "documento"
	}
	name += filepath.Ext(doc.FileName)

	return c.Download(h.docService.FilePath(doc), name)
}

// Stats handles the statistics endpoint
// @Summary Document statistics
// @Description Totals per status and active counts per category
// @Tags Documents
// @Produce json
// @Success 200 {object} services.DocumentStats
// @Security BearerAuth
// @Router /documentos/estatisticas [get]
func (h *DocumentHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.docService.Stats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao obter estatísticas")
	}

	return c.JSON(stats)
}

// Update handles the partial document update
// @Summary Update document
// @Description Update title, note and/or status of a document
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param body body UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} models.Document
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /documentos/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var req UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	input := &services.UpdateDocumentInput{
		Title: req.Title,
		Note:  req.Note,
	}
	if req.Status != nil {
		st, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return response.BadRequest(c, "Status inválido")
		}
		input.Status = &st
	}

	doc, err := h.docService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return response.NotFound(c, "Documento não encontrado")
		}
		return response.InternalServerError(c, "Erro ao atualizar documento")
	}

	return c.JSON(doc)
}

// Delete handles document deletion
// @Summary Delete document
// @Description Delete a document and its stored file
// @Tags Documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /documentos/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.docService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return response.NotFound(c, "Documento não encontrado")
		}
		return response.InternalServerError(c, "Erro ao deletar documento")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
