package handler

import (
	"compass-quiz/internal/domain"
	"compass-quiz/internal/dto"
	"compass-quiz/internal/logger"
	"compass-quiz/internal/service"
	"compass-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogueHandler serves stateless classification and catalogue lookups
type CatalogueHandler struct {
	classifier service.ClassificationService
	stats      service.StatsService
	validator  *validation.Validator
}

// NewCatalogueHandler creates a new CatalogueHandler instance
func NewCatalogueHandler(classifier service.ClassificationService, stats service.StatsService) *CatalogueHandler {
	return &CatalogueHandler{
		classifier: classifier,
		stats:      stats,
		validator:  validation.NewValidator(),
	}
}

// Classify godoc
// @Summary Classify a position
// @Description Maps known axis scores to a macro-cell and the nearest ideology. Without supplementary scores only the primary axes are compared.
// @Tags classification
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Axis scores in [-100, 100]"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /classify [post]
func (h *CatalogueHandler) Classify(c *fiber.Ctx) error {
	var req dto.ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateClassify(&req); len(errs) > 0 {
		return errs
	}

	primary := domain.PrimaryScores{
		Economic:  *req.Economic,
		Authority: *req.Authority,
		Cultural:  *req.Cultural,
	}
	result, err := h.classifier.Classify(c.Context(), primary, req.SupplementaryScores())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewResultResponse(result))
}

// ListCells godoc
// @Summary List the catalogue
// @Description Returns all nine macro-cells with their axes and ideologies
// @Tags catalogue
// @Produce json
// @Success 200 {array} dto.CellResponse
// @Router /catalogue [get]
func (h *CatalogueHandler) ListCells(c *fiber.Ctx) error {
	cells := h.classifier.Cells(c.Context())
	resp := make([]dto.CellResponse, len(cells))
	for i := range cells {
		resp[i] = dto.NewCellResponse(&cells[i])
	}
	return c.JSON(resp)
}

// GetCell godoc
// @Summary Get a macro-cell
// @Description Returns the ideologies and supplementary axis codes of one macro-cell
// @Tags catalogue
// @Produce json
// @Param cell path string true "Macro-cell code, e.g. EM-GL"
// @Success 200 {object} dto.CellResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /catalogue/{cell} [get]
func (h *CatalogueHandler) GetCell(c *fiber.Ctx) error {
	code, ok := c.Locals("validated_cell").(string)
	if !ok {
		code = c.Params("cell")
	}
	cell, err := h.classifier.Cell(c.Context(), domain.MacroCell(code))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCellResponse(cell))
}

// GetStats godoc
// @Summary Result statistics
// @Description Counts archived results per ideology
// @Tags catalogue
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /stats [get]
func (h *CatalogueHandler) GetStats(c *fiber.Ctx) error {
	counts, err := h.stats.IdeologyCounts(c.Context())
	if err != nil {
		logger.Get().Error("Failed to load result statistics", zap.Error(err))
		return err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return c.JSON(dto.StatsResponse{Total: total, Counts: counts})
}
