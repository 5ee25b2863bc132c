package transfer

import (
	"errors"

	"go-catalogue/internal/features/upload"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Service Service
}

func NewController(service Service) *Controller {
	return &Controller{Service: service}
}

type commitPricesRequest struct {
	Codes []string `json:"codes"`
}

// importID resolves the path parameter; the literal "latest" selects the
// most recent upload.
func importID(ctx *fiber.Ctx) string {
	id := ctx.Params("id")
	if id == "latest" {
		return ""
	}
	return id
}

// PreviewPriceImport godoc
// @Summary Validate and preview a price-only import
// @Tags transfer
// @Produce json
// @Param id path string true "Upload ID or latest"
// @Success 200 {array} Sheet
// @Failure 400 {object} Error
// @Router /api/transfer/imports/{id}/prices [get]
func (c *Controller) PreviewPriceImport(ctx *fiber.Ctx) error {
	book, err := c.Service.PreviewPriceImport(ctx.UserContext(), importID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(book)
}

// StagePrices godoc
// @Summary Validate a price-only import and stage its prices
// @Tags transfer
// @Produce json
// @Param id path string true "Upload ID or latest"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} Error
// @Router /api/transfer/imports/{id}/prices/stage [post]
func (c *Controller) StagePrices(ctx *fiber.Ctx) error {
	staged, err := c.Service.StagePrices(ctx.UserContext(), importID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"staged": staged})
}

// PriceChanges godoc
// @Summary List staged prices that differ from live stock prices
// @Tags transfer
// @Produce json
// @Success 200 {array} PriceChange
// @Router /api/transfer/prices/changes [get]
func (c *Controller) PriceChanges(ctx *fiber.Ctx) error {
	changes, err := c.Service.PriceChanges(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(changes)
}

// CommitStagedPrices godoc
// @Summary Commit staged prices for the selected product codes
// @Tags transfer
// @Accept json
// @Produce json
// @Param request body commitPricesRequest true "Selected product codes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} Error
// @Router /api/transfer/prices/commit [post]
func (c *Controller) CommitStagedPrices(ctx *fiber.Ctx) error {
	var req commitPricesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return respondError(ctx, errNoSubmittedData())
	}

	updated, err := c.Service.CommitStagedPrices(ctx.UserContext(), req.Codes)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"updated": updated})
}

// CheckFullImport godoc
// @Summary Validate a full-product import and preview new products
// @Tags transfer
// @Produce json
// @Param id path string true "Upload ID or latest"
// @Success 200 {object} FullImportPreview
// @Failure 400 {object} Error
// @Router /api/transfer/imports/{id}/products/check [get]
func (c *Controller) CheckFullImport(ctx *fiber.Ctx) error {
	preview, err := c.Service.CheckFullImport(ctx.UserContext(), importID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(preview)
}

// CommitFullImport godoc
// @Summary Create the new products of a full-product import
// @Tags transfer
// @Produce json
// @Param id path string true "Upload ID or latest"
// @Success 200 {object} ApplyResult
// @Failure 400 {object} Error
// @Router /api/transfer/imports/{id}/products/commit [post]
func (c *Controller) CommitFullImport(ctx *fiber.Ctx) error {
	result, err := c.Service.CommitFullImport(ctx.UserContext(), importID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(result)
}

// ExportPrices godoc
// @Summary Download the price-only catalogue export
// @Tags transfer
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/transfer/export/prices [get]
func (c *Controller) ExportPrices(ctx *fiber.Ctx) error {
	export, err := c.Service.ExportPrices(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return sendExport(ctx, export)
}

// ExportProducts godoc
// @Summary Download the full catalogue export
// @Tags transfer
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/transfer/export/products [get]
func (c *Controller) ExportProducts(ctx *fiber.Ctx) error {
	export, err := c.Service.ExportProducts(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return sendExport(ctx, export)
}

// ExportBlank godoc
// @Summary Download a blank import template
// @Tags transfer
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/transfer/export/blank [get]
func (c *Controller) ExportBlank(ctx *fiber.Ctx) error {
	export, err := c.Service.ExportBlank(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return sendExport(ctx, export)
}

func sendExport(ctx *fiber.Ctx, export *Export) error {
	ctx.Set(fiber.HeaderContentType, export.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return ctx.Send(export.Content)
}

func respondError(ctx *fiber.Ctx, err error) error {
	var terr *Error
	if errors.As(err, &terr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(terr)
	}
	if errors.Is(err, upload.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "upload not found"})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
