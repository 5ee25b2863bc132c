package upload

import (
	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Service Service
}

func NewController(service Service) *Controller {
	return &Controller{Service: service}
}

// Upload godoc
// @Summary Upload an import workbook
// @Description Store an xlsx workbook for a later import run
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook file"
// @Param name formData string false "Import name"
// @Success 201 {object} DataImport
// @Failure 400 {object} map[string]interface{}
// @Router /api/uploads [post]
func (c *Controller) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer file.Close()

	imp, err := c.Service.Create(ctx.UserContext(), ctx.FormValue("name"), fileHeader.Filename, file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(imp)
}

// List godoc
// @Summary List uploaded workbooks
// @Tags uploads
// @Produce json
// @Success 200 {array} DataImport
// @Router /api/uploads [get]
func (c *Controller) List(ctx *fiber.Ctx) error {
	imports, err := c.Service.List(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(imports)
}
