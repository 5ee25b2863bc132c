package transfer

import (
	"go-catalogue/internal/config"
	"go-catalogue/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Api struct {
	Controller *Controller
	Config     *config.Config
}

func NewApi(controller *Controller, config *config.Config) *Api {
	return &Api{
		Controller: controller,
		Config:     config,
	}
}

func (api *Api) Setup(app *fiber.App) {
	group := app.Group("/api/transfer", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/imports/:id/prices", api.Controller.PreviewPriceImport)
	group.Post("/imports/:id/prices/stage", api.Controller.StagePrices)
	group.Get("/prices/changes", api.Controller.PriceChanges)
	group.Post("/prices/commit", api.Controller.CommitStagedPrices)

	group.Get("/imports/:id/products/check", api.Controller.CheckFullImport)
	group.Post("/imports/:id/products/commit", api.Controller.CommitFullImport)

	group.Get("/export/prices", api.Controller.ExportPrices)
	group.Get("/export/products", api.Controller.ExportProducts)
	group.Get("/export/blank", api.Controller.ExportBlank)
}
