package upload

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
	group := app.Group("/api/uploads", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.Controller.Upload)
	group.Get("/", api.Controller.List)
}
