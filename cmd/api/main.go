package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-catalogue/internal/common/api"
	"go-catalogue/internal/config"
	"go-catalogue/internal/database"
	"go-catalogue/internal/features/catalogue"
	"go-catalogue/internal/features/cleanup"
	"go-catalogue/internal/features/transfer"
	"go-catalogue/internal/features/upload"
	"go-catalogue/internal/logger"
	"go-catalogue/internal/middleware"
	"go-catalogue/pkg/utils"

	_ "go-catalogue/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	app.Get("/swagger/*", swagger.HandlerDefault)
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, catalogueRepo catalogue.Repository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := catalogueRepo.EnsureIndexes(context.Background()); err != nil {
					log.Printf("Failed to ensure catalogue indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

// @title           Catalogue Transfer API
// @version         1.0
// @description     Spreadsheet-driven catalogue import and export service.

// @host            localhost:8080
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			catalogue.NewRepository,
			upload.NewRepository,
			transfer.NewStagedPriceRepository,

			upload.NewService,
			transfer.NewRowTransformer,
			transfer.NewService,
			cleanup.NewService,

			upload.NewController,
			transfer.NewController,

			AsRoute(upload.NewApi),
			AsRoute(transfer.NewApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			InitializeIndexes,
			func(lc fx.Lifecycle, cleanupService cleanup.Service) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return cleanupService.Start(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return cleanupService.Stop()
					},
				})
			},
		),
	)

	app.Run()
}
