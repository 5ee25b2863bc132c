package main

import (
	"context"
	"flag"
	"os"

	"go-catalogue/internal/config"
	"go-catalogue/internal/connectors"
	"go-catalogue/internal/database"
	"go-catalogue/internal/features/catalogue"
	"go-catalogue/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var (
	legacyDriver = flag.String("legacy-driver", "", "legacy shop database driver (postgres or mysql)")
	legacyDSN    = flag.String("legacy-dsn", "", "legacy shop database DSN")
)

// Seed loads categories, providers, destinations and parameter schema into
// the catalogue store, either from the legacy SQL shop database or from the
// built-in demo set.
func Seed(
	lc fx.Lifecycle,
	repo catalogue.Repository,
	cfg *config.Config,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				if err := repo.EnsureIndexes(context.Background()); err != nil {
					logger.Error("Failed to ensure indexes", zap.Error(err))
					return
				}

				var err error
				if *legacyDriver != "" {
					err = seedFromLegacy(context.Background(), repo, cfg, logger)
				} else {
					err = seedDemo(context.Background(), repo, cfg, logger)
				}
				if err != nil {
					logger.Error("Seeding failed", zap.Error(err))
					os.Exit(1)
				}
				logger.Info("Seeding finished")
			}()
			return nil
		},
	})
}

func seedFromLegacy(ctx context.Context, repo catalogue.Repository, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Seeding catalogue from legacy shop database",
		zap.String("driver", *legacyDriver))

	shop, err := connectors.OpenLegacyShop(*legacyDriver, *legacyDSN)
	if err != nil {
		return err
	}
	defer shop.Close()

	categories, err := shop.Categories(ctx)
	if err != nil {
		return err
	}
	for _, name := range categories {
		if err := createCategory(ctx, repo, name); err != nil {
			return err
		}
	}

	providers, err := shop.Providers(ctx)
	if err != nil {
		return err
	}
	for _, name := range providers {
		if err := createProvider(ctx, repo, name); err != nil {
			return err
		}
	}

	destinations, err := shop.Destinations(ctx)
	if err != nil {
		return err
	}
	for _, value := range destinations {
		if err := createDestination(ctx, repo, value); err != nil {
			return err
		}
	}

	parameters, err := shop.Parameters(ctx)
	if err != nil {
		return err
	}
	for _, p := range parameters {
		if err := createParameter(ctx, repo, p.Category, p.Name); err != nil {
			return err
		}
	}

	// The default provider must exist for the import defaulting policy.
	return createProvider(ctx, repo, cfg.DefaultProvider)
}

func seedDemo(ctx context.Context, repo catalogue.Repository, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Seeding demo catalogue")

	for _, name := range []string{"Автоковрики", "Накидки", "Чехлы"} {
		if err := createCategory(ctx, repo, name); err != nil {
			return err
		}
	}
	for _, name := range []string{cfg.DefaultProvider, "Avtostyle"} {
		if err := createProvider(ctx, repo, name); err != nil {
			return err
		}
	}
	for _, value := range []string{"Lada Vesta", "Kia Rio", "Hyundai Solaris"} {
		if err := createDestination(ctx, repo, value); err != nil {
			return err
		}
	}
	for _, p := range []catalogue.Parameter{
		{Category: "Автоковрики", Name: "Цвет"},
		{Category: "Автоковрики", Name: "Материал"},
	} {
		if err := createParameter(ctx, repo, p.Category, p.Name); err != nil {
			return err
		}
	}
	for _, v := range []catalogue.ParameterValue{
		{Category: "Автоковрики", Parameter: "Цвет", Value: "Черный"},
		{Category: "Автоковрики", Parameter: "Цвет", Value: "Бежевый"},
		{Category: "Автоковрики", Parameter: "Материал", Value: "EVA"},
	} {
		if err := repo.CreateParameterValue(ctx, &catalogue.ParameterValue{
			Category: v.Category, Parameter: v.Parameter, Value: v.Value,
		}); err != nil {
			return err
		}
	}
	return nil
}

func createCategory(ctx context.Context, repo catalogue.Repository, name string) error {
	exists, err := repo.CategoryExists(ctx, name)
	if err != nil || exists {
		return err
	}
	return repo.CreateCategory(ctx, &catalogue.Category{Name: name})
}

func createProvider(ctx context.Context, repo catalogue.Repository, name string) error {
	exists, err := repo.ProviderExists(ctx, name)
	if err != nil || exists {
		return err
	}
	return repo.CreateProvider(ctx, &catalogue.Provider{Name: name})
}

func createDestination(ctx context.Context, repo catalogue.Repository, value string) error {
	exists, err := repo.DestinationExists(ctx, value)
	if err != nil || exists {
		return err
	}
	return repo.CreateDestination(ctx, &catalogue.Destination{Value: value})
}

func createParameter(ctx context.Context, repo catalogue.Repository, category, name string) error {
	exists, err := repo.ParameterExists(ctx, category, name)
	if err != nil || exists {
		return err
	}
	return repo.CreateParameter(ctx, &catalogue.Parameter{Category: category, Name: name})
}

func main() {
	flag.Parse()

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			catalogue.NewRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
