package transfer

import (
	"context"
	"fmt"
	"time"

	"go-catalogue/internal/config"
	"go-catalogue/internal/features/catalogue"
	"go-catalogue/internal/features/upload"

	"go.uber.org/zap"
)

// Service is the catalogue transfer pipeline: workbook validation, new
// product reconciliation and commit, staged price updates, and catalogue
// exports. Import operations take an upload id; an empty id means the most
// recent upload.
type Service interface {
	PreviewPriceImport(ctx context.Context, importID string) (Workbook, error)
	StagePrices(ctx context.Context, importID string) (int, error)
	PriceChanges(ctx context.Context) ([]PriceChange, error)
	CommitStagedPrices(ctx context.Context, codes []string) (int, error)

	CheckFullImport(ctx context.Context, importID string) (*FullImportPreview, error)
	CommitFullImport(ctx context.Context, importID string) (*ApplyResult, error)

	ExportPrices(ctx context.Context) (*Export, error)
	ExportProducts(ctx context.Context) (*Export, error)
	ExportBlank(ctx context.Context) (*Export, error)
}

type ServiceImpl struct {
	Uploads     upload.Service
	Logger      *zap.Logger
	validator   *Validator
	reconciler  *Reconciler
	applier     *Applier
	prices      *PriceReconciler
	exporter    *Exporter
	transformer *RowTransformer
}

func NewService(
	catalogueRepo catalogue.Repository,
	stagedRepo StagedPriceRepository,
	uploads upload.Service,
	transformer *RowTransformer,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &ServiceImpl{
		Uploads:     uploads,
		Logger:      logger,
		validator:   &Validator{Catalogue: catalogueRepo},
		reconciler:  &Reconciler{Catalogue: catalogueRepo},
		applier:     &Applier{Catalogue: catalogueRepo, DefaultProvider: cfg.DefaultProvider},
		prices:      &PriceReconciler{Catalogue: catalogueRepo, Staged: stagedRepo},
		exporter:    &Exporter{Catalogue: catalogueRepo},
		transformer: transformer,
	}
}

// PreviewPriceImport decodes and validates a price-only workbook and hands
// back the validated grids. No catalogue state changes.
func (s *ServiceImpl) PreviewPriceImport(ctx context.Context, importID string) (Workbook, error) {
	book, err := s.readBook(ctx, importID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePriceBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// StagePrices validates a price-only workbook, clears previously staged
// prices and stages one price per row.
func (s *ServiceImpl) StagePrices(ctx context.Context, importID string) (int, error) {
	book, err := s.readBook(ctx, importID)
	if err != nil {
		return 0, err
	}
	if err := s.validator.ValidatePriceBook(ctx, book); err != nil {
		return 0, err
	}

	staged, err := s.prices.Stage(ctx, book)
	if err != nil {
		return staged, err
	}
	s.Logger.Info("staged prices", zap.Int("count", staged))
	return staged, nil
}

func (s *ServiceImpl) PriceChanges(ctx context.Context) ([]PriceChange, error) {
	return s.prices.Changes(ctx)
}

func (s *ServiceImpl) CommitStagedPrices(ctx context.Context, codes []string) (int, error) {
	updated, err := s.prices.Commit(ctx, codes)
	if err != nil {
		return updated, err
	}
	s.Logger.Info("committed staged prices", zap.Int("updated", updated))
	return updated, nil
}

// CheckFullImport validates a full-product workbook and reports which rows
// would create new products. Nothing is persisted; commit re-runs the same
// validation and partition.
func (s *ServiceImpl) CheckFullImport(ctx context.Context, importID string) (*FullImportPreview, error) {
	book, err := s.fullBook(ctx, importID)
	if err != nil {
		return nil, err
	}

	newSheets, err := s.reconciler.Partition(ctx, book)
	if err != nil {
		return nil, err
	}
	if len(newSheets) == 0 {
		return &FullImportPreview{Message: NoNewProductsMessage}, nil
	}
	return &FullImportPreview{Sheets: newSheets}, nil
}

// CommitFullImport re-validates and re-partitions the workbook, then
// creates the new products with their stock, destination and parameter
// records.
func (s *ServiceImpl) CommitFullImport(ctx context.Context, importID string) (*ApplyResult, error) {
	book, err := s.fullBook(ctx, importID)
	if err != nil {
		return nil, err
	}

	newSheets, err := s.reconciler.Partition(ctx, book)
	if err != nil {
		return nil, err
	}

	result, err := s.applier.Apply(ctx, newSheets)
	if err != nil {
		return result, err
	}
	s.Logger.Info("committed full import",
		zap.Int("created", result.Created),
		zap.Int("warnings", len(result.Warnings)))
	return result, nil
}

func (s *ServiceImpl) ExportPrices(ctx context.Context) (*Export, error) {
	book, err := s.exporter.Prices(ctx)
	if err != nil {
		return nil, err
	}
	return s.encodeExport("Prices", book)
}

func (s *ServiceImpl) ExportProducts(ctx context.Context) (*Export, error) {
	book, err := s.exporter.Products(ctx)
	if err != nil {
		return nil, err
	}
	return s.encodeExport("All", book)
}

func (s *ServiceImpl) ExportBlank(ctx context.Context) (*Export, error) {
	book, err := s.exporter.Blank(ctx)
	if err != nil {
		return nil, err
	}
	return s.encodeExport("Blank", book)
}

func (s *ServiceImpl) encodeExport(prefix string, book Workbook) (*Export, error) {
	content, err := EncodeWorkbook(book)
	if err != nil {
		return nil, err
	}
	return &Export{
		Filename:    fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("2006-01-02")),
		ContentType: WorkbookContentType,
		Content:     content,
	}, nil
}

func (s *ServiceImpl) readBook(ctx context.Context, importID string) (Workbook, error) {
	var content []byte
	var err error
	if importID == "" {
		content, err = s.Uploads.ReadLatest(ctx)
	} else {
		content, err = s.Uploads.Read(ctx, importID)
	}
	if err != nil {
		return nil, err
	}
	return DecodeWorkbook(content)
}

// fullBook reads, transforms and validates a full-product workbook.
func (s *ServiceImpl) fullBook(ctx context.Context, importID string) (Workbook, error) {
	book, err := s.readBook(ctx, importID)
	if err != nil {
		return nil, err
	}
	book, err = s.transformer.TransformBook(ctx, book)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateFullBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}
