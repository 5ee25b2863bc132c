package cleanup

import (
	"context"
	"fmt"
	"time"

	"go-catalogue/internal/config"
	"go-catalogue/internal/features/transfer"
	"go-catalogue/internal/features/upload"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Service prunes the pipeline's transient state on a schedule: staged
// prices nobody committed and uploaded workbook files past their horizon.
type Service interface {
	Start(ctx context.Context) error
	Stop() error
	RunOnce(ctx context.Context) error
}

type ServiceImpl struct {
	Staged  transfer.StagedPriceRepository
	Uploads upload.Service
	Config  *config.Config
	Logger  *zap.Logger

	scheduler *cron.Cron
}

func NewService(staged transfer.StagedPriceRepository, uploads upload.Service, cfg *config.Config, logger *zap.Logger) Service {
	return &ServiceImpl{
		Staged:  staged,
		Uploads: uploads,
		Config:  cfg,
		Logger:  logger,
	}
}

func (s *ServiceImpl) Start(ctx context.Context) error {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(s.Config.CleanupSchedule, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			s.Logger.Error("cleanup run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", s.Config.CleanupSchedule, err)
	}
	s.scheduler.Start()
	s.Logger.Info("cleanup scheduler started", zap.String("schedule", s.Config.CleanupSchedule))
	return nil
}

func (s *ServiceImpl) Stop() error {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	return nil
}

func (s *ServiceImpl) RunOnce(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -s.Config.StagedPriceTTLDays)

	deleted, err := s.Staged.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	pruned, err := s.Uploads.PruneOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	s.Logger.Info("cleanup finished",
		zap.Int64("staged_prices_deleted", deleted),
		zap.Int("uploads_pruned", pruned))
	return nil
}
