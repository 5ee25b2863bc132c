package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go-catalogue/internal/config"
)

// Service stores uploaded workbooks and hands their raw bytes back to the
// transfer pipeline.
type Service interface {
	Create(ctx context.Context, name, filename string, src io.Reader) (*DataImport, error)
	List(ctx context.Context) ([]DataImport, error)
	// Read returns the raw byte content of the upload with the given id.
	Read(ctx context.Context, id string) ([]byte, error)
	// ReadLatest returns the raw byte content of the most recent upload.
	ReadLatest(ctx context.Context) ([]byte, error)
	// PruneOlderThan removes uploads created before cutoff, files included.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type ServiceImpl struct {
	Repo      Repository
	UploadDir string
}

func NewService(repo Repository, cfg *config.Config) Service {
	if _, err := os.Stat(cfg.FSPath); os.IsNotExist(err) {
		os.MkdirAll(cfg.FSPath, 0755)
	}
	return &ServiceImpl{
		Repo:      repo,
		UploadDir: cfg.FSPath,
	}
}

func (s *ServiceImpl) Create(ctx context.Context, name, filename string, src io.Reader) (*DataImport, error) {
	if name == "" {
		name = "new_import"
	}

	stored := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(filename))
	path := filepath.Join(s.UploadDir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	size, err := io.Copy(dst, src)
	closeErr := dst.Close()
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	if closeErr != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to store upload: %w", closeErr)
	}

	imp := &DataImport{
		Name:             name,
		OriginalFilename: filename,
		Path:             path,
		Size:             size,
	}
	if err := s.Repo.Save(ctx, imp); err != nil {
		os.Remove(path)
		return nil, err
	}
	return imp, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]DataImport, error) {
	return s.Repo.List(ctx, 50)
}

func (s *ServiceImpl) Read(ctx context.Context, id string) ([]byte, error) {
	imp, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(imp.Path)
}

func (s *ServiceImpl) ReadLatest(ctx context.Context) ([]byte, error) {
	imp, err := s.Repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(imp.Path)
}

func (s *ServiceImpl) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	stale, err := s.Repo.FindOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, imp := range stale {
		if err := os.Remove(imp.Path); err != nil && !os.IsNotExist(err) {
			continue
		}
		if err := s.Repo.Delete(ctx, imp.ID.Hex()); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
