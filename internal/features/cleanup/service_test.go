package cleanup

import (
	"context"
	"io"
	"testing"
	"time"

	"go-catalogue/internal/config"
	"go-catalogue/internal/features/transfer"
	"go-catalogue/internal/features/upload"

	"go.uber.org/zap"
)

type fakeStaged struct {
	prices []transfer.StagedPrice
}

func (f *fakeStaged) Clear(ctx context.Context) error {
	f.prices = nil
	return nil
}

func (f *fakeStaged) Insert(ctx context.Context, price *transfer.StagedPrice) error {
	f.prices = append(f.prices, *price)
	return nil
}

func (f *fakeStaged) All(ctx context.Context) ([]transfer.StagedPrice, error) {
	return f.prices, nil
}

func (f *fakeStaged) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var kept []transfer.StagedPrice
	var deleted int64
	for _, price := range f.prices {
		if price.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, price)
	}
	f.prices = kept
	return deleted, nil
}

type fakeUploads struct {
	pruned    int
	gotCutoff time.Time
}

func (f *fakeUploads) Create(ctx context.Context, name, filename string, src io.Reader) (*upload.DataImport, error) {
	return nil, nil
}

func (f *fakeUploads) List(ctx context.Context) ([]upload.DataImport, error) { return nil, nil }

func (f *fakeUploads) Read(ctx context.Context, id string) ([]byte, error) { return nil, nil }

func (f *fakeUploads) ReadLatest(ctx context.Context) ([]byte, error) { return nil, nil }

func (f *fakeUploads) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	f.gotCutoff = cutoff
	return f.pruned, nil
}

func TestRunOnce(t *testing.T) {
	staged := &fakeStaged{prices: []transfer.StagedPrice{
		{Code: "100", CreatedAt: time.Now().AddDate(0, 0, -10)},
		{Code: "101", CreatedAt: time.Now()},
	}}
	uploads := &fakeUploads{pruned: 2}

	svc := NewService(staged, uploads, &config.Config{StagedPriceTTLDays: 7}, zap.NewNop())
	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(staged.prices) != 1 || staged.prices[0].Code != "101" {
		t.Fatalf("expected only the fresh staged price to survive, got %v", staged.prices)
	}

	wantCutoff := time.Now().AddDate(0, 0, -7)
	if diff := uploads.gotCutoff.Sub(wantCutoff); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("cutoff = %v, want about %v", uploads.gotCutoff, wantCutoff)
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	svc := NewService(&fakeStaged{}, &fakeUploads{}, &config.Config{CleanupSchedule: "not a schedule"}, zap.NewNop())
	if err := svc.Start(context.Background()); err == nil {
		t.Fatal("expected an error for an invalid cron expression")
	}
}
