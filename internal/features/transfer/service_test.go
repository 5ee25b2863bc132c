package transfer

import (
	"context"
	"io"
	"testing"
	"time"

	"go-catalogue/internal/config"
	"go-catalogue/internal/features/upload"

	"go.uber.org/zap"
)

// fakeUploads serves one in-memory workbook as the latest upload.
type fakeUploads struct {
	content []byte
}

func (f *fakeUploads) Create(ctx context.Context, name, filename string, src io.Reader) (*upload.DataImport, error) {
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	f.content = content
	return &upload.DataImport{Name: name, OriginalFilename: filename, Size: int64(len(content))}, nil
}

func (f *fakeUploads) List(ctx context.Context) ([]upload.DataImport, error) {
	return nil, nil
}

func (f *fakeUploads) Read(ctx context.Context, id string) ([]byte, error) {
	if f.content == nil {
		return nil, upload.ErrNotFound
	}
	return f.content, nil
}

func (f *fakeUploads) ReadLatest(ctx context.Context) ([]byte, error) {
	return f.Read(ctx, "")
}

func (f *fakeUploads) PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return 0, nil
}

func newTestService(cat *fakeCatalogue, staged *fakeStaged, uploads *fakeUploads) Service {
	cfg := &config.Config{DefaultProvider: "Mediaset"}
	return NewService(cat, staged, uploads, NewRowTransformerFromSource(nil), cfg, zap.NewNop())
}

// A blank export must feed straight back into the full-import check and
// come out as "nothing new".
func TestBlankExportRoundTrip(t *testing.T) {
	cat := newFakeCatalogue()
	cat.addCategory("Автоковрики")
	cat.addParameter("Автоковрики", "Цвет")

	uploads := &fakeUploads{}
	svc := newTestService(cat, &fakeStaged{}, uploads)
	ctx := context.Background()

	export, err := svc.ExportBlank(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if export.ContentType != WorkbookContentType {
		t.Fatalf("content type = %s", export.ContentType)
	}

	uploads.content = export.Content
	preview, err := svc.CheckFullImport(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if preview.Message != NoNewProductsMessage {
		t.Fatalf("message = %q, want %q", preview.Message, NoNewProductsMessage)
	}
	if len(preview.Sheets) != 0 {
		t.Fatalf("expected no sheets, got %v", preview.Sheets)
	}
}

func TestCommitFullImportIsIdempotent(t *testing.T) {
	cat := newFakeCatalogue()
	cat.addCategory("Автоковрики")

	content, err := EncodeWorkbook(Workbook{{Name: "Автоковрики", Rows: [][]string{
		{"name", "code", "first_text", "price", "provider", "num_in_stock", "destination"},
		{"Новый коврик", "300", "Описание", "1200", "", "2", ""},
	}}})
	if err != nil {
		t.Fatal(err)
	}

	uploads := &fakeUploads{content: content}
	svc := newTestService(cat, &fakeStaged{}, uploads)
	ctx := context.Background()

	result, err := svc.CommitFullImport(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if result.Created != 1 {
		t.Fatalf("first commit created = %d, want 1", result.Created)
	}

	result, err = svc.CommitFullImport(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if result.Created != 0 {
		t.Fatalf("second commit created = %d, want 0", result.Created)
	}
}

func TestStageAndCommitThroughService(t *testing.T) {
	cat := newFakeCatalogue()
	cat.addCategory("Автоковрики")
	cat.addProduct("100", "Автоковрики", "Коврик EVA")
	cat.addStock("100", "1500", "Mediaset", "2")

	content, err := EncodeWorkbook(Workbook{{Name: "Автоковрики", Rows: [][]string{
		{"name", "code", "price"},
		{"Коврик EVA", "100", "1600"},
	}}})
	if err != nil {
		t.Fatal(err)
	}

	uploads := &fakeUploads{content: content}
	svc := newTestService(cat, &fakeStaged{}, uploads)
	ctx := context.Background()

	staged, err := svc.StagePrices(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if staged != 1 {
		t.Fatalf("staged = %d, want 1", staged)
	}

	changes, err := svc.PriceChanges(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 || changes[0].NewPrice != "1600" {
		t.Fatalf("changes = %v", changes)
	}

	updated, err := svc.CommitStagedPrices(ctx, []string{"100"})
	if err != nil {
		t.Fatal(err)
	}
	if updated != 1 {
		t.Fatalf("updated = %d, want 1", updated)
	}
	if cat.stock["100"].Price != "1600" {
		t.Fatalf("price not committed: %s", cat.stock["100"].Price)
	}
}
