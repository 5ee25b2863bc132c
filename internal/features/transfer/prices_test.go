package transfer

import (
	"context"
	"testing"
)

func priceFixture() (*fakeCatalogue, *fakeStaged, *PriceReconciler) {
	cat := newFakeCatalogue()
	cat.addCategory("Автоковрики")
	cat.addProduct("100", "Автоковрики", "Коврик EVA")
	cat.addProduct("101", "Автоковрики", "Коврик текстильный")
	cat.addStock("100", "1500", "Mediaset", "2")
	cat.addStock("101", "990", "Mediaset", "5")

	staged := &fakeStaged{}
	return cat, staged, &PriceReconciler{Catalogue: cat, Staged: staged}
}

func TestStageReplacesStagedSet(t *testing.T) {
	_, staged, p := priceFixture()
	staged.prices = []StagedPrice{{Code: "999", Price: "1"}}

	book := Workbook{{Name: "Автоковрики", Rows: [][]string{
		{"name", "code", "price"},
		{"Коврик EVA", "100", "1600"},
		{"Коврик текстильный", "101", "990,50"},
	}}}

	count, err := p.Stage(context.Background(), book)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("staged = %d, want 2", count)
	}
	if len(staged.prices) != 2 {
		t.Fatalf("previous staged set not replaced: %v", staged.prices)
	}
	if staged.prices[1].Price != "990.5" {
		t.Fatalf("comma price not normalised: %s", staged.prices[1].Price)
	}
}

func TestStageRejectsBadPrice(t *testing.T) {
	_, _, p := priceFixture()

	book := Workbook{{Name: "Автоковрики", Rows: [][]string{
		{"name", "code", "price"},
		{"Коврик EVA", "100", "дорого"},
	}}}

	_, err := p.Stage(context.Background(), book)
	checkKind(t, err, KindInvalidPriceFormat)
}

func TestChangesListsOnlyDiffering(t *testing.T) {
	_, staged, p := priceFixture()
	staged.prices = []StagedPrice{
		{Code: "100", Name: "Коврик EVA", Price: "1600"},
		{Code: "101", Name: "Коврик текстильный", Price: "990"},
		{Code: "999", Name: "Призрак", Price: "1"},
	}

	changes, err := p.Changes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 {
		t.Fatalf("changes = %v, want one entry", changes)
	}
	change := changes[0]
	if change.Code != "100" || change.OldPrice != "1500" || change.NewPrice != "1600" {
		t.Fatalf("unexpected change %+v", change)
	}
}

func TestChangesEquatesEquivalentDecimals(t *testing.T) {
	_, staged, p := priceFixture()
	staged.prices = []StagedPrice{{Code: "100", Name: "Коврик EVA", Price: "1500.00"}}

	changes, err := p.Changes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 0 {
		t.Fatalf("1500.00 must equal 1500, got changes %v", changes)
	}
}

func TestCommitUpdatesOnlySelectedCodes(t *testing.T) {
	cat, staged, p := priceFixture()
	staged.prices = []StagedPrice{
		{Code: "100", Price: "1600"},
		{Code: "101", Price: "1000"},
	}

	updated, err := p.Commit(context.Background(), []string{"100"})
	if err != nil {
		t.Fatal(err)
	}
	if updated != 1 {
		t.Fatalf("updated = %d, want 1", updated)
	}
	if cat.stock["100"].Price != "1600" {
		t.Fatalf("selected code not updated: %s", cat.stock["100"].Price)
	}
	if cat.stock["101"].Price != "990" {
		t.Fatalf("unselected code must stay untouched: %s", cat.stock["101"].Price)
	}
}

func TestCommitSkipsUnstagedAndStockless(t *testing.T) {
	cat, staged, p := priceFixture()
	cat.addProduct("102", "Автоковрики", "Коврик без склада")
	staged.prices = []StagedPrice{{Code: "102", Price: "500"}}

	updated, err := p.Commit(context.Background(), []string{"102", "100"})
	if err != nil {
		t.Fatal(err)
	}
	if updated != 0 {
		t.Fatalf("updated = %d, want 0", updated)
	}
}

func TestCommitRequiresCodes(t *testing.T) {
	_, _, p := priceFixture()
	_, err := p.Commit(context.Background(), nil)
	checkKind(t, err, KindNoSubmittedData)
}
