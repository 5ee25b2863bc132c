package transfer

import (
	"context"
	"reflect"
	"testing"
)

func exportCatalogue() *fakeCatalogue {
	cat := newFakeCatalogue()
	cat.addCategory("Автоковрики")
	cat.addCategory("Чехлы")
	cat.addCategory("Архив/Старое")
	cat.addProduct("100", "Автоковрики", "Коврик EVA")
	cat.addProduct("101", "Автоковрики", "Коврик текстильный")
	cat.addStock("100", "1500", "Mediaset", "2")
	return cat
}

func TestExportPrices(t *testing.T) {
	e := &Exporter{Catalogue: exportCatalogue()}
	book, err := e.Prices(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(book) != 1 {
		t.Fatalf("expected one sheet (empty and slashed categories omitted), got %d", len(book))
	}
	sheet := book[0]
	if sheet.Name != "Автоковрики" {
		t.Fatalf("sheet name = %s", sheet.Name)
	}

	want := [][]string{
		{"name", "code", "price"},
		{"Коврик EVA", "100", "1500"},
		{"Коврик текстильный", "101", "0"},
	}
	if !reflect.DeepEqual(sheet.Rows, want) {
		t.Fatalf("rows mismatch:\nwant %v\ngot  %v", want, sheet.Rows)
	}
}

func TestExportProducts(t *testing.T) {
	cat := exportCatalogue()
	cat.addParameter("Автоковрики", "Цвет")
	cat.products["100"].FirstText = "Описание"
	cat.products["100"].Destinations = []string{"Lada Vesta", "Kia Rio"}

	e := &Exporter{Catalogue: cat}
	book, err := e.Products(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(book) != 1 {
		t.Fatalf("expected one sheet, got %d", len(book))
	}

	sheet := book[0]
	wantHeader := []string{"name", "code", "first_text", "price", "provider", "num_in_stock", "destination", "Цвет"}
	if !reflect.DeepEqual(sheet.Rows[0], wantHeader) {
		t.Fatalf("header = %v, want %v", sheet.Rows[0], wantHeader)
	}

	wantStocked := []string{"Коврик EVA", "100", "Описание", "1500", "Mediaset", "2", "Lada Vesta, Kia Rio", ""}
	if !reflect.DeepEqual(sheet.Rows[1], wantStocked) {
		t.Fatalf("stocked row = %v, want %v", sheet.Rows[1], wantStocked)
	}

	wantStockless := []string{"Коврик текстильный", "101", "", "0", "", "", "", ""}
	if !reflect.DeepEqual(sheet.Rows[2], wantStockless) {
		t.Fatalf("stockless row = %v, want %v", sheet.Rows[2], wantStockless)
	}
}

func TestExportBlankIncludesEmptyCategories(t *testing.T) {
	cat := exportCatalogue()
	cat.addParameter("Чехлы", "Материал")

	e := &Exporter{Catalogue: cat}
	book, err := e.Blank(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(book) != 2 {
		t.Fatalf("expected both plain categories, got %d sheets", len(book))
	}
	for _, sheet := range book {
		if len(sheet.Rows) != 1 {
			t.Fatalf("sheet %s must hold only the header, got %d rows", sheet.Name, len(sheet.Rows))
		}
	}
	want := []string{"name", "code", "first_text", "price", "provider", "num_in_stock", "destination", "Материал"}
	if !reflect.DeepEqual(book[1].Rows[0], want) {
		t.Fatalf("header = %v, want %v", book[1].Rows[0], want)
	}
}
