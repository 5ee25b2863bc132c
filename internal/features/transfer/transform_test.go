package transfer

import (
	"context"
	"reflect"
	"testing"
)

func TestTransformBookDisabledIsPassthrough(t *testing.T) {
	book := Workbook{{Name: "Автоковрики", Rows: [][]string{
		{"name", "code", "price"},
		{"Коврик EVA", "100", "1500"},
	}}}

	tr := NewRowTransformerFromSource(nil)
	out, err := tr.TransformBook(context.Background(), book)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, book) {
		t.Fatal("disabled transformer must pass the workbook through unchanged")
	}
}

func TestTransformBookRewritesRows(t *testing.T) {
	script := []byte(`
text := import("text")
row.name = text.to_upper(row.name)
row.code = "SKU-" + row.code
`)

	book := Workbook{{Name: "Автоковрики", Rows: [][]string{
		{"name", "code", "price"},
		{"eva", "100", "1500"},
		{"textile", "101", "990"},
	}}}

	tr := NewRowTransformerFromSource(script)
	out, err := tr.TransformBook(context.Background(), book)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"name", "code", "price"},
		{"EVA", "SKU-100", "1500"},
		{"TEXTILE", "SKU-101", "990"},
	}
	if !reflect.DeepEqual(out[0].Rows, want) {
		t.Fatalf("rows mismatch:\nwant %v\ngot  %v", want, out[0].Rows)
	}
}

func TestTransformBookScriptErrorAborts(t *testing.T) {
	tr := NewRowTransformerFromSource([]byte(`this is not tengo (`))

	book := Workbook{{Name: "Автоковрики", Rows: [][]string{
		{"name", "code", "price"},
		{"eva", "100", "1500"},
	}}}

	if _, err := tr.TransformBook(context.Background(), book); err == nil {
		t.Fatal("expected script failure to abort the transform")
	}
}
