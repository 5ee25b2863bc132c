package transfer

import (
	"context"
	"fmt"
	"os"

	"go-catalogue/internal/config"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RowTransformer runs an operator-provided tengo script over every data row
// of a full import before validation. The script sees the row as a map of
// header name to cell value named "row" and may rewrite any entry; supplier
// sheets often need this kind of normalisation before they match the
// catalogue contract. A missing script disables the hook.
type RowTransformer struct {
	source []byte
}

func NewRowTransformer(cfg *config.Config) (*RowTransformer, error) {
	if cfg.TransformScript == "" {
		return &RowTransformer{}, nil
	}
	source, err := os.ReadFile(cfg.TransformScript)
	if err != nil {
		return nil, fmt.Errorf("failed to read transform script: %w", err)
	}
	return &RowTransformer{source: source}, nil
}

// NewRowTransformerFromSource builds a transformer from inline script
// source.
func NewRowTransformerFromSource(source []byte) *RowTransformer {
	return &RowTransformer{source: source}
}

func (t *RowTransformer) Enabled() bool {
	return len(t.source) > 0
}

// TransformBook applies the script to every data row of every sheet,
// keeping header rows untouched. Script failures abort the import.
func (t *RowTransformer) TransformBook(ctx context.Context, book Workbook) (Workbook, error) {
	if !t.Enabled() {
		return book, nil
	}

	out := make(Workbook, 0, len(book))
	for _, sheet := range book {
		if len(sheet.Rows) == 0 {
			out = append(out, sheet)
			continue
		}
		header := sheet.Rows[0]
		rows := [][]string{header}
		for _, row := range sheet.Rows[1:] {
			transformed, err := t.transformRow(ctx, header, row)
			if err != nil {
				return nil, fmt.Errorf("transform script failed on sheet %s: %w", sheet.Name, err)
			}
			rows = append(rows, transformed)
		}
		out = append(out, Sheet{Name: sheet.Name, Rows: rows})
	}
	return out, nil
}

func (t *RowTransformer) transformRow(ctx context.Context, header, row []string) ([]string, error) {
	input := make(map[string]interface{}, len(header))
	for i, name := range header {
		input[name] = Cell(row, i)
	}

	script := tengo.NewScript(t.source)
	script.SetImports(stdlib.GetModuleMap("text", "math", "fmt"))
	if err := script.Add("row", input); err != nil {
		return nil, err
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, err
	}

	output := compiled.Get("row").Map()
	result := make([]string, len(header))
	for i, name := range header {
		if value, ok := output[name]; ok && value != nil {
			result[i] = fmt.Sprint(value)
		} else {
			result[i] = Cell(row, i)
		}
	}
	return result, nil
}
