package transfer

import (
	"context"

	"go-catalogue/internal/features/catalogue"
)

// NoNewProductsMessage is surfaced when a full-import workbook contains no
// codes the catalogue does not already know. Informational, not an error.
const NoNewProductsMessage = "Не обнаружено уникальных кодов. Все загружаемые товары уже есть на сайте"

// Reconciler partitions full-import rows into new and already-present
// product codes. Already-present rows are dropped silently so the same
// workbook can be re-imported without effect.
type Reconciler struct {
	Catalogue catalogue.Repository
}

// Partition returns, per sheet, the header plus only the data rows whose
// codes are absent from the catalogue. Sheets with no new data rows are
// omitted entirely.
func (r *Reconciler) Partition(ctx context.Context, book Workbook) (Workbook, error) {
	var out Workbook
	for _, sheet := range book {
		newRows := [][]string{sheet.Rows[0]}
		for _, row := range sheet.Rows[1:] {
			exists, err := r.Catalogue.ProductCodeExists(ctx, Cell(row, 1))
			if err != nil {
				return nil, err
			}
			if !exists {
				newRows = append(newRows, row)
			}
		}
		if len(newRows) > 1 {
			out = append(out, Sheet{Name: sheet.Name, Rows: newRows})
		}
	}
	return out, nil
}
