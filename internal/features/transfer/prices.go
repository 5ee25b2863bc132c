package transfer

import (
	"context"
	"errors"

	"go-catalogue/internal/features/catalogue"
)

// PriceReconciler drives the two-step price-only update: stage parsed
// prices from a validated workbook, then commit a confirmed selection
// against live stock records.
type PriceReconciler struct {
	Catalogue catalogue.Repository
	Staged    StagedPriceRepository
}

// Stage replaces the staged price set with one record per data row of the
// already-validated workbook. Returns the number of staged prices.
func (p *PriceReconciler) Stage(ctx context.Context, book Workbook) (int, error) {
	if err := p.Staged.Clear(ctx); err != nil {
		return 0, err
	}

	staged := 0
	for _, sheet := range book {
		for _, row := range sheet.Rows[1:] {
			code := Cell(row, 1)
			price, err := ParsePrice(Cell(row, 2))
			if err != nil {
				return staged, errStagedPriceData(code)
			}
			if err := p.Staged.Insert(ctx, &StagedPrice{
				Code:  code,
				Name:  Cell(row, 0),
				Price: price.String(),
			}); err != nil {
				return staged, err
			}
			staged++
		}
	}
	return staged, nil
}

// Changes lists every product whose staged price differs from its live
// stock price. Staged codes without a product or stock record are skipped.
func (p *PriceReconciler) Changes(ctx context.Context) ([]PriceChange, error) {
	staged, err := p.Staged.All(ctx)
	if err != nil {
		return nil, err
	}

	changes := []PriceChange{}
	for _, sp := range staged {
		product, err := p.Catalogue.ProductByCode(ctx, sp.Code)
		if errors.Is(err, catalogue.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		stock, err := p.Catalogue.StockByProductCode(ctx, sp.Code)
		if errors.Is(err, catalogue.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !stock.PriceDecimal().Equal(sp.PriceDecimal()) {
			changes = append(changes, PriceChange{
				Name:     product.Name,
				Code:     sp.Code,
				OldPrice: stock.Price,
				NewPrice: sp.Price,
			})
		}
	}
	return changes, nil
}

// Commit writes the staged price of every selected code onto its stock
// record. Codes that are not staged or have no stock record are skipped.
func (p *PriceReconciler) Commit(ctx context.Context, codes []string) (int, error) {
	if len(codes) == 0 {
		return 0, errNoSubmittedData()
	}

	staged, err := p.Staged.All(ctx)
	if err != nil {
		return 0, err
	}
	byCode := make(map[string]StagedPrice, len(staged))
	for _, sp := range staged {
		byCode[sp.Code] = sp
	}

	updated := 0
	for _, code := range codes {
		sp, ok := byCode[code]
		if !ok {
			continue
		}
		if _, err := p.Catalogue.StockByProductCode(ctx, code); errors.Is(err, catalogue.ErrNotFound) {
			continue
		} else if err != nil {
			return updated, err
		}
		if err := p.Catalogue.UpdateStockPrice(ctx, code, sp.Price); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
