package transfer

import (
	"context"
	"fmt"
	"strings"

	"go-catalogue/internal/features/catalogue"

	"github.com/shopspring/decimal"
)

// Applier commits validated new rows to the catalogue. Each row is one unit
// of work: product, stock record, destination tags and parameter values are
// created inside a single transaction, and a failing row does not roll back
// rows committed before it.
type Applier struct {
	Catalogue       catalogue.Repository
	DefaultProvider string
}

// Apply creates one product per data row of every sheet. Rows whose codes
// appeared in the catalogue since the check phase are skipped, keeping
// re-commits idempotent. Unknown destination tags and parameter values
// never fail a row; they are reported as warnings.
func (a *Applier) Apply(ctx context.Context, book Workbook) (*ApplyResult, error) {
	result := &ApplyResult{Warnings: []string{}}

	for _, sheet := range book {
		params := sheet.Rows[0][len(fullHeader):]
		for _, row := range sheet.Rows[1:] {
			code := Cell(row, 1)
			exists, err := a.Catalogue.ProductCodeExists(ctx, code)
			if err != nil {
				return result, err
			}
			if exists {
				continue
			}

			err = a.Catalogue.WithTransaction(ctx, func(txCtx context.Context) error {
				return a.applyRow(txCtx, sheet.Name, params, row, result)
			})
			if err != nil {
				return result, fmt.Errorf("import of product %s failed: %w", code, err)
			}
			result.Created++
		}
	}
	return result, nil
}

func (a *Applier) applyRow(ctx context.Context, category string, params []string, row []string, result *ApplyResult) error {
	code := Cell(row, 1)

	product := &catalogue.Product{
		Name:      Cell(row, 0),
		Code:      code,
		Category:  category,
		FirstText: Cell(row, 2),
	}
	if err := a.Catalogue.CreateProduct(ctx, product); err != nil {
		return err
	}

	price, provider, err := a.resolveStock(ctx, Cell(row, 3), Cell(row, 4), code, result)
	if err != nil {
		return err
	}

	num, err := ParsePrice(Cell(row, 5))
	if err != nil {
		num = decimal.NewFromInt(1)
	}

	record := &catalogue.StockRecord{
		ProductCode: code,
		Price:       price.String(),
		Provider:    provider,
		NumInStock:  num.String(),
	}
	if err := a.Catalogue.CreateStockRecord(ctx, record); err != nil {
		return err
	}

	if destination := Cell(row, 6); destination != "" {
		for _, tag := range strings.Split(destination, ", ") {
			known, err := a.Catalogue.DestinationExists(ctx, tag)
			if err != nil {
				return err
			}
			if !known {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Метка %s не найдена и пропущена (товар %s)", tag, code))
				continue
			}
			if err := a.Catalogue.AttachDestination(ctx, code, tag); err != nil {
				return err
			}
		}
	}

	for i, param := range params {
		value := Cell(row, len(fullHeader)+i)
		if value == "" {
			continue
		}
		known, err := a.Catalogue.ParameterValueExists(ctx, category, param, value)
		if err != nil {
			return err
		}
		if !known {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Значение %s параметра %s не найдено и пропущено (товар %s)", value, param, code))
			continue
		}
		if err := a.Catalogue.CreateProductParameterValue(ctx, &catalogue.ProductParameterValue{
			ProductCode: code,
			Parameter:   param,
			Value:       value,
		}); err != nil {
			return err
		}
	}

	return nil
}

// resolveStock applies the stock defaulting policy: a present parseable
// price is used as given and otherwise becomes 0; a known provider is used
// as given and otherwise falls back to the configured default.
func (a *Applier) resolveStock(ctx context.Context, priceCell, providerCell, code string, result *ApplyResult) (decimal.Decimal, string, error) {
	price := decimal.Zero
	if strings.TrimSpace(priceCell) != "" {
		parsed, err := ParsePrice(priceCell)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Цена %s товара %s не распознана, установлена цена 0", priceCell, code))
		} else {
			price = parsed
		}
	}

	provider := a.DefaultProvider
	if providerCell != "" {
		known, err := a.Catalogue.ProviderExists(ctx, providerCell)
		if err != nil {
			return decimal.Zero, "", err
		}
		if known {
			provider = providerCell
		}
	}

	return price, provider, nil
}
