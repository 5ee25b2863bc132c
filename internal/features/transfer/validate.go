package transfer

import (
	"context"
	"errors"
	"strings"

	"go-catalogue/internal/features/catalogue"
)

var (
	priceHeader = []string{"name", "code", "price"}
	fullHeader  = []string{"name", "code", "first_text", "price", "provider", "num_in_stock", "destination"}
)

// Validator checks workbook sheets against the catalogue. It only reads;
// given the same workbook and catalogue state the outcome is always the
// same.
type Validator struct {
	Catalogue catalogue.Repository
}

// ValidatePriceBook enforces the price-only contract on every sheet: the
// exact [name, code, price] header, every code resolving to a product of
// the sheet's category, parseable prices, and no duplicated codes within a
// sheet. The first failure aborts the whole workbook.
func (v *Validator) ValidatePriceBook(ctx context.Context, book Workbook) error {
	for _, sheet := range book {
		if len(sheet.Rows) == 0 || !headerEquals(sheet.Rows[0], priceHeader) {
			return errInvalidPriceHeader()
		}

		for _, row := range sheet.Rows[1:] {
			code := Cell(row, 1)
			product, err := v.Catalogue.ProductByCode(ctx, code)
			if errors.Is(err, catalogue.ErrNotFound) {
				return errUnknownProductCode(code)
			}
			if err != nil {
				return err
			}
			if product.Category != sheet.Name {
				return errCategoryMismatch(sheet.Name, code)
			}
			if _, err := ParsePrice(Cell(row, 2)); err != nil {
				return errInvalidPriceFormat(code)
			}
		}

		if dups := duplicateCodes(sheet.Rows[1:]); len(dups) > 0 {
			return errDuplicateProductCode(dups)
		}
	}
	return nil
}

// ValidateFullBook enforces the full-product contract: the sheet name must
// be an existing category, the first seven header tokens are fixed, and
// every extra header token must be a parameter declared on that category.
// Duplicated codes within a sheet are rejected here as well. A failing
// sheet aborts the whole workbook before later sheets are looked at.
func (v *Validator) ValidateFullBook(ctx context.Context, book Workbook) error {
	for _, sheet := range book {
		exists, err := v.Catalogue.CategoryExists(ctx, sheet.Name)
		if err != nil {
			return err
		}
		if !exists {
			return errUnknownCategory(sheet.Name)
		}

		if len(sheet.Rows) == 0 || !headerStartsWith(sheet.Rows[0], fullHeader) {
			return errInvalidFullHeader()
		}
		for _, param := range sheet.Rows[0][len(fullHeader):] {
			ok, err := v.Catalogue.ParameterExists(ctx, sheet.Name, param)
			if err != nil {
				return err
			}
			if !ok {
				return errUnknownParameter(param, sheet.Name)
			}
		}

		if dups := duplicateCodes(sheet.Rows[1:]); len(dups) > 0 {
			return errDuplicateProductCode(dups)
		}
	}
	return nil
}

func headerEquals(row, want []string) bool {
	if len(row) != len(want) {
		return false
	}
	return headerStartsWith(row, want)
}

func headerStartsWith(row, want []string) bool {
	if len(row) < len(want) {
		return false
	}
	for i, token := range want {
		if strings.TrimSpace(row[i]) != token {
			return false
		}
	}
	return true
}

// duplicateCodes returns every code appearing more than once among the data
// rows, each named once, in order of first appearance.
func duplicateCodes(rows [][]string) []string {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[Cell(row, 1)]++
	}

	var dups []string
	seen := make(map[string]bool)
	for _, row := range rows {
		code := Cell(row, 1)
		if counts[code] > 1 && !seen[code] {
			seen[code] = true
			dups = append(dups, code)
		}
	}
	return dups
}
