package transfer

import (
	"context"
	"errors"
	"strings"

	"go-catalogue/internal/features/catalogue"
)

// Exporter walks the catalogue and builds per-category workbook sheets.
// Categories with "/" in their name are excluded everywhere: the character
// is reserved in sheet names.
type Exporter struct {
	Catalogue catalogue.Repository
}

// Prices builds the price-only export: [name, code, price] per category
// that currently has products. Missing stock renders price "0".
func (e *Exporter) Prices(ctx context.Context) (Workbook, error) {
	categories, err := e.exportableCategories(ctx)
	if err != nil {
		return nil, err
	}

	var book Workbook
	for _, category := range categories {
		products, err := e.Catalogue.ProductsByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			continue
		}

		rows := [][]string{{"name", "code", "price"}}
		for _, product := range products {
			price := "0"
			stock, err := e.Catalogue.StockByProductCode(ctx, product.Code)
			if err == nil {
				price = stock.Price
			} else if !errors.Is(err, catalogue.ErrNotFound) {
				return nil, err
			}
			rows = append(rows, []string{product.Name, product.Code, price})
		}
		book = append(book, Sheet{Name: category, Rows: rows})
	}
	return book, nil
}

// Products builds the full export: the seven fixed columns plus the
// category's declared parameter names, for every category with products.
func (e *Exporter) Products(ctx context.Context) (Workbook, error) {
	categories, err := e.exportableCategories(ctx)
	if err != nil {
		return nil, err
	}

	var book Workbook
	for _, category := range categories {
		products, err := e.Catalogue.ProductsByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			continue
		}

		params, err := e.Catalogue.ParameterNames(ctx, category)
		if err != nil {
			return nil, err
		}

		rows := [][]string{fullExportHeader(params)}
		for _, product := range products {
			row := []string{product.Name, product.Code, product.FirstText}

			stock, err := e.Catalogue.StockByProductCode(ctx, product.Code)
			if err == nil {
				row = append(row, stock.Price, stock.Provider, stock.NumInStock)
			} else if errors.Is(err, catalogue.ErrNotFound) {
				row = append(row, "0", "", "")
			} else {
				return nil, err
			}

			row = append(row, strings.Join(product.Destinations, ", "))

			for _, param := range params {
				value, err := e.Catalogue.ProductParameterValue(ctx, product.Code, param)
				if err != nil {
					return nil, err
				}
				row = append(row, value)
			}
			rows = append(rows, row)
		}
		book = append(book, Sheet{Name: category, Rows: rows})
	}
	return book, nil
}

// Blank builds an import template: the full-export header for every
// category, data rows left empty, products or not.
func (e *Exporter) Blank(ctx context.Context) (Workbook, error) {
	categories, err := e.exportableCategories(ctx)
	if err != nil {
		return nil, err
	}

	var book Workbook
	for _, category := range categories {
		params, err := e.Catalogue.ParameterNames(ctx, category)
		if err != nil {
			return nil, err
		}
		book = append(book, Sheet{
			Name: category,
			Rows: [][]string{fullExportHeader(params)},
		})
	}
	return book, nil
}

func (e *Exporter) exportableCategories(ctx context.Context) ([]string, error) {
	categories, err := e.Catalogue.Categories(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		if strings.Contains(category.Name, "/") {
			continue
		}
		names = append(names, category.Name)
	}
	return names, nil
}

func fullExportHeader(params []string) []string {
	header := make([]string, 0, len(fullHeader)+len(params))
	header = append(header, fullHeader...)
	header = append(header, params...)
	return header
}
