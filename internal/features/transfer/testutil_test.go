package transfer

import (
	"context"
	"sort"
	"time"

	"go-catalogue/internal/features/catalogue"
)

// fakeCatalogue is an in-memory catalogue.Repository for pipeline tests.
type fakeCatalogue struct {
	categories      map[string]bool
	products        map[string]*catalogue.Product
	stock           map[string]*catalogue.StockRecord
	providers       map[string]bool
	destinations    map[string]bool
	parameters      map[string]map[string]bool            // category -> name
	parameterValues map[[3]string]bool                    // category, parameter, value
	productValues   []catalogue.ProductParameterValue
}

func newFakeCatalogue() *fakeCatalogue {
	return &fakeCatalogue{
		categories:      map[string]bool{},
		products:        map[string]*catalogue.Product{},
		stock:           map[string]*catalogue.StockRecord{},
		providers:       map[string]bool{},
		destinations:    map[string]bool{},
		parameters:      map[string]map[string]bool{},
		parameterValues: map[[3]string]bool{},
	}
}

func (f *fakeCatalogue) addCategory(name string) {
	f.categories[name] = true
}

func (f *fakeCatalogue) addProduct(code, category, name string) {
	f.products[code] = &catalogue.Product{Name: name, Code: code, Category: category}
}

func (f *fakeCatalogue) addStock(code, price, provider, num string) {
	f.stock[code] = &catalogue.StockRecord{ProductCode: code, Price: price, Provider: provider, NumInStock: num}
}

func (f *fakeCatalogue) addParameter(category, name string) {
	if f.parameters[category] == nil {
		f.parameters[category] = map[string]bool{}
	}
	f.parameters[category][name] = true
}

func (f *fakeCatalogue) CategoryExists(ctx context.Context, name string) (bool, error) {
	return f.categories[name], nil
}

func (f *fakeCatalogue) Categories(ctx context.Context) ([]catalogue.Category, error) {
	names := make([]string, 0, len(f.categories))
	for name := range f.categories {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]catalogue.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, catalogue.Category{Name: name})
	}
	return categories, nil
}

func (f *fakeCatalogue) CreateCategory(ctx context.Context, category *catalogue.Category) error {
	f.categories[category.Name] = true
	return nil
}

func (f *fakeCatalogue) ProductByCode(ctx context.Context, code string) (*catalogue.Product, error) {
	product, ok := f.products[code]
	if !ok {
		return nil, catalogue.ErrNotFound
	}
	return product, nil
}

func (f *fakeCatalogue) ProductCodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := f.products[code]
	return ok, nil
}

func (f *fakeCatalogue) ProductsByCategory(ctx context.Context, category string) ([]catalogue.Product, error) {
	var products []catalogue.Product
	for _, product := range f.products {
		if product.Category == category {
			products = append(products, *product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Code < products[j].Code })
	return products, nil
}

func (f *fakeCatalogue) CreateProduct(ctx context.Context, product *catalogue.Product) error {
	f.products[product.Code] = product
	return nil
}

func (f *fakeCatalogue) AttachDestination(ctx context.Context, code, destination string) error {
	f.products[code].Destinations = append(f.products[code].Destinations, destination)
	return nil
}

func (f *fakeCatalogue) StockByProductCode(ctx context.Context, code string) (*catalogue.StockRecord, error) {
	record, ok := f.stock[code]
	if !ok {
		return nil, catalogue.ErrNotFound
	}
	return record, nil
}

func (f *fakeCatalogue) CreateStockRecord(ctx context.Context, record *catalogue.StockRecord) error {
	f.stock[record.ProductCode] = record
	return nil
}

func (f *fakeCatalogue) UpdateStockPrice(ctx context.Context, code, price string) error {
	f.stock[code].Price = price
	return nil
}

func (f *fakeCatalogue) ProviderExists(ctx context.Context, name string) (bool, error) {
	return f.providers[name], nil
}

func (f *fakeCatalogue) CreateProvider(ctx context.Context, provider *catalogue.Provider) error {
	f.providers[provider.Name] = true
	return nil
}

func (f *fakeCatalogue) DestinationExists(ctx context.Context, value string) (bool, error) {
	return f.destinations[value], nil
}

func (f *fakeCatalogue) CreateDestination(ctx context.Context, destination *catalogue.Destination) error {
	f.destinations[destination.Value] = true
	return nil
}

func (f *fakeCatalogue) ParameterExists(ctx context.Context, category, name string) (bool, error) {
	return f.parameters[category][name], nil
}

func (f *fakeCatalogue) ParameterNames(ctx context.Context, category string) ([]string, error) {
	var names []string
	for name := range f.parameters[category] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeCatalogue) CreateParameter(ctx context.Context, parameter *catalogue.Parameter) error {
	f.addParameter(parameter.Category, parameter.Name)
	return nil
}

func (f *fakeCatalogue) ParameterValueExists(ctx context.Context, category, parameter, value string) (bool, error) {
	return f.parameterValues[[3]string{category, parameter, value}], nil
}

func (f *fakeCatalogue) CreateParameterValue(ctx context.Context, value *catalogue.ParameterValue) error {
	f.parameterValues[[3]string{value.Category, value.Parameter, value.Value}] = true
	return nil
}

func (f *fakeCatalogue) ProductParameterValue(ctx context.Context, code, parameter string) (string, error) {
	for _, pv := range f.productValues {
		if pv.ProductCode == code && pv.Parameter == parameter {
			return pv.Value, nil
		}
	}
	return "", nil
}

func (f *fakeCatalogue) CreateProductParameterValue(ctx context.Context, value *catalogue.ProductParameterValue) error {
	f.productValues = append(f.productValues, *value)
	return nil
}

func (f *fakeCatalogue) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeCatalogue) EnsureIndexes(ctx context.Context) error {
	return nil
}

// fakeStaged is an in-memory StagedPriceRepository.
type fakeStaged struct {
	prices []StagedPrice
}

func (f *fakeStaged) Clear(ctx context.Context) error {
	f.prices = nil
	return nil
}

func (f *fakeStaged) Insert(ctx context.Context, price *StagedPrice) error {
	if price.CreatedAt.IsZero() {
		price.CreatedAt = time.Now()
	}
	f.prices = append(f.prices, *price)
	return nil
}

func (f *fakeStaged) All(ctx context.Context) ([]StagedPrice, error) {
	return append([]StagedPrice(nil), f.prices...), nil
}

func (f *fakeStaged) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var kept []StagedPrice
	var deleted int64
	for _, price := range f.prices {
		if price.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, price)
	}
	f.prices = kept
	return deleted, nil
}
