package catalogue

import (
	"context"
	"errors"
	"time"

	"go-catalogue/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by lookups when no document matches.
var ErrNotFound = errors.New("catalogue: not found")

// Repository is the catalogue store the transfer pipeline validates against
// and writes into.
type Repository interface {
	CategoryExists(ctx context.Context, name string) (bool, error)
	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, category *Category) error

	ProductByCode(ctx context.Context, code string) (*Product, error)
	ProductCodeExists(ctx context.Context, code string) (bool, error)
	ProductsByCategory(ctx context.Context, category string) ([]Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	AttachDestination(ctx context.Context, code, destination string) error

	StockByProductCode(ctx context.Context, code string) (*StockRecord, error)
	CreateStockRecord(ctx context.Context, record *StockRecord) error
	UpdateStockPrice(ctx context.Context, code, price string) error

	ProviderExists(ctx context.Context, name string) (bool, error)
	CreateProvider(ctx context.Context, provider *Provider) error

	DestinationExists(ctx context.Context, value string) (bool, error)
	CreateDestination(ctx context.Context, destination *Destination) error

	ParameterExists(ctx context.Context, category, name string) (bool, error)
	ParameterNames(ctx context.Context, category string) ([]string, error)
	CreateParameter(ctx context.Context, parameter *Parameter) error

	ParameterValueExists(ctx context.Context, category, parameter, value string) (bool, error)
	CreateParameterValue(ctx context.Context, value *ParameterValue) error

	ProductParameterValue(ctx context.Context, code, parameter string) (string, error)
	CreateProductParameterValue(ctx context.Context, value *ProductParameterValue) error

	// WithTransaction runs fn inside one Mongo transaction. Requires the
	// server to run as a replica set.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	EnsureIndexes(ctx context.Context) error
}

type RepositoryImpl struct {
	Client          *mongo.Client
	Categories_     *mongo.Collection
	Products        *mongo.Collection
	Stock           *mongo.Collection
	Providers       *mongo.Collection
	Destinations    *mongo.Collection
	Parameters      *mongo.Collection
	ParameterValues *mongo.Collection
	ProductValues   *mongo.Collection
}

func NewRepository(mongodb *database.MongodbDB) Repository {
	return &RepositoryImpl{
		Client:          mongodb.Client,
		Categories_:     mongodb.DB.Collection("categories"),
		Products:        mongodb.DB.Collection("products"),
		Stock:           mongodb.DB.Collection("stock_records"),
		Providers:       mongodb.DB.Collection("providers"),
		Destinations:    mongodb.DB.Collection("destinations"),
		Parameters:      mongodb.DB.Collection("parameters"),
		ParameterValues: mongodb.DB.Collection("parameter_values"),
		ProductValues:   mongodb.DB.Collection("product_parameter_values"),
	}
}

func (r *RepositoryImpl) CategoryExists(ctx context.Context, name string) (bool, error) {
	count, err := r.Categories_.CountDocuments(ctx, bson.M{"name": name})
	return count > 0, err
}

func (r *RepositoryImpl) Categories(ctx context.Context) ([]Category, error) {
	cursor, err := r.Categories_.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *RepositoryImpl) CreateCategory(ctx context.Context, category *Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	_, err := r.Categories_.InsertOne(ctx, category)
	return err
}

func (r *RepositoryImpl) ProductByCode(ctx context.Context, code string) (*Product, error) {
	var product Product
	err := r.Products.FindOne(ctx, bson.M{"code": code}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *RepositoryImpl) ProductCodeExists(ctx context.Context, code string) (bool, error) {
	count, err := r.Products.CountDocuments(ctx, bson.M{"code": code})
	return count > 0, err
}

func (r *RepositoryImpl) ProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	cursor, err := r.Products.Find(ctx, bson.M{"category": category},
		options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RepositoryImpl) CreateProduct(ctx context.Context, product *Product) error {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if product.Destinations == nil {
		product.Destinations = []string{}
	}
	_, err := r.Products.InsertOne(ctx, product)
	return err
}

func (r *RepositoryImpl) AttachDestination(ctx context.Context, code, destination string) error {
	_, err := r.Products.UpdateOne(ctx, bson.M{"code": code},
		bson.M{"$addToSet": bson.M{"destinations": destination}})
	return err
}

func (r *RepositoryImpl) StockByProductCode(ctx context.Context, code string) (*StockRecord, error) {
	var record StockRecord
	err := r.Stock.FindOne(ctx, bson.M{"product_code": code}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RepositoryImpl) CreateStockRecord(ctx context.Context, record *StockRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := r.Stock.InsertOne(ctx, record)
	return err
}

func (r *RepositoryImpl) UpdateStockPrice(ctx context.Context, code, price string) error {
	_, err := r.Stock.UpdateOne(ctx, bson.M{"product_code": code},
		bson.M{"$set": bson.M{"price": price}})
	return err
}

func (r *RepositoryImpl) ProviderExists(ctx context.Context, name string) (bool, error) {
	count, err := r.Providers.CountDocuments(ctx, bson.M{"name": name})
	return count > 0, err
}

func (r *RepositoryImpl) CreateProvider(ctx context.Context, provider *Provider) error {
	_, err := r.Providers.InsertOne(ctx, provider)
	return err
}

func (r *RepositoryImpl) DestinationExists(ctx context.Context, value string) (bool, error) {
	count, err := r.Destinations.CountDocuments(ctx, bson.M{"value": value})
	return count > 0, err
}

func (r *RepositoryImpl) CreateDestination(ctx context.Context, destination *Destination) error {
	_, err := r.Destinations.InsertOne(ctx, destination)
	return err
}

func (r *RepositoryImpl) ParameterExists(ctx context.Context, category, name string) (bool, error) {
	count, err := r.Parameters.CountDocuments(ctx, bson.M{"category": category, "name": name})
	return count > 0, err
}

func (r *RepositoryImpl) ParameterNames(ctx context.Context, category string) ([]string, error) {
	cursor, err := r.Parameters.Find(ctx, bson.M{"category": category},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var parameters []Parameter
	if err := cursor.All(ctx, &parameters); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(parameters))
	for _, p := range parameters {
		names = append(names, p.Name)
	}
	return names, nil
}

func (r *RepositoryImpl) CreateParameter(ctx context.Context, parameter *Parameter) error {
	_, err := r.Parameters.InsertOne(ctx, parameter)
	return err
}

func (r *RepositoryImpl) ParameterValueExists(ctx context.Context, category, parameter, value string) (bool, error) {
	count, err := r.ParameterValues.CountDocuments(ctx,
		bson.M{"category": category, "parameter": parameter, "value": value})
	return count > 0, err
}

func (r *RepositoryImpl) CreateParameterValue(ctx context.Context, value *ParameterValue) error {
	_, err := r.ParameterValues.InsertOne(ctx, value)
	return err
}

func (r *RepositoryImpl) ProductParameterValue(ctx context.Context, code, parameter string) (string, error) {
	var value ProductParameterValue
	err := r.ProductValues.FindOne(ctx, bson.M{"product_code": code, "parameter": parameter}).Decode(&value)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value.Value, nil
}

func (r *RepositoryImpl) CreateProductParameterValue(ctx context.Context, value *ProductParameterValue) error {
	_, err := r.ProductValues.InsertOne(ctx, value)
	return err
}

func (r *RepositoryImpl) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}

func (r *RepositoryImpl) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	if _, err := r.Products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}
	if _, err := r.Categories_.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}
	if _, err := r.Stock.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "product_code", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := r.Parameters.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}},
	})
	return err
}
