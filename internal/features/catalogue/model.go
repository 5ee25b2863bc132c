package catalogue

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a catalogue category. Sheet names of imported workbooks map
// onto category names one-to-one.
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Provider is a stock provider, keyed by name.
type Provider struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// Destination is a brand/model tag attachable to products, keyed by value.
type Destination struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Value string             `json:"value" bson:"value"`
}

// Product is a catalogue product, keyed by its unique code.
type Product struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Code         string             `json:"code" bson:"code"`
	Category     string             `json:"category" bson:"category"`
	FirstText    string             `json:"first_text" bson:"first_text"`
	Destinations []string           `json:"destinations" bson:"destinations"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// StockRecord holds price and availability for one product. Price and
// quantity are stored as decimal strings; PriceDecimal gives the parsed
// value.
type StockRecord struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductCode string             `json:"product_code" bson:"product_code"`
	Price       string             `json:"price" bson:"price"`
	Provider    string             `json:"provider" bson:"provider"`
	NumInStock  string             `json:"num_in_stock" bson:"num_in_stock"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

func (s *StockRecord) PriceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(s.Price)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Parameter declares a parameter name allowed on products of one category.
type Parameter struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Category string             `json:"category" bson:"category"`
}

// ParameterValue is one entry of a parameter's value vocabulary.
type ParameterValue struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Category  string             `json:"category" bson:"category"`
	Parameter string             `json:"parameter" bson:"parameter"`
	Value     string             `json:"value" bson:"value"`
}

// ProductParameterValue associates a product with one value of a declared
// parameter. At most one value per product and parameter.
type ProductParameterValue struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductCode string             `json:"product_code" bson:"product_code"`
	Parameter   string             `json:"parameter" bson:"parameter"`
	Value       string             `json:"value" bson:"value"`
}
