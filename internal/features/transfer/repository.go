package transfer

import (
	"context"
	"time"

	"go-catalogue/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StagedPriceRepository holds prices parsed from a price-only import until
// they are committed against live stock records.
type StagedPriceRepository interface {
	Clear(ctx context.Context) error
	Insert(ctx context.Context, price *StagedPrice) error
	All(ctx context.Context) ([]StagedPrice, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type StagedPriceRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewStagedPriceRepository(mongodb *database.MongodbDB) StagedPriceRepository {
	return &StagedPriceRepositoryImpl{
		Collection: mongodb.DB.Collection("staged_prices"),
	}
}

func (r *StagedPriceRepositoryImpl) Clear(ctx context.Context) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{})
	return err
}

func (r *StagedPriceRepositoryImpl) Insert(ctx context.Context, price *StagedPrice) error {
	if price.ID.IsZero() {
		price.ID = primitive.NewObjectID()
	}
	if price.CreatedAt.IsZero() {
		price.CreatedAt = time.Now()
	}
	_, err := r.Collection.InsertOne(ctx, price)
	return err
}

func (r *StagedPriceRepositoryImpl) All(ctx context.Context) ([]StagedPrice, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prices []StagedPrice
	if err := cursor.All(ctx, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *StagedPriceRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
