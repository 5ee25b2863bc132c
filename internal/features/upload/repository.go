package upload

import (
	"context"
	"errors"
	"time"

	"go-catalogue/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("upload: not found")

type Repository interface {
	Save(ctx context.Context, imp *DataImport) error
	Get(ctx context.Context, id string) (*DataImport, error)
	Latest(ctx context.Context) (*DataImport, error)
	List(ctx context.Context, limit int64) ([]DataImport, error)
	FindOlderThan(ctx context.Context, cutoff time.Time) ([]DataImport, error)
	Delete(ctx context.Context, id string) error
}

type RepositoryImpl struct {
	Collection *mongo.Collection
}

func NewRepository(mongodb *database.MongodbDB) Repository {
	return &RepositoryImpl{
		Collection: mongodb.DB.Collection("data_imports"),
	}
}

func (r *RepositoryImpl) Save(ctx context.Context, imp *DataImport) error {
	if imp.ID.IsZero() {
		imp.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if imp.CreatedAt.IsZero() {
		imp.CreatedAt = now
	}
	imp.UpdatedAt = now
	_, err := r.Collection.InsertOne(ctx, imp)
	return err
}

func (r *RepositoryImpl) Get(ctx context.Context, id string) (*DataImport, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var imp DataImport
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&imp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &imp, nil
}

func (r *RepositoryImpl) Latest(ctx context.Context) (*DataImport, error) {
	var imp DataImport
	err := r.Collection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})).Decode(&imp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &imp, nil
}

func (r *RepositoryImpl) List(ctx context.Context, limit int64) ([]DataImport, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var imports []DataImport
	if err := cursor.All(ctx, &imports); err != nil {
		return nil, err
	}
	return imports, nil
}

func (r *RepositoryImpl) FindOlderThan(ctx context.Context, cutoff time.Time) ([]DataImport, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var imports []DataImport
	if err := cursor.All(ctx, &imports); err != nil {
		return nil, err
	}
	return imports, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
