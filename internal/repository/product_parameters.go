// Package repository provides data access for product calculator parameters.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/decorline/quantity-service/internal/domain/model"
)

// ProductParametersConfig is a versioned calculator-parameter document for
// one catalog product. Updates deactivate the previous version rather than
// overwriting it, so bad catalog edits can be traced.
type ProductParametersConfig struct {
	ID         primitive.ObjectID         `bson:"_id,omitempty" json:"id"`
	SKU        string                     `bson:"sku" json:"sku"`
	Parameters model.CalculatorParameters `bson:"parameters" json:"parameters"`
	Active     bool                       `bson:"active" json:"active"`
	Version    int                        `bson:"version" json:"version"`
	CreatedAt  time.Time                  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time                  `bson:"updated_at" json:"updated_at"`
	UpdatedBy  string                     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// ProductParametersRepository provides methods for product parameter operations.
type ProductParametersRepository struct {
	collection *mongo.Collection
}

// NewProductParametersRepository creates a new product parameters repository.
func NewProductParametersRepository(db *MongoDB) *ProductParametersRepository {
	return &ProductParametersRepository{
		collection: db.ProductParameters,
	}
}

// GetBySKU returns the active parameter configuration for a product, or nil
// when the product has none.
func (r *ProductParametersRepository) GetBySKU(ctx context.Context, sku string) (*ProductParametersConfig, error) {
	var config ProductParametersConfig
	err := r.collection.FindOne(ctx, bson.M{"sku": sku, "active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Upsert stores a new active parameter configuration for a product,
// deactivating any previous version.
func (r *ProductParametersRepository) Upsert(ctx context.Context, sku string, params model.CalculatorParameters, updatedBy string) (*ProductParametersConfig, error) {
	previous, err := r.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"sku": sku, "active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	version := 1
	if previous != nil {
		version = previous.Version + 1
	}

	config := ProductParametersConfig{
		ID:         primitive.NewObjectID(),
		SKU:        sku,
		Parameters: params,
		Active:     true,
		Version:    version,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		UpdatedBy:  updatedBy,
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}

	return &config, nil
}

// History returns past parameter configurations for a product, newest first.
func (r *ProductParametersRepository) History(ctx context.Context, sku string, limit int) ([]ProductParametersConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"sku": sku}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []ProductParametersConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
