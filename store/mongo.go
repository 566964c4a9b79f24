package store

import (
	"context"
	"fmt"

	"github.com/bashafinder/backend/models"
	"github.com/bashafinder/backend/search"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource fetches property rows from the properties collection and
// maps them to the client shape.
type MongoSource struct {
	coll  *mongo.Collection
	limit int64
}

func NewMongoSource(coll *mongo.Collection, limit int64) *MongoSource {
	if limit <= 0 {
		limit = 200
	}
	return &MongoSource{coll: coll, limit: limit}
}

func (m *MongoSource) FetchProperties(ctx context.Context, f search.Filters) ([]models.Property, error) {
	cursor, err := m.coll.Find(ctx, search.MongoQuery(f), options.Find().SetLimit(m.limit))
	if err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.PropertyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}

	props := make([]models.Property, 0, len(records))
	for _, rec := range records {
		props = append(props, rec.ToProperty())
	}
	return props, nil
}
