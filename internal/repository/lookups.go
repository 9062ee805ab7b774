package repository

import (
	"context"
	"time"

	"github.com/guttosm/xslt-messages/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LookupsRepository stores and queries lookup events.
type LookupsRepository struct {
	collection *mongo.Collection
}

// NewLookupsRepository creates a new lookups repository.
func NewLookupsRepository(db *MongoDB) *LookupsRepository {
	return &LookupsRepository{
		collection: db.Lookups,
	}
}

func prepareEvent(event *model.LookupEvent) {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
}

// Create inserts a single lookup event.
func (r *LookupsRepository) Create(ctx context.Context, event *model.LookupEvent) error {
	prepareEvent(event)
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// CreateMany inserts lookup events in bulk.
func (r *LookupsRepository) CreateMany(ctx context.Context, events []*model.LookupEvent) error {
	if len(events) == 0 {
		return nil
	}

	docs := make([]interface{}, len(events))
	for i, event := range events {
		prepareEvent(event)
		docs[i] = event
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func lookupFilter(opts model.LookupQueryOptions) bson.M {
	filter := bson.M{}
	if opts.Key != "" {
		filter["key"] = opts.Key
	}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.Locale != "" {
		filter["locale"] = opts.Locale
	}
	if opts.Since != nil {
		filter["timestamp"] = bson.M{"$gte": *opts.Since}
	}
	return filter
}

// Query returns matching events, newest first.
func (r *LookupsRepository) Query(ctx context.Context, opts model.LookupQueryOptions) ([]*model.LookupEvent, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, lookupFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	events := make([]*model.LookupEvent, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Count returns the number of events matching the filter. Limit and Skip are ignored.
func (r *LookupsRepository) Count(ctx context.Context, opts model.LookupQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, lookupFilter(opts))
}

// TopKeys groups matching events by key, most frequent first.
func (r *LookupsRepository) TopKeys(ctx context.Context, opts model.LookupQueryOptions) ([]model.KeyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: lookupFilter(opts)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$key"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "last", Value: bson.D{{Key: "$max", Value: "$timestamp"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	if opts.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(opts.Limit)}})
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	counts := make([]model.KeyCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
