//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := openLookupsDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, LookupsCollection, db.Lookups.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("query indexes created", func(t *testing.T) {
		names := indexNames(t, ctx, db)
		assert.Contains(t, names, "key_1")
		assert.Contains(t, names, "status_1_timestamp_-1")
		assert.Contains(t, names, "request_id_1")
	})

	t.Run("set lookups TTL twice", func(t *testing.T) {
		require.NoError(t, db.SetLookupsTTL(ctx, 30*24*time.Hour))
		require.NoError(t, db.SetLookupsTTL(ctx, 7*24*time.Hour))
		assert.Contains(t, indexNames(t, ctx, db), ttlIndexName)
	})

	t.Run("reject non-positive TTL", func(t *testing.T) {
		assert.Error(t, db.SetLookupsTTL(ctx, 0))
	})
}

func TestNewMongoDB_InvalidURI(t *testing.T) {
	t.Parallel()
	_, err := NewMongoDB("not-a-uri", "test")
	assert.Error(t, err)
}

func indexNames(t *testing.T, ctx context.Context, db *MongoDB) []string {
	t.Helper()
	cursor, err := db.Lookups.Indexes().List(ctx)
	require.NoError(t, err)

	var specs []bson.M
	require.NoError(t, cursor.All(ctx, &specs))

	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		if name, ok := spec["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}
