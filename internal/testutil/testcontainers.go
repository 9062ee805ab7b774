//go:build integration

// Package testutil starts the MongoDB testcontainer used by integration tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the image backing the lookup audit store in tests.
const MongoImage = "mongo:7.0"

// MongoDBContainer wraps a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a MongoDB container and returns its connection URI.
// Prefer GetSharedMongoDB from TestMain when a package has many tests.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}
