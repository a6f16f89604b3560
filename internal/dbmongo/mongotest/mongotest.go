//go:build integration

// Package mongotest starts a disposable MongoDB for integration tests.
package mongotest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/dbmongo"
)

// Image must be 5.0+ for $lookup with both localField and pipeline.
const Image = "mongo:7"

// Start runs a MongoDB container, connects to a fresh database with all
// indexes created, and registers cleanup on t.
func Start(t *testing.T) (*dbmongo.MongoClient, *config.Config) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	var container *mongodb.MongoDBContainer
	var err error
	func() {
		// testcontainers panics when no Docker daemon is reachable
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping integration test, docker unavailable: %v", r)
			}
		}()
		container, err = mongodb.Run(ctx, Image,
			testcontainers.WithWaitStrategy(
				wait.ForLog("Waiting for connections").WithStartupTimeout(time.Minute)),
		)
	}()
	require.NoError(t, err, "failed to start mongodb container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{MediaBaseURL: "http://localhost:8000/media"},
		MongoDB: config.MongoDBConfig{
			URI:      uri,
			Database: "utube_test_" + primitive.NewObjectID().Hex(),
			Timeout:  10 * time.Second,
		},
	}

	client, err := dbmongo.NewMongoConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Database.Drop(context.Background())
		_ = client.Close(context.Background())
	})

	require.NoError(t, dbmongo.EnsureIndexes(ctx, client.Database))
	return client, cfg
}
