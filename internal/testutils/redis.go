// Package testutils provides shared helpers for tests: an in-memory Redis and card fixtures
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-forge/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis and a client connected to it.
// Both are closed when the test finishes. The miniredis handle lets tests
// inspect keys and fast forward TTLs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
