// Package testutil provides helpers shared by integration tests.
package testutil

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// candidateRedisAddrs are probed in order when REDIS_ADDR is unset.
var candidateRedisAddrs = []string{"redis:6379", "localhost:6379", "localhost:56379"}

// SetupTestRedis returns a client on a flushed test DB. The test is skipped
// when Redis is unreachable unless TEST_REQUIRE_REDIS is set.
func SetupTestRedis(t testing.TB) *redis.Client {
	t.Helper()

	addr, ok := testRedisAddr()
	if !ok {
		if envBool("TEST_REQUIRE_REDIS") {
			t.Fatal("Redis not available for testing")
		}
		t.Skip("Redis not available for testing")
	}

	db := 1
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			db = i
		}
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush test redis db %d: %v", db, err)
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	})
	return client
}

func testRedisAddr() (string, bool) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr, ping(addr)
	}
	for _, addr := range candidateRedisAddrs {
		if ping(addr) {
			return addr, true
		}
	}
	return "", false
}

func ping(addr string) bool {
	client := redis.NewClient(&redis.Options{Addr: addr, DialTimeout: time.Second})
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
