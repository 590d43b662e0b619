package connection

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			log.Println("✅ Connected to Redis")
			return rdb, nil
		}

		log.Printf("⚠️ Redis retry %d/%d failed", i, maxRetries)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis")
}

// ProbeGatewayWithRetry checks that the remote leave API answers HTTP at all.
// Any status code counts as reachable; only transport failures are retried.
func ProbeGatewayWithRetry(baseURL string, maxRetries int) error {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		resp, err := client.Get(baseURL)
		if err == nil {
			resp.Body.Close()
			log.Println("✅ Leave API gateway reachable")
			return nil
		}

		lastErr = err
		log.Printf("⚠️ Gateway probe failed (%d/%d): %v", i, maxRetries, err)
		time.Sleep(5 * time.Second)
	}

	return fmt.Errorf("gateway unreachable after %d retries: %w", maxRetries, lastErr)
}
