package database

import (
	"context"
	"fmt"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// InProcessRedis bundles an embedded redis server with a client connected to
// it. The server lives entirely in process memory and vanishes with the
// process, while still giving the cache layer a real redis surface to talk
// to.
type InProcessRedis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

// NewInProcessRedis starts an embedded redis server and verifies the client
// can reach it.
func NewInProcessRedis() (*InProcessRedis, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("start embedded redis: %w", err)
	}

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		server.Close()
		return nil, fmt.Errorf("ping embedded redis: %w", err)
	}

	return &InProcessRedis{Client: client, server: server}, nil
}

// Close shuts down the client and the embedded server.
func (r *InProcessRedis) Close() error {
	err := r.Client.Close()
	r.server.Close()
	return err
}
