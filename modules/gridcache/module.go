package gridcache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-monolith/mono"
	"github.com/redis/go-redis/v9"
)

// Module provides the week-grid cache as a mono module. The cache is
// best-effort infrastructure: when Redis is unreachable at startup the
// module degrades to a no-cache mode and the schedule module computes
// every grid on demand.
type Module struct {
	cache     *Cache
	redisAddr string
	prefix    string
	ttl       time.Duration
	available bool
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new grid cache module configured from the
// environment.
func NewModule() *Module {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	ttl := 5 * time.Minute
	if v := os.Getenv("GRID_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		}
	}

	return &Module{
		redisAddr: redisAddr,
		prefix:    "grid:",
		ttl:       ttl,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "gridcache"
}

// Cache returns the cache instance, or nil when Redis is unavailable.
func (m *Module) Cache() *Cache {
	if !m.available {
		return nil
	}
	return m.cache
}

// Health performs a health check on the cache module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if !m.available {
		return mono.HealthStatus{
			Healthy: true,
			Message: "degraded: running without cache",
			Details: map[string]any{"redis_addr": m.redisAddr},
		}
	}
	if err := m.cache.Ping(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("redis ping failed: %v", err),
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"redis_addr": m.redisAddr,
			"ttl":        m.ttl.String(),
		},
	}
}

// Start connects to Redis. A connection failure is logged, not fatal.
func (m *Module) Start(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{Addr: m.redisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[gridcache] Warning: Redis unavailable at %s, grids will be recomputed per query: %v", m.redisAddr, err)
		_ = client.Close()
		m.available = false
		return nil
	}

	m.cache = New(client, m.prefix, m.ttl)
	m.available = true
	log.Printf("[gridcache] Connected to Redis at %s (ttl %s)", m.redisAddr, m.ttl)
	return nil
}

// Stop closes the Redis connection.
func (m *Module) Stop(_ context.Context) error {
	if m.cache != nil {
		if err := m.cache.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	log.Println("[gridcache] Module stopped")
	return nil
}
