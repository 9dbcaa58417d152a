package pg

import (
	"context"
	"log/slog"
	"time"
)

const healthPingTimeout = 2 * time.Second

// HealthChecker reports database liveness for the /health endpoint.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("Database health check failed", "error", err)
		return false
	}
	return true
}
