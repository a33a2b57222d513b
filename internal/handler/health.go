package handler

import (
	"context"
	"net/http"
	"time"

	"cuadre/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response. Checks both databases, redis,
// and the POS circuit-breaker state; never exposes credentials or internals.
func Health(posDB, localDB *gorm.DB, rdb *redis.Client, posCB *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		ping := func(db *gorm.DB) string {
			sqlDB, err := db.DB()
			if err != nil || sqlDB.PingContext(ctx) != nil {
				return "error"
			}
			return "connected"
		}

		posStatus := ping(posDB)
		localStatus := ping(localDB)

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		// The POS link being down is degraded but not fatal: reports are
		// still served from cache. Only our own store or redis failing makes
		// the service unhealthy.
		if localStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"pos_db":   posStatus,
			"local_db": localStatus,
			"redis":    redisStatus,
			"pos_cb":   posCB.State().String(),
		})
	}
}
