package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"deutschprofi_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client

	memMu      sync.Mutex
	memWindows = map[string]*memWindow{}
)

type memWindow struct {
	count   int
	resetAt time.Time
}

// InitRedisRateLimiter подключает redis для счётчиков лимитера.
// Без redis лимитер работает на in-memory окнах - достаточно для
// одного процесса, которым этот сервис и является
func InitRedisRateLimiter(redisURL string) {
	if redisURL == "" {
		logger.Warn("rate limiter: redis не настроен, используются in-memory окна")
		return
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Error("rate limiter: некорректный REDIS_URL, откат на in-memory", "error", err)
		return
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("rate limiter: redis недоступен, откат на in-memory", "error", err)
		return
	}

	rdb = client
	logger.Info("rate limiter: redis подключен")
}

// RateLimit ограничивает число запросов с одного IP в минутном окне
func RateLimit(perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rl:%s:%s", c.FullPath(), c.ClientIP())

		allowed := true
		if rdb != nil {
			allowed = allowRedis(c.Request.Context(), key, perMinute)
		} else {
			allowed = allowMemory(key, perMinute)
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func allowRedis(ctx context.Context, key string, perMinute int) bool {
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		// redis отвалился - пропускаем, лимитер не должен ронять игру
		return true
	}
	if count == 1 {
		rdb.Expire(ctx, key, time.Minute)
	}
	return count <= int64(perMinute)
}

func allowMemory(key string, perMinute int) bool {
	memMu.Lock()
	defer memMu.Unlock()

	now := time.Now()
	w, ok := memWindows[key]
	if !ok || now.After(w.resetAt) {
		memWindows[key] = &memWindow{count: 1, resetAt: now.Add(time.Minute)}
		return true
	}
	w.count++
	return w.count <= perMinute
}
