package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// generationLimitPrefix agrupa los contadores de generaciones por visitante o IP.
const generationLimitPrefix = "art:gen:rl:"

// generationLimitScript cuenta una generacion y arma el vencimiento de la
// ventana en el primer pedido, en un solo viaje a redis.
const generationLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

// redisRateLimiter comparte el cupo de generaciones entre replicas de la API.
type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

// redisEvaler es lo unico que el limitador usa de *redis.Client.
type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisRateLimiter limita a max generaciones por clave en cada ventana fija.
// Devuelve nil sin cliente; cmd/api cae entonces al limitador en memoria.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: generationLimitPrefix,
	}
}

// Allow cuenta un pedido de generacion para key. Si redis no responde deja
// pasar: el generador no consume recursos externos.
func (l *redisRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, generationLimitScript, []string{redisKey}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}
