package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisRateLimiter
		if !l.Allow("visitor-1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("nil client constructor", func(t *testing.T) {
		if NewRedisRateLimiter(nil, time.Minute, 3) != nil {
			t.Fatalf("expected nil limiter without client")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisRateLimiter{
			client: &mockRedisEvaler{result: 1},
			window: time.Minute,
			max:    3,
			prefix: generationLimitPrefix,
		}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("allow when count within max", func(t *testing.T) {
		mock := &mockRedisEvaler{result: 2}
		l := &redisRateLimiter{
			client: mock,
			window: 2 * time.Minute,
			max:    3,
			prefix: generationLimitPrefix,
		}
		if !l.Allow(" Visitor-ABC ") {
			t.Fatalf("expected allow when count <= max")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "art:gen:rl:visitor-abc" {
			t.Fatalf("unexpected key normalization, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 120 {
			t.Fatalf("expected TTL seconds=120, got %+v", mock.lastArgs)
		}
		if mock.lastScript != generationLimitScript {
			t.Fatalf("expected script to match")
		}
	})

	t.Run("deny when count exceeds max", func(t *testing.T) {
		l := &redisRateLimiter{
			client: &mockRedisEvaler{result: 4},
			window: time.Minute,
			max:    3,
			prefix: generationLimitPrefix,
		}
		if l.Allow("visitor-1") {
			t.Fatalf("expected deny when count > max")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		l := &redisRateLimiter{
			client: &mockRedisEvaler{err: errors.New("redis down")},
			window: time.Minute,
			max:    3,
			prefix: generationLimitPrefix,
		}
		if !l.Allow("visitor-1") {
			t.Fatalf("expected fail-open on redis errors")
		}
	})
}

func TestMemoryRateLimiter_SlidingWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewRateLimiter(time.Minute, 2).(*memoryRateLimiter)
	l.now = func() time.Time { return now }

	if !l.Allow("1.2.3.4") || !l.Allow("1.2.3.4") {
		t.Fatalf("expected first two hits allowed")
	}
	if l.Allow("1.2.3.4") {
		t.Fatalf("expected third hit denied")
	}
	if !l.Allow("5.6.7.8") {
		t.Fatalf("expected other key allowed")
	}

	now = now.Add(61 * time.Second)
	if !l.Allow("1.2.3.4") {
		t.Fatalf("expected hit allowed after window")
	}
	if l.Allow("") {
		t.Fatalf("expected empty key rejected")
	}
}

func TestMemoryRateLimiter_DropsExpiredKeys(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewRateLimiter(time.Millisecond, 1).(*memoryRateLimiter)
	l.now = func() time.Time { return now }

	for i := 0; i < 1001; i++ {
		if !l.Allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256)) {
			t.Fatalf("expected first hit allowed for key %d", i)
		}
	}
	if len(l.hits) != 1001 {
		t.Fatalf("expected 1001 tracked keys, got %d", len(l.hits))
	}

	now = now.Add(time.Second)
	if !l.Allow("visitor-new") {
		t.Fatalf("expected new key allowed")
	}
	if len(l.hits) != 1 {
		t.Fatalf("expected expired keys dropped, got %d tracked", len(l.hits))
	}
}
