package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"takaful_quote/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

func TestOptionsFromConfig(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://:secret@localhost:6380/2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6380" || opts.DB != 2 || opts.Password != "secret" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.PoolSize != defaultPoolSize || opts.ReadTimeout != defaultIOTimeout {
		t.Fatalf("defaults not applied: pool=%d read=%s", opts.PoolSize, opts.ReadTimeout)
	}

	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := optionsFromConfig(config.RedisConfig{URL: "http://nope"}); err == nil {
		t.Fatalf("expected error for invalid scheme")
	}
}

func TestClientKeys(t *testing.T) {
	client := &Client{}
	if got := client.DraftKey("q-1"); got != "tkf:draft:q-1" {
		t.Fatalf("unexpected draft key %s", got)
	}
	if got := client.ReferenceKey("MOTOR"); got != "tkf:reference:MOTOR" {
		t.Fatalf("unexpected reference key %s", got)
	}
	if got := client.DraftKey(" "); got != "tkf:draft" {
		t.Fatalf("empty parts should be skipped, got %s", got)
	}
}

func TestClientCommands(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	if err := client.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if mock.ttls["k"] != time.Minute {
		t.Fatalf("ttl not forwarded: %s", mock.ttls["k"])
	}
	got, err := client.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Fatalf("get: got %q err %v", got, err)
	}
	if _, err := client.Get(ctx, "missing"); !IsMiss(err) {
		t.Fatalf("expected miss, got %v", err)
	}
	if n, _ := client.Incr(ctx, "c"); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
	if n, _ := client.Incr(ctx, "c"); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	if err := client.Del(ctx, "k"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := client.Get(ctx, "k"); !IsMiss(err) {
		t.Fatalf("expected miss after delete, got %v", err)
	}
	if err := client.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestClientNotInitialized(t *testing.T) {
	var client *Client
	if err := client.Set(context.Background(), "k", "v", 0); err == nil {
		t.Fatalf("expected error on nil client")
	}
	if _, err := (&Client{}).Get(context.Background(), "k"); err == nil {
		t.Fatalf("expected error on empty client")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close on nil client should be a no-op: %v", err)
	}
}

type mockCmdable struct {
	data map[string]string
	ttls map[string]time.Duration
	incr map[string]int64
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
		incr: make(map[string]int64),
	}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.incr[key]++
	return redis.NewIntResult(m.incr[key], nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
