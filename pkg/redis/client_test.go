package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	if err := client.Set(ctx, client.CartKey("tok-1"), `{"items":[]}`, time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, err := client.Get(ctx, client.CartKey("tok-1"))
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != `{"items":[]}` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := client.Del(ctx, client.CartKey("tok-1")); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := client.Get(ctx, client.CartKey("tok-1")); err != redis.Nil {
		t.Fatalf("expected redis.Nil after delete, got %v", err)
	}
}

func TestSetNXOnlyOnce(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	key := client.IdempotencyKey("checkout", "req-1")
	ok, err := client.SetNX(ctx, key, "1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("first SetNX should win: ok=%v err=%v", ok, err)
	}
	ok, err = client.SetNX(ctx, key, "1", time.Minute)
	if err != nil {
		t.Fatalf("second SetNX errored: %v", err)
	}
	if ok {
		t.Fatal("second SetNX should lose")
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.CartKey("abc"); got != "rk:cart:abc" {
		t.Fatalf("unexpected cart key %s", got)
	}
	if got := client.IdempotencyKey("checkout", "id"); got != "rk:idempotency:checkout:id" {
		t.Fatalf("unexpected idempotency key %s", got)
	}
}

type mockCmdable struct {
	data map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if _, exists := m.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
