package kv_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cotishq/cloudnest/pkg/configs"
	"github.com/cotishq/cloudnest/pkg/internal/storage/kv"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "share:abc", []byte(`{"id":"n1"}`), 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, "share:abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if string(got) != `{"id":"n1"}` {
		t.Errorf("got %q, want %q", got, `{"id":"n1"}`)
	}

	exists, err := store.Exists(ctx, "share:abc")
	if err != nil || !exists {
		t.Errorf("Exists = %v, %v; want true, nil", exists, err)
	}

	if err := store.Delete(ctx, "share:abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Get(ctx, "share:abc"); err == nil {
		t.Error("expected error getting deleted key, got nil")
	}
}

func TestMemoryKVTTLExpiry(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "ephemeral", []byte("v"), time.Second); err != nil {
		t.Fatalf("set with ttl: %v", err)
	}

	if _, err := store.Get(ctx, "ephemeral"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	if _, err := store.Get(ctx, "ephemeral"); err == nil {
		t.Error("expected error getting expired key, got nil")
	}
}

func TestNewKVClientUnsupportedType(t *testing.T) {
	cfg := &configs.KVConfig{Type: "etcd"}

	if _, err := kv.NewKVClient(context.Background(), cfg); err == nil {
		t.Error("expected error for unsupported KV type, got nil")
	}
}

func BenchmarkMemoryKV(b *testing.B) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		b.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	value := []byte("benchmark-value")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("bench:%d", i%1024)
		_ = store.Set(ctx, key, value, 0)
		_, _ = store.Get(ctx, key)
	}
}

// Optional: enable with ENABLE_REDIS_BENCH=1 and REDIS_ADDR set (default 127.0.0.1:6379).
func BenchmarkRedisKV(b *testing.B) {
	if os.Getenv("ENABLE_REDIS_BENCH") == "" {
		b.Skip("set ENABLE_REDIS_BENCH=1 to enable")
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	cfg := &configs.RedisKVConfig{Addr: addr, Password: "", DB: 0}

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeRedis, cfg)
	if err != nil {
		b.Skipf("redis not available: %v", err)
		return
	}
	defer store.Close()

	ctx := context.Background()
	value := []byte("benchmark-value")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("bench:%d", i%1024)
		_ = store.Set(ctx, key, value, 0)
		_, _ = store.Get(ctx, key)
	}
}
