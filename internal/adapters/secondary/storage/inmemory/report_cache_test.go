package inmemory

import (
	"context"
	"testing"
	"time"
)

func TestReportCacheSetGet(t *testing.T) {
	c := NewReportCache()
	ctx := context.Background()

	if err := c.Set(ctx, "natal:abc", `{"report":"ok"}`, time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := c.Get(ctx, "natal:abc")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != `{"report":"ok"}` {
		t.Errorf("Get: got %q", got)
	}

	exists, err := c.Exists(ctx, "natal:abc")
	if err != nil || !exists {
		t.Errorf("Exists: got %v, %v", exists, err)
	}
}

func TestReportCacheMiss(t *testing.T) {
	c := NewReportCache()

	if _, err := c.Get(context.Background(), "missing"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestReportCacheExpiry(t *testing.T) {
	c := NewReportCache()
	ctx := context.Background()

	if err := c.Set(ctx, "short", "v", time.Nanosecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := c.Get(ctx, "short"); err == nil {
		t.Error("expected expired key to be treated as missing")
	}
	exists, _ := c.Exists(ctx, "short")
	if exists {
		t.Error("expired key must not exist")
	}
}

func TestReportCacheDelete(t *testing.T) {
	c := NewReportCache()
	ctx := context.Background()

	_ = c.Set(ctx, "k", "v", 0)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := c.Get(ctx, "k"); err == nil {
		t.Error("expected error after delete")
	}
}
