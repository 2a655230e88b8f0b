package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get = (%v, %v), want hit", hit, err)
	}
	if string(data) != "payload" {
		t.Fatalf("Get = %q, want payload", data)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("payload"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Fatal("expired entry reported as hit")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	_ = c.Set(ctx, "k", []byte("payload"), 0)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Fatal("deleted entry reported as hit")
	}
	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestNullCacheNeverHits(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()
	_ = c.Set(ctx, "k", []byte("payload"), 0)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Fatal("null cache reported a hit")
	}
}

func TestArtifactKeyStable(t *testing.T) {
	k := NewDefaultKeyer()
	opts := ArtifactKeyOpts{Format: "svg", LayoutType: "title", Width: 960}

	a := k.ArtifactKey("hash", opts)
	b := k.ArtifactKey("hash", opts)
	if a != b {
		t.Fatal("identical inputs produced different keys")
	}

	opts.Width = 480
	if k.ArtifactKey("hash", opts) == a {
		t.Fatal("different widths produced the same key")
	}
}

func TestScopedKeyerPrefix(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "tenant:1:")
	opts := ArtifactKeyOpts{Format: "pptx"}

	got := scoped.ArtifactKey("hash", opts)
	want := "tenant:1:" + inner.ArtifactKey("hash", opts)
	if got != want {
		t.Fatalf("scoped key = %q, want %q", got, want)
	}
}
