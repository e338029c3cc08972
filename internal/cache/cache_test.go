package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Amareteklay/adapticus-backend/internal/site"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		site  site.ID
		path  string
		query string
		want  string
	}{
		{name: "no query", site: site.Amare, path: "/api/v1/content/posts", want: "api:amare:/api/v1/content/posts"},
		{name: "with query", site: site.Adapticus, path: "/api/v1/settings", query: "site=adapticus", want: "api:adapticus:/api/v1/settings?site=adapticus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.site, tt.path, tt.query); got != tt.want {
				t.Errorf("Key = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilResponseCacheIsSafe(t *testing.T) {
	var rc *ResponseCache
	ctx := context.Background()

	if _, ok := rc.Get(ctx, "api:amare:/x"); ok {
		t.Error("nil cache should always miss")
	}
	rc.Set(ctx, "api:amare:/x", []byte("{}"))
	rc.InvalidateSite(ctx, site.Amare)
}

// testClient connects to a local Valkey on DB 15, skipping when unreachable.
func testClient(t *testing.T) *redis.Client {
	t.Helper()

	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("skipping: valkey not reachable: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

func TestResponseCacheRoundTrip(t *testing.T) {
	client := testClient(t)
	rc := NewResponseCache(client, time.Minute)
	ctx := context.Background()

	key := Key(site.Amare, "/api/v1/content/posts", "lang=sv")
	if _, ok := rc.Get(ctx, key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	rc.Set(ctx, key, []byte(`[{"slug":"a"}]`))
	got, ok := rc.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != `[{"slug":"a"}]` {
		t.Errorf("body: got %s", got)
	}
}

func TestInvalidateSiteOnlyTouchesThatSite(t *testing.T) {
	client := testClient(t)
	rc := NewResponseCache(client, time.Minute)
	ctx := context.Background()

	amareKey := Key(site.Amare, "/api/v1/content/posts", "")
	adaptKey := Key(site.Adapticus, "/api/v1/content/posts", "")
	rc.Set(ctx, amareKey, []byte(`[]`))
	rc.Set(ctx, adaptKey, []byte(`[]`))

	rc.InvalidateSite(ctx, site.Amare)

	if _, ok := rc.Get(ctx, amareKey); ok {
		t.Error("amare entry should be gone")
	}
	if _, ok := rc.Get(ctx, adaptKey); !ok {
		t.Error("adapticus entry should survive")
	}
}
