package store

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

func TestSettingStoreUpsert(t *testing.T) {
	db := testDB(t)
	s := NewSettingStore(db)

	key := "test-key-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		db.Exec("DELETE FROM settings WHERE key = $1", key)
	})

	first, err := s.Upsert(site.Amare, key, json.RawMessage(`"one"`))
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if string(first.Value) != `"one"` {
		t.Errorf("value: got %s", first.Value)
	}

	// A second upsert for the same (site, key) replaces in place.
	second, err := s.Upsert(site.Amare, key, json.RawMessage(`"two"`))
	if err != nil {
		t.Fatalf("Upsert (replace): %v", err)
	}
	if second.ID != first.ID {
		t.Error("replace should keep the same row")
	}
	if string(second.Value) != `"two"` {
		t.Errorf("value after replace: got %s", second.Value)
	}

	// The same key on the other site is independent.
	other, err := s.Upsert(site.Adapticus, key, json.RawMessage(`"three"`))
	if err != nil {
		t.Fatalf("Upsert (other site): %v", err)
	}
	if other.ID == first.ID {
		t.Error("sites should not share setting rows")
	}

	rows, err := s.ListBySite(site.Amare)
	if err != nil {
		t.Fatalf("ListBySite: %v", err)
	}
	found := false
	for _, row := range rows {
		if row.Key == key {
			found = true
			if string(row.Value) != `"two"` {
				t.Errorf("listed value: got %s", row.Value)
			}
		}
	}
	if !found {
		t.Error("upserted key missing from listing")
	}

	if err := s.Delete(site.Amare, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestRedirectStoreUpsert(t *testing.T) {
	db := testDB(t)
	s := NewRedirectStore(db)

	source := "/test-old-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		db.Exec("DELETE FROM redirects WHERE source_path = $1", source)
	})

	first, err := s.Upsert(&models.Redirect{
		Site: site.Amare, SourcePath: source, TargetURL: "/new",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if first.HTTPStatus != 301 {
		t.Errorf("default status: got %d, want 301", first.HTTPStatus)
	}

	second, err := s.Upsert(&models.Redirect{
		Site: site.Amare, SourcePath: source, TargetURL: "/newer", HTTPStatus: 302,
	})
	if err != nil {
		t.Fatalf("Upsert (replace): %v", err)
	}
	if second.ID != first.ID {
		t.Error("replace should keep the same row")
	}
	if second.TargetURL != "/newer" || second.HTTPStatus != 302 {
		t.Errorf("replaced rule: %+v", second)
	}

	rules, err := s.ListBySite(site.Amare)
	if err != nil {
		t.Fatalf("ListBySite: %v", err)
	}
	found := false
	for _, r := range rules {
		if r.SourcePath == source {
			found = true
		}
	}
	if !found {
		t.Error("redirect missing from listing")
	}
}
