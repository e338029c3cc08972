package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// testAuthor creates a throwaway author and returns its ID.
func testAuthor(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()
	slug := "test-author-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanAuthors(t, db, slug) })

	a, err := NewAuthorStore(db).Create(&models.Author{Name: "Test Author", Slug: slug})
	if err != nil {
		t.Fatalf("create author: %v", err)
	}
	return a.ID
}

func TestPostStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	authorID := testAuthor(t, db)

	slug := "test-create-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	created, err := s.Create(&models.Post{
		Site:     site.Amare,
		Slug:     slug,
		Status:   models.StatusDraft,
		AuthorID: authorID,
		Translations: map[string]models.PostTranslation{
			"en": {Title: "Hello", Summary: "First post.", BodyMD: "# Hello"},
			"sv": {Title: "Hej", BodyMD: "# Hej"},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.Status != models.StatusDraft {
		t.Errorf("status: got %q, want %q", created.Status, models.StatusDraft)
	}
	if len(created.Translations) != 2 {
		t.Fatalf("translations: got %d, want 2", len(created.Translations))
	}
	if created.Translations["sv"].Title != "Hej" {
		t.Errorf("sv title: got %q", created.Translations["sv"].Title)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected post, got nil")
	}
	if found.Slug != slug {
		t.Errorf("slug: got %q, want %q", found.Slug, slug)
	}
	if found.Author == nil || found.Author.ID != authorID {
		t.Error("expected hydrated author")
	}
}

func TestPostStoreFindPublishedBySlug(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	authorID := testAuthor(t, db)

	slug := "test-pub-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	// Draft posts are invisible on the public lookup.
	if _, err := s.Create(&models.Post{
		Site: site.Amare, Slug: slug, Status: models.StatusDraft, AuthorID: authorID,
		Translations: map[string]models.PostTranslation{"en": {Title: "Draft", BodyMD: "x"}},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := s.FindPublishedBySlug(site.Amare, slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug (draft): %v", err)
	}
	if found != nil {
		t.Error("expected nil for draft post")
	}

	db.Exec("UPDATE posts SET status = 'published' WHERE slug = $1", slug)

	found, err = s.FindPublishedBySlug(site.Amare, slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug (published): %v", err)
	}
	if found == nil {
		t.Fatal("expected published post")
	}

	// Unlisted posts resolve to nothing publicly, even by direct slug.
	db.Exec("UPDATE posts SET unlisted = TRUE WHERE slug = $1", slug)
	found, err = s.FindPublishedBySlug(site.Amare, slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug (unlisted): %v", err)
	}
	if found != nil {
		t.Error("expected nil for unlisted post")
	}

	// Wrong site never matches.
	db.Exec("UPDATE posts SET unlisted = FALSE WHERE slug = $1", slug)
	found, err = s.FindPublishedBySlug(site.Adapticus, slug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug (other site): %v", err)
	}
	if found != nil {
		t.Error("expected nil on the other site")
	}
}

func TestPostStoreListPublished(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	authorID := testAuthor(t, db)

	older := "test-list-a-" + uuid.NewString()[:8]
	newer := "test-list-b-" + uuid.NewString()[:8]
	hidden := "test-list-c-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, older, newer, hidden) })

	mk := func(slug string, status models.PublishStatus, unlisted bool, at time.Time) {
		t.Helper()
		_, err := s.Create(&models.Post{
			Site: site.Adapticus, Slug: slug, Status: status, Unlisted: unlisted,
			PublishedAt: at, AuthorID: authorID,
			Translations: map[string]models.PostTranslation{"en": {Title: slug, BodyMD: "x"}},
		})
		if err != nil {
			t.Fatalf("Create %s: %v", slug, err)
		}
	}

	now := time.Now().UTC()
	mk(older, models.StatusPublished, false, now.Add(-time.Hour))
	mk(newer, models.StatusPublished, false, now)
	mk(hidden, models.StatusPublished, true, now)

	posts, err := s.ListPublished(site.Adapticus)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}

	idx := map[string]int{}
	for i, p := range posts {
		idx[p.Slug] = i
	}
	if _, ok := idx[hidden]; ok {
		t.Error("unlisted post appeared in listing")
	}
	ni, nok := idx[newer]
	oi, ook := idx[older]
	if !nok || !ook {
		t.Fatal("expected both published posts in listing")
	}
	if ni > oi {
		t.Errorf("expected newest first: %s at %d, %s at %d", newer, ni, older, oi)
	}
}

func TestPostStoreUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	authorID := testAuthor(t, db)

	slug := "test-upd-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	created, err := s.Create(&models.Post{
		Site: site.Amare, Slug: slug, Status: models.StatusDraft, AuthorID: authorID,
		Translations: map[string]models.PostTranslation{"en": {Title: "Before", BodyMD: "x"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Status = models.StatusPublished
	created.Translations["en"] = models.PostTranslation{Title: "After", BodyMD: "y"}
	updated, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated post, got nil")
	}
	if updated.Status != models.StatusPublished {
		t.Errorf("status: got %q", updated.Status)
	}
	if updated.Translations["en"].Title != "After" {
		t.Errorf("en title: got %q", updated.Translations["en"].Title)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("expected nil after delete")
	}

	// Updating a deleted post reports not-found, not an error.
	missing, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for update of missing post")
	}
}

func TestPostStoreTaxonomyLinks(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	authorID := testAuthor(t, db)

	slug := "test-tax-" + uuid.NewString()[:8]
	tagSlug := "test-tag-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		cleanPosts(t, db, slug)
		db.Exec("DELETE FROM tags WHERE slug = $1", tagSlug)
	})

	if _, err := db.Exec(`INSERT INTO tags (site, name, slug) VALUES ($1, $2, $3)`,
		site.Amare, "Test Tag", tagSlug); err != nil {
		t.Fatalf("insert tag: %v", err)
	}

	created, err := s.Create(&models.Post{
		Site: site.Amare, Slug: slug, Status: models.StatusDraft, AuthorID: authorID,
		TagSlugs: []string{tagSlug, "no-such-tag"},
		Translations: map[string]models.PostTranslation{"en": {Title: "Tagged", BodyMD: "x"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Known slugs link, unknown slugs are dropped silently.
	if len(created.TagSlugs) != 1 || created.TagSlugs[0] != tagSlug {
		t.Errorf("tag slugs: got %v, want [%s]", created.TagSlugs, tagSlug)
	}
}
