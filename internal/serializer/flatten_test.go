package serializer

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// fixedURLs is a stub media URL resolver.
type fixedURLs struct{ base string }

func (f fixedURLs) FileURL(key string) string {
	if key == "" {
		return ""
	}
	return f.base + "/" + key
}

func testPost() *models.Post {
	return &models.Post{
		ID:          uuid.New(),
		Site:        site.Amare,
		Slug:        "hello-world",
		Status:      models.StatusPublished,
		PublishedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Translations: map[string]models.PostTranslation{
			"en": {
				Locale:  "en",
				Title:   "Hello World",
				Summary: "An introduction.",
				BodyMD:  "**bold** text",
			},
			"sv": {
				Locale: "sv",
				Title:  "Hej Världen",
				BodyMD: "*kursiv*",
			},
		},
	}
}

func TestFlattenPostRequestedLocale(t *testing.T) {
	p := testPost()
	flat := FlattenPost(p, "sv", nil)

	if flat.Title != "Hej Världen" {
		t.Errorf("title: got %q, want %q", flat.Title, "Hej Världen")
	}
	if flat.ActiveLocale != "sv" {
		t.Errorf("active_locale: got %q, want %q", flat.ActiveLocale, "sv")
	}
	if !strings.Contains(flat.BodyHTML, "<em>kursiv</em>") {
		t.Errorf("body_html: got %q, want italic markup", flat.BodyHTML)
	}
	// Swedish record has no summary; summary never hops to another locale.
	if flat.Summary != "" {
		t.Errorf("summary: got %q, want empty", flat.Summary)
	}
	if want := []string{"en", "sv"}; !reflect.DeepEqual(flat.AvailableLocales, want) {
		t.Errorf("available_locales: got %v, want %v", flat.AvailableLocales, want)
	}
}

func TestFlattenPostFallbackLocale(t *testing.T) {
	p := testPost()
	delete(p.Translations, "sv")

	// Requested locale has no record: the English record is used for text,
	// but active_locale still echoes the request.
	flat := FlattenPost(p, "ti-et", nil)

	if flat.Title != "Hello World" {
		t.Errorf("title: got %q, want fallback %q", flat.Title, "Hello World")
	}
	if flat.Summary != "An introduction." {
		t.Errorf("summary: got %q, want fallback record's summary", flat.Summary)
	}
	if !strings.Contains(flat.BodyHTML, "<strong>bold</strong>") {
		t.Errorf("body_html: got %q, want fallback body", flat.BodyHTML)
	}
	if flat.ActiveLocale != "ti-et" {
		t.Errorf("active_locale: got %q, want %q", flat.ActiveLocale, "ti-et")
	}
}

func TestFlattenPostNoTranslations(t *testing.T) {
	p := testPost()
	p.Translations = nil

	flat := FlattenPost(p, "en", nil)

	if flat.Title != p.Slug {
		t.Errorf("title: got %q, want slug %q", flat.Title, p.Slug)
	}
	if flat.BodyHTML != "" {
		t.Errorf("body_html: got %q, want empty", flat.BodyHTML)
	}
	if len(flat.AvailableLocales) != 0 {
		t.Errorf("available_locales: got %v, want empty", flat.AvailableLocales)
	}
}

func TestFlattenPostSEOFallbacks(t *testing.T) {
	p := testPost()

	flat := FlattenPost(p, "en", nil)
	if flat.SEOTitle != "Hello World" {
		t.Errorf("seo_title should fall back to title: got %q", flat.SEOTitle)
	}
	if flat.SEODesc != "" {
		t.Errorf("seo_desc should fall back to empty: got %q", flat.SEODesc)
	}

	tr := p.Translations["en"]
	tr.SEOTitle = "Custom SEO"
	tr.SEODesc = "Described."
	p.Translations["en"] = tr

	flat = FlattenPost(p, "en", nil)
	if flat.SEOTitle != "Custom SEO" {
		t.Errorf("seo_title: got %q, want %q", flat.SEOTitle, "Custom SEO")
	}
	if flat.SEODesc != "Described." {
		t.Errorf("seo_desc: got %q, want %q", flat.SEODesc, "Described.")
	}
}

func TestFlattenPostTableBody(t *testing.T) {
	p := testPost()
	tr := p.Translations["en"]
	tr.BodyMD = "**bold** | table\n\n| a | b |\n| --- | --- |\n| 1 | 2 |\n"
	p.Translations["en"] = tr

	flat := FlattenPost(p, "en", nil)
	if !strings.Contains(flat.BodyHTML, "<table>") {
		t.Errorf("expected table markup in body_html, got %q", flat.BodyHTML)
	}
}

func TestFlattenPostHeroImage(t *testing.T) {
	width, height := 1200, 630
	p := testPost()
	p.HeroImage = &models.MediaAsset{
		ID:         uuid.New(),
		Kind:       models.MediaImage,
		StorageKey: "media/hero.webp",
		Width:      &width,
		Height:     &height,
		AltText:    "A hero",
	}

	// No storage configured: asset still serialized, URL null.
	flat := FlattenPost(p, "en", nil)
	if flat.HeroImage == nil {
		t.Fatal("expected hero_image record")
	}
	if flat.HeroImage.URL != nil {
		t.Errorf("url: got %v, want nil without storage", *flat.HeroImage.URL)
	}

	// With storage, the key resolves.
	flat = FlattenPost(p, "en", fixedURLs{base: "https://cdn.example.org"})
	if flat.HeroImage.URL == nil || *flat.HeroImage.URL != "https://cdn.example.org/media/hero.webp" {
		t.Errorf("url: got %v, want resolved CDN URL", flat.HeroImage.URL)
	}
	if flat.HeroImage.Width == nil || *flat.HeroImage.Width != 1200 {
		t.Error("expected width carried through")
	}
}

func TestFlattenPostNoHeroImage(t *testing.T) {
	flat := FlattenPost(testPost(), "en", fixedURLs{base: "https://cdn.example.org"})
	if flat.HeroImage != nil {
		t.Errorf("hero_image: got %+v, want nil", flat.HeroImage)
	}
}

// Repeated flattening of the same entity and locale must be byte-identical.
func TestFlattenPostIdempotent(t *testing.T) {
	p := testPost()
	a, err := json.Marshal(FlattenPost(p, "sv", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(FlattenPost(p, "sv", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("flattening is not deterministic:\n%s\n%s", a, b)
	}
}

func TestFlattenPage(t *testing.T) {
	pg := &models.Page{
		ID:     uuid.New(),
		Site:   site.Adapticus,
		Slug:   "about",
		IsHome: false,
		Translations: map[string]models.PageTranslation{
			"en": {Locale: "en", Title: "About", BodyMD: "Who we are."},
		},
	}

	flat := FlattenPage(pg, "sv", nil)
	if flat.Title != "About" {
		t.Errorf("title: got %q, want fallback %q", flat.Title, "About")
	}
	if flat.Summary != "" {
		t.Errorf("pages have no summary: got %q", flat.Summary)
	}
	if flat.ActiveLocale != "sv" {
		t.Errorf("active_locale: got %q, want %q", flat.ActiveLocale, "sv")
	}
	if flat.SEOTitle != "About" {
		t.Errorf("seo_title: got %q, want title fallback", flat.SEOTitle)
	}
}

func TestFlattenPageNoTranslations(t *testing.T) {
	pg := &models.Page{ID: uuid.New(), Site: site.Amare, Slug: "contact"}
	flat := FlattenPage(pg, "en", nil)
	if flat.Title != "contact" {
		t.Errorf("title: got %q, want slug", flat.Title)
	}
	if flat.BodyHTML != "" {
		t.Errorf("body_html: got %q, want empty", flat.BodyHTML)
	}
}
