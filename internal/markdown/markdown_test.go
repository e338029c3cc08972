package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLBasic(t *testing.T) {
	html, err := ToHTML("**bold** text")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("expected bold markup, got %q", html)
	}
}

func TestToHTMLEmpty(t *testing.T) {
	html, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML(\"\"): %v", err)
	}
	if html != "" {
		t.Errorf("empty input should render to empty string, got %q", html)
	}
}

func TestToHTMLTable(t *testing.T) {
	src := "**bold** | table\n\n| a | b |\n| --- | --- |\n| 1 | 2 |\n"
	html, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("expected table markup, got %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("expected bold markup, got %q", html)
	}
}

func TestToHTMLStrikethrough(t *testing.T) {
	html, err := ToHTML("~~gone~~")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<del>gone</del>") {
		t.Errorf("expected strikethrough markup, got %q", html)
	}
}
