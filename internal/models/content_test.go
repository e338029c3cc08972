package models

import "testing"

// TestPostIsPubliclyVisible verifies the publish/unlisted gate used by both
// the public queries and the revalidation notifier.
func TestPostIsPubliclyVisible(t *testing.T) {
	tests := []struct {
		name     string
		status   PublishStatus
		unlisted bool
		want     bool
	}{
		{name: "published listed", status: StatusPublished, unlisted: false, want: true},
		{name: "published unlisted", status: StatusPublished, unlisted: true, want: false},
		{name: "draft", status: StatusDraft, unlisted: false, want: false},
		{name: "scheduled", status: StatusScheduled, unlisted: false, want: false},
		{name: "archived", status: StatusArchived, unlisted: false, want: false},
		{name: "draft unlisted", status: StatusDraft, unlisted: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Post{Status: tt.status, Unlisted: tt.unlisted}
			if got := p.IsPubliclyVisible(); got != tt.want {
				t.Errorf("Post{%q, unlisted=%v}.IsPubliclyVisible() = %v, want %v",
					tt.status, tt.unlisted, got, tt.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []PublishStatus{StatusDraft, StatusScheduled, StatusPublished, StatusArchived} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []PublishStatus{"", "PUBLISHED", "deleted"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
