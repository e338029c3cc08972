package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestEditorStoreVerifyCredentials(t *testing.T) {
	db := testDB(t)
	s := NewEditorStore(db)
	ctx := context.Background()

	email := "test-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanEditors(t, db, email) })

	created, err := s.Create(email, "correct horse", "Test Editor")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PasswordHash == "correct horse" {
		t.Fatal("password stored in plaintext")
	}

	ok, err := s.VerifyCredentials(ctx, email, "correct horse")
	if err != nil {
		t.Fatalf("VerifyCredentials: %v", err)
	}
	if !ok {
		t.Error("expected valid credentials to verify")
	}

	ok, err = s.VerifyCredentials(ctx, email, "wrong")
	if err != nil {
		t.Fatalf("VerifyCredentials (wrong password): %v", err)
	}
	if ok {
		t.Error("wrong password verified")
	}

	ok, err = s.VerifyCredentials(ctx, "nobody@example.com", "anything")
	if err != nil {
		t.Fatalf("VerifyCredentials (unknown email): %v", err)
	}
	if ok {
		t.Error("unknown email verified")
	}

	// Deactivated accounts cannot log in even with the right password.
	db.Exec("UPDATE editors SET is_active = FALSE WHERE email = $1", email)
	ok, err = s.VerifyCredentials(ctx, email, "correct horse")
	if err != nil {
		t.Fatalf("VerifyCredentials (inactive): %v", err)
	}
	if ok {
		t.Error("inactive account verified")
	}
}
