// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Amareteklay/adapticus-backend/internal/models"
)

// EditorStore manages admin accounts and their credentials.
type EditorStore struct {
	db *sql.DB
}

// NewEditorStore returns a new EditorStore.
func NewEditorStore(db *sql.DB) *EditorStore {
	return &EditorStore{db: db}
}

// FindByEmail retrieves an editor by email. Returns nil if not found.
func (s *EditorStore) FindByEmail(email string) (*models.Editor, error) {
	var e models.Editor
	err := s.db.QueryRow(`
		SELECT id, email, password_hash, display_name, is_active, created_at, updated_at
		FROM editors
		WHERE email = $1
	`, email).Scan(&e.ID, &e.Email, &e.PasswordHash, &e.DisplayName, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find editor by email: %w", err)
	}
	return &e, nil
}

// Create inserts an editor with a bcrypt hash of the given password.
func (s *EditorStore) Create(email, password, displayName string) (*models.Editor, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO editors (email, password_hash, display_name)
		VALUES ($1, $2, $3)
	`, email, string(hash), displayName)
	if err != nil {
		return nil, fmt.Errorf("create editor: %w", err)
	}
	return s.FindByEmail(email)
}

// VerifyCredentials checks an email and password against the editors table.
// Unknown emails, inactive accounts, and wrong passwords all report false
// without error; the error path is for the database only.
func (s *EditorStore) VerifyCredentials(ctx context.Context, email, password string) (bool, error) {
	var hash string
	var active bool
	err := s.db.QueryRowContext(ctx, `
		SELECT password_hash, is_active FROM editors WHERE email = $1
	`, email).Scan(&hash, &active)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load editor credentials: %w", err)
	}
	if !active {
		return false, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return false, nil
	}
	return true, nil
}
