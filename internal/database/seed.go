package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// editor account and a main navigation menu per site. It is a no-op when
// an editor already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM editors").Scan(&count); err != nil {
		return fmt.Errorf("seed check editors: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("editor"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO editors (email, password_hash, display_name)
		VALUES ($1, $2, $3)
	`, "editor@adapticus.local", string(hash), "Editor")
	if err != nil {
		return fmt.Errorf("seed insert editor: %w", err)
	}

	for _, s := range []string{"amare", "adapticus"} {
		for _, menu := range []string{"main", "footer"} {
			if _, err := db.Exec(`
				INSERT INTO navigation_menus (site, slug) VALUES ($1, $2)
				ON CONFLICT (site, slug) DO NOTHING
			`, s, menu); err != nil {
				return fmt.Errorf("seed menu %s/%s: %w", s, menu, err)
			}
		}
	}

	slog.Info("database seeded with default editor",
		"email", "editor@adapticus.local",
		"password", "editor",
	)

	return nil
}
