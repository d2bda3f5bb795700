package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/datatable/internal/database/repository"
	"github.com/jask/datatable/internal/dataset"
)

// PersonID derives a stable id from an email address so reseeding a fresh
// database produces the same keys.
func PersonID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("person:"+email)).String()
}

// SeedReference fills an empty people table with the reference dataset.
// It is idempotent and safe to run on every startup.
func SeedReference(ctx context.Context, db *sql.DB) error {
	repo := repository.NewPeopleRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count people: %w", err)
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		txRepo := repository.NewPeopleRepo(tx)
		for _, r := range dataset.Reference().Rows {
			email, _ := r["email"].(string)
			name, _ := r["name"].(string)
			seq, _ := r["id"].(int)
			p := repository.Person{ID: PersonID(email), Seq: seq, Name: name, Email: email}
			if age, ok := r["age"].(int); ok {
				p.Age = &age
			}
			if err := txRepo.Insert(ctx, p); err != nil {
				return fmt.Errorf("seed %s: %w", email, err)
			}
		}
		return nil
	})
}
