package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/datatable/internal/database/repository"
)

func openMigrated(t *testing.T) *repository.PeopleRepo {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "people.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, RunMigrationsWithDB(db))

	require.NoError(t, SeedReference(context.Background(), db))
	return repository.NewPeopleRepo(db)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "people.db")
	for range 2 {
		db, err := Open(dbPath)
		require.NoError(t, err)
		require.NoError(t, RunMigrationsWithDB(db))
		require.NoError(t, db.Close())
	}
}

func TestRunMigrationsWithDBKeepsConnectionOpen(t *testing.T) {
	t.Parallel()
	db, err := Open(filepath.Join(t.TempDir(), "people.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrationsWithDB(db))
	require.NoError(t, db.Ping())

	n, err := repository.NewPeopleRepo(db).Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSeedReference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := openMigrated(t)

	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 6)
	require.Equal(t, "John Doe", people[0].Name)
	require.Equal(t, PersonID("john@example.com"), people[0].ID)
	require.NotNil(t, people[5].Age)
	require.Equal(t, 40, *people[5].Age)
	require.False(t, people[0].CreatedAt.IsZero())
}

func TestSeedReferenceSkipsPopulatedTable(t *testing.T) {
	t.Parallel()
	db, err := Open(filepath.Join(t.TempDir(), "people.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, RunMigrationsWithDB(db))

	ctx := context.Background()
	require.NoError(t, SeedReference(ctx, db))
	require.NoError(t, SeedReference(ctx, db))

	n, err := repository.NewPeopleRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestPersonIDIsStable(t *testing.T) {
	require.Equal(t, PersonID("a@b.c"), PersonID("a@b.c"))
	require.NotEqual(t, PersonID("a@b.c"), PersonID("b@b.c"))
}
