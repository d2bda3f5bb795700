package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/datatable/internal/database"
	"github.com/jask/datatable/internal/database/repository"
	"github.com/jask/datatable/internal/dataset"
	"github.com/jask/datatable/internal/table"
)

func newRepo(t *testing.T) *repository.PeopleRepo {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "people.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrationsWithDB(db))
	return repository.NewPeopleRepo(db)
}

func TestInsertListDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	age := 51
	require.NoError(t, repo.Insert(ctx, repository.Person{ID: "b", Seq: 2, Name: "Bea", Email: "bea@example.com"}))
	require.NoError(t, repo.Insert(ctx, repository.Person{ID: "a", Seq: 1, Name: "Al", Email: "al@example.com", Age: &age}))

	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	require.Equal(t, "a", people[0].ID)
	require.Equal(t, 51, *people[0].Age)
	require.Nil(t, people[1].Age)

	require.NoError(t, repo.Delete(ctx, "a"))
	require.ErrorIs(t, repo.Delete(ctx, "a"), repository.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestInsertRejectsDuplicateSeq(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)
	require.NoError(t, repo.Insert(ctx, repository.Person{ID: "a", Seq: 1, Name: "A", Email: "a@x"}))
	require.Error(t, repo.Insert(ctx, repository.Person{ID: "b", Seq: 1, Name: "B", Email: "b@x"}))
}

func TestPersonRow(t *testing.T) {
	age := 28
	p := repository.Person{ID: "k", Seq: 1, Name: "John Doe", Email: "john@example.com", Age: &age}
	require.Equal(t, table.Row{
		dataset.KeyField: "k",
		"id":             1,
		"name":           "John Doe",
		"email":          "john@example.com",
		"age":            28,
	}, p.Row())

	noAge := repository.Person{ID: "n", Seq: 2, Name: "N", Email: "n@x"}.Row()
	require.Nil(t, noAge.Value("age"))
	require.Equal(t, "", table.Stringify(noAge.Value("age")))
}

func TestKeyFieldIsNotSearched(t *testing.T) {
	rows := repository.Rows([]repository.Person{{ID: "needle", Seq: 1, Name: "A", Email: "a@x"}})
	require.Empty(t, table.FilterRows(rows, repository.PeopleColumns(), "needle"))
	require.Len(t, table.FilterRows(rows, repository.PeopleColumns(), "a@x"), 1)
}
