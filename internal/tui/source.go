package tui

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jask/datatable/internal/database/repository"
	"github.com/jask/datatable/internal/dataset"
	"github.com/jask/datatable/internal/table"
)

// Source supplies the hosted table's data. Methods are called from
// tea.Cmd goroutines.
type Source interface {
	Load(ctx context.Context) (dataset.Dataset, error)
	Delete(ctx context.Context, row table.Row) error
}

var errNoKey = errors.New("row has no key")

// MemorySource serves a dataset held in memory, such as the reference set
// or a TOML file. Deletes last for the life of the process.
type MemorySource struct {
	mu sync.Mutex
	ds dataset.Dataset
}

func NewMemorySource(ds dataset.Dataset) *MemorySource {
	return &MemorySource{ds: ds.Keyed()}
}

func (s *MemorySource) Load(context.Context) (dataset.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]table.Row, len(s.ds.Rows))
	copy(rows, s.ds.Rows)
	return dataset.Dataset{Columns: s.ds.Columns, Rows: rows}, nil
}

func (s *MemorySource) Delete(_ context.Context, row table.Row) error {
	key, ok := dataset.Key(row)
	if !ok {
		return errNoKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.ds.Rows {
		if k, _ := dataset.Key(r); k == key {
			rows := make([]table.Row, 0, len(s.ds.Rows)-1)
			rows = append(rows, s.ds.Rows[:i]...)
			s.ds.Rows = append(rows, s.ds.Rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("row %s: %w", key, repository.ErrNotFound)
}

// DBSource serves the people table of a migrated sqlite database.
type DBSource struct {
	people *repository.PeopleRepo
}

func NewDBSource(db *sql.DB) *DBSource {
	return &DBSource{people: repository.NewPeopleRepo(db)}
}

func (s *DBSource) Load(ctx context.Context) (dataset.Dataset, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("list people: %w", err)
	}
	return dataset.Dataset{Columns: repository.PeopleColumns(), Rows: repository.Rows(people)}, nil
}

func (s *DBSource) Delete(ctx context.Context, row table.Row) error {
	key, ok := dataset.Key(row)
	if !ok {
		return errNoKey
	}
	if err := s.people.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete person %s: %w", key, err)
	}
	return nil
}
