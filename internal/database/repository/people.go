package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jask/datatable/internal/dataset"
	"github.com/jask/datatable/internal/table"
)

// ErrNotFound is returned when a keyed row does not exist.
var ErrNotFound = errors.New("not found")

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PeopleRepo handles people.
type PeopleRepo struct {
	db DBTX
}

func NewPeopleRepo(db DBTX) *PeopleRepo { return &PeopleRepo{db: db} }

func (r *PeopleRepo) Insert(ctx context.Context, p Person) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO people(id, seq, name, email, age, created_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, p.ID, p.Seq, p.Name, p.Email, p.Age)
	return err
}

func (r *PeopleRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&n)
	return n, err
}

// List returns people in seq order.
func (r *PeopleRepo) List(ctx context.Context) ([]Person, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, seq, name, email, age, created_at FROM people ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Person
	for rows.Next() {
		var p Person
		var age sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Seq, &p.Name, &p.Email, &age, &p.CreatedAt); err != nil {
			return nil, err
		}
		if age.Valid {
			v := int(age.Int64)
			p.Age = &v
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes the person with id. It returns ErrNotFound when no row
// matched.
func (r *PeopleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PeopleColumns is the column set for people rows.
func PeopleColumns() []table.Column {
	return []table.Column{
		{Header: "ID", Accessor: "id", Sortable: true},
		{Header: "Name", Accessor: "name", Sortable: true},
		{Header: "Email", Accessor: "email", Sortable: true},
		{Header: "Age", Accessor: "age"},
	}
}

// Row maps p onto PeopleColumns accessors and carries the primary key
// under dataset.KeyField. A NULL age is left absent.
func (p Person) Row() table.Row {
	row := table.Row{
		dataset.KeyField: p.ID,
		"id":             p.Seq,
		"name":           p.Name,
		"email":          p.Email,
	}
	if p.Age != nil {
		row["age"] = *p.Age
	}
	return row
}

// Rows converts people to table rows.
func Rows(people []Person) []table.Row {
	out := make([]table.Row, len(people))
	for i, p := range people {
		out[i] = p.Row()
	}
	return out
}
