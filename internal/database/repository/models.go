package repository

import "time"

// Person represents a people row.
type Person struct {
	ID        string
	Seq       int
	Name      string
	Email     string
	Age       *int
	CreatedAt time.Time
}
