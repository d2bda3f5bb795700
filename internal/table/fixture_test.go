package table

func referenceColumns() []Column {
	return []Column{
		{Header: "ID", Accessor: "id", Sortable: true},
		{Header: "Name", Accessor: "name", Sortable: true},
		{Header: "Email", Accessor: "email", Sortable: true, Pinned: true},
		{Header: "Age", Accessor: "age"},
	}
}

func referenceRows() []Row {
	return []Row{
		{"id": 1, "name": "John Doe", "email": "john@example.com", "age": 28},
		{"id": 2, "name": "Jane Smith", "email": "jane@example.com", "age": 34},
		{"id": 3, "name": "Bob Johnson", "email": "bob@example.com", "age": 45},
		{"id": 4, "name": "Alice Brown", "email": "alice@example.com", "age": 23},
		{"id": 5, "name": "Charlie Black", "email": "charlie@example.com", "age": 30},
		{"id": 6, "name": "Dave White", "email": "dave@example.com", "age": 40},
	}
}

func ids(rows []Row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i], _ = r["id"].(int)
	}
	return out
}
