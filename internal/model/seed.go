package model

// Seed describes the initial board state.
type Seed struct {
	Tasks       []Task
	Columns     []Column
	ColumnOrder []ColumnID
}

// DefaultSeed is the board every new session starts with.
func DefaultSeed() Seed {
	return Seed{
		Tasks: []Task{
			{ID: "task-1", Title: "Take out the garbage"},
			{ID: "task-2", Title: "Watch my favorite show"},
			{ID: "task-3", Title: "Charge my phone"},
			{ID: "task-4", Title: "Cook dinner"},
		},
		Columns: []Column{
			{ID: "column-1", Title: "To do", TaskIDs: []TaskID{"task-1", "task-2", "task-3", "task-4"}},
			{ID: "column-2", Title: "In progress", TaskIDs: []TaskID{}},
			{ID: "column-3", Title: "Done", TaskIDs: []TaskID{}},
		},
		ColumnOrder: []ColumnID{"column-1", "column-2", "column-3"},
	}
}
