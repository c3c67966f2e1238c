package model

// TaskID identifies a task on the board.
type TaskID string

// ColumnID identifies a column on the board.
type ColumnID string

// LabelID identifies a label in the registry.
type LabelID string
