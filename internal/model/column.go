package model

import "slices"

// Column is an ordered bucket of task references; TaskIDs runs top to bottom.
type Column struct {
	ID      ColumnID `json:"id"`
	Title   string   `json:"title"`
	TaskIDs []TaskID `json:"taskIds"`
}

func (c *Column) indexOf(id TaskID) int {
	return slices.Index(c.TaskIDs, id)
}

func (c *Column) copy() Column {
	out := *c
	out.TaskIDs = append([]TaskID{}, c.TaskIDs...)
	return out
}
