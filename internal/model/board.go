package model

import (
	"fmt"
	"slices"
	"strings"
)

// Board owns columns, tasks and column order for one session.
//
// Column.TaskIDs is the only record of which column holds a task, so the
// two can never disagree. Every mutating method validates its arguments
// before touching state: a call either applies fully or not at all.
type Board struct {
	tasks       map[TaskID]*Task
	columns     map[ColumnID]*Column
	columnOrder []ColumnID

	// taskSeq only grows, so generated ids are never reused after a delete
	taskSeq int
}

// Snapshot is a deep, read-only copy of the board state.
type Snapshot struct {
	Tasks       map[TaskID]Task     `json:"tasks"`
	Columns     map[ColumnID]Column `json:"columns"`
	ColumnOrder []ColumnID          `json:"columnOrder"`
}

// NewBoard builds a board from seed data and rejects seeds that break
// referential integrity.
func NewBoard(seed Seed) (*Board, error) {
	b := &Board{
		tasks:       make(map[TaskID]*Task, len(seed.Tasks)),
		columns:     make(map[ColumnID]*Column, len(seed.Columns)),
		columnOrder: slices.Clone(seed.ColumnOrder),
	}

	for _, t := range seed.Tasks {
		if _, dup := b.tasks[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %q: %w", t.ID, ErrValidation)
		}
		task := t.copy()
		if task.Labels == nil {
			task.Labels = []LabelID{}
		}
		b.tasks[t.ID] = &task
	}
	for _, c := range seed.Columns {
		if _, dup := b.columns[c.ID]; dup {
			return nil, fmt.Errorf("duplicate column id %q: %w", c.ID, ErrValidation)
		}
		col := c.copy()
		b.columns[c.ID] = &col
	}

	if err := b.Validate(nil); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Task(id TaskID) (Task, error) {
	t, ok := b.tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("task %q: %w", id, ErrNotFound)
	}
	return t.copy(), nil
}

func (b *Board) Column(id ColumnID) (Column, error) {
	c, ok := b.columns[id]
	if !ok {
		return Column{}, fmt.Errorf("column %q: %w", id, ErrNotFound)
	}
	return c.copy(), nil
}

// Columns returns the columns in display order.
func (b *Board) Columns() []Column {
	out := make([]Column, 0, len(b.columnOrder))
	for _, id := range b.columnOrder {
		out = append(out, b.columns[id].copy())
	}
	return out
}

func (b *Board) ColumnOrder() []ColumnID {
	return slices.Clone(b.columnOrder)
}

func (b *Board) TaskCount() int {
	return len(b.tasks)
}

// ColumnOf returns the column holding the task and the task's index in it.
func (b *Board) ColumnOf(id TaskID) (ColumnID, int, bool) {
	for _, colID := range b.columnOrder {
		if i := b.columns[colID].indexOf(id); i >= 0 {
			return colID, i, true
		}
	}
	return "", -1, false
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Tasks:       make(map[TaskID]Task, len(b.tasks)),
		Columns:     make(map[ColumnID]Column, len(b.columns)),
		ColumnOrder: slices.Clone(b.columnOrder),
	}
	for id, t := range b.tasks {
		s.Tasks[id] = t.copy()
	}
	for id, c := range b.columns {
		s.Columns[id] = c.copy()
	}
	return s
}

// AddTask creates a task with a generated title and appends it to the column.
func (b *Board) AddTask(columnID ColumnID) (TaskID, error) {
	col, ok := b.columns[columnID]
	if !ok {
		return "", fmt.Errorf("column %q: %w", columnID, ErrNotFound)
	}

	id := b.nextTaskID()
	b.tasks[id] = NewTask(id, fmt.Sprintf("New task %d", len(b.tasks)+1))
	col.TaskIDs = append(col.TaskIDs, id)
	return id, nil
}

// DeleteTask removes the task and its reference from the owning column.
func (b *Board) DeleteTask(id TaskID) error {
	if _, ok := b.tasks[id]; !ok {
		return fmt.Errorf("task %q: %w", id, ErrNotFound)
	}

	if colID, i, ok := b.ColumnOf(id); ok {
		col := b.columns[colID]
		col.TaskIDs = slices.Delete(col.TaskIDs, i, i+1)
	}
	delete(b.tasks, id)
	return nil
}

// EditTaskTitle replaces the title. Blank titles are rejected.
func (b *Board) EditTaskTitle(id TaskID, title string) error {
	t, ok := b.tasks[id]
	if !ok {
		return fmt.Errorf("task %q: %w", id, ErrNotFound)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("task title is required: %w", ErrValidation)
	}
	t.Title = title
	return nil
}

// AttachLabel appends labelID to the task's labels. It reports false when
// the label was already attached, in which case nothing changes.
func (b *Board) AttachLabel(taskID TaskID, labelID LabelID, labels LabelLookup) (bool, error) {
	t, ok := b.tasks[taskID]
	if !ok {
		return false, fmt.Errorf("task %q: %w", taskID, ErrNotFound)
	}
	if labels == nil || !labels.Has(labelID) {
		return false, fmt.Errorf("label %q: %w", labelID, ErrNotFound)
	}
	if t.HasLabel(labelID) {
		return false, nil
	}
	t.Labels = append(t.Labels, labelID)
	return true, nil
}

// MoveTask relocates the task at sourceIndex of the source column to
// destIndex of the destination column. The task is removed first and
// destIndex is then clamped to the shrunk sequence, so within one column
// the task ends up exactly at destIndex.
func (b *Board) MoveTask(source ColumnID, sourceIndex int, dest ColumnID, destIndex int) (TaskID, error) {
	src, ok := b.columns[source]
	if !ok {
		return "", fmt.Errorf("column %q: %w", source, ErrNotFound)
	}
	dst, ok := b.columns[dest]
	if !ok {
		return "", fmt.Errorf("column %q: %w", dest, ErrNotFound)
	}
	if sourceIndex < 0 || sourceIndex >= len(src.TaskIDs) {
		return "", fmt.Errorf("source index %d in column %q of length %d: %w",
			sourceIndex, source, len(src.TaskIDs), ErrIndexOutOfRange)
	}

	id := src.TaskIDs[sourceIndex]
	src.TaskIDs = slices.Delete(src.TaskIDs, sourceIndex, sourceIndex+1)
	dst.TaskIDs = insertClamped(dst.TaskIDs, destIndex, id)
	return id, nil
}

// MoveColumn reorders columnOrder with the same remove-then-insert rule as MoveTask.
func (b *Board) MoveColumn(sourceIndex, destIndex int) (ColumnID, error) {
	if sourceIndex < 0 || sourceIndex >= len(b.columnOrder) {
		return "", fmt.Errorf("column index %d of %d: %w", sourceIndex, len(b.columnOrder), ErrIndexOutOfRange)
	}

	id := b.columnOrder[sourceIndex]
	b.columnOrder = slices.Delete(b.columnOrder, sourceIndex, sourceIndex+1)
	b.columnOrder = insertClamped(b.columnOrder, destIndex, id)
	return id, nil
}

// Validate checks referential integrity. Label references are only
// checked when labels is non-nil.
func (b *Board) Validate(labels LabelLookup) error {
	if len(b.columnOrder) != len(b.columns) {
		return fmt.Errorf("column order has %d entries for %d columns: %w",
			len(b.columnOrder), len(b.columns), ErrValidation)
	}
	seenCols := make(map[ColumnID]bool, len(b.columnOrder))
	for _, id := range b.columnOrder {
		if _, ok := b.columns[id]; !ok {
			return fmt.Errorf("column order references unknown column %q: %w", id, ErrValidation)
		}
		if seenCols[id] {
			return fmt.Errorf("column %q listed twice in column order: %w", id, ErrValidation)
		}
		seenCols[id] = true
	}

	owner := make(map[TaskID]ColumnID, len(b.tasks))
	for colID, col := range b.columns {
		if col.ID != colID {
			return fmt.Errorf("column keyed %q has id %q: %w", colID, col.ID, ErrValidation)
		}
		for _, id := range col.TaskIDs {
			if _, ok := b.tasks[id]; !ok {
				return fmt.Errorf("column %q references unknown task %q: %w", colID, id, ErrValidation)
			}
			if prev, dup := owner[id]; dup {
				return fmt.Errorf("task %q appears in %q and %q: %w", id, prev, colID, ErrValidation)
			}
			owner[id] = colID
		}
	}

	for id, t := range b.tasks {
		if t.ID != id {
			return fmt.Errorf("task keyed %q has id %q: %w", id, t.ID, ErrValidation)
		}
		if _, ok := owner[id]; !ok {
			return fmt.Errorf("task %q is not in any column: %w", id, ErrValidation)
		}
		seen := make(map[LabelID]bool, len(t.Labels))
		for _, l := range t.Labels {
			if seen[l] {
				return fmt.Errorf("task %q has label %q twice: %w", id, l, ErrValidation)
			}
			seen[l] = true
			if labels != nil && !labels.Has(l) {
				return fmt.Errorf("task %q references unknown label %q: %w", id, l, ErrValidation)
			}
		}
	}
	return nil
}

func (b *Board) nextTaskID() TaskID {
	for {
		b.taskSeq++
		id := TaskID(fmt.Sprintf("task-%d", b.taskSeq))
		if _, taken := b.tasks[id]; !taken {
			return id
		}
	}
}

func insertClamped[T any](s []T, i int, v T) []T {
	return slices.Insert(s, max(0, min(i, len(s))), v)
}
