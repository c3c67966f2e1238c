// Package dragdrop turns the end state of a drag gesture into a board move.
package dragdrop

import (
	"fmt"

	"boardy/internal/model"
)

// Drop types reported by the drag-capture mechanism.
const (
	TypeTask   = "DEFAULT"
	TypeColumn = "COLUMN"

	ReasonCancel = "CANCEL"
)

// Location is a position inside a droppable area.
type Location struct {
	DroppableID string `json:"droppableId"`
	Index       int    `json:"index"`
}

// DropResult is the terminal signal of a drag gesture.
// A nil Destination means the item was dropped outside any column.
type DropResult struct {
	DraggableID string    `json:"draggableId"`
	Type        string    `json:"type"`
	Reason      string    `json:"reason"`
	Source      Location  `json:"source"`
	Destination *Location `json:"destination"`
}

type Outcome int

const (
	// Discarded means the gesture was cancelled or had no destination.
	Discarded Outcome = iota
	// Unchanged means the item was dropped where it started.
	Unchanged
	// Moved means exactly one item changed position.
	Moved
)

func (o Outcome) String() string {
	switch o {
	case Discarded:
		return "discarded"
	case Unchanged:
		return "unchanged"
	case Moved:
		return "moved"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Board is the part of the board model a drop can touch.
type Board interface {
	Column(id model.ColumnID) (model.Column, error)
	ColumnOrder() []model.ColumnID
	MoveTask(source model.ColumnID, sourceIndex int, dest model.ColumnID, destIndex int) (model.TaskID, error)
	MoveColumn(sourceIndex, destIndex int) (model.ColumnID, error)
}

// OnDragEnd applies at most one move for a completed gesture. It holds no
// state of its own; a rejected drop leaves the board untouched.
func OnDragEnd(b Board, r DropResult) (Outcome, error) {
	if r.Destination == nil || r.Reason == ReasonCancel {
		return Discarded, nil
	}
	dest := *r.Destination
	if dest.DroppableID == r.Source.DroppableID && dest.Index == r.Source.Index {
		return Unchanged, nil
	}

	if r.Type == TypeColumn {
		if err := expectAt(b.ColumnOrder(), r.Source.Index, r.DraggableID); err != nil {
			return Discarded, err
		}
		if _, err := b.MoveColumn(r.Source.Index, dest.Index); err != nil {
			return Discarded, err
		}
		return Moved, nil
	}

	source := model.ColumnID(r.Source.DroppableID)
	col, err := b.Column(source)
	if err != nil {
		return Discarded, err
	}
	if err := expectAt(col.TaskIDs, r.Source.Index, r.DraggableID); err != nil {
		return Discarded, err
	}
	if _, err := b.MoveTask(source, r.Source.Index, model.ColumnID(dest.DroppableID), dest.Index); err != nil {
		return Discarded, err
	}
	return Moved, nil
}

// expectAt rejects drops whose dragged id no longer sits at the source
// index. Out-of-range indexes are left for the move itself to report.
func expectAt[T ~string](ids []T, i int, want string) error {
	if want == "" || i < 0 || i >= len(ids) {
		return nil
	}
	if got := string(ids[i]); got != want {
		return fmt.Errorf("index %d holds %q, not dragged %q: %w", i, got, want, model.ErrIndexOutOfRange)
	}
	return nil
}
