package repository

import (
	"context"
	"fmt"

	"boardy/internal/dragdrop"
	"boardy/internal/model"
	"boardy/internal/notify"
)

// BoardSnapshot is the full session state as rendered by the view layer.
type BoardSnapshot struct {
	model.Snapshot
	Labels []model.Label `json:"labels"`
}

// ColumnDetails is a column with its tasks resolved in display order.
type ColumnDetails struct {
	ID    model.ColumnID
	Title string
	Tasks []TaskDetails
}

type BoardRepository struct {
	store *Store
}

func NewBoardRepository(store *Store) *BoardRepository {
	return &BoardRepository{store: store}
}

// Snapshot returns a deep copy of the board and label registry.
func (r *BoardRepository) Snapshot(ctx context.Context) (BoardSnapshot, error) {
	var snap BoardSnapshot
	err := r.store.read(ctx, func(b *model.Board, l *model.LabelRegistry) error {
		snap = BoardSnapshot{Snapshot: b.Snapshot(), Labels: l.List()}
		return nil
	})
	return snap, err
}

// Columns returns the columns in display order with their tasks.
func (r *BoardRepository) Columns(ctx context.Context) ([]ColumnDetails, error) {
	var out []ColumnDetails
	err := r.store.read(ctx, func(b *model.Board, l *model.LabelRegistry) error {
		for _, col := range b.Columns() {
			details := ColumnDetails{ID: col.ID, Title: col.Title, Tasks: make([]TaskDetails, 0, len(col.TaskIDs))}
			for i, id := range col.TaskIDs {
				task, err := b.Task(id)
				if err != nil {
					return err
				}
				details.Tasks = append(details.Tasks, newTaskDetails(task, col.ID, i, l))
			}
			out = append(out, details)
		}
		return nil
	})
	return out, err
}

// ApplyDrop runs the drag-end reducer against the session board.
func (r *BoardRepository) ApplyDrop(ctx context.Context, result dragdrop.DropResult) (dragdrop.Outcome, error) {
	var outcome dragdrop.Outcome
	kind := notify.KindTaskMoved
	if result.Type == dragdrop.TypeColumn {
		kind = notify.KindColumnMoved
	}

	err := r.store.write(ctx, func(b *model.Board, _ *model.LabelRegistry) (*notify.Notice, error) {
		var err error
		outcome, err = dragdrop.OnDragEnd(b, result)
		if err != nil {
			return failure(kind, result.DraggableID, err), fmt.Errorf("apply drop: %w", err)
		}
		if outcome != dragdrop.Moved {
			return nil, nil
		}
		return success(kind, result.DraggableID, "Moved successfully!"), nil
	})
	return outcome, err
}
