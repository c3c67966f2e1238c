package repository

import (
	"context"

	"boardy/internal/model"
	"boardy/internal/notify"
)

// TaskDetails is a task together with its position and resolved labels.
type TaskDetails struct {
	ID       model.TaskID
	Title    string
	ColumnID model.ColumnID
	Position int
	Labels   []model.Label
}

func newTaskDetails(t model.Task, columnID model.ColumnID, position int, labels *model.LabelRegistry) TaskDetails {
	return TaskDetails{
		ID:       t.ID,
		Title:    t.Title,
		ColumnID: columnID,
		Position: position,
		Labels:   labels.Resolve(t.Labels),
	}
}

type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

// details must be called with the store lock held
func details(b *model.Board, l *model.LabelRegistry, id model.TaskID) (TaskDetails, error) {
	task, err := b.Task(id)
	if err != nil {
		return TaskDetails{}, err
	}
	colID, pos, _ := b.ColumnOf(id)
	return newTaskDetails(task, colID, pos, l), nil
}

// GetByID retrieves a task with its column and labels
func (r *TaskRepository) GetByID(ctx context.Context, id model.TaskID) (TaskDetails, error) {
	var out TaskDetails
	err := r.store.read(ctx, func(b *model.Board, l *model.LabelRegistry) error {
		var err error
		out, err = details(b, l, id)
		return err
	})
	return out, err
}

// Create adds a new task to the end of the column
func (r *TaskRepository) Create(ctx context.Context, columnID model.ColumnID) (TaskDetails, error) {
	var out TaskDetails
	err := r.store.write(ctx, func(b *model.Board, l *model.LabelRegistry) (*notify.Notice, error) {
		id, err := b.AddTask(columnID)
		if err != nil {
			return failure(notify.KindTaskAdded, string(columnID), err), err
		}
		out, err = details(b, l, id)
		if err != nil {
			return nil, err
		}
		return success(notify.KindTaskAdded, string(id), "Task added successfully!"), nil
	})
	return out, err
}

// UpdateTitle renames a task
func (r *TaskRepository) UpdateTitle(ctx context.Context, id model.TaskID, title string) (TaskDetails, error) {
	var out TaskDetails
	err := r.store.write(ctx, func(b *model.Board, l *model.LabelRegistry) (*notify.Notice, error) {
		if err := b.EditTaskTitle(id, title); err != nil {
			return failure(notify.KindTaskEdited, string(id), err), err
		}
		var err error
		out, err = details(b, l, id)
		if err != nil {
			return nil, err
		}
		return success(notify.KindTaskEdited, string(id), "Task updated successfully!"), nil
	})
	return out, err
}

// Delete removes a task and its column reference
func (r *TaskRepository) Delete(ctx context.Context, id model.TaskID) error {
	return r.store.write(ctx, func(b *model.Board, _ *model.LabelRegistry) (*notify.Notice, error) {
		if err := b.DeleteTask(id); err != nil {
			return failure(notify.KindTaskDeleted, string(id), err), err
		}
		return success(notify.KindTaskDeleted, string(id), "Task deleted successfully!"), nil
	})
}

// AddLabel attaches a registry label to a task. Attaching a label the task
// already carries changes nothing and publishes nothing.
func (r *TaskRepository) AddLabel(ctx context.Context, taskID model.TaskID, labelID model.LabelID) (TaskDetails, error) {
	var out TaskDetails
	err := r.store.write(ctx, func(b *model.Board, l *model.LabelRegistry) (*notify.Notice, error) {
		attached, err := b.AttachLabel(taskID, labelID, l)
		if err != nil {
			return failure(notify.KindLabelAttached, string(taskID), err), err
		}
		out, err = details(b, l, taskID)
		if err != nil || !attached {
			return nil, err
		}
		return success(notify.KindLabelAttached, string(taskID), "Label attached successfully!"), nil
	})
	return out, err
}
