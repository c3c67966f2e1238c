package repository

import (
	"context"
	"errors"

	"boardy/internal/model"
	"boardy/internal/notify"
)

type LabelRepository struct {
	store *Store
}

func NewLabelRepository(store *Store) *LabelRepository {
	return &LabelRepository{store: store}
}

// Create adds a new label to the registry
func (r *LabelRepository) Create(ctx context.Context, name, color string) (model.Label, error) {
	var label model.Label
	err := r.store.write(ctx, func(_ *model.Board, l *model.LabelRegistry) (*notify.Notice, error) {
		var err error
		label, err = l.Add(name, color)
		if errors.Is(err, model.ErrValidation) {
			n := notify.Failure(notify.KindLabelAdded, "", "Please enter a label name")
			return &n, err
		}
		if err != nil {
			return failure(notify.KindLabelAdded, "", err), err
		}
		return success(notify.KindLabelAdded, string(label.ID), "Label added successfully!"), nil
	})
	return label, err
}

// GetByID retrieves a label by its ID
func (r *LabelRepository) GetByID(ctx context.Context, id model.LabelID) (model.Label, error) {
	var label model.Label
	err := r.store.read(ctx, func(_ *model.Board, l *model.LabelRegistry) error {
		var err error
		label, err = l.Get(id)
		return err
	})
	return label, err
}

// List returns all labels in creation order
func (r *LabelRepository) List(ctx context.Context) ([]model.Label, error) {
	var labels []model.Label
	err := r.store.read(ctx, func(_ *model.Board, l *model.LabelRegistry) error {
		labels = l.List()
		return nil
	})
	return labels, err
}
