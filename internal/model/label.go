package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// DefaultLabelColor is used when a label is created without a color.
const DefaultLabelColor = "#9b87f5"

type Label struct {
	ID    LabelID `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
}

// LabelLookup reports whether a label id is known.
type LabelLookup interface {
	Has(id LabelID) bool
}

// LabelRegistry holds user-defined labels in insertion order.
// Labels are append-only: once added they are never changed or removed.
type LabelRegistry struct {
	labels []Label
	index  map[LabelID]int
	newID  func() LabelID
}

func NewLabelRegistry() *LabelRegistry {
	return &LabelRegistry{
		index: make(map[LabelID]int),
		newID: func() LabelID { return LabelID(uuid.NewString()) },
	}
}

// Add validates name, assigns a fresh id and appends the label.
func (r *LabelRegistry) Add(name, color string) (Label, error) {
	if strings.TrimSpace(name) == "" {
		return Label{}, fmt.Errorf("label name is required: %w", ErrValidation)
	}
	if strings.TrimSpace(color) == "" {
		color = DefaultLabelColor
	}

	id := r.newID()
	for r.Has(id) {
		id = r.newID()
	}

	label := Label{ID: id, Name: name, Color: color}
	r.index[id] = len(r.labels)
	r.labels = append(r.labels, label)
	return label, nil
}

// List returns a copy of all labels in insertion order.
func (r *LabelRegistry) List() []Label {
	return slices.Clone(r.labels)
}

func (r *LabelRegistry) Get(id LabelID) (Label, error) {
	i, ok := r.index[id]
	if !ok {
		return Label{}, fmt.Errorf("label %q: %w", id, ErrNotFound)
	}
	return r.labels[i], nil
}

func (r *LabelRegistry) Has(id LabelID) bool {
	_, ok := r.index[id]
	return ok
}

func (r *LabelRegistry) Len() int {
	return len(r.labels)
}

// Resolve maps ids to labels, skipping unknown ones.
func (r *LabelRegistry) Resolve(ids []LabelID) []Label {
	out := make([]Label, 0, len(ids))
	for _, id := range ids {
		if i, ok := r.index[id]; ok {
			out = append(out, r.labels[i])
		}
	}
	return out
}
