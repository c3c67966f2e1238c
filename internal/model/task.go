package model

import "slices"

type Task struct {
	ID     TaskID    `json:"id"`
	Title  string    `json:"title"`
	Labels []LabelID `json:"labels"`
}

func NewTask(id TaskID, title string) *Task {
	return &Task{ID: id, Title: title, Labels: []LabelID{}}
}

func (t *Task) HasLabel(id LabelID) bool {
	return slices.Contains(t.Labels, id)
}

func (t *Task) copy() Task {
	out := *t
	out.Labels = append([]LabelID{}, t.Labels...)
	return out
}
