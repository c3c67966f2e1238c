// Package notify carries operation outcomes to whatever presents them.
package notify

import (
	"context"
	"errors"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice describes the outcome of one board or label operation.
type Notice struct {
	Level   Level     `json:"level"`
	Kind    string    `json:"kind"`
	Subject string    `json:"subject,omitempty"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notice kinds.
const (
	KindTaskAdded     = "task.added"
	KindTaskDeleted   = "task.deleted"
	KindTaskEdited    = "task.edited"
	KindTaskMoved     = "task.moved"
	KindColumnMoved   = "column.moved"
	KindLabelAdded    = "label.added"
	KindLabelAttached = "label.attached"
)

func Success(kind, subject, message string) Notice {
	return Notice{Level: LevelSuccess, Kind: kind, Subject: subject, Message: message, At: time.Now().UTC()}
}

func Failure(kind, subject, message string) Notice {
	return Notice{Level: LevelError, Kind: kind, Subject: subject, Message: message, At: time.Now().UTC()}
}

// Notifier delivers notices. Implementations must not block for long:
// callers publish right after a mutation.
type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

// Multi delivers each notice to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notice) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop drops every notice.
type Nop struct{}

func (Nop) Notify(context.Context, Notice) error { return nil }
