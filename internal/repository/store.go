package repository

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"boardy/internal/model"
	"boardy/internal/notify"
)

// Store owns the single in-memory board and label registry of a session.
// Requests are applied one at a time in arrival order.
type Store struct {
	mu       sync.Mutex
	board    *model.Board
	labels   *model.LabelRegistry
	notifier notify.Notifier
	logger   log.FieldLogger
}

func NewStore(board *model.Board, labels *model.LabelRegistry, notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Store{
		board:    board,
		labels:   labels,
		notifier: notifier,
		logger:   log.StandardLogger(),
	}
}

// NewSeededStore starts a session from the default seed with no labels.
func NewSeededStore(notifier notify.Notifier) (*Store, error) {
	board, err := model.NewBoard(model.DefaultSeed())
	if err != nil {
		return nil, err
	}
	return NewStore(board, model.NewLabelRegistry(), notifier), nil
}

// SetLogger replaces the logger used for notifier failures.
func (s *Store) SetLogger(logger log.FieldLogger) {
	s.logger = logger
}

func (s *Store) read(ctx context.Context, fn func(b *model.Board, l *model.LabelRegistry) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.board, s.labels)
}

// write runs fn under the lock and publishes the notice it returns, if any.
// Notices are published before the lock is released so they leave in mutation order.
func (s *Store) write(ctx context.Context, fn func(b *model.Board, l *model.LabelRegistry) (*notify.Notice, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notice, err := fn(s.board, s.labels)
	if notice != nil {
		s.publish(ctx, *notice)
	}
	return err
}

// publish delivers n even if the request context is cancelled once the mutation has landed.
func (s *Store) publish(ctx context.Context, n notify.Notice) {
	if err := s.notifier.Notify(context.WithoutCancel(ctx), n); err != nil {
		s.logger.WithFields(log.Fields{
			"kind":    n.Kind,
			"subject": n.Subject,
		}).WithError(err).Warn("failed to deliver notice")
	}
}

func failure(kind, subject string, err error) *notify.Notice {
	n := notify.Failure(kind, subject, err.Error())
	return &n
}

func success(kind, subject, message string) *notify.Notice {
	n := notify.Success(kind, subject, message)
	return &n
}
