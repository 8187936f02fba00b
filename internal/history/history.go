// Package history persists viewed words as one most-recent-first list,
// de-duplicated by headword.
package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/hpungsan/wordly/internal/errors"
	"github.com/hpungsan/wordly/internal/word"
)

// Key is the key the serialized history list is stored under.
const Key = "word_history"

// KV is a string-valued key-value store.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes the history list.
//
// Save is a read-modify-write of the whole list. The mutex serializes operations on one
// Store; two Stores (or processes) writing the same medium can still lose an update.
type Store struct {
	kv  KV
	now func() time.Time
	log *slog.Logger
	mu  sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to restamp re-saved headwords.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a Store over kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		now: time.Now,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save records w. An existing entry with the same headword is replaced in place and
// restamped with the current time; otherwise w is inserted at the front.
func (s *Store) Save(ctx context.Context, w *word.Word) error {
	if w == nil {
		return errors.NewInvalidRequest("word is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}

	list = upsert(list, *w, s.now())

	data, err := json.Marshal(list)
	if err != nil {
		return s.fail("encode", err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return s.fail("write", err)
	}
	return nil
}

// List returns the stored history, most recent first. It is never nil.
func (s *Store) List(ctx context.Context) ([]word.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Clear deletes all history.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, Key); err != nil {
		return s.fail("clear", err)
	}
	return nil
}

// load reads and decodes the list. Callers hold s.mu.
func (s *Store) load(ctx context.Context) ([]word.Word, error) {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return nil, s.fail("read", err)
	}
	if !ok || raw == "" {
		return []word.Word{}, nil
	}

	var list []word.Word
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, s.fail("parse", err)
	}
	if list == nil {
		list = []word.Word{}
	}
	return list, nil
}

func (s *Store) fail(op string, err error) error {
	s.log.Error("history "+op+" failed", "error", err)
	return errors.NewStorage(op, err)
}

// upsert applies the save rule to list and returns the result.
func upsert(list []word.Word, w word.Word, now time.Time) []word.Word {
	for i := range list {
		if list[i].Word == w.Word {
			w.Date = word.Timestamp(now)
			list[i] = w
			return list
		}
	}
	return append([]word.Word{w}, list...)
}
