package ops

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hpungsan/wordly/internal/db"
	"github.com/hpungsan/wordly/internal/errors"
	"github.com/hpungsan/wordly/internal/history"
	"github.com/hpungsan/wordly/internal/logging"
	"github.com/hpungsan/wordly/internal/word"
)

// fakeSource hands out words from a queue and defines anything in defs.
type fakeSource struct {
	queue []string
	next  int
	defs  map[string]string
	clock time.Time
}

func (f *fakeSource) record(headword, definition string) *word.Word {
	f.clock = f.clock.Add(time.Second)
	return &word.Word{
		ID:         fmt.Sprintf("id-%d", f.clock.Unix()),
		Word:       headword,
		Definition: definition,
		Date:       word.Timestamp(f.clock),
	}
}

func (f *fakeSource) RandomWord(_ context.Context) *word.Word {
	headword := f.queue[f.next%len(f.queue)]
	f.next++
	return f.record(headword, "definition of "+headword)
}

func (f *fakeSource) Define(_ context.Context, headword string) (*word.Word, error) {
	def, ok := f.defs[headword]
	if !ok {
		return nil, errors.NewNotFound(headword)
	}
	return f.record(headword, def), nil
}

func newFakeSource(queue ...string) *fakeSource {
	return &fakeSource{
		queue: queue,
		defs:  map[string]string{"ubiquitous": "Present everywhere."},
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestStore(t *testing.T) *history.Store {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return history.New(db.NewKV(database), history.WithLogger(logging.Discard()))
}

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Save(context.Context, *word.Word) error {
	return errors.NewStorage("write", fmt.Errorf("disk full"))
}

func (brokenStore) List(context.Context) ([]word.Word, error) {
	return nil, errors.NewStorage("read", fmt.Errorf("disk gone"))
}

func (brokenStore) Clear(context.Context) error {
	return errors.NewStorage("clear", fmt.Errorf("disk gone"))
}

func seed(t *testing.T, store HistoryStore, headwords ...string) {
	t.Helper()
	src := newFakeSource(headwords...)
	for range headwords {
		if _, err := Today(context.Background(), src, store, TodayInput{}); err != nil {
			t.Fatalf("Today failed: %v", err)
		}
	}
}
