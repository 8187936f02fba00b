// Package source produces word records: a random candidate looked up in the dictionary,
// or a pre-authored fallback when the lookup cannot produce a usable entry.
package source

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/hpungsan/wordly/internal/dictionary"
	"github.com/hpungsan/wordly/internal/errors"
	"github.com/hpungsan/wordly/internal/word"
	"github.com/hpungsan/wordly/internal/wordlist"
)

// Lookup queries a dictionary for a headword.
type Lookup interface {
	Lookup(ctx context.Context, headword string) ([]dictionary.Entry, error)
}

// Source produces word records.
type Source struct {
	lookup Lookup
	list   *wordlist.List
	log    *slog.Logger
	now    func() time.Time
	newID  func() (string, error)

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger that records swallowed lookup failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Source) { s.log = l }
}

// WithRand sets the random source used to pick candidates and fallbacks.
func WithRand(r *rand.Rand) Option {
	return func(s *Source) { s.rnd = r }
}

// WithClock overrides the time source for record dates.
func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

// WithIDGenerator overrides record ID generation.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Source) { s.newID = newID }
}

// New creates a Source. list must satisfy wordlist.List.Validate.
func New(lookup Lookup, list *wordlist.List, opts ...Option) *Source {
	s := &Source{
		lookup: lookup,
		list:   list,
		log:    slog.Default(),
		now:    time.Now,
		newID:  word.NewID,
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RandomWord looks up a random candidate headword. It never fails: any lookup or
// payload problem is logged and answered with a random fallback record.
// The returned record always carries a fresh ID and the current time.
func (s *Source) RandomWord(ctx context.Context) *word.Word {
	headword := s.list.Candidates[s.intN(len(s.list.Candidates))]

	w, err := s.fetch(ctx, headword)
	if err != nil {
		s.log.Warn("word lookup failed, using fallback", "word", headword, "error", err)
		fallback := s.list.Fallbacks[s.intN(len(s.list.Fallbacks))]
		w = fallback.Record("", "")
	}

	s.stamp(w)
	return w
}

// Define looks up a specific headword. Unlike RandomWord, failures are returned:
// NOT_FOUND when the dictionary has no usable entry, LOOKUP_FAILED otherwise.
func (s *Source) Define(ctx context.Context, headword string) (*word.Word, error) {
	headword = word.NormalizeHeadword(headword)
	if headword == "" {
		return nil, errors.NewInvalidRequest("headword is required")
	}

	w, err := s.fetch(ctx, headword)
	if err != nil {
		if stderrors.Is(err, dictionary.ErrNotFound) ||
			stderrors.Is(err, dictionary.ErrNoEntries) ||
			stderrors.Is(err, ErrUnusable) {
			return nil, errors.NewNotFound(headword)
		}
		return nil, errors.NewLookupFailed(headword, err)
	}

	s.stamp(w)
	return w, nil
}

func (s *Source) fetch(ctx context.Context, headword string) (*word.Word, error) {
	entries, err := s.lookup.Lookup(ctx, headword)
	if err != nil {
		return nil, err
	}
	return Normalize(entries)
}

// stamp assigns fetch identity. An ID generator failure is not fatal: the record is
// still usable, so a time-based ID is substituted.
func (s *Source) stamp(w *word.Word) {
	now := s.now()
	id, err := s.newID()
	if err != nil {
		s.log.Warn("id generation failed", "error", err)
		id = fmt.Sprintf("t%d", now.UnixNano())
	}
	w.ID = id
	w.Date = word.Timestamp(now)
}

func (s *Source) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// ErrUnusable is returned by Normalize when a payload has no usable meaning.
var ErrUnusable = stderrors.New("no usable meaning")

// Normalize converts a lookup payload into a record without ID or date. It uses the
// first entry's first meaning and that meaning's first definition and example.
func Normalize(entries []dictionary.Entry) (*word.Word, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries: %w", ErrUnusable)
	}
	entry := entries[0]

	headword := word.NormalizeHeadword(entry.Word)
	if headword == "" {
		return nil, fmt.Errorf("entry has no word: %w", ErrUnusable)
	}
	if len(entry.Meanings) == 0 {
		return nil, fmt.Errorf("%s: no meanings: %w", headword, ErrUnusable)
	}
	meaning := entry.Meanings[0]
	if len(meaning.Definitions) == 0 {
		return nil, fmt.Errorf("%s: no definitions: %w", headword, ErrUnusable)
	}
	def := meaning.Definitions[0]

	definition := strings.TrimSpace(def.Definition)
	if definition == "" {
		return nil, fmt.Errorf("%s: empty definition: %w", headword, ErrUnusable)
	}

	return &word.Word{
		Word:         headword,
		Definition:   definition,
		Example:      word.OptionalString(def.Example),
		PartOfSpeech: word.OptionalString(meaning.PartOfSpeech),
		Phonetic:     phonetic(entry),
	}, nil
}

// phonetic prefers the entry's own transcription, then the first non-blank alternative.
func phonetic(e dictionary.Entry) *string {
	if p := word.OptionalString(e.Phonetic); p != nil {
		return p
	}
	for _, ph := range e.Phonetics {
		if p := word.OptionalString(ph.Text); p != nil {
			return p
		}
	}
	return nil
}
