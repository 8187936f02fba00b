package word

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// TimeFormat is the layout of Word.Date. Fixed width and UTC, so dates sort as strings.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Word is one vocabulary record: produced by a fetch, persisted in history.
type Word struct {
	// ID is a ULID identifying the fetch that produced this record, not the headword
	ID string `json:"id"`

	// Word is the headword
	Word string `json:"word"`

	// Definition is the first definition of the first meaning
	Definition string `json:"definition"`

	// Example is a usage example for Definition (nullable)
	Example *string `json:"example"`

	// PartOfSpeech is the part of speech of the first meaning (nullable)
	PartOfSpeech *string `json:"partOfSpeech"`

	// Phonetic is the phonetic transcription (nullable)
	Phonetic *string `json:"phonetic"`

	// Date is when the record was acquired, formatted with TimeFormat
	Date string `json:"date"`
}

// NewID generates a new ULID.
func NewID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Timestamp formats t as a Word.Date value.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// ParseDate parses a Word.Date value.
// RFC 3339 strings written by other tools are accepted as well.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// OptionalString returns a pointer to s, or nil when s is blank.
func OptionalString(s string) *string {
	s = CollapseSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
