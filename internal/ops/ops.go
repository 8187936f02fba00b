package ops

import (
	"context"

	"github.com/hpungsan/wordly/internal/word"
)

// MaxHistoryLimit caps an explicit history page size.
const MaxHistoryLimit = 500

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// WordSource produces word records.
type WordSource interface {
	// RandomWord never fails; lookup problems yield a fallback record.
	RandomWord(ctx context.Context) *word.Word
	// Define looks up a specific headword and reports failure.
	Define(ctx context.Context, headword string) (*word.Word, error)
}

// HistoryStore persists viewed words.
type HistoryStore interface {
	Save(ctx context.Context, w *word.Word) error
	List(ctx context.Context) ([]word.Word, error)
	Clear(ctx context.Context) error
}
