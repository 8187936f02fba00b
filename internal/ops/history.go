package ops

import (
	"context"

	"github.com/hpungsan/wordly/internal/word"
)

// HistoryInput contains parameters for the History operation.
type HistoryInput struct {
	Limit  int `json:"limit"`  // 0 returns everything from Offset on
	Offset int `json:"offset"` // default: 0
}

// HistoryOutput contains the result of the History operation.
type HistoryOutput struct {
	Items      []word.Word `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// History returns saved words, most recent first.
func History(ctx context.Context, store HistoryStore, input HistoryInput) (*HistoryOutput, error) {
	all, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	total := len(all)

	// Ensure offset is non-negative
	offset := min(max(input.Offset, 0), total)

	// An explicit limit is capped; zero means the rest of the list
	limit := min(input.Limit, MaxHistoryLimit)
	if limit <= 0 {
		limit = total - offset
	}
	end := min(offset+limit, total)

	items := all[offset:end]
	if items == nil {
		items = []word.Word{}
	}

	return &HistoryOutput{
		Items: items,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: end < total,
			Total:   total,
		},
	}, nil
}
