package ops

import (
	"context"

	"github.com/hpungsan/wordly/internal/word"
)

// LatestOutput contains the result of the Latest operation.
type LatestOutput struct {
	Item *word.Word `json:"item"` // nil if history is empty
}

// Latest returns the most recently saved word.
func Latest(ctx context.Context, store HistoryStore) (*LatestOutput, error) {
	list, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return &LatestOutput{Item: nil}, nil
	}
	return &LatestOutput{Item: &list[0]}, nil
}
