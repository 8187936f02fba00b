package ops

import (
	"context"

	"github.com/hpungsan/wordly/internal/word"
)

// TodayInput contains parameters for the Today operation.
type TodayInput struct {
	NoSave bool `json:"no_save"`
}

// TodayOutput contains the result of the Today operation.
type TodayOutput struct {
	Word  *word.Word `json:"word"`
	Saved bool       `json:"saved"`
}

// Today fetches a random word and records it in history.
// A save failure is returned alongside the fetched word so callers can still show it.
func Today(ctx context.Context, src WordSource, store HistoryStore, input TodayInput) (*TodayOutput, error) {
	w := src.RandomWord(ctx)
	out := &TodayOutput{Word: w}

	if input.NoSave {
		return out, nil
	}
	if err := store.Save(ctx, w); err != nil {
		return out, err
	}
	out.Saved = true
	return out, nil
}
