package ops

import (
	"context"

	"github.com/hpungsan/wordly/internal/word"
)

// DefineInput contains parameters for the Define operation.
type DefineInput struct {
	Headword string `json:"headword"`
	Save     bool   `json:"save"`
}

// DefineOutput contains the result of the Define operation.
type DefineOutput struct {
	Word  *word.Word `json:"word"`
	Saved bool       `json:"saved"`
}

// Define looks up a specific headword, optionally recording it in history.
func Define(ctx context.Context, src WordSource, store HistoryStore, input DefineInput) (*DefineOutput, error) {
	w, err := src.Define(ctx, input.Headword)
	if err != nil {
		return nil, err
	}
	out := &DefineOutput{Word: w}

	if !input.Save {
		return out, nil
	}
	if err := store.Save(ctx, w); err != nil {
		return out, err
	}
	out.Saved = true
	return out, nil
}
