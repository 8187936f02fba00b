package ops

import (
	"context"

	"github.com/hpungsan/wordly/internal/errors"
	"github.com/hpungsan/wordly/internal/word"
)

// ShowInput contains parameters for the Show operation.
type ShowInput struct {
	Headword string `json:"headword"`
}

// Show returns the saved entry for a headword. An exact spelling wins;
// otherwise matching ignores case.
func Show(ctx context.Context, store HistoryStore, input ShowInput) (*word.Word, error) {
	headword := word.NormalizeHeadword(input.Headword)
	if headword == "" {
		return nil, errors.NewInvalidRequest("headword is required")
	}

	list, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Word == headword {
			return &list[i], nil
		}
	}
	for i := range list {
		if word.SameHeadword(list[i].Word, headword) {
			return &list[i], nil
		}
	}
	return nil, errors.NewNotFound(headword)
}
