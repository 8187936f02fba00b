package ops

import (
	"context"
	"fmt"
)

// ClearOutput contains the result of the Clear operation.
type ClearOutput struct {
	Cleared int    `json:"cleared"`
	Message string `json:"message"`
}

// Clear removes all saved words.
func Clear(ctx context.Context, store HistoryStore) (*ClearOutput, error) {
	list, err := store.List(ctx)
	if err != nil {
		// Unreadable history can still be cleared.
		list = nil
	}
	if err := store.Clear(ctx); err != nil {
		return nil, err
	}

	count := len(list)
	return &ClearOutput{
		Cleared: count,
		Message: formatClearMessage(count),
	}, nil
}

func formatClearMessage(count int) string {
	switch count {
	case 0:
		return "History cleared"
	case 1:
		return "Cleared 1 word from history"
	default:
		return fmt.Sprintf("Cleared %d words from history", count)
	}
}
