package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/wordly/internal/errors"
)

func TestClear(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "a", "b")

	out, err := Clear(context.Background(), store)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if out.Cleared != 2 {
		t.Errorf("Cleared = %d, want 2", out.Cleared)
	}
	if out.Message != "Cleared 2 words from history" {
		t.Errorf("Message = %q", out.Message)
	}

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len(history) = %d, want 0", len(list))
	}
}

func TestClear_Empty(t *testing.T) {
	out, err := Clear(context.Background(), newTestStore(t))
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if out.Cleared != 0 || out.Message != "History cleared" {
		t.Errorf("out = %+v", out)
	}
}

func TestClear_StorageFailure(t *testing.T) {
	_, err := Clear(context.Background(), brokenStore{})
	if !errors.Is(err, errors.ErrStorage) {
		t.Fatalf("err = %v, want STORAGE_FAILURE", err)
	}
}

func TestFormatClearMessage(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "History cleared"},
		{1, "Cleared 1 word from history"},
		{7, "Cleared 7 words from history"},
	}
	for _, tt := range tests {
		if got := formatClearMessage(tt.count); got != tt.want {
			t.Errorf("formatClearMessage(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}
