package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/wordly/internal/errors"
)

func TestDefine_WithoutSave(t *testing.T) {
	store := newTestStore(t)

	out, err := Define(context.Background(), newFakeSource("x"), store, DefineInput{Headword: "ubiquitous"})
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if out.Word.Definition != "Present everywhere." {
		t.Errorf("Definition = %q", out.Word.Definition)
	}
	if out.Saved {
		t.Error("Saved = true, want false")
	}

	list, _ := store.List(context.Background())
	if len(list) != 0 {
		t.Errorf("len(history) = %d, want 0", len(list))
	}
}

func TestDefine_Save(t *testing.T) {
	store := newTestStore(t)

	out, err := Define(context.Background(), newFakeSource("x"), store, DefineInput{Headword: "ubiquitous", Save: true})
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if !out.Saved {
		t.Error("Saved = false, want true")
	}

	list, _ := store.List(context.Background())
	if len(list) != 1 || list[0].Word != "ubiquitous" {
		t.Errorf("history = %+v, want [ubiquitous]", list)
	}
}

func TestDefine_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := Define(context.Background(), newFakeSource("x"), store, DefineInput{Headword: "qwxz", Save: true})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}

	list, _ := store.List(context.Background())
	if len(list) != 0 {
		t.Errorf("len(history) = %d, want 0", len(list))
	}
}
