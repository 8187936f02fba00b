package ops

import (
	"context"
	"testing"
)

func TestLatest_Empty(t *testing.T) {
	out, err := Latest(context.Background(), newTestStore(t))
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if out.Item != nil {
		t.Errorf("Item = %+v, want nil", out.Item)
	}
}

func TestLatest_MostRecent(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "first", "second")

	out, err := Latest(context.Background(), store)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if out.Item == nil || out.Item.Word != "second" {
		t.Errorf("Item = %+v, want 'second'", out.Item)
	}
}
