package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/wordly/internal/errors"
)

func TestShow(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "Serendipity", "resilience")

	tests := []struct {
		name     string
		headword string
		want     string
		code     errors.ErrorCode
	}{
		{"exact", "resilience", "resilience", ""},
		{"case-insensitive", "serendipity", "Serendipity", ""},
		{"surrounding space", "  RESILIENCE ", "resilience", ""},
		{"missing", "ephemeral", "", errors.ErrNotFound},
		{"blank", "  ", "", errors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Show(context.Background(), store, ShowInput{Headword: tt.headword})
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Fatalf("err = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Show failed: %v", err)
			}
			if w.Word != tt.want {
				t.Errorf("Word = %q, want %q", w.Word, tt.want)
			}
		})
	}
}

func TestShow_ExactSpellingFirst(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "Polish", "polish")

	for _, headword := range []string{"Polish", "polish"} {
		w, err := Show(context.Background(), store, ShowInput{Headword: headword})
		if err != nil {
			t.Fatalf("Show(%q) failed: %v", headword, err)
		}
		if w.Word != headword {
			t.Errorf("Show(%q) = %q, want %q", headword, w.Word, headword)
		}
	}

	w, err := Show(context.Background(), store, ShowInput{Headword: "POLISH"})
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if w.Word != "polish" {
		t.Errorf("Show(POLISH) = %q, want most recent %q", w.Word, "polish")
	}
}
