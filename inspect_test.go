// inspect_test.go — predicates, extraction, and root-cause traversal.
package trailhound

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsChain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("plain"), false},
		{"chain", Custom("boom"), true},
		{"wrapped chain", fmt.Errorf("outer: %w", Custom("boom")), true},
		{"converted foreign", Here(errors.New("x"), "at site"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsChain(tc.err); got != tc.want {
				t.Fatalf("IsChain(%v): want=%v got=%v", tc.err, tc.want, got)
			}
		})
	}
}

func TestAsChain(t *testing.T) {
	t.Parallel()

	if ch, ok := AsChain(nil); ok || ch != nil {
		t.Fatal("AsChain(nil) must report absence")
	}
	if _, ok := AsChain(errors.New("plain")); ok {
		t.Fatal("AsChain must not match foreign errors")
	}

	want := New("inner")
	got, ok := AsChain(fmt.Errorf("outer: %w", want))
	if !ok || got != want {
		t.Fatalf("AsChain through a wrapper: want=%p got=%p ok=%v", want, got, ok)
	}
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		if RootCause(nil) != nil {
			t.Fatal("RootCause(nil) must be nil")
		}
	})

	t.Run("foreign origin", func(t *testing.T) {
		origin := errors.New("the bottom")
		var err error = Here(origin, "first sight")
		err = Examine(err, "mid")
		err = Examine(err, "top")
		if got := RootCause(err); got != origin {
			t.Fatalf("root cause: want=%v got=%v", origin, got)
		}
	})

	t.Run("custom origin is its own root", func(t *testing.T) {
		err := Custom("synthesized")
		if got := RootCause(err); got != err {
			t.Fatalf("root cause: want the chain itself, got %v", got)
		}
	})

	t.Run("absence unwraps to sentinel", func(t *testing.T) {
		_, err := Present(0, false, "nothing here")
		if got := RootCause(err); got != ErrNoValue {
			t.Fatalf("root cause: want ErrNoValue, got %v", got)
		}
	})
}
