package sanitize

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	decomposed := "Les Mise\u0301rables"
	composed := "Les Mis\u00e9rables"

	if got := Text(decomposed); got != composed {
		t.Fatalf("Text(%q) = %q, want %q", decomposed, got, composed)
	}
	if got := Text("  Dune  "); got != "  Dune  " {
		t.Fatalf("Text should not trim, got %q", got)
	}
}

func TestLines(t *testing.T) {
	in := []string{"Cafe\u0301 by Someone", "Dune by Frank Herbert"}
	want := []string{"Caf\u00e9 by Someone", "Dune by Frank Herbert"}

	if got := Lines(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	if got := Lines(nil); got != nil {
		t.Fatalf("Lines(nil) = %v, want nil", got)
	}
	if got := Lines([]string{}); got == nil || len(got) != 0 {
		t.Fatalf("Lines([]) = %v, want empty non-nil", got)
	}
}
