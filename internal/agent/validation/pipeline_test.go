package validation

import (
	"reflect"
	"testing"
)

func TestListPrefixValidator(t *testing.T) {
	v := NewListPrefixValidator()

	tests := []struct {
		name      string
		line      string
		valid     bool
		corrected string
		drop      bool
	}{
		{name: "clean", line: "Dune by Frank Herbert", valid: true},
		{name: "numbered dot", line: "1. Dune by Frank Herbert", corrected: "Dune by Frank Herbert"},
		{name: "numbered paren", line: "2) Dune by Frank Herbert", corrected: "Dune by Frank Herbert"},
		{name: "dash bullet", line: "- Dune by Frank Herbert", corrected: "Dune by Frank Herbert"},
		{name: "dot bullet", line: "• Dune by Frank Herbert", corrected: "Dune by Frank Herbert"},
		{name: "star bullet", line: "* Dune by Frank Herbert", corrected: "Dune by Frank Herbert"},
		{name: "markdown emphasis kept", line: "*Dune* by Frank Herbert", valid: true},
		{name: "trailing carriage return", line: "Dune by Frank Herbert\r", corrected: "Dune by Frank Herbert"},
		{name: "title starting with digits", line: "1984 by George Orwell", valid: true},
		{name: "prefix only", line: "3.", drop: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.line)
			if got.IsValid != tt.valid {
				t.Fatalf("Validate(%q).IsValid = %v, want %v", tt.line, got.IsValid, tt.valid)
			}
			if got.Corrected != tt.corrected {
				t.Fatalf("Validate(%q).Corrected = %q, want %q", tt.line, got.Corrected, tt.corrected)
			}
			if got.Drop != tt.drop {
				t.Fatalf("Validate(%q).Drop = %v, want %v", tt.line, got.Drop, tt.drop)
			}
		})
	}
}

func TestExtractTitleAuthor(t *testing.T) {
	tests := []struct {
		line   string
		want   TitleAuthor
		wantOK bool
	}{
		{line: "Dune by Frank Herbert", want: TitleAuthor{Title: "Dune", Author: "Frank Herbert"}, wantOK: true},
		{line: "Stand by Me by Stephen King", want: TitleAuthor{Title: "Stand by Me", Author: "Stephen King"}, wantOK: true},
		{line: "Dune", wantOK: false},
		{line: " by Frank Herbert", wantOK: false},
		{line: "Here are some recommendations:", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ExtractTitleAuthor(tt.line)
		if ok != tt.wantOK {
			t.Fatalf("ExtractTitleAuthor(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
		}
		if ok && got != tt.want {
			t.Fatalf("ExtractTitleAuthor(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestDefaultPipeline_Apply(t *testing.T) {
	lines := []string{
		"Here are three books you might enjoy:",
		"1. Sapiens by Yuval Noah Harari",
		"2. Educated by Tara Westover",
		"- Thinking, Fast and Slow by Daniel Kahneman",
		"3.",
	}
	want := []string{
		"Sapiens by Yuval Noah Harari",
		"Educated by Tara Westover",
		"Thinking, Fast and Slow by Daniel Kahneman",
	}

	got := DefaultPipeline().Apply(lines)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply() = %q, want %q", got, want)
	}
}

func TestPipeline_NoValidatorsPassesThrough(t *testing.T) {
	lines := []string{"1. anything", "  goes  "}

	got := NewPipeline().Apply(lines)
	if !reflect.DeepEqual(got, lines) {
		t.Fatalf("Apply() = %q, want %q", got, lines)
	}

	if empty := NewPipeline().Apply(nil); empty == nil {
		t.Fatalf("Apply(nil) returned nil")
	}
}
