package prompt

import (
	"strings"
	"testing"
)

func TestBuildAuthorPrompt(t *testing.T) {
	got := BuildAuthorPrompt("Dune")
	want := "\nWho is the author to the book \"Dune\". Print only the authors name and nothing else. Make sure it is not a complete sentence.\n\nAuthor:\n\n"

	if got != want {
		t.Fatalf("BuildAuthorPrompt(%q) =\n%q\nwant\n%q", "Dune", got, want)
	}
	if !strings.HasSuffix(got, AuthorPromptSuffix) {
		t.Fatalf("expected suffix %q, got %q", AuthorPromptSuffix, got)
	}
}

func TestBuildAuthorPrompt_Verbatim(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "empty", title: ""},
		{name: "percent sign", title: "100% Wrong"},
		{name: "quotes", title: `The "Real" Story`},
		{name: "surrounding spaces", title: "  Dune  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAuthorPrompt(tt.title)
			if !strings.Contains(got, `the book "`+tt.title+`".`) {
				t.Fatalf("title %q not embedded verbatim in %q", tt.title, got)
			}
			if !strings.HasSuffix(got, AuthorPromptSuffix) {
				t.Fatalf("expected suffix %q, got %q", AuthorPromptSuffix, got)
			}
		})
	}
}

func TestBuildRecommendationPrompt(t *testing.T) {
	got := BuildRecommendationPrompt([]string{"Dune by Frank Herbert", "1984 by George Orwell"})
	want := `
Give me a list of 3 good book recommendations that you think I would enjoy, based on the following data lists.

Favorite genres are:
Non-fiction

My favorite books are:
Dune by Frank Herbert
1984 by George Orwell

Make sure the list is not numbered, and should have no prefixes. The format of the list should look like:
{Book title} by {Author name}

Recommendations:

`

	if got != want {
		t.Fatalf("BuildRecommendationPrompt() =\n%q\nwant\n%q", got, want)
	}
}

func TestBuildRecommendationPrompt_FavoritesOnOwnLines(t *testing.T) {
	favorites := []string{"Dune by Frank Herbert", "Sapiens by Yuval Noah Harari", "Walden by Henry David Thoreau"}
	got := BuildRecommendationPrompt(favorites)
	lines := strings.Split(got, "\n")

	start := -1
	for i, line := range lines {
		if line == "My favorite books are:" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		t.Fatalf("favorites header missing from %q", got)
	}
	for i, fav := range favorites {
		if lines[start+i] != fav {
			t.Fatalf("line %d = %q, want %q", start+i, lines[start+i], fav)
		}
	}
}

func TestBuildRecommendationPrompt_BoilerplateIndependentOfFavorites(t *testing.T) {
	a := BuildRecommendationPrompt([]string{"Dune by Frank Herbert"})
	b := BuildRecommendationPrompt([]string{"Something else by Someone"})

	strip := func(s, fav string) string {
		return strings.Replace(s, fav, "", 1)
	}
	if strip(a, "Dune by Frank Herbert") != strip(b, "Something else by Someone") {
		t.Fatalf("boilerplate differs between prompts:\n%q\n%q", a, b)
	}
}

func TestBuildRecommendationPrompt_Empty(t *testing.T) {
	got := BuildRecommendationPrompt(nil)

	if !strings.Contains(got, "My favorite books are:\n\n\nMake sure") {
		t.Fatalf("unexpected rendering of empty favorites: %q", got)
	}
	if !strings.HasSuffix(got, RecommendationPromptSuffix) {
		t.Fatalf("expected suffix %q, got %q", RecommendationPromptSuffix, got)
	}
}
