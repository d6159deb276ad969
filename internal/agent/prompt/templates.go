package prompt

// ============================================================================
// Completion prompts
// - The trailing blank line after each label primes the model to continue
//   with the answer itself. Keep the whitespace byte-for-byte.
// ============================================================================

// AuthorPromptTemplate asks for the author of a single title.
// Args: title
const AuthorPromptTemplate = `
Who is the author to the book "%s". Print only the authors name and nothing else. Make sure it is not a complete sentence.

Author:

`

// RecommendationPromptTemplate asks for three recommendations based on the favorites.
// Args: genres, favorites (one per line)
const RecommendationPromptTemplate = `
Give me a list of 3 good book recommendations that you think I would enjoy, based on the following data lists.

Favorite genres are:
%s

My favorite books are:
%s

Make sure the list is not numbered, and should have no prefixes. The format of the list should look like:
{Book title} by {Author name}

Recommendations:

`

// FavoriteGenre is the fixed genre preference sent with every recommendation prompt
const FavoriteGenre = "Non-fiction"

// AuthorPromptSuffix is the generation point of the author prompt
const AuthorPromptSuffix = "Author:\n\n"

// RecommendationPromptSuffix is the generation point of the recommendation prompt
const RecommendationPromptSuffix = "Recommendations:\n\n"
