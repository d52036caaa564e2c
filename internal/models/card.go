package models

// Flashcard is a single question/answer pair. Within a deck the question
// text is unique and keys the card.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MergeResult reports what a bulk merge actually did. Duplicates are
// skipped, not failed, so callers need the counts to render an honest
// confirmation.
type MergeResult struct {
	Added   int
	Skipped int
}
