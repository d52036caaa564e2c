package deck

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/anandita-3217/flashdeck/internal/models"
)

// MaxCards is the deck capacity. A deck may reach exactly this size; the
// add that would push it past is the one that fails.
const MaxCards = 150

var (
	ErrDuplicateQuestion = errors.New("flashcard already exists")
	ErrCapacityExceeded  = errors.New("deck capacity reached")
	ErrInvalidInput      = errors.New("invalid question and answer pairing")
	ErrMissingField      = errors.New("no question or answer entered")
	ErrNotFound          = errors.New("flashcard not found")
	ErrEmptyDeck         = errors.New("deck is empty")
)

// Store is an in-memory question→answer store with meaningful insertion
// order. Not persisted: the deck lives and dies with the process.
//
// The mutex guards the map/order pair; operations are otherwise
// single-threaded and synchronous.
type Store struct {
	mu    sync.Mutex
	cards map[string]string
	order []string
}

func NewStore() *Store {
	return &Store{
		cards: make(map[string]string),
	}
}

// blank is non-empty text that is all whitespace. Empty strings are a
// separate failure (missing field, not invalid input).
func blank(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}

// Add inserts a single card. Check order matters to callers rendering the
// outcome: duplicate, then capacity, then blank, then empty.
func (s *Store) Add(question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[question]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateQuestion, question)
	}
	if len(s.cards) >= MaxCards {
		return ErrCapacityExceeded
	}
	if blank(question) || blank(answer) {
		return ErrInvalidInput
	}
	if question == "" || answer == "" {
		return ErrMissingField
	}

	s.cards[question] = answer
	s.order = append(s.order, question)
	return nil
}

// Update replaces the answer of an existing card. The card keeps its
// position in insertion order.
func (s *Store) Update(question, newAnswer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[question]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, question)
	}
	if blank(question) || blank(newAnswer) {
		return ErrInvalidInput
	}
	if newAnswer == "" {
		return ErrMissingField
	}

	s.cards[question] = newAnswer
	return nil
}

// Merge inserts cards in the given order, best effort. Duplicates are
// skipped and counted, not failed. A non-duplicate that hits capacity
// aborts the merge with ErrCapacityExceeded; everything inserted up to
// that point stays in place. There is no rollback.
func (s *Store) Merge(cards []models.Flashcard) (models.MergeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res models.MergeResult
	for _, c := range cards {
		if _, ok := s.cards[c.Question]; ok {
			res.Skipped++
			continue
		}
		if len(s.cards) >= MaxCards {
			return res, fmt.Errorf("%w: deck cannot exceed %d flashcards", ErrCapacityExceeded, MaxCards)
		}
		s.cards[c.Question] = c.Answer
		s.order = append(s.order, c.Question)
		res.Added++
	}

	return res, nil
}

// Delete removes a card by question.
func (s *Store) Delete(question string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if question == "" || blank(question) {
		return ErrInvalidInput
	}
	if _, ok := s.cards[question]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, question)
	}

	delete(s.cards, question)
	for i, q := range s.order {
		if q == question {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every card. An already-empty deck is reported as
// ErrEmptyDeck; the store stays usable.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cards) == 0 {
		return ErrEmptyDeck
	}

	s.cards = make(map[string]string)
	s.order = nil
	return nil
}

func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards)
}

// Get returns the answer for a question.
func (s *Store) Get(question string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	answer, ok := s.cards[question]
	return answer, ok
}

// List returns all cards in insertion order. The slice is a copy; callers
// may hold it across later mutations.
func (s *Store) List() []models.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]models.Flashcard, 0, len(s.order))
	for _, q := range s.order {
		cards = append(cards, models.Flashcard{Question: q, Answer: s.cards[q]})
	}
	return cards
}
