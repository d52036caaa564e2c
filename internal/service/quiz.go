package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/anandita-3217/flashdeck/internal/models"
	"github.com/anandita-3217/flashdeck/internal/storage/cache"

	"go.uber.org/zap"
)

var (
	ErrInsufficientCards = errors.New("not enough flashcards")
	ErrNoActiveQuiz      = errors.New("no active quiz")
)

// QuizS starts quiz attempts and tracks the active session per chat. At
// most one session per chat: starting a new quiz replaces a running one.
type QuizS struct {
	store    DeckRI
	sessions *cache.Cache
	rnd      *rand.Rand
	log      *zap.Logger
}

func NewQuizService(store DeckRI, sessions *cache.Cache, log *zap.Logger) *QuizS {
	return &QuizS{
		store:    store,
		sessions: sessions,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      log,
	}
}

// Start snapshots the deck into a new session for the chat. With shuffle
// off the first n cards are taken in insertion order, which keeps quiz
// runs reproducible.
func (q *QuizS) Start(chatID int64, level models.Level, shuffle bool) (*models.QuizSession, error) {
	size := q.store.Size()
	if size < level.MinCards() {
		q.log.Warn("quiz rejected, deck too small",
			zap.String("level", string(level)),
			zap.Int("size", size),
			zap.Int("required", level.MinCards()))
		return nil, fmt.Errorf("%w for %s level quiz", ErrInsufficientCards, level)
	}

	cards := q.store.List()
	n := level.QuestionCount()

	var selected []models.Flashcard
	if shuffle {
		selected = q.sample(cards, n)
	} else {
		selected = cards[:n]
	}

	session := models.NewQuizSession(level, selected)
	q.sessions.SetSession(chatID, session)

	q.log.Info("quiz started",
		zap.Int64("chat_id", chatID),
		zap.String("level", string(level)),
		zap.Int("questions", len(selected)))

	return session, nil
}

// sample draws n cards uniformly without replacement. The draw order is
// the quiz order, so insertion order carries no bias.
func (q *QuizS) sample(cards []models.Flashcard, n int) []models.Flashcard {
	selected := make([]models.Flashcard, 0, n)
	for _, i := range q.rnd.Perm(len(cards))[:n] {
		selected = append(selected, cards[i])
	}
	return selected
}

// Session returns the chat's active session, if any.
func (q *QuizS) Session(chatID int64) (*models.QuizSession, bool) {
	return q.sessions.Session(chatID)
}

// Question returns the text to present next. ErrQuizComplete means the
// caller should finish the quiz instead.
func (q *QuizS) Question(chatID int64) (string, error) {
	session, ok := q.sessions.Session(chatID)
	if !ok {
		return "", ErrNoActiveQuiz
	}
	return session.CurrentQuestion()
}

// Submit grades the chat's answer to the current question.
func (q *QuizS) Submit(chatID int64, answer string) (bool, error) {
	session, ok := q.sessions.Session(chatID)
	if !ok {
		return false, ErrNoActiveQuiz
	}
	return session.Submit(answer)
}

// Finish closes the chat's session and reports the final score.
func (q *QuizS) Finish(chatID int64) (score, total int, err error) {
	session, ok := q.sessions.Session(chatID)
	if !ok {
		return 0, 0, ErrNoActiveQuiz
	}

	q.sessions.DeleteSession(chatID)
	score, total = session.FinalScore()

	q.log.Info("quiz finished",
		zap.Int64("chat_id", chatID),
		zap.String("level", string(session.Level)),
		zap.Int("score", score),
		zap.Int("total", total))

	return score, total, nil
}
