package models

import (
	"errors"
	"strings"
	"time"
)

// QuizTimeLimit is the time budget of a quiz attempt, identical for all
// levels.
const QuizTimeLimit = 60 * time.Second

var (
	ErrUnknownLevel = errors.New("unknown quiz level")
	ErrQuizComplete = errors.New("quiz already complete")
)

// Level is a quiz difficulty tier. The tier fixes both the number of
// questions asked and the minimum deck size required to start.
type Level string

const (
	LevelBeginner Level = "beginner"
	LevelMid      Level = "mid"
	LevelPro      Level = "pro"
)

func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(s)) {
	case LevelBeginner:
		return LevelBeginner, nil
	case LevelMid:
		return LevelMid, nil
	case LevelPro:
		return LevelPro, nil
	default:
		return "", ErrUnknownLevel
	}
}

func (l Level) QuestionCount() int {
	switch l {
	case LevelBeginner:
		return 5
	case LevelMid:
		return 10
	case LevelPro:
		return 15
	default:
		return 0
	}
}

// MinCards is the deck size threshold for starting a quiz at this level.
// It equals the question count: every selected question must be a distinct
// card.
func (l Level) MinCards() int {
	return l.QuestionCount()
}

// QuizSession is one quiz attempt. Questions are a snapshot taken at start
// time, so deck edits made while a quiz is running never leak into it.
type QuizSession struct {
	Level     Level
	Questions []Flashcard
	StartedAt time.Time
	TimeLimit time.Duration
	Current   int
	Score     int
}

func NewQuizSession(level Level, questions []Flashcard) *QuizSession {
	return &QuizSession{
		Level:     level,
		Questions: questions,
		StartedAt: time.Now(),
		TimeLimit: QuizTimeLimit,
	}
}

// Expired reports whether the wall-clock budget has run out. Time is
// polled at call boundaries, there is no timer.
func (s *QuizSession) Expired() bool {
	return time.Since(s.StartedAt) > s.TimeLimit
}

// IsComplete is true once every question was answered or the time budget
// is exhausted.
func (s *QuizSession) IsComplete() bool {
	return s.Current >= len(s.Questions) || s.Expired()
}

// CurrentQuestion returns the question text at the cursor. Callers must
// check IsComplete first.
func (s *QuizSession) CurrentQuestion() (string, error) {
	if s.IsComplete() {
		return "", ErrQuizComplete
	}
	return s.Questions[s.Current].Question, nil
}

// Submit grades an answer against the card at the cursor. Matching is
// case-insensitive and exact, no trimming and no partial credit. The
// cursor always advances, right or wrong.
func (s *QuizSession) Submit(answer string) (bool, error) {
	if s.IsComplete() {
		return false, ErrQuizComplete
	}

	correct := strings.EqualFold(answer, s.Questions[s.Current].Answer)
	if correct {
		s.Score++
	}
	s.Current++

	return correct, nil
}

// FinalScore returns the score and the total question count. Stable once
// the session is complete.
func (s *QuizSession) FinalScore() (score, total int) {
	return s.Score, len(s.Questions)
}
