package service

import (
	"github.com/anandita-3217/flashdeck/internal/models"
	"github.com/anandita-3217/flashdeck/internal/storage/cache"

	"go.uber.org/zap"
)

// DeckRI is the deck storage the services run on.
type DeckRI interface {
	Add(question, answer string) error
	Update(question, newAnswer string) error
	Merge(cards []models.Flashcard) (models.MergeResult, error)
	Delete(question string) error
	Clear() error
	Size() int
	List() []models.Flashcard
}

type Service struct {
	*DeckS
	*QuizS
}

func InitServices(store DeckRI, sessions *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		DeckS: NewDeckService(store, log),
		QuizS: NewQuizService(store, sessions, log),
	}
}
