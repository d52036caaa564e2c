package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anandita-3217/flashdeck/internal/models"
	"github.com/anandita-3217/flashdeck/internal/service"
	"github.com/anandita-3217/flashdeck/internal/storage/cache"
	"github.com/anandita-3217/flashdeck/internal/storage/deck"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type DeckSI interface {
	AddCard(question, answer string) (string, error)
	UpdateCard(question, newAnswer string) (string, error)
	DeleteCard(question string) (string, error)
	MergeDeck(cards []models.Flashcard) (models.MergeResult, error)
	ImportFile(path string) (models.MergeResult, error)
	ClearDeck() (string, error)
	DeckSize() int
	Overview() string
}

type DeckT struct {
	bot     BotSender
	cache   *cache.Cache
	service DeckSI
}

func NewDeckTAPI(bot BotSender, cache *cache.Cache, service DeckSI) *DeckT {
	return &DeckT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *DeckT) promptAddCard(message *tgbotapi.Message) {
	t.prompt(message, cache.ActionAddCard, "Send the new flashcard as 'question: answer'")
}

func (t *DeckT) promptUpdateCard(message *tgbotapi.Message) {
	t.prompt(message, cache.ActionUpdateCard, "Send the update as 'question: new answer'")
}

func (t *DeckT) promptDeleteCard(message *tgbotapi.Message) {
	t.prompt(message, cache.ActionDeleteCard, "Send the question of the flashcard to delete")
}

func (t *DeckT) promptBulkAdd(message *tgbotapi.Message) {
	t.prompt(message, cache.ActionBulkAdd, "Send the flashcards, one per line, as 'question: answer'")
}

func (t *DeckT) promptImport(message *tgbotapi.Message) {
	t.prompt(message, cache.ActionImport, "Send the path of the deck file (.json or .xlsx)")
}

func (t *DeckT) prompt(message *tgbotapi.Message, action cache.Action, text string) {
	t.cache.SetAction(message.Chat.ID, action)
	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, text))
}

// handleInput consumes the reply to an earlier prompt. One reply per
// prompt: the pending action is cleared whatever the outcome.
func (t *DeckT) handleInput(message *tgbotapi.Message, action cache.Action) {
	chatID := message.Chat.ID
	t.cache.ClearAction(chatID)

	var reply string
	switch action {
	case cache.ActionAddCard:
		reply = t.addCard(message.Text)
	case cache.ActionUpdateCard:
		reply = t.updateCard(message.Text)
	case cache.ActionDeleteCard:
		reply = t.deleteCard(message.Text)
	case cache.ActionBulkAdd:
		reply = t.bulkAdd(message.Text)
	case cache.ActionImport:
		reply = t.importFile(message.Text)
	default:
		reply = "I didn't get that. Use the buttons below."
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, reply))
}

func (t *DeckT) addCard(text string) string {
	question, answer, err := parseCardLine(text)
	if err != nil {
		return "Invalid format. Use 'question: answer'."
	}

	result, err := t.service.AddCard(question, answer)
	if err != nil {
		return errorMessage(err)
	}
	return result
}

func (t *DeckT) updateCard(text string) string {
	question, newAnswer, err := parseCardLine(text)
	if err != nil {
		return "Invalid format. Use 'question: new answer'."
	}

	result, err := t.service.UpdateCard(question, newAnswer)
	if err != nil {
		return errorMessage(err)
	}
	return result
}

func (t *DeckT) deleteCard(text string) string {
	result, err := t.service.DeleteCard(strings.TrimSpace(text))
	if err != nil {
		return errorMessage(err)
	}
	return result
}

// bulkAdd parses one card per line. Merge validates only duplicate and
// capacity, so lines with an empty question or answer are refused here.
func (t *DeckT) bulkAdd(text string) string {
	var cards []models.Flashcard
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		question, answer, err := parseCardLine(line)
		if err != nil || question == "" || answer == "" {
			return "Invalid format. Use 'question: answer' on each line."
		}
		cards = append(cards, models.Flashcard{Question: question, Answer: answer})
	}
	if len(cards) == 0 {
		return "No flashcards entered."
	}

	res, err := t.service.MergeDeck(cards)
	if err != nil {
		return errorMessage(err)
	}
	return mergeSummary(res)
}

func (t *DeckT) importFile(text string) string {
	res, err := t.service.ImportFile(strings.TrimSpace(text))
	if err != nil {
		return errorMessage(err)
	}
	return mergeSummary(res)
}

func (t *DeckT) showDeck(message *tgbotapi.Message) {
	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, t.service.Overview()))
}

func (t *DeckT) showDeckSize(message *tgbotapi.Message) {
	text := fmt.Sprintf("Deck size: %d / %d", t.service.DeckSize(), deck.MaxCards)
	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, text))
}

func (t *DeckT) clearDeck(message *tgbotapi.Message) {
	result, err := t.service.ClearDeck()
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, errorMessage(err)))
		return
	}
	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, result))
}

// parseCardLine splits 'question: answer'. Exactly one colon, both sides
// trimmed.
func parseCardLine(line string) (question, answer string, err error) {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return "", "", errors.New("line must be 'question: answer'")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func mergeSummary(res models.MergeResult) string {
	if res.Skipped > 0 {
		return fmt.Sprintf("Deck merged: %d added, %d already existed", res.Added, res.Skipped)
	}
	return fmt.Sprintf("Deck merged: %d added", res.Added)
}

// errorMessage translates typed service errors into user-facing text.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, deck.ErrDuplicateQuestion):
		return "That flashcard already exists."
	case errors.Is(err, deck.ErrCapacityExceeded):
		return fmt.Sprintf("Deck size reached (%d cards max).", deck.MaxCards)
	case errors.Is(err, deck.ErrInvalidInput):
		return "Invalid question and answer pairing."
	case errors.Is(err, deck.ErrMissingField):
		return "No question or answer entered."
	case errors.Is(err, deck.ErrNotFound):
		return "That flashcard does not exist."
	case errors.Is(err, deck.ErrEmptyDeck):
		return "Deck empty!"
	case errors.Is(err, service.ErrFileNotFound):
		return "File not found. Check the file path and try again."
	case errors.Is(err, service.ErrMalformedDeck):
		return "Invalid deck file. Check the file content."
	case errors.Is(err, service.ErrInsufficientCards):
		return "Not enough flashcards for that level."
	default:
		return "Something went wrong. Try again."
	}
}
