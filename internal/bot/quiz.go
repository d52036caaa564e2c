package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/anandita-3217/flashdeck/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	Start(chatID int64, level models.Level, shuffle bool) (*models.QuizSession, error)
	Session(chatID int64) (*models.QuizSession, bool)
	Question(chatID int64) (string, error)
	Submit(chatID int64, answer string) (bool, error)
	Finish(chatID int64) (score, total int, err error)
}

type QuizT struct {
	bot     BotSender
	service QuizSI
}

func NewQuizTAPI(bot BotSender, service QuizSI) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
	}
}

func (t *QuizT) promptLevel(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Beginner", "quiz_beginner"),
			tgbotapi.NewInlineKeyboardButtonData("Mid", "quiz_mid"),
			tgbotapi.NewInlineKeyboardButtonData("Pro", "quiz_pro"),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "🧠 Choose a quiz level:")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) handleLevelCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("Callback without message from user %d", query.From.ID)
		return
	}
	chatID := query.Message.Chat.ID

	level, err := models.ParseLevel(strings.TrimPrefix(query.Data, "quiz_"))
	if err != nil {
		log.Printf("Unknown quiz level callback: %s", query.Data)
		return
	}

	if _, err := t.service.Start(chatID, level, true); err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, errorMessage(err)))
		return
	}

	text := fmt.Sprintf("🏁 Quiz started at %s level! %d questions, 60 seconds. Reply with your answers.",
		level, level.QuestionCount())
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))

	t.askQuestion(chatID)
}

// askQuestion presents the next question or wraps up if the session is
// complete or timed out.
func (t *QuizT) askQuestion(chatID int64) {
	session, ok := t.service.Session(chatID)
	if !ok {
		return
	}

	question, err := t.service.Question(chatID)
	if err != nil {
		t.finishQuiz(chatID)
		return
	}

	text := fmt.Sprintf("❓ Question %d/%d: %s", session.Current+1, len(session.Questions), question)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *QuizT) handleAnswer(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	correct, err := t.service.Submit(chatID, message.Text)
	if err != nil {
		if errors.Is(err, models.ErrQuizComplete) {
			// Time ran out between question and answer.
			t.finishQuiz(chatID)
			return
		}
		log.Printf("failed to submit answer for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Something went wrong. Try again."))
		return
	}

	if correct {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "✅ Correct!"))
	} else {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Wrong!"))
	}

	t.askQuestion(chatID)
}

// abandonQuiz drops the running session without grading anything more.
func (t *QuizT) abandonQuiz(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	score, total, err := t.service.Finish(chatID)
	if err != nil {
		log.Printf("failed to abandon quiz for chat %d: %v", chatID, err)
		return
	}

	text := fmt.Sprintf("🚪 Quiz abandoned. Score so far: %d/%d", score, total)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *QuizT) finishQuiz(chatID int64) {
	score, total, err := t.service.Finish(chatID)
	if err != nil {
		log.Printf("failed to finish quiz for chat %d: %v", chatID, err)
		return
	}

	text := fmt.Sprintf("🎉 Quiz completed! Your score: %d/%d", score, total)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}
