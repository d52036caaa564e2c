package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonAddCard    = "➕ Add Card"
	ButtonBulkAdd    = "📦 Add Deck"
	ButtonImport     = "📥 Import Deck"
	ButtonViewDeck   = "📖 View Deck"
	ButtonDeckSize   = "🔢 Deck Size"
	ButtonUpdateCard = "✏️ Update Card"
	ButtonDeleteCard = "🗑 Delete Card"
	ButtonClearDeck  = "💥 Clear Deck"
	ButtonQuiz       = "🧠 Take Quiz"
	ButtonMainMenu   = "🏠 Main Menu"
	ButtonHelp       = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I manage your flashcard deck and quiz you on it.\n\n" +
		"✨ What I can do:\n" +
		"• ➕ Store up to 150 question/answer cards\n" +
		"• 📥 Import a whole deck from a JSON or XLSX file\n" +
		"• 🧠 Run timed quizzes (beginner / mid / pro)\n\n" +
		"Pick a button below to begin!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonAddCard),
			tgbotapi.NewKeyboardButton(ButtonBulkAdd),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonImport),
			tgbotapi.NewKeyboardButton(ButtonViewDeck),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonUpdateCard),
			tgbotapi.NewKeyboardButton(ButtonDeleteCard),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonDeckSize),
			tgbotapi.NewKeyboardButton(ButtonClearDeck),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start — start the bot
/help — this message

🎯 Use the buttons:
• "Add Card" — add one flashcard as 'question: answer'
• "Add Deck" — add several cards, one per line
• "Import Deck" — load cards from a .json or .xlsx file
• "View Deck" / "Deck Size" — inspect the deck
• "Update Card" / "Delete Card" / "Clear Deck" — edit the deck
• "Take Quiz" — a 60-second quiz at beginner, mid or pro level
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	chatID := message.Chat.ID
	text := message.Text

	// A running quiz claims every plain message as an answer, except the
	// main-menu button, which abandons it.
	if _, ok := t.quiz.service.Session(chatID); ok {
		if text == ButtonMainMenu {
			t.quiz.abandonQuiz(message)
			t.showMainMenu(message)
			return
		}
		t.quiz.handleAnswer(message)
		return
	}

	// A pending prompt claims the message as its input.
	if action := t.cache.Action(chatID); action != "" && text != ButtonMainMenu {
		t.deck.handleInput(message, action)
		return
	}

	switch text {
	case ButtonAddCard:
		t.deck.promptAddCard(message)
	case ButtonBulkAdd:
		t.deck.promptBulkAdd(message)
	case ButtonImport:
		t.deck.promptImport(message)
	case ButtonViewDeck:
		t.deck.showDeck(message)
	case ButtonDeckSize:
		t.deck.showDeckSize(message)
	case ButtonUpdateCard:
		t.deck.promptUpdateCard(message)
	case ButtonDeleteCard:
		t.deck.promptDeleteCard(message)
	case ButtonClearDeck:
		t.deck.clearDeck(message)
	case ButtonQuiz:
		t.quiz.promptLevel(message)
	case ButtonMainMenu:
		t.cache.ClearAction(chatID)
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)

	default:
		msg := tgbotapi.NewMessage(chatID, "I didn't get that. Use the buttons below.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "quiz_"):
		t.quiz.handleLevelCallback(query)

	case data == "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
