package bot

import (
	"os"
	"path/filepath"
	"testing"

	mock_bot "github.com/anandita-3217/flashdeck/internal/bot/mock"
	"github.com/anandita-3217/flashdeck/internal/service"
	"github.com/anandita-3217/flashdeck/internal/storage/cache"
	"github.com/anandita-3217/flashdeck/internal/storage/deck"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDeckT(t *testing.T) (*DeckT, *mock_bot.MockBot, *cache.Cache, *deck.Store) {
	t.Helper()

	store := deck.NewStore()
	sessions := cache.NewCache()
	services := service.InitServices(store, sessions, zap.NewNop())
	mockBot := &mock_bot.MockBot{}

	return NewDeckTAPI(mockBot, sessions, services), mockBot, sessions, store
}

func chatMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 1},
		From: &tgbotapi.User{ID: 1},
		Text: text,
	}
}

func TestDeckT_PromptSetsPendingAction(t *testing.T) {
	t.Parallel()

	deckT, mockBot, sessions, _ := newDeckT(t)

	deckT.promptAddCard(chatMessage(ButtonAddCard))

	assert.Equal(t, cache.ActionAddCard, sessions.Action(1))
	require.Len(t, mockBot.Texts(), 1)
	assert.Contains(t, mockBot.Texts()[0], "question: answer")
}

func TestDeckT_HandleInput_AddCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "success",
			input: "What is 2+2?: 4",
			want:  `Flashcard "What is 2+2?" added`,
		},
		{
			name:  "no colon",
			input: "just some text",
			want:  "Invalid format. Use 'question: answer'.",
		},
		{
			name:  "too many colons",
			input: "a: b: c",
			want:  "Invalid format. Use 'question: answer'.",
		},
		{
			name:  "missing answer",
			input: "What is 2+2?:",
			want:  "No question or answer entered.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deckT, mockBot, sessions, _ := newDeckT(t)
			sessions.SetAction(1, cache.ActionAddCard)

			deckT.handleInput(chatMessage(tt.input), cache.ActionAddCard)

			assert.Equal(t, cache.ActionNone, sessions.Action(1))
			require.Len(t, mockBot.Texts(), 1)
			assert.Equal(t, tt.want, mockBot.Texts()[0])
		})
	}
}

func TestDeckT_HandleInput_DuplicateCard(t *testing.T) {
	t.Parallel()

	deckT, mockBot, _, store := newDeckT(t)
	require.NoError(t, store.Add("What is 2+2?", "4"))

	deckT.handleInput(chatMessage("What is 2+2?: four"), cache.ActionAddCard)

	require.Len(t, mockBot.Texts(), 1)
	assert.Equal(t, "That flashcard already exists.", mockBot.Texts()[0])
	answer, _ := store.Get("What is 2+2?")
	assert.Equal(t, "4", answer)
}

func TestDeckT_HandleInput_BulkAdd(t *testing.T) {
	t.Parallel()

	deckT, mockBot, _, store := newDeckT(t)
	require.NoError(t, store.Add("Q1", "A1"))

	deckT.handleInput(chatMessage("Q1: other\nQ2: A2\nQ3: A3"), cache.ActionBulkAdd)

	require.Len(t, mockBot.Texts(), 1)
	assert.Equal(t, "Deck merged: 2 added, 1 already existed", mockBot.Texts()[0])
	assert.Equal(t, 3, store.Size())
}

func TestDeckT_HandleInput_BulkAdd_RejectsEmptySides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty answer side", input: "Q9:"},
		{name: "empty question side", input: ": A7"},
		{name: "whitespace sides", input: " : "},
		{name: "bad line among valid ones", input: "Q9:\n: A7\nQ1: A1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deckT, mockBot, _, store := newDeckT(t)

			deckT.handleInput(chatMessage(tt.input), cache.ActionBulkAdd)

			require.Len(t, mockBot.Texts(), 1)
			assert.Equal(t, "Invalid format. Use 'question: answer' on each line.", mockBot.Texts()[0])
			assert.Equal(t, 0, store.Size(), "no card may reach the deck from a rejected bulk add")
		})
	}
}

func TestDeckT_HandleInput_Import(t *testing.T) {
	t.Parallel()

	deckT, mockBot, _, store := newDeckT(t)

	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Q1": "A1", "Q2": "A2"}`), 0o600))

	deckT.handleInput(chatMessage(path), cache.ActionImport)

	require.Len(t, mockBot.Texts(), 1)
	assert.Equal(t, "Deck merged: 2 added", mockBot.Texts()[0])
	assert.Equal(t, 2, store.Size())

	mock_bot.ClearSentMessages(mockBot)
	deckT.handleInput(chatMessage(filepath.Join(t.TempDir(), "nope.json")), cache.ActionImport)

	require.Len(t, mockBot.Texts(), 1)
	assert.Equal(t, "File not found. Check the file path and try again.", mockBot.Texts()[0])
}

func TestDeckT_ShowDeckAndSize(t *testing.T) {
	t.Parallel()

	deckT, mockBot, _, store := newDeckT(t)

	deckT.showDeck(chatMessage(ButtonViewDeck))
	require.Len(t, mockBot.Texts(), 1)
	assert.Equal(t, "No cards to show", mockBot.Texts()[0])

	require.NoError(t, store.Add("What is 2+2?", "4"))
	mock_bot.ClearSentMessages(mockBot)

	deckT.showDeck(chatMessage(ButtonViewDeck))
	deckT.showDeckSize(chatMessage(ButtonDeckSize))

	texts := mockBot.Texts()
	require.Len(t, texts, 2)
	assert.Equal(t, "Q: What is 2+2? - A: 4", texts[0])
	assert.Equal(t, "Deck size: 1 / 150", texts[1])
}

func TestDeckT_ClearDeck(t *testing.T) {
	t.Parallel()

	deckT, mockBot, _, store := newDeckT(t)

	deckT.clearDeck(chatMessage(ButtonClearDeck))
	require.Len(t, mockBot.Texts(), 1)
	assert.Equal(t, "Deck empty!", mockBot.Texts()[0])

	require.NoError(t, store.Add("Q", "A"))
	mock_bot.ClearSentMessages(mockBot)

	deckT.clearDeck(chatMessage(ButtonClearDeck))
	require.Len(t, mockBot.Texts(), 1)
	assert.Equal(t, "Deck deleted", mockBot.Texts()[0])
	assert.Equal(t, 0, store.Size())
}
