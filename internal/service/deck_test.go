package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/anandita-3217/flashdeck/internal/models"
	mock_service "github.com/anandita-3217/flashdeck/internal/service/mock"
	"github.com/anandita-3217/flashdeck/internal/storage/deck"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newDeckService(t *testing.T) (*DeckS, *deck.Store) {
	t.Helper()
	store := deck.NewStore()
	return NewDeckService(store, zap.NewNop()), store
}

func newDeckServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockDeckRI)) *DeckS {
	t.Helper()
	store := mock_service.NewMockDeckRI(ctrl)
	if setupMock != nil {
		setupMock(store)
	}
	return NewDeckService(store, zap.NewNop())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDeckS_AddCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockDeckRI)
		want    string
		wantErr bool
	}{
		{
			name: "success",
			f: func(m *mock_service.MockDeckRI) {
				m.EXPECT().Add("What is 2 + 2?", "4").Return(nil)
			},
			want: `Flashcard "What is 2 + 2?" added`,
		},
		{
			name: "store error propagates",
			f: func(m *mock_service.MockDeckRI) {
				m.EXPECT().Add("What is 2 + 2?", "4").Return(errors.New("store error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			deckS := newDeckServiceMock(t, ctrl, tt.f)

			got, err := deckS.AddCard("What is 2 + 2?", "4")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeckS_Overview(t *testing.T) {
	t.Parallel()

	deckS, store := newDeckService(t)

	assert.Equal(t, "No cards to show", deckS.Overview())

	require.NoError(t, store.Add("What is the capital of France?", "Paris"))
	assert.Equal(t, "Q: What is the capital of France? - A: Paris", deckS.Overview())

	require.NoError(t, store.Add("What is 2+2?", "4"))
	assert.Equal(t,
		"Q: What is the capital of France? - A: Paris\nQ: What is 2+2? - A: 4",
		deckS.Overview())
}

func TestDeckS_ImportFile_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    models.MergeResult
		wantErr error
	}{
		{
			name:    "valid flat object",
			content: `{"Q1": "A1", "Q2": "A2"}`,
			want:    models.MergeResult{Added: 2},
		},
		{
			name:    "not json",
			content: `Q1 -> A1`,
			wantErr: ErrMalformedDeck,
		},
		{
			name:    "top-level array",
			content: `[{"Q1": "A1"}]`,
			wantErr: ErrMalformedDeck,
		},
		{
			name:    "non-string answer",
			content: `{"Q1": 4}`,
			wantErr: ErrMalformedDeck,
		},
		{
			name:    "nested object",
			content: `{"Q1": {"answer": "A1"}}`,
			wantErr: ErrMalformedDeck,
		},
		{
			name:    "blank question",
			content: `{" ": "A1"}`,
			wantErr: ErrMalformedDeck,
		},
		{
			name:    "blank answer",
			content: `{"Q1": ""}`,
			wantErr: ErrMalformedDeck,
		},
		{
			name:    "trailing data",
			content: `{"Q1": "A1"} {"Q2": "A2"}`,
			wantErr: ErrMalformedDeck,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deckS, store := newDeckService(t)
			path := writeFile(t, "deck.json", tt.content)

			res, err := deckS.ImportFile(path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, store.Size())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
			assert.Equal(t, tt.want.Added, store.Size())
		})
	}
}

func TestDeckS_ImportFile_PreservesFileOrder(t *testing.T) {
	t.Parallel()

	deckS, store := newDeckService(t)
	path := writeFile(t, "deck.json", `{"z": "1", "m": "2", "a": "3"}`)

	_, err := deckS.ImportFile(path)
	require.NoError(t, err)

	cards := store.List()
	require.Len(t, cards, 3)
	assert.Equal(t, "z", cards[0].Question)
	assert.Equal(t, "m", cards[1].Question)
	assert.Equal(t, "a", cards[2].Question)
}

func TestDeckS_ImportFile_NotFound(t *testing.T) {
	t.Parallel()

	deckS, _ := newDeckService(t)

	_, err := deckS.ImportFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, ErrFileNotFound)

	// Unreadable paths stay inside the typed vocabulary too: here the
	// path routes through a regular file as if it were a directory.
	notDir := writeFile(t, "deck.json", `{"Q1": "A1"}`)
	_, err = deckS.ImportFile(filepath.Join(notDir, "deck.json"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestDeckS_ImportFile_MergesIntoExistingDeck(t *testing.T) {
	t.Parallel()

	deckS, store := newDeckService(t)
	require.NoError(t, store.Add("Q1", "old"))

	path := writeFile(t, "deck.json", `{"Q1": "A1", "Q2": "A2"}`)

	res, err := deckS.ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, models.MergeResult{Added: 1, Skipped: 1}, res)

	// The duplicate was skipped, not overwritten.
	answer, _ := store.Get("Q1")
	assert.Equal(t, "old", answer)
}

func TestDeckS_ImportFile_XLSX(t *testing.T) {
	t.Parallel()

	writeXLSX := func(t *testing.T, rows [][]string) string {
		t.Helper()
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		for i, row := range rows {
			for j, cell := range row {
				name, err := excelize.CoordinatesToCellName(j+1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet, name, cell))
			}
		}
		path := filepath.Join(t.TempDir(), "deck.xlsx")
		require.NoError(t, f.SaveAs(path))
		return path
	}

	t.Run("valid two-column sheet", func(t *testing.T) {
		t.Parallel()

		deckS, store := newDeckService(t)
		path := writeXLSX(t, [][]string{
			{"What is 2 + 2?", "4"},
			{"What is the capital of France?", "Paris"},
		})

		res, err := deckS.ImportFile(path)
		require.NoError(t, err)
		assert.Equal(t, models.MergeResult{Added: 2}, res)

		cards := store.List()
		require.Len(t, cards, 2)
		assert.Equal(t, "What is 2 + 2?", cards[0].Question)
		assert.Equal(t, "4", cards[0].Answer)
	})

	t.Run("half-filled row", func(t *testing.T) {
		t.Parallel()

		deckS, _ := newDeckService(t)
		path := writeXLSX(t, [][]string{
			{"What is 2 + 2?", "4"},
			{"orphan question"},
		})

		_, err := deckS.ImportFile(path)
		require.ErrorIs(t, err, ErrMalformedDeck)
	})

	t.Run("not a spreadsheet", func(t *testing.T) {
		t.Parallel()

		deckS, _ := newDeckService(t)
		path := writeFile(t, "deck.xlsx", "plain text")

		_, err := deckS.ImportFile(path)
		require.ErrorIs(t, err, ErrMalformedDeck)
	})
}

func TestDeckS_ClearDeck(t *testing.T) {
	t.Parallel()

	deckS, store := newDeckService(t)

	_, err := deckS.ClearDeck()
	require.ErrorIs(t, err, deck.ErrEmptyDeck)

	require.NoError(t, store.Add("Q", "A"))

	msg, err := deckS.ClearDeck()
	require.NoError(t, err)
	assert.Equal(t, "Deck deleted", msg)
	assert.Equal(t, 0, deckS.DeckSize())
}
