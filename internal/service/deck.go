package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anandita-3217/flashdeck/internal/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	ErrFileNotFound  = errors.New("deck file not found")
	ErrMalformedDeck = errors.New("invalid deck file format")
)

// DeckS wraps the deck store with import parsing and rendering. All
// expected failures come back as typed errors for the shell to translate.
type DeckS struct {
	store DeckRI
	log   *zap.Logger
}

func NewDeckService(store DeckRI, log *zap.Logger) *DeckS {
	return &DeckS{
		store: store,
		log:   log,
	}
}

func (d *DeckS) AddCard(question, answer string) (string, error) {
	if err := d.store.Add(question, answer); err != nil {
		d.log.Warn("failed to add flashcard", zap.String("question", question), zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("Flashcard %q added", question), nil
}

func (d *DeckS) UpdateCard(question, newAnswer string) (string, error) {
	if err := d.store.Update(question, newAnswer); err != nil {
		d.log.Warn("failed to update flashcard", zap.String("question", question), zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("Flashcard %q updated", question), nil
}

func (d *DeckS) DeleteCard(question string) (string, error) {
	if err := d.store.Delete(question); err != nil {
		d.log.Warn("failed to delete flashcard", zap.String("question", question), zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("Flashcard %q deleted", question), nil
}

// MergeDeck bulk-adds cards in order. Partial application on capacity
// failure is the documented policy of the store, not rolled back here.
func (d *DeckS) MergeDeck(cards []models.Flashcard) (models.MergeResult, error) {
	res, err := d.store.Merge(cards)
	if err != nil {
		d.log.Warn("deck merge aborted",
			zap.Int("added", res.Added),
			zap.Int("skipped", res.Skipped),
			zap.Error(err))
		return res, err
	}

	d.log.Info("deck merged", zap.Int("added", res.Added), zap.Int("skipped", res.Skipped))
	return res, nil
}

func (d *DeckS) ClearDeck() (string, error) {
	if err := d.store.Clear(); err != nil {
		return "", err
	}
	return "Deck deleted", nil
}

func (d *DeckS) DeckSize() int {
	return d.store.Size()
}

// Overview renders the whole deck in insertion order. An empty deck gets
// a distinct marker instead of an empty listing.
func (d *DeckS) Overview() string {
	cards := d.store.List()
	if len(cards) == 0 {
		return "No cards to show"
	}

	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("Q: ")
		sb.WriteString(c.Question)
		sb.WriteString(" - A: ")
		sb.WriteString(c.Answer)
	}
	return sb.String()
}

// ImportFile reads a deck file and merges it into the store. JSON files
// hold a flat question→answer object; .xlsx files hold question/answer
// columns A and B of the first sheet. I/O and parse failures are folded
// into ErrFileNotFound / ErrMalformedDeck so the shell never sees raw
// filesystem errors.
func (d *DeckS) ImportFile(path string) (models.MergeResult, error) {
	file, err := os.Open(path)
	if err != nil {
		// Permission and not-a-directory failures read the same to the
		// shell as a missing file: the path has no readable deck.
		d.log.Warn("failed to open deck file", zap.String("path", path), zap.Error(err))
		return models.MergeResult{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	defer file.Close()

	var cards []models.Flashcard
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		cards, err = parseDeckXLSX(file)
	} else {
		cards, err = parseDeckJSON(file)
	}
	if err != nil {
		d.log.Warn("failed to parse deck file", zap.String("path", path), zap.Error(err))
		return models.MergeResult{}, err
	}

	return d.MergeDeck(cards)
}

// parseDeckJSON decodes a flat string→string JSON object token by token,
// keeping the file's key order. Unmarshalling into a Go map would lose
// the order the merge depends on.
func parseDeckJSON(r io.Reader) ([]models.Flashcard, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrMalformedDeck)
	}

	var cards []models.Flashcard
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
		}
		question := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
		}
		answer, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: answer for %q is not a string", ErrMalformedDeck, question)
		}

		if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
			return nil, fmt.Errorf("%w: blank question or answer", ErrMalformedDeck)
		}

		cards = append(cards, models.Flashcard{Question: question, Answer: answer})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after deck object", ErrMalformedDeck)
	}

	return cards, nil
}

// parseDeckXLSX reads (question, answer) rows from the first sheet.
// Fully empty rows are tolerated, half-filled rows are not.
func parseDeckXLSX(r io.Reader) ([]models.Flashcard, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
	}

	var cards []models.Flashcard
	for i, row := range rows {
		var question, answer string
		if len(row) > 0 {
			question = row[0]
		}
		if len(row) > 1 {
			answer = row[1]
		}

		if strings.TrimSpace(question) == "" && strings.TrimSpace(answer) == "" {
			continue
		}
		if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
			return nil, fmt.Errorf("%w: row %d has a blank question or answer", ErrMalformedDeck, i+1)
		}

		cards = append(cards, models.Flashcard{Question: question, Answer: answer})
	}

	return cards, nil
}
