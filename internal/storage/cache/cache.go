package cache

import (
	"sync"

	"github.com/anandita-3217/flashdeck/internal/models"
)

// Action is the multi-step shell input a chat is in the middle of.
type Action string

const (
	ActionNone       Action = ""
	ActionAddCard    Action = "add_card"
	ActionUpdateCard Action = "update_card"
	ActionDeleteCard Action = "delete_card"
	ActionBulkAdd    Action = "bulk_add"
	ActionImport     Action = "import"
)

// Cache holds per-chat ephemeral state: the active quiz session and the
// pending input action. Nothing here survives a restart.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*models.QuizSession
	actions  map[int64]Action
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*models.QuizSession),
		actions:  make(map[int64]Action),
	}
}

func (c *Cache) SetSession(chatID int64, session *models.QuizSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[chatID] = session
}

func (c *Cache) Session(chatID int64) (*models.QuizSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[chatID]
	return session, exists
}

func (c *Cache) DeleteSession(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, chatID)
}

func (c *Cache) SetAction(chatID int64, action Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions[chatID] = action
}

func (c *Cache) Action(chatID int64) Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.actions[chatID]
}

func (c *Cache) ClearAction(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.actions, chatID)
}
