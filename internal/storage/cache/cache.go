package cache

import (
	"sync"

	"github.com/DanRulev/vokabot/internal/models"
)

// Cache holds the conversation state of every user in memory. Users without
// an entry are idle.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]models.State
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]models.State),
	}
}

func (c *Cache) State(userID int64) models.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, exists := c.sessions[userID]
	if !exists {
		return models.Idle{}
	}
	return state
}

func (c *Cache) SetState(userID int64, state models.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, idle := state.(models.Idle); idle || state == nil {
		delete(c.sessions, userID)
		return
	}
	c.sessions[userID] = state
}

// Len reports how many users are in the middle of a flow.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}
