package cache

import (
	"sync"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/models"
)

// DefaultRoundIdle is how long a chat round survives without an answer.
const DefaultRoundIdle = 30 * time.Minute

// QuizState is the question a chat user is currently answering.
// A zero Question means the round is open but nothing is pending.
type QuizState struct {
	SessionID int64
	Question  models.Question
}

type roundEntry struct {
	state   QuizState
	touched time.Time
}

// Cache keeps per-user chat rounds between bot updates. Rounds idle for
// longer than the configured window are forgotten, so the next quiz
// request opens a fresh session.
type Cache struct {
	mu     sync.Mutex
	rounds map[int64]roundEntry
	idle   time.Duration
	now    func() time.Time
}

func NewCache() *Cache {
	return NewCacheWithIdle(DefaultRoundIdle)
}

// NewCacheWithIdle disables expiry for a non-positive idle.
func NewCacheWithIdle(idle time.Duration) *Cache {
	return &Cache{
		rounds: make(map[int64]roundEntry),
		idle:   idle,
		now:    time.Now,
	}
}

func (c *Cache) SetQuiz(userID int64, state QuizState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rounds[userID] = roundEntry{state: state, touched: c.now()}
}

func (c *Cache) GetQuiz(userID int64) (QuizState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.rounds[userID]
	if !ok {
		return QuizState{}, false
	}
	if c.idle > 0 && c.now().Sub(e.touched) >= c.idle {
		delete(c.rounds, userID)
		return QuizState{}, false
	}
	return e.state, true
}

func (c *Cache) DeleteQuiz(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rounds, userID)
}
