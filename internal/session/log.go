package session

import (
	"sync"

	"ai-chat-bot/internal/chat"
)

// Log is the append-only conversation of one session.
type Log struct {
	mu    sync.RWMutex
	turns []chat.Turn

	// turnMu is held for a whole user/assistant exchange.
	turnMu sync.Mutex
}

// LockTurn blocks until no other exchange is in progress on this session.
// Every LockTurn must be paired with UnlockTurn.
func (l *Log) LockTurn() {
	l.turnMu.Lock()
}

// UnlockTurn ends the exchange started by LockTurn.
func (l *Log) UnlockTurn() {
	l.turnMu.Unlock()
}

// Append adds turns to the end of the log.
func (l *Log) Append(turns ...chat.Turn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = append(l.turns, turns...)
}

// Turns returns a copy of the log, oldest first.
func (l *Log) Turns() []chat.Turn {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]chat.Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of turns.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.turns)
}
