package session

import (
	"github.com/Ko-stant/hunter-arena/internal/game"
	"github.com/Ko-stant/hunter-arena/internal/ws"
)

// Sink tracks connections and delivers encoded envelopes to them. *ws.Hub
// satisfies it. Only the loop goroutine changes membership.
type Sink interface {
	Add(id string, conn ws.Conn)
	Remove(id string)
	Len() int
	Broadcast(message []byte) []string
	SendTo(id string, message []byte) bool
}

// Logger for logging abstraction
type Logger interface {
	game.Logger
	Warnw(msg string, keysAndValues ...any)
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}
