// Package session runs a game.Game on a single goroutine and connects it to
// websocket participants.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/Ko-stant/hunter-arena/internal/game"
	"github.com/Ko-stant/hunter-arena/internal/protocol"
	"github.com/Ko-stant/hunter-arena/internal/ws"
)

const maxFrameBytes = 4096

// ErrStopped is returned when submitting to a server whose loop has exited.
var ErrStopped = errors.New("session: server stopped")

// Server owns the Game. Connection goroutines only ever talk to it through
// the events channel, so the Game is never touched concurrently.
type Server struct {
	game     *game.Game
	sink     Sink
	sequence SequenceGenerator
	logger   Logger

	events    chan inbound
	snapshots chan chan protocol.Snapshot
	done      chan struct{}
	newID     func() string
}

// inbound is an event on its way to the loop. A Connect may carry the socket
// that joins the hub right before the Game sees it.
type inbound struct {
	event game.Event
	conn  ws.Conn
}

func NewServer(g *game.Game, hub *ws.Hub, logger Logger) *Server {
	return newServer(g, hub, logger)
}

func newServer(g *game.Game, sink Sink, logger Logger) *Server {
	return &Server{
		game:      g,
		sink:      sink,
		sequence:  NewSequence(),
		logger:    logger,
		events:    make(chan inbound, 64),
		snapshots: make(chan chan protocol.Snapshot),
		done:      make(chan struct{}),
		newID:     uuid.NewString,
	}
}

// Run processes events in arrival order until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	defer close(s.done)
	s.logger.Infow("session loop started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("session loop stopped")
			return nil
		case in := <-s.events:
			s.admit(in)
			s.dispatch(s.game.Handle(in.event))
		case reply := <-s.snapshots:
			snap := s.game.Snapshot()
			snap.Connections = s.sink.Len()
			reply <- snap
		}
	}
}

// admit keeps hub membership in step with the Game: a socket receives nothing
// queued before its own Connect, and nothing after its Disconnect.
func (s *Server) admit(in inbound) {
	switch ev := in.event.(type) {
	case game.Connect:
		if in.conn != nil {
			s.sink.Add(ev.ParticipantID, in.conn)
		}
	case game.Disconnect:
		s.sink.Remove(ev.ParticipantID)
	}
}

// Submit queues an event for the loop.
func (s *Server) Submit(ctx context.Context, ev game.Event) error {
	return s.submit(ctx, inbound{event: ev})
}

func (s *Server) submit(ctx context.Context, in inbound) error {
	select {
	case <-s.done:
		return ErrStopped
	default:
	}
	select {
	case s.events <- in:
		return nil
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot reads the table from the loop goroutine.
func (s *Server) Snapshot(ctx context.Context) (protocol.Snapshot, error) {
	reply := make(chan protocol.Snapshot, 1)
	select {
	case s.snapshots <- reply:
	case <-s.done:
		return protocol.Snapshot{}, ErrStopped
	case <-ctx.Done():
		return protocol.Snapshot{}, ctx.Err()
	}
	select {
	case snap := <-reply:
		return snap, nil
	case <-ctx.Done():
		return protocol.Snapshot{}, ctx.Err()
	}
}

func (s *Server) dispatch(out []game.Outbound) {
	for _, o := range out {
		data, err := json.Marshal(protocol.PatchEnvelope{
			Sequence: s.sequence.Next(),
			Type:     o.Type,
			Payload:  o.Payload,
		})
		if err != nil {
			s.logger.Warnw("failed to marshal event", "type", o.Type, "error", err)
			continue
		}

		if o.To == "" {
			if dropped := s.sink.Broadcast(data); len(dropped) > 0 {
				s.logger.Warnw("dropped connections on broadcast", "type", o.Type, "participants", dropped)
			}
			continue
		}
		if !s.sink.SendTo(o.To, data) {
			s.logger.Debugw("direct event not delivered", "type", o.Type, "participant", o.To)
		}
	}
}

// ServeHTTP upgrades the request to a websocket and feeds its frames to the
// loop until the connection closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.logger.Warnw("websocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(maxFrameBytes)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	id := s.newID()
	if err := s.submit(ctx, inbound{event: game.Connect{ParticipantID: id}, conn: conn}); err != nil {
		return
	}
	defer func() {
		// the request context may already be gone, the loop must still hear it
		_ = s.Submit(context.Background(), game.Disconnect{ParticipantID: id})
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			s.logger.Debugw("connection closed", "participant", id, "error", err)
			return
		}
		ev, err := DecodeIntent(id, data)
		if err != nil {
			s.logger.Debugw("ignoring malformed intent", "participant", id, "error", err)
			continue
		}
		if err := s.Submit(ctx, ev); err != nil {
			return
		}
	}
}
