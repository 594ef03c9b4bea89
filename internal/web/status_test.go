package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ko-stant/hunter-arena/internal/protocol"
)

type fakeSnapshotter struct {
	snap protocol.Snapshot
	err  error
}

func (f fakeSnapshotter) Snapshot(context.Context) (protocol.Snapshot, error) {
	return f.snap, f.err
}

func TestStatusHandler_RendersTable(t *testing.T) {
	snap := protocol.Snapshot{
		Combatants: []protocol.CombatantLite{
			{ID: "a", DisplayName: "🐺 <Lua>", ClassID: "Lobisomem", HP: 52, MaxHP: 70, Alive: true,
				Effects: []protocol.EffectLite{{Kind: "absorb_and_release", RemainingTurns: 2}}},
			{ID: "b", DisplayName: "🧛 Jogador", ClassID: "Vampiro", HP: 0, MaxHP: 60},
		},
		CurrentTurnID: "a",
		Phase:         "awaiting_action",
		Votes:         1,
		Total:         2,
		Connections:   3,
	}
	rec := httptest.NewRecorder()

	StatusHandler(fakeSnapshotter{snap: snap}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Restart votes: 1/2 | Connections: 3")
	assert.Contains(t, body, "&lt;Lua&gt;")
	assert.NotContains(t, body, "<Lua>")
	assert.Contains(t, body, "52/70")
	assert.Contains(t, body, "absorb_and_release (2)")
	assert.Contains(t, body, "dead")
}

func TestStatusHandler_EmptyTable(t *testing.T) {
	rec := httptest.NewRecorder()

	StatusHandler(fakeSnapshotter{snap: protocol.Snapshot{Phase: "idle"}}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rec.Body.String(), "No combatants connected.")
	assert.Contains(t, rec.Body.String(), "Turn: <b>nobody</b>")
}

func TestStatusHandler_Unavailable(t *testing.T) {
	rec := httptest.NewRecorder()

	StatusHandler(fakeSnapshotter{err: errors.New("stopped")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "stopped")
}

func TestStatusHandler_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()

	StatusHandler(fakeSnapshotter{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()

	HealthHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
