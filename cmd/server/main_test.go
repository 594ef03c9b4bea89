package main

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ko-stant/hunter-arena/internal/catalog"
	"github.com/Ko-stant/hunter-arena/internal/game"
	"github.com/Ko-stant/hunter-arena/internal/session"
	"github.com/Ko-stant/hunter-arena/internal/ws"
)

func TestClassesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"classes"})

	require.NoError(t, cmd.Execute())

	parsed, err := catalog.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Len(t, parsed.Classes(), 3)
}

func TestRoutes(t *testing.T) {
	g := game.New(catalog.Default(), game.DefaultRules(), rand.New(rand.NewSource(1)), zap.NewNop().Sugar())
	srv := session.NewServer(g, ws.NewHub(time.Second), zap.NewNop().Sugar())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = srv.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	httpServer := httptest.NewServer(routes(srv))
	t.Cleanup(httpServer.Close)

	body := get(t, httpServer.URL+"/healthz", http.StatusOK)
	assert.Equal(t, "ok", body)

	body = get(t, httpServer.URL+"/", http.StatusOK)
	assert.Contains(t, body, "No combatants connected.")

	get(t, httpServer.URL+"/missing", http.StatusNotFound)
}

func get(t *testing.T, url string, wantStatus int) string {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, wantStatus, resp.StatusCode)
	return string(data)
}
