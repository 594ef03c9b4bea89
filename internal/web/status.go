// Package web serves the server-rendered status page.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/Ko-stant/hunter-arena/internal/protocol"
)

// Snapshotter reads the current table
type Snapshotter interface {
	Snapshot(ctx context.Context) (protocol.Snapshot, error)
}

// StatusPage renders the table as an HTML document.
func StatusPage(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>Hunter Arena</title></head><body><h1>Hunter Arena</h1>`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p>Phase: <b>%s</b> | Turn: <b>%s</b> | Restart votes: %d/%d | Connections: %d</p>`,
			templ.EscapeString(s.Phase), templ.EscapeString(turnLabel(s)), s.Votes, s.Total, s.Connections); err != nil {
			return err
		}

		if len(s.Combatants) == 0 {
			_, err := io.WriteString(w, `<p>No combatants connected.</p></body></html>`)
			return err
		}

		if _, err := io.WriteString(w, `<table><tr><th>Combatant</th><th>Class</th><th>HP</th><th>Status</th><th>Effects</th></tr>`); err != nil {
			return err
		}
		for _, c := range s.Combatants {
			status := "alive"
			if !c.Alive {
				status = "dead"
			}
			var effects string
			for i, e := range c.Effects {
				if i > 0 {
					effects += ", "
				}
				effects += fmt.Sprintf("%s (%d)", e.Kind, e.RemainingTurns)
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%d/%d</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(c.DisplayName), templ.EscapeString(c.ClassID),
				c.HP, c.MaxHP, status, templ.EscapeString(effects)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></body></html>`)
		return err
	})
}

func turnLabel(s protocol.Snapshot) string {
	if s.CurrentTurnID == "" {
		return "nobody"
	}
	for _, c := range s.Combatants {
		if c.ID == s.CurrentTurnID {
			return c.DisplayName
		}
	}
	return s.CurrentTurnID
}

func unavailablePage(err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, werr := fmt.Fprintf(w, `<!DOCTYPE html><html><body><p>Status unavailable: %s</p></body></html>`,
			templ.EscapeString(err.Error()))
		return werr
	})
}

// StatusHandler renders a fresh snapshot on every request.
func StatusHandler(source Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		snap, err := source.Snapshot(r.Context())
		if err != nil {
			templ.Handler(unavailablePage(err), templ.WithStatus(http.StatusServiceUnavailable)).ServeHTTP(w, r)
			return
		}
		if err := StatusPage(snap).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// HealthHandler answers liveness checks.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
}
