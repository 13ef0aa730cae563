package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"

	"pyramid-solitaire-server/pkg/session"
)

type ctxKey int

const ctxSessionKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *session.Registry
}

// NewMux returns a new HTTP mux
func NewMux(version string, registry *session.Registry) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Use(this.gameMiddleware)

	gr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
	gr.Methods(http.MethodDelete).Path("").Handler(this.deleteGameUUID())
	gr.Methods(http.MethodPost).Path("/action").Handler(this.postGameUUIDAction())
	gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameUUIDWS())

	return this
}

// gameMiddleware resolves the session from the uuid path segment
func (m *Mux) gameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		s := m.registry.Get(id)
		if s == nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
	})
}

func withSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, ctxSessionKey, s)
}

func sessionFromRequest(r *http.Request) *session.Session {
	return r.Context().Value(ctxSessionKey).(*session.Session)
}
