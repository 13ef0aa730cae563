package mux

import (
	"net/http"

	"pyramid-solitaire-server/internal/config"
	"pyramid-solitaire-server/pkg/pyramid"
)

type createGameRequest struct {
	Rows  int `json:"rows"`
	Draws int `json:"draws"`
	// Seed pins the shuffle; meant for tests and puzzle sharing
	Seed int64 `json:"seed"`
}

type gameResponse struct {
	ID    string             `json:"id"`
	State *pyramid.GameState `json:"state"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createGameRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		cfg := config.Instance()
		if payload.Rows == 0 {
			payload.Rows = cfg.Game.DefaultRows
		}

		if payload.Draws == 0 {
			payload.Draws = cfg.Game.DefaultDraws
		}

		s, err := m.registry.Create(pyramid.Options{
			Rows:    payload.Rows,
			Draws:   payload.Draws,
			Shuffle: true,
			Seed:    payload.Seed,
		})
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		state, err := s.State()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, gameResponse{
			ID:    s.ID.String(),
			State: state,
		})
	}
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)

		state, err := s.State()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, gameResponse{
			ID:    s.ID.String(),
			State: state,
		})
	}
}

func (m *Mux) deleteGameUUID() http.HandlerFunc {
	type deleteResponse struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFromRequest(r)
		if !m.registry.Delete(s.ID) {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{Status: "OK"})
	}
}

// postGameUUIDAction applies one move. Every engine failure is a precondition
// the client can correct, so they all surface as 400s
func (m *Mux) postGameUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload pyramid.PayloadIn
		if !decodeRequest(w, r, &payload) {
			return
		}

		s := sessionFromRequest(r)

		state, err := s.Act(&payload)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, gameResponse{
			ID:    s.ID.String(),
			State: state,
		})
	}
}
