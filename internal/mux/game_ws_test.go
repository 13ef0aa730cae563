package mux

import (
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"pyramid-solitaire-server/pkg/pyramid"
)

func TestGameWebSocket(t *testing.T) {
	a := assert.New(t)
	ts, registry := newTestServer(t)

	s, err := registry.Create(pyramid.Options{Rows: 3, Draws: 3, Shuffle: true, Seed: 1})
	a.NoError(err)

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/game/" + s.ID.String() + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	a.NoError(err)
	defer conn.Close()

	// the server pushes the initial state on connect
	var msg wsMessage
	a.NoError(conn.ReadJSON(&msg))
	a.Equal("game", msg.Key)
	a.Equal(43, msg.State.StockLeft)

	a.NoError(conn.WriteJSON(pyramid.PayloadIn{
		Action:         pyramid.ActionDiscard,
		AdditionalData: pyramid.AdditionalData{"drawIndex": float64(1)},
		Context:        "move-1",
	}))

	a.NoError(conn.ReadJSON(&msg))
	a.Equal("game", msg.Key)
	a.Equal("move-1", msg.Context)
	a.Equal(42, msg.State.StockLeft)

	a.NoError(conn.WriteJSON(pyramid.PayloadIn{
		Action:  "shuffle",
		Context: "move-2",
	}))

	a.NoError(conn.ReadJSON(&msg))
	a.Equal("error", msg.Key)
	a.Equal("move-2", msg.Context)
	a.Equal("unknown action: shuffle", msg.Message)
}

func TestGameWebSocket_unknownGame(t *testing.T) {
	a := assert.New(t)
	ts, _ := newTestServer(t)

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/game/b29c33e9-a296-4c89-9b99-5e25daf0e41f/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	a.Error(err)
	a.Nil(conn)
	a.Equal(404, resp.StatusCode)
}
