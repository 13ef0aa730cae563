package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pyramid-solitaire-server/pkg/pyramid"
	"pyramid-solitaire-server/pkg/session"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsMessage is the envelope for every message the server sends on the socket
type wsMessage struct {
	Key     string             `json:"key"`
	Message string             `json:"message,omitempty"`
	Context string             `json:"context,omitempty"`
	State   *pyramid.GameState `json:"state,omitempty"`
}

// wsClient is a single connected client playing its game over a websocket
type wsClient struct {
	conn    *websocket.Conn
	session *session.Session
	send    chan wsMessage
	done    chan struct{}
}

func (m *Mux) getGameUUIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		client := &wsClient{
			conn:    conn,
			session: sessionFromRequest(r),
			send:    make(chan wsMessage, 256),
			done:    make(chan struct{}),
		}

		defer func() {
			close(client.done)
			_ = conn.Close()
		}()

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		go client.writeLoop()

		client.sendState("")
		client.readLoop()
	}
}

// sendState enqueues the current game state, or the failure that prevented it
func (c *wsClient) sendState(context string) {
	state, err := c.session.State()
	if err != nil {
		c.enqueue(wsMessage{Key: "error", Message: err.Error(), Context: context})
		return
	}

	c.enqueue(wsMessage{Key: "game", Context: context, State: state})
}

func (c *wsClient) enqueue(msg wsMessage) {
	select {
	case c.send <- msg:
	default:
		logrus.WithField("session", c.session.ID).Warn("send buffer full, dropping message")
	}
}

func (c *wsClient) readLoop() {
	for {
		var payload pyramid.PayloadIn
		if err := c.conn.ReadJSON(&payload); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).WithField("session", c.session.ID).Error("could not read message")
			}

			return
		}

		state, err := c.session.Act(&payload)
		if err != nil {
			c.enqueue(wsMessage{Key: "error", Message: err.Error(), Context: payload.Context})
			continue
		}

		c.enqueue(wsMessage{Key: "game", Context: payload.Context, State: state})
	}
}

func (c *wsClient) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).WithField("session", c.session.ID).Error("could not write message")
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
