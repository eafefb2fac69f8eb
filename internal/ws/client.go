package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/youruser/photobooth/internal/booth"
	"github.com/youruser/photobooth/internal/frame"
	"github.com/youruser/photobooth/internal/gesture"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The booth is a same-machine session; the browser client is served
	// from anywhere during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	modeNone      = ""
	modeMove      = "move"
	modeTransform = "transform"
)

// command is one inbound gesture message.
type command struct {
	Type string  `json:"type"` // select | move_start | transform_start | pointer | end
	ID   string  `json:"id,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Client is one connected browser session. It holds at most one active
// gesture; a new *_start replaces the previous one and disconnect ends it.
type Client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	store *booth.Store
	log   *slog.Logger

	mode      string
	photoID   string
	move      gesture.Move
	transform gesture.Transform
}

// Serve upgrades the request and runs the client's pumps.
func Serve(hub *Hub, store *booth.Store, log *slog.Logger, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "err", err)
		return
	}
	client := &Client{
		hub:   hub,
		conn:  conn,
		send:  make(chan []byte, 64),
		store: store,
		log:   log,
	}
	hub.register <- client
	go client.writePump()
	client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("websocket read", "err", err)
			}
			break
		}
		var cmd command
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.log.Warn("bad gesture message", "err", err)
			continue
		}
		c.handle(cmd)
	}
}

// handle applies one gesture command against the store. Selecting or
// starting a gesture always raises the entity to the top of the stacking
// order first.
func (c *Client) handle(cmd command) {
	switch cmd.Type {
	case "select":
		if _, err := c.store.Raise(cmd.ID); err != nil {
			c.logNotFound(cmd.ID, err)
		}

	case "move_start":
		p, err := c.store.Raise(cmd.ID)
		if err != nil {
			c.logNotFound(cmd.ID, err)
			return
		}
		c.move = gesture.StartMove(cmd.X, cmd.Y, p.PosX, p.PosY)
		c.mode = modeMove
		c.photoID = p.ID

	case "transform_start":
		p, err := c.store.Raise(cmd.ID)
		if err != nil {
			c.logNotFound(cmd.ID, err)
			return
		}
		cx, cy := frame.DisplayCenter(p.PosX, p.PosY)
		c.transform = gesture.StartTransform(cmd.X, cmd.Y, cx, cy, p.Rotation, p.Scale)
		c.mode = modeTransform
		c.photoID = p.ID

	case "pointer":
		c.pointer(cmd.X, cmd.Y)

	case "end":
		c.mode = modeNone
		c.photoID = ""

	default:
		c.log.Warn("unknown gesture command", "type", cmd.Type)
	}
}

func (c *Client) pointer(px, py float64) {
	if c.mode == modeNone {
		return
	}
	p, err := c.store.Get(c.photoID)
	if err != nil {
		// entity deleted mid-gesture
		c.mode = modeNone
		c.photoID = ""
		return
	}
	switch c.mode {
	case modeMove:
		x, y := c.move.Update(px, py)
		_, err = c.store.SetPlacement(p.ID, x, y, p.Rotation, p.Scale)
	case modeTransform:
		rot, sc := c.transform.Update(px, py)
		_, err = c.store.SetPlacement(p.ID, p.PosX, p.PosY, rot, sc)
	}
	if err != nil && !errors.Is(err, booth.ErrNotFound) {
		c.log.Warn("placement update failed", "id", p.ID, "err", err)
	}
}

func (c *Client) logNotFound(id string, err error) {
	if errors.Is(err, booth.ErrNotFound) {
		c.log.Debug("gesture on missing photo", "id", id)
		return
	}
	c.log.Warn("gesture failed", "id", id, "err", err)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
