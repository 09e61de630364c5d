package realtime

import (
	"context"
	"errors"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Serve pumps hub frames to conn until the peer leaves, ctx ends or the hub shuts down.
// Inbound frames are read only to service control messages.
func (hub *Hub) Serve(ctx context.Context, conn *websocket.Conn) {
	client := hub.NewClient()
	client.log.Info("ws client connected", "remote", conn.RemoteAddr().String())
	defer func() {
		hub.CloseClient(client)
		_ = conn.Close()
		client.log.Info("ws client disconnected")
	}()

	go hub.readPump(client, conn)
	hub.writePump(ctx, client, conn)
}

func (hub *Hub) readPump(client *Client, conn *websocket.Conn) {
	defer hub.CloseClient(client)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				client.log.Warn("ws read failed", "error", err)
			}
			return
		}
	}
}

func (hub *Hub) writePump(ctx context.Context, client *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			writeClose(conn)
			return
		case msg, ok := <-client.Outbound:
			if !ok {
				writeClose(conn)
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				if !errors.Is(err, websocket.ErrCloseSent) {
					client.log.Warn("ws write failed", "error", err, "event", msg.Event)
				}
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeClose(conn *websocket.Conn) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
}
