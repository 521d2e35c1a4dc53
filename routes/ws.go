package routes

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/kataras/iris/v12"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsChannel serializes writes; gorilla connections do not allow concurrent
// writers and deliveries can arrive from many senders at once.
type wsChannel struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsChannel) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsChannel) Close() error {
	return c.conn.Close()
}

type inboundFrame struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

// ChatWebSocket upgrades /ws/{id} to the user's chat channel, relays inbound
// frames, and unregisters on disconnect. A failed send never tears down the
// process; the read loop just continues.
func ChatWebSocket(ctx iris.Context) {
	userID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(http.StatusBadRequest)
		return
	}

	conn, upgradeErr := upgrader.Upgrade(ctx.ResponseWriter(), ctx.Request(), nil)
	if upgradeErr != nil {
		// Upgrade already wrote the handshake error
		return
	}

	channel := &wsChannel{conn: conn}
	chatRegistry.Register(userID, channel)
	defer func() {
		chatRegistry.Unregister(userID, channel)
		channel.Close()
	}()

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		if frame.ReceiverID == 0 || frame.Content == "" {
			continue
		}
		if _, err := chatRelay.Send(userID, frame.ReceiverID, frame.Content); err != nil {
			log.Printf("ws: send from user %d failed: %v", userID, err)
		}
	}
}
