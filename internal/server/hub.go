package server

import (
	"context"
	"sync"

	"github.com/coder/websocket"
)

// reloadHub tracks connected preview browsers and pushes reload messages.
type reloadHub struct {
	mutex   sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newReloadHub() *reloadHub {
	return &reloadHub{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

func (h *reloadHub) register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *reloadHub) unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
}

// broadcast sends msg to every connected client; clients that fail to
// receive are dropped.
func (h *reloadHub) broadcast(ctx context.Context, msg []byte) {
	h.mutex.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mutex.Unlock()

	for _, conn := range conns {
		if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
			h.unregister(conn)
			conn.Close(websocket.StatusGoingAway, "write failed")
		}
	}
}

func (h *reloadHub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.clients {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
	h.clients = make(map[*websocket.Conn]struct{})
}
