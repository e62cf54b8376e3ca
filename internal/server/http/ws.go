package httpserver

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// 旁观通道：按 game_id 订阅，每走一步就把新状态推给所有订阅者。
type wsHub struct {
	mu   sync.RWMutex
	subs map[string]map[*websocket.Conn]struct{}
}

func newWSHub() *wsHub {
	return &wsHub{subs: make(map[string]map[*websocket.Conn]struct{})}
}

func (h *wsHub) subscribe(gameID string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[gameID] == nil {
		h.subs[gameID] = make(map[*websocket.Conn]struct{})
	}
	h.subs[gameID][c] = struct{}{}
}

func (h *wsHub) unsubscribe(gameID string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.subs[gameID]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.subs, gameID)
		}
	}
}

func (h *wsHub) broadcast(gameID string, v any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.subs[gameID] {
		if err := c.WriteJSON(v); err != nil {
			log.Printf("ws broadcast to %s failed: %v", c.RemoteAddr(), err)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["game_id"]
	g, err := h.games.Get(gameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.hub.subscribe(gameID, conn)

	// 连上先发一份当前状态
	pos := g.Pos
	first := StateResponse{
		Position:   pos.Encode(),
		ToMove:     sideToInt(pos.SideToMove),
		LegalMoves: movesToDTO(pos.GeneratePseudoMoves()),
		History:    movesToDTO(g.Moves),
		Status:     statusOf(pos),
	}
	if err := conn.WriteJSON(first); err != nil {
		h.hub.unsubscribe(gameID, conn)
		conn.Close()
		return
	}

	// 读循环只为感知断开，旁观端不发消息
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.unsubscribe(gameID, conn)
				conn.Close()
				return
			}
		}
	}()
}
