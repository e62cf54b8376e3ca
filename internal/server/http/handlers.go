package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"net/http"

	"xiangqi/internal/server/game"
	"xiangqi/internal/server/suggest"
	"xiangqi/internal/xiangqi"
)

type Handler struct {
	games     *game.Manager
	hub       *wsHub
	suggester *suggest.Client // 未配置时为 nil，suggest 接口退化为随机走子
}

func NewHandler(suggestURL string) *Handler {
	h := &Handler{
		games: game.NewManager(),
		hub:   newWSHub(),
	}
	if suggestURL != "" {
		h.suggester = suggest.NewClient(suggestURL)
	}
	return h
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.games.NewGame()
	resp := NewGameResponse{
		GameID:     g.ID,
		Position:   g.Pos.Encode(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: movesToDTO(g.Pos.GeneratePseudoMoves()),
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	pos := g.Pos
	legal := pos.GeneratePseudoMoves()

	// 确认这步是不是合法招之一
	mv, ok := findMove(legal, dtoToMove(req.Move))
	if !ok {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}

	newPos, ok := pos.ApplyMove(mv)
	if !ok {
		http.Error(w, "apply move failed", http.StatusInternalServerError)
		return
	}
	if err := h.games.Apply(g.ID, newPos, mv); err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	resp := PlayResponse{
		Position:   newPos.Encode(),
		ToMove:     sideToInt(newPos.SideToMove),
		LegalMoves: movesToDTO(newPos.GeneratePseudoMoves()),
		Status:     statusOf(newPos),
	}
	h.hub.broadcast(g.ID, resp)
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	pos := g.Pos
	resp := StateResponse{
		Position:   pos.Encode(),
		ToMove:     sideToInt(pos.SideToMove),
		LegalMoves: movesToDTO(pos.GeneratePseudoMoves()),
		History:    movesToDTO(g.Moves),
		Status:     statusOf(pos),
	}
	writeJSON(w, resp)
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	// MovesFrom 对空格/越界直接给空集，前端可以随便点
	ms := g.Pos.MovesFrom(req.From)
	writeJSON(w, MovesResponse{Moves: movesToDTO(ms)})
}

// 荐招：问外部服务要一步棋。服务给的招法必须先在本地走法集合里
// 验证通过；验证不过或服务失联，就随机挑一步合法招兜底，对局照常进行。
func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	pos := g.Pos
	legal := pos.GeneratePseudoMoves()
	if len(legal) == 0 {
		writeJSON(w, SuggestResponse{
			Move:     MoveDTO{From: -1, To: -1},
			Source:   "fallback",
			Position: pos.Encode(),
			ToMove:   sideToInt(pos.SideToMove),
			Status:   statusOf(pos),
		})
		return
	}

	source := "fallback"
	mv := legal[rand.Intn(len(legal))]
	if h.suggester != nil {
		sm, err := h.suggester.Suggest(r.Context(), pos.Encode(), sideToInt(pos.SideToMove))
		if err != nil {
			if !errors.Is(err, suggest.ErrNoService) {
				log.Printf("suggest service failed, falling back: %v", err)
			}
		} else if validated, ok := findMove(legal, sm); ok {
			mv = validated
			source = "service"
		} else {
			log.Printf("suggest service returned illegal move %+v, falling back", sm)
		}
	}

	newPos, ok := pos.ApplyMove(mv)
	if !ok {
		http.Error(w, "apply move failed", http.StatusInternalServerError)
		return
	}
	if err := h.games.Apply(g.ID, newPos, mv); err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	resp := SuggestResponse{
		Move:       moveToDTO(mv),
		Source:     source,
		Position:   newPos.Encode(),
		ToMove:     sideToInt(newPos.SideToMove),
		LegalMoves: movesToDTO(newPos.GeneratePseudoMoves()),
		Status:     statusOf(newPos),
	}
	h.hub.broadcast(g.ID, resp)
	writeJSON(w, resp)
}

func findMove(legal []xiangqi.Move, want xiangqi.Move) (xiangqi.Move, bool) {
	for _, m := range legal {
		if m == want {
			return m, true
		}
	}
	return xiangqi.Move{}, false
}
