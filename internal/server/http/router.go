package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter 挂好全部路由：JSON API、旁观 WebSocket、静态页面。
func NewRouter(h *Handler, desktopDir, mobileDir string) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/new_game", h.handleNewGame).Methods(http.MethodPost)
	api.HandleFunc("/play", h.handlePlay).Methods(http.MethodPost)
	api.HandleFunc("/state", h.handleState).Methods(http.MethodPost)
	api.HandleFunc("/moves", h.handleMoves).Methods(http.MethodPost)
	api.HandleFunc("/suggest", h.handleSuggest).Methods(http.MethodPost)
	api.HandleFunc("/diagram", h.handleDiagram).Methods(http.MethodGet)

	r.HandleFunc("/ws/{game_id}", h.handleWS)

	RegisterStaticRoutes(r, desktopDir, mobileDir)
	return r
}
