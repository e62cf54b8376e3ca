package mobile

import (
	"log"
	"net/http"

	httpserver "xiangqi/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// mobileDir: physical path to the extracted mobile assets
// suggestURL: URL of the move-suggestion service ("" = random fallback)
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, mobileDir string, suggestURL string, port string) {
	h := httpserver.NewHandler(suggestURL)
	router := httpserver.NewRouter(h, webDir, mobileDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, router); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
