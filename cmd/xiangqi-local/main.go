package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/gorilla/handlers"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / js / svg")
	mobileDir := flag.String("web-mobile", "", "directory with mobile assets (defaults to -web)")
	suggestURL := flag.String("suggest", "", "URL of the external move-suggestion service (empty = random fallback)")
	flag.Parse()

	h := httpserver.NewHandler(*suggestURL)
	router := httpserver.NewRouter(h, *webDir, *mobileDir)

	var root http.Handler = router
	root = handlers.LoggingHandler(os.Stdout, root)
	root = handlers.RecoveryHandler()(root)

	if *suggestURL != "" {
		log.Printf("using move-suggestion service at %s", *suggestURL)
	}
	log.Printf("listening on %s, serving static from %s", *addr, *webDir)

	// ⭐ 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
	go func() {
		time.Sleep(100 * time.Millisecond)
		openBrowser("http://127.0.0.1" + *addr)
	}()

	if err := http.ListenAndServe(*addr, root); err != nil {
		log.Fatal(err)
	}
}
