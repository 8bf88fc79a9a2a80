package mobile

import (
	"net/http"

	"go.uber.org/zap"

	"xiangqi/internal/engine"
	"xiangqi/internal/obslog"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
	"xiangqi/internal/xiangqi"
)

// NewHandler 组装和桌面版相同的 /api/* 与静态页面
func NewHandler(webDir string, depth int) http.Handler {
	log := obslog.L()
	games := game.NewManager(engine.NewEngine(log.Named("engine")), depth, 0, log.Named("game"))
	return httpserver.NewRouter(httpserver.NewHandler(games, xiangqi.Red, log.Named("http")), webDir)
}

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
// depth: AI search depth, <=0 uses the engine default
func StartServer(webDir string, port string, depth int) {
	h := NewHandler(webDir, depth)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, h); err != nil {
			obslog.L().Error("server error", zap.Error(err))
		}
	}()
}
