package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"xiangqi/internal/config"
	"xiangqi/internal/engine"
	"xiangqi/internal/obslog"
	"xiangqi/internal/server/game"
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

	_ = cmd.Start() // 无图形界面的环境会失败，忽略
}

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (optional)")
	noBrowser := flag.Bool("no-browser", false, "do not open the web UI")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// logger 还没初始化，只能写 stderr
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(2)
	}
	if err := obslog.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer obslog.Sync()
	log := obslog.L()

	e := engine.NewEngine(log.Named("engine"))
	games := game.NewManager(e, cfg.Depth, cfg.MaxDepth, log.Named("game"))
	h := httpserver.NewHandler(games, cfg.FirstColor(), log.Named("http"))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpserver.NewRouter(h, cfg.WebDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("listening",
		zap.String("addr", cfg.Addr),
		zap.String("web_dir", cfg.WebDir),
		zap.Int("depth", cfg.Depth),
		zap.Int("max_depth", cfg.MaxDepth),
		zap.String("first", cfg.First),
	)

	if cfg.WebDir != "" && !*noBrowser {
		// 延迟 100ms 打开浏览器，等服务器起来
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := cfg.Addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host + "/web/")
		}()
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
}
