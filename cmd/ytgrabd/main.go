package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ytgrab/ytgrab/internal/config"
	"github.com/ytgrab/ytgrab/internal/fetch"
	"github.com/ytgrab/ytgrab/internal/httpapi"
	"github.com/ytgrab/ytgrab/internal/logging"
	"github.com/ytgrab/ytgrab/internal/strategy"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the config file")
	listen := flag.String("listen", "", "listen address, overrides the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}

	logger, err := logging.New(cfg.Server.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	fallback := strategy.NewYtDLP(sugar)
	fallback.FFmpegPath = cfg.Download.FFmpegPath
	orchestrator := fetch.NewOrchestrator(strategy.NewNative(sugar), fallback, sugar)

	server := httpapi.NewServer(orchestrator, logger)

	sugar.Infow("starting server", "listen", cfg.Server.Listen)
	if err := server.Router().Run(cfg.Server.Listen); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
