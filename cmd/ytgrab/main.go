package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ytgrab/ytgrab/internal/config"
	"github.com/ytgrab/ytgrab/internal/control"
	"github.com/ytgrab/ytgrab/internal/fetch"
	"github.com/ytgrab/ytgrab/internal/logging"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/progress"
	"github.com/ytgrab/ytgrab/internal/strategy"
)

func main() {
	os.Exit(run())
}

func run() int {
	outputDir := flag.String("o", ".", "directory where the file will be saved")
	filename := flag.String("n", "", "optional custom filename, extension optional")
	audioOnly := flag.Bool("a", false, "download only the audio stream")
	resolution := flag.String("q", "", "preferred video resolution, e.g. 1080p")
	cookiesFile := flag.String("cookies", "", "path to a cookies.txt file for authenticated downloads")
	configPath := flag.String("config", "config.yml", "path to the config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] URL\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	url := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	logger, err := logging.NewSugared(*debug || cfg.Server.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	cookies := ""
	if *cookiesFile != "" {
		data, err := os.ReadFile(*cookiesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: reading cookies file: %v\n", err)
			return 1
		}
		cookies = string(data)
	}

	mode := model.ModeVideo
	if *audioOnly {
		mode = model.ModeAudioOnly
	}
	req := model.DownloadRequest{
		URL:        url,
		OutputDir:  *outputDir,
		Filename:   *filename,
		Mode:       mode,
		Resolution: *resolution,
		Cookies:    cookies,
	}

	fallback := strategy.NewYtDLP(logger)
	fallback.FFmpegPath = cfg.Download.FFmpegPath
	orchestrator := fetch.NewOrchestrator(strategy.NewNative(logger), fallback, logger)

	throttle := progress.NewThrottler()
	sink := func(percent *float64, message string) {
		if percent == nil {
			if message != "" {
				fmt.Printf("\r%s", message)
			}
			return
		}
		if throttle.ShouldRender(*percent, time.Now()) {
			fmt.Printf("\rDownloading %.0f%%", *percent)
		}
	}

	path, err := orchestrator.Download(context.Background(), req, sink, control.New())
	fmt.Println()
	if err != nil {
		if errors.Is(err, control.ErrCancelled) {
			fmt.Println("Download cancelled")
			return 1
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Printf("Saved to %s\n", path)
	return 0
}
