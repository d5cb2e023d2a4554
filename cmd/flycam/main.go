package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/leterax/go-flycam/internal/config"
	"github.com/leterax/go-flycam/internal/log"
	"github.com/leterax/go-flycam/pkg/viewer"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a YAML config file (empty for defaults)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	noVSync := flag.Bool("novsync", false, "Disable vsync")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *noVSync {
		cfg.Window.VSync = false
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}
	logger, err := log.New(level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With(log.String("session", uuid.NewString()))
	defer logger.Sync()

	logger.Info("starting flycam",
		log.String("config", *configPath),
		log.Int("width", cfg.Window.Width),
		log.Int("height", cfg.Window.Height),
		log.Int("tick_rate", cfg.Simulation.TickRate),
	)

	v, err := viewer.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize viewer", log.Err(err))
	}

	v.Run()
}
