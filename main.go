package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/wheel-view/internal/config"
	"github.com/iburimskiy/wheel-view/internal/game"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to a YAML config file")
		logLevelStr = flag.String("log-level", "", "Log level: error, warn, info, debug (overrides config)")
		marks       = flag.Int("marks", 0, "Marks count on the whole wheel (overrides config)")
		snap        = flag.Bool("snap", false, "Snap to the nearest mark when scrolling ends")
		endLock     = flag.Bool("end-lock", false, "Stop rotation one turn away from zero")
		onlyPos     = flag.Bool("only-positive", false, "Keep the angle in [0, 360)")
		noRange     = flag.Bool("no-active-range", false, "Do not tint the marks between zero and the cursor")
		mute        = flag.Bool("mute", false, "Disable the click sound")
		clickFile   = flag.String("click-file", "", "Click sound file (.wav, .mp3, .flac)")
	)
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
	}

	// flags given explicitly win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Logging.Level = *logLevelStr
		case "marks":
			cfg.Wheel.MarksCount = *marks
		case "snap":
			cfg.Wheel.SnapToMarks = *snap
		case "end-lock":
			cfg.Wheel.EndLock = *endLock
		case "only-positive":
			cfg.Wheel.OnlyPositiveValues = *onlyPos
		case "no-active-range":
			cfg.Wheel.ShowActiveRange = !*noRange
		case "mute":
			cfg.Feedback.Sound = !*mute
		case "click-file":
			cfg.Feedback.ClickFile = *clickFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	logLevel, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		fatal(err)
	}
	log := setupLogger(logLevel)
	log.Info("starting", "marks", cfg.Wheel.MarksCount, "snap", cfg.Wheel.SnapToMarks,
		"end_lock", cfg.Wheel.EndLock, "only_positive", cfg.Wheel.OnlyPositiveValues)

	g, err := game.New(cfg, log)
	if err != nil {
		log.Error("create wheel", "err", err)
		game.ShowError(err.Error())
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
