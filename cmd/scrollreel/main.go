// Command scrollreel opens a window that scrubs through a frame sequence as
// the page scrolls.
//
// Frames are read from --assets, laid out as
// {assetRoot}/{category}/{theme}/ezgif-frame-NNN.{ext}.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/phanxgames/scrollreel"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "scrollreel:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("scrollreel", pflag.ContinueOnError)
	var (
		configPath  = fs.StringP("config", "c", "", "YAML config file")
		assets      = fs.StringP("assets", "a", ".", "directory the asset root is resolved against")
		width       = fs.Int("width", 1280, "window width")
		height      = fs.Int("height", 720, "window height")
		fullscreen  = fs.Bool("fullscreen", false, "start fullscreen")
		debug       = fs.Bool("debug", false, "development logging and per-tick stats")
		showFPS     = fs.Bool("fps", false, "show the FPS and loader widget")
		script      = fs.String("script", "", "JSON test script to run")
		screenshots = fs.String("screenshots", "screenshots", "directory for screenshots")
		category    = fs.String("category", "", "initial category")
		theme       = fs.String("theme", "", "initial theme (dark or light)")
		maxFrame    = fs.Int("max-frame-size", -1, "downsample frames larger than this (0 disables)")
		maxLoads    = fs.Int("max-loads", -1, "maximum concurrent background loads (0 is unbounded)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := newLogger(*debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg := scrollreel.DefaultConfig()
	if *configPath != "" {
		if cfg, err = scrollreel.LoadConfigFile(*configPath); err != nil {
			return err
		}
	}
	if fs.Changed("category") {
		cfg.InitialCategory = *category
	}
	if fs.Changed("theme") {
		cfg.InitialTheme = *theme
	}
	if *maxFrame >= 0 {
		cfg.MaxFrameSize = *maxFrame
	}
	if *maxLoads >= 0 {
		cfg.MaxConcurrentLoads = *maxLoads
	}

	src := scrollreel.NewFSSource(os.DirFS(*assets))
	src.MaxSize = cfg.MaxFrameSize

	v, err := scrollreel.NewViewer(cfg, src)
	if err != nil {
		return err
	}
	v.SetDebugMode(*debug)
	v.ScreenshotDir = *screenshots

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := scrollreel.LoadTestScript(data)
		if err != nil {
			return err
		}
		v.SetTestRunner(runner)
	}

	log.Info("starting viewer",
		zap.String("assets", *assets),
		zap.String("category", string(v.Category())),
		zap.Stringer("theme", v.Theme()),
		zap.Int("frames", cfg.FrameCount))

	return scrollreel.Run(v, scrollreel.RunConfig{
		Title:      "Scroll Reel",
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
		ShowFPS:    *showFPS,
		Logger:     log,
	})
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
