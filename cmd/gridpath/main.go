// Command gridpath generates a random obstacle grid, searches it with one of
// the strategies of package search and shows the search live in the
// terminal.
//
// Usage:
//
//	gridpath [-strategy astar] [-width 100 -height 100] [-seed 42] [-headless] [-png out.png]
//
// Settings come from the environment and an optional .env file (see package
// config); flags override both. Press Escape, Ctrl-C or q to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/pathtrack"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be tested.
func run(args []string, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	seed := resolveSeed(cfg.Seed)
	topo, err := buildTopology(cfg, seed)
	if err != nil {
		return err
	}
	log.Debug("grid built",
		slog.Int64("seed", seed),
		slog.Int("width", topo.Width()),
		slog.Int("height", topo.Height()),
		slog.Int("walls", topo.Walls()),
		slog.Any("source", topo.Source()),
		slog.Any("destination", topo.Destination()))

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	canvas := render.NewCanvas(topo)
	opts := []search.Option{search.WithLogger(log), search.WithObserver(rec), search.WithHeapFrontier()}

	var (
		screen tcell.Screen
		term   *render.Terminal
	)
	if !cfg.Headless {
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err = screen.Init(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		term = render.NewTerminal(screen, canvas, render.WithDelay(cfg.Delay))
		term.Draw()
		opts = append(opts, search.WithOnVisit(term.OnVisit))
	} else {
		opts = append(opts, search.WithOnVisit(canvas.Visit))
	}

	eng, err := search.NewEngine(topo, opts...)
	if err != nil {
		finish(screen)
		return err
	}
	res, err := eng.Run(cfg.Strategy)
	if err != nil {
		finish(screen)
		return err
	}
	if res.Found {
		canvas.Track(pathtrack.Classify(res.Path))
	}
	if term != nil {
		term.Draw()
		term.Wait()
	}
	finish(screen)

	if res.Found {
		if err := pathtrack.Validate(topo, res.Path); err != nil {
			log.Error("invalid path", slog.Any("error", err))
		}
	}
	log.Info("search complete",
		slog.String("run_id", res.RunID.String()),
		slog.String("strategy", res.Strategy.String()),
		slog.Bool("found", res.Found),
		slog.Int("path_cells", len(res.Path)),
		slog.Int("visited", res.Visited),
		slog.Int("expanded", res.Expanded))

	if cfg.PNGPath != "" {
		if err := render.SavePNG(cfg.PNGPath, canvas, cfg.CellSize); err != nil {
			return err
		}
		log.Info("image written", slog.String("path", cfg.PNGPath))
	}
	if cfg.MetricsPath != "" {
		if err := metrics.WriteTextfile(cfg.MetricsPath, reg); err != nil {
			return err
		}
		log.Info("metrics written", slog.String("path", cfg.MetricsPath))
	}
	return nil
}

// finish restores the terminal if it was taken over.
func finish(screen tcell.Screen) {
	if screen != nil {
		screen.Fini()
	}
}

// parseConfig loads the environment configuration and applies the flags that
// were explicitly set on top of it.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	var (
		envFile  = fs.String("env", ".env", "dotenv file to load before reading the environment")
		width    = fs.Int("width", def.Width, "grid columns")
		height   = fs.Int("height", def.Height, "grid rows")
		seed     = fs.Int64("seed", def.Seed, "random seed, 0 for the clock")
		wallCap  = fs.Int("wall-cap", def.WallCap, "walls per column, -1 for width/3")
		strategy = fs.String("strategy", def.Strategy.String(), "bfs, dfs, dfs-iterative or astar")
		source   = fs.String("source", "", "source cell x,y (random when empty)")
		dest     = fs.String("destination", "", "destination cell x,y (random when empty)")
		delay    = fs.Duration("delay", def.Delay, "pause per visited cell")
		pngPath  = fs.String("png", "", "write the final grid to this PNG file")
		cellSize = fs.Int("cell-size", def.CellSize, "PNG pixels per cell")
		metPath  = fs.String("metrics", "", "write Prometheus text metrics to this file")
		headless = fs.Bool("headless", def.Headless, "run without the terminal view")
		logLevel = fs.String("log-level", def.LogLevel.String(), "debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return config.Config{}, err
	}

	var ferr error
	fs.Visit(func(f *flag.Flag) {
		if ferr != nil {
			return
		}
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "seed":
			cfg.Seed = *seed
		case "wall-cap":
			cfg.WallCap = *wallCap
		case "strategy":
			cfg.Strategy, ferr = search.ParseStrategy(*strategy)
		case "source":
			cfg.Source, ferr = flagPoint(*source)
		case "destination":
			cfg.Destination, ferr = flagPoint(*dest)
		case "delay":
			cfg.Delay = *delay
		case "png":
			cfg.PNGPath = *pngPath
		case "cell-size":
			cfg.CellSize = *cellSize
		case "metrics":
			cfg.MetricsPath = *metPath
		case "headless":
			cfg.Headless = *headless
		case "log-level":
			ferr = cfg.LogLevel.UnmarshalText([]byte(*logLevel))
		}
		if ferr != nil {
			ferr = fmt.Errorf("flag -%s: %w", f.Name, ferr)
		}
	})
	return cfg, ferr
}

// flagPoint parses a point flag; empty means random.
func flagPoint(s string) (*gridmap.Point, error) {
	if s == "" {
		return nil, nil
	}
	p, err := config.ParsePoint(s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// buildTopology draws missing endpoints and builds the grid from seed.
func buildTopology(cfg config.Config, seed int64) (*gridmap.Topology, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", gridmap.ErrBadDimensions, cfg.Width, cfg.Height)
	}
	pick := deriveRNG(seed, streamEndpoints)
	src, dst := randomPoint(pick, cfg.Width, cfg.Height), randomPoint(pick, cfg.Width, cfg.Height)
	if cfg.Source != nil {
		src = *cfg.Source
	}
	if cfg.Destination != nil {
		dst = *cfg.Destination
	}

	opts := []gridmap.Option{gridmap.WithRand(deriveRNG(seed, streamWalls))}
	if cfg.WallCap >= 0 {
		opts = append(opts, gridmap.WithWallCap(cfg.WallCap))
	}
	return gridmap.Build(cfg.Width, cfg.Height, src, dst, opts...)
}
