package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abenik/maze-sim/api"
	api_i "github.com/abenik/maze-sim/api/i"
	simulationapi "github.com/abenik/maze-sim/api/simulation"
	"github.com/abenik/maze-sim/config"
	"github.com/abenik/maze-sim/logging"
	"github.com/abenik/maze-sim/maze"
	"github.com/abenik/maze-sim/mazegen"
	"github.com/abenik/maze-sim/render"
	"github.com/abenik/maze-sim/service"
	"github.com/abenik/maze-sim/service/i"
)

// Global variables for dependencies
var (
	appLogger    i.Logger
	runnerLogger i.Logger
	runner       *service.Runner
	router       *api.Router
)

func initLoggers() {
	var err error
	appLogger, err = logging.New("APP", config.ColorGreen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}
	runnerLogger, err = logging.New("RUNNER", config.ColorCyan)
	if err != nil {
		appLogger.Error(fmt.Sprintf("creating runner logger: %v", err))
		os.Exit(1)
	}
}

func initRunner(mazePath string) {
	grid, err := maze.FromFile(mazePath)
	if err != nil {
		appLogger.Error(fmt.Sprintf("loading map %q: %v", mazePath, err))
		os.Exit(1)
	}

	runner, err = service.NewRunner(grid, &service.Options{
		SensorSize: config.Envs.SensorSize,
		MaxCycles:  config.Envs.MaxCycles,
		Seed:       config.Envs.RandomSeed,
		FoodSensor: config.Envs.FoodSensor,
		Logger:     runnerLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("creating runner: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("runner initialized on map %q", mazePath))
}

func initRouter() {
	apiLogger, err := logging.New("API", config.ColorMagenta)
	if err != nil {
		appLogger.Error(fmt.Sprintf("creating api logger: %v", err))
		os.Exit(1)
	}

	controller, err := simulationapi.NewController(runner, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("creating simulation controller: %v", err))
		os.Exit(1)
	}

	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{controller},
	})
	appLogger.Info("router initialized")
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: maze-sim <command> [flags]

commands:
  run       run strategies and print the scoreboard
  play      animate one strategy in the terminal
  html      write an HTML animation per strategy
  video     write frames text and an MP4 per strategy
  generate  create a random map file
  serve     start the REST/websocket API`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	initLoggers()

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "play":
		cmdPlay(os.Args[2:])
	case "html":
		cmdHTML(os.Args[2:])
	case "video":
		cmdVideo(os.Args[2:])
	case "generate":
		cmdGenerate(os.Args[2:])
	case "serve":
		cmdServe(os.Args[2:])
	default:
		usage()
	}
}

// splitStrategies turns a comma-separated flag into identifiers; empty means
// every registered strategy.
func splitStrategies(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	mazePath := fs.String("maze", config.Envs.MazePath, "path to the map file")
	strategies := fs.String("strategies", "", "comma-separated strategy ids (default: all)")
	_ = fs.Parse(args)

	initRunner(*mazePath)
	results, err := runner.RunAll(splitStrategies(*strategies))
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	fmt.Println("Scoreboard:")
	for rank, result := range service.Scoreboard(results) {
		fmt.Printf("%d) %s (%s): score=%d steps=%d food=%d/%d goal=%t\n",
			rank+1, result.StrategyLabel, result.StrategyID, result.Score,
			result.StepsTaken, result.FoodCollected, result.FoodTotal, result.GoalReached)
	}
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	mazePath := fs.String("maze", config.Envs.MazePath, "path to the map file")
	strategy := fs.String("strategy", "exploration", "strategy id to animate")
	delayMS := fs.Int("delay", config.Envs.FrameDelayMS, "per-frame delay in milliseconds")
	_ = fs.Parse(args)

	initRunner(*mazePath)
	result, err := runner.Run(*strategy)
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	terminal := render.NewTerminal(os.Stdout)
	if err := terminal.Play(result, time.Duration(*delayMS)*time.Millisecond); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}

func cmdHTML(args []string) {
	fs := flag.NewFlagSet("html", flag.ExitOnError)
	mazePath := fs.String("maze", config.Envs.MazePath, "path to the map file")
	strategies := fs.String("strategies", "", "comma-separated strategy ids (default: all)")
	outDir := fs.String("out", filepath.Join(config.Envs.ResultsDir, "html"), "output directory")
	_ = fs.Parse(args)

	initRunner(*mazePath)
	results, err := runner.RunAll(splitStrategies(*strategies))
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	for _, result := range service.Scoreboard(results) {
		path := filepath.Join(*outDir, result.StrategyID+".html")
		if err := render.SaveAnimationHTML(result, path); err != nil {
			appLogger.Error(fmt.Sprintf("writing %s: %v", path, err))
			os.Exit(1)
		}
		appLogger.Info(fmt.Sprintf("animation saved: %s", path))
	}
}

func cmdVideo(args []string) {
	fs := flag.NewFlagSet("video", flag.ExitOnError)
	mazePath := fs.String("maze", config.Envs.MazePath, "path to the map file")
	strategies := fs.String("strategies", "", "comma-separated strategy ids (default: all)")
	outDir := fs.String("out", filepath.Join(config.Envs.ResultsDir, "videos"), "output directory")
	framesDir := fs.String("frames", filepath.Join(config.Envs.ResultsDir, "frames"), "frames output directory")
	fps := fs.Int("fps", 3, "video frames per second")
	_ = fs.Parse(args)

	initRunner(*mazePath)
	results, err := runner.RunAll(splitStrategies(*strategies))
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	for _, result := range service.Scoreboard(results) {
		framesPath := filepath.Join(*framesDir, result.StrategyID+".txt")
		if err := render.SaveFramesText(result, framesPath); err != nil {
			appLogger.Error(fmt.Sprintf("writing %s: %v", framesPath, err))
			os.Exit(1)
		}
		appLogger.Info(fmt.Sprintf("frames saved: %s", framesPath))

		videoPath := filepath.Join(*outDir, result.StrategyID+".mp4")
		err := render.CreateVideo(result, videoPath, *fps, 20)
		switch {
		case errors.Is(err, render.ErrEncoderUnavailable):
			// Optional dependency: report and keep going.
			appLogger.Warning(err.Error())
		case err != nil:
			appLogger.Error(fmt.Sprintf("writing %s: %v", videoPath, err))
			os.Exit(1)
		default:
			appLogger.Info(fmt.Sprintf("video saved: %s", videoPath))
		}
	}
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	rows := fs.Int("rows", 15, "number of rows (>= 5)")
	cols := fs.Int("cols", 15, "number of columns (>= 5)")
	density := fs.Float64("wall-density", 0.18, "approximate interior wall share (0 to 0.6)")
	food := fs.Int("food", 6, "food tiles to place")
	seed := fs.Int64("seed", config.Envs.RandomSeed, "generator seed")
	blank := fs.Bool("blank", false, "generate only the bordered grid")
	output := fs.String("output", "maps/generated_maze.txt", "output map file")
	_ = fs.Parse(args)

	var (
		lines []string
		err   error
	)
	if *blank {
		lines, err = mazegen.Blank(*rows, *cols)
	} else {
		lines, err = mazegen.Generate(*rows, *cols, &mazegen.Options{
			WallDensity: *density,
			FoodCount:   *food,
			Seed:        *seed,
		})
	}
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	if err := mazegen.Write(lines, *output); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
	if !*blank {
		appLogger.Info(fmt.Sprintf("effective wall density: %.2f", mazegen.EstimateWallDensity(lines)))
	}
	appLogger.Info(fmt.Sprintf("map saved: %s", *output))
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	mazePath := fs.String("maze", config.Envs.MazePath, "path to the map file")
	_ = fs.Parse(args)

	gin.SetMode(config.Envs.GinMode)
	initRunner(*mazePath)
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("starting server: %v", err))
		os.Exit(1)
	}
}
