package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/frontend/console"
	"github.com/sheikhrachel/go-life/frontend/terminal"
	"github.com/sheikhrachel/go-life/frontend/window"
	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	gameName          = "Game of Life"
	defaultConfigFile = "config.json"
)

// Frontend runs the input loop and renderer for a driver until the player quits
type Frontend interface {
	Run(d *game.Driver) error
}

// parseConfig loads the config file and applies command line overrides.
// Three positional integers set rows, columns and cell size.
func parseConfig(args []string) (utils.Config, error) {
	fs := flag.NewFlagSet(gameName, flag.ContinueOnError)
	var (
		configFile = fs.String("config", defaultConfigFile, "path to a JSON config file")
		rows       = fs.Int("rows", 0, "number of grid rows")
		columns    = fs.Int("columns", 0, "number of grid columns")
		cellSize   = fs.Int("cell-size", 0, "cell size in pixels")
		frontend   = fs.String("frontend", "", "window, terminal or console")
		seed       = fs.Int64("seed", 0, "random seed, 0 for time based")
		workers    = fs.Int("workers", 0, "goroutines per generation, 0 for one per CPU")
		pattern    = fs.String("pattern", "", "random, blinker or glider")
	)
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, errors.Wrap(err, "[parseConfig] parsing flags")
	}

	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		if *configFile != defaultConfigFile || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Printf("Using default configuration (%s not found)\n", defaultConfigFile)
		config = utils.DefaultConfig()
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			config.Rows = *rows
		case "columns":
			config.Columns = *columns
		case "cell-size":
			config.CellSize = *cellSize
		case "frontend":
			config.Frontend = *frontend
		case "seed":
			config.Seed = *seed
		case "workers":
			config.Workers = *workers
		case "pattern":
			config.Pattern = *pattern
		}
	})

	if positional := fs.Args(); len(positional) > 0 {
		if len(positional) != 3 {
			return config, errors.Errorf("[parseConfig] want rows columns cell_size, got %d arguments", len(positional))
		}
		dims := make([]int, 3)
		for i, arg := range positional {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return config, errors.Wrapf(err, "[parseConfig] argument %d", i+1)
			}
			dims[i] = n
		}
		config.Rows, config.Columns, config.CellSize = dims[0], dims[1], dims[2]
	}

	return config, config.Validate()
}

// seedFor returns the seed source selected by the config
func seedFor(config utils.Config) (model.SeedFunc, error) {
	if config.Pattern == utils.PatternRandom {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return model.RandomSeed(rand.New(rand.NewSource(seed))), nil
	}

	p, err := model.LookupPattern(config.Pattern)
	if err != nil {
		return nil, err
	}
	return model.CenteredPatternSeed(p, config.Rows, config.Columns), nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game.Driver, error) {
	seed, err := seedFor(config)
	if err != nil {
		return nil, err
	}

	grid, err := model.NewGrid(config.Rows, config.Columns, seed)
	if err != nil {
		return nil, err
	}

	return game.NewDriver(grid, model.NewEngine(config.Workers), config.HistorySize), nil
}

// newFrontend builds the frontend named in the config. The returned
// cleanup func must be called once the frontend has stopped.
func newFrontend(config utils.Config) (Frontend, func(), error) {
	switch config.Frontend {
	case utils.FrontendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, errors.Wrap(err, "[newFrontend] creating screen")
		}
		if err = screen.Init(); err != nil {
			return nil, nil, errors.Wrap(err, "[newFrontend] initializing screen")
		}
		return terminal.New(screen, render.DefaultPalette), screen.Fini, nil
	case utils.FrontendConsole:
		return console.New(os.Stdin, os.Stdout), func() {}, nil
	default:
		return window.New(render.DefaultPalette, config.CellSize), func() {}, nil
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, d *game.Driver) {
	fmt.Printf("Starting %s...\n", gameName)
	fmt.Printf("Grid: %dx%d | Cell size: %dpx | Frontend: %s | Workers: %d\n",
		config.Rows, config.Columns, config.CellSize, config.Frontend, d.Engine().Workers())
	fmt.Printf("Initial living cells: %d\n", d.Grid().CountLivingCells())
}

// displayFinalStats shows a summary once the game has ended
func displayFinalStats(d *game.Driver) {
	stats := d.Stats()
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		d.Generation(), stats.Runtime().Seconds())
	fmt.Printf("Living: %d | Peak: %d | Avg Pop: %.1f | Status: %s\n",
		stats.ActiveCells, stats.PeakPopulation, stats.AveragePopulation, d.Status())
	fmt.Printf("Exited %s\n", gameName)
}
