// Command gridsearch runs one path search from the terminal, or serves the
// JSON API with "gridsearch serve".
//
//	gridsearch [-algo astar] [-maze recursive] [-seed 42] [-grid board.txt]
//	gridsearch serve
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := newLogger(cfg.LogLevel)

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		err = serve(cfg, log)
	} else {
		err = run(cfg, log, os.Args[1:], os.Stdout)
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.WithError(err).Error("gridsearch failed")
		os.Exit(1)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func serve(cfg config.Config, log *logrus.Logger) error {
	router := server.NewRouter(server.Config{
		Addr:    cfg.Addr,
		BaseURL: "/api",
		GinMode: cfg.GinMode,
		Logger:  log,
		Controllers: []server.Controller{
			server.NewSearchController(log),
			server.NewMazeController(cfg, log),
		},
	})
	log.WithField("addr", cfg.Addr).Info("gridsearch server listening")
	return router.Run()
}

// run executes one search and prints the annotated board followed by metrics.
func run(cfg config.Config, log *logrus.Logger, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	algo := fs.String("algo", string(search.AlgoAStar), "search algorithm: dijkstra, astar, bfs, dfs, greedy")
	gen := fs.String("maze", "", "maze generator applied first: random, recursive, pattern")
	seed := fs.Int64("seed", cfg.MazeSeed, "generator seed; 0 picks one from the clock")
	file := fs.String("grid", "", "board file using . # S F; defaults to the configured empty board")
	if err := fs.Parse(args); err != nil {
		return err
	}

	alg, err := search.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}
	g, err := loadGrid(cfg, *file)
	if err != nil {
		return err
	}

	if *gen != "" {
		generator, err := maze.ParseGenerator(*gen)
		if err != nil {
			return err
		}
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		g, err = maze.Generate(generator, g, g.Start, g.Finish,
			maze.WithSeed(*seed), maze.WithWallProbability(cfg.WallProbability))
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"generator": generator, "seed": *seed}).Info("maze generated")
	}

	began := time.Now()
	res, err := search.Run(alg, g, g.Start, g.Finish)
	if err != nil {
		return err
	}
	elapsed := time.Since(began)

	for _, line := range overlay(g, res) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "algorithm: %s\nfound: %t\nnodes visited: %d\npath length: %d\nexecution time: %s\n",
		alg, res.Found(), res.Visited(), res.PathLength(), elapsed)
	return nil
}

// loadGrid reads a text board from path, or builds the configured one.
func loadGrid(cfg config.Config, path string) (*grid.Grid, error) {
	if path == "" {
		return cfg.Grid()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return grid.Parse(lines)
}
