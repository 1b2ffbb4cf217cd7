package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/dimaq12/minesweeper/game"
	"github.com/dimaq12/minesweeper/models"
)

var errQuit = errors.New("quit")

func main() {
	app := cli.NewApp()
	app.Name = "minesweeper"
	app.Usage = "play minesweeper in the terminal"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "level, l", Usage: "square preset from 1 to 5", EnvVar: "MINESWEEPER_LEVEL"},
		cli.StringFlag{Name: "preset, p", Usage: "named preset: very-beginner, beginner, middle, advanced", EnvVar: "MINESWEEPER_PRESET"},
		cli.IntFlag{Name: "rows", Usage: "override the number of rows"},
		cli.IntFlag{Name: "cols", Usage: "override the number of columns"},
		cli.IntFlag{Name: "mines", Usage: "override the number of mines"},
		cli.Int64Flag{Name: "seed", Usage: "seed for mine placement", EnvVar: "MINESWEEPER_SEED"},
		cli.StringFlag{Name: "ui", Value: "console", Usage: "front-end: console or tui", EnvVar: "MINESWEEPER_UI"},
		cli.StringFlag{Name: "log-level", Value: "warn", Usage: "logrus level", EnvVar: "MINESWEEPER_LOG_LEVEL"},
		cli.StringFlag{Name: "log-file", Usage: "write logs to this file instead of stderr", EnvVar: "MINESWEEPER_LOG_FILE"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	ui := strings.ToLower(c.String("ui"))
	if ui != "console" && ui != "tui" {
		return fmt.Errorf("unknown ui %q (expected console or tui)", ui)
	}

	closeLog, err := setupLogging(c.String("log-level"), c.String("log-file"), ui == "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	input := bufio.NewScanner(os.Stdin)

	level, err := resolveLevel(c, input)
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	log.WithField("level", level).Info("starting game")

	opts := []models.Option{models.WithLogger(log.StandardLogger())}
	if c.IsSet("seed") {
		opts = append(opts, models.WithRand(rand.New(rand.NewSource(c.Int64("seed")))))
	}
	board, err := models.NewBoard(level, opts...)
	if err != nil {
		return err
	}
	board.InitializeGame()

	var service game.GameService
	if ui == "tui" {
		service = game.NewMinesweeperService(board)
	} else {
		service = game.NewConsoleService(board, input, os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	controller := game.NewGameController(service)
	defer controller.TerminateGame()
	return controller.StartGame(ctx)
}

func setupLogging(level, file string, tui bool) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)

	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	case tui:
		// stderr shares the terminal with the full-screen UI
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

// resolveLevel picks the preset from the flags, applies any size overrides,
// and falls back to asking on stdin when nothing was given.
func resolveLevel(c *cli.Context, input *bufio.Scanner) (models.Level, error) {
	var (
		level models.Level
		err   error
	)
	switch {
	case c.IsSet("preset"):
		level, err = models.LevelByName(c.String("preset"))
	case c.IsSet("level"):
		level, err = models.LevelByNumber(c.Int("level"))
	case c.IsSet("rows") && c.IsSet("cols") && c.IsSet("mines"):
		level = models.Level{Name: "custom"}
	default:
		level, err = promptLevel(input)
	}
	if err != nil {
		return models.Level{}, err
	}

	if c.IsSet("rows") {
		level.Rows, level.Name = c.Int("rows"), "custom"
	}
	if c.IsSet("cols") {
		level.Cols, level.Name = c.Int("cols"), "custom"
	}
	if c.IsSet("mines") {
		level.Mines, level.Name = c.Int("mines"), "custom"
	}
	return level, level.Validate()
}

func promptLevel(input *bufio.Scanner) (models.Level, error) {
	for {
		fmt.Print("Enter the level (1-5) or 'q' to quit: ")
		if !input.Scan() {
			if err := input.Err(); err != nil {
				return models.Level{}, fmt.Errorf("error reading input: %w", err)
			}
			return models.Level{}, io.EOF
		}

		text := strings.TrimSpace(input.Text())
		if strings.ToLower(text) == "q" {
			fmt.Println("Quitting...")
			return models.Level{}, errQuit
		}

		n, err := strconv.Atoi(text)
		if err == nil {
			if level, err := models.LevelByNumber(n); err == nil {
				fmt.Println("Level:", n)
				return level, nil
			}
		}

		fmt.Println("Invalid input. Please enter a level between 1 and 5 or 'q' to quit.")
	}
}
