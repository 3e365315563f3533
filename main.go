package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/beka-birhanu/mazer/config"
	"github.com/beka-birhanu/mazer/engine"
)

// Global variables for dependencies
var (
	args      *config.Args
	palette   [8]string
	appLogger *logrus.Logger
	model     *engine.Model
)

func initArgs() {
	var err error
	args, err = config.ParseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger routes diagnostics to the configured log file. Standard
// output belongs to the animation, so without a log file everything is
// discarded.
func initLogger() {
	appLogger = logrus.New()
	appLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if config.Envs.LogFile == "" {
		appLogger.SetOutput(io.Discard)
		return
	}

	file, err := os.OpenFile(config.Envs.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Opening log file: %v\n", err)
		os.Exit(1)
	}
	appLogger.SetOutput(file)
}

func initTheme() {
	var err error
	palette, err = config.LoadTheme(args.Theme)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	appLogger.Info("Theme initialized")
}

func initEngine() {
	model = engine.New(engine.Options{
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		Log:         appLogger,
		Wait:        time.Duration(args.WaitMS) * time.Millisecond,
		Interactive: args.Interactive,
		Agents:      args.Agents,
		MazeStyle:   args.MazeStyle,
		AgentStyle:  args.AgentStyle,
		Color:       args.Color,
		Palette:     palette,
	})
	appLogger.Info("Engine initialized")
}

func main() {
	initArgs()
	initLogger()
	initTheme()
	initEngine()

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Running program: %v", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := model.Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Rendering: %v", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
