package config

import (
	"fmt"

	"github.com/akamensky/argparse"
)

// Args holds the command-line configuration. Flags override the
// environment defaults from Envs.
type Args struct {
	MazeStyle   int    // Maze render style index; -1 rolls one per maze
	Color       int    // Wall palette color 0-7; -1 rolls one per maze
	AgentStyle  int    // Agent glyph style index; -1 rolls one per maze
	Agents      int    // Number of solver agents
	WaitMS      int    // Delay between frames in milliseconds
	Interactive bool   // Advance one frame per keypress instead of a timer
	Theme       string // Path to a TOML color theme, empty for the default
}

// ParseArgs parses command-line arguments (including the program name in
// arguments[0]) and validates ranges.
func ParseArgs(arguments []string) (*Args, error) {
	parser := argparse.NewParser("mazer", "Generates and solves mazes in the terminal")

	mazeStyle := parser.Int("m", "maze-style", &argparse.Options{
		Default: -1,
		Help:    "Maze render style (0-5); rolled per maze when omitted",
	})
	color := parser.Int("c", "color", &argparse.Options{
		Default: -1,
		Help:    "Wall color (0-7); rolled per maze when omitted",
	})
	agentStyle := parser.Int("a", "agent-style", &argparse.Options{
		Default: -1,
		Help:    "Agent glyph style (0-2); rolled per maze when omitted",
	})
	agents := parser.Int("n", "agents", &argparse.Options{
		Default: Envs.Agents,
		Help:    "Number of solver agents",
	})
	wait := parser.Int("w", "wait", &argparse.Options{
		Default: Envs.FrameDelayMS,
		Help:    "Delay between frames in milliseconds; 0 renders flat out",
	})
	interactive := parser.Flag("i", "interactive", &argparse.Options{
		Help: "Wait for a keypress between frames",
	})
	theme := parser.String("t", "theme", &argparse.Options{
		Default: "",
		Help:    "Path to a TOML color theme file",
	})

	if err := parser.Parse(arguments); err != nil {
		return nil, err
	}

	if *color > 7 {
		return nil, fmt.Errorf("color must be between 0 and 7, got %d", *color)
	}
	if *agents < 1 {
		return nil, fmt.Errorf("agents must be at least 1, got %d", *agents)
	}
	if *wait < 0 {
		return nil, fmt.Errorf("wait must not be negative, got %d", *wait)
	}

	return &Args{
		MazeStyle:   *mazeStyle,
		Color:       *color,
		AgentStyle:  *agentStyle,
		Agents:      *agents,
		WaitMS:      *wait,
		Interactive: *interactive,
		Theme:       *theme,
	}, nil
}
