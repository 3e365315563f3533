package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var (
	ErrThemeColors = errors.New("theme must define exactly 8 colors")
)

// themeFile is the on-disk TOML shape of a color theme:
//
//	colors = ["7", "9", "10", "11", "12", "13", "14", "15"]
//
// Entries are lipgloss color values: ANSI indices or hex strings.
type themeFile struct {
	Colors []string `toml:"colors"`
}

// DefaultPalette returns the built-in ANSI palette, mirroring the
// bright-color table the animation was designed against.
func DefaultPalette() [8]string {
	return [8]string{"7", "9", "10", "11", "12", "13", "14", "15"}
}

// LoadTheme reads the palette from a TOML theme file. An empty path yields
// the default palette.
func LoadTheme(path string) ([8]string, error) {
	palette := DefaultPalette()
	if path == "" {
		return palette, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return palette, fmt.Errorf("reading theme: %w", err)
	}

	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return palette, fmt.Errorf("parsing theme: %w", err)
	}
	if len(tf.Colors) != len(palette) {
		return palette, ErrThemeColors
	}

	copy(palette[:], tf.Colors)
	return palette, nil
}
