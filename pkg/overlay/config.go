package overlay

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Colour is an RGBA quadruple of 0..1 floats, as written in style files
type Colour [4]float64

// NRGBA converts to an 8 bit colour
func (c Colour) NRGBA() color.NRGBA {
	channel := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: channel(c[3])}
}

// HandleConfig holds handle colours by interaction state
type HandleConfig struct {
	Active   Colour `yaml:"active"`
	Hover    Colour `yaml:"hover"`
	Normal   Colour `yaml:"normal"`
	Inactive Colour `yaml:"inactive"`
}

// FeedbackConfig holds the feedback panel fonts and colours
type FeedbackConfig struct {
	SizeMain       float64 `yaml:"size_main"`
	SizeTitle      float64 `yaml:"size_title"`
	SizeShortcut   float64 `yaml:"size_shortcut"`
	ColourMain     Colour  `yaml:"colour_main"`
	ColourKey      Colour  `yaml:"colour_key"`
	ColourShortcut Colour  `yaml:"colour_shortcut"`
	ShortcutArea   Colour  `yaml:"shortcut_area"`
	TitleArea      Colour  `yaml:"title_area"`
	Margin         float64 `yaml:"margin"`
}

// CursorConfig holds the cursor guide styles
type CursorConfig struct {
	Width        float64 `yaml:"width"`
	Stipple      bool    `yaml:"stipple"`
	FenceColour  Colour  `yaml:"fence_colour"`
	BorderColour Colour  `yaml:"border_colour"`
	AreaColour   Colour  `yaml:"area_colour"`
}

// Config gathers the toolkit sizes and colour scheme
type Config struct {
	// ArrowSize is the size of arrow handles in world units
	ArrowSize float64 `yaml:"arrow_size"`
	// HandleSize is the hit-test area of handles in pixels
	HandleSize float64        `yaml:"handle_size"`
	LineWidth  float64        `yaml:"line_width"`
	Handle     HandleConfig   `yaml:"handle"`
	Feedback   FeedbackConfig `yaml:"feedback"`
	Cursor     CursorConfig   `yaml:"cursor"`
}

// DefaultConfig returns the stock colour scheme
func DefaultConfig() Config {
	return Config{
		ArrowSize:  0.1,
		HandleSize: 10,
		LineWidth:  1,
		Handle: HandleConfig{
			Active:   Colour{1, 0, 0, 1},
			Hover:    Colour{1, 1, 0, 1},
			Normal:   Colour{1, 1, 1, 1},
			Inactive: Colour{0, 0, 0, 1},
		},
		Feedback: FeedbackConfig{
			SizeMain:       16,
			SizeTitle:      14,
			SizeShortcut:   11,
			ColourMain:     Colour{0.95, 0.95, 0.95, 1},
			ColourKey:      Colour{0.67, 0.67, 0.67, 1},
			ColourShortcut: Colour{0.51, 0.51, 0.51, 1},
			ShortcutArea:   Colour{0, 0.4, 0.6, 0.2},
			TitleArea:      Colour{0, 0.4, 0.6, 0.5},
			Margin:         50,
		},
		Cursor: CursorConfig{
			Width:        1,
			Stipple:      true,
			FenceColour:  Colour{1, 1, 1, 0.5},
			BorderColour: Colour{1, 1, 1, 0.5},
			AreaColour:   Colour{1, 1, 1, 0.1},
		},
	}
}

// LoadConfig reads a YAML style file. Keys absent from the file keep
// their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Style returns a drawable style using the handle colours
func (c Config) Style() Style {
	return Style{
		Width:          c.LineWidth,
		LineStyle:      LineSolid,
		ColourActive:   c.Handle.Active.NRGBA(),
		ColourHover:    c.Handle.Hover.NRGBA(),
		ColourNormal:   c.Handle.Normal.NRGBA(),
		ColourInactive: c.Handle.Inactive.NRGBA(),
	}
}

func (c CursorConfig) lineStyle() LineStyle {
	if c.Stipple {
		return LineStipple
	}
	return LineSolid
}
