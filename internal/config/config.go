package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 480
	WindowHeight = 320

	// Wheel view size, matches the sample screen
	WheelWidth         = 200
	WheelHeight        = 64
	WheelPaddingBottom = 32

	// Marks count slider range of the sample screen
	MinMarksCount = 10
	MaxMarksCount = 100

	// Pointer velocity is estimated over this window
	VelocityWindowMS = 100

	ClickSampleRate = 44100
)

// Config is the YAML configuration of the wheel demo.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Wheel    WheelConfig    `yaml:"wheel"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type WheelConfig struct {
	MarksCount         int    `yaml:"marks_count"`
	NormalColor        string `yaml:"normal_color"`
	ActiveColor        string `yaml:"active_color"`
	ShowActiveRange    bool   `yaml:"show_active_range"`
	SnapToMarks        bool   `yaml:"snap_to_marks"`
	EndLock            bool   `yaml:"end_lock"`
	OnlyPositiveValues bool   `yaml:"only_positive_values"`
	Width              int    `yaml:"width"`
	Height             int    `yaml:"height"`
	PaddingBottom      int    `yaml:"padding_bottom"`
}

// FeedbackConfig controls the click played when the wheel passes a mark.
// ClickFile replaces the synthesized click with a .wav, .mp3 or .flac
// file. Volume uses beep's base 2 scale, 0 leaves the click unchanged.
type FeedbackConfig struct {
	Sound           bool    `yaml:"sound"`
	ClickFile       string  `yaml:"click_file,omitempty"`
	Volume          float64 `yaml:"volume"`
	MaxClicksPerSec float64 `yaml:"max_clicks_per_sec"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Horizontal Wheel View - drag the wheel, H: help, Esc/Q: Quit",
		},
		Wheel: WheelConfig{
			MarksCount:      40,
			NormalColor:     "#ffffff",
			ActiveColor:     "#54acf0",
			ShowActiveRange: true,
			Width:           WheelWidth,
			Height:          WheelHeight,
			PaddingBottom:   WheelPaddingBottom,
		},
		Feedback: FeedbackConfig{
			Sound:           true,
			Volume:          -1,
			MaxClicksPerSec: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file on top of the defaults. Unknown fields are
// rejected.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the config can be used to build the wheel.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Wheel.MarksCount < 1 {
		errs = append(errs, fmt.Errorf("wheel.marks_count %d must be at least 1", c.Wheel.MarksCount))
	}
	if c.Wheel.Width <= 0 || c.Wheel.Height <= 0 {
		errs = append(errs, fmt.Errorf("wheel size %dx%d must be positive", c.Wheel.Width, c.Wheel.Height))
	}
	if c.Wheel.PaddingBottom < 0 || c.Wheel.PaddingBottom >= c.Wheel.Height {
		errs = append(errs, fmt.Errorf("wheel.padding_bottom %d must be in [0, height)", c.Wheel.PaddingBottom))
	}
	if _, err := ParseColor(c.Wheel.NormalColor); err != nil {
		errs = append(errs, fmt.Errorf("wheel.normal_color: %w", err))
	}
	if _, err := ParseColor(c.Wheel.ActiveColor); err != nil {
		errs = append(errs, fmt.Errorf("wheel.active_color: %w", err))
	}
	if c.Feedback.MaxClicksPerSec <= 0 {
		errs = append(errs, fmt.Errorf("feedback.max_clicks_per_sec %v must be positive", c.Feedback.MaxClicksPerSec))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "error", "warn", "warning", "info", "debug":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q must be error, warn, info or debug", c.Logging.Level))
	}
	return errors.Join(errs...)
}

// ParseColor parses an opaque "#rrggbb" colour.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// FormatColor is the inverse of ParseColor, alpha is dropped.
func FormatColor(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
