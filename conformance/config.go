package conformance

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"
)

// ImagePath is the page-relative path of the reference image.
const ImagePath = "../../../resources/blue-1x1.jpg"

// Config parameterizes a run of the case.
type Config struct {
	ImagePath   string
	Size        image.Point
	Expected    color.RGBA
	Tolerance   int
	Renders     int
	LoadTimeout time.Duration
}

// DefaultConfig returns the standard case: a 512x512 canvas, the blue
// 1x1 image rendered twice, checked for opaque blue within 2 per channel.
func DefaultConfig() Config {
	return Config{
		ImagePath:   ImagePath,
		Size:        image.Pt(512, 512),
		Expected:    color.RGBA{0, 0, 255, 255},
		Tolerance:   2,
		Renders:     2,
		LoadTimeout: 10 * time.Second,
	}
}

// Validate returns an error describing the first invalid field.
func (cfg Config) Validate() error {
	switch {
	case cfg.ImagePath == "":
		return errors.New("no image path")
	case cfg.Size.X <= 0 || cfg.Size.Y <= 0:
		return fmt.Errorf("invalid canvas size %v", cfg.Size)
	case cfg.Tolerance < 0 || cfg.Tolerance > 255:
		return fmt.Errorf("tolerance %d out of range 0..255", cfg.Tolerance)
	case cfg.Renders < 1:
		return fmt.Errorf("render count %d below 1", cfg.Renders)
	case cfg.LoadTimeout <= 0:
		return fmt.Errorf("invalid load timeout %v", cfg.LoadTimeout)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables, as passed by the
// browser runner script's data attributes: image, timeout (a Go duration),
// tolerance and renders.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("image"); ok && v != "" {
		cfg.ImagePath = v
	}
	if v, ok := lookup("timeout"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid $timeout: %w", err)
		}
		cfg.LoadTimeout = d
	}
	if v, ok := lookup("tolerance"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid $tolerance: %w", err)
		}
		cfg.Tolerance = n
	}
	if v, ok := lookup("renders"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid $renders: %w", err)
		}
		cfg.Renders = n
	}
	return cfg.Validate()
}
