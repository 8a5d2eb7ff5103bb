// Package config loads the run configuration: defaults, optional YAML
// file, validated before use.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the segmentation run.
type Config struct {
	Engine string `yaml:"engine" validate:"omitempty,oneof=native gocv"`

	Preprocess struct {
		MaxDimension         int     `yaml:"maxDimension" validate:"gte=0"`
		BlurRadius           float64 `yaml:"blurRadius" validate:"gte=0"`
		Threshold            uint8   `yaml:"threshold"`
		ComponentCloseRadius float64 `yaml:"componentCloseRadius" validate:"gte=0"`
		ComponentOpenRadius  float64 `yaml:"componentOpenRadius" validate:"gte=0"`
		LabelCloseRadius     float64 `yaml:"labelCloseRadius" validate:"gte=0"`
		LabelOpenRadius      float64 `yaml:"labelOpenRadius" validate:"gte=0"`
		WireEraseRadius      int     `yaml:"wireEraseRadius" validate:"gte=0"`
	} `yaml:"preprocess"`

	Component struct {
		MinArea            float64 `yaml:"minArea" validate:"gte=0"`
		BoxWidthIncrement  int     `yaml:"boxWidthIncrement" validate:"gte=0"`
		BoxHeightIncrement int     `yaml:"boxHeightIncrement" validate:"gte=0"`
	} `yaml:"component"`

	Connection struct {
		MinLength float64 `yaml:"minLength" validate:"gte=0"`
		BoxMargin int     `yaml:"boxMargin" validate:"gte=0"`
	} `yaml:"connection"`

	Label struct {
		MinArea         float64 `yaml:"minArea" validate:"gte=0"`
		BoxWidthMargin  int     `yaml:"boxWidthMargin" validate:"gte=0"`
		BoxHeightMargin int     `yaml:"boxHeightMargin" validate:"gte=0"`
	} `yaml:"label"`

	Segmenter struct {
		PortBoxMargin       int `yaml:"portBoxMargin" validate:"gte=0"`
		ConnectionBoxMargin int `yaml:"connectionBoxMargin" validate:"gte=0"`
		NodeBoxMargin       int `yaml:"nodeBoxMargin" validate:"gte=0"`
	} `yaml:"segmenter"`

	Output struct {
		Dir          string `yaml:"dir"`
		WriteROIs    bool   `yaml:"writeROIs"`
		WriteOverlay bool   `yaml:"writeOverlay"`
	} `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Engine = "native"

	c.Preprocess.MaxDimension = 1600
	c.Preprocess.BlurRadius = 2
	c.Preprocess.Threshold = 128
	c.Preprocess.ComponentCloseRadius = 7
	c.Preprocess.ComponentOpenRadius = 7
	c.Preprocess.LabelCloseRadius = 3
	c.Preprocess.LabelOpenRadius = 1
	c.Preprocess.WireEraseRadius = 3

	c.Component.MinArea = 800
	c.Component.BoxWidthIncrement = 20
	c.Component.BoxHeightIncrement = 20

	c.Connection.MinLength = 30
	c.Connection.BoxMargin = 2

	c.Label.MinArea = 64
	c.Label.BoxWidthMargin = 2
	c.Label.BoxHeightMargin = 2

	c.Segmenter.PortBoxMargin = 2
	c.Segmenter.ConnectionBoxMargin = 2
	c.Segmenter.NodeBoxMargin = 20

	c.Output.Dir = "out"
	c.Output.WriteROIs = true
	c.Output.WriteOverlay = true

	return c
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
