// Package config loads the YAML styling configuration for SVG export.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RenderConfig controls the geometry and typography of the exported wheel.
// Zero values are replaced with defaults on load, so a partial file only
// needs the keys it overrides.
type RenderConfig struct {
	// Size is the width and height of the square drawing area in pixels;
	// the final SVG adds Margin on every side.
	Size   int `yaml:"size"`
	Margin int `yaml:"margin"`

	// OuterRadius of the wheel. InnerRadius may be zero, which produces
	// pie slices instead of donut segments.
	OuterRadius float64 `yaml:"outer_radius"`
	InnerRadius float64 `yaml:"inner_radius"`

	// HourLabelOffset is added to OuterRadius when placing the 24 hour
	// labels in the per-item view.
	HourLabelOffset float64 `yaml:"hour_label_offset"`

	FontFamily    string `yaml:"font_family"`
	LabelFontSize int    `yaml:"label_font_size"`
	SubFontSize   int    `yaml:"sub_font_size"`
	HourFontSize  int    `yaml:"hour_font_size"`

	// SeparatorColor and SeparatorWidth style the stroke between wedges.
	SeparatorColor string  `yaml:"separator_color"`
	SeparatorWidth float64 `yaml:"separator_width"`

	LabelColor     string `yaml:"label_color"`
	HourLabelColor string `yaml:"hour_label_color"`
	Background     string `yaml:"background"`
}

// DefaultRenderConfig mirrors the reference layout: a 400px wheel with a
// 180px outer radius and full pie slices.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Size:            400,
		Margin:          50,
		OuterRadius:     180,
		InnerRadius:     0,
		HourLabelOffset: 30,
		FontFamily:      "sans-serif",
		LabelFontSize:   16,
		SubFontSize:     14,
		HourFontSize:    14,
		SeparatorColor:  "#ffffff",
		SeparatorWidth:  2,
		LabelColor:      "#ffffff",
		HourLabelColor:  "#374151",
		Background:      "#ffffff",
	}
}

// Load reads a RenderConfig from a YAML file, filling unset keys with
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (RenderConfig, error) {
	cfg := DefaultRenderConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading render config: %w", err)
	}

	var file RenderConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing render config: %w", err)
	}

	cfg.merge(file)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *RenderConfig) merge(o RenderConfig) {
	if o.Size > 0 {
		c.Size = o.Size
	}
	if o.Margin > 0 {
		c.Margin = o.Margin
	}
	if o.OuterRadius > 0 {
		c.OuterRadius = o.OuterRadius
	}
	if o.InnerRadius > 0 {
		c.InnerRadius = o.InnerRadius
	}
	if o.HourLabelOffset > 0 {
		c.HourLabelOffset = o.HourLabelOffset
	}
	if o.FontFamily != "" {
		c.FontFamily = o.FontFamily
	}
	if o.LabelFontSize > 0 {
		c.LabelFontSize = o.LabelFontSize
	}
	if o.SubFontSize > 0 {
		c.SubFontSize = o.SubFontSize
	}
	if o.HourFontSize > 0 {
		c.HourFontSize = o.HourFontSize
	}
	if o.SeparatorColor != "" {
		c.SeparatorColor = o.SeparatorColor
	}
	if o.SeparatorWidth > 0 {
		c.SeparatorWidth = o.SeparatorWidth
	}
	if o.LabelColor != "" {
		c.LabelColor = o.LabelColor
	}
	if o.HourLabelColor != "" {
		c.HourLabelColor = o.HourLabelColor
	}
	if o.Background != "" {
		c.Background = o.Background
	}
}

func (c *RenderConfig) validate() error {
	if c.InnerRadius >= c.OuterRadius {
		return fmt.Errorf("inner_radius (%g) must be smaller than outer_radius (%g)", c.InnerRadius, c.OuterRadius)
	}
	if float64(c.Size) < 2*c.OuterRadius {
		return fmt.Errorf("size (%d) too small for outer_radius (%g)", c.Size, c.OuterRadius)
	}
	return nil
}
