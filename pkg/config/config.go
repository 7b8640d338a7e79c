// Package config loads blockview settings from TOML.
//
// A configuration file overrides any subset of the defaults:
//
//	[metrics]
//	statement_indent = 40
//
//	[style]
//	highlight_color = "#ff8800"
//
//	[workspace]
//	rtl = true
//	scale = 2.0
//
// Keys not present keep their [Default] values. Unknown keys are rejected so
// typos do not silently fall back to defaults.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/render/block/connector"
	"github.com/matzehuels/blockview/pkg/render/block/styles"
	"github.com/matzehuels/blockview/pkg/workspace"
)

// Config is the full set of tunables.
type Config struct {
	Metrics   connector.Metrics `toml:"metrics"`
	Style     Style             `toml:"style"`
	Workspace Workspace         `toml:"workspace"`
}

// Style holds the paints as hex colour strings.
type Style struct {
	OutlineColor   string  `toml:"outline_color"`
	OutlineWidth   float64 `toml:"outline_width"`
	HighlightColor string  `toml:"highlight_color"`
	HighlightWidth float64 `toml:"highlight_width"`
	ConnectedColor string  `toml:"connected_color"`
	OpenColor      string  `toml:"open_color"`
	CenterRadius   float64 `toml:"center_radius"`
}

// Workspace holds the layout direction and zoom.
type Workspace struct {
	RTL   bool    `toml:"rtl"`
	Scale float64 `toml:"scale"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Metrics: connector.DefaultMetrics(),
		Style: Style{
			OutlineColor:   "#000000",
			OutlineWidth:   1,
			HighlightColor: "#ffff00",
			HighlightWidth: 5,
			ConnectedColor: "#00ff00",
			OpenColor:      "#00ffff",
			CenterRadius:   10,
		},
		Workspace: Workspace{Scale: 1},
	}
}

// Load reads the TOML file at path on top of the defaults and validates
// the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data))
}

// Parse decodes TOML text on top of the defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks metrics, colours, widths and scale.
func (c Config) Validate() error {
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if c.Workspace.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workspace scale must be positive, got %v", c.Workspace.Scale)
	}
	if c.Style.OutlineWidth < 0 || c.Style.HighlightWidth < 0 || c.Style.CenterRadius < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style widths must be non-negative")
	}
	_, err := c.BlockStyle()
	return err
}

// BlockStyle converts the colour strings into a [styles.Style].
func (c Config) BlockStyle() (styles.Style, error) {
	st := styles.Style{
		OutlineWidth:   c.Style.OutlineWidth,
		HighlightWidth: c.Style.HighlightWidth,
		CenterRadius:   c.Style.CenterRadius,
	}
	colors := []struct {
		key string
		hex string
		dst *colorful.Color
	}{
		{"outline_color", c.Style.OutlineColor, &st.Outline},
		{"highlight_color", c.Style.HighlightColor, &st.Highlight},
		{"connected_color", c.Style.ConnectedColor, &st.Connected},
		{"open_color", c.Style.OpenColor, &st.Open},
	}
	for _, col := range colors {
		parsed, err := colorful.Hex(col.hex)
		if err != nil {
			return styles.Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "style %s %q", col.key, col.hex)
		}
		*col.dst = parsed
	}
	return st, nil
}

// Helper returns the workspace helper for the configured direction and scale.
func (c Config) Helper() *workspace.Helper {
	return workspace.NewHelper(c.Workspace.RTL, c.Workspace.Scale)
}
