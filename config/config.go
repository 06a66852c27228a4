// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"

	"github.com/HZAU-dl/fisheye/internal/annot"
	"github.com/HZAU-dl/fisheye/internal/fold"
	"github.com/HZAU-dl/fisheye/internal/probe"
	"github.com/spf13/viper"
)

const (
	// DefaultOutDir is where per-gene tables are written
	DefaultOutDir = "primers"

	// CSV is the default output format, one table per gene
	CSV = "csv"

	// JSON writes one JSON document per gene
	JSON = "json"
)

// RegionConfig is for choosing each gene's representative region
type RegionConfig struct {
	// CDS records of this length or shorter are ignored
	MinLength int `mapstructure:"min-length"`
}

// ProbeConfig is for the window layout and self-match length
type ProbeConfig struct {
	// Layout is the window width, segment boundaries and linkers
	Layout probe.Layout `mapstructure:"layout"`

	// MinMatch is the length of substrings compared when self-matching
	MinMatch int `mapstructure:"min-match"`
}

// FoldConfig is for the secondary structure energy model
type FoldConfig struct {
	// Temp is the folding temperature in Celsius
	Temp float64 `mapstructure:"temp"`

	// RNA folds windows as RNA
	RNA bool `mapstructure:"rna"`
}

// ScoreConfig is for the composite score
type ScoreConfig struct {
	// Mode is "per-candidate" or "population"
	Mode string `mapstructure:"mode"`
}

// OutputConfig is for the per-gene results
type OutputConfig struct {
	// Dir is created if it doesn't exist
	Dir string `mapstructure:"dir"`

	// Format is "csv" or "json"
	Format string `mapstructure:"format"`

	// Sort orders each table by ascending score instead of window offset
	Sort bool `mapstructure:"sort"`

	// Plot writes an SVG score profile per gene
	Plot bool `mapstructure:"plot"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Verbose logs the progress of each gene
	Verbose bool `mapstructure:"verbose"`

	// Workers is the number of genes designed in parallel
	Workers int `mapstructure:"workers"`

	Region RegionConfig `mapstructure:"region"`
	Probe  ProbeConfig  `mapstructure:"probe"`
	Fold   FoldConfig   `mapstructure:"fold"`
	Score  ScoreConfig  `mapstructure:"score"`
	Output OutputConfig `mapstructure:"output"`
}

// SetDefaults registers the default settings with Viper.
func SetDefaults(v *viper.Viper) {
	l := probe.DefaultLayout()

	v.SetDefault("verbose", false)
	v.SetDefault("workers", 1)
	v.SetDefault("region.min-length", annot.DefaultMinLength)
	v.SetDefault("probe.min-match", probe.DefaultMinMatch)
	v.SetDefault("probe.layout.window", l.Window)
	v.SetDefault("probe.layout.seg1.start", l.Seg1.Start)
	v.SetDefault("probe.layout.seg1.end", l.Seg1.End)
	v.SetDefault("probe.layout.seg2.start", l.Seg2.Start)
	v.SetDefault("probe.layout.seg2.end", l.Seg2.End)
	v.SetDefault("probe.layout.seg3.start", l.Seg3.Start)
	v.SetDefault("probe.layout.seg3.end", l.Seg3.End)
	v.SetDefault("probe.layout.hold", l.Hold)
	v.SetDefault("probe.layout.pad-linker", l.PadLinker)
	v.SetDefault("probe.layout.amp-linker", l.AmpLinker)
	v.SetDefault("probe.layout.tm3-length", l.Tm3Length)
	v.SetDefault("fold.temp", fold.DefaultTemp)
	v.SetDefault("fold.rna", true)
	v.SetDefault("score.mode", string(probe.PerCandidate))
	v.SetDefault("output.dir", DefaultOutDir)
	v.SetDefault("output.format", CSV)
	v.SetDefault("output.sort", false)
	v.SetDefault("output.plot", false)
}

// New returns a Config populated by the global Viper settings: defaults,
// the optional settings file and any bound command line flags.
func New() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper builds a Config from a Viper instance. If "settings" is set,
// that file is merged over the defaults first.
func FromViper(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks settings that can't be checked by their type alone.
func (c *Config) Validate() error {
	if err := c.Probe.Layout.Validate(); err != nil {
		return fmt.Errorf("bad probe layout: %w", err)
	}
	if c.Probe.MinMatch <= 0 {
		return fmt.Errorf("probe.min-match must be positive, got %d", c.Probe.MinMatch)
	}
	if _, err := probe.ParseMode(c.Score.Mode); err != nil {
		return err
	}
	if c.Output.Format != CSV && c.Output.Format != JSON {
		return fmt.Errorf("unknown output format %q, expected %q or %q", c.Output.Format, CSV, JSON)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("no output directory")
	}
	return nil
}

// ScanOptions converts the probe, fold and score settings to the options
// of a probe.Scan.
func (c *Config) ScanOptions() probe.Options {
	mode, _ := probe.ParseMode(c.Score.Mode)
	return probe.Options{
		Layout:   c.Probe.Layout,
		MinMatch: c.Probe.MinMatch,
		Folder:   fold.Seqfold{Temp: c.Fold.Temp, RNA: c.Fold.RNA},
		Mode:     mode,
		Sort:     c.Output.Sort,
	}
}
