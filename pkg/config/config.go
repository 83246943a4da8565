package config

import (
	"time"

	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/output"
)

// Output controls how results are rendered
type Output struct {
	Format  string `koanf:"format"`
	NoColor bool   `koanf:"no_color"`
	Width   int    `koanf:"width"`
	// Styles names a YAML file overriding the built-in styles
	Styles string `koanf:"styles"`
}

// Input controls sequence parsing
type Input struct {
	Separators string `koanf:"separators"`
}

// Demo lists the sequences evaluated by `sweeps demo`
type Demo struct {
	Sequences [][]int `koanf:"sequences"`
}

// Watch tunes `sweeps watch`
type Watch struct {
	Debounce time.Duration `koanf:"debounce"`
}

// Config is the fully merged configuration
type Config struct {
	Output Output `koanf:"output"`
	Input  Input  `koanf:"input"`
	Demo   Demo   `koanf:"demo"`
	Watch  Watch  `koanf:"watch"`

	// Sources lists the files that contributed, in load order
	Sources []string `koanf:"-"`
}

// Validate checks values that cannot be expressed in the decoder
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("value", c.Output.Format)
	}
	if len(c.Demo.Sequences) == 0 {
		return errors.New(errors.ErrConfigValid, "demo.sequences must not be empty")
	}
	if c.Output.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "output.width must not be negative, got %d", c.Output.Width)
	}
	if c.Watch.Debounce < 0 {
		return errors.Newf(errors.ErrConfigValid, "watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}
