package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifegrid/internal/board"
	"lifegrid/internal/life"
)

// Config represents the command-line parameters for the application. The
// JSON tags name the keys accepted in a config file.
type Config struct {
	File string `json:"-"`

	Rows    int           `json:"rows"`
	Cols    int           `json:"cols"`
	Scale   int           `json:"scale"`
	TPS     int           `json:"tps"`
	Seed    int64         `json:"seed"`
	Delay   time.Duration `json:"delay"`
	Density float64       `json:"density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:    life.Rows,
		Cols:    life.Cols,
		Scale:   20,
		TPS:     60,
		Delay:   life.Speed,
		Density: life.Density,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "path to a JSON config file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grids (0 picks one from the clock)")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "delay between generations while running")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a random cell starts alive")
}

// LoadFile overlays values from a JSON file onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate rejects values the board cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Delay <= 0:
		return errors.Errorf("delay must be positive, got %v", c.Delay)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0,1], got %v", c.Density)
	}
	return nil
}

// Parse binds c to fs and parses args. When -config names a file, its values
// are applied first and explicit flags still win.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File != "" {
		file := c.File
		if err := c.LoadFile(file); err != nil {
			return err
		}
		c.File = file
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Validate()
}

// BoardOptions converts the config into board settings.
func (c *Config) BoardOptions() board.Options {
	return board.Options{
		Rows:    c.Rows,
		Cols:    c.Cols,
		Delay:   c.Delay,
		Density: c.Density,
		Seed:    c.Seed,
	}
}
