// Package config resolves the lvroute CLI configuration.
//
// Sources are applied in order, later ones overriding earlier ones:
//
//  1. Defaults (Default).
//  2. An optional YAML file (Load).
//  3. An optional dotenv file, then the process environment (ApplyEnv), using
//     LVROUTE_* variables.
//  4. Command-line flags, applied by the cli package.
//
// Validate must be called once all sources are merged.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/dijkstra"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "LVROUTE_"

// Unlimited disables the MaxDistance cap.
const Unlimited int64 = -1

// MaxVerifyVertices bounds Verify.Vertices: the exhaustive cross-check
// enumerates simple paths and grows factorially with the vertex count.
const MaxVerifyVertices = 12

// ErrInvalid is returned (wrapped) by Validate and the loaders for unusable values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the merged CLI configuration.
type Config struct {
	LogLevel    string `yaml:"log_level"`    // logrus level name
	LogFormat   string `yaml:"log_format"`   // text, json or auto
	Frontier    string `yaml:"frontier"`     // heap or list
	MaxDistance int64  `yaml:"max_distance"` // Unlimited or a cap ≥ 0

	Verify Verify `yaml:"verify"`
}

// Verify configures the random cross-check run by "lvroute verify".
type Verify struct {
	Vertices    int     `yaml:"vertices"`
	Probability float64 `yaml:"probability"`
	Rounds      int     `yaml:"rounds"`
	Seed        int64   `yaml:"seed"`
	MinWeight   int64   `yaml:"min_weight"`
	MaxWeight   int64   `yaml:"max_weight"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "auto",
		Frontier:    dijkstra.FrontierHeap.String(),
		MaxDistance: Unlimited,
		Verify: Verify{
			Vertices:    7,
			Probability: 0.35,
			Rounds:      20,
			Seed:        1,
			MinWeight:   1,
			MaxWeight:   9,
		},
	}
}

// Load returns Default overlaid with the YAML file at path.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}
	if err = cfg.decode(bytes.NewReader(data)); err != nil {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}

	return cfg, nil
}

// decode overlays YAML from r onto c. An empty document leaves c unchanged.
func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return err
	}

	return nil
}

// LoadEnvFile reads a dotenv file and applies its LVROUTE_* entries.
// Variables already present in the process environment take precedence
// when ApplyEnv(os.LookupEnv) runs afterwards.
func (c *Config) LoadEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return errors.Wrapf(err, "config: read env file %s", path)
	}

	return c.ApplyEnv(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

// ApplyEnv overrides fields from LVROUTE_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("FRONTIER", &c.Frontier)

	ints := []struct {
		name string
		dst  *int64
	}{
		{"MAX_DISTANCE", &c.MaxDistance},
		{"VERIFY_SEED", &c.Verify.Seed},
		{"VERIFY_MIN_WEIGHT", &c.Verify.MinWeight},
		{"VERIFY_MAX_WEIGHT", &c.Verify.MaxWeight},
	}
	for _, f := range ints {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s%s=%q", EnvPrefix, f.name, v)
		}
		*f.dst = n
	}

	counts := []struct {
		name string
		dst  *int
	}{
		{"VERIFY_VERTICES", &c.Verify.Vertices},
		{"VERIFY_ROUNDS", &c.Verify.Rounds},
	}
	for _, f := range counts {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s%s=%q", EnvPrefix, f.name, v)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvPrefix + "VERIFY_PROBABILITY"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sVERIFY_PROBABILITY=%q", EnvPrefix, v)
		}
		c.Verify.Probability = p
	}

	return nil
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "auto":
	default:
		return errors.Wrapf(ErrInvalid, "log_format %q (want text, json or auto)", c.LogFormat)
	}
	if _, err := ParseFrontier(c.Frontier); err != nil {
		return err
	}
	if c.MaxDistance < Unlimited {
		return errors.Wrapf(ErrInvalid, "max_distance %d (want -1 or ≥ 0)", c.MaxDistance)
	}

	v := c.Verify
	if v.Vertices < 1 || v.Vertices > MaxVerifyVertices {
		return errors.Wrapf(ErrInvalid, "verify.vertices %d (want 1..%d)", v.Vertices, MaxVerifyVertices)
	}
	if v.Probability < 0 || v.Probability > 1 {
		return errors.Wrapf(ErrInvalid, "verify.probability %g (want 0..1)", v.Probability)
	}
	if v.Rounds < 1 {
		return errors.Wrapf(ErrInvalid, "verify.rounds %d (want ≥ 1)", v.Rounds)
	}
	if v.MinWeight < 1 || v.MaxWeight < v.MinWeight {
		return errors.Wrapf(ErrInvalid, "verify weights [%d,%d] (want 1 ≤ min ≤ max)", v.MinWeight, v.MaxWeight)
	}

	return nil
}

// ParseFrontier maps "heap" or "list" to a dijkstra.FrontierKind.
func ParseFrontier(name string) (dijkstra.FrontierKind, error) {
	switch name {
	case dijkstra.FrontierHeap.String():
		return dijkstra.FrontierHeap, nil
	case dijkstra.FrontierList.String():
		return dijkstra.FrontierList, nil
	default:
		return 0, errors.Wrapf(ErrInvalid, "frontier %q (want heap or list)", name)
	}
}

// DijkstraOptions translates the search settings into dijkstra options.
// Call Validate first.
func (c Config) DijkstraOptions() []dijkstra.Option {
	kind, _ := ParseFrontier(c.Frontier)
	opts := []dijkstra.Option{dijkstra.WithFrontier(kind)}
	if c.MaxDistance != Unlimited {
		opts = append(opts, dijkstra.WithMaxDistance(c.MaxDistance))
	}

	return opts
}
