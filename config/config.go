// Package config loads the arena's TOML configuration
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	goerrors "github.com/pixil98/go-errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/resonance-arena/audio"
	"github.com/lixenwraith/resonance-arena/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Seed    uint64            `toml:"seed"`
	Arena   ArenaConfig       `toml:"arena"`
	Audio   audio.AudioConfig `toml:"audio"`
	Feed    FeedConfig        `toml:"feed"`
	Summary SummaryConfig     `toml:"summary"`
	Log     LogConfig         `toml:"log"`
}

func (c *Config) Validate() error {
	el := goerrors.NewErrorList()

	el.Add(c.Arena.Validate())
	el.Add(c.Feed.Validate())
	el.Add(c.Summary.Validate())
	el.Add(c.Log.Validate())

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		el.Add(fmt.Errorf("audio.master_volume must be within [0, 1]"))
	}
	if c.Audio.SampleRate <= 0 {
		el.Add(fmt.Errorf("audio.sample_rate must be positive"))
	}

	if err := el.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ArenaConfig shapes the default geometry
type ArenaConfig struct {
	Count    int     `toml:"count"`
	Radius   float64 `toml:"radius"`
	Corridor float64 `toml:"corridor"`
}

func (c *ArenaConfig) Validate() error {
	el := goerrors.NewErrorList()

	if c.Count < 1 {
		el.Add(fmt.Errorf("arena.count must be at least 1"))
	}
	if c.Radius < parameter.MinArenaRadius {
		el.Add(fmt.Errorf("arena.radius must be at least %.0f", parameter.MinArenaRadius))
	}
	if c.Corridor < 0 || c.Corridor >= c.Radius {
		el.Add(fmt.Errorf("arena.corridor must be within [0, radius)"))
	}

	return el.Err()
}

// FeedConfig controls the websocket snapshot feed
type FeedConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
	Path    string `toml:"path"`
	Rate    int    `toml:"rate"` // snapshots per second
}

func (c *FeedConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	el := goerrors.NewErrorList()

	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		el.Add(fmt.Errorf("feed.addr: %w", err))
	}
	if !strings.HasPrefix(c.Path, "/") {
		el.Add(fmt.Errorf("feed.path must start with /"))
	}
	if c.Rate < 1 || c.Rate > parameter.TickRate {
		el.Add(fmt.Errorf("feed.rate must be within [1, %d]", parameter.TickRate))
	}

	return el.Err()
}

// SummaryConfig names the NATS destination for run summaries, empty URL disables it
type SummaryConfig struct {
	NatsURL string `toml:"nats_url"`
	Subject string `toml:"subject"`
}

func (c *SummaryConfig) Validate() error {
	if c.NatsURL == "" {
		return nil
	}
	if c.Subject == "" || strings.ContainsAny(c.Subject, " \t") {
		return fmt.Errorf("summary.subject must be a non-empty subject without whitespace")
	}
	return nil
}

// LogConfig sets the debug log file, written only when debug logging is on
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

func (c *LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Level)
	}
}

// Default returns a config that passes validation
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Count:    parameter.DefaultArenaCount,
			Radius:   parameter.DefaultArenaRadius,
			Corridor: parameter.DefaultCorridorWidth,
		},
		Audio: *audio.DefaultAudioConfig(),
		Feed: FeedConfig{
			Addr: "127.0.0.1:8088",
			Path: "/feed",
			Rate: 20,
		},
		Summary: SummaryConfig{Subject: "arena.runs"},
		Log:     LogConfig{File: "arena-debug.log", Level: "debug"},
	}
}

// Parse decodes TOML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path, empty path means defaults; audio env overrides apply last
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}
	audio.LoadAudioConfig(&cfg.Audio)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
