package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/resonance-arena/vmath"
)

// AudioConfig holds cue playback settings
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	CueVolumes   map[string]float64 `toml:"cue_volumes"`
}

// DefaultAudioConfig returns enabled audio at 48kHz with unit cue volumes
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   48000,
		CueVolumes:   make(map[string]float64),
	}
}

// CueVolume returns the effective volume of a cue, master included
func (c *AudioConfig) CueVolume(name string) float64 {
	v, ok := c.CueVolumes[name]
	if !ok {
		v = 1
	}
	return vmath.Clamp(v*c.MasterVolume, 0, 1)
}

// LoadAudioConfig applies environment overrides on top of cfg, nil starts from defaults
func LoadAudioConfig(cfg *AudioConfig) *AudioConfig {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if cfg.CueVolumes == nil {
		cfg.CueVolumes = make(map[string]float64)
	}

	if enabled := os.Getenv("ARENA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("ARENA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if cueVols := os.Getenv("ARENA_CUE_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if _, ok := Cues[name]; ok {
					cfg.CueVolumes[name] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("ARENA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
