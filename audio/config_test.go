package audio

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("ARENA_AUDIO_ENABLED", "false")
	t.Setenv("ARENA_MASTER_VOLUME", "150")
	t.Setenv("ARENA_CUE_VOLUMES", `{"kill":0.25,"bogus":1}`)
	t.Setenv("ARENA_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig(nil)
	testutil.AssertEqual(t, "enabled", cfg.Enabled, false)
	testutil.AssertEqual(t, "master clamped", cfg.MasterVolume, 1.0)
	testutil.AssertEqual(t, "sample rate", cfg.SampleRate, 22050)
	testutil.AssertEqual(t, "kill volume", cfg.CueVolume("kill"), 0.25)
	if _, ok := cfg.CueVolumes["bogus"]; ok {
		t.Error("unknown cue accepted")
	}
}

func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("ARENA_AUDIO_ENABLED", "maybe")
	t.Setenv("ARENA_MASTER_VOLUME", "loud")
	t.Setenv("ARENA_SAMPLE_RATE", "-1")

	def := DefaultAudioConfig()
	cfg := LoadAudioConfig(nil)
	testutil.AssertEqual(t, "enabled", cfg.Enabled, def.Enabled)
	testutil.AssertEqual(t, "master", cfg.MasterVolume, def.MasterVolume)
	testutil.AssertEqual(t, "rate", cfg.SampleRate, def.SampleRate)
}

func TestCueVolumeDefaultsToMaster(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.4
	testutil.AssertEqual(t, "default", cfg.CueVolume("hit"), 0.4)
}
