package audio

import (
	"errors"
	"time"
)

// Recipe describes a synthesized cue: one or two notes through an attack/release envelope
type Recipe struct {
	Wave     WaveType
	Freq     float64
	Freq2    float64 // second note, zero for a single note
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64
}

// Cues is the catalog of simulation cue names
var Cues = map[string]Recipe{
	"hit":           {Wave: WaveSquare, Freq: 180, Duration: 40 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 30 * time.Millisecond, Volume: 0.3},
	"kill":          {Wave: WaveSquare, Freq: 660, Duration: 60 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 50 * time.Millisecond, Volume: 0.35},
	"elite":         {Wave: WaveSaw, Freq: 220, Freq2: 330, Duration: 150 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.5},
	"boss":          {Wave: WaveSaw, Freq: 110, Freq2: 82.41, Duration: 400 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 300 * time.Millisecond, Volume: 0.7},
	"boss_down":     {Wave: WaveSine, Freq: 523.25, Freq2: 783.99, Duration: 300 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 250 * time.Millisecond, Volume: 0.7},
	"boss_berserk":  {Wave: WaveSaw, Freq: 146.83, Duration: 250 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 200 * time.Millisecond, Volume: 0.6},
	"boss_thorns":   {Wave: WaveNoise, Duration: 150 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 120 * time.Millisecond, Volume: 0.4},
	"boss_pull":     {Wave: WaveSine, Freq: 65.41, Duration: 500 * time.Millisecond, Attack: 100 * time.Millisecond, Release: 300 * time.Millisecond, Volume: 0.6},
	"boss_shield":   {Wave: WaveSine, Freq: 392, Freq2: 587.33, Duration: 200 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 150 * time.Millisecond, Volume: 0.5},
	"boss_orbital":  {Wave: WaveSquare, Freq: 1046.5, Duration: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.4},
	"beam":          {Wave: WaveSaw, Freq: 880, Duration: 200 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 120 * time.Millisecond, Volume: 0.4},
	"slam_warn":     {Wave: WaveSquare, Freq: 98, Duration: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond, Volume: 0.5},
	"strike":        {Wave: WaveNoise, Duration: 180 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 160 * time.Millisecond, Volume: 0.5},
	"hive_spawn":    {Wave: WaveSine, Freq: 293.66, Freq2: 349.23, Duration: 160 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.35},
	"hive_release":  {Wave: WaveSaw, Freq: 349.23, Duration: 100 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond, Volume: 0.35},
	"legion_shield": {Wave: WaveSine, Freq: 261.63, Freq2: 392, Duration: 300 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 200 * time.Millisecond, Volume: 0.5},
	"reanimate":     {Wave: WaveSaw, Freq: 155.56, Freq2: 233.08, Duration: 220 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 150 * time.Millisecond, Volume: 0.4},
	"nova":          {Wave: WaveNoise, Duration: 220 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 200 * time.Millisecond, Volume: 0.5},
	"blink":         {Wave: WaveSine, Freq: 1318.51, Duration: 60 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 50 * time.Millisecond, Volume: 0.3},
	"aegis":         {Wave: WaveSine, Freq: 440, Freq2: 659.25, Duration: 200 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 150 * time.Millisecond, Volume: 0.4},
	"orbit":         {Wave: WaveSquare, Freq: 587.33, Duration: 90 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 70 * time.Millisecond, Volume: 0.3},
	"channel":       {Wave: WaveSaw, Freq: 196, Duration: 150 * time.Millisecond, Attack: 30 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.3},
	"heal":          {Wave: WaveSine, Freq: 880, Duration: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.4},
	"magnet":        {Wave: WaveSine, Freq: 659.25, Freq2: 987.77, Duration: 140 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.4},
	"shard":         {Wave: WaveSquare, Freq: 987.77, Freq2: 1318.51, Duration: 160 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.4},
	"level_up":      {Wave: WaveSquare, Freq: 783.99, Freq2: 1046.5, Duration: 180 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 120 * time.Millisecond, Volume: 0.5},
	"legendary":     {Wave: WaveSine, Freq: 1046.5, Freq2: 1567.98, Duration: 300 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 250 * time.Millisecond, Volume: 0.6},
	"revive":        {Wave: WaveSine, Freq: 523.25, Freq2: 1046.5, Duration: 250 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 200 * time.Millisecond, Volume: 0.6},
	"death":         {Wave: WaveSaw, Freq: 146.83, Freq2: 73.42, Duration: 500 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 450 * time.Millisecond, Volume: 0.7},
}

// Sentinel errors
var (
	ErrUnknownCue = errors.New("unknown cue")
	ErrNotStarted = errors.New("audio not started")
)
