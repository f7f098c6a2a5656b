package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

// maxVoices bounds simultaneous cues in the mixer
const maxVoices = 16

// CuePlayer plays fire-and-forget cues; failures never reach the caller
type CuePlayer interface {
	Play(name string)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// SilentPlayer discards every cue
type SilentPlayer struct {
	muted atomic.Bool
}

func (s *SilentPlayer) Play(string)         {}
func (s *SilentPlayer) SetMuted(muted bool) { s.muted.Store(muted) }
func (s *SilentPlayer) Muted() bool         { return s.muted.Load() }
func (s *SilentPlayer) Close()              {}

// BeepPlayer synthesizes cues into a speaker-driven mixer
type BeepPlayer struct {
	mu      sync.Mutex
	config  *AudioConfig
	mixer   *beep.Mixer
	started bool
	muted   atomic.Bool
	log     logrus.FieldLogger
}

func NewBeepPlayer(cfg *AudioConfig, log logrus.FieldLogger) *BeepPlayer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &BeepPlayer{config: cfg, mixer: &beep.Mixer{}, log: log}
}

// Start opens the speaker and attaches the mixer
func (p *BeepPlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	sr := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Play queues a cue; unknown names and a full mixer are dropped
func (p *BeepPlayer) Play(name string) {
	if p.muted.Load() {
		return
	}
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		return
	}

	s, err := CueStreamer(name, p.config)
	if err != nil {
		p.log.WithField("cue", name).Debug("cue dropped")
		return
	}
	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

func (p *BeepPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
	if muted {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

func (p *BeepPlayer) Muted() bool { return p.muted.Load() }

// Close stops all cues and releases the speaker
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
}

// NewCuePlayer returns a started beep player, or a silent one when audio is disabled or unavailable
func NewCuePlayer(cfg *AudioConfig, log logrus.FieldLogger) CuePlayer {
	if cfg == nil || !cfg.Enabled {
		return &SilentPlayer{}
	}
	p := NewBeepPlayer(cfg, log)
	if err := p.Start(); err != nil {
		p.log.WithError(err).Warn("audio unavailable, continuing silent")
		return &SilentPlayer{}
	}
	return p
}
