package audio

import (
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
)

// CueHandler forwards queued cue events to a player after each tick
type CueHandler struct {
	Player CuePlayer
}

func NewCueHandler(p CuePlayer) *CueHandler {
	if p == nil {
		p = &SilentPlayer{}
	}
	return &CueHandler{Player: p}
}

func (h *CueHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventCue}
}

func (h *CueHandler) HandleEvent(w *engine.World, ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.CuePayload); ok {
		h.Player.Play(p.Name)
	}
}

// ToggleMute flips the player's mute state and returns the new state
func (h *CueHandler) ToggleMute() bool {
	muted := !h.Player.Muted()
	h.Player.SetMuted(muted)
	return muted
}
