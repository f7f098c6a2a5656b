package system

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/resonance"
)

var (
	ErrNoLegendary = errors.New("no legendary selection pending")
	ErrChoiceRange = errors.New("legendary choice out of range")
)

// ChooseLegendary applies the selected hex and resumes the run
func ChooseLegendary(w *engine.World, choice int) error {
	if w.Phase != engine.PhaseLegendary {
		return ErrNoLegendary
	}
	if choice < 0 || choice >= len(w.LegendaryOptions) {
		return fmt.Errorf("choice %d of %d: %w", choice, len(w.LegendaryOptions), ErrChoiceRange)
	}
	t := w.LegendaryOptions[choice]
	if err := resonance.ApplyLegendary(w.Sockets, t, w.Player.Kills, w.Elapsed); err != nil {
		return fmt.Errorf("apply legendary: %w", err)
	}
	w.LegendaryOptions = nil
	w.Phase = engine.PhasePlaying
	w.Cue("legendary")
	w.Log.WithField("hex", t.String()).Info("legendary chosen")
	return nil
}
