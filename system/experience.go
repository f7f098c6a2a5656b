package system

import (
	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/event"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// XPAmount applies the xp_gain stat layers to a base grant
func XPAmount(p *component.Player, base float64) float64 {
	st := p.Stats[component.StatXPGain]
	if st == nil {
		return vmath.NonNeg(base)
	}
	return vmath.NonNeg((base + st.Flat + st.HexFlat) * (1 + st.Mult) * (1 + st.HexMult))
}

// GrantXP adds experience and processes every level threshold crossed
// Returns the number of levels gained
func GrantXP(w *engine.World, base float64) int {
	p := w.Player
	p.XP += XPAmount(p, base)
	if p.XPNeeded <= 0 {
		p.XPNeeded = parameter.InitialXPNeeded
	}

	levels := 0
	for p.XP >= p.XPNeeded {
		p.XP -= p.XPNeeded
		p.Level++
		p.XPNeeded *= parameter.LevelXPGrowth
		applyLevelUpgrade(p)
		levels++
		w.PushEvent(event.EventLevelUp, &event.LevelUpPayload{Level: p.Level, XPNeeded: p.XPNeeded})
	}
	if levels > 0 {
		w.Cue("level_up")
	}
	return levels
}

// applyLevelUpgrade grants the rotating upgrade for the level just reached
func applyLevelUpgrade(p *component.Player) {
	if len(parameter.LevelUpgrades) == 0 || p.Level < 2 {
		return
	}
	u := parameter.LevelUpgrades[(p.Level-2)%len(parameter.LevelUpgrades)]
	st := p.Stats[component.StatKey(u.Stat)]
	if st == nil {
		return
	}
	before := p.MaxHP()
	st.Flat += u.Flat
	st.Mult += u.Mult
	// Max HP growth heals by the amount gained
	if gain := p.MaxHP() - before; gain > 0 {
		p.Heal(gain)
	}
}
