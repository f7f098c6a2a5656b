package resonance

import "github.com/lixenwraith/resonance-arena/component"

// Unlock is one stat contribution a hex grants from a level on
// Rate non-zero scales with kills since that level, otherwise Flat applies
type Unlock struct {
	Level int
	Stat  component.StatKey
	Rate  float64
	Flat  float64
}

// HexDef describes a hex type
type HexDef struct {
	Type    component.HexType
	Unlocks []Unlock
}

// PercentStats receive their bonus as percentage points on the hex multiplier term
var PercentStats = map[component.StatKey]bool{
	component.StatDamage:   true,
	component.StatFireRate: true,
	component.StatAreaSize: true,
}

var catalog = map[component.HexType]HexDef{
	component.HexEcoXP: {Type: component.HexEcoXP, Unlocks: []Unlock{
		{Level: 1, Stat: component.BonusXPPerKill, Rate: 1},
		{Level: 3, Stat: component.StatPickupRadius, Flat: 30},
		{Level: 5, Stat: component.BonusXPPerKill, Rate: 0.5},
	}},
	component.HexBulwark: {Type: component.HexBulwark, Unlocks: []Unlock{
		{Level: 1, Stat: component.StatArmor, Rate: 0.05},
		{Level: 3, Stat: component.StatArmorCap, Flat: 1},
		{Level: 5, Stat: component.StatCollisionReduction, Flat: 0.10},
	}},
	component.HexFury: {Type: component.HexFury, Unlocks: []Unlock{
		{Level: 1, Stat: component.StatDamage, Rate: 0.05},
		{Level: 2, Stat: component.StatCritChance, Flat: 0.05},
		{Level: 4, Stat: component.StatCritMultiplier, Flat: 0.5},
	}},
	component.HexVital: {Type: component.HexVital, Unlocks: []Unlock{
		{Level: 1, Stat: component.StatMaxHP, Rate: 0.1},
		{Level: 2, Stat: component.StatRegen, Flat: 0.5},
		{Level: 4, Stat: component.StatReanimateChance, Flat: 0.05},
	}},
	component.HexEcho: {Type: component.HexEcho, Unlocks: []Unlock{
		{Level: 1, Stat: component.StatFireRate, Rate: 0.03},
		{Level: 3, Stat: component.StatPierce, Flat: 1},
		{Level: 5, Stat: component.StatProjectileReduction, Flat: 0.10},
	}},
	component.HexAmplifier: {Type: component.HexAmplifier, Unlocks: []Unlock{
		{Level: 1, Stat: component.BonusResonanceBoost, Flat: 0.02},
		{Level: 3, Stat: component.StatAreaSize, Flat: 10},
		{Level: 5, Stat: component.BonusResonanceBoost, Rate: 0.0005},
	}},
}

// Catalog returns the definition of a hex type, empty for unknown types
func Catalog(t component.HexType) HexDef {
	return catalog[t]
}

// ApplyToPlayer rewrites every hex-derived stat term from the current grid
func ApplyToPlayer(g *component.SocketGrid, p *component.Player) {
	for _, k := range component.PlayerStats {
		st := p.Stats[k]
		if st == nil {
			continue
		}
		st.HexFlat, st.HexMult = 0, 0
		bonus := LegendaryBonus(g, p.Kills, k, false)
		if PercentStats[k] {
			st.HexMult = bonus / 100
		} else {
			st.HexFlat = bonus
		}
	}
	// XP per kill is a flat amount on the hex term of xp_gain
	if st := p.Stats[component.StatXPGain]; st != nil {
		st.HexFlat += LegendaryBonus(g, p.Kills, component.BonusXPPerKill, false)
	}
}
