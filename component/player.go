package component

import (
	"time"

	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// StatKey names a player stat or a legendary bonus channel
type StatKey string

const (
	StatMaxHP               StatKey = "max_hp"
	StatArmor               StatKey = "armor"
	StatSpeed               StatKey = "speed"
	StatDamage              StatKey = "damage"
	StatFireRate            StatKey = "fire_rate"
	StatPierce              StatKey = "pierce"
	StatProjectileSpeed     StatKey = "projectile_speed"
	StatPickupRadius        StatKey = "pickup_radius"
	StatRegen               StatKey = "regen"
	StatXPGain              StatKey = "xp_gain"
	StatCollisionReduction  StatKey = "collision_reduction"
	StatProjectileReduction StatKey = "projectile_reduction"
	StatArmorCap            StatKey = "armor_cap"
	StatReanimateChance     StatKey = "reanimate_chance"
	StatCritChance          StatKey = "crit_chance"
	StatCritMultiplier      StatKey = "crit_multiplier"
	StatAreaSize            StatKey = "area_size"

	// Bonus-only channels, never stored on the player
	BonusXPPerKill      StatKey = "xp_per_kill"
	BonusResonanceBoost StatKey = "resonance_boost"
)

// PlayerStats lists every stat a player carries
var PlayerStats = []StatKey{
	StatMaxHP, StatArmor, StatSpeed, StatDamage, StatFireRate, StatPierce,
	StatProjectileSpeed, StatPickupRadius, StatRegen, StatXPGain,
	StatCollisionReduction, StatProjectileReduction, StatArmorCap,
	StatReanimateChance, StatCritChance, StatCritMultiplier, StatAreaSize,
}

// Stat is a layered value: (Base+Flat+HexFlat) * (1+Mult) * (1+HexMult)
// Hex terms are rewritten every tick from resonance, the rest from upgrades
type Stat struct {
	Base    float64
	Flat    float64
	Mult    float64
	HexFlat float64
	HexMult float64
}

// Value returns the composed stat, never negative
func (s *Stat) Value() float64 {
	if s == nil {
		return 0
	}
	return vmath.NonNeg((s.Base + s.Flat + s.HexFlat) * (1 + s.Mult) * (1 + s.HexMult))
}

// ShieldChunk is one timed barrier charge, ExpiresAt is run time
type ShieldChunk struct {
	Amount    float64
	ExpiresAt time.Duration
}

// SkillID identifies an active skill
type SkillID uint8

const (
	SkillNova SkillID = iota
	SkillBlink
	SkillAegis
	SkillChannel
	SkillOrbit
	SkillCount
)

func (s SkillID) String() string {
	switch s {
	case SkillNova:
		return "nova"
	case SkillBlink:
		return "blink"
	case SkillAegis:
		return "aegis"
	case SkillChannel:
		return "channel"
	case SkillOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// Skill is an active ability bound to an input slot
type Skill struct {
	ID        SkillID
	Bind      int
	Cooldown  time.Duration
	Remaining time.Duration
	InUse     bool
	Active    time.Duration // elapsed time of a held skill
}

// Ready reports whether the skill is off cooldown and not held
func (s *Skill) Ready() bool { return s.Remaining <= 0 && !s.InUse }

// Class is the center socket selection, shaping which skills are bound
type Class uint8

const (
	ClassNone Class = iota
	ClassStriker
	ClassBastion
	ClassConduit
)

func (c Class) String() string {
	switch c {
	case ClassStriker:
		return "striker"
	case ClassBastion:
		return "bastion"
	case ClassConduit:
		return "conduit"
	default:
		return "none"
	}
}

// ClassSkills returns the skill loadout of a class in bind order
func ClassSkills(c Class) []SkillID {
	switch c {
	case ClassStriker:
		return []SkillID{SkillBlink, SkillNova, SkillOrbit}
	case ClassBastion:
		return []SkillID{SkillAegis, SkillNova, SkillBlink}
	case ClassConduit:
		return []SkillID{SkillChannel, SkillOrbit, SkillBlink}
	default:
		return []SkillID{SkillNova, SkillBlink}
	}
}

// SkillCooldown returns the base cooldown of a skill
func SkillCooldown(id SkillID) time.Duration {
	switch id {
	case SkillNova:
		return parameter.NovaCooldown
	case SkillBlink:
		return parameter.BlinkCooldown
	case SkillAegis:
		return parameter.AegisCooldown
	case SkillChannel:
		return parameter.ChannelCooldown
	case SkillOrbit:
		return parameter.OrbitCooldown
	default:
		return time.Second
	}
}

// Player is the single controlled actor of a run
type Player struct {
	Pos       vmath.Vec2
	Vel       vmath.Vec2
	Knockback vmath.Vec2
	Facing    float64

	Stats   map[StatKey]*Stat
	HP      float64
	Shields []ShieldChunk
	Skills  []Skill
	Class   Class

	Level    int
	XP       float64
	XPNeeded float64

	Kills       int
	EliteKills  int
	BossKills   int
	Score       float64
	DamageDealt float64
	DamageTaken map[string]float64

	ReviveCharges int
	Invulnerable  time.Duration
	FireTimer     time.Duration

	LastHitBy  string
	Dead       bool
	DeathCause string
}

// NewPlayer creates a player with base stats at the given position
func NewPlayer(pos vmath.Vec2) *Player {
	p := &Player{
		Pos:         pos,
		Stats:       make(map[StatKey]*Stat, len(PlayerStats)),
		Level:       1,
		XPNeeded:    parameter.InitialXPNeeded,
		DamageTaken: make(map[string]float64),
	}
	for _, k := range PlayerStats {
		p.Stats[k] = &Stat{}
	}
	p.Stats[StatMaxHP].Base = parameter.PlayerBaseMaxHP
	p.Stats[StatArmor].Base = parameter.PlayerBaseArmor
	p.Stats[StatSpeed].Base = parameter.PlayerBaseSpeed
	p.Stats[StatDamage].Base = parameter.PlayerBaseDamage
	p.Stats[StatFireRate].Base = parameter.PlayerBaseFireRate
	p.Stats[StatPierce].Base = parameter.PlayerBasePierce
	p.Stats[StatProjectileSpeed].Base = parameter.PlayerBaseProjectileSpd
	p.Stats[StatPickupRadius].Base = parameter.PlayerBasePickupRadius
	p.Stats[StatCritMultiplier].Base = parameter.PlayerBaseCritMultiplier
	p.Stats[StatAreaSize].Base = parameter.PlayerBaseAreaSize
	p.HP = p.MaxHP()
	p.SetClass(ClassNone)
	return p
}

// SetClass rebinds the skill loadout for a class
func (p *Player) SetClass(c Class) {
	p.Class = c
	ids := ClassSkills(c)
	p.Skills = p.Skills[:0]
	for i, id := range ids {
		p.Skills = append(p.Skills, Skill{ID: id, Bind: i, Cooldown: SkillCooldown(id)})
	}
}

// Stat returns the composed value of a stat, zero when absent
func (p *Player) Stat(k StatKey) float64 {
	return p.Stats[k].Value()
}

// MaxHP returns computed max HP, at least 1
func (p *Player) MaxHP() float64 {
	return max(1, p.Stat(StatMaxHP))
}

// ClampHP keeps HP inside [0, MaxHP]
func (p *Player) ClampHP() {
	p.HP = vmath.Clamp(p.HP, 0, p.MaxHP())
}

// Heal adds HP up to max
func (p *Player) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	p.HP += amount
	p.ClampHP()
}

// AddShield appends a barrier chunk
func (p *Player) AddShield(amount float64, expiresAt time.Duration) {
	if amount <= 0 {
		return
	}
	p.Shields = append(p.Shields, ShieldChunk{Amount: amount, ExpiresAt: expiresAt})
}

// ShieldTotal sums live chunks
func (p *Player) ShieldTotal() float64 {
	var total float64
	for _, c := range p.Shields {
		total += c.Amount
	}
	return total
}

// PruneShields drops expired and exhausted chunks, preserving order
func (p *Player) PruneShields(now time.Duration) {
	n := 0
	for _, c := range p.Shields {
		if c.Amount > 0 && c.ExpiresAt > now {
			p.Shields[n] = c
			n++
		}
	}
	p.Shields = p.Shields[:n]
}

// AbsorbShields consumes chunks oldest-first and returns the damage left over
func (p *Player) AbsorbShields(damage float64) float64 {
	for i := range p.Shields {
		if damage <= 0 {
			break
		}
		c := &p.Shields[i]
		if c.Amount <= 0 {
			continue
		}
		take := min(c.Amount, damage)
		c.Amount -= take
		damage -= take
	}
	n := 0
	for _, c := range p.Shields {
		if c.Amount > 0 {
			p.Shields[n] = c
			n++
		}
	}
	p.Shields = p.Shields[:n]
	return vmath.NonNeg(damage)
}

// Skill returns the bound skill with id, nil if not in the loadout
func (p *Player) Skill(id SkillID) *Skill {
	for i := range p.Skills {
		if p.Skills[i].ID == id {
			return &p.Skills[i]
		}
	}
	return nil
}
