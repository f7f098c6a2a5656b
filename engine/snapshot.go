package engine

import (
	"time"

	"github.com/lixenwraith/resonance-arena/component"
)

// EnemyView is the render projection of one enemy
type EnemyView struct {
	ID        uint64  `json:"id"`
	Shape     string  `json:"shape"`
	Tier      string  `json:"tier"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Size      float64 `json:"size"`
	HPFrac    float64 `json:"hp"`
	Friendly  bool    `json:"friendly,omitempty"`
	Zombie    bool    `json:"zombie,omitempty"`
	Telegraph bool    `json:"telegraph,omitempty"`
	Palette   string  `json:"palette,omitempty"`
}

// BulletView is the render projection of one bullet
type BulletView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Enemy bool    `json:"enemy,omitempty"`
}

// AreaView is the render projection of one area effect
type AreaView struct {
	Kind    string  `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Radius  float64 `json:"radius"`
	Hostile bool    `json:"hostile,omitempty"`
}

// PointView is a bare position for pickups and particles
type PointView struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Kind    uint8   `json:"kind,omitempty"`
	Palette string  `json:"palette,omitempty"`
}

// PlayerView is the render projection of the player
type PlayerView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	HP       float64 `json:"hp"`
	MaxHP    float64 `json:"max_hp"`
	Shield   float64 `json:"shield"`
	Level    int     `json:"level"`
	XP       float64 `json:"xp"`
	XPNeeded float64 `json:"xp_needed"`
	Kills    int     `json:"kills"`
	Score    float64 `json:"score"`
}

// SkillView is the HUD projection of one bound skill
type SkillView struct {
	Name     string  `json:"name"`
	Bind     int     `json:"bind"`
	Cooldown float64 `json:"cooldown"` // remaining fraction, 0 when ready
	InUse    bool    `json:"in_use,omitempty"`
}

// Snapshot is a read-only copy of world state for one presented frame
type Snapshot struct {
	Tick      uint64        `json:"tick"`
	Elapsed   time.Duration `json:"elapsed"`
	Phase     string        `json:"phase"`
	Event     string        `json:"event"`
	Player    PlayerView    `json:"player"`
	Enemies   []EnemyView   `json:"enemies"`
	Bullets   []BulletView  `json:"bullets"`
	Areas     []AreaView    `json:"areas"`
	Pickups   []PointView   `json:"pickups"`
	Particles []PointView   `json:"particles"`
	Skills    []SkillView   `json:"skills"`
	Options   []string      `json:"options,omitempty"`
	Cause     string        `json:"cause,omitempty"`
}

// Snapshot copies the world under the update lock
func (w *World) Snapshot() *Snapshot {
	var snap *Snapshot
	w.RunSafe(func() {
		snap = w.SnapshotLocked()
	})
	return snap
}

// SnapshotLocked copies the world; caller holds the update lock
func (w *World) SnapshotLocked() *Snapshot {
	p := w.Player
	snap := &Snapshot{
		Tick:    w.Tick,
		Elapsed: w.Elapsed,
		Phase:   w.Phase.String(),
		Event:   w.ActiveEvent().String(),
		Player: PlayerView{
			X: p.Pos.X, Y: p.Pos.Y,
			HP: p.HP, MaxHP: p.MaxHP(), Shield: p.ShieldTotal(),
			Level: p.Level, XP: p.XP, XPNeeded: p.XPNeeded,
			Kills: p.Kills, Score: p.Score,
		},
		Enemies:   make([]EnemyView, 0, w.Enemies.Len()),
		Bullets:   make([]BulletView, 0, len(w.Bullets)),
		Areas:     make([]AreaView, 0, len(w.Areas)),
		Pickups:   make([]PointView, 0, len(w.Pickups)),
		Particles: make([]PointView, 0, len(w.Particles)),
		Cause:     p.DeathCause,
	}

	for _, e := range w.Enemies.All() {
		if e.Dead {
			continue
		}
		frac := 0.0
		if e.MaxHP > 0 {
			frac = e.HP / e.MaxHP
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:        uint64(e.ID),
			Shape:     e.Shape.String(),
			Tier:      e.Tier.String(),
			X:         e.Pos.X,
			Y:         e.Pos.Y,
			Size:      e.Size,
			HPFrac:    frac,
			Friendly:  e.Roles.Has(component.RoleFriendly),
			Zombie:    e.Roles.Has(component.RoleZombie),
			Telegraph: e.Telegraph,
			Palette:   e.Palette,
		})
	}
	for _, b := range w.Bullets {
		snap.Bullets = append(snap.Bullets, BulletView{X: b.Pos.X, Y: b.Pos.Y, Enemy: b.Owner == component.OwnerEnemy})
	}
	for _, a := range w.Areas {
		snap.Areas = append(snap.Areas, AreaView{
			Kind:    a.Kind.String(),
			X:       a.Center.X,
			Y:       a.Center.Y,
			Radius:  a.Radius,
			Hostile: a.Owner == component.OwnerEnemy,
		})
	}
	for _, pk := range w.Pickups {
		snap.Pickups = append(snap.Pickups, PointView{X: pk.Pos.X, Y: pk.Pos.Y, Kind: uint8(pk.Kind)})
	}
	for _, pt := range w.Particles {
		snap.Particles = append(snap.Particles, PointView{X: pt.Pos.X, Y: pt.Pos.Y, Palette: pt.Palette})
	}
	for _, sk := range p.Skills {
		frac := 0.0
		if sk.Cooldown > 0 {
			frac = float64(sk.Remaining) / float64(sk.Cooldown)
		}
		snap.Skills = append(snap.Skills, SkillView{Name: sk.ID.String(), Bind: sk.Bind, Cooldown: frac, InUse: sk.InUse})
	}
	for _, h := range w.LegendaryOptions {
		snap.Options = append(snap.Options, h.String())
	}
	return snap
}
