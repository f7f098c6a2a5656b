package system

import (
	"math"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/vmath"
)

// nearestEnemy returns the closest live enemy within r accepted by keep, nil when none
// Candidates come from the grid and are re-checked against exact distance
func nearestEnemy(w *engine.World, pos vmath.Vec2, r float64, keep func(*component.Enemy) bool) *component.Enemy {
	var best *component.Enemy
	bestDist := math.MaxFloat64
	for _, id := range w.Grid.QueryRadius(pos.X, pos.Y, r) {
		e, ok := w.Enemies.Lookup(id)
		if !ok || (keep != nil && !keep(e)) {
			continue
		}
		d := e.Pos.DistSq(pos)
		if d <= r*r && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// enemiesWithin returns live enemies whose body overlaps the circle
func enemiesWithin(w *engine.World, pos vmath.Vec2, r float64, keep func(*component.Enemy) bool) []*component.Enemy {
	var out []*component.Enemy
	for _, id := range w.Grid.QueryRadius(pos.X, pos.Y, r) {
		e, ok := w.Enemies.Lookup(id)
		if !ok || (keep != nil && !keep(e)) {
			continue
		}
		reach := r + e.Size
		if e.Pos.DistSq(pos) <= reach*reach {
			out = append(out, e)
		}
	}
	return out
}

func isHostile(e *component.Enemy) bool { return e.Hostile() }

// isPlayerTarget accepts enemies the player side may damage: hostiles and provokable neutrals
func isPlayerTarget(e *component.Enemy) bool { return !e.Roles.Has(component.RoleFriendly) }

// causeTag names an enemy for the damage breakdown and death cause
func causeTag(e *component.Enemy) string {
	switch {
	case e.Shape == component.ShapeUnique && e.Unique == component.UniqueWarden:
		return "warden"
	case e.Shape == component.ShapeUnique && e.Unique == component.UniqueWeaver:
		return "weaver"
	case e.Roles.Has(component.RoleZombie):
		return "zombie " + e.Shape.String()
	case e.Tier == component.TierNormal:
		return e.Shape.String()
	default:
		return e.Tier.String() + " " + e.Shape.String()
	}
}

// pointSegmentDistSq is the squared distance from p to segment ab
func pointSegmentDistSq(p, a, b vmath.Vec2) float64 {
	ab := b.Sub(a)
	l := ab.LenSq()
	if l == 0 {
		return p.DistSq(a)
	}
	t := vmath.Clamp(p.Sub(a).Dot(ab)/l, 0, 1)
	return p.DistSq(a.Add(ab.Scale(t)))
}

// lookupAlive resolves an id to a live enemy, nil for core.None or dead ids
func lookupAlive(w *engine.World, id core.Entity) *component.Enemy {
	if !id.Valid() {
		return nil
	}
	e, _ := w.Enemies.Lookup(id)
	return e
}
