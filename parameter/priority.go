package parameter

// System Execution Priorities (lower runs first)
// Order is fixed by the tick pipeline: director, player, enemies, areas, projectiles, loot, counters
const (
	PriorityDirector   = 100
	PrioritySpawn      = 110 // Ambient waves, part of the director stage
	PriorityPlayer     = 200
	PriorityEnemy      = 300
	PriorityArea       = 400
	PriorityProjectile = 500
	PriorityLoot       = 600
	PriorityParticle   = 650
	PriorityTimekeeper = 900 // Counters, arena split, removal sweep
)
