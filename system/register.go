package system

import "github.com/lixenwraith/resonance-arena/engine"

// RegisterAll installs the full tick pipeline; order comes from priorities
func RegisterAll(w *engine.World) {
	w.AddSystem(NewDirectorSystem(w))
	w.AddSystem(NewSpawnSystem(w))
	w.AddSystem(NewPlayerSystem(w))
	w.AddSystem(NewEnemySystem(w))
	w.AddSystem(NewAreaSystem(w))
	w.AddSystem(NewProjectileSystem(w))
	w.AddSystem(NewLootSystem(w))
	w.AddSystem(NewParticleSystem(w))
	w.AddSystem(NewTimekeeperSystem(w))
}
