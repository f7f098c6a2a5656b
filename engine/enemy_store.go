package engine

import (
	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/core"
)

// EnemyStore is the arena of enemies addressed by stable ids
// Cross-entity links are ids resolved through Lookup every tick, never pointers
type EnemyStore struct {
	items  []*component.Enemy
	index  map[core.Entity]int
	nextID core.Entity
}

// NewEnemyStore creates an empty store
func NewEnemyStore() *EnemyStore {
	return &EnemyStore{
		index:  make(map[core.Entity]int),
		nextID: 1,
	}
}

// Spawn assigns an id and appends the enemy; it becomes visible to Lookup immediately
func (s *EnemyStore) Spawn(e *component.Enemy) core.Entity {
	e.ID = s.nextID
	s.nextID++
	s.index[e.ID] = len(s.items)
	s.items = append(s.items, e)
	return e.ID
}

// Lookup returns a live enemy, or nil and false when missing or dead
func (s *EnemyStore) Lookup(id core.Entity) (*component.Enemy, bool) {
	if !id.Valid() {
		return nil, false
	}
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	e := s.items[i]
	if e.Dead {
		return nil, false
	}
	return e, true
}

// All returns the backing slice including enemies marked dead this tick
// Callers iterating while spawning must bound the loop by the length taken up front
func (s *EnemyStore) All() []*component.Enemy {
	return s.items
}

// Len returns stored enemies including the dead awaiting sweep
func (s *EnemyStore) Len() int {
	return len(s.items)
}

// LiveCount returns enemies not marked dead
func (s *EnemyStore) LiveCount() int {
	n := 0
	for _, e := range s.items {
		if !e.Dead {
			n++
		}
	}
	return n
}

// Sweep removes dead enemies preserving order and returns the removed count
func (s *EnemyStore) Sweep() int {
	n := 0
	for _, e := range s.items {
		if e.Dead {
			delete(s.index, e.ID)
			continue
		}
		s.items[n] = e
		s.index[e.ID] = n
		n++
	}
	removed := len(s.items) - n
	clear(s.items[n:])
	s.items = s.items[:n]
	return removed
}

// Clear drops every enemy, ids keep increasing
func (s *EnemyStore) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	clear(s.index)
}
