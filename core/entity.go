package core

// Entity is a stable identifier handed out by the world's entity stores
// Zero is never issued and means "no entity"
type Entity uint64

// None is the zero entity, used for unset back-references
const None Entity = 0

// Valid reports whether e refers to an issued id
func (e Entity) Valid() bool {
	return e != None
}

// EntityList is a slice of entity ids with set helpers used by hit dedup and link webs
type EntityList []Entity

// Contains reports whether id is present
func (l EntityList) Contains(id Entity) bool {
	for _, e := range l {
		if e == id {
			return true
		}
	}
	return false
}

// Remove returns the list without id, preserving order
func (l EntityList) Remove(id Entity) EntityList {
	out := l[:0]
	for _, e := range l {
		if e != id {
			out = append(out, e)
		}
	}
	return out
}
