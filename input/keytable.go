package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMove
	BehaviorSkill
	BehaviorSystem
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	Dir        [2]int8 // movement axis contribution
	Slot       int     // skill slot or choice index
	IntentType IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: wasd/hjkl/arrows move, 1-4 cast, p pauses
func DefaultKeyTable() *KeyTable {
	move := func(x, y int8) KeyEntry { return KeyEntry{Behavior: BehaviorMove, Dir: [2]int8{x, y}} }
	skill := func(slot int) KeyEntry { return KeyEntry{Behavior: BehaviorSkill, Slot: slot} }
	system := func(t IntentType, slot int) KeyEntry {
		return KeyEntry{Behavior: BehaviorSystem, IntentType: t, Slot: slot}
	}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  system(IntentQuit, 0),
			tcell.KeyCtrlC:  system(IntentQuit, 0),
			tcell.KeyCtrlS:  system(IntentToggleMute, 0),
			tcell.KeyEscape: system(IntentPause, 0),
			tcell.KeyUp:     move(0, -1),
			tcell.KeyDown:   move(0, 1),
			tcell.KeyLeft:   move(-1, 0),
			tcell.KeyRight:  move(1, 0),
		},
		Runes: map[rune]KeyEntry{
			'w': move(0, -1), 'k': move(0, -1),
			's': move(0, 1), 'j': move(0, 1),
			'a': move(-1, 0), 'h': move(-1, 0),
			'd': move(1, 0), 'l': move(1, 0),
			'1': skill(0), '2': skill(1), '3': skill(2), '4': skill(3),
			'p': system(IntentPause, 0),
			'z': system(IntentChoose, 0), 'x': system(IntentChoose, 1), 'c': system(IntentChoose, 2),
		},
	}
}
