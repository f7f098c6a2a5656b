package core

import "testing"

func TestEntityListRemove(t *testing.T) {
	l := EntityList{1, 2, 3, 2}
	l = l.Remove(2)
	if len(l) != 2 || l[0] != 1 || l[1] != 3 {
		t.Fatalf("Remove(2) = %v, want [1 3]", l)
	}
	if l.Contains(2) {
		t.Error("list still contains removed id")
	}
	if !l.Contains(3) {
		t.Error("list lost id 3")
	}
}

func TestEntityValid(t *testing.T) {
	if None.Valid() {
		t.Error("None must not be valid")
	}
	if !Entity(7).Valid() {
		t.Error("issued id must be valid")
	}
}
