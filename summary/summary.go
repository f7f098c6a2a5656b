// Package summary builds the serializable end-of-run record and hands it to a publisher
package summary

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/resonance-arena/component"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
)

// LevelStamp records when a hex reached a level
type LevelStamp struct {
	Level int   `json:"level"`
	Kills int   `json:"kills"`
	AtMS  int64 `json:"at_ms"`
}

// HexRecord is the acquisition history of one socketed hex
type HexRecord struct {
	Type          string       `json:"type"`
	Level         int          `json:"level"`
	AcquiredKills int          `json:"acquired_kills"`
	AcquiredAtMS  int64        `json:"acquired_at_ms"`
	Levels        []LevelStamp `json:"levels"`
}

// RunSummary is the leaderboard submission for one finished run
type RunSummary struct {
	ID          string             `json:"id"`
	Seed        uint64             `json:"seed,omitempty"`
	Score       float64            `json:"score"`
	SurvivedMS  int64              `json:"survived_ms"`
	Level       int                `json:"level"`
	Kills       int                `json:"kills"`
	EliteKills  int                `json:"elite_kills"`
	BossKills   int                `json:"boss_kills"`
	ArenaTimeMS map[int]int64      `json:"arena_time_ms"`
	DamageDealt float64            `json:"damage_dealt"`
	DamageTaken map[string]float64 `json:"damage_taken"`
	Class       string             `json:"class"`
	Hexes       []HexRecord        `json:"hexes"`
	Cause       string             `json:"cause"`
	CauseText   string             `json:"cause_text"`
}

// Survived returns the run length
func (s *RunSummary) Survived() time.Duration {
	return time.Duration(s.SurvivedMS) * time.Millisecond
}

// Build snapshots the world into a summary; the caller must hold the world lock
func Build(w *engine.World) *RunSummary {
	p := w.Player
	s := &RunSummary{
		ID:          uuid.New().String(),
		Score:       p.Score,
		SurvivedMS:  w.Elapsed.Milliseconds(),
		Level:       p.Level,
		Kills:       p.Kills,
		EliteKills:  p.EliteKills,
		BossKills:   p.BossKills,
		ArenaTimeMS: make(map[int]int64, len(w.ArenaTime)),
		DamageDealt: p.DamageDealt,
		DamageTaken: make(map[string]float64, len(p.DamageTaken)),
		Class:       w.Sockets.Class.String(),
		Cause:       p.DeathCause,
	}
	for arena, d := range w.ArenaTime {
		s.ArenaTimeMS[arena] = d.Milliseconds()
	}
	for src, dmg := range p.DamageTaken {
		s.DamageTaken[src] = dmg
	}
	for i := range w.Sockets.Hexes {
		if h := &w.Sockets.Hexes[i]; !h.Empty() {
			s.Hexes = append(s.Hexes, hexRecord(h))
		}
	}
	sort.Slice(s.Hexes, func(i, j int) bool { return s.Hexes[i].AcquiredAtMS < s.Hexes[j].AcquiredAtMS })

	s.describe(w.Log)
	return s
}

func (s *RunSummary) describe(log logrus.FieldLogger) {
	text, err := CauseText(s.Cause, s.Survived())
	if err != nil {
		log.WithError(err).Warn("cause text")
		text = s.Cause
	}
	s.CauseText = text
}

func hexRecord(h *component.HexSlot) HexRecord {
	r := HexRecord{
		Type:          h.Type.String(),
		Level:         h.Level,
		AcquiredKills: h.AcquiredKills,
		AcquiredAtMS:  h.AcquiredAt.Milliseconds(),
	}
	for lvl := 1; lvl <= min(h.Level, parameter.MaxHexLevel); lvl++ {
		at := h.AcquiredAt
		if h.LevelSet[lvl] {
			at = h.LevelAt[lvl]
		}
		r.Levels = append(r.Levels, LevelStamp{Level: lvl, Kills: h.KillsAtLevel(lvl), AtMS: at.Milliseconds()})
	}
	return r
}
