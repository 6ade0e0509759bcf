package model

import "github.com/udisondev/sheencheck/internal/contest"

// Encounter describes where a record came from.
// Gift and event encounters may come with contest stats already raised.
type Encounter struct {
	Name       string
	Species    uint16
	Generation int

	stats    contest.Stats
	hasStats bool
}

// NewEncounter creates an encounter without declared contest stats.
func NewEncounter(name string, species uint16, generation int) Encounter {
	return Encounter{Name: name, Species: species, Generation: generation}
}

// WithContestStats returns a copy of e declaring the given baseline stats.
func (e Encounter) WithContestStats(s contest.Stats) Encounter {
	e.stats = s
	e.hasStats = true
	return e
}

// ContestTemplate implements contest.Template.
func (e Encounter) ContestTemplate() (contest.Stats, bool) {
	return e.stats, e.hasStats
}
