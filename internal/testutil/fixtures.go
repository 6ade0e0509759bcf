package testutil

import (
	"testing"

	"github.com/udisondev/sheencheck/internal/contest"
	"github.com/udisondev/sheencheck/internal/model"
)

// Fixtures содержит заранее посчитанные наборы contest stats
// для избежания дублирования в тестах.
var Fixtures = struct {
	// Cool +20 from zero: feel 4, Poffin window 17..68, Block window 4..9.
	CoolTwenty contest.Stats

	// Baseline of a gift encounter with raised beauty.
	GiftBaseline contest.Stats

	// Encounter without declared contest stats.
	Wild model.Encounter
}{
	CoolTwenty:   contest.Stats{Cool: 20},
	GiftBaseline: contest.Stats{Beauty: 20, Sheen: 5},
	Wild:         model.NewEncounter("Wild", model.SpeciesFeebas, 0),
}

// NewPKM creates an untraded Hardy Feebas record, failing the test on error.
func NewPKM(t testing.TB, id int64, version model.GameVersion, format int, stats contest.Stats) *model.PKM {
	t.Helper()

	p, err := model.NewPKM(id, model.SpeciesFeebas, model.NatureHardy, version, 0, format, true, stats)
	if err != nil {
		t.Fatalf("NewPKM(%d, %s, %d): %v", id, version, format, err)
	}
	return p
}

// WithSheen returns s with the sheen replaced.
func WithSheen(s contest.Stats, sheen byte) contest.Stats {
	s.Sheen = sheen
	return s
}
