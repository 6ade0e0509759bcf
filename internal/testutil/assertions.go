package testutil

import (
	"testing"

	"github.com/udisondev/sheencheck/internal/contest"
)

// AssertContestStats проверяет каждое поле contest stats отдельно,
// чтобы сообщение об ошибке указывало на конкретный stat.
func AssertContestStats(t testing.TB, expected, actual contest.Stats) {
	t.Helper()

	fields := []struct {
		name      string
		want, got byte
	}{
		{"cool", expected.Cool, actual.Cool},
		{"beauty", expected.Beauty, actual.Beauty},
		{"cute", expected.Cute, actual.Cute},
		{"smart", expected.Smart, actual.Smart},
		{"tough", expected.Tough, actual.Tough},
		{"sheen", expected.Sheen, actual.Sheen},
	}
	for _, f := range fields {
		if f.want != f.got {
			t.Errorf("contest %s mismatch: expected %d, got %d", f.name, f.want, f.got)
		}
	}
}
