// Package contest infers the legal window of the hidden sheen value from a
// creature's contest stats.
//
// Contest stats (cool, beauty, cute, smart, tough) grow when the creature eats
// Pokéblocks (generation 3) or Poffins (generation 4 and BD/SP). Every treat
// also raises sheen by its "feel", so a given set of stat gains bounds how much
// sheen could have accumulated. Later formats either drop sheen entirely or let
// stats be raised without it, which is what Policy describes.
package contest

// MaxStat is the ceiling of every contest stat and of sheen.
const MaxStat = 255

// Stats is a snapshot of the five contest stats plus sheen.
type Stats struct {
	Cool   byte
	Beauty byte
	Cute   byte
	Smart  byte
	Tough  byte
	Sheen  byte
}

// ReadOnly is implemented by anything carrying contest stats.
type ReadOnly interface {
	ContestStats() Stats
}

// Mutable is a record whose contest stats can be rewritten.
// Records of formats without contest stats must not implement it.
type Mutable interface {
	ReadOnly
	SetContestStats(s Stats)
}

// ContestStats implements ReadOnly so a bare Stats can act as a baseline.
func (s Stats) ContestStats() Stats {
	return s
}

// Uniform returns a set with all five stats equal to value and the given sheen.
func Uniform(value, sheen byte) Stats {
	return Stats{
		Cool:   value,
		Beauty: value,
		Cute:   value,
		Smart:  value,
		Tough:  value,
		Sheen:  sheen,
	}
}

// IsAnyMax reports whether any of the five stats reached MaxStat.
func (s Stats) IsAnyMax() bool {
	return s.Cool == MaxStat ||
		s.Beauty == MaxStat ||
		s.Cute == MaxStat ||
		s.Smart == MaxStat ||
		s.Tough == MaxStat
}

// Equal compares the five stats. Sheen is ignored.
func (s Stats) Equal(other Stats) bool {
	return s.Cool == other.Cool &&
		s.Beauty == other.Beauty &&
		s.Cute == other.Cute &&
		s.Smart == other.Smart &&
		s.Tough == other.Tough
}

// IsZero reports whether all five stats and sheen are zero.
func (s Stats) IsZero() bool {
	return s == Stats{}
}

// CopyTo overwrites dst's contest stats (sheen included) with s.
func (s Stats) CopyTo(dst Mutable) {
	dst.SetContestStats(s)
}

// array returns the five stats in table column order.
func (s Stats) array() [5]int {
	return [5]int{int(s.Cool), int(s.Beauty), int(s.Cute), int(s.Smart), int(s.Tough)}
}
