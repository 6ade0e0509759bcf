package contest

// Milotic's lore grants it permanently maxed contest stats.
const Milotic uint16 = 350

// Template is an encounter that may declare baseline contest stats.
type Template interface {
	// ContestTemplate returns the declared stats, ok is false when the
	// encounter declares none.
	ContestTemplate() (Stats, bool)
}

// zeroBaseline is used for encounters without declared stats.
var zeroBaseline Stats

// Baseline returns the contest stats the record started with.
func Baseline(enc Template) Stats {
	if enc == nil {
		return zeroBaseline
	}
	if s, ok := enc.ContestTemplate(); ok {
		return s
	}
	return zeroBaseline
}

// Record is a creature record whose contest stats can be rewritten.
type Record interface {
	Mutable
	Origin
	Species() uint16
}

// SetSuggestedStats resets rec to its encounter baseline. Milotic gets maxed
// stats instead whenever its generation allows contest stat inference.
func SetSuggestedStats(rec Record, enc Template) {
	policy := PolicyFor(rec, rec.Generation())
	base := Baseline(enc)
	if policy == PolicyNone || rec.Species() != Milotic {
		base.CopyTo(rec) // reset
		return
	}
	rec.SetContestStats(maxStats(policy, base))
}

// SetMaxStats raises every contest stat of rec to the cap.
// Does nothing for PolicyNone.
func SetMaxStats(rec Record, enc Template) {
	policy := PolicyFor(rec, rec.Generation())
	if policy == PolicyNone {
		return
	}
	rec.SetContestStats(maxStats(policy, Baseline(enc)))
}

func maxStats(policy Policy, base Stats) Stats {
	sheen := byte(MaxStat)
	if policy == PolicyNoSheen {
		sheen = base.Sheen
	}
	return Uniform(MaxStat, sheen)
}
