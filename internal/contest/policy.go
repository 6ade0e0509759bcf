package contest

// Policy describes how contest stats and sheen are tied together for a record.
type Policy int32

const (
	// PolicyNone -- связь не проверяется: stats and sheen are independent.
	PolicyNone Policy = iota
	// PolicyCorrelateSheen -- sheen must be reachable from the stat gains.
	PolicyCorrelateSheen
	// PolicyMixed -- stats could be raised without sheen (ORAS), only the upper bound holds.
	PolicyMixed
	// PolicyNoSheen -- the format has no sheen; the baseline value must be kept.
	PolicyNoSheen
)

// String returns the human-readable name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "None"
	case PolicyCorrelateSheen:
		return "CorrelateSheen"
	case PolicyMixed:
		return "Mixed"
	case PolicyNoSheen:
		return "NoSheen"
	default:
		return "Unknown"
	}
}

// Origin exposes the generation, format and trade state of a record.
type Origin interface {
	// Generation is the generation the record originated in.
	Generation() int
	// Format is the generation of the save format the record currently lives in.
	Format() int
	IsUntraded() bool
	// IsAO reports an Alpha Sapphire / Omega Ruby origin.
	IsAO() bool
	// IsBDSP reports a Brilliant Diamond / Shining Pearl origin.
	IsBDSP() bool
}

// PolicyFor classifies the contest stat restriction of rec for the given
// origin generation. Unknown generations resolve to PolicyNone.
func PolicyFor(rec Origin, generation int) Policy {
	switch generation {
	case 3, 4:
		if rec.Format() < 6 {
			return PolicyCorrelateSheen
		}
		return PolicyMixed
	case 5:
		// ORAS contests
		if rec.Format() >= 6 {
			return PolicyNoSheen
		}
		return PolicyNone
	case 6:
		if rec.IsAO() || rec.IsUntraded() {
			return PolicyNoSheen
		}
		return PolicyNone
	case 8:
		// BDSP contests
		if rec.IsBDSP() {
			return PolicyCorrelateSheen
		}
		return PolicyNone
	default:
		return PolicyNone
	}
}
