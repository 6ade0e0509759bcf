package contest

// ItemFamily selects the treat mechanics used to raise contest stats.
type ItemFamily int32

const (
	// FamilyPoffin -- Poffins (DPPt, HGSS, BDSP).
	FamilyPoffin ItemFamily = iota
	// FamilyBlock -- Pokéblocks (RSE).
	FamilyBlock
)

// Worst feel of a treat: the smallest sheen gain one treat can give.
// A burnt/spilled Poffin still has feel 17; the worst Pokéblock has 3.
const (
	worstFeelBlock  = 3
	worstFeelPoffin = 17
)

// String returns the human-readable name of the item family.
func (f ItemFamily) String() string {
	switch f {
	case FamilyPoffin:
		return "Poffin"
	case FamilyBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// FamilyFor returns the treat family available in the origin generation.
func FamilyFor(generation int) ItemFamily {
	if generation == 3 {
		return FamilyBlock
	}
	return FamilyPoffin
}

func (f ItemFamily) worstFeel() int {
	if f == FamilyBlock {
		return worstFeelBlock
	}
	return worstFeelPoffin
}

// MaximumSheen returns the most sheen the record could carry given its stat
// gains over initial, assuming the most sheen-efficient treats.
func MaximumSheen(s Stats, nature int, initial Stats, family ItemFamily) int {
	if s.IsAnyMax() {
		return MaxStat
	}
	if s.Equal(initial) {
		return int(initial.Sheen)
	}

	avg := AverageFeel(s, nature, initial)
	if avg <= 0 {
		return int(initial.Sheen)
	}

	if family == FamilyBlock {
		fudge := avg * 225 / 100
		return min(MaxStat, max(worstFeelBlock, fudge))
	}

	// Poffins can be burnt and spilled on purpose, no floor beyond the cap.
	return min(MaxStat, avg*worstFeelPoffin)
}

// MinimumSheen returns the least sheen the record must carry given its stat
// gains over initial, assuming the worst treats that still produce them.
func MinimumSheen(s Stats, nature int, initial Stats, family ItemFamily) int {
	if s.Equal(initial) {
		return int(initial.Sheen)
	}

	rawAvg := AverageFeel(s, 0, initial)
	if rawAvg == MaxStat {
		return MaxStat
	}

	avg := rawAvg
	if !IsNeutralNature(nature) {
		avg = AverageFeel(s, nature, initial)
	}
	avg = max(1, avg)
	avg = min(rawAvg, avg) // be generous

	return min(MaxStat, max(family.worstFeel(), avg))
}

// AverageFeel recovers the average raw stat gain per stat, undoing the
// nature's flavor amplification. The result truncates toward zero.
func AverageFeel(s Stats, nature int, initial Stats) int {
	amps := ampRow(nature)
	cur := s.array()
	base := initial.array()

	sum := 0
	for i := range cur {
		sum += ampedGain(amps[i], cur[i]-base[i])
	}
	return sum / 5
}

func ampedGain(amp int8, gain int) int {
	if amp == 0 {
		return gain
	}
	return gain + statAdjustment(gain, amp)
}

// statAdjustment undoes the favor factor applied in-game: liked flavors
// gained 10% extra, disliked flavors lost 10%.
func statAdjustment(gain int, amp int8) int {
	factor := 9
	if amp == 1 {
		factor = 11
	}
	b := boost(gain, factor)
	if amp == -1 {
		return b
	}
	return -b
}

// boost divides with truncation and bumps the quotient when the remainder is
// at least 5. Must stay bit-exact with the game's rounding.
func boost(stat, factor int) int {
	q := stat / factor
	if stat%factor >= 5 {
		q++
	}
	return q
}
