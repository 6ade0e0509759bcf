package contest

// NatureCount is the number of natures.
const NatureCount = 25

// natureAmp holds the flavor preference of each nature.
// +1 marks the liked flavor (stat gain amplified), -1 the disliked one.
// Columns: Spicy(cool), Dry(beauty), Sweet(cute), Bitter(smart), Sour(tough).
var natureAmp = [NatureCount][5]int8{
	{0, 0, 0, 0, 0},  // Hardy
	{1, 0, 0, 0, -1}, // Lonely
	{1, 0, -1, 0, 0}, // Brave
	{1, -1, 0, 0, 0}, // Adamant
	{1, 0, 0, -1, 0}, // Naughty
	{-1, 0, 0, 0, 1}, // Bold
	{0, 0, 0, 0, 0},  // Docile
	{0, 0, -1, 0, 1}, // Relaxed
	{0, -1, 0, 0, 1}, // Impish
	{0, 0, 0, -1, 1}, // Lax
	{-1, 0, 1, 0, 0}, // Timid
	{0, 0, 1, 0, -1}, // Hasty
	{0, 0, 0, 0, 0},  // Serious
	{0, -1, 1, 0, 0}, // Jolly
	{0, 0, 1, -1, 0}, // Naive
	{-1, 1, 0, 0, 0}, // Modest
	{0, 1, 0, 0, -1}, // Mild
	{0, 1, -1, 0, 0}, // Quiet
	{0, 0, 0, 0, 0},  // Bashful
	{0, 1, 0, -1, 0}, // Rash
	{-1, 0, 0, 1, 0}, // Calm
	{0, 0, 0, 1, -1}, // Gentle
	{0, 0, -1, 1, 0}, // Sassy
	{0, -1, 0, 1, 0}, // Careful
	{0, 0, 0, 0, 0},  // Quirky
}

// IsNeutralNature reports whether the nature has no flavor preference.
// Neutral natures sit on the diagonal of the 5x5 nature grid.
func IsNeutralNature(nature int) bool {
	return nature%6 == 0
}

// ampRow returns the amplification row of a nature.
// Out of range natures get the neutral row.
func ampRow(nature int) [5]int8 {
	if nature < 0 || nature >= NatureCount {
		return natureAmp[0]
	}
	return natureAmp[nature]
}
