package contest

import "testing"

func TestNeutralNaturesHaveNoAmp(t *testing.T) {
	t.Parallel()

	for n := range NatureCount {
		row := natureAmp[n]
		var liked, disliked int
		for _, amp := range row {
			switch amp {
			case 1:
				liked++
			case -1:
				disliked++
			case 0:
			default:
				t.Fatalf("nature %d: unexpected amp %d", n, amp)
			}
		}

		if IsNeutralNature(n) {
			if liked != 0 || disliked != 0 {
				t.Errorf("neutral nature %d has amp row %v", n, row)
			}
			continue
		}
		if liked != 1 || disliked != 1 {
			t.Errorf("nature %d: liked=%d disliked=%d, want 1/1", n, liked, disliked)
		}
	}
}

func TestBoost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stat, factor int
		want         int
	}{
		{0, 11, 0},
		{15, 11, 1}, // remainder 4
		{16, 11, 2}, // remainder 5 rounds up
		{20, 11, 2}, // remainder 9
		{13, 9, 1},  // remainder 4
		{14, 9, 2},  // remainder 5 rounds up
		{20, 9, 2},  // remainder 2
		{-6, 11, 0}, // negative remainder never rounds
		{-20, 11, -1},
		{-20, 9, -2},
	}
	for _, tt := range tests {
		if got := boost(tt.stat, tt.factor); got != tt.want {
			t.Errorf("boost(%d, %d) = %d, want %d", tt.stat, tt.factor, got, tt.want)
		}
	}
}

func TestAverageFeel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current Stats
		initial Stats
		nature  int
		want    int
	}{
		{"no amp", Stats{Cool: 20}, Stats{}, 0, 4},
		{"liked flavor shrinks gain", Stats{Cool: 20}, Stats{}, 1, 3},  // 20 - 2
		{"disliked flavor grows gain", Stats{Cool: 20}, Stats{}, 5, 4}, // 20 + 2
		{"negative gain", Stats{}, Stats{Cool: 20}, 0, -4},
		{"negative liked gain truncates", Stats{}, Stats{Cool: 20}, 1, -3}, // -20 + 1
		{"gain over baseline", Stats{Cool: 30, Beauty: 15}, Stats{Cool: 10, Beauty: 10}, 0, 5},
		{"sheen is ignored", Stats{Cool: 20, Sheen: 200}, Stats{Sheen: 3}, 0, 4},
		{"out of range nature is neutral", Stats{Cool: 20}, Stats{}, 99, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := AverageFeel(tt.current, tt.nature, tt.initial); got != tt.want {
				t.Errorf("AverageFeel() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAverageFeel_EqualIsZero(t *testing.T) {
	t.Parallel()

	sets := []Stats{
		{},
		{Cool: 20},
		{Cool: 10, Beauty: 20, Cute: 30, Smart: 40, Tough: 50, Sheen: 60},
		Uniform(MaxStat, MaxStat),
	}
	for _, s := range sets {
		for n := range NatureCount {
			if got := AverageFeel(s, n, s); got != 0 {
				t.Errorf("AverageFeel(%+v, %d, same) = %d, want 0", s, n, got)
			}
		}
	}
}

func TestMaximumSheen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current Stats
		initial Stats
		nature  int
		family  ItemFamily
		want    int
	}{
		{"poffin scenario", Stats{Cool: 20}, Stats{}, 0, FamilyPoffin, 68},
		{"block scenario", Stats{Cool: 20}, Stats{}, 0, FamilyBlock, 9},
		{"block floor", Stats{Cool: 5}, Stats{}, 0, FamilyBlock, 3},
		{"poffin cap", Stats{Cool: 200, Beauty: 200}, Stats{}, 0, FamilyPoffin, 255},
		{"block cap", Uniform(200, 0), Stats{}, 0, FamilyBlock, 255},
		{"any stat max", Stats{Tough: 255}, Stats{Sheen: 9}, 3, FamilyBlock, 255},
		{"any stat max below baseline", Stats{Cute: 255}, Uniform(254, 0), 0, FamilyPoffin, 255},
		{"equal to baseline", Stats{Cool: 10, Sheen: 99}, Stats{Cool: 10, Sheen: 7}, 0, FamilyPoffin, 7},
		{"no gain keeps baseline sheen", Stats{Cool: 2}, Stats{Sheen: 5}, 0, FamilyPoffin, 5},
		{"negative gain keeps baseline sheen", Stats{}, Stats{Cool: 40, Sheen: 11}, 0, FamilyBlock, 11},
		{"liked flavor", Stats{Cool: 20}, Stats{}, 1, FamilyPoffin, 51}, // avg 3
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MaximumSheen(tt.current, tt.nature, tt.initial, tt.family); got != tt.want {
				t.Errorf("MaximumSheen() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMinimumSheen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current Stats
		initial Stats
		nature  int
		family  ItemFamily
		want    int
	}{
		{"poffin scenario", Stats{Cool: 20}, Stats{}, 0, FamilyPoffin, 17},
		{"block scenario", Stats{Cool: 20}, Stats{}, 0, FamilyBlock, 4},
		{"block liked flavor", Stats{Cool: 20}, Stats{}, 1, FamilyBlock, 3},
		{"block disliked flavor stays generous", Stats{Cool: 20}, Stats{}, 5, FamilyBlock, 4},
		{"block larger gain", Stats{Cool: 50, Beauty: 50}, Stats{}, 0, FamilyBlock, 20},
		{"poffin larger gain", Uniform(100, 0), Stats{}, 12, FamilyPoffin, 100},
		{"negative gain hits floor", Stats{}, Stats{Cool: 20}, 0, FamilyBlock, 3},
		{"raw average at cap", Uniform(255, 0), Stats{}, 0, FamilyBlock, 255},
		{"equal to baseline", Stats{Cool: 10, Sheen: 99}, Stats{Cool: 10, Sheen: 7}, 0, FamilyBlock, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MinimumSheen(tt.current, tt.nature, tt.initial, tt.family); got != tt.want {
				t.Errorf("MinimumSheen() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaximumSheen_AnyStatMax(t *testing.T) {
	t.Parallel()

	for _, family := range []ItemFamily{FamilyBlock, FamilyPoffin} {
		for n := range NatureCount {
			for col := range 5 {
				s := Stats{Cool: 1, Beauty: 2, Cute: 3, Smart: 4, Tough: 5}
				setColumn(&s, col, MaxStat)
				if got := MaximumSheen(s, n, Stats{Sheen: 1}, family); got != MaxStat {
					t.Errorf("%v nature %d column %d: MaximumSheen() = %d, want %d", family, n, col, got, MaxStat)
				}
			}
		}
	}
}

func TestSheenWindow(t *testing.T) {
	t.Parallel()

	var gains []Stats
	for _, g := range []byte{10, 50, 100, 200, 250} {
		gains = append(gains, Uniform(g, 0))
	}
	for col := range 5 {
		for _, g := range []byte{30, 120} {
			var s Stats
			setColumn(&s, col, g)
			gains = append(gains, s)
		}
	}
	baselines := []Stats{{}, Uniform(5, 0)}

	for _, family := range []ItemFamily{FamilyBlock, FamilyPoffin} {
		for _, base := range baselines {
			for _, gain := range gains {
				// одиночный прирост проверяем только от нулевой базы
				if !base.IsZero() && !isUniform(gain) {
					continue
				}
				cur := add(base, gain)
				for n := range NatureCount {
					lo := MinimumSheen(cur, n, base, family)
					hi := MaximumSheen(cur, n, base, family)
					if lo > hi {
						t.Errorf("%v nature %d current %+v base %+v: min %d > max %d", family, n, cur, base, lo, hi)
					}
				}
			}
		}
	}
}

func TestMinimumSheen_MonotonicInGain(t *testing.T) {
	t.Parallel()

	for _, family := range []ItemFamily{FamilyBlock, FamilyPoffin} {
		for n := range NatureCount {
			prev := 0
			for g := 1; g < MaxStat; g++ {
				got := MinimumSheen(Stats{Smart: byte(g)}, n, Stats{}, family)
				if got < prev {
					t.Fatalf("%v nature %d: MinimumSheen dropped from %d to %d at gain %d", family, n, prev, got, g)
				}
				prev = got
			}
		}
	}
}

func TestFamilyFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		generation int
		want       ItemFamily
	}{
		{3, FamilyBlock},
		{4, FamilyPoffin},
		{8, FamilyPoffin},
	}
	for _, tt := range tests {
		if got := FamilyFor(tt.generation); got != tt.want {
			t.Errorf("FamilyFor(%d) = %v, want %v", tt.generation, got, tt.want)
		}
	}
}

func setColumn(s *Stats, col int, v byte) {
	switch col {
	case 0:
		s.Cool = v
	case 1:
		s.Beauty = v
	case 2:
		s.Cute = v
	case 3:
		s.Smart = v
	case 4:
		s.Tough = v
	}
}

func isUniform(s Stats) bool {
	return s.Cool == s.Beauty && s.Beauty == s.Cute && s.Cute == s.Smart && s.Smart == s.Tough
}

func add(a, b Stats) Stats {
	return Stats{
		Cool:   a.Cool + b.Cool,
		Beauty: a.Beauty + b.Beauty,
		Cute:   a.Cute + b.Cute,
		Smart:  a.Smart + b.Smart,
		Tough:  a.Tough + b.Tough,
		Sheen:  a.Sheen + b.Sheen,
	}
}
