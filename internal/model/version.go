package model

// GameVersion identifies the game a record was caught in.
// Values match the in-save version byte.
type GameVersion int32

const (
	VersionNone GameVersion = 0

	// Generation 3
	VersionSapphire  GameVersion = 1
	VersionRuby      GameVersion = 2
	VersionEmerald   GameVersion = 3
	VersionFireRed   GameVersion = 4
	VersionLeafGreen GameVersion = 5
	VersionColosseum GameVersion = 15

	// Generation 4
	VersionHeartGold  GameVersion = 7
	VersionSoulSilver GameVersion = 8
	VersionDiamond    GameVersion = 10
	VersionPearl      GameVersion = 11
	VersionPlatinum   GameVersion = 12

	// Generation 5
	VersionWhite  GameVersion = 20
	VersionBlack  GameVersion = 21
	VersionWhite2 GameVersion = 22
	VersionBlack2 GameVersion = 23

	// Generation 6
	VersionX             GameVersion = 24
	VersionY             GameVersion = 25
	VersionAlphaSapphire GameVersion = 26
	VersionOmegaRuby     GameVersion = 27

	// Generation 7
	VersionSun       GameVersion = 30
	VersionMoon      GameVersion = 31
	VersionUltraSun  GameVersion = 32
	VersionUltraMoon GameVersion = 33

	// Generation 8
	VersionSword            GameVersion = 44
	VersionShield           GameVersion = 45
	VersionBrilliantDiamond GameVersion = 48
	VersionShiningPearl     GameVersion = 49
)

var versionInfo = map[GameVersion]struct {
	name       string
	generation int
}{
	VersionSapphire:         {"Sapphire", 3},
	VersionRuby:             {"Ruby", 3},
	VersionEmerald:          {"Emerald", 3},
	VersionFireRed:          {"FireRed", 3},
	VersionLeafGreen:        {"LeafGreen", 3},
	VersionColosseum:        {"Colosseum/XD", 3},
	VersionHeartGold:        {"HeartGold", 4},
	VersionSoulSilver:       {"SoulSilver", 4},
	VersionDiamond:          {"Diamond", 4},
	VersionPearl:            {"Pearl", 4},
	VersionPlatinum:         {"Platinum", 4},
	VersionWhite:            {"White", 5},
	VersionBlack:            {"Black", 5},
	VersionWhite2:           {"White 2", 5},
	VersionBlack2:           {"Black 2", 5},
	VersionX:                {"X", 6},
	VersionY:                {"Y", 6},
	VersionAlphaSapphire:    {"Alpha Sapphire", 6},
	VersionOmegaRuby:        {"Omega Ruby", 6},
	VersionSun:              {"Sun", 7},
	VersionMoon:             {"Moon", 7},
	VersionUltraSun:         {"Ultra Sun", 7},
	VersionUltraMoon:        {"Ultra Moon", 7},
	VersionSword:            {"Sword", 8},
	VersionShield:           {"Shield", 8},
	VersionBrilliantDiamond: {"Brilliant Diamond", 8},
	VersionShiningPearl:     {"Shining Pearl", 8},
}

// String returns the game name.
func (v GameVersion) String() string {
	if info, ok := versionInfo[v]; ok {
		return info.name
	}
	return "Unknown"
}

// Generation returns the generation of the game, 0 for unknown versions.
func (v GameVersion) Generation() int {
	return versionInfo[v].generation
}

// IsAO reports Alpha Sapphire / Omega Ruby.
func (v GameVersion) IsAO() bool {
	return v == VersionAlphaSapphire || v == VersionOmegaRuby
}

// IsBDSP reports Brilliant Diamond / Shining Pearl.
func (v GameVersion) IsBDSP() bool {
	return v == VersionBrilliantDiamond || v == VersionShiningPearl
}
