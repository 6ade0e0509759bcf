package model

// Nature is the personality of a creature (0-24).
// Natures form a 5x5 grid: row = boosted stat, column = lowered stat.
type Nature int32

const (
	NatureHardy Nature = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky

	natureCount
)

var natureNames = [natureCount]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

// IsValid reports whether n is one of the 25 natures.
func (n Nature) IsValid() bool {
	return n >= 0 && n < natureCount
}

// String returns the nature name.
func (n Nature) String() string {
	if !n.IsValid() {
		return "Unknown"
	}
	return natureNames[n]
}
