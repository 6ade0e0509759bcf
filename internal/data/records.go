package data

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/sheencheck/internal/contest"
	"github.com/udisondev/sheencheck/internal/legality"
	"github.com/udisondev/sheencheck/internal/model"
)

// ErrNoRecords is returned for a dump without records.
var ErrNoRecords = errors.New("no records in dump")

// contestStatsDef mirrors contest.Stats in the dump. uint8 fields make yaml
// reject values outside 0-255.
type contestStatsDef struct {
	Cool   uint8 `yaml:"cool"`
	Beauty uint8 `yaml:"beauty"`
	Cute   uint8 `yaml:"cute"`
	Smart  uint8 `yaml:"smart"`
	Tough  uint8 `yaml:"tough"`
	Sheen  uint8 `yaml:"sheen"`
}

func (d contestStatsDef) stats() contest.Stats {
	return contest.Stats{
		Cool:   d.Cool,
		Beauty: d.Beauty,
		Cute:   d.Cute,
		Smart:  d.Smart,
		Tough:  d.Tough,
		Sheen:  d.Sheen,
	}
}

type encounterDef struct {
	Name       string           `yaml:"name"`
	Generation int              `yaml:"generation"`
	Contest    *contestStatsDef `yaml:"contest"` // nil = no declared stats
}

type recordDef struct {
	ID         int64           `yaml:"id"`
	Species    uint16          `yaml:"species"`
	Nature     int32           `yaml:"nature"`
	Version    int32           `yaml:"version"`
	Generation int             `yaml:"generation"` // 0 = derive from version
	Format     int             `yaml:"format"`
	Untraded   bool            `yaml:"untraded"`
	Contest    contestStatsDef `yaml:"contest"`
	Encounter  encounterDef    `yaml:"encounter"`
}

type dumpDef struct {
	Records []recordDef `yaml:"records"`
}

// LoadRecords reads a YAML record dump and returns verifier entries.
func LoadRecords(path string) ([]legality.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records %s: %w", path, err)
	}
	entries, err := ParseRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing records %s: %w", path, err)
	}
	return entries, nil
}

// ParseRecords decodes a YAML record dump.
func ParseRecords(raw []byte) ([]legality.Entry, error) {
	var dump dumpDef
	if err := yaml.Unmarshal(raw, &dump); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if len(dump.Records) == 0 {
		return nil, ErrNoRecords
	}

	entries := make([]legality.Entry, 0, len(dump.Records))
	for _, def := range dump.Records {
		version := model.GameVersion(def.Version)
		rec, err := model.NewPKM(def.ID, def.Species, model.Nature(def.Nature), version,
			def.Generation, def.Format, def.Untraded, def.Contest.stats())
		if err != nil {
			return nil, err
		}

		encGen := def.Encounter.Generation
		if encGen == 0 {
			encGen = rec.Generation()
		}
		enc := model.NewEncounter(def.Encounter.Name, def.Species, encGen)
		if def.Encounter.Contest != nil {
			enc = enc.WithContestStats(def.Encounter.Contest.stats())
		}

		entries = append(entries, legality.Entry{Record: rec, Encounter: enc})
	}
	return entries, nil
}
