package model

import (
	"errors"
	"fmt"

	"github.com/udisondev/sheencheck/internal/contest"
)

// Validation errors.
var (
	ErrInvalidNature     = errors.New("invalid nature")
	ErrInvalidGeneration = errors.New("invalid generation")
	ErrInvalidFormat     = errors.New("invalid format")
)

// Lowest generation with contest stats.
const minContestGeneration = 3

// PKM is a creature record taken from a save file.
//
// Only formats 3+ carry contest stats, so NewPKM rejects anything older and
// every PKM is safe to hand to contest.SetSuggestedStats / SetMaxStats.
type PKM struct {
	id         int64
	species    uint16
	nature     Nature
	generation int // generation of origin
	format     int // generation of the save format it lives in now
	version    GameVersion
	untraded   bool
	stats      contest.Stats
}

// NewPKM создаёт запись с валидацией.
//
// Parameters:
//   - id: record identifier in the dump
//   - generation: generation of origin; 0 derives it from version
//   - format: current save format generation, must be >= generation
func NewPKM(id int64, species uint16, nature Nature, version GameVersion, generation, format int, untraded bool, stats contest.Stats) (*PKM, error) {
	if !nature.IsValid() {
		return nil, fmt.Errorf("record %d: %w: %d", id, ErrInvalidNature, nature)
	}
	if generation == 0 {
		generation = version.Generation()
	}
	if generation < minContestGeneration {
		return nil, fmt.Errorf("record %d: %w: %d", id, ErrInvalidGeneration, generation)
	}
	if format < generation {
		return nil, fmt.Errorf("record %d: %w: format %d older than origin %d", id, ErrInvalidFormat, format, generation)
	}

	return &PKM{
		id:         id,
		species:    species,
		nature:     nature,
		generation: generation,
		format:     format,
		version:    version,
		untraded:   untraded,
		stats:      stats,
	}, nil
}

// ID returns the record identifier.
func (p *PKM) ID() int64 { return p.id }

// Species returns the national dex number.
func (p *PKM) Species() uint16 { return p.species }

// Nature returns the nature of the creature.
func (p *PKM) Nature() Nature { return p.nature }

// Version returns the game of origin.
func (p *PKM) Version() GameVersion { return p.version }

// Generation returns the generation of origin.
func (p *PKM) Generation() int { return p.generation }

// Format returns the current save format generation.
func (p *PKM) Format() int { return p.format }

// IsUntraded reports whether the record never left its original trainer.
func (p *PKM) IsUntraded() bool { return p.untraded }

// IsAO reports an Alpha Sapphire / Omega Ruby origin.
func (p *PKM) IsAO() bool { return p.version.IsAO() }

// IsBDSP reports a Brilliant Diamond / Shining Pearl origin.
func (p *PKM) IsBDSP() bool { return p.version.IsBDSP() }

// ContestStats returns the current contest stats.
func (p *PKM) ContestStats() contest.Stats { return p.stats }

// SetContestStats overwrites the contest stats, sheen included.
func (p *PKM) SetContestStats(s contest.Stats) { p.stats = s }

// String returns a short description for logs.
func (p *PKM) String() string {
	return fmt.Sprintf("PKM{id=%d species=%d nature=%s version=%s gen=%d format=%d}",
		p.id, p.species, p.nature, p.version, p.generation, p.format)
}

var _ contest.Record = (*PKM)(nil)
