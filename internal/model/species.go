package model

import "github.com/udisondev/sheencheck/internal/contest"

// National dex numbers referenced by the checker.
const (
	SpeciesPikachu uint16 = 25
	SpeciesFeebas  uint16 = 349
	SpeciesMilotic        = contest.Milotic
)
