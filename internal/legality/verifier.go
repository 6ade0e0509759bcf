// Package legality checks stored contest stats and sheen of records against
// what legitimate play could have produced.
package legality

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/sheencheck/internal/contest"
	"github.com/udisondev/sheencheck/internal/model"
)

// Finding codes.
const (
	CodeSheenTooLow   = "contest_sheen_too_low"
	CodeSheenTooHigh  = "contest_sheen_too_high"
	CodeSheenNotFixed = "contest_sheen_not_baseline"
)

// Finding is a single legality violation.
type Finding struct {
	Code    string
	Message string
}

// Report is the result of checking one record.
type Report struct {
	RecordID int64
	Policy   contest.Policy
	Family   contest.ItemFamily
	Sheen    int
	// MinSheen/MaxSheen are -1 when the policy does not compute that bound.
	MinSheen int
	MaxSheen int
	Findings []Finding
}

// Valid reports whether no violation was found.
func (r Report) Valid() bool {
	return len(r.Findings) == 0
}

func (r *Report) addf(code, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Code: code, Message: fmt.Sprintf(format, args...)})
}

// VerifyContestStats checks the sheen of rec against the window allowed by its
// contest stat gains over the encounter baseline.
func VerifyContestStats(rec *model.PKM, enc model.Encounter) Report {
	stats := rec.ContestStats()
	policy := contest.PolicyFor(rec, rec.Generation())
	report := Report{
		RecordID: rec.ID(),
		Policy:   policy,
		Family:   contest.FamilyFor(rec.Generation()),
		Sheen:    int(stats.Sheen),
		MinSheen: -1,
		MaxSheen: -1,
	}

	initial := contest.Baseline(enc)
	// Nothing raised since the encounter: the encounter matcher owns these values.
	if stats == initial {
		return report
	}

	nature := int(rec.Nature())
	switch policy {
	case contest.PolicyNone:
		// Stats and sheen are independent here, nothing to infer.
	case contest.PolicyCorrelateSheen:
		report.MinSheen = contest.MinimumSheen(stats, nature, initial, report.Family)
		report.MaxSheen = contest.MaximumSheen(stats, nature, initial, report.Family)
		if report.Sheen < report.MinSheen {
			report.addf(CodeSheenTooLow, "contest sheen %d is below the minimum %d", report.Sheen, report.MinSheen)
		}
		if report.Sheen > report.MaxSheen {
			report.addf(CodeSheenTooHigh, "contest sheen %d is above the maximum %d", report.Sheen, report.MaxSheen)
		}
	case contest.PolicyMixed:
		// Stats may have been raised in a later format without sheen, only the cap holds.
		report.MaxSheen = contest.MaximumSheen(stats, nature, initial, report.Family)
		if report.Sheen > report.MaxSheen {
			report.addf(CodeSheenTooHigh, "contest sheen %d is above the maximum %d", report.Sheen, report.MaxSheen)
		}
	case contest.PolicyNoSheen:
		report.MinSheen = int(initial.Sheen)
		report.MaxSheen = int(initial.Sheen)
		if report.Sheen != report.MinSheen {
			report.addf(CodeSheenNotFixed, "contest sheen %d must stay at %d", report.Sheen, report.MinSheen)
		}
	}

	if report.Valid() {
		slog.Debug("contest stats verified",
			"record", rec.ID(),
			"policy", policy,
			"sheen", report.Sheen,
			"min", report.MinSheen,
			"max", report.MaxSheen)
	} else {
		slog.Warn("contest stats invalid",
			"record", rec.ID(),
			"policy", policy,
			"sheen", report.Sheen,
			"min", report.MinSheen,
			"max", report.MaxSheen,
			"findings", len(report.Findings))
	}
	return report
}
