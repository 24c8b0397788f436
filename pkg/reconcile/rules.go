package reconcile

import (
	"github.com/kemballops/gatecheck/pkg/filter"
	"github.com/kemballops/gatecheck/pkg/normalize"
)

// Outcome is what an exception rule decides for an identifier present in
// both systems.
type Outcome int

const (
	// OutcomeReview is the default when no rule matches: the pair is
	// reported as present in both systems but worth reviewing.
	OutcomeReview Outcome = iota
	// OutcomeSuppress drops the pair from the report entirely — it is
	// considered fully reconciled. The common case.
	OutcomeSuppress
	// OutcomeReclassify reports the pair as missing from TOPS despite the
	// identifier existing there.
	OutcomeReclassify
)

// Match is the per-identifier context an exception rule sees: the TOPS
// side's status and location and the Cyman side's activity, all normalized.
// When a side has duplicate rows for the identifier, the first occurrence
// provides the context.
type Match struct {
	Identifier string
	Status     string
	Location   string
	Activity   string
}

// Rule is one priority-ordered exception rule. Rules are evaluated
// top-to-bottom per intersecting identifier; the first rule that matches
// determines the outcome, so ordering is part of the configuration, not an
// implementation detail.
type Rule interface {
	// Name identifies the rule in reports and logs.
	Name() string

	// Matches reports whether the rule applies to the pair.
	Matches(m Match) bool

	// Outcome is what happens when the rule matches.
	Outcome() Outcome
}

// skipRule suppresses pairs that are fully reconciled: the TOPS row sits
// exactly at the designated holding center and the Cyman row carries the
// standard activity. The location comparison is strict equality against the
// configured value. The tolerant centre/center spelling belongs to the row
// filter only, so a variant-spelling row survives filtering yet still falls
// through to the reclassify rule.
type skipRule struct {
	location string
	activity string
}

func (r *skipRule) Name() string { return "reconciled at holding center" }

func (r *skipRule) Matches(m Match) bool {
	return m.Location == r.location && m.Activity == r.activity
}

func (r *skipRule) Outcome() Outcome { return OutcomeSuppress }

// reclassifyRule models the business rule that an "in progress" TOPS record
// is not a true match for a "standard" Cyman record: the pair is reported
// as missing from TOPS.
type reclassifyRule struct {
	activity string
}

func (r *reclassifyRule) Name() string { return "in progress on TOPS side" }

func (r *reclassifyRule) Matches(m Match) bool {
	return m.Activity == r.activity && m.Status == "in progress"
}

func (r *reclassifyRule) Outcome() Outcome { return OutcomeReclassify }

// DefaultRules returns the standard exception rule list in priority order:
// the skip rule first, then the reclassify rule. A pair satisfying both is
// suppressed — the earlier rule wins.
func DefaultRules(cfg filter.Config) []Rule {
	activity := normalize.Activity(cfg.RequiredActivity)
	return []Rule{
		&skipRule{
			location: normalize.Location(cfg.TargetLocation),
			activity: activity,
		},
		&reclassifyRule{activity: activity},
	}
}

// evaluate runs the rule list top-to-bottom and returns the first matching
// rule's outcome, or OutcomeReview with no rule when none match.
func evaluate(rules []Rule, m Match) (Outcome, Rule) {
	for _, rule := range rules {
		if rule.Matches(m) {
			return rule.Outcome(), rule
		}
	}
	return OutcomeReview, nil
}
