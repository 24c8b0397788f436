// Package reconcile computes which unit identifiers are present in one
// filtered source table but absent from the other. The base algorithm is a
// plain symmetric difference over the two distinct-identifier sets.
// The extended algorithm additionally runs a priority-ordered exception
// rule list over the intersection, which can suppress a matching pair,
// reclassify it as missing from TOPS, or flag it for review. Everything
// returned is sorted: identical inputs produce byte-identical results.
package reconcile

import (
	"sort"

	"github.com/kemballops/gatecheck/pkg/errors"
	"github.com/kemballops/gatecheck/pkg/filter"
	"github.com/kemballops/gatecheck/pkg/normalize"
	"github.com/kemballops/gatecheck/pkg/tabular"
)

// Side is one source's filtered table with its resolved column names. Only
// the identifier column is mandatory; status/location/activity feed the
// exception rules when present.
type Side struct {
	Table   *tabular.Table
	Columns filter.Columns
}

// Flag is an intersection record that still appears in the report, with the
// rule that put it there.
type Flag struct {
	Identifier string
	Reason     string
	PresentA   bool
	PresentB   bool
}

// Result is the three-way partition over the two comparison sets, plus the
// optional singleton findings. All slices are sorted ascending by
// identifier.
type Result struct {
	// AOnly are identifiers present in the TOPS set but not the Cyman set.
	AOnly []string
	// BOnly are identifiers present in the Cyman set but not the TOPS set.
	BOnly []string
	// Flags are intersection records emitted by exception rules.
	Flags []Flag
	// Singletons are identifiers whose combined occurrence count across
	// both filtered tables is exactly one. Populated only in singleton
	// mode.
	Singletons []string
	// Contexts carries each reported identifier's source row context for
	// the report builder (status/location from TOPS, activity from Cyman).
	Contexts map[string]Match
}

// options collects reconciliation settings.
type options struct {
	rules           []Rule
	checkSingletons bool
}

// Option configures a reconciliation run.
type Option func(*options)

// WithRules enables the extended algorithm with the given priority-ordered
// exception rule list. Without this option the intersection is excluded
// from the result entirely.
func WithRules(rules []Rule) Option {
	return func(o *options) { o.rules = rules }
}

// WithSingletonCheck flags identifiers that occur exactly once across both
// filtered tables combined. Evaluated independently of the main
// reconciliation; identifiers already reported are not re-added.
func WithSingletonCheck(enabled bool) Option {
	return func(o *options) { o.checkSingletons = enabled }
}

// Reconcile computes the partition between the two sides. It fails only on
// a structural problem (missing identifier column); empty tables are valid
// input and simply land everything on the other side.
func Reconcile(a, b Side, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if a.Columns.Identifier == "" {
		return nil, errors.NewUnresolvableColumnError(a.Table.Name(), "unit identifier", a.Table.Columns())
	}
	if b.Columns.Identifier == "" {
		return nil, errors.NewUnresolvableColumnError(b.Table.Name(), "unit identifier", b.Table.Columns())
	}

	idsA, countA, ctxA := collect(a, true)
	idsB, countB, ctxB := collect(b, false)

	result := &Result{Contexts: make(map[string]Match)}

	for id := range idsA {
		if _, both := idsB[id]; !both {
			result.AOnly = append(result.AOnly, id)
			result.Contexts[id] = ctxA[id]
		}
	}
	for id := range idsB {
		if _, both := idsA[id]; !both {
			result.BOnly = append(result.BOnly, id)
			result.Contexts[id] = ctxB[id]
		}
	}

	if len(o.rules) > 0 {
		result.Flags = flagIntersection(o.rules, idsA, idsB, ctxA, ctxB, result.Contexts)
	}

	if o.checkSingletons {
		result.Singletons = findSingletons(countA, countB)
		for _, id := range result.Singletons {
			if _, ok := result.Contexts[id]; !ok {
				if m, ok := ctxA[id]; ok {
					result.Contexts[id] = m
				} else {
					result.Contexts[id] = ctxB[id]
				}
			}
		}
	}

	sort.Strings(result.AOnly)
	sort.Strings(result.BOnly)
	sort.Slice(result.Flags, func(i, j int) bool {
		return result.Flags[i].Identifier < result.Flags[j].Identifier
	})

	return result, nil
}

// collect walks one side once and produces the distinct identifier set,
// per-identifier occurrence counts, and the first-occurrence row context.
func collect(s Side, topsSide bool) (map[string]struct{}, map[string]int, map[string]Match) {
	ids := make(map[string]struct{})
	counts := make(map[string]int)
	contexts := make(map[string]Match)

	for i := 0; i < s.Table.Len(); i++ {
		raw, _ := s.Table.Cell(i, s.Columns.Identifier)
		id := normalize.Identifier(raw)
		if id == "" {
			continue
		}
		counts[id]++
		if _, seen := ids[id]; seen {
			continue
		}
		ids[id] = struct{}{}
		contexts[id] = rowContext(s, i, id, topsSide)
	}
	return ids, counts, contexts
}

// rowContext extracts the normalized context fields the exception rules and
// report need from one row.
func rowContext(s Side, row int, id string, topsSide bool) Match {
	m := Match{Identifier: id}
	get := func(column string) (string, bool) {
		if column == "" {
			return "", false
		}
		return s.Table.Cell(row, column)
	}
	if topsSide {
		if v, ok := get(s.Columns.Status); ok {
			m.Status = normalize.Status(v)
		}
		if v, ok := get(s.Columns.Location); ok {
			m.Location = normalize.Location(v)
		}
	} else if v, ok := get(s.Columns.Activity); ok {
		m.Activity = normalize.Activity(v)
	}
	return m
}

// flagIntersection applies the exception rules to every identifier present
// in both sets. At most one outcome per identifier.
func flagIntersection(rules []Rule, idsA, idsB map[string]struct{},
	ctxA, ctxB, contexts map[string]Match) []Flag {
	var flags []Flag
	for id := range idsA {
		if _, both := idsB[id]; !both {
			continue
		}

		m := ctxA[id]
		m.Activity = ctxB[id].Activity

		outcome, rule := evaluate(rules, m)
		switch outcome {
		case OutcomeSuppress:
			continue
		case OutcomeReclassify:
			flags = append(flags, Flag{
				Identifier: id,
				Reason:     rule.Name(),
				PresentA:   false,
				PresentB:   true,
			})
		case OutcomeReview:
			reason := "present in both systems"
			if rule != nil {
				reason = rule.Name()
			}
			flags = append(flags, Flag{
				Identifier: id,
				Reason:     reason,
				PresentA:   true,
				PresentB:   true,
			})
		}
		contexts[id] = m
	}
	return flags
}

// findSingletons returns identifiers whose summed occurrence count across
// both tables (duplicates included) is exactly one.
func findSingletons(countA, countB map[string]int) []string {
	var singles []string
	seen := make(map[string]struct{})
	for id, n := range countA {
		if n+countB[id] == 1 {
			singles = append(singles, id)
			seen[id] = struct{}{}
		}
	}
	for id, n := range countB {
		if _, dup := seen[id]; dup {
			continue
		}
		if n+countA[id] == 1 {
			singles = append(singles, id)
		}
	}
	sort.Strings(singles)
	return singles
}
