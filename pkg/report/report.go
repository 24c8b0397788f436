// Package report assembles a reconciliation result into the ordered,
// deterministic discrepancy report handed to renderers and exporters. The
// report is constructed once per comparison, is immutable afterwards, and
// assumes nothing about how it will be displayed: records carry the plain
// Present/Missing encoding and renderers map it to visual indicators.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kemballops/gatecheck/pkg/constants"
	"github.com/kemballops/gatecheck/pkg/reconcile"
)

// Record is one row of the discrepancy report. Presence fields use the
// two-state Present/Missing encoding. The context fields come from the
// first source row carrying the identifier and are empty in the basic
// variant.
type Record struct {
	Identifier string `json:"identifier"`
	Cyman      string `json:"cyman"`
	TOPS       string `json:"tops"`
	Status     string `json:"status,omitempty"`
	Location   string `json:"location,omitempty"`
	Activity   string `json:"activity,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// Report is the ordered sequence of discrepancy records plus a scalar
// total, sorted ascending by identifier (lexicographic on the normalized
// string, never numeric). Given identical inputs the records are
// byte-identical across runs.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Records     []Record  `json:"records"`
	Total       int       `json:"total"`
	Warnings    []string  `json:"warnings,omitempty"`
}

// Empty reports whether no discrepancies were found — a valid terminal
// state, not an error.
func (r *Report) Empty() bool { return len(r.Records) == 0 }

// Option configures report construction.
type Option func(*Report)

// WithWarnings attaches soft-degrade warnings surfaced during filtering.
func WithWarnings(warnings []string) Option {
	return func(r *Report) { r.Warnings = warnings }
}

// WithRunID overrides the generated run ID. Used by callers that already
// assigned one for log correlation.
func WithRunID(id string) Option {
	return func(r *Report) { r.RunID = id }
}

// Build merges every record source from the reconciliation result, sorts by
// identifier ascending, and computes the total.
func Build(result *reconcile.Result, opts ...Option) *Report {
	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}

	for _, id := range result.AOnly {
		r.Records = append(r.Records, newRecord(id, constants.Missing, constants.Present, result))
	}
	for _, id := range result.BOnly {
		r.Records = append(r.Records, newRecord(id, constants.Present, constants.Missing, result))
	}
	for _, flag := range result.Flags {
		rec := newRecord(flag.Identifier, presence(flag.PresentB), presence(flag.PresentA), result)
		rec.Reason = flag.Reason
		r.Records = append(r.Records, rec)
	}

	// Singleton findings annotate records already present; an identifier
	// is never reported twice.
	if len(result.Singletons) > 0 {
		annotateSingletons(r.Records, result.Singletons)
	}

	sort.Slice(r.Records, func(i, j int) bool {
		return r.Records[i].Identifier < r.Records[j].Identifier
	})
	r.Total = len(r.Records)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// newRecord fills a record with the identifier's source row context.
func newRecord(id, cyman, tops string, result *reconcile.Result) Record {
	rec := Record{Identifier: id, Cyman: cyman, TOPS: tops}
	if ctx, ok := result.Contexts[id]; ok {
		rec.Status = ctx.Status
		rec.Location = ctx.Location
		rec.Activity = ctx.Activity
	}
	return rec
}

// presence maps a boolean to the Present/Missing encoding.
func presence(present bool) string {
	if present {
		return constants.Present
	}
	return constants.Missing
}

// annotateSingletons marks records whose identifier occurred exactly once
// across both systems combined.
func annotateSingletons(records []Record, singletons []string) {
	single := make(map[string]struct{}, len(singletons))
	for _, id := range singletons {
		single[id] = struct{}{}
	}
	for i := range records {
		if _, ok := single[records[i].Identifier]; !ok {
			continue
		}
		if records[i].Reason == "" {
			records[i].Reason = "single occurrence across both systems"
		} else {
			records[i].Reason += "; single occurrence across both systems"
		}
	}
}
