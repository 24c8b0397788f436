// Package resolve identifies which column in a table plays each semantic
// role the reconciliation pipeline needs. Matching is a two-stage strategy:
// an ordered exact-candidate list (first listed hit wins), then a
// case-insensitive substring keyword scan over the headers in table column
// order. Absence is a distinguished result, not an error — callers decide
// whether to prompt for an override, fall back to a configured position, or
// abort with a diagnostic naming the available headers.
package resolve

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/kemballops/gatecheck/pkg/errors"
	"github.com/kemballops/gatecheck/pkg/logging"
	"github.com/kemballops/gatecheck/pkg/tabular"
)

// Resolver matches roles to column names using a Profile. The zero value is
// not usable; construct with New.
type Resolver struct {
	profile   *Profile
	positions map[Role]int // optional last-resort positional fallback
	logger    *zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithProfile replaces the default matching profile.
func WithProfile(p *Profile) Option {
	return func(r *Resolver) {
		if p != nil {
			r.profile = p
		}
	}
}

// WithPositionalFallback registers a raw column index to use for a role
// when name-based resolution fails. This is a schema-dependent last resort;
// every use is logged as a degradation.
func WithPositionalFallback(role Role, index int) Option {
	return func(r *Resolver) {
		if r.positions == nil {
			r.positions = make(map[Role]int)
		}
		r.positions[role] = index
	}
}

// WithLogger sets the logger used to surface positional-fallback
// degradations.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver with the default profile.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		profile: DefaultProfile(),
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the column name playing the given role in the table, or
// false when neither matching stage finds one. Pure function of the header
// set, the role, and the profile — except for the logged positional
// fallback, which only engages when explicitly configured.
func (r *Resolver) Resolve(t *tabular.Table, role Role) (string, bool) {
	spec := r.profile.spec(role)
	headers := t.Columns()

	// Stage 1: exact candidates in declaration order. Earlier-listed
	// synonyms take priority over later ones.
	for _, candidate := range spec.Candidates {
		if t.HasColumn(candidate) {
			return candidate, true
		}
	}

	// Stage 2: case-insensitive keyword scan in table column order.
	for _, header := range headers {
		lower := strings.ToLower(header)
		for _, keyword := range spec.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return header, true
			}
		}
	}

	// Last resort: configured positional fallback.
	if idx, ok := r.positions[role]; ok && idx >= 0 && idx < len(headers) {
		r.logger.Warn().
			Str("table", t.Name()).
			Str("role", role.String()).
			Int("position", idx).
			Str("header", headers[idx]).
			Msg("Name-based resolution failed; using positional fallback")
		return headers[idx], true
	}

	return "", false
}

// Require resolves a role and converts absence into an
// UnresolvableColumnError carrying the table identity and its full header
// list, for callers that cannot proceed without the column.
func (r *Resolver) Require(t *tabular.Table, role Role) (string, error) {
	if column, ok := r.Resolve(t, role); ok {
		return column, nil
	}
	return "", errors.NewUnresolvableColumnError(t.Name(), role.String(), t.Columns())
}
