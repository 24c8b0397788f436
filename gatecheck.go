// Package gatecheck reconciles container exports from the TOPS and Cyman
// tracking systems. Given two already-parsed tables it identifies the
// column playing each semantic role, normalizes values, filters each table
// to the rows eligible for comparison, computes the set difference between
// the two identifier sets (optionally applying exception rules to the
// intersection), and builds a deterministic discrepancy report.
//
// The comparison is a pure request/response pass: tables in, report out,
// no shared mutable state, so independent comparisons are safe to run
// concurrently without locking.
package gatecheck

import (
	"github.com/google/uuid"

	"github.com/kemballops/gatecheck/pkg/errors"
	"github.com/kemballops/gatecheck/pkg/filter"
	"github.com/kemballops/gatecheck/pkg/reconcile"
	"github.com/kemballops/gatecheck/pkg/report"
	"github.com/kemballops/gatecheck/pkg/resolve"
	"github.com/kemballops/gatecheck/pkg/tabular"
)

// Compare runs a full reconciliation between a TOPS export and a Cyman
// export and returns the discrepancy report. Structural problems — an
// identifier column that cannot be resolved, or an explicit override
// naming a column that does not exist — abort before any filtering; no
// partial report is ever returned.
func Compare(tops, cyman *tabular.Table, opts ...Option) (*report.Report, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	runID := uuid.NewString()
	logger := cfg.logger.With().Str("run_id", runID).Logger()

	resolver := resolve.New(
		resolve.WithProfile(cfg.profile),
		resolve.WithLogger(&logger),
	)

	// Structural stage: both identifier columns must resolve before any
	// filtering or comparison work starts.
	topsCols, err := resolveColumns(resolver, tops, cfg.unitColumnTOPS, topsRoles)
	if err != nil {
		return nil, err
	}
	cymanCols, err := resolveColumns(resolver, cyman, cfg.unitColumnCyman, cymanRoles)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("tops_identifier", topsCols.Identifier).
		Str("cyman_identifier", cymanCols.Identifier).
		Msg("Resolved identifier columns")

	filteredTOPS, topsWarnings := filter.TOPS(tops, topsCols, cfg.filter)
	filteredCyman, cymanWarnings := filter.Cyman(cyman, cymanCols, cfg.filter)

	warnings := make([]string, 0, len(topsWarnings)+len(cymanWarnings))
	for _, w := range append(topsWarnings, cymanWarnings...) {
		warnings = append(warnings, w.String())
		logger.Warn().Str("table", w.Table).Str("role", w.Role).
			Msg("Filter clause skipped: column not resolved")
	}

	logger.Info().
		Int("tops_rows", filteredTOPS.Len()).
		Int("cyman_rows", filteredCyman.Len()).
		Msg("Filtered tables for comparison")

	reconcileOpts := []reconcile.Option{
		reconcile.WithSingletonCheck(cfg.checkSingletons),
	}
	if cfg.exceptionRules {
		reconcileOpts = append(reconcileOpts, reconcile.WithRules(reconcile.DefaultRules(cfg.filter)))
	}

	result, err := reconcile.Reconcile(
		reconcile.Side{Table: filteredTOPS, Columns: topsCols},
		reconcile.Side{Table: filteredCyman, Columns: cymanCols},
		reconcileOpts...,
	)
	if err != nil {
		return nil, err
	}

	rep := report.Build(result,
		report.WithRunID(runID),
		report.WithWarnings(warnings),
	)

	logger.Info().Int("total", rep.Total).Msg("Comparison complete")
	return rep, nil
}

// roleSet names the soft-resolved roles for one source system.
type roleSet struct {
	status, location, activity, haulier bool
}

var (
	topsRoles  = roleSet{status: true, location: true}
	cymanRoles = roleSet{activity: true, haulier: true}
)

// resolveColumns resolves the identifier column strictly (explicit override
// or two-stage matching) and the source's context roles softly.
func resolveColumns(r *resolve.Resolver, t *tabular.Table, override string, roles roleSet) (filter.Columns, error) {
	var cols filter.Columns

	if override != "" {
		if !t.HasColumn(override) {
			return cols, errors.NewMissingColumnsError(t.Name(), []string{override})
		}
		cols.Identifier = override
	} else {
		identifier, err := r.Require(t, resolve.RoleUnitIdentifier)
		if err != nil {
			return cols, err
		}
		cols.Identifier = identifier
	}

	if roles.status {
		cols.Status, _ = r.Resolve(t, resolve.RoleStatus)
	}
	if roles.location {
		cols.Location, _ = r.Resolve(t, resolve.RoleLocation)
	}
	if roles.activity {
		cols.Activity, _ = r.Resolve(t, resolve.RoleActivity)
	}
	if roles.haulier {
		cols.Haulier, _ = r.Resolve(t, resolve.RoleHaulier)
	}
	return cols, nil
}
