// Package filter reduces each source table to the rows eligible for
// comparison. Each source system has one predicate preset built from the
// resolved column names and the comparison configuration; presets never
// mutate the input table. A predicate clause whose column was not resolved
// is skipped rather than raised — a documented soft-degrade, surfaced to
// the caller as a warning so it is never a silent data change.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kemballops/gatecheck/pkg/constants"
	"github.com/kemballops/gatecheck/pkg/normalize"
	"github.com/kemballops/gatecheck/pkg/tabular"
)

// Config holds the adjustable comparison parameters. Zero-value fields fall
// back to the defaults in the constants package via DefaultConfig; none of
// these strings is hard-coded into a predicate.
type Config struct {
	// AcceptedStatuses are the TOPS statuses eligible for comparison,
	// compared after normalization.
	AcceptedStatuses []string

	// TargetLocation is the holding-center location a TOPS row must match,
	// tolerant of the "center"/"centre" spelling variants.
	TargetLocation string

	// RequiredActivity is the Cyman activity a row must carry.
	RequiredActivity string

	// RequiredHaulier, when non-empty, additionally requires the Cyman
	// haulier column to match.
	RequiredHaulier string
}

// DefaultConfig returns the standard comparison parameters.
func DefaultConfig() Config {
	return Config{
		AcceptedStatuses: append([]string(nil), constants.DefaultAcceptedStatuses...),
		TargetLocation:   constants.DefaultTargetLocation,
		RequiredActivity: constants.DefaultRequiredActivity,
	}
}

// Columns carries the resolved column names for one table. An empty string
// means the role was not resolved; the corresponding clause soft-degrades.
type Columns struct {
	Identifier string
	Status     string
	Location   string
	Activity   string
	Haulier    string
}

// Warning records a predicate clause that was skipped because its column
// was not resolved.
type Warning struct {
	Table string
	Role  string
}

// String renders the warning for logs and user-facing output.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s column not resolved; clause skipped (treated as always true)", w.Table, w.Role)
}

// TOPS applies the Source-A preset: normalized status must be in the
// accepted set AND normalized location must match the target holding
// center. Returns the filtered table and any soft-degrade warnings.
func TOPS(t *tabular.Table, cols Columns, cfg Config) (*tabular.Table, []Warning) {
	var warnings []Warning

	statuses := acceptedStatusSet(cfg.AcceptedStatuses)
	checkStatus := cols.Status != ""
	if !checkStatus {
		warnings = append(warnings, Warning{Table: t.Name(), Role: "status"})
	}

	location := LocationPattern(cfg.TargetLocation)
	checkLocation := cols.Location != ""
	if !checkLocation {
		warnings = append(warnings, Warning{Table: t.Name(), Role: "location"})
	}

	filtered := t.Filter(func(row tabular.Row) bool {
		if checkStatus {
			if _, ok := statuses[normalize.Status(row.Get(cols.Status))]; !ok {
				return false
			}
		}
		if checkLocation && !location.MatchString(normalize.Location(row.Get(cols.Location))) {
			return false
		}
		return true
	})
	return filtered, warnings
}

// Cyman applies the Source-B preset: normalized activity must equal the
// required activity, the identifier must be non-empty after normalization,
// and, when a haulier is configured and its column resolved, the haulier
// must match.
func Cyman(t *tabular.Table, cols Columns, cfg Config) (*tabular.Table, []Warning) {
	var warnings []Warning

	activity := normalize.Activity(cfg.RequiredActivity)
	checkActivity := cols.Activity != ""
	if !checkActivity {
		warnings = append(warnings, Warning{Table: t.Name(), Role: "activity"})
	}

	haulier := normalize.Haulier(cfg.RequiredHaulier)
	checkHaulier := cfg.RequiredHaulier != ""
	if checkHaulier && cols.Haulier == "" {
		warnings = append(warnings, Warning{Table: t.Name(), Role: "haulier"})
		checkHaulier = false
	}

	filtered := t.Filter(func(row tabular.Row) bool {
		if normalize.Identifier(row.Get(cols.Identifier)) == "" {
			return false
		}
		if checkActivity && normalize.Activity(row.Get(cols.Activity)) != activity {
			return false
		}
		if checkHaulier && normalize.Haulier(row.Get(cols.Haulier)) != haulier {
			return false
		}
		return true
	})
	return filtered, warnings
}

// acceptedStatusSet normalizes the accepted statuses into a membership set.
func acceptedStatusSet(statuses []string) map[string]struct{} {
	set := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		set[normalize.Status(s)] = struct{}{}
	}
	return set
}

// LocationPattern compiles a case-insensitive matcher for the target
// location that accepts both the American and British spellings of
// "center". Everything else is matched literally. The tolerance is a
// filtering concern only: exception rules compare locations strictly, so a
// variant spelling passes the filter without counting as the exact
// configured location.
func LocationPattern(target string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(normalize.Location(target))
	tolerant := strings.ReplaceAll(quoted, "CENTER", "CENT(?:ER|RE)")
	tolerant = strings.ReplaceAll(tolerant, "CENTRE", "CENT(?:ER|RE)")
	return regexp.MustCompile("(?i)^" + tolerant + "$")
}
