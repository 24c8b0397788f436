package gatecheck

import (
	"github.com/rs/zerolog"

	"github.com/kemballops/gatecheck/pkg/errors"
	"github.com/kemballops/gatecheck/pkg/filter"
	"github.com/kemballops/gatecheck/pkg/logging"
	"github.com/kemballops/gatecheck/pkg/resolve"
)

// config collects the adjustable comparison parameters.
type config struct {
	unitColumnTOPS  string
	unitColumnCyman string
	filter          filter.Config
	profile         *resolve.Profile
	exceptionRules  bool
	checkSingletons bool
	logger          *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		filter: filter.DefaultConfig(),
		logger: logging.Default(),
	}
}

// Option is a function that configures a comparison.
type Option func(*config) error

// WithUnitColumnTOPS names the TOPS identifier column explicitly, skipping
// automatic resolution. The comparison aborts if the column is absent.
func WithUnitColumnTOPS(column string) Option {
	return func(c *config) error {
		c.unitColumnTOPS = column
		return nil
	}
}

// WithUnitColumnCyman names the Cyman identifier column explicitly.
func WithUnitColumnCyman(column string) Option {
	return func(c *config) error {
		c.unitColumnCyman = column
		return nil
	}
}

// WithAcceptedStatuses replaces the set of TOPS statuses eligible for
// comparison.
func WithAcceptedStatuses(statuses ...string) Option {
	return func(c *config) error {
		if len(statuses) == 0 {
			return errors.NewValidationError("accepted_statuses", statuses, "cannot be empty")
		}
		c.filter.AcceptedStatuses = statuses
		return nil
	}
}

// WithTargetLocation replaces the holding-center location a TOPS row must
// match (tolerant of center/centre spelling).
func WithTargetLocation(location string) Option {
	return func(c *config) error {
		if location == "" {
			return errors.NewValidationError("target_location", location, "cannot be empty")
		}
		c.filter.TargetLocation = location
		return nil
	}
}

// WithRequiredActivity replaces the Cyman activity a row must carry.
func WithRequiredActivity(activity string) Option {
	return func(c *config) error {
		if activity == "" {
			return errors.NewValidationError("required_activity", activity, "cannot be empty")
		}
		c.filter.RequiredActivity = activity
		return nil
	}
}

// WithRequiredHaulier additionally requires the Cyman haulier column to
// match. An empty string disables the clause.
func WithRequiredHaulier(haulier string) Option {
	return func(c *config) error {
		c.filter.RequiredHaulier = haulier
		return nil
	}
}

// WithExceptionRules enables the extended algorithm: the standard
// priority-ordered exception rules run over identifiers present in both
// systems.
func WithExceptionRules(enabled bool) Option {
	return func(c *config) error {
		c.exceptionRules = enabled
		return nil
	}
}

// WithSingletonCheck flags identifiers occurring exactly once across both
// filtered tables combined.
func WithSingletonCheck(enabled bool) Option {
	return func(c *config) error {
		c.checkSingletons = enabled
		return nil
	}
}

// WithProfile replaces the column-matching profile used for resolution.
func WithProfile(profile *resolve.Profile) Option {
	return func(c *config) error {
		c.profile = profile
		return nil
	}
}

// WithLogger sets the logger for the comparison.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}
