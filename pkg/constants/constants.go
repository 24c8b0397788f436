// Package constants provides shared constants used throughout the gatecheck
// codebase. This includes the default reconciliation parameters, file
// permissions, and other configuration values that should be consistent
// across the application.
package constants

// System names identify the two tracking systems being reconciled.
const (
	// SystemTOPS is the first tracking system ("Status Name" / "Unload
	// Location" / "Container Number" terminology).
	SystemTOPS = "TOPS"

	// SystemCyman is the second tracking system ("In Activity" / "Unit No" /
	// "In Haulier" terminology).
	SystemCyman = "Cyman"
)

// Default reconciliation parameters. These are defaults only: every one of
// them is an adjustable field on the comparison configuration, not a value
// baked into control flow.
const (
	// DefaultTargetLocation is the holding center a TOPS row must be
	// unloading at to take part in the comparison. The British spelling
	// "CENTRE" also occurs in exports and is matched tolerantly.
	DefaultTargetLocation = "JAMES KEMBALL HOLDING CENTER"

	// DefaultRequiredActivity is the Cyman activity a row must carry.
	DefaultRequiredActivity = "standard"

	// DefaultRequiredHaulier is the haulier filter applied when a Cyman
	// export carries an "In Haulier" column.
	DefaultRequiredHaulier = "KEMBALL"
)

// DefaultAcceptedStatuses are the TOPS statuses eligible for comparison.
var DefaultAcceptedStatuses = []string{"complete", "in progress"}

// Presence encodes whether an identifier was seen in a system. The
// two-state Present/Missing encoding is what exports carry; renderers map
// it to visual indicators.
const (
	// Present marks an identifier found in a system's filtered export.
	Present = "Present"

	// Missing marks an identifier absent from a system's filtered export.
	Missing = "Missing"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
