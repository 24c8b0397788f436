package resolve

// Role is a semantic column role the reconciliation pipeline needs to
// locate in a table. A role maps to at most one column name within a given
// table; resolution happens independently per table, since TOPS and Cyman
// share no canonical header list.
type Role string

const (
	// RoleUnitIdentifier is the canonical unit/container key column.
	RoleUnitIdentifier Role = "unit identifier"
	// RoleStatus is the TOPS job status column.
	RoleStatus Role = "status"
	// RoleLocation is the unload location column.
	RoleLocation Role = "location"
	// RoleActivity is the Cyman activity column.
	RoleActivity Role = "activity"
	// RoleHaulier is the optional haulier column in Cyman exports.
	RoleHaulier Role = "haulier"
)

// String returns the role name used in diagnostics.
func (r Role) String() string { return string(r) }

// Roles lists every role in a stable order.
func Roles() []Role {
	return []Role{RoleUnitIdentifier, RoleStatus, RoleLocation, RoleActivity, RoleHaulier}
}
