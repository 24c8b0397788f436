// Package normalize converts raw cell values into canonical comparison form.
// Each field kind has one folding convention: identifiers, locations and
// hauliers fold to upper case (physical unit codes are conventionally
// case-insensitive, so upper-folding gives case-insensitive matching),
// statuses and activities fold to lower case. Every function here is
// idempotent: applying it twice gives the same result as applying it once.
package normalize

import "strings"

// Kind selects the normalization convention for a field.
type Kind int

const (
	// KindIdentifier is the unit/container code. Trim + upper fold;
	// missing values normalize to the empty string so the row filter can
	// exclude them.
	KindIdentifier Kind = iota
	// KindStatus is a TOPS status. Trim + lower fold.
	KindStatus
	// KindLocation is an unload location. Trim + upper fold.
	KindLocation
	// KindActivity is a Cyman activity. Trim + lower fold.
	KindActivity
	// KindHaulier is a haulier name. Trim + upper fold.
	KindHaulier
)

// String returns the kind name used in logs and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindStatus:
		return "status"
	case KindLocation:
		return "location"
	case KindActivity:
		return "activity"
	case KindHaulier:
		return "haulier"
	default:
		return "unknown"
	}
}

// missingSentinel is what absent non-identifier values normalize to. It
// mirrors the "nan" string a missing spreadsheet cell turns into when
// exports are read as text, so predicates compare one spelling only.
const missingSentinel = "nan"

// Value normalizes a raw cell value according to the field kind.
func Value(raw string, kind Kind) string {
	trimmed := strings.TrimSpace(raw)

	if kind == KindIdentifier {
		if strings.EqualFold(trimmed, missingSentinel) {
			return ""
		}
		return strings.ToUpper(trimmed)
	}

	if trimmed == "" || strings.EqualFold(trimmed, missingSentinel) {
		return missingSentinel
	}

	switch kind {
	case KindStatus, KindActivity:
		return strings.ToLower(trimmed)
	case KindLocation, KindHaulier:
		return strings.ToUpper(trimmed)
	default:
		return trimmed
	}
}

// Identifier normalizes a unit identifier. Missing or "nan"-like values
// come back empty; callers exclude those rows before comparison.
func Identifier(raw string) string { return Value(raw, KindIdentifier) }

// Status normalizes a TOPS status value.
func Status(raw string) string { return Value(raw, KindStatus) }

// Location normalizes an unload location value.
func Location(raw string) string { return Value(raw, KindLocation) }

// Activity normalizes a Cyman activity value.
func Activity(raw string) string { return Value(raw, KindActivity) }

// Haulier normalizes a haulier name.
func Haulier(raw string) string { return Value(raw, KindHaulier) }

// Missing reports whether a normalized non-identifier value represents an
// absent cell.
func Missing(normalized string) bool { return normalized == missingSentinel }
