package resolve

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/kemballops/gatecheck/pkg/errors"
)

// RoleSpec holds the matching configuration for one role: an ordered list
// of exact header candidates tried first (declaration order is priority
// order), then a case-insensitive substring keyword fallback scanned in a
// table's column order.
type RoleSpec struct {
	Candidates []string `yaml:"candidates"`
	Keywords   []string `yaml:"keywords"`
}

// Profile maps every role to its matching configuration. Profiles are
// configuration, not code: a new source system's header variants are added
// here, not in the pipeline.
type Profile struct {
	Roles map[Role]RoleSpec `yaml:"roles"`
}

// DefaultProfile returns the built-in matching tables covering the header
// variants the TOPS and Cyman exports are known to use.
func DefaultProfile() *Profile {
	return &Profile{
		Roles: map[Role]RoleSpec{
			RoleUnitIdentifier: {
				Candidates: []string{
					"CONTAINER NUMBER", "Container Number", "CONTAINER", "CONTAINER NO",
					"CONTAINER_NUMBER", "container", "container_number", "container_no",
					"containerno", "container_id",
					"Unit No", "UNIT NO", "unit no", "unit_no", "unitno", "UNIT_NO",
				},
				Keywords: []string{"container", "unit"},
			},
			RoleStatus: {
				Candidates: []string{
					"Status Name", "STATUS NAME", "Status", "STATUS", "status",
					"status_name", "Job Status",
				},
				Keywords: []string{"status", "state", "progress"},
			},
			RoleLocation: {
				Candidates: []string{
					"Unload Location", "UNLOAD LOCATION", "unload_location",
					"Location", "LOCATION", "location",
				},
				Keywords: []string{"location", "unload", "terminal"},
			},
			RoleActivity: {
				Candidates: []string{
					"In Activity", "IN ACTIVITY", "in_activity",
					"Activity", "ACTIVITY", "activity",
				},
				Keywords: []string{"activity", "status", "standard"},
			},
			RoleHaulier: {
				Candidates: []string{
					"In Haulier", "IN HAULIER", "in_haulier",
					"Haulier", "HAULIER", "haulier",
				},
				Keywords: []string{"haulier", "carrier"},
			},
		},
	}
}

// LoadProfile reads a profile from a YAML file. Roles absent from the file
// fall back to the default profile's spec, so an override file only needs
// the roles it changes.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var loaded Profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	profile := DefaultProfile()
	for role, spec := range loaded.Roles {
		profile.Roles[role] = spec
	}
	return profile, nil
}

// spec returns the matching configuration for a role, nil-safe.
func (p *Profile) spec(role Role) RoleSpec {
	if p == nil || p.Roles == nil {
		return RoleSpec{}
	}
	return p.Roles[role]
}
