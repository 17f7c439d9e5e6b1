package domain

// Role represents a user privilege level
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// roleLevels orders privilege levels; a higher level satisfies any lower requirement
var roleLevels = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// IsValid reports whether the role is a known privilege level
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether the role satisfies the required minimum role.
// This is the single role comparison used by both the route guards and
// the admin handlers, so admin detection cannot drift between them.
func (r Role) AtLeast(min Role) bool {
	level, ok := roleLevels[r]
	if !ok {
		return false
	}
	required, ok := roleLevels[min]
	if !ok {
		return false
	}
	return level >= required
}

// ParseRole parses a role string, returning false for unknown values
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}

// Tier represents a subscription tier
type Tier string

const (
	TierFree       Tier = "FREE"
	TierPro        Tier = "PRO"
	TierEnterprise Tier = "ENTERPRISE"
)

// IsValid reports whether the tier is a known subscription tier
func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierPro, TierEnterprise:
		return true
	}
	return false
}
