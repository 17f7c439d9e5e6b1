package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		name string
		role Role
		min  Role
		want bool
	}{
		{name: "user satisfies user", role: RoleUser, min: RoleUser, want: true},
		{name: "user below admin", role: RoleUser, min: RoleAdmin, want: false},
		{name: "user below super admin", role: RoleUser, min: RoleSuperAdmin, want: false},
		{name: "admin satisfies user", role: RoleAdmin, min: RoleUser, want: true},
		{name: "admin satisfies admin", role: RoleAdmin, min: RoleAdmin, want: true},
		{name: "admin below super admin", role: RoleAdmin, min: RoleSuperAdmin, want: false},
		{name: "super admin satisfies user", role: RoleSuperAdmin, min: RoleUser, want: true},
		{name: "super admin satisfies admin", role: RoleSuperAdmin, min: RoleAdmin, want: true},
		{name: "super admin satisfies super admin", role: RoleSuperAdmin, min: RoleSuperAdmin, want: true},
		{name: "unknown role never satisfies", role: Role("OWNER"), min: RoleUser, want: false},
		{name: "unknown minimum never satisfied", role: RoleSuperAdmin, min: Role("OWNER"), want: false},
		{name: "empty role", role: Role(""), min: RoleUser, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("ADMIN")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok)

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestTierIsValid(t *testing.T) {
	assert.True(t, TierFree.IsValid())
	assert.True(t, TierPro.IsValid())
	assert.True(t, TierEnterprise.IsValid())
	assert.False(t, Tier("GOLD").IsValid())
}
