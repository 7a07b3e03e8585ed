package authz

import (
	"testing"

	"github.com/slooze/foodorder/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRoleGates(t *testing.T) {
	tests := []struct {
		name    string
		check   func(models.Role) bool
		allowed map[models.Role]bool
	}{
		{
			name:  "create_order",
			check: CanCreateOrder,
			allowed: map[models.Role]bool{
				models.RoleAdmin:   true,
				models.RoleManager: true,
				models.RoleMember:  false,
			},
		},
		{
			name:  "cancel_order",
			check: CanCancelOrder,
			allowed: map[models.Role]bool{
				models.RoleAdmin:   true,
				models.RoleManager: true,
				models.RoleMember:  false,
			},
		},
		{
			name:  "change_payment_method",
			check: CanChangePaymentMethod,
			allowed: map[models.Role]bool{
				models.RoleAdmin:   true,
				models.RoleManager: false,
				models.RoleMember:  false,
			},
		},
		{
			name:  "create_restaurant",
			check: CanCreateRestaurant,
			allowed: map[models.Role]bool{
				models.RoleAdmin:   true,
				models.RoleManager: false,
				models.RoleMember:  false,
			},
		},
		{
			name:  "manage_catalog",
			check: CanManageCatalog,
			allowed: map[models.Role]bool{
				models.RoleAdmin:   true,
				models.RoleManager: true,
				models.RoleMember:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for role, want := range tt.allowed {
				assert.Equal(t, want, tt.check(role), "role %s", role)
			}
			assert.False(t, tt.check(models.Role("INTRUDER")))
		})
	}
}

func TestIsSameTenant(t *testing.T) {
	one, two := 1, 2

	tests := []struct {
		name       string
		role       models.Role
		actor      *int
		resource   int
		sameTenant bool
	}{
		{"admin_is_global", models.RoleAdmin, nil, 7, true},
		{"admin_with_country_still_global", models.RoleAdmin, &one, 2, true},
		{"manager_matching_country", models.RoleManager, &one, 1, true},
		{"manager_other_country", models.RoleManager, &one, 2, false},
		{"member_matching_country", models.RoleMember, &two, 2, true},
		{"member_without_country", models.RoleMember, nil, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sameTenant, IsSameTenant(tt.role, tt.actor, tt.resource))
		})
	}
}
