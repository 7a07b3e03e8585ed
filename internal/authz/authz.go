// Package authz holds the per-request identity and the access policy. Policy
// functions are pure: role and tenant checks only, no I/O.
package authz

import "github.com/slooze/foodorder/internal/models"

// Context is the identity derived from a verified token, rebuilt fresh on
// every request. CountryID is nil only for ADMIN.
type Context struct {
	Username  string
	Role      models.Role
	CountryID *int
}

func (c Context) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// CanCreateOrder reports whether the role may place orders.
func CanCreateOrder(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleManager
}

// CanCancelOrder reports whether the role may cancel orders.
func CanCancelOrder(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleManager
}

// CanChangePaymentMethod reports whether the role may rewrite an order's
// payment method.
func CanChangePaymentMethod(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanCreateRestaurant reports whether the role may register restaurants.
func CanCreateRestaurant(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanManageCatalog reports whether the role may read the catalog and create
// menu items. Every authenticated role qualifies, MEMBER included.
func CanManageCatalog(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleManager || role == models.RoleMember
}

// IsSameTenant reports whether an actor may touch a resource owned by
// resourceCountryID. ADMIN is global; everyone else needs an assigned
// country matching the resource's.
func IsSameTenant(role models.Role, actorCountryID *int, resourceCountryID int) bool {
	if role == models.RoleAdmin {
		return true
	}
	return actorCountryID != nil && *actorCountryID == resourceCountryID
}
