// Package principal provides the acting-identity vocabulary consumed by the
// lifecycle core. Authentication itself lives outside this module; the core
// only receives a user ID and a role and decides what they may do.
package principal

// Role classifies a marketplace user.
type Role string

const (
	RoleCustomer        Role = "Customer"
	RoleDriver          Role = "Driver"
	RoleRestaurantOwner Role = "RestaurantOwner"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleDriver || r == RoleRestaurantOwner
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
