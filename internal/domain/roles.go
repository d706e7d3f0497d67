package domain

type Role string

const (
	// Regular users can browse the catalog
	RoleRegular Role = "regular"
	// Admins additionally manage the catalog and trigger synchronization
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleRegular) || r == string(RoleAdmin)
}

// RoleAllowed reports whether role is a member of the allow-list.
func RoleAllowed(role string, allowed []Role) bool {
	for _, a := range allowed {
		if role == string(a) {
			return true
		}
	}
	return false
}
