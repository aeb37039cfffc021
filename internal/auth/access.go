// Package auth holds the pure access-control decisions. It keeps no state;
// callers pass the identity resolved for the current request (nil = anonymous).
package auth

import "github.com/GoArmGo/BlogApp/internal/domain"

// CanViewAdmin reports whether identity may see the admin user list.
func CanViewAdmin(identity *domain.User) bool {
	return identity != nil && identity.Role() == domain.RoleAdmin
}

// CanPublish reports whether identity may create posts. Any authenticated
// account qualifies, regardless of role.
func CanPublish(identity *domain.User) bool {
	return identity != nil
}

// LandingPath returns where a user should be sent after login or
// registration: admins land on the admin view, everyone else on home.
func LandingPath(user *domain.User) string {
	if CanViewAdmin(user) {
		return "/admin"
	}
	return "/home"
}
