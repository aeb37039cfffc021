package auth

import (
	"testing"

	"github.com/GoArmGo/BlogApp/internal/domain"
)

func TestCanViewAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity *domain.User
		want     bool
	}{
		{"anonymous", nil, false},
		{"standard user", &domain.User{Username: "alice"}, false},
		{"admin user", &domain.User{Username: "bob", Admin: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewAdmin(tt.identity); got != tt.want {
				t.Errorf("CanViewAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanPublish(t *testing.T) {
	if CanPublish(nil) {
		t.Error("anonymous identity may not publish")
	}
	if !CanPublish(&domain.User{Username: "alice"}) {
		t.Error("authenticated standard user must be allowed to publish")
	}
	if !CanPublish(&domain.User{Username: "bob", Admin: true}) {
		t.Error("authenticated admin must be allowed to publish")
	}
}

func TestLandingPath(t *testing.T) {
	if got := LandingPath(&domain.User{Admin: true}); got != "/admin" {
		t.Errorf("admin landing path = %q, want /admin", got)
	}
	if got := LandingPath(&domain.User{}); got != "/home" {
		t.Errorf("standard landing path = %q, want /home", got)
	}
}
