// Package auth holds principals, roles, password hashing and login sessions.
package auth

import (
	"context"
	"errors"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleWorkspaceAdmin  = "roles/workspaceAdmin"
	RoleWorkspaceDBA    = "roles/workspaceDBA"
	RoleWorkspaceMember = "roles/workspaceMember"

	// SystemBotEmail is the identity of requests made with the static
	// service token.
	SystemBotEmail = "support@dbconsole.local"
)

var (
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrInvalidPassword = errors.New("invalid email or password")
)

// ValidRole reports whether role is a workspace role.
func ValidRole(role string) bool {
	switch role {
	case RoleWorkspaceAdmin, RoleWorkspaceDBA, RoleWorkspaceMember:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Email  string
	Roles  []string
	System bool
	// Token is the session token the principal authenticated with.
	Token string
}

// Name is the users/{email} resource name of the principal.
func (p *Principal) Name() string {
	return "users/" + p.Email
}

// HasRole reports whether the principal holds any of roles. The system bot
// holds every role.
func (p *Principal) HasRole(roles ...string) bool {
	if p == nil {
		return false
	}
	if p.System {
		return true
	}
	for _, r := range roles {
		if slices.Contains(p.Roles, r) {
			return true
		}
	}
	return false
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, or nil for anonymous
// requests.
func PrincipalFrom(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
