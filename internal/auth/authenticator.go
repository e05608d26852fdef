package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/store"
)

// Account is the stored form of a user.
type Account struct {
	User                 *v1pb.User `protobuf:"1,user"`
	PasswordHash         string     `protobuf:"2,password_hash"`
	RequireResetPassword bool       `protobuf:"3,require_reset_password"`
}

// Authenticator resolves bearer tokens to principals.
type Authenticator struct {
	store        store.Store
	sessions     Sessions
	serviceToken string
	sessionTTL   time.Duration
}

func NewAuthenticator(s store.Store, sessions Sessions, serviceToken string, sessionTTL time.Duration) *Authenticator {
	return &Authenticator{
		store:        s,
		sessions:     sessions,
		serviceToken: serviceToken,
		sessionTTL:   sessionTTL,
	}
}

// Authenticate maps a token to its principal. The static service token
// authenticates as the system bot.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	if a.serviceToken != "" && token == a.serviceToken {
		return &Principal{Email: SystemBotEmail, System: true}, nil
	}
	email, err := a.sessions.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	account, _, err := store.Load[Account](ctx, a.store, store.KindUser, "users/"+email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", email, err)
	}
	if account.User == nil || account.User.State != v1pb.State_ACTIVE {
		return nil, ErrInvalidToken
	}
	return &Principal{Email: email, Roles: account.User.Roles, Token: token}, nil
}

// Login checks the password of email and opens a session.
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, *Account, error) {
	account, _, err := store.Load[Account](ctx, a.store, store.KindUser, "users/"+email)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil, ErrInvalidPassword
	}
	if err != nil {
		return "", nil, err
	}
	if account.User == nil || account.User.State != v1pb.State_ACTIVE || account.PasswordHash == "" {
		return "", nil, ErrInvalidPassword
	}
	if err := CheckPassword(account.PasswordHash, password); err != nil {
		return "", nil, err
	}
	token, err := a.sessions.Create(ctx, email, a.sessionTTL)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// OpenSession starts a session for an already verified user, as after an
// identity provider login.
func (a *Authenticator) OpenSession(ctx context.Context, email string) (string, error) {
	return a.sessions.Create(ctx, email, a.sessionTTL)
}

func (a *Authenticator) Logout(ctx context.Context, token string) error {
	return a.sessions.Revoke(ctx, token)
}

// RevokeUser ends every session of email, e.g. after a delete or a
// password change.
func (a *Authenticator) RevokeUser(ctx context.Context, email string) error {
	return a.sessions.RevokeUser(ctx, email)
}
