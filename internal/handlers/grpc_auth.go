package handlers

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/idp"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/paging"
	"github.com/idot-digital/dbconsole/internal/store"
	"github.com/idot-digital/dbconsole/internal/wire"
)

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := models.UserEmail(models.FormatUser(email)); err != nil {
		return "", invalidArgument("Invalid email %q", email)
	}
	return email, nil
}

func validateRoles(roles []string) error {
	for _, r := range roles {
		if !auth.ValidRole(r) {
			return invalidArgument("Invalid role %q", r)
		}
	}
	return nil
}

// CreateUser adds a user. The first user of a workspace may sign up without
// a token and becomes its admin; after that only admins create users.
func (h *GRPCHandlers) CreateUser(ctx context.Context, req *v1pb.CreateUserRequest) (*v1pb.User, error) {
	if req.User == nil {
		return nil, invalidArgument("user is required")
	}
	email, err := normalizeEmail(req.User.Email)
	if err != nil {
		return nil, err
	}
	if err := validateRoles(req.User.Roles); err != nil {
		return nil, err
	}

	userType := req.User.UserType
	if userType == v1pb.UserType_USER_TYPE_UNSPECIFIED {
		userType = v1pb.UserType_USER
	}
	if userType == v1pb.UserType_SYSTEM_BOT {
		return nil, invalidArgument("System bot users cannot be created")
	}
	if userType == v1pb.UserType_USER && req.User.Password == "" {
		return nil, invalidArgument("password is required")
	}

	first, err := h.claimFirstUser(ctx)
	if err != nil {
		return nil, err
	}
	roles := slices.Clone(req.User.Roles)
	if first {
		roles = []string{auth.RoleWorkspaceAdmin}
	} else if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin); err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []string{auth.RoleWorkspaceMember}
	}

	account := &auth.Account{
		User: &v1pb.User{
			Name:       models.FormatUser(email),
			State:      v1pb.State_ACTIVE,
			Email:      email,
			Title:      req.User.Title,
			UserType:   userType,
			Phone:      req.User.Phone,
			CreateTime: timestamppb.Now(),
			Roles:      roles,
		},
	}
	if account.User.Title == "" {
		account.User.Title, _, _ = strings.Cut(email, "@")
	}
	if req.User.Password != "" {
		if account.PasswordHash, err = auth.HashPassword(req.User.Password); err != nil {
			h.releaseFirstUser(first)
			return nil, status.Errorf(codes.Internal, "Failed to hash password: %v", err)
		}
	}
	if _, err := store.Insert(ctx, h.store(), store.KindUser, account.User.Name, "", account); err != nil {
		h.releaseFirstUser(first)
		return nil, h.storeError(err, describe("User", account.User.Name))
	}
	h.server.GetLogger().Info("Created user", "name", account.User.Name, "roles", roles)
	return redact(account.User), nil
}

// firstUserMarker is stored once the workspace has its first user. Creating
// it is the atomic step that decides who becomes the initial admin.
const firstUserMarker = "workspace/first-user"

// claimFirstUser reports whether the caller creates the first user of the
// workspace. Of several concurrent callers on an empty workspace exactly one
// wins.
func (h *GRPCHandlers) claimFirstUser(ctx context.Context) (bool, error) {
	existing, err := h.store().List(ctx, store.KindUser, store.ListOptions{ShowDeleted: true})
	if err != nil {
		return false, h.storeError(err, "users")
	}
	if len(existing) > 0 {
		return false, nil
	}
	now := time.Now().UTC()
	err = h.store().Create(ctx, &store.Record{
		Kind:       store.KindBootstrap,
		Name:       firstUserMarker,
		CreateTime: now,
		UpdateTime: now,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, h.storeError(err, "workspace")
	}
	return true, nil
}

// releaseFirstUser gives up a claim whose user could not be created.
func (h *GRPCHandlers) releaseFirstUser(claimed bool) {
	if !claimed {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := h.store().Delete(ctx, store.KindBootstrap, firstUserMarker); err != nil {
		h.server.GetLogger().Error("Failed to release first user claim", "error", err)
	}
}

// requireSelfOrAdmin allows admins and the user name itself.
func requireSelfOrAdmin(ctx context.Context, name string) (*auth.Principal, error) {
	p, err := requireSignedIn(ctx)
	if err != nil {
		return nil, err
	}
	if p.Name() != name && !p.HasRole(auth.RoleWorkspaceAdmin) {
		return nil, status.Error(codes.PermissionDenied, "Permission denied, requires roles/workspaceAdmin")
	}
	return p, nil
}

func (h *GRPCHandlers) loadAccount(ctx context.Context, name string) (*auth.Account, *store.Record, error) {
	if _, err := models.UserEmail(name); err != nil {
		return nil, nil, invalidArgument("%v", err)
	}
	return load[auth.Account](ctx, h, store.KindUser, name, describe("User", name))
}

func (h *GRPCHandlers) GetUser(ctx context.Context, req *v1pb.GetUserRequest) (*v1pb.User, error) {
	account, _, err := h.loadAccount(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return redact(account.User), nil
}

func (h *GRPCHandlers) ListUsers(ctx context.Context, req *v1pb.ListUsersRequest) (*v1pb.ListUsersResponse, error) {
	page, err := parsePage(req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	expr, err := parseFilter(req.Filter, &v1pb.User{})
	if err != nil {
		return nil, err
	}
	accounts, _, err := store.LoadAll[auth.Account](ctx, h.store(), store.KindUser, store.ListOptions{ShowDeleted: req.ShowDeleted})
	if err != nil {
		return nil, h.storeError(err, "users")
	}
	users := make([]*v1pb.User, 0, len(accounts))
	for _, a := range accounts {
		if a.User != nil {
			users = append(users, a.User)
		}
	}
	if users, err = matching(expr, users); err != nil {
		return nil, err
	}
	users, next := paging.Slice(users, page)
	return &v1pb.ListUsersResponse{Users: redactAll(users), NextPageToken: next}, nil
}

// UpdateUser changes a user's profile. Users edit themselves; roles are
// changed by admins only. A password change ends the user's sessions.
func (h *GRPCHandlers) UpdateUser(ctx context.Context, req *v1pb.UpdateUserRequest) (*v1pb.User, error) {
	if req.User == nil {
		return nil, invalidArgument("user is required")
	}
	p, err := requireSelfOrAdmin(ctx, req.User.Name)
	if err != nil {
		return nil, err
	}
	account, rec, err := h.loadAccount(ctx, req.User.Name)
	if err != nil {
		return nil, err
	}
	what := describe("User", req.User.Name)
	if err := requireActive(rec, what); err != nil {
		return nil, err
	}
	if inMask(req.UpdateMask, "roles") {
		if !p.HasRole(auth.RoleWorkspaceAdmin) {
			return nil, status.Error(codes.PermissionDenied, "Only admins can change roles")
		}
		if err := validateRoles(req.User.Roles); err != nil {
			return nil, err
		}
		if !slices.Contains(req.User.Roles, auth.RoleWorkspaceAdmin) {
			if err := h.keepAnAdmin(ctx, account); err != nil {
				return nil, err
			}
		}
	}

	user := wire.Clone(account.User)
	if err := applyMask(user, req.User, req.UpdateMask, "title", "phone", "password", "roles"); err != nil {
		return nil, err
	}
	passwordChanged := inMask(req.UpdateMask, "password")
	if passwordChanged {
		if user.Password == "" {
			return nil, invalidArgument("password cannot be empty")
		}
		if account.PasswordHash, err = auth.HashPassword(user.Password); err != nil {
			return nil, status.Errorf(codes.Internal, "Failed to hash password: %v", err)
		}
		account.RequireResetPassword = false
		user.Password = ""
	}
	account.User = user
	if err := store.Save(ctx, h.store(), rec, account); err != nil {
		return nil, h.storeError(err, what)
	}
	if passwordChanged {
		if err := h.server.GetAuth().RevokeUser(ctx, user.Email); err != nil {
			h.server.GetLogger().Warn("Failed to revoke sessions", "user", user.Name, "error", err)
		}
	}
	return redact(user), nil
}

// keepAnAdmin fails when account is the last active admin.
func (h *GRPCHandlers) keepAnAdmin(ctx context.Context, account *auth.Account) error {
	if !slices.Contains(account.User.Roles, auth.RoleWorkspaceAdmin) {
		return nil
	}
	accounts, _, err := store.LoadAll[auth.Account](ctx, h.store(), store.KindUser, store.ListOptions{})
	if err != nil {
		return h.storeError(err, "users")
	}
	for _, a := range accounts {
		if a.User != nil && a.User.Name != account.User.Name && slices.Contains(a.User.Roles, auth.RoleWorkspaceAdmin) {
			return nil
		}
	}
	return status.Error(codes.FailedPrecondition, "The workspace needs at least one admin")
}

func (h *GRPCHandlers) DeleteUser(ctx context.Context, req *v1pb.DeleteUserRequest) (*emptypb.Empty, error) {
	if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin); err != nil {
		return nil, err
	}
	account, rec, err := h.loadAccount(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if !rec.Deleted {
		if err := h.keepAnAdmin(ctx, account); err != nil {
			return nil, err
		}
	}
	account.User.State = v1pb.State_DELETED
	if err := h.softDelete(ctx, rec, account, describe("User", req.Name)); err != nil {
		return nil, err
	}
	if err := h.server.GetAuth().RevokeUser(ctx, account.User.Email); err != nil {
		h.server.GetLogger().Warn("Failed to revoke sessions", "user", req.Name, "error", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *GRPCHandlers) UndeleteUser(ctx context.Context, req *v1pb.UndeleteUserRequest) (*v1pb.User, error) {
	if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin); err != nil {
		return nil, err
	}
	account, rec, err := h.loadAccount(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	account.User.State = v1pb.State_ACTIVE
	if err := h.undelete(ctx, rec, account, describe("User", req.Name)); err != nil {
		return nil, err
	}
	return redact(account.User), nil
}

// Login signs a user in with a password or through an identity provider.
func (h *GRPCHandlers) Login(ctx context.Context, req *v1pb.LoginRequest) (*v1pb.LoginResponse, error) {
	if req.IdpName != "" {
		return h.loginWithIdP(ctx, req)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, auth.ErrInvalidPassword.Error())
	}
	token, account, err := h.server.GetAuth().Login(ctx, email, req.Password)
	if errors.Is(err, auth.ErrInvalidPassword) {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	if err != nil {
		return nil, h.storeError(err, describe("User", models.FormatUser(email)))
	}
	h.server.GetLogger().Info("User logged in", "user", account.User.Name)
	return &v1pb.LoginResponse{
		Token:                token,
		User:                 redact(account.User),
		RequireResetPassword: account.RequireResetPassword,
	}, nil
}

func (h *GRPCHandlers) loginWithIdP(ctx context.Context, req *v1pb.LoginRequest) (*v1pb.LoginResponse, error) {
	what := describe("Identity provider", req.IdpName)
	p, rec, err := load[v1pb.IdentityProvider](ctx, h, store.KindIdentityProvider, req.IdpName, what)
	if err != nil {
		return nil, err
	}
	if err := requireActive(rec, what); err != nil {
		return nil, err
	}
	info, err := h.identify(ctx, p, req.IdpContext)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(info.Identifier)
	if err != nil {
		return nil, status.Errorf(codes.Unauthenticated, "Identity provider returned an invalid email %q", info.Identifier)
	}
	if p.Domain != "" && !strings.HasSuffix(email, "@"+strings.ToLower(p.Domain)) {
		return nil, status.Errorf(codes.PermissionDenied, "Email %q is not in domain %q", email, p.Domain)
	}

	account, err := h.accountForIdentity(ctx, email, info)
	if err != nil {
		return nil, err
	}
	token, err := h.server.GetAuth().OpenSession(ctx, email)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to open session: %v", err)
	}
	h.server.GetLogger().Info("User logged in", "user", account.User.Name, "idp", p.Name)
	return &v1pb.LoginResponse{Token: token, User: redact(account.User)}, nil
}

// identify completes the code exchange with p.
func (h *GRPCHandlers) identify(ctx context.Context, p *v1pb.IdentityProvider, idpCtx *v1pb.IdentityProviderContext) (*idp.UserInfo, error) {
	var code string
	switch {
	case idpCtx == nil:
	case idpCtx.Oauth2Context != nil:
		code = idpCtx.Oauth2Context.Code
	case idpCtx.OidcContext != nil:
		code = idpCtx.OidcContext.Code
	}
	if code == "" {
		return nil, invalidArgument("idp_context with an authorization code is required")
	}
	provider, err := h.connectIdP(ctx, p, h.externalURL+idp.CallbackPath)
	if errors.Is(err, idp.ErrUnsupported) {
		return nil, status.Errorf(codes.Unimplemented, "Sign in with %s providers is not supported", p.Type)
	}
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "Failed to set up identity provider: %v", err)
	}
	info, err := provider.UserInfo(ctx, code)
	if err != nil {
		return nil, status.Errorf(codes.Unauthenticated, "Identity provider rejected the login: %v", err)
	}
	return info, nil
}

// accountForIdentity returns the account of email, creating a member for
// unknown users.
func (h *GRPCHandlers) accountForIdentity(ctx context.Context, email string, info *idp.UserInfo) (*auth.Account, error) {
	name := models.FormatUser(email)
	account, rec, err := store.Load[auth.Account](ctx, h.store(), store.KindUser, name)
	if err == nil {
		if rec.Deleted {
			return nil, status.Errorf(codes.Unauthenticated, "User %q is deactivated", name)
		}
		return account, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, h.storeError(err, describe("User", name))
	}
	title := info.DisplayName
	if title == "" {
		title, _, _ = strings.Cut(email, "@")
	}
	account = &auth.Account{User: &v1pb.User{
		Name:       name,
		State:      v1pb.State_ACTIVE,
		Email:      email,
		Title:      title,
		UserType:   v1pb.UserType_USER,
		Phone:      info.Phone,
		CreateTime: timestamppb.Now(),
		Roles:      []string{auth.RoleWorkspaceMember},
	}}
	if _, err := store.Insert(ctx, h.store(), store.KindUser, name, "", account); err != nil {
		return nil, h.storeError(err, describe("User", name))
	}
	h.server.GetLogger().Info("Created user from identity provider", "name", name)
	return account, nil
}

func (h *GRPCHandlers) Logout(ctx context.Context, _ *v1pb.LogoutRequest) (*emptypb.Empty, error) {
	p, err := requireSignedIn(ctx)
	if err != nil {
		return nil, err
	}
	if p.Token != "" {
		if err := h.server.GetAuth().Logout(ctx, p.Token); err != nil {
			return nil, status.Errorf(codes.Internal, "Failed to end session: %v", err)
		}
	}
	return &emptypb.Empty{}, nil
}
