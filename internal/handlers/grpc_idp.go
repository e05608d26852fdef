package handlers

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/idp"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/store"
	"github.com/idot-digital/dbconsole/internal/wire"
)

func (h *GRPCHandlers) GetIdentityProvider(ctx context.Context, req *v1pb.GetIdentityProviderRequest) (*v1pb.IdentityProvider, error) {
	p, _, err := load[v1pb.IdentityProvider](ctx, h, store.KindIdentityProvider, req.Name, describe("Identity provider", req.Name))
	if err != nil {
		return nil, err
	}
	return redact(p), nil
}

func (h *GRPCHandlers) ListIdentityProviders(ctx context.Context, req *v1pb.ListIdentityProvidersRequest) (*v1pb.ListIdentityProvidersResponse, error) {
	providers, next, err := listMatching[v1pb.IdentityProvider](ctx, h, store.KindIdentityProvider, store.ListOptions{ShowDeleted: req.ShowDeleted}, "", req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	return &v1pb.ListIdentityProvidersResponse{IdentityProviders: redactAll(providers), NextPageToken: next}, nil
}

func (h *GRPCHandlers) CreateIdentityProvider(ctx context.Context, req *v1pb.CreateIdentityProviderRequest) (*v1pb.IdentityProvider, error) {
	if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin); err != nil {
		return nil, err
	}
	if req.IdentityProvider == nil {
		return nil, invalidArgument("identity_provider is required")
	}
	if err := models.ValidateResourceID(req.IdentityProviderId); err != nil {
		return nil, invalidArgument("%v", err)
	}
	p := wire.Clone(req.IdentityProvider)
	p.Name = models.IdentityProviderPrefix + req.IdentityProviderId
	p.State = v1pb.State_ACTIVE
	p.Domain = strings.ToLower(p.Domain)
	if err := idp.Validate(p); err != nil {
		return nil, invalidArgument("Invalid identity provider: %v", err)
	}
	if _, err := store.Insert(ctx, h.store(), store.KindIdentityProvider, p.Name, "", p); err != nil {
		return nil, h.storeError(err, describe("Identity provider", p.Name))
	}
	h.server.GetLogger().Info("Created identity provider", "name", p.Name, "type", p.Type.String())
	return redact(p), nil
}

// UpdateIdentityProvider updates title, domain and config. Secrets left
// empty in an updated config keep their stored value.
func (h *GRPCHandlers) UpdateIdentityProvider(ctx context.Context, req *v1pb.UpdateIdentityProviderRequest) (*v1pb.IdentityProvider, error) {
	if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin); err != nil {
		return nil, err
	}
	if req.IdentityProvider == nil {
		return nil, invalidArgument("identity_provider is required")
	}
	what := describe("Identity provider", req.IdentityProvider.Name)
	p, rec, err := load[v1pb.IdentityProvider](ctx, h, store.KindIdentityProvider, req.IdentityProvider.Name, what)
	if err != nil {
		return nil, err
	}
	if err := requireActive(rec, what); err != nil {
		return nil, err
	}
	stored := wire.Clone(p.Config)
	if err := applyMask(p, req.IdentityProvider, req.UpdateMask, "title", "domain", "config"); err != nil {
		return nil, err
	}
	keepSecrets(p.Config, stored)
	p.Domain = strings.ToLower(p.Domain)
	if err := idp.Validate(p); err != nil {
		return nil, invalidArgument("Invalid identity provider: %v", err)
	}
	if err := store.Save(ctx, h.store(), rec, p); err != nil {
		return nil, h.storeError(err, what)
	}
	return redact(p), nil
}

// keepSecrets copies the secrets of stored into the empty secret fields of
// c.
func keepSecrets(c, stored *v1pb.IdentityProviderConfig) {
	if c == nil || stored == nil {
		return
	}
	if c.Oauth2Config != nil && stored.Oauth2Config != nil && c.Oauth2Config.ClientSecret == "" {
		c.Oauth2Config.ClientSecret = stored.Oauth2Config.ClientSecret
	}
	if c.OidcConfig != nil && stored.OidcConfig != nil && c.OidcConfig.ClientSecret == "" {
		c.OidcConfig.ClientSecret = stored.OidcConfig.ClientSecret
	}
	if c.LdapConfig != nil && stored.LdapConfig != nil && c.LdapConfig.BindPassword == "" {
		c.LdapConfig.BindPassword = stored.LdapConfig.BindPassword
	}
}

func (h *GRPCHandlers) DeleteIdentityProvider(ctx context.Context, req *v1pb.DeleteIdentityProviderRequest) (*emptypb.Empty, error) {
	if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin); err != nil {
		return nil, err
	}
	what := describe("Identity provider", req.Name)
	p, rec, err := load[v1pb.IdentityProvider](ctx, h, store.KindIdentityProvider, req.Name, what)
	if err != nil {
		return nil, err
	}
	p.State = v1pb.State_DELETED
	if err := h.softDelete(ctx, rec, p, what); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (h *GRPCHandlers) UndeleteIdentityProvider(ctx context.Context, req *v1pb.UndeleteIdentityProviderRequest) (*v1pb.IdentityProvider, error) {
	if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin); err != nil {
		return nil, err
	}
	what := describe("Identity provider", req.Name)
	p, rec, err := load[v1pb.IdentityProvider](ctx, h, store.KindIdentityProvider, req.Name, what)
	if err != nil {
		return nil, err
	}
	p.State = v1pb.State_ACTIVE
	if err := h.undelete(ctx, rec, p, what); err != nil {
		return nil, err
	}
	return redact(p), nil
}

// TestIdentityProvider runs a code exchange against a provider config,
// saved or not, and reports the claims it returns.
func (h *GRPCHandlers) TestIdentityProvider(ctx context.Context, req *v1pb.TestIdentityProviderRequest) (*v1pb.TestIdentityProviderResponse, error) {
	if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin); err != nil {
		return nil, err
	}
	if req.IdentityProvider == nil {
		return nil, invalidArgument("identity_provider is required")
	}
	p := wire.Clone(req.IdentityProvider)
	if p.Name != "" {
		stored, _, err := store.Load[v1pb.IdentityProvider](ctx, h.store(), store.KindIdentityProvider, p.Name)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, h.storeError(err, describe("Identity provider", p.Name))
		}
		if stored != nil {
			keepSecrets(p.Config, stored.Config)
		}
	}
	if err := idp.Validate(p); err != nil {
		return nil, invalidArgument("Invalid identity provider: %v", err)
	}
	info, err := h.identify(ctx, p, req.Context)
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			return nil, status.Error(codes.FailedPrecondition, status.Convert(err).Message())
		}
		return nil, err
	}
	return &v1pb.TestIdentityProviderResponse{
		Claims: info.Claims,
		UserInfo: &v1pb.User{
			Email: strings.ToLower(info.Identifier),
			Title: info.DisplayName,
			Phone: info.Phone,
		},
	}, nil
}
