package handlers

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/store"
	"github.com/idot-digital/dbconsole/internal/vcs"
	"github.com/idot-digital/dbconsole/internal/wire"
)

func (h *GRPCHandlers) GetVCSProvider(ctx context.Context, req *v1pb.GetVCSProviderRequest) (*v1pb.VCSProvider, error) {
	p, _, err := load[v1pb.VCSProvider](ctx, h, store.KindVCSProvider, req.Name, describe("VCS provider", req.Name))
	if err != nil {
		return nil, err
	}
	return redact(p), nil
}

func (h *GRPCHandlers) ListVCSProviders(ctx context.Context, req *v1pb.ListVCSProvidersRequest) (*v1pb.ListVCSProvidersResponse, error) {
	providers, next, err := listMatching[v1pb.VCSProvider](ctx, h, store.KindVCSProvider, store.ListOptions{}, "", req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	return &v1pb.ListVCSProvidersResponse{VcsProviders: redactAll(providers), NextPageToken: next}, nil
}

func (h *GRPCHandlers) CreateVCSProvider(ctx context.Context, req *v1pb.CreateVCSProviderRequest) (*v1pb.VCSProvider, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.VcsProvider == nil {
		return nil, invalidArgument("vcs_provider is required")
	}
	if err := models.ValidateResourceID(req.VcsProviderId); err != nil {
		return nil, invalidArgument("%v", err)
	}
	p := wire.Clone(req.VcsProvider)
	p.Name = models.VCSProviderPrefix + req.VcsProviderId
	if err := vcs.Validate(p); err != nil {
		return nil, invalidArgument("Invalid VCS provider: %v", err)
	}
	if _, err := store.Insert(ctx, h.store(), store.KindVCSProvider, p.Name, "", p); err != nil {
		return nil, h.storeError(err, describe("VCS provider", p.Name))
	}
	h.server.GetLogger().Info("Created VCS provider", "name", p.Name, "type", p.Type.String())
	return redact(p), nil
}

// UpdateVCSProvider updates title, url and access token. An empty access
// token keeps the stored one.
func (h *GRPCHandlers) UpdateVCSProvider(ctx context.Context, req *v1pb.UpdateVCSProviderRequest) (*v1pb.VCSProvider, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.VcsProvider == nil {
		return nil, invalidArgument("vcs_provider is required")
	}
	what := describe("VCS provider", req.VcsProvider.Name)
	p, rec, err := load[v1pb.VCSProvider](ctx, h, store.KindVCSProvider, req.VcsProvider.Name, what)
	if err != nil {
		return nil, err
	}
	token := p.AccessToken
	if err := applyMask(p, req.VcsProvider, req.UpdateMask, "title", "url", "access_token"); err != nil {
		return nil, err
	}
	if p.AccessToken == "" {
		p.AccessToken = token
	}
	if err := vcs.Validate(p); err != nil {
		return nil, invalidArgument("Invalid VCS provider: %v", err)
	}
	if err := store.Save(ctx, h.store(), rec, p); err != nil {
		return nil, h.storeError(err, what)
	}
	return redact(p), nil
}

func (h *GRPCHandlers) DeleteVCSProvider(ctx context.Context, req *v1pb.DeleteVCSProviderRequest) (*emptypb.Empty, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	what := describe("VCS provider", req.Name)
	if _, _, err := load[v1pb.VCSProvider](ctx, h, store.KindVCSProvider, req.Name, what); err != nil {
		return nil, err
	}
	connectors, err := h.connectorsOf(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if len(connectors) > 0 {
		return nil, status.Errorf(codes.FailedPrecondition, "%s is used by %d VCS connectors", what, len(connectors))
	}
	if err := h.store().Delete(ctx, store.KindVCSProvider, req.Name); err != nil {
		return nil, h.storeError(err, what)
	}
	return &emptypb.Empty{}, nil
}

func (h *GRPCHandlers) SearchVCSProviderRepositories(ctx context.Context, req *v1pb.SearchVCSProviderRepositoriesRequest) (*v1pb.SearchVCSProviderRepositoriesResponse, error) {
	if _, err := requireSignedIn(ctx); err != nil {
		return nil, err
	}
	p, _, err := load[v1pb.VCSProvider](ctx, h, store.KindVCSProvider, req.Name, describe("VCS provider", req.Name))
	if err != nil {
		return nil, err
	}
	client, err := h.connectVCS(ctx, p)
	if errors.Is(err, vcs.ErrUnsupported) {
		return nil, status.Errorf(codes.Unimplemented, "Repository search is not supported for %s", p.Type)
	}
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "Failed to connect to %s: %v", p.Name, err)
	}
	repos, err := client.SearchRepositories(ctx, req.Query)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "Failed to search repositories of %s: %v", p.Name, err)
	}
	return &v1pb.SearchVCSProviderRepositoriesResponse{Repositories: repos}, nil
}

func (h *GRPCHandlers) ListVCSConnectorsInProvider(ctx context.Context, req *v1pb.ListVCSConnectorsInProviderRequest) (*v1pb.ListVCSConnectorsInProviderResponse, error) {
	if _, _, err := load[v1pb.VCSProvider](ctx, h, store.KindVCSProvider, req.Name, describe("VCS provider", req.Name)); err != nil {
		return nil, err
	}
	connectors, err := h.connectorsOf(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &v1pb.ListVCSConnectorsInProviderResponse{VcsConnectors: connectors}, nil
}

func (h *GRPCHandlers) connectorsOf(ctx context.Context, provider string) ([]*v1pb.VCSConnector, error) {
	connectors, _, err := store.LoadAll[v1pb.VCSConnector](ctx, h.store(), store.KindVCSConnector, store.ListOptions{})
	if err != nil {
		return nil, h.storeError(err, "VCS connectors")
	}
	var out []*v1pb.VCSConnector
	for _, c := range connectors {
		if c.VcsProvider == provider {
			out = append(out, c)
		}
	}
	return out, nil
}

func (h *GRPCHandlers) CreateVCSConnector(ctx context.Context, req *v1pb.CreateVCSConnectorRequest) (*v1pb.VCSConnector, error) {
	p, err := requireWorkspaceWrite(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := models.ProjectID(req.Parent); err != nil {
		return nil, invalidArgument("%v", err)
	}
	if req.VcsConnector == nil {
		return nil, invalidArgument("vcs_connector is required")
	}
	if err := models.ValidateResourceID(req.VcsConnectorId); err != nil {
		return nil, invalidArgument("%v", err)
	}
	c := wire.Clone(req.VcsConnector)
	c.Name = req.Parent + "/" + models.VCSConnectorIDPrefix + req.VcsConnectorId
	c.Creator, c.Updater = creator(p), creator(p)
	now := timestamppb.Now()
	c.CreateTime, c.UpdateTime = now, now
	if c.FullPath == "" {
		return nil, invalidArgument("full_path is required")
	}
	if c.Branch == "" {
		return nil, invalidArgument("branch is required")
	}
	if c.Title == "" {
		c.Title = c.FullPath
	}
	c.BaseDirectory = strings.Trim(c.BaseDirectory, "/")

	_, _, err = store.Load[v1pb.VCSProvider](ctx, h.store(), store.KindVCSProvider, c.VcsProvider)
	if errors.Is(err, store.ErrNotFound) {
		return nil, invalidArgument("VCS provider %q does not exist", c.VcsProvider)
	}
	if err != nil {
		return nil, h.storeError(err, describe("VCS provider", c.VcsProvider))
	}
	if _, err := store.Insert(ctx, h.store(), store.KindVCSConnector, c.Name, req.Parent, c); err != nil {
		return nil, h.storeError(err, describe("VCS connector", c.Name))
	}
	h.server.GetLogger().Info("Created VCS connector", "name", c.Name, "provider", c.VcsProvider)
	return c, nil
}

func (h *GRPCHandlers) GetVCSConnector(ctx context.Context, req *v1pb.GetVCSConnectorRequest) (*v1pb.VCSConnector, error) {
	if _, _, err := models.ProjectVCSConnectorID(req.Name); err != nil {
		return nil, invalidArgument("%v", err)
	}
	c, _, err := load[v1pb.VCSConnector](ctx, h, store.KindVCSConnector, req.Name, describe("VCS connector", req.Name))
	return c, err
}

func (h *GRPCHandlers) ListVCSConnectors(ctx context.Context, req *v1pb.ListVCSConnectorsRequest) (*v1pb.ListVCSConnectorsResponse, error) {
	if _, err := models.ProjectID(req.Parent); err != nil {
		return nil, invalidArgument("%v", err)
	}
	connectors, next, err := listMatching[v1pb.VCSConnector](ctx, h, store.KindVCSConnector, store.ListOptions{Parent: req.Parent}, "", req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	return &v1pb.ListVCSConnectorsResponse{VcsConnectors: connectors, NextPageToken: next}, nil
}

func (h *GRPCHandlers) UpdateVCSConnector(ctx context.Context, req *v1pb.UpdateVCSConnectorRequest) (*v1pb.VCSConnector, error) {
	p, err := requireWorkspaceWrite(ctx)
	if err != nil {
		return nil, err
	}
	if req.VcsConnector == nil {
		return nil, invalidArgument("vcs_connector is required")
	}
	what := describe("VCS connector", req.VcsConnector.Name)
	c, rec, err := load[v1pb.VCSConnector](ctx, h, store.KindVCSConnector, req.VcsConnector.Name, what)
	if err != nil {
		return nil, err
	}
	if err := applyMask(c, req.VcsConnector, req.UpdateMask, "title", "branch", "base_directory"); err != nil {
		return nil, err
	}
	if c.Branch == "" {
		return nil, invalidArgument("branch is required")
	}
	c.BaseDirectory = strings.Trim(c.BaseDirectory, "/")
	c.Updater = creator(p)
	c.UpdateTime = timestamppb.Now()
	if err := store.Save(ctx, h.store(), rec, c); err != nil {
		return nil, h.storeError(err, what)
	}
	return c, nil
}

func (h *GRPCHandlers) DeleteVCSConnector(ctx context.Context, req *v1pb.DeleteVCSConnectorRequest) (*emptypb.Empty, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if err := h.store().Delete(ctx, store.KindVCSConnector, req.Name); err != nil {
		return nil, h.storeError(err, describe("VCS connector", req.Name))
	}
	return &emptypb.Empty{}, nil
}
