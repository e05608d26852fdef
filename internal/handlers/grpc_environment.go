package handlers

import (
	"context"
	"errors"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/paging"
	"github.com/idot-digital/dbconsole/internal/store"
)

func (h *GRPCHandlers) GetEnvironment(ctx context.Context, req *v1pb.GetEnvironmentRequest) (*v1pb.Environment, error) {
	if _, err := models.EnvironmentID(req.Name); err != nil {
		return nil, invalidArgument("%v", err)
	}
	env, _, err := load[v1pb.Environment](ctx, h, store.KindEnvironment, req.Name, describe("Environment", req.Name))
	return env, err
}

// ListEnvironments returns environments by their order.
func (h *GRPCHandlers) ListEnvironments(ctx context.Context, req *v1pb.ListEnvironmentsRequest) (*v1pb.ListEnvironmentsResponse, error) {
	page, err := parsePage(req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	envs, _, err := store.LoadAll[v1pb.Environment](ctx, h.store(), store.KindEnvironment, store.ListOptions{ShowDeleted: req.ShowDeleted})
	if err != nil {
		return nil, h.storeError(err, "environments")
	}
	sort.SliceStable(envs, func(i, j int) bool { return envs[i].Order < envs[j].Order })
	envs, next := paging.Slice(envs, page)
	return &v1pb.ListEnvironmentsResponse{Environments: envs, NextPageToken: next}, nil
}

func (h *GRPCHandlers) CreateEnvironment(ctx context.Context, req *v1pb.CreateEnvironmentRequest) (*v1pb.Environment, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.Environment == nil {
		return nil, invalidArgument("environment is required")
	}
	if err := models.ValidateResourceID(req.EnvironmentId); err != nil {
		return nil, invalidArgument("%v", err)
	}
	if req.Environment.Title == "" {
		return nil, invalidArgument("environment title is required")
	}

	env := &v1pb.Environment{
		Name:  models.FormatEnvironment(req.EnvironmentId),
		Title: req.Environment.Title,
		Order: req.Environment.Order,
		State: v1pb.State_ACTIVE,
		Tier:  req.Environment.Tier,
		Color: req.Environment.Color,
	}
	if env.Tier == v1pb.EnvironmentTier_ENVIRONMENT_TIER_UNSPECIFIED {
		env.Tier = v1pb.EnvironmentTier_UNPROTECTED
	}
	if _, err := store.Insert(ctx, h.store(), store.KindEnvironment, env.Name, "", env); err != nil {
		return nil, h.storeError(err, describe("Environment", env.Name))
	}
	h.server.GetLogger().Info("Created environment", "name", env.Name)
	return env, nil
}

func (h *GRPCHandlers) UpdateEnvironment(ctx context.Context, req *v1pb.UpdateEnvironmentRequest) (*v1pb.Environment, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.Environment == nil {
		return nil, invalidArgument("environment is required")
	}
	what := describe("Environment", req.Environment.Name)
	env, rec, err := load[v1pb.Environment](ctx, h, store.KindEnvironment, req.Environment.Name, what)
	if err != nil {
		return nil, err
	}
	if err := requireActive(rec, what); err != nil {
		return nil, err
	}
	if err := applyMask(env, req.Environment, req.UpdateMask, "title", "order", "tier", "color"); err != nil {
		return nil, err
	}
	if env.Title == "" {
		return nil, invalidArgument("environment title is required")
	}
	if err := store.Save(ctx, h.store(), rec, env); err != nil {
		return nil, h.storeError(err, what)
	}
	return env, nil
}

// DeleteEnvironment soft deletes an environment that no active instance
// uses.
func (h *GRPCHandlers) DeleteEnvironment(ctx context.Context, req *v1pb.DeleteEnvironmentRequest) (*emptypb.Empty, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	what := describe("Environment", req.Name)
	env, rec, err := load[v1pb.Environment](ctx, h, store.KindEnvironment, req.Name, what)
	if err != nil {
		return nil, err
	}
	instances, _, err := store.LoadAll[v1pb.Instance](ctx, h.store(), store.KindInstance, store.ListOptions{})
	if err != nil {
		return nil, h.storeError(err, "instances")
	}
	for _, inst := range instances {
		if inst.Environment == env.Name {
			return nil, status.Errorf(codes.FailedPrecondition, "Environment %q still has instance %q", env.Name, inst.Name)
		}
	}
	env.State = v1pb.State_DELETED
	if err := h.softDelete(ctx, rec, env, what); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (h *GRPCHandlers) UndeleteEnvironment(ctx context.Context, req *v1pb.UndeleteEnvironmentRequest) (*v1pb.Environment, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	what := describe("Environment", req.Name)
	env, rec, err := load[v1pb.Environment](ctx, h, store.KindEnvironment, req.Name, what)
	if err != nil {
		return nil, err
	}
	env.State = v1pb.State_ACTIVE
	if err := h.undelete(ctx, rec, env, what); err != nil {
		return nil, err
	}
	return env, nil
}

// activeEnvironment checks that name refers to an environment that is not
// deleted.
func (h *GRPCHandlers) activeEnvironment(ctx context.Context, name string) error {
	if _, err := models.EnvironmentID(name); err != nil {
		return invalidArgument("%v", err)
	}
	_, rec, err := store.Load[v1pb.Environment](ctx, h.store(), store.KindEnvironment, name)
	if errors.Is(err, store.ErrNotFound) {
		return invalidArgument("Environment %q does not exist", name)
	}
	if err != nil {
		return h.storeError(err, describe("Environment", name))
	}
	if rec.Deleted {
		return invalidArgument("Environment %q is deleted", name)
	}
	return nil
}
