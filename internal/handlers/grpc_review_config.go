package handlers

import (
	"context"
	"errors"
	"slices"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/advisor"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/store"
	"github.com/idot-digital/dbconsole/internal/wire"
)

func validateReviewConfig(c *v1pb.ReviewConfig) error {
	id, ok := strings.CutPrefix(c.Name, models.ReviewConfigPrefix)
	if !ok {
		return invalidArgument("Invalid review config name %q", c.Name)
	}
	if err := models.ValidateResourceID(id); err != nil {
		return invalidArgument("%v", err)
	}
	if c.Title == "" {
		return invalidArgument("review config title is required")
	}
	for _, r := range c.Rules {
		if err := advisor.ValidateRule(r); err != nil {
			return invalidArgument("Invalid SQL review rule: %v", err)
		}
	}
	for _, res := range c.Resources {
		_, envErr := models.EnvironmentID(res)
		_, projectErr := models.ProjectID(res)
		if envErr != nil && projectErr != nil {
			return invalidArgument("Invalid resource %q, expected environments/{environment} or projects/{project}", res)
		}
	}
	return nil
}

func (h *GRPCHandlers) CreateReviewConfig(ctx context.Context, req *v1pb.CreateReviewConfigRequest) (*v1pb.ReviewConfig, error) {
	p, err := requireWorkspaceWrite(ctx)
	if err != nil {
		return nil, err
	}
	if req.ReviewConfig == nil {
		return nil, invalidArgument("review_config is required")
	}
	c := wire.Clone(req.ReviewConfig)
	c.Creator = creator(p)
	return h.insertReviewConfig(ctx, c)
}

func (h *GRPCHandlers) insertReviewConfig(ctx context.Context, c *v1pb.ReviewConfig) (*v1pb.ReviewConfig, error) {
	if err := validateReviewConfig(c); err != nil {
		return nil, err
	}
	now := timestamppb.Now()
	c.CreateTime, c.UpdateTime = now, now
	if _, err := store.Insert(ctx, h.store(), store.KindReviewConfig, c.Name, "", c); err != nil {
		return nil, h.storeError(err, describe("Review config", c.Name))
	}
	h.server.GetLogger().Info("Created review config", "name", c.Name, "rules", len(c.Rules))
	return c, nil
}

func (h *GRPCHandlers) ListReviewConfigs(ctx context.Context, req *v1pb.ListReviewConfigsRequest) (*v1pb.ListReviewConfigsResponse, error) {
	configs, next, err := listMatching[v1pb.ReviewConfig](ctx, h, store.KindReviewConfig, store.ListOptions{}, "", req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	return &v1pb.ListReviewConfigsResponse{ReviewConfigs: configs, NextPageToken: next}, nil
}

func (h *GRPCHandlers) GetReviewConfig(ctx context.Context, req *v1pb.GetReviewConfigRequest) (*v1pb.ReviewConfig, error) {
	c, _, err := load[v1pb.ReviewConfig](ctx, h, store.KindReviewConfig, req.Name, describe("Review config", req.Name))
	return c, err
}

func (h *GRPCHandlers) UpdateReviewConfig(ctx context.Context, req *v1pb.UpdateReviewConfigRequest) (*v1pb.ReviewConfig, error) {
	p, err := requireWorkspaceWrite(ctx)
	if err != nil {
		return nil, err
	}
	if req.ReviewConfig == nil {
		return nil, invalidArgument("review_config is required")
	}
	what := describe("Review config", req.ReviewConfig.Name)
	c, rec, err := store.Load[v1pb.ReviewConfig](ctx, h.store(), store.KindReviewConfig, req.ReviewConfig.Name)
	if errors.Is(err, store.ErrNotFound) && req.AllowMissing {
		created := wire.Clone(req.ReviewConfig)
		created.Creator = creator(p)
		return h.insertReviewConfig(ctx, created)
	}
	if err != nil {
		return nil, h.storeError(err, what)
	}
	if err := applyMask(c, req.ReviewConfig, req.UpdateMask, "title", "enabled", "rules", "resources"); err != nil {
		return nil, err
	}
	if err := validateReviewConfig(c); err != nil {
		return nil, err
	}
	c.UpdateTime = timestamppb.Now()
	if err := store.Save(ctx, h.store(), rec, c); err != nil {
		return nil, h.storeError(err, what)
	}
	return c, nil
}

func (h *GRPCHandlers) DeleteReviewConfig(ctx context.Context, req *v1pb.DeleteReviewConfigRequest) (*emptypb.Empty, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if err := h.store().Delete(ctx, store.KindReviewConfig, req.Name); err != nil {
		return nil, h.storeError(err, describe("Review config", req.Name))
	}
	return &emptypb.Empty{}, nil
}

// SeedReviewConfigs creates the given configs unless a config of the same
// name exists. It runs at startup with the configured templates.
func (h *GRPCHandlers) SeedReviewConfigs(ctx context.Context, configs []*v1pb.ReviewConfig) error {
	for _, c := range configs {
		c = wire.Clone(c)
		if c.Creator == "" {
			c.Creator = models.FormatUser(auth.SystemBotEmail)
		}
		_, err := h.insertReviewConfig(ctx, c)
		if status.Code(err) == codes.AlreadyExists {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// reviewRules returns the rule sets of the enabled review configs attached
// to any of resources.
func (h *GRPCHandlers) reviewRules(ctx context.Context, resources ...string) ([][]*v1pb.SQLReviewRule, error) {
	configs, _, err := store.LoadAll[v1pb.ReviewConfig](ctx, h.store(), store.KindReviewConfig, store.ListOptions{})
	if err != nil {
		return nil, h.storeError(err, "review configs")
	}
	var sets [][]*v1pb.SQLReviewRule
	for _, c := range configs {
		if !c.Enabled {
			continue
		}
		for _, res := range c.Resources {
			if slices.Contains(resources, res) {
				sets = append(sets, c.Rules)
				break
			}
		}
	}
	return sets, nil
}
