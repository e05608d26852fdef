package handlers

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/protobuf/types/known/emptypb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/advisor"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/paging"
	"github.com/idot-digital/dbconsole/internal/store"
	"github.com/idot-digital/dbconsole/internal/wire"
)

// policyID is the lower-kebab form of a policy type, e.g. sql-review.
func policyID(t v1pb.PolicyType) string {
	return strings.ReplaceAll(strings.ToLower(t.String()), "_", "-")
}

func policyTypeOf(id string) (v1pb.PolicyType, bool) {
	v, ok := v1pb.PolicyType_value[strings.ToUpper(strings.ReplaceAll(id, "-", "_"))]
	if !ok || v == 0 {
		return 0, false
	}
	return v1pb.PolicyType(v), true
}

func policyName(parent string, t v1pb.PolicyType) string {
	if parent == "" {
		return models.PolicyIDPrefix + policyID(t)
	}
	return parent + "/" + models.PolicyIDPrefix + policyID(t)
}

// parsePolicyName returns the parent and type named by name.
func parsePolicyName(name string) (string, v1pb.PolicyType, error) {
	parent, id, err := models.PolicyParent(name)
	if err != nil {
		return "", 0, invalidArgument("%v", err)
	}
	t, ok := policyTypeOf(id)
	if !ok {
		return "", 0, invalidArgument("Unknown policy %q", id)
	}
	return parent, t, nil
}

func resourceTypeOf(parent string) v1pb.PolicyResourceType {
	switch {
	case parent == "":
		return v1pb.PolicyResourceType_WORKSPACE
	case strings.HasPrefix(parent, models.EnvironmentPrefix):
		return v1pb.PolicyResourceType_ENVIRONMENT
	case strings.HasPrefix(parent, models.ProjectPrefix):
		return v1pb.PolicyResourceType_PROJECT
	case strings.Contains(parent, "/"+models.DatabaseIDPrefix):
		return v1pb.PolicyResourceType_DATABASE
	}
	return v1pb.PolicyResourceType_INSTANCE
}

// validatePolicyPayload checks that only the payload of the policy's type is
// set.
func validatePolicyPayload(p *v1pb.Policy) error {
	payloads := []struct {
		typ v1pb.PolicyType
		set bool
	}{
		{v1pb.PolicyType_ROLLOUT_POLICY, p.RolloutPolicy != nil},
		{v1pb.PolicyType_DISABLE_COPY_DATA, p.DisableCopyDataPolicy != nil},
		{v1pb.PolicyType_SQL_REVIEW, p.SqlReviewPolicy != nil},
		{v1pb.PolicyType_TAG, p.TagPolicy != nil},
	}
	found := false
	for _, payload := range payloads {
		if payload.set && payload.typ != p.Type {
			return invalidArgument("%s policy cannot carry a %s payload", p.Type, payload.typ)
		}
		found = found || payload.set
	}
	if !found {
		return invalidArgument("%s policy requires its payload", p.Type)
	}
	if p.SqlReviewPolicy != nil {
		for _, r := range p.SqlReviewPolicy.Rules {
			if err := advisor.ValidateRule(r); err != nil {
				return invalidArgument("Invalid SQL review rule: %v", err)
			}
		}
	}
	return nil
}

func (h *GRPCHandlers) GetPolicy(ctx context.Context, req *v1pb.GetPolicyRequest) (*v1pb.Policy, error) {
	if _, _, err := parsePolicyName(req.Name); err != nil {
		return nil, err
	}
	p, _, err := load[v1pb.Policy](ctx, h, store.KindPolicy, req.Name, describe("Policy", req.Name))
	return p, err
}

// ListPolicies lists the policies attached directly to parent. An empty
// parent lists workspace policies.
func (h *GRPCHandlers) ListPolicies(ctx context.Context, req *v1pb.ListPoliciesRequest) (*v1pb.ListPoliciesResponse, error) {
	if err := models.ValidatePolicyParent(req.Parent); err != nil {
		return nil, invalidArgument("%v", err)
	}
	page, err := parsePage(req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	policies, recs, err := store.LoadAll[v1pb.Policy](ctx, h.store(), store.KindPolicy, store.ListOptions{Parent: req.Parent, ShowDeleted: req.ShowDeleted})
	if err != nil {
		return nil, h.storeError(err, "policies")
	}
	out := make([]*v1pb.Policy, 0, len(policies))
	for i, p := range policies {
		if recs[i].Parent != req.Parent {
			continue
		}
		if req.PolicyType != nil && p.Type != *req.PolicyType {
			continue
		}
		out = append(out, p)
	}
	out, next := paging.Slice(out, page)
	return &v1pb.ListPoliciesResponse{Policies: out, NextPageToken: next}, nil
}

func (h *GRPCHandlers) CreatePolicy(ctx context.Context, req *v1pb.CreatePolicyRequest) (*v1pb.Policy, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.Policy == nil {
		return nil, invalidArgument("policy is required")
	}
	if err := models.ValidatePolicyParent(req.Parent); err != nil {
		return nil, invalidArgument("%v", err)
	}
	p := wire.Clone(req.Policy)
	if req.Type != v1pb.PolicyType_POLICY_TYPE_UNSPECIFIED {
		p.Type = req.Type
	}
	if p.Type == v1pb.PolicyType_POLICY_TYPE_UNSPECIFIED {
		return nil, invalidArgument("policy type is required")
	}
	return h.insertPolicy(ctx, req.Parent, p)
}

func (h *GRPCHandlers) insertPolicy(ctx context.Context, parent string, p *v1pb.Policy) (*v1pb.Policy, error) {
	p.Name = policyName(parent, p.Type)
	p.ResourceType = resourceTypeOf(parent)
	if err := validatePolicyPayload(p); err != nil {
		return nil, err
	}
	if _, err := store.Insert(ctx, h.store(), store.KindPolicy, p.Name, parent, p); err != nil {
		return nil, h.storeError(err, describe("Policy", p.Name))
	}
	h.server.GetLogger().Info("Created policy", "name", p.Name)
	return p, nil
}

// UpdatePolicy updates a policy, creating it when allow_missing is set and
// it does not exist.
func (h *GRPCHandlers) UpdatePolicy(ctx context.Context, req *v1pb.UpdatePolicyRequest) (*v1pb.Policy, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.Policy == nil {
		return nil, invalidArgument("policy is required")
	}
	parent, typ, err := parsePolicyName(req.Policy.Name)
	if err != nil {
		return nil, err
	}
	what := describe("Policy", req.Policy.Name)
	p, rec, err := store.Load[v1pb.Policy](ctx, h.store(), store.KindPolicy, req.Policy.Name)
	if errors.Is(err, store.ErrNotFound) && req.AllowMissing {
		created := wire.Clone(req.Policy)
		created.Type = typ
		return h.insertPolicy(ctx, parent, created)
	}
	if err != nil {
		return nil, h.storeError(err, what)
	}
	err = applyMask(p, req.Policy, req.UpdateMask,
		"inherit_from_parent", "enforce", "rollout_policy", "disable_copy_data_policy", "sql_review_policy", "tag_policy")
	if err != nil {
		return nil, err
	}
	if err := validatePolicyPayload(p); err != nil {
		return nil, err
	}
	if err := store.Save(ctx, h.store(), rec, p); err != nil {
		return nil, h.storeError(err, what)
	}
	return p, nil
}

func (h *GRPCHandlers) DeletePolicy(ctx context.Context, req *v1pb.DeletePolicyRequest) (*emptypb.Empty, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if _, _, err := parsePolicyName(req.Name); err != nil {
		return nil, err
	}
	if err := h.store().Delete(ctx, store.KindPolicy, req.Name); err != nil {
		return nil, h.storeError(err, describe("Policy", req.Name))
	}
	return &emptypb.Empty{}, nil
}

// sqlReviewRules returns the rules of the SQL review policies attached to
// resources, the workspace policy included.
func (h *GRPCHandlers) sqlReviewRules(ctx context.Context, resources ...string) ([][]*v1pb.SQLReviewRule, error) {
	var sets [][]*v1pb.SQLReviewRule
	for _, parent := range append([]string{""}, resources...) {
		name := policyName(parent, v1pb.PolicyType_SQL_REVIEW)
		p, _, err := store.Load[v1pb.Policy](ctx, h.store(), store.KindPolicy, name)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, h.storeError(err, describe("Policy", name))
		}
		if p.SqlReviewPolicy != nil {
			sets = append(sets, p.SqlReviewPolicy.Rules)
		}
	}
	return sets, nil
}
