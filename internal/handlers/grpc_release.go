package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/advisor"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/store"
	"github.com/idot-digital/dbconsole/internal/wire"
)

// prepareFiles validates the files of a release and fills in their output
// fields. It returns the release digest.
func prepareFiles(files []*v1pb.Release_File) (string, error) {
	if len(files) == 0 {
		return "", invalidArgument("a release needs at least one file")
	}
	digest := sha256.New()
	ids := make(map[string]bool, len(files))
	for _, f := range files {
		if f.Id == "" {
			return "", invalidArgument("file id is required")
		}
		if ids[f.Id] {
			return "", invalidArgument("Duplicate file id %q", f.Id)
		}
		ids[f.Id] = true
		sum := sha256.Sum256(f.Statement)
		f.SheetSha256 = hex.EncodeToString(sum[:])
		f.StatementSize = int64(len(f.Statement))
		digest.Write([]byte(f.Version))
		digest.Write(f.Statement)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// releaseOutput drops file statements, which are only returned as sizes.
func releaseOutput(r *v1pb.Release) *v1pb.Release {
	out := wire.Clone(r)
	for _, f := range out.Files {
		f.Statement = nil
	}
	return out
}

func (h *GRPCHandlers) GetRelease(ctx context.Context, req *v1pb.GetReleaseRequest) (*v1pb.Release, error) {
	if _, _, err := models.ProjectReleaseID(req.Name); err != nil {
		return nil, invalidArgument("%v", err)
	}
	r, _, err := load[v1pb.Release](ctx, h, store.KindRelease, req.Name, describe("Release", req.Name))
	if err != nil {
		return nil, err
	}
	return releaseOutput(r), nil
}

func (h *GRPCHandlers) ListReleases(ctx context.Context, req *v1pb.ListReleasesRequest) (*v1pb.ListReleasesResponse, error) {
	if _, err := models.ProjectID(req.Parent); err != nil {
		return nil, invalidArgument("%v", err)
	}
	opts := store.ListOptions{Parent: req.Parent, ShowDeleted: req.ShowDeleted, Descending: true}
	releases, next, err := listMatching[v1pb.Release](ctx, h, store.KindRelease, opts, "", req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	out := make([]*v1pb.Release, len(releases))
	for i, r := range releases {
		out[i] = releaseOutput(r)
	}
	return &v1pb.ListReleasesResponse{Releases: out, NextPageToken: next}, nil
}

func (h *GRPCHandlers) CreateRelease(ctx context.Context, req *v1pb.CreateReleaseRequest) (*v1pb.Release, error) {
	p, err := requireSignedIn(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := models.ProjectID(req.Parent); err != nil {
		return nil, invalidArgument("%v", err)
	}
	if req.Release == nil {
		return nil, invalidArgument("release is required")
	}
	r := wire.Clone(req.Release)
	r.Name = req.Parent + "/" + models.ReleaseIDPrefix + uuid.NewString()
	r.Creator = creator(p)
	r.CreateTime = timestamppb.Now()
	r.State = v1pb.State_ACTIVE
	if r.Digest, err = prepareFiles(r.Files); err != nil {
		return nil, err
	}
	if _, err := store.Insert(ctx, h.store(), store.KindRelease, r.Name, req.Parent, r); err != nil {
		return nil, h.storeError(err, describe("Release", r.Name))
	}
	h.server.GetLogger().Info("Created release", "name", r.Name, "files", len(r.Files))
	return releaseOutput(r), nil
}

func (h *GRPCHandlers) UpdateRelease(ctx context.Context, req *v1pb.UpdateReleaseRequest) (*v1pb.Release, error) {
	if _, err := requireSignedIn(ctx); err != nil {
		return nil, err
	}
	if req.Release == nil {
		return nil, invalidArgument("release is required")
	}
	what := describe("Release", req.Release.Name)
	r, rec, err := load[v1pb.Release](ctx, h, store.KindRelease, req.Release.Name, what)
	if err != nil {
		return nil, err
	}
	if err := requireActive(rec, what); err != nil {
		return nil, err
	}
	if err := applyMask(r, req.Release, req.UpdateMask, "title"); err != nil {
		return nil, err
	}
	if err := store.Save(ctx, h.store(), rec, r); err != nil {
		return nil, h.storeError(err, what)
	}
	return releaseOutput(r), nil
}

func (h *GRPCHandlers) DeleteRelease(ctx context.Context, req *v1pb.DeleteReleaseRequest) (*emptypb.Empty, error) {
	if _, err := requireSignedIn(ctx); err != nil {
		return nil, err
	}
	what := describe("Release", req.Name)
	r, rec, err := load[v1pb.Release](ctx, h, store.KindRelease, req.Name, what)
	if err != nil {
		return nil, err
	}
	r.State = v1pb.State_DELETED
	if err := h.softDelete(ctx, rec, r, what); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (h *GRPCHandlers) UndeleteRelease(ctx context.Context, req *v1pb.UndeleteReleaseRequest) (*v1pb.Release, error) {
	if _, err := requireSignedIn(ctx); err != nil {
		return nil, err
	}
	what := describe("Release", req.Name)
	r, rec, err := load[v1pb.Release](ctx, h, store.KindRelease, req.Name, what)
	if err != nil {
		return nil, err
	}
	r.State = v1pb.State_ACTIVE
	if err := h.undelete(ctx, rec, r, what); err != nil {
		return nil, err
	}
	return releaseOutput(r), nil
}

// CheckRelease reviews every file of a release against every target
// database with the SQL review rules in effect for that database.
func (h *GRPCHandlers) CheckRelease(ctx context.Context, req *v1pb.CheckReleaseRequest) (*v1pb.CheckReleaseResponse, error) {
	if _, err := models.ProjectID(req.Parent); err != nil {
		return nil, invalidArgument("%v", err)
	}
	if req.Release == nil || len(req.Release.Files) == 0 {
		return nil, invalidArgument("release with at least one file is required")
	}
	if len(req.Targets) == 0 {
		return nil, invalidArgument("targets are required")
	}

	resp := &v1pb.CheckReleaseResponse{RiskLevel: v1pb.RiskLevel_RISK_LEVEL_UNSPECIFIED}
	for _, target := range req.Targets {
		engine, rules, err := h.targetRules(ctx, req.Parent, target)
		if err != nil {
			return nil, err
		}
		for _, f := range req.Release.Files {
			result, err := advisor.Check(engine, string(f.Statement), rules)
			if err != nil {
				return nil, invalidArgument("Invalid SQL review rules for %q: %v", target, err)
			}
			resp.Results = append(resp.Results, &v1pb.CheckReleaseResponse_CheckResult{
				File:      f.Path,
				Target:    target,
				Advices:   result.Advices,
				RiskLevel: result.RiskLevel,
			})
			if result.RiskLevel > resp.RiskLevel {
				resp.RiskLevel = result.RiskLevel
			}
		}
	}
	return resp, nil
}

// targetRules resolves the engine of a target database and the SQL review
// rules in effect for it.
func (h *GRPCHandlers) targetRules(ctx context.Context, project, target string) (v1pb.Engine, []*v1pb.SQLReviewRule, error) {
	instanceID, _, err := models.InstanceDatabaseID(target)
	if err != nil {
		return 0, nil, invalidArgument("Invalid target: %v", err)
	}
	db, _, err := store.Load[v1pb.Database](ctx, h.store(), store.KindDatabase, target)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil, invalidArgument("Target database %q does not exist", target)
	}
	if err != nil {
		return 0, nil, h.storeError(err, describe("Database", target))
	}
	instanceName := models.FormatInstance(instanceID)
	inst, _, err := load[v1pb.Instance](ctx, h, store.KindInstance, instanceName, describe("Instance", instanceName))
	if err != nil {
		return 0, nil, err
	}

	var resources []string
	if db.EffectiveEnvironment != "" {
		resources = append(resources, db.EffectiveEnvironment)
	}
	resources = append(resources, project)
	if db.Project != "" && db.Project != project {
		resources = append(resources, db.Project)
	}
	configSets, err := h.reviewRules(ctx, resources...)
	if err != nil {
		return 0, nil, err
	}
	policySets, err := h.sqlReviewRules(ctx, append(resources, instanceName, target)...)
	if err != nil {
		return 0, nil, err
	}
	return inst.Engine, advisor.MergeRules(append(configSets, policySets...)...), nil
}
