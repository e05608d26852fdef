package handlers

import (
	"context"
	"errors"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/dbsync"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/paging"
	"github.com/idot-digital/dbconsole/internal/sqleditor"
	"github.com/idot-digital/dbconsole/internal/store"
)

func (h *GRPCHandlers) GetDatabase(ctx context.Context, req *v1pb.GetDatabaseRequest) (*v1pb.Database, error) {
	if _, _, err := models.InstanceDatabaseID(req.Name); err != nil {
		return nil, invalidArgument("%v", err)
	}
	db, _, err := load[v1pb.Database](ctx, h, store.KindDatabase, req.Name, describe("Database", req.Name))
	return db, err
}

// ListDatabases lists the databases of one instance, of all instances
// (instances/-) or of one project.
func (h *GRPCHandlers) ListDatabases(ctx context.Context, req *v1pb.ListDatabasesRequest) (*v1pb.ListDatabasesResponse, error) {
	page, err := parsePage(req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	expr, err := parseFilter(req.Filter, &v1pb.Database{})
	if err != nil {
		return nil, err
	}
	dbs, err := h.databasesOf(ctx, req.Parent)
	if err != nil {
		return nil, err
	}
	dbs, err = matching(expr, dbs)
	if err != nil {
		return nil, err
	}
	dbs, next := paging.Slice(dbs, page)
	return &v1pb.ListDatabasesResponse{Databases: dbs, NextPageToken: next}, nil
}

func (h *GRPCHandlers) databasesOf(ctx context.Context, parent string) ([]*v1pb.Database, error) {
	var opts store.ListOptions
	var project string
	switch {
	case parent == models.AllInstances:
	case parent == "":
		return nil, invalidArgument("parent is required")
	default:
		if _, err := models.InstanceID(parent); err == nil {
			opts.Parent = parent
			break
		}
		if _, err := models.ProjectID(parent); err != nil {
			return nil, invalidArgument("Invalid parent %q, expected instances/{instance}, instances/- or projects/{project}", parent)
		}
		project = parent
	}
	dbs, _, err := store.LoadAll[v1pb.Database](ctx, h.store(), store.KindDatabase, opts)
	if err != nil {
		return nil, h.storeError(err, "databases")
	}
	if project == "" {
		return dbs, nil
	}
	out := dbs[:0]
	for _, db := range dbs {
		if db.Project == project {
			out = append(out, db)
		}
	}
	return out, nil
}

func (h *GRPCHandlers) UpdateDatabase(ctx context.Context, req *v1pb.UpdateDatabaseRequest) (*v1pb.Database, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.Database == nil {
		return nil, invalidArgument("database is required")
	}
	what := describe("Database", req.Database.Name)
	db, rec, err := load[v1pb.Database](ctx, h, store.KindDatabase, req.Database.Name, what)
	if err != nil {
		return nil, err
	}
	if err := applyMask(db, req.Database, req.UpdateMask, "project", "environment", "labels"); err != nil {
		return nil, err
	}
	if inMask(req.UpdateMask, "project") && db.Project != "" {
		if _, err := models.ProjectID(db.Project); err != nil {
			return nil, invalidArgument("%v", err)
		}
	}
	if inMask(req.UpdateMask, "environment") && db.Environment != "" {
		if err := h.activeEnvironment(ctx, db.Environment); err != nil {
			return nil, err
		}
	}

	inst, _, err := store.Load[v1pb.Instance](ctx, h.store(), store.KindInstance, rec.Parent)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, h.storeError(err, describe("Instance", rec.Parent))
	}
	db.EffectiveEnvironment = dbsync.EffectiveEnvironment(db, inst)
	if err := store.Save(ctx, h.store(), rec, db); err != nil {
		return nil, h.storeError(err, what)
	}
	return db, nil
}

// GetDatabaseTree groups the visible databases by the requested factors.
func (h *GRPCHandlers) GetDatabaseTree(ctx context.Context, req *v1pb.GetDatabaseTreeRequest) (*v1pb.DatabaseTree, error) {
	factors, err := sqleditor.ParseFactors(req.Factors)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}
	expr, err := parseFilter(req.Filter, &v1pb.Database{})
	if err != nil {
		return nil, err
	}
	parent := models.AllInstances
	if req.Project != "" {
		parent = req.Project
	}
	dbs, err := h.databasesOf(ctx, parent)
	if err != nil {
		return nil, err
	}
	if dbs, err = matching(expr, dbs); err != nil {
		return nil, err
	}

	envs, _, err := store.LoadAll[v1pb.Environment](ctx, h.store(), store.KindEnvironment, store.ListOptions{})
	if err != nil {
		return nil, h.storeError(err, "environments")
	}
	instances, _, err := store.LoadAll[v1pb.Instance](ctx, h.store(), store.KindInstance, store.ListOptions{})
	if err != nil {
		return nil, h.storeError(err, "instances")
	}
	active := make(map[string]bool, len(instances))
	for _, inst := range instances {
		active[inst.Name] = true
	}
	visible := dbs[:0]
	for _, db := range dbs {
		instanceID, _, err := models.InstanceDatabaseID(db.Name)
		if err == nil && active[models.FormatInstance(instanceID)] {
			visible = append(visible, db)
		}
	}

	names := make([]string, len(factors))
	for i, f := range factors {
		names[i] = f.String()
	}
	nodes := sqleditor.NewBuilder(envs, redactAll(instances)).Build(factors, visible)
	return &v1pb.DatabaseTree{Nodes: nodes, Factors: names}, nil
}
