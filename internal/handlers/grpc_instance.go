package handlers

import (
	"context"
	"errors"
	"slices"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/dbsync"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/store"
	"github.com/idot-digital/dbconsole/internal/wire"
)

func (h *GRPCHandlers) GetInstance(ctx context.Context, req *v1pb.GetInstanceRequest) (*v1pb.Instance, error) {
	if _, err := models.InstanceID(req.Name); err != nil {
		return nil, invalidArgument("%v", err)
	}
	inst, _, err := load[v1pb.Instance](ctx, h, store.KindInstance, req.Name, describe("Instance", req.Name))
	if err != nil {
		return nil, err
	}
	return redact(inst), nil
}

func (h *GRPCHandlers) ListInstances(ctx context.Context, req *v1pb.ListInstancesRequest) (*v1pb.ListInstancesResponse, error) {
	instances, next, err := listMatching[v1pb.Instance](ctx, h, store.KindInstance, store.ListOptions{ShowDeleted: req.ShowDeleted}, req.Filter, req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	return &v1pb.ListInstancesResponse{Instances: redactAll(instances), NextPageToken: next}, nil
}

// CreateInstance registers an instance. Unless validate_only is set the
// admin data source must be reachable; the instance's databases are synced
// right away.
func (h *GRPCHandlers) CreateInstance(ctx context.Context, req *v1pb.CreateInstanceRequest) (*v1pb.Instance, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.Instance == nil {
		return nil, invalidArgument("instance is required")
	}
	if err := models.ValidateResourceID(req.InstanceId); err != nil {
		return nil, invalidArgument("%v", err)
	}

	inst := wire.Clone(req.Instance)
	inst.Name = models.FormatInstance(req.InstanceId)
	inst.State = v1pb.State_ACTIVE
	inst.EngineVersion = ""
	inst.LastSyncTime = nil
	if inst.Title == "" {
		return nil, invalidArgument("instance title is required")
	}
	if inst.Engine == v1pb.Engine_ENGINE_UNSPECIFIED {
		return nil, invalidArgument("instance engine is required")
	}
	if inst.Environment != "" {
		if err := h.activeEnvironment(ctx, inst.Environment); err != nil {
			return nil, err
		}
	}
	if err := validateDataSources(inst.DataSources); err != nil {
		return nil, err
	}

	if !req.ValidateOnly {
		if err := h.syncer.Ping(ctx, inst.Engine, dbsync.AdminDataSource(inst)); err != nil {
			return nil, status.Errorf(codes.FailedPrecondition, "Cannot connect to instance: %v", err)
		}
	}
	if _, err := store.Insert(ctx, h.store(), store.KindInstance, inst.Name, "", inst); err != nil {
		return nil, h.storeError(err, describe("Instance", inst.Name))
	}
	h.server.GetLogger().Info("Created instance", "name", inst.Name, "engine", inst.Engine.String())

	if !req.ValidateOnly {
		if _, err := h.syncer.SyncInstance(ctx, inst.Name); err != nil {
			h.server.GetLogger().Warn("Failed to sync new instance", "name", inst.Name, "error", err)
		}
		if synced, _, err := store.Load[v1pb.Instance](ctx, h.store(), store.KindInstance, inst.Name); err == nil {
			inst = synced
		}
	}
	return redact(inst), nil
}

func validateDataSources(sources []*v1pb.DataSource) error {
	ids := make(map[string]bool, len(sources))
	admins := 0
	for _, ds := range sources {
		if err := validateDataSource(ds); err != nil {
			return err
		}
		if ids[ds.Id] {
			return invalidArgument("Duplicate data source id %q", ds.Id)
		}
		ids[ds.Id] = true
		if ds.Type == v1pb.DataSourceType_ADMIN {
			admins++
		}
	}
	if admins != 1 {
		return invalidArgument("An instance needs exactly one ADMIN data source, got %d", admins)
	}
	return nil
}

func validateDataSource(ds *v1pb.DataSource) error {
	if ds == nil {
		return invalidArgument("data_source is required")
	}
	if ds.Id == "" {
		return invalidArgument("data source id is required")
	}
	if ds.Type != v1pb.DataSourceType_ADMIN && ds.Type != v1pb.DataSourceType_READ_ONLY {
		return invalidArgument("Invalid data source type %s", ds.Type)
	}
	if ds.Host == "" {
		return invalidArgument("data source host is required")
	}
	return nil
}

func (h *GRPCHandlers) UpdateInstance(ctx context.Context, req *v1pb.UpdateInstanceRequest) (*v1pb.Instance, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	if req.Instance == nil {
		return nil, invalidArgument("instance is required")
	}
	what := describe("Instance", req.Instance.Name)
	inst, rec, err := load[v1pb.Instance](ctx, h, store.KindInstance, req.Instance.Name, what)
	if err != nil {
		return nil, err
	}
	if err := requireActive(rec, what); err != nil {
		return nil, err
	}
	if err := applyMask(inst, req.Instance, req.UpdateMask, "title", "environment", "external_link", "activation"); err != nil {
		return nil, err
	}
	if inst.Title == "" {
		return nil, invalidArgument("instance title is required")
	}
	if inMask(req.UpdateMask, "environment") && inst.Environment != "" {
		if err := h.activeEnvironment(ctx, inst.Environment); err != nil {
			return nil, err
		}
	}
	if err := store.Save(ctx, h.store(), rec, inst); err != nil {
		return nil, h.storeError(err, what)
	}
	if inMask(req.UpdateMask, "environment") {
		if err := h.refreshEffectiveEnvironments(ctx, inst); err != nil {
			return nil, err
		}
	}
	return redact(inst), nil
}

// refreshEffectiveEnvironments recomputes the environment of the databases
// inheriting it from inst.
func (h *GRPCHandlers) refreshEffectiveEnvironments(ctx context.Context, inst *v1pb.Instance) error {
	dbs, recs, err := store.LoadAll[v1pb.Database](ctx, h.store(), store.KindDatabase, store.ListOptions{Parent: inst.Name})
	if err != nil {
		return h.storeError(err, "databases")
	}
	for i, db := range dbs {
		effective := dbsync.EffectiveEnvironment(db, inst)
		if effective == db.EffectiveEnvironment {
			continue
		}
		db.EffectiveEnvironment = effective
		if err := store.Save(ctx, h.store(), recs[i], db); err != nil {
			return h.storeError(err, describe("Database", db.Name))
		}
	}
	return nil
}

// DeleteInstance soft deletes an instance. Databases assigned to a project
// keep an instance alive unless force is set, which removes them.
func (h *GRPCHandlers) DeleteInstance(ctx context.Context, req *v1pb.DeleteInstanceRequest) (*emptypb.Empty, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	what := describe("Instance", req.Name)
	inst, rec, err := load[v1pb.Instance](ctx, h, store.KindInstance, req.Name, what)
	if err != nil {
		return nil, err
	}
	dbs, _, err := store.LoadAll[v1pb.Database](ctx, h.store(), store.KindDatabase, store.ListOptions{Parent: inst.Name})
	if err != nil {
		return nil, h.storeError(err, "databases")
	}
	if !req.Force {
		for _, db := range dbs {
			if db.Project != "" {
				return nil, status.Errorf(codes.FailedPrecondition, "Database %q belongs to %q, delete with force to remove it", db.Name, db.Project)
			}
		}
	}
	inst.State = v1pb.State_DELETED
	if err := h.softDelete(ctx, rec, inst, what); err != nil {
		return nil, err
	}
	if req.Force {
		for _, db := range dbs {
			if err := h.store().Delete(ctx, store.KindDatabase, db.Name); err != nil && !errors.Is(err, store.ErrNotFound) {
				return nil, h.storeError(err, describe("Database", db.Name))
			}
		}
	}
	return &emptypb.Empty{}, nil
}

func (h *GRPCHandlers) UndeleteInstance(ctx context.Context, req *v1pb.UndeleteInstanceRequest) (*v1pb.Instance, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	what := describe("Instance", req.Name)
	inst, rec, err := load[v1pb.Instance](ctx, h, store.KindInstance, req.Name, what)
	if err != nil {
		return nil, err
	}
	inst.State = v1pb.State_ACTIVE
	if err := h.undelete(ctx, rec, inst, what); err != nil {
		return nil, err
	}
	return redact(inst), nil
}

func (h *GRPCHandlers) SyncInstance(ctx context.Context, req *v1pb.SyncInstanceRequest) (*v1pb.SyncInstanceResponse, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	dbs, err := h.syncer.SyncInstance(ctx, req.Name)
	switch {
	case err == nil:
		return &v1pb.SyncInstanceResponse{Databases: dbs}, nil
	case errors.Is(err, dbsync.ErrInstanceDeleted), errors.Is(err, dbsync.ErrNoAdminDataSource), errors.Is(err, dbsync.ErrConnection):
		return nil, status.Errorf(codes.FailedPrecondition, "Failed to sync instance %q: %v", req.Name, err)
	}
	return nil, h.storeError(err, describe("Instance", req.Name))
}

// mutateDataSources loads an active instance, applies fn to its data
// sources and saves it after validation.
func (h *GRPCHandlers) mutateDataSources(ctx context.Context, name string, fn func(inst *v1pb.Instance) error) (*v1pb.Instance, error) {
	if _, err := requireWorkspaceWrite(ctx); err != nil {
		return nil, err
	}
	what := describe("Instance", name)
	inst, rec, err := load[v1pb.Instance](ctx, h, store.KindInstance, name, what)
	if err != nil {
		return nil, err
	}
	if err := requireActive(rec, what); err != nil {
		return nil, err
	}
	if err := fn(inst); err != nil {
		return nil, err
	}
	if err := validateDataSources(inst.DataSources); err != nil {
		return nil, err
	}
	if err := store.Save(ctx, h.store(), rec, inst); err != nil {
		return nil, h.storeError(err, what)
	}
	return redact(inst), nil
}

func findDataSource(inst *v1pb.Instance, id string) int {
	return slices.IndexFunc(inst.DataSources, func(ds *v1pb.DataSource) bool { return ds.Id == id })
}

func (h *GRPCHandlers) AddDataSource(ctx context.Context, req *v1pb.AddDataSourceRequest) (*v1pb.Instance, error) {
	if err := validateDataSource(req.DataSource); err != nil {
		return nil, err
	}
	return h.mutateDataSources(ctx, req.Name, func(inst *v1pb.Instance) error {
		if findDataSource(inst, req.DataSource.Id) >= 0 {
			return status.Errorf(codes.AlreadyExists, "Data source %q already exists", req.DataSource.Id)
		}
		inst.DataSources = append(inst.DataSources, wire.Clone(req.DataSource))
		return nil
	})
}

func (h *GRPCHandlers) RemoveDataSource(ctx context.Context, req *v1pb.RemoveDataSourceRequest) (*v1pb.Instance, error) {
	if req.DataSource == nil || req.DataSource.Id == "" {
		return nil, invalidArgument("data source id is required")
	}
	return h.mutateDataSources(ctx, req.Name, func(inst *v1pb.Instance) error {
		i := findDataSource(inst, req.DataSource.Id)
		if i < 0 {
			return status.Errorf(codes.NotFound, "Data source %q not found", req.DataSource.Id)
		}
		if inst.DataSources[i].Type == v1pb.DataSourceType_ADMIN {
			return status.Error(codes.FailedPrecondition, "The ADMIN data source cannot be removed")
		}
		inst.DataSources = slices.Delete(inst.DataSources, i, i+1)
		return nil
	})
}

func (h *GRPCHandlers) UpdateDataSource(ctx context.Context, req *v1pb.UpdateDataSourceRequest) (*v1pb.Instance, error) {
	if req.DataSource == nil || req.DataSource.Id == "" {
		return nil, invalidArgument("data source id is required")
	}
	return h.mutateDataSources(ctx, req.Name, func(inst *v1pb.Instance) error {
		i := findDataSource(inst, req.DataSource.Id)
		if i < 0 {
			return status.Errorf(codes.NotFound, "Data source %q not found", req.DataSource.Id)
		}
		return applyMask(inst.DataSources[i], req.DataSource, req.UpdateMask, "username", "password", "host", "port", "database", "use_ssl")
	})
}
