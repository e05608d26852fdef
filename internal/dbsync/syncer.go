// Package dbsync reads the databases of registered instances into the store
// and records connection anomalies.
package dbsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/metrics"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/store"
)

var (
	ErrUnsupportedEngine = errors.New("engine is not supported")
	ErrNoAdminDataSource = errors.New("instance has no admin data source")
	ErrInstanceDeleted   = errors.New("instance is deleted")
	// ErrConnection wraps failures to reach the instance.
	ErrConnection = errors.New("cannot connect to instance")
)

// Syncer synchronizes instances with the store.
type Syncer struct {
	store       store.Store
	connect     Connector
	logger      *slog.Logger
	concurrency int
}

func New(s store.Store, connect Connector, logger *slog.Logger) *Syncer {
	if connect == nil {
		connect = Connect
	}
	return &Syncer{store: s, connect: connect, logger: logger, concurrency: 4}
}

// AdminDataSource returns the data source used for syncing.
func AdminDataSource(inst *v1pb.Instance) *v1pb.DataSource {
	for _, ds := range inst.DataSources {
		if ds.Type == v1pb.DataSourceType_ADMIN {
			return ds
		}
	}
	return nil
}

// SyncInstance connects to the instance and upserts its databases. It
// returns the names of the databases found.
func (s *Syncer) SyncInstance(ctx context.Context, name string) ([]string, error) {
	inst, rec, err := store.Load[v1pb.Instance](ctx, s.store, store.KindInstance, name)
	if err != nil {
		return nil, err
	}
	if rec.Deleted {
		return nil, ErrInstanceDeleted
	}
	ds := AdminDataSource(inst)
	if ds == nil {
		return nil, ErrNoAdminDataSource
	}

	version, dbNames, err := s.read(ctx, inst, ds)
	if err != nil {
		metrics.InstanceSyncs.WithLabelValues(inst.Engine.String(), "error").Inc()
		if aerr := s.raise(ctx, name, name, v1pb.Anomaly_INSTANCE_CONNECTION, v1pb.Anomaly_CRITICAL, err.Error()); aerr != nil {
			s.logger.Error("Failed to record anomaly", "instance", name, "error", aerr)
		}
		s.refreshAnomalyGauge(ctx)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	metrics.InstanceSyncs.WithLabelValues(inst.Engine.String(), "ok").Inc()
	if err := s.resolve(ctx, name, v1pb.Anomaly_INSTANCE_CONNECTION); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inst.EngineVersion = version
	inst.LastSyncTime = timestamppb.New(now)
	if err := store.Save(ctx, s.store, rec, inst); err != nil {
		return nil, fmt.Errorf("save instance: %w", err)
	}

	synced, err := s.upsertDatabases(ctx, inst, dbNames, now)
	s.refreshAnomalyGauge(ctx)
	if err != nil {
		return nil, err
	}
	return synced, nil
}

// Ping checks that ds can be connected to, as before an instance is
// created.
func (s *Syncer) Ping(ctx context.Context, engine v1pb.Engine, ds *v1pb.DataSource) error {
	driver, err := s.connect(ctx, engine, ds)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer driver.Close()
	if _, err := driver.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

func (s *Syncer) read(ctx context.Context, inst *v1pb.Instance, ds *v1pb.DataSource) (string, []string, error) {
	driver, err := s.connect(ctx, inst.Engine, ds)
	if err != nil {
		return "", nil, err
	}
	defer driver.Close()
	version, err := driver.Version(ctx)
	if err != nil {
		return "", nil, err
	}
	names, err := driver.Databases(ctx)
	if err != nil {
		return "", nil, err
	}
	return version, names, nil
}

func (s *Syncer) upsertDatabases(ctx context.Context, inst *v1pb.Instance, dbNames []string, now time.Time) ([]string, error) {
	instanceID, err := models.InstanceID(inst.Name)
	if err != nil {
		return nil, err
	}
	existing, recs, err := store.LoadAll[v1pb.Database](ctx, s.store, store.KindDatabase, store.ListOptions{Parent: inst.Name})
	if err != nil {
		return nil, err
	}
	known := make(map[string]int, len(existing))
	for i, db := range existing {
		known[db.Name] = i
	}

	synced := make([]string, 0, len(dbNames))
	found := make(map[string]bool, len(dbNames))
	for _, dbName := range dbNames {
		name := models.FormatDatabase(instanceID, dbName)
		found[name] = true
		synced = append(synced, name)

		if i, ok := known[name]; ok {
			db := existing[i]
			db.SyncState = v1pb.SyncState_OK
			db.SuccessfulSyncTime = timestamppb.New(now)
			db.EffectiveEnvironment = EffectiveEnvironment(db, inst)
			if err := store.Save(ctx, s.store, recs[i], db); err != nil {
				return nil, fmt.Errorf("save database %s: %w", name, err)
			}
		} else {
			db := &v1pb.Database{
				Name:                 name,
				SyncState:            v1pb.SyncState_OK,
				SuccessfulSyncTime:   timestamppb.New(now),
				EffectiveEnvironment: inst.Environment,
			}
			if _, err := store.Insert(ctx, s.store, store.KindDatabase, name, inst.Name, db); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
				return nil, fmt.Errorf("create database %s: %w", name, err)
			}
		}
		if err := s.resolve(ctx, name, v1pb.Anomaly_DATABASE_CONNECTION); err != nil {
			return nil, err
		}
	}

	for i, db := range existing {
		if found[db.Name] || db.SyncState == v1pb.SyncState_NOT_FOUND {
			continue
		}
		db.SyncState = v1pb.SyncState_NOT_FOUND
		if err := store.Save(ctx, s.store, recs[i], db); err != nil {
			return nil, fmt.Errorf("save database %s: %w", db.Name, err)
		}
		detail := fmt.Sprintf("database %s no longer exists on instance %s", db.Name, inst.Name)
		if err := s.raise(ctx, db.Name, inst.Name, v1pb.Anomaly_DATABASE_CONNECTION, v1pb.Anomaly_HIGH, detail); err != nil {
			return nil, err
		}
	}
	return synced, nil
}

// EffectiveEnvironment is the database's own environment, or the instance's
// when the database has none.
func EffectiveEnvironment(db *v1pb.Database, inst *v1pb.Instance) string {
	if db.Environment != "" {
		return db.Environment
	}
	if inst != nil {
		return inst.Environment
	}
	return ""
}

// AnomalyName is the store key of the anomaly of a type on a resource.
func AnomalyName(resource string, typ v1pb.Anomaly_AnomalyType) string {
	return resource + "/anomalies/" + strings.ToLower(typ.String())
}

// raise records an anomaly, refreshing the update time of an open one.
func (s *Syncer) raise(ctx context.Context, resource, parent string, typ v1pb.Anomaly_AnomalyType, severity v1pb.Anomaly_AnomalySeverity, detail string) error {
	now := timestamppb.Now()
	name := AnomalyName(resource, typ)
	anomaly, rec, err := store.Load[v1pb.Anomaly](ctx, s.store, store.KindAnomaly, name)
	if errors.Is(err, store.ErrNotFound) {
		anomaly = &v1pb.Anomaly{Resource: resource, Type: typ, CreateTime: now}
	} else if err != nil {
		return err
	}
	anomaly.Severity = severity
	anomaly.UpdateTime = now
	switch typ {
	case v1pb.Anomaly_INSTANCE_CONNECTION:
		anomaly.InstanceConnectionDetail = &v1pb.Anomaly_InstanceConnectionDetail{Detail: detail}
	case v1pb.Anomaly_DATABASE_CONNECTION:
		anomaly.DatabaseConnectionDetail = &v1pb.Anomaly_DatabaseConnectionDetail{Detail: detail}
	}
	if rec == nil {
		_, err = store.Insert(ctx, s.store, store.KindAnomaly, name, parent, anomaly)
		return err
	}
	return store.Save(ctx, s.store, rec, anomaly)
}

func (s *Syncer) resolve(ctx context.Context, resource string, typ v1pb.Anomaly_AnomalyType) error {
	err := s.store.Delete(ctx, store.KindAnomaly, AnomalyName(resource, typ))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func (s *Syncer) refreshAnomalyGauge(ctx context.Context) {
	anomalies, _, err := store.LoadAll[v1pb.Anomaly](ctx, s.store, store.KindAnomaly, store.ListOptions{})
	if err != nil {
		s.logger.Warn("Failed to count anomalies", "error", err)
		return
	}
	counts := map[string]float64{}
	for typ := range v1pb.Anomaly_AnomalyType_value {
		counts[typ] = 0
	}
	for _, a := range anomalies {
		counts[a.Type.String()]++
	}
	for typ, n := range counts {
		metrics.OpenAnomalies.WithLabelValues(typ).Set(n)
	}
}

// SyncAll syncs every active instance. Failures are logged and do not stop
// the other instances.
func (s *Syncer) SyncAll(ctx context.Context) error {
	instances, recs, err := store.LoadAll[v1pb.Instance](ctx, s.store, store.KindInstance, store.ListOptions{})
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, inst := range instances {
		if recs[i].Deleted || AdminDataSource(inst) == nil {
			continue
		}
		name := inst.Name
		g.Go(func() error {
			dbs, err := s.SyncInstance(ctx, name)
			if err != nil {
				s.logger.Warn("Failed to sync instance", "instance", name, "error", err)
				return nil
			}
			s.logger.Info("Synced instance", "instance", name, "databases", len(dbs))
			return nil
		})
	}
	return g.Wait()
}

// Run syncs all instances every interval until ctx is done. A non-positive
// interval disables periodic syncs; Run then only waits for ctx.
func (s *Syncer) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		s.logger.Info("Periodic instance sync disabled")
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.SyncAll(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error("Failed to sync instances", "error", err)
			}
		}
	}
}
