package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/metrics"
	"github.com/idot-digital/dbconsole/internal/store"
)

func TestCloseFlushesAuditLogs(t *testing.T) {
	st := store.NewMemory()
	srv := New(st, nil, 8, slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv.EmitAuditLog(&v1pb.AuditLog{Name: "auditLogs/a", Method: "/dbconsole.v1.AuthService/Login"})
	srv.EmitAuditLog(&v1pb.AuditLog{Name: "projects/shop/auditLogs/b", Method: "/dbconsole.v1.ReleaseService/CreateRelease"})
	srv.Close()
	srv.Close()

	ctx := context.Background()
	recs, err := st.List(ctx, store.KindAuditLog, store.ListOptions{})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	recs, err = st.List(ctx, store.KindAuditLog, store.ListOptions{Parent: "projects/shop"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "projects/shop/auditLogs/b", recs[0].Name)

	log, _, err := store.Load[v1pb.AuditLog](ctx, st, store.KindAuditLog, "auditLogs/a")
	require.NoError(t, err)
	assert.Equal(t, "/dbconsole.v1.AuthService/Login", log.Method)
}

func TestEmitAuditLogDropsWhenFull(t *testing.T) {
	srv := &Server{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		auditChannel: make(chan *v1pb.AuditLog, 1),
	}
	before := queueDepth(t)
	srv.EmitAuditLog(&v1pb.AuditLog{Name: "auditLogs/a"})
	srv.EmitAuditLog(&v1pb.AuditLog{Name: "auditLogs/b"})

	assert.Len(t, srv.auditChannel, 1)
	assert.Equal(t, before+1, queueDepth(t), "dropped logs are not counted as queued")
	assert.Equal(t, "auditLogs/a", (<-srv.auditChannel).Name)
	metrics.AuditLogQueue.Dec()
}

func TestAuditQueueGaugeNeverNegative(t *testing.T) {
	st := store.NewMemory()
	before := queueDepth(t)
	srv := New(st, nil, 4, slog.New(slog.NewTextHandler(io.Discard, nil)))

	for i := range 50 {
		srv.EmitAuditLog(&v1pb.AuditLog{Name: fmt.Sprintf("auditLogs/%d", i)})
		assert.GreaterOrEqual(t, queueDepth(t), before)
	}
	srv.Close()
	assert.Equal(t, before, queueDepth(t))
}

func queueDepth(t *testing.T) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, metrics.AuditLogQueue.Write(&m))
	return m.GetGauge().GetValue()
}
