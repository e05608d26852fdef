package server

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/metrics"
	"github.com/idot-digital/dbconsole/internal/store"
)

// Server holds the state shared by the gRPC and REST handlers
type Server struct {
	store        store.Store
	auth         *auth.Authenticator
	logger       *slog.Logger
	auditChannel chan *v1pb.AuditLog
	closeOnce    sync.Once
	writerDone   chan struct{}
}

func New(s store.Store, authn *auth.Authenticator, auditBufferSize int, logger *slog.Logger) *Server {
	srv := &Server{
		store:        s,
		auth:         authn,
		logger:       logger,
		auditChannel: make(chan *v1pb.AuditLog, auditBufferSize),
		writerDone:   make(chan struct{}),
	}

	go func() {
		defer close(srv.writerDone)
		for log := range srv.auditChannel {
			metrics.AuditLogQueue.Dec()
			srv.writeAuditLog(log)
		}
		logger.Info("Audit log channel closed, writer exiting")
	}()

	return srv
}

func (s *Server) writeAuditLog(log *v1pb.AuditLog) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	parent := ""
	if i := strings.Index(log.Name, "/auditLogs/"); i >= 0 {
		parent = log.Name[:i]
	}
	if _, err := store.Insert(ctx, s.store, store.KindAuditLog, log.Name, parent, log); err != nil {
		metrics.AuditLogsDropped.Inc()
		s.logger.Error("Failed to write audit log", "name", log.Name, "method", log.Method, "error", err)
	}
}

// EmitAuditLog queues log for writing. It never blocks the request: when
// the queue is full the log is dropped and counted.
func (s *Server) EmitAuditLog(log *v1pb.AuditLog) {
	// Counted before the send so the writer's Dec never runs first.
	metrics.AuditLogQueue.Inc()
	select {
	case s.auditChannel <- log:
	default:
		metrics.AuditLogQueue.Dec()
		metrics.AuditLogsDropped.Inc()
		s.logger.Warn("Audit log queue full, dropping log", "method", log.Method)
	}
}

// Close stops accepting audit logs and waits until the queued ones are
// written.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		close(s.auditChannel)
	})
	<-s.writerDone
}

func (s *Server) GetStore() store.Store {
	return s.store
}

func (s *Server) GetAuth() *auth.Authenticator {
	return s.auth
}

func (s *Server) GetLogger() *slog.Logger {
	return s.logger
}
