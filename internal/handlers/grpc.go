package handlers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/dbsync"
	"github.com/idot-digital/dbconsole/internal/filter"
	"github.com/idot-digital/dbconsole/internal/idp"
	"github.com/idot-digital/dbconsole/internal/middleware"
	"github.com/idot-digital/dbconsole/internal/paging"
	"github.com/idot-digital/dbconsole/internal/server"
	"github.com/idot-digital/dbconsole/internal/store"
	"github.com/idot-digital/dbconsole/internal/vcs"
	"github.com/idot-digital/dbconsole/internal/wire"
)

// GRPCHandlers implements every dbconsole.v1 service.
type GRPCHandlers struct {
	server      *server.Server
	syncer      *dbsync.Syncer
	externalURL string

	connectIdP func(ctx context.Context, p *v1pb.IdentityProvider, redirectURL string) (idp.Provider, error)
	connectVCS func(ctx context.Context, p *v1pb.VCSProvider) (vcs.Provider, error)
}

func NewGRPCHandlers(s *server.Server, syncer *dbsync.Syncer, externalURL string) *GRPCHandlers {
	return &GRPCHandlers{
		server:      s,
		syncer:      syncer,
		externalURL: strings.TrimSuffix(externalURL, "/"),
		connectIdP:  idp.New,
		connectVCS:  vcs.New,
	}
}

// Service is a service implemented by GRPCHandlers with its REST bindings.
type Service struct {
	Desc  *grpc.ServiceDesc
	Rules []v1pb.HTTPRule
}

var Services = []Service{
	{&v1pb.AuditLogService_ServiceDesc, v1pb.AuditLogService_HTTPRules},
	{&v1pb.AnomalyService_ServiceDesc, v1pb.AnomalyService_HTTPRules},
	{&v1pb.AuthService_ServiceDesc, v1pb.AuthService_HTTPRules},
	{&v1pb.EnvironmentService_ServiceDesc, v1pb.EnvironmentService_HTTPRules},
	{&v1pb.InstanceService_ServiceDesc, v1pb.InstanceService_HTTPRules},
	{&v1pb.DatabaseService_ServiceDesc, v1pb.DatabaseService_HTTPRules},
	{&v1pb.IdentityProviderService_ServiceDesc, v1pb.IdentityProviderService_HTTPRules},
	{&v1pb.OrgPolicyService_ServiceDesc, v1pb.OrgPolicyService_HTTPRules},
	{&v1pb.ReviewConfigService_ServiceDesc, v1pb.ReviewConfigService_HTTPRules},
	{&v1pb.ReleaseService_ServiceDesc, v1pb.ReleaseService_HTTPRules},
	{&v1pb.VCSProviderService_ServiceDesc, v1pb.VCSProviderService_HTTPRules},
	{&v1pb.VCSConnectorService_ServiceDesc, v1pb.VCSConnectorService_HTTPRules},
}

// Register registers every service on s.
func (h *GRPCHandlers) Register(s grpc.ServiceRegistrar) {
	for _, svc := range Services {
		s.RegisterService(svc.Desc, h)
	}
}

func (h *GRPCHandlers) store() store.Store {
	return h.server.GetStore()
}

// storeError maps a store failure to a gRPC status. Unexpected errors are
// logged and hidden from the caller.
func (h *GRPCHandlers) storeError(err error, what string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s not found", what)
	case errors.Is(err, store.ErrAlreadyExists):
		return status.Errorf(codes.AlreadyExists, "%s already exists", what)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "Request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "Request timed out")
	}
	h.server.GetLogger().Error("Store operation failed", "resource", what, "error", err)
	return status.Errorf(codes.Internal, "Failed to access %s", what)
}

func invalidArgument(format string, args ...any) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

// requireRole fails unless the caller holds one of roles.
func requireRole(ctx context.Context, roles ...string) (*auth.Principal, error) {
	p := auth.PrincipalFrom(ctx)
	if p == nil {
		return nil, status.Error(codes.Unauthenticated, "Authentication required")
	}
	if !p.HasRole(roles...) {
		return nil, status.Errorf(codes.PermissionDenied, "Permission denied, requires one of %s", strings.Join(roles, ", "))
	}
	return p, nil
}

// requireWorkspaceWrite guards changes to workspace settings.
func requireWorkspaceWrite(ctx context.Context) (*auth.Principal, error) {
	return requireRole(ctx, auth.RoleWorkspaceAdmin, auth.RoleWorkspaceDBA)
}

// requireSignedIn allows any authenticated caller.
func requireSignedIn(ctx context.Context) (*auth.Principal, error) {
	return requireRole(ctx, auth.RoleWorkspaceAdmin, auth.RoleWorkspaceDBA, auth.RoleWorkspaceMember)
}

// creator is the users/{email} name recorded on created resources.
func creator(p *auth.Principal) string {
	if p == nil {
		return ""
	}
	return p.Name()
}

func parsePage(pageSize int32, pageToken string) (paging.Page, error) {
	p, err := paging.Parse(pageSize, pageToken)
	if err != nil {
		return paging.Page{}, invalidArgument("%v", err)
	}
	return p, nil
}

// parseFilter compiles a filter over messages of sample's type. Label keys
// are free form below "labels.".
func parseFilter(s string, sample any) (*filter.Expr, error) {
	expr, err := filter.Parse(s)
	if err != nil {
		return nil, invalidArgument("Invalid filter: %v", err)
	}
	err = expr.Validate(func(path string) bool {
		if rest, ok := strings.CutPrefix(path, "labels."); ok && rest != "" {
			return wire.HasField(sample, "labels")
		}
		return wire.HasField(sample, path)
	})
	if err != nil {
		return nil, invalidArgument("Invalid filter: %v", err)
	}
	return expr, nil
}

// matching keeps the items expr accepts.
func matching[T any](expr *filter.Expr, items []*T) ([]*T, error) {
	if expr == nil {
		return items, nil
	}
	out := make([]*T, 0, len(items))
	for _, item := range items {
		ok, err := expr.Match(item)
		if err != nil {
			return nil, invalidArgument("Invalid filter: %v", err)
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// listMatching loads every message of kind, applies the filter expression s
// and returns the requested page.
func listMatching[T any](ctx context.Context, h *GRPCHandlers, kind store.Kind, opts store.ListOptions, s string, pageSize int32, pageToken string) ([]*T, string, error) {
	page, err := parsePage(pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}
	expr, err := parseFilter(s, new(T))
	if err != nil {
		return nil, "", err
	}
	items, _, err := store.LoadAll[T](ctx, h.store(), kind, opts)
	if err != nil {
		return nil, "", h.storeError(err, string(kind))
	}
	items, err = matching(expr, items)
	if err != nil {
		return nil, "", err
	}
	items, next := paging.Slice(items, page)
	return items, next, nil
}

// load fetches one message, mapping store errors.
func load[T any](ctx context.Context, h *GRPCHandlers, kind store.Kind, name, what string) (*T, *store.Record, error) {
	m, rec, err := store.Load[T](ctx, h.store(), kind, name)
	if err != nil {
		return nil, nil, h.storeError(err, what)
	}
	return m, rec, nil
}

// applyMask copies the masked fields of src into dst. Only paths in
// mutable, or below one of them, may be updated.
func applyMask(dst, src any, mask *fieldmaskpb.FieldMask, mutable ...string) error {
	if len(mask.GetPaths()) == 0 {
		return invalidArgument("update_mask is required")
	}
	for _, path := range mask.GetPaths() {
		top, _, _ := strings.Cut(path, ".")
		if !slices.Contains(mutable, top) {
			return invalidArgument("Field %q cannot be updated, updatable fields are %s", path, strings.Join(mutable, ", "))
		}
	}
	if err := wire.Merge(dst, src, mask.GetPaths()); err != nil {
		return invalidArgument("Invalid update_mask: %v", err)
	}
	return nil
}

// inMask reports whether the mask names field.
func inMask(mask *fieldmaskpb.FieldMask, field string) bool {
	for _, path := range mask.GetPaths() {
		if path == field || strings.HasPrefix(path, field+".") {
			return true
		}
	}
	return false
}

// redact returns a copy of m with input only secrets cleared.
func redact[T any](m *T) *T {
	c := wire.Clone(m)
	wire.ClearFields(c, middleware.SecretFields...)
	return c
}

func redactAll[T any](items []*T) []*T {
	out := make([]*T, len(items))
	for i, m := range items {
		out[i] = redact(m)
	}
	return out
}

// softDelete marks rec deleted and saves m, whose state the caller has
// already set.
func (h *GRPCHandlers) softDelete(ctx context.Context, rec *store.Record, m any, what string) error {
	if rec.Deleted {
		return status.Errorf(codes.FailedPrecondition, "%s is already deleted", what)
	}
	rec.Deleted = true
	if err := store.Save(ctx, h.store(), rec, m); err != nil {
		return h.storeError(err, what)
	}
	return nil
}

func (h *GRPCHandlers) undelete(ctx context.Context, rec *store.Record, m any, what string) error {
	if !rec.Deleted {
		return status.Errorf(codes.FailedPrecondition, "%s is not deleted", what)
	}
	rec.Deleted = false
	if err := store.Save(ctx, h.store(), rec, m); err != nil {
		return h.storeError(err, what)
	}
	return nil
}

func requireActive(rec *store.Record, what string) error {
	if rec.Deleted {
		return status.Errorf(codes.FailedPrecondition, "%s is deleted", what)
	}
	return nil
}

// describe names a resource in status messages.
func describe(kind, name string) string {
	return fmt.Sprintf("%s %q", kind, name)
}
