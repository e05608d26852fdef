package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/metrics"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/server"
	"github.com/idot-digital/dbconsole/internal/wire"
)

// SecretFields are the proto field names redacted from audit logs and API
// output.
var SecretFields = []string{"password", "client_secret", "access_token", "bind_password", "token"}

// PublicMethods may be called without a valid token.
var PublicMethods = []string{
	v1pb.AuthService_Login_FullMethodName,
	v1pb.AuthService_CreateUser_FullMethodName,
}

// AuthInterceptor returns a new unary server interceptor for authentication
func AuthInterceptor(authn *auth.Authenticator, public ...string) grpc.UnaryServerInterceptor {
	publicMethods := make(map[string]bool, len(public))
	for _, m := range public {
		publicMethods[m] = true
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		principal, err := authn.Authenticate(ctx, BearerToken(ctx))
		if err != nil {
			if publicMethods[info.FullMethod] {
				return handler(ctx, req)
			}
			if errors.Is(err, auth.ErrInvalidToken) {
				return nil, status.Error(codes.Unauthenticated, "invalid authorization token")
			}
			return nil, status.Errorf(codes.Internal, "authenticate: %v", err)
		}
		return handler(auth.WithPrincipal(ctx, principal), req)
	}
}

// BearerToken reads the token from the "authorization" metadata, with or
// without the "Bearer " prefix.
func BearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}
	return strings.TrimPrefix(values[0], "Bearer ")
}

// Chain composes interceptors into one, the first being the outermost. The
// REST gateway uses it to run the same chain as the gRPC server.
func Chain(interceptors ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		next := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			interceptor, inner := interceptors[i], next
			next = func(ctx context.Context, req any) (any, error) {
				return interceptor(ctx, req, info, inner)
			}
		}
		return next(ctx, req)
	}
}

// MetricsInterceptor records the count and duration of each RPC.
func MetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		metrics.RPCDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		metrics.RPCRequests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

// AuditInterceptor emits an audit log for every RPC that is not a read.
func AuditInterceptor(srv *server.Server) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !Audited(info.FullMethod) {
			return handler(ctx, req)
		}
		start := time.Now()
		resp, err := handler(ctx, req)
		srv.EmitAuditLog(newAuditLog(ctx, info.FullMethod, req, resp, err, time.Since(start)))
		return resp, err
	}
}

// Audited reports whether calls of fullMethod are written to the audit log.
func Audited(fullMethod string) bool {
	method := fullMethod[strings.LastIndex(fullMethod, "/")+1:]
	for _, prefix := range []string{"Get", "List", "Search"} {
		if strings.HasPrefix(method, prefix) {
			return false
		}
	}
	return true
}

func newAuditLog(ctx context.Context, method string, req, resp any, err error, latency time.Duration) *v1pb.AuditLog {
	log := &v1pb.AuditLog{
		CreateTime: timestamppb.Now(),
		Method:     method,
		Severity:   v1pb.AuditLog_INFO,
		Request:    redactedJSON(req),
		Status:     status.Convert(err).Proto(),
		Latency:    durationpb.New(latency),
	}
	if err != nil {
		log.Severity = v1pb.AuditLog_ERROR
	} else if resp != nil {
		log.Response = redactedJSON(resp)
	}

	if p := auth.PrincipalFrom(ctx); p != nil {
		log.User = p.Name()
	} else if login, ok := req.(*v1pb.LoginRequest); ok && login.Email != "" {
		log.User = models.FormatUser(login.Email)
	}
	log.Resource = auditResource(req, resp)

	id := models.AuditLogIDPrefix + uuid.NewString()
	if project, ok := projectOf(log.Resource); ok {
		log.Name = project + "/" + id
	} else {
		log.Name = id
	}
	return log
}

// auditResource picks the resource name an RPC acted on.
func auditResource(req, resp any) string {
	for _, path := range []string{"name", "parent"} {
		if s, ok := wire.GetString(req, path); ok && s != "" {
			return s
		}
	}
	if s, ok := wire.GetString(resp, "name"); ok {
		return s
	}
	return ""
}

func projectOf(resource string) (string, bool) {
	if !strings.HasPrefix(resource, models.ProjectPrefix) {
		return "", false
	}
	rest := strings.TrimPrefix(resource, models.ProjectPrefix)
	id, _, _ := strings.Cut(rest, "/")
	if id == "" {
		return "", false
	}
	return models.FormatProject(id), true
}

func redactedJSON(m any) string {
	c := wire.CloneAny(m)
	wire.ClearFields(c, SecretFields...)
	b, err := wire.MarshalJSON(c)
	if err != nil {
		return ""
	}
	return string(b)
}
