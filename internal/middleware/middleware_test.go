package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/store"
)

func TestBearerToken(t *testing.T) {
	assert.Empty(t, BearerToken(context.Background()))

	for _, v := range []string{"Bearer abc", "abc"} {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", v))
		assert.Equal(t, "abc", BearerToken(ctx), v)
	}
}

func TestAuthForwardsToken(t *testing.T) {
	var got string
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = BearerToken(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/environments", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "header-token", got)

	req = httptest.NewRequest(http.MethodGet, "/v1/environments", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "cookie-token", got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/environments", nil))
	assert.Empty(t, got)
}

func TestAudited(t *testing.T) {
	assert.True(t, Audited(v1pb.EnvironmentService_CreateEnvironment_FullMethodName))
	assert.True(t, Audited(v1pb.AuthService_Login_FullMethodName))
	assert.False(t, Audited(v1pb.InstanceService_ListInstances_FullMethodName))
	assert.False(t, Audited(v1pb.AuditLogService_SearchAuditLogs_FullMethodName))
}

func TestChainOrder(t *testing.T) {
	var calls []string
	tag := func(name string) grpc.UnaryServerInterceptor {
		return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			calls = append(calls, name+">")
			resp, err := handler(ctx, req)
			calls = append(calls, "<"+name)
			return resp, err
		}
	}
	chain := Chain(tag("a"), tag("b"))
	resp, err := chain(context.Background(), "req", &grpc.UnaryServerInfo{}, func(ctx context.Context, req any) (any, error) {
		calls = append(calls, "handler")
		return req.(string) + "!", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req!", resp)
	assert.Equal(t, []string{"a>", "b>", "handler", "<b", "<a"}, calls)
}

func TestAuthInterceptor(t *testing.T) {
	authn := auth.NewAuthenticator(store.NewMemory(), auth.NewMemorySessions(), "service-token", time.Hour)
	interceptor := AuthInterceptor(authn, PublicMethods...)

	var principal *auth.Principal
	handler := func(ctx context.Context, req any) (any, error) {
		principal = auth.PrincipalFrom(ctx)
		return "ok", nil
	}
	call := func(method, token string) error {
		principal = nil
		ctx := context.Background()
		if token != "" {
			ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", "Bearer "+token))
		}
		_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
		return err
	}

	err := call(v1pb.EnvironmentService_CreateEnvironment_FullMethodName, "")
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	err = call(v1pb.EnvironmentService_CreateEnvironment_FullMethodName, "bogus")
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	require.NoError(t, call(v1pb.AuthService_Login_FullMethodName, ""))
	assert.Nil(t, principal, "public methods run anonymously")

	require.NoError(t, call(v1pb.EnvironmentService_CreateEnvironment_FullMethodName, "service-token"))
	require.NotNil(t, principal)
	assert.True(t, principal.System)
}

func TestNewAuditLog(t *testing.T) {
	ctx := context.Background()
	method := v1pb.AuthService_Login_FullMethodName
	req := &v1pb.LoginRequest{Email: "ada@example.com", Password: "hunter2"}
	resp := &v1pb.LoginResponse{Token: "session-token", User: &v1pb.User{Name: "users/ada@example.com"}}

	log := newAuditLog(ctx, method, req, resp, nil, time.Millisecond)
	assert.True(t, strings.HasPrefix(log.Name, "auditLogs/"), log.Name)
	assert.Equal(t, "users/ada@example.com", log.User)
	assert.Empty(t, log.Resource)
	assert.Equal(t, v1pb.AuditLog_INFO, log.Severity)
	assert.NotContains(t, log.Request, "hunter2")
	assert.NotContains(t, log.Response, "session-token")
	assert.Equal(t, "hunter2", req.Password, "the request itself is untouched")

	ctx = auth.WithPrincipal(ctx, &auth.Principal{Email: "bob@example.com"})
	log = newAuditLog(ctx, v1pb.ReleaseService_CreateRelease_FullMethodName,
		&v1pb.CreateReleaseRequest{Parent: "projects/shop"}, nil, status.Error(codes.InvalidArgument, "bad"), time.Millisecond)
	assert.True(t, strings.HasPrefix(log.Name, "projects/shop/auditLogs/"), log.Name)
	assert.Equal(t, "users/bob@example.com", log.User)
	assert.Equal(t, v1pb.AuditLog_ERROR, log.Severity)
	assert.Empty(t, log.Response)
	assert.Equal(t, int32(codes.InvalidArgument), log.Status.Code)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/instances", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "HTTP request", line["msg"])
	assert.Equal(t, "/v1/instances", line["path"])
	assert.EqualValues(t, http.StatusBadGateway, line["status"])
}

func TestResponseWriterHijack(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _, err := rw.Hijack()
	assert.ErrorContains(t, err, "does not implement http.Hijacker")
}
