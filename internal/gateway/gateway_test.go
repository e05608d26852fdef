package gateway

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

type fakeEnvironments struct {
	v1pb.UnimplementedEnvironmentServiceServer
	get    *v1pb.GetEnvironmentRequest
	list   *v1pb.ListEnvironmentsRequest
	update *v1pb.UpdateEnvironmentRequest
}

func (f *fakeEnvironments) GetEnvironment(_ context.Context, req *v1pb.GetEnvironmentRequest) (*v1pb.Environment, error) {
	f.get = req
	if req.Name == "environments/missing" {
		return nil, status.Error(codes.NotFound, "environment not found")
	}
	return &v1pb.Environment{Name: req.Name, Title: "Prod", Order: 2}, nil
}

func (f *fakeEnvironments) ListEnvironments(_ context.Context, req *v1pb.ListEnvironmentsRequest) (*v1pb.ListEnvironmentsResponse, error) {
	f.list = req
	return &v1pb.ListEnvironmentsResponse{}, nil
}

func (f *fakeEnvironments) UpdateEnvironment(_ context.Context, req *v1pb.UpdateEnvironmentRequest) (*v1pb.Environment, error) {
	f.update = req
	return req.Environment, nil
}

func newTestGateway(t *testing.T, interceptor grpc.UnaryServerInterceptor) (*Gateway, *fakeEnvironments) {
	t.Helper()
	g := New(interceptor, slog.New(slog.NewTextHandler(io.Discard, nil)))
	fake := &fakeEnvironments{}
	require.NoError(t, g.Register(&v1pb.EnvironmentService_ServiceDesc, fake, v1pb.EnvironmentService_HTTPRules))
	return g, fake
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, r))
	return rec
}

func TestTemplate(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/v1/environments", "/v1/environments"},
		{"/v1/{name=environments/*}", "/v1/{name:environments/[^/:]+}"},
		{"/v1/{name=environments/*}:undelete", "/v1/{name:environments/[^/:]+}:undelete"},
		{"/v1/{parent=instances/*/databases/*}/policies", "/v1/{parent:instances/[^/:]+/databases/[^/:]+}/policies"},
		{"/v1/{name}", "/v1/{name:[^/:]+}"},
		{"/v1/{path=files/**}", "/v1/{path:files/.+}"},
	}
	for _, tt := range tests {
		got, err := Template(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got)
	}

	_, err := Template("/v1/{name=environments/*")
	assert.Error(t, err)
}

func TestPathVariables(t *testing.T) {
	g, fake := newTestGateway(t, nil)

	rec := do(t, g, http.MethodGet, "/v1/environments/prod", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "environments/prod", fake.get.Name)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "environments/prod", got["name"])
	assert.Equal(t, "Prod", got["title"])
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestQueryParameters(t *testing.T) {
	g, fake := newTestGateway(t, nil)

	rec := do(t, g, http.MethodGet, "/v1/environments?page_size=5&showDeleted=true&page_token=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(5), fake.list.PageSize)
	assert.True(t, fake.list.ShowDeleted)
	assert.Equal(t, "abc", fake.list.PageToken)

	rec = do(t, g, http.MethodGet, "/v1/environments?bogus=1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, g, http.MethodGet, "/v1/environments?page_size=many", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBodyField(t *testing.T) {
	g, fake := newTestGateway(t, nil)

	rec := do(t, g, http.MethodPatch, "/v1/environments/prod?update_mask=title,order", `{"title": "Production", "order": 3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "environments/prod", fake.update.Environment.Name)
	assert.Equal(t, "Production", fake.update.Environment.Title)
	assert.Equal(t, int32(3), fake.update.Environment.Order)
	assert.Equal(t, []string{"title", "order"}, fake.update.UpdateMask.GetPaths())

	rec = do(t, g, http.MethodPatch, "/v1/environments/prod", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBodyTooLarge(t *testing.T) {
	g, fake := newTestGateway(t, nil)
	g.maxBody = 64

	rec := do(t, g, http.MethodPatch, "/v1/environments/prod", `{"title": "`+strings.Repeat("x", 100)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var st map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "request body exceeds the 64 B limit", st["message"])
	assert.Nil(t, fake.update)

	rec = do(t, g, http.MethodPatch, "/v1/environments/prod", `{"title": "ok"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestErrors(t *testing.T) {
	g, _ := newTestGateway(t, nil)

	rec := do(t, g, http.MethodGet, "/v1/environments/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var st map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "environment not found", st["message"])
	assert.EqualValues(t, codes.NotFound, st["code"])

	rec = do(t, g, http.MethodDelete, "/v1/environments/prod", "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = do(t, g, http.MethodPut, "/v1/environments/prod", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(t, g, http.MethodGet, "/v1/environments/prod/extra", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInterceptorAndHooks(t *testing.T) {
	var methods []string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		methods = append(methods, info.FullMethod)
		if _, ok := req.(*v1pb.ListEnvironmentsRequest); ok {
			return nil, status.Error(codes.PermissionDenied, "denied")
		}
		return handler(ctx, req)
	}
	g, _ := newTestGateway(t, interceptor)
	g.OnResponse(v1pb.EnvironmentService_GetEnvironment_FullMethodName, func(w http.ResponseWriter, req, resp any) {
		w.Header().Set("X-Environment", resp.(*v1pb.Environment).Name)
	})

	rec := do(t, g, http.MethodGet, "/v1/environments/prod", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "environments/prod", rec.Header().Get("X-Environment"))

	rec = do(t, g, http.MethodGet, "/v1/environments", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	assert.Equal(t, []string{
		v1pb.EnvironmentService_GetEnvironment_FullMethodName,
		v1pb.EnvironmentService_ListEnvironments_FullMethodName,
	}, methods)
}

func TestRegisterUnknownMethod(t *testing.T) {
	g := New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := g.Register(&v1pb.EnvironmentService_ServiceDesc, &fakeEnvironments{}, []v1pb.HTTPRule{{Method: "Nope", Verb: "GET", Path: "/v1/nope"}})
	assert.Error(t, err)
}

func TestHTTPStatusFromCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatusFromCode(codes.AlreadyExists))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusFromCode(codes.FailedPrecondition))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatusFromCode(codes.Unauthenticated))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromCode(codes.DataLoss))
}
