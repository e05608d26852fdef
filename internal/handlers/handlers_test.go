package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/client"
	"github.com/idot-digital/dbconsole/internal/dbsync"
	"github.com/idot-digital/dbconsole/internal/middleware"
	"github.com/idot-digital/dbconsole/internal/server"
	"github.com/idot-digital/dbconsole/internal/store"
)

const serviceToken = "service-token"

type fakeDriver struct {
	version   string
	databases []string
}

func (d *fakeDriver) Version(context.Context) (string, error)     { return d.version, nil }
func (d *fakeDriver) Databases(context.Context) ([]string, error) { return d.databases, nil }
func (d *fakeDriver) Close() error                                { return nil }

// fakeInstances serves drivers keyed by data source host.
type fakeInstances struct {
	mu      sync.Mutex
	drivers map[string]*fakeDriver
}

func (f *fakeInstances) connect(_ context.Context, _ v1pb.Engine, ds *v1pb.DataSource) (dbsync.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drivers[ds.Host]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return d, nil
}

func (f *fakeInstances) set(host string, d *fakeDriver) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drivers[host] = d
}

type testEnv struct {
	*client.Client
	server    *server.Server
	handlers  *GRPCHandlers
	chain     grpc.UnaryServerInterceptor
	instances *fakeInstances
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.NewMemory()
	authn := auth.NewAuthenticator(st, auth.NewMemorySessions(), serviceToken, time.Hour)
	srv := server.New(st, authn, 100, logger)
	fake := &fakeInstances{drivers: map[string]*fakeDriver{}}
	h := NewGRPCHandlers(srv, dbsync.New(st, fake.connect, logger), "http://console.test")

	chain := middleware.Chain(
		middleware.AuthInterceptor(authn, middleware.PublicMethods...),
		middleware.AuditInterceptor(srv),
	)
	s := grpc.NewServer(grpc.UnaryInterceptor(chain))
	h.Register(s)
	lis := bufconn.Listen(1 << 20)
	go s.Serve(lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		s.Stop()
		srv.Close()
	})
	return &testEnv{Client: client.New(conn), server: srv, handlers: h, chain: chain, instances: fake}
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

// signUp creates a user and logs in as them. The first user signs up
// anonymously; later ones are created by the service account.
func (e *testEnv) signUp(t *testing.T, email string, roles ...string) context.Context {
	t.Helper()
	_, err := e.Auth.CreateUser(withToken(serviceToken), &v1pb.CreateUserRequest{
		User: &v1pb.User{Email: email, Password: "secret-" + email, Roles: roles},
	})
	require.NoError(t, err)
	resp, err := e.Auth.Login(context.Background(), &v1pb.LoginRequest{Email: email, Password: "secret-" + email})
	require.NoError(t, err)
	return withToken(resp.Token)
}

func (e *testEnv) createEnvironment(t *testing.T, ctx context.Context, id string, order int32) {
	t.Helper()
	_, err := e.Environments.CreateEnvironment(ctx, &v1pb.CreateEnvironmentRequest{
		EnvironmentId: id,
		Environment:   &v1pb.Environment{Title: id, Order: order},
	})
	require.NoError(t, err)
}

func (e *testEnv) createInstance(t *testing.T, ctx context.Context, id, host, environment string) *v1pb.Instance {
	t.Helper()
	inst, err := e.Instances.CreateInstance(ctx, &v1pb.CreateInstanceRequest{
		InstanceId: id,
		Instance: &v1pb.Instance{
			Title:       id,
			Engine:      v1pb.Engine_MYSQL,
			Environment: environment,
			DataSources: []*v1pb.DataSource{{Id: "admin", Type: v1pb.DataSourceType_ADMIN, Host: host, Port: "3306", Username: "root", Password: "hunter2"}},
		},
	})
	require.NoError(t, err)
	return inst
}

func requireCode(t *testing.T, want codes.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err), err.Error())
}

func TestFirstUserBecomesAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.Auth.CreateUser(ctx, &v1pb.CreateUserRequest{
		User: &v1pb.User{Email: "Ada@Example.com", Password: "pw", Roles: []string{auth.RoleWorkspaceMember}},
	})
	require.NoError(t, err)
	assert.Equal(t, "users/ada@example.com", user.Name)
	assert.Equal(t, []string{auth.RoleWorkspaceAdmin}, user.Roles)
	assert.Equal(t, "ada", user.Title)
	assert.Empty(t, user.Password)

	_, err = env.Auth.CreateUser(ctx, &v1pb.CreateUserRequest{User: &v1pb.User{Email: "bob@example.com", Password: "pw"}})
	requireCode(t, codes.Unauthenticated, err)

	resp, err := env.Auth.Login(ctx, &v1pb.LoginRequest{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	admin := withToken(resp.Token)
	bob, err := env.Auth.CreateUser(admin, &v1pb.CreateUserRequest{User: &v1pb.User{Email: "bob@example.com", Password: "pw"}})
	require.NoError(t, err)
	assert.Equal(t, []string{auth.RoleWorkspaceMember}, bob.Roles)
}

func TestOnlyOneConcurrentSignUpBecomesAdmin(t *testing.T) {
	env := newTestEnv(t)

	const n = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created []*v1pb.User
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := env.Auth.CreateUser(context.Background(), &v1pb.CreateUserRequest{
				User: &v1pb.User{Email: fmt.Sprintf("user%d@example.com", i), Password: "pw"},
			})
			if err != nil {
				assert.Equal(t, codes.Unauthenticated, status.Code(err))
				return
			}
			mu.Lock()
			created = append(created, user)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, created, 1)
	assert.Equal(t, []string{auth.RoleWorkspaceAdmin}, created[0].Roles)

	users, err := env.Auth.ListUsers(withToken("service-token"), &v1pb.ListUsersRequest{})
	require.NoError(t, err)
	assert.Len(t, users.Users, 1)
}

func TestRejectedSignUpKeepsWorkspaceOpen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Auth.CreateUser(ctx, &v1pb.CreateUserRequest{User: &v1pb.User{Email: "ada@example.com"}})
	requireCode(t, codes.InvalidArgument, err)

	user, err := env.Auth.CreateUser(ctx, &v1pb.CreateUserRequest{User: &v1pb.User{Email: "ada@example.com", Password: "pw"}})
	require.NoError(t, err)
	assert.Equal(t, []string{auth.RoleWorkspaceAdmin}, user.Roles)
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "ada@example.com")

	_, err := env.Auth.Login(context.Background(), &v1pb.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	requireCode(t, codes.Unauthenticated, err)
	_, err = env.Auth.Login(context.Background(), &v1pb.LoginRequest{Email: "nobody@example.com", Password: "pw"})
	requireCode(t, codes.Unauthenticated, err)
}

func TestRequestsNeedAValidToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Environments.ListEnvironments(context.Background(), &v1pb.ListEnvironmentsRequest{})
	requireCode(t, codes.Unauthenticated, err)
	_, err = env.Environments.ListEnvironments(withToken("bogus"), &v1pb.ListEnvironmentsRequest{})
	requireCode(t, codes.Unauthenticated, err)
}

func TestLogoutEndsSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.signUp(t, "ada@example.com")

	_, err := env.Auth.Logout(ctx, &v1pb.LogoutRequest{})
	require.NoError(t, err)
	_, err = env.Environments.ListEnvironments(ctx, &v1pb.ListEnvironmentsRequest{})
	requireCode(t, codes.Unauthenticated, err)
}

func TestLastAdminIsKept(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signUp(t, "ada@example.com")

	_, err := env.Auth.DeleteUser(admin, &v1pb.DeleteUserRequest{Name: "users/ada@example.com"})
	requireCode(t, codes.FailedPrecondition, err)
}

func TestEnvironments(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signUp(t, "ada@example.com")
	member := env.signUp(t, "bob@example.com", auth.RoleWorkspaceMember)

	env.createEnvironment(t, admin, "prod", 2)
	env.createEnvironment(t, admin, "test", 1)

	_, err := env.Environments.CreateEnvironment(member, &v1pb.CreateEnvironmentRequest{
		EnvironmentId: "dev",
		Environment:   &v1pb.Environment{Title: "Dev"},
	})
	requireCode(t, codes.PermissionDenied, err)

	_, err = env.Environments.CreateEnvironment(admin, &v1pb.CreateEnvironmentRequest{
		EnvironmentId: "prod",
		Environment:   &v1pb.Environment{Title: "Prod again"},
	})
	requireCode(t, codes.AlreadyExists, err)

	_, err = env.Environments.CreateEnvironment(admin, &v1pb.CreateEnvironmentRequest{
		EnvironmentId: "Not Valid",
		Environment:   &v1pb.Environment{Title: "x"},
	})
	requireCode(t, codes.InvalidArgument, err)

	list, err := env.Environments.ListEnvironments(member, &v1pb.ListEnvironmentsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Environments, 2)
	assert.Equal(t, "environments/test", list.Environments[0].Name)
	assert.Equal(t, "environments/prod", list.Environments[1].Name)
	assert.Equal(t, v1pb.EnvironmentTier_UNPROTECTED, list.Environments[0].Tier)

	env.instances.set("db1", &fakeDriver{version: "8.0.36"})
	env.createInstance(t, admin, "mysql1", "db1", "environments/prod")
	_, err = env.Environments.DeleteEnvironment(admin, &v1pb.DeleteEnvironmentRequest{Name: "environments/prod"})
	requireCode(t, codes.FailedPrecondition, err)

	_, err = env.Environments.DeleteEnvironment(admin, &v1pb.DeleteEnvironmentRequest{Name: "environments/test"})
	require.NoError(t, err)
	list, err = env.Environments.ListEnvironments(admin, &v1pb.ListEnvironmentsRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Environments, 1)

	restored, err := env.Environments.UndeleteEnvironment(admin, &v1pb.UndeleteEnvironmentRequest{Name: "environments/test"})
	require.NoError(t, err)
	assert.Equal(t, v1pb.State_ACTIVE, restored.State)
}

func TestCreateInstanceSyncsDatabases(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signUp(t, "ada@example.com")
	env.createEnvironment(t, admin, "prod", 1)
	env.instances.set("db1", &fakeDriver{version: "8.0.36", databases: []string{"orders", "users"}})

	inst := env.createInstance(t, admin, "mysql1", "db1", "environments/prod")
	assert.Equal(t, "instances/mysql1", inst.Name)
	assert.Equal(t, "8.0.36", inst.EngineVersion)
	require.Len(t, inst.DataSources, 1)
	assert.Empty(t, inst.DataSources[0].Password)
	assert.Equal(t, "root", inst.DataSources[0].Username)

	dbs, err := env.Databases.ListDatabases(admin, &v1pb.ListDatabasesRequest{Parent: "instances/mysql1"})
	require.NoError(t, err)
	require.Len(t, dbs.Databases, 2)
	for _, db := range dbs.Databases {
		assert.Equal(t, "environments/prod", db.EffectiveEnvironment)
	}

	filtered, err := env.Databases.ListDatabases(admin, &v1pb.ListDatabasesRequest{
		Parent: "instances/-",
		Filter: `name == "instances/mysql1/databases/orders"`,
	})
	require.NoError(t, err)
	require.Len(t, filtered.Databases, 1)
}

func TestCreateInstanceChecksConnection(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signUp(t, "ada@example.com")

	req := &v1pb.CreateInstanceRequest{
		InstanceId: "mysql1",
		Instance: &v1pb.Instance{
			Title:       "MySQL",
			Engine:      v1pb.Engine_MYSQL,
			DataSources: []*v1pb.DataSource{{Id: "admin", Type: v1pb.DataSourceType_ADMIN, Host: "unreachable"}},
		},
	}
	_, err := env.Instances.CreateInstance(admin, req)
	requireCode(t, codes.FailedPrecondition, err)

	req.ValidateOnly = true
	inst, err := env.Instances.CreateInstance(admin, req)
	require.NoError(t, err)
	assert.Nil(t, inst.LastSyncTime)

	_, err = env.Instances.SyncInstance(admin, &v1pb.SyncInstanceRequest{Name: "instances/mysql1"})
	requireCode(t, codes.FailedPrecondition, err)
}

func TestCreateInstanceValidatesDataSources(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signUp(t, "ada@example.com")

	tests := []struct {
		name    string
		sources []*v1pb.DataSource
	}{
		{"no admin", []*v1pb.DataSource{{Id: "ro", Type: v1pb.DataSourceType_READ_ONLY, Host: "h"}}},
		{"two admins", []*v1pb.DataSource{
			{Id: "a", Type: v1pb.DataSourceType_ADMIN, Host: "h"},
			{Id: "b", Type: v1pb.DataSourceType_ADMIN, Host: "h"},
		}},
		{"duplicate id", []*v1pb.DataSource{
			{Id: "a", Type: v1pb.DataSourceType_ADMIN, Host: "h"},
			{Id: "a", Type: v1pb.DataSourceType_READ_ONLY, Host: "h"},
		}},
		{"missing host", []*v1pb.DataSource{{Id: "a", Type: v1pb.DataSourceType_ADMIN}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Instances.CreateInstance(admin, &v1pb.CreateInstanceRequest{
				InstanceId:   "mysql1",
				ValidateOnly: true,
				Instance:     &v1pb.Instance{Title: "MySQL", Engine: v1pb.Engine_MYSQL, DataSources: tt.sources},
			})
			requireCode(t, codes.InvalidArgument, err)
		})
	}
}

func TestAuditLogsAreRecorded(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signUp(t, "ada@example.com")
	env.createEnvironment(t, admin, "prod", 1)

	var logs []*v1pb.AuditLog
	require.Eventually(t, func() bool {
		resp, err := env.AuditLogs.SearchAuditLogs(admin, &v1pb.SearchAuditLogsRequest{
			Filter: `method == "` + v1pb.EnvironmentService_CreateEnvironment_FullMethodName + `"`,
		})
		if err != nil {
			return false
		}
		logs = resp.AuditLogs
		return len(logs) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "users/ada@example.com", logs[0].User)
	assert.Equal(t, "environments/prod", logs[0].Resource)
	assert.Equal(t, v1pb.AuditLog_INFO, logs[0].Severity)

	// Passwords never reach the log.
	resp, err := env.AuditLogs.SearchAuditLogs(admin, &v1pb.SearchAuditLogsRequest{
		Filter: `method == "` + v1pb.AuthService_CreateUser_FullMethodName + `"`,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AuditLogs)
	for _, l := range resp.AuditLogs {
		assert.NotContains(t, l.Request, "secret-")
	}

	member := env.signUp(t, "bob@example.com", auth.RoleWorkspaceMember)
	_, err = env.AuditLogs.SearchAuditLogs(member, &v1pb.SearchAuditLogsRequest{})
	requireCode(t, codes.PermissionDenied, err)

	_, err = env.AuditLogs.SearchAuditLogs(admin, &v1pb.SearchAuditLogsRequest{OrderBy: "user desc"})
	requireCode(t, codes.InvalidArgument, err)
}
