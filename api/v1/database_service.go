package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	DatabaseService_GetDatabase_FullMethodName     = "/dbconsole.v1.DatabaseService/GetDatabase"
	DatabaseService_ListDatabases_FullMethodName   = "/dbconsole.v1.DatabaseService/ListDatabases"
	DatabaseService_UpdateDatabase_FullMethodName  = "/dbconsole.v1.DatabaseService/UpdateDatabase"
	DatabaseService_GetDatabaseTree_FullMethodName = "/dbconsole.v1.DatabaseService/GetDatabaseTree"
)

// DatabaseServiceClient is the client API for DatabaseService.
type DatabaseServiceClient interface {
	GetDatabase(ctx context.Context, in *GetDatabaseRequest, opts ...grpc.CallOption) (*Database, error)
	ListDatabases(ctx context.Context, in *ListDatabasesRequest, opts ...grpc.CallOption) (*ListDatabasesResponse, error)
	UpdateDatabase(ctx context.Context, in *UpdateDatabaseRequest, opts ...grpc.CallOption) (*Database, error)
	GetDatabaseTree(ctx context.Context, in *GetDatabaseTreeRequest, opts ...grpc.CallOption) (*DatabaseTree, error)
}

type databaseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDatabaseServiceClient(cc grpc.ClientConnInterface) DatabaseServiceClient {
	return &databaseServiceClient{cc}
}

func (c *databaseServiceClient) GetDatabase(ctx context.Context, in *GetDatabaseRequest, opts ...grpc.CallOption) (*Database, error) {
	return invoke[Database](ctx, c.cc, DatabaseService_GetDatabase_FullMethodName, in, opts...)
}

func (c *databaseServiceClient) ListDatabases(ctx context.Context, in *ListDatabasesRequest, opts ...grpc.CallOption) (*ListDatabasesResponse, error) {
	return invoke[ListDatabasesResponse](ctx, c.cc, DatabaseService_ListDatabases_FullMethodName, in, opts...)
}

func (c *databaseServiceClient) UpdateDatabase(ctx context.Context, in *UpdateDatabaseRequest, opts ...grpc.CallOption) (*Database, error) {
	return invoke[Database](ctx, c.cc, DatabaseService_UpdateDatabase_FullMethodName, in, opts...)
}

func (c *databaseServiceClient) GetDatabaseTree(ctx context.Context, in *GetDatabaseTreeRequest, opts ...grpc.CallOption) (*DatabaseTree, error) {
	return invoke[DatabaseTree](ctx, c.cc, DatabaseService_GetDatabaseTree_FullMethodName, in, opts...)
}

// DatabaseServiceServer is the server API for DatabaseService.
type DatabaseServiceServer interface {
	GetDatabase(context.Context, *GetDatabaseRequest) (*Database, error)
	ListDatabases(context.Context, *ListDatabasesRequest) (*ListDatabasesResponse, error)
	UpdateDatabase(context.Context, *UpdateDatabaseRequest) (*Database, error)
	GetDatabaseTree(context.Context, *GetDatabaseTreeRequest) (*DatabaseTree, error)
}

// UnimplementedDatabaseServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedDatabaseServiceServer struct{}

func (UnimplementedDatabaseServiceServer) GetDatabase(context.Context, *GetDatabaseRequest) (*Database, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDatabase not implemented")
}
func (UnimplementedDatabaseServiceServer) ListDatabases(context.Context, *ListDatabasesRequest) (*ListDatabasesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDatabases not implemented")
}
func (UnimplementedDatabaseServiceServer) UpdateDatabase(context.Context, *UpdateDatabaseRequest) (*Database, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateDatabase not implemented")
}
func (UnimplementedDatabaseServiceServer) GetDatabaseTree(context.Context, *GetDatabaseTreeRequest) (*DatabaseTree, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDatabaseTree not implemented")
}

func RegisterDatabaseServiceServer(s grpc.ServiceRegistrar, srv DatabaseServiceServer) {
	s.RegisterService(&DatabaseService_ServiceDesc, srv)
}

// DatabaseService_ServiceDesc is the grpc.ServiceDesc for DatabaseService.
var DatabaseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.DatabaseService",
	HandlerType: (*DatabaseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDatabase",
			Handler:    unaryHandler(DatabaseService_GetDatabase_FullMethodName, DatabaseServiceServer.GetDatabase),
		},
		{
			MethodName: "ListDatabases",
			Handler:    unaryHandler(DatabaseService_ListDatabases_FullMethodName, DatabaseServiceServer.ListDatabases),
		},
		{
			MethodName: "UpdateDatabase",
			Handler:    unaryHandler(DatabaseService_UpdateDatabase_FullMethodName, DatabaseServiceServer.UpdateDatabase),
		},
		{
			MethodName: "GetDatabaseTree",
			Handler:    unaryHandler(DatabaseService_GetDatabaseTree_FullMethodName, DatabaseServiceServer.GetDatabaseTree),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/database_service.proto",
}

// DatabaseService_HTTPRules are the REST bindings of DatabaseService.
var DatabaseService_HTTPRules = []HTTPRule{
	{Method: "GetDatabase", Verb: "GET", Path: "/v1/{name=instances/*/databases/*}"},
	{Method: "ListDatabases", Verb: "GET", Path: "/v1/{parent=instances/*}/databases"},
	{Method: "ListDatabases", Verb: "GET", Path: "/v1/{parent=projects/*}/databases"},
	{Method: "UpdateDatabase", Verb: "PATCH", Path: "/v1/{database.name=instances/*/databases/*}", Body: "database"},
	{Method: "GetDatabaseTree", Verb: "POST", Path: "/v1/databases:tree", Body: "*"},
}
