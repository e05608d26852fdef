package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	EnvironmentService_GetEnvironment_FullMethodName      = "/dbconsole.v1.EnvironmentService/GetEnvironment"
	EnvironmentService_ListEnvironments_FullMethodName    = "/dbconsole.v1.EnvironmentService/ListEnvironments"
	EnvironmentService_CreateEnvironment_FullMethodName   = "/dbconsole.v1.EnvironmentService/CreateEnvironment"
	EnvironmentService_UpdateEnvironment_FullMethodName   = "/dbconsole.v1.EnvironmentService/UpdateEnvironment"
	EnvironmentService_DeleteEnvironment_FullMethodName   = "/dbconsole.v1.EnvironmentService/DeleteEnvironment"
	EnvironmentService_UndeleteEnvironment_FullMethodName = "/dbconsole.v1.EnvironmentService/UndeleteEnvironment"
)

// EnvironmentServiceClient is the client API for EnvironmentService.
type EnvironmentServiceClient interface {
	GetEnvironment(ctx context.Context, in *GetEnvironmentRequest, opts ...grpc.CallOption) (*Environment, error)
	ListEnvironments(ctx context.Context, in *ListEnvironmentsRequest, opts ...grpc.CallOption) (*ListEnvironmentsResponse, error)
	CreateEnvironment(ctx context.Context, in *CreateEnvironmentRequest, opts ...grpc.CallOption) (*Environment, error)
	UpdateEnvironment(ctx context.Context, in *UpdateEnvironmentRequest, opts ...grpc.CallOption) (*Environment, error)
	DeleteEnvironment(ctx context.Context, in *DeleteEnvironmentRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UndeleteEnvironment(ctx context.Context, in *UndeleteEnvironmentRequest, opts ...grpc.CallOption) (*Environment, error)
}

type environmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEnvironmentServiceClient(cc grpc.ClientConnInterface) EnvironmentServiceClient {
	return &environmentServiceClient{cc}
}

func (c *environmentServiceClient) GetEnvironment(ctx context.Context, in *GetEnvironmentRequest, opts ...grpc.CallOption) (*Environment, error) {
	return invoke[Environment](ctx, c.cc, EnvironmentService_GetEnvironment_FullMethodName, in, opts...)
}

func (c *environmentServiceClient) ListEnvironments(ctx context.Context, in *ListEnvironmentsRequest, opts ...grpc.CallOption) (*ListEnvironmentsResponse, error) {
	return invoke[ListEnvironmentsResponse](ctx, c.cc, EnvironmentService_ListEnvironments_FullMethodName, in, opts...)
}

func (c *environmentServiceClient) CreateEnvironment(ctx context.Context, in *CreateEnvironmentRequest, opts ...grpc.CallOption) (*Environment, error) {
	return invoke[Environment](ctx, c.cc, EnvironmentService_CreateEnvironment_FullMethodName, in, opts...)
}

func (c *environmentServiceClient) UpdateEnvironment(ctx context.Context, in *UpdateEnvironmentRequest, opts ...grpc.CallOption) (*Environment, error) {
	return invoke[Environment](ctx, c.cc, EnvironmentService_UpdateEnvironment_FullMethodName, in, opts...)
}

func (c *environmentServiceClient) DeleteEnvironment(ctx context.Context, in *DeleteEnvironmentRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, EnvironmentService_DeleteEnvironment_FullMethodName, in, opts...)
}

func (c *environmentServiceClient) UndeleteEnvironment(ctx context.Context, in *UndeleteEnvironmentRequest, opts ...grpc.CallOption) (*Environment, error) {
	return invoke[Environment](ctx, c.cc, EnvironmentService_UndeleteEnvironment_FullMethodName, in, opts...)
}

// EnvironmentServiceServer is the server API for EnvironmentService.
type EnvironmentServiceServer interface {
	GetEnvironment(context.Context, *GetEnvironmentRequest) (*Environment, error)
	ListEnvironments(context.Context, *ListEnvironmentsRequest) (*ListEnvironmentsResponse, error)
	CreateEnvironment(context.Context, *CreateEnvironmentRequest) (*Environment, error)
	UpdateEnvironment(context.Context, *UpdateEnvironmentRequest) (*Environment, error)
	DeleteEnvironment(context.Context, *DeleteEnvironmentRequest) (*emptypb.Empty, error)
	UndeleteEnvironment(context.Context, *UndeleteEnvironmentRequest) (*Environment, error)
}

// UnimplementedEnvironmentServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedEnvironmentServiceServer struct{}

func (UnimplementedEnvironmentServiceServer) GetEnvironment(context.Context, *GetEnvironmentRequest) (*Environment, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEnvironment not implemented")
}
func (UnimplementedEnvironmentServiceServer) ListEnvironments(context.Context, *ListEnvironmentsRequest) (*ListEnvironmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEnvironments not implemented")
}
func (UnimplementedEnvironmentServiceServer) CreateEnvironment(context.Context, *CreateEnvironmentRequest) (*Environment, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEnvironment not implemented")
}
func (UnimplementedEnvironmentServiceServer) UpdateEnvironment(context.Context, *UpdateEnvironmentRequest) (*Environment, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEnvironment not implemented")
}
func (UnimplementedEnvironmentServiceServer) DeleteEnvironment(context.Context, *DeleteEnvironmentRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEnvironment not implemented")
}
func (UnimplementedEnvironmentServiceServer) UndeleteEnvironment(context.Context, *UndeleteEnvironmentRequest) (*Environment, error) {
	return nil, status.Error(codes.Unimplemented, "method UndeleteEnvironment not implemented")
}

func RegisterEnvironmentServiceServer(s grpc.ServiceRegistrar, srv EnvironmentServiceServer) {
	s.RegisterService(&EnvironmentService_ServiceDesc, srv)
}

// EnvironmentService_ServiceDesc is the grpc.ServiceDesc for EnvironmentService.
var EnvironmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.EnvironmentService",
	HandlerType: (*EnvironmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetEnvironment",
			Handler:    unaryHandler(EnvironmentService_GetEnvironment_FullMethodName, EnvironmentServiceServer.GetEnvironment),
		},
		{
			MethodName: "ListEnvironments",
			Handler:    unaryHandler(EnvironmentService_ListEnvironments_FullMethodName, EnvironmentServiceServer.ListEnvironments),
		},
		{
			MethodName: "CreateEnvironment",
			Handler:    unaryHandler(EnvironmentService_CreateEnvironment_FullMethodName, EnvironmentServiceServer.CreateEnvironment),
		},
		{
			MethodName: "UpdateEnvironment",
			Handler:    unaryHandler(EnvironmentService_UpdateEnvironment_FullMethodName, EnvironmentServiceServer.UpdateEnvironment),
		},
		{
			MethodName: "DeleteEnvironment",
			Handler:    unaryHandler(EnvironmentService_DeleteEnvironment_FullMethodName, EnvironmentServiceServer.DeleteEnvironment),
		},
		{
			MethodName: "UndeleteEnvironment",
			Handler:    unaryHandler(EnvironmentService_UndeleteEnvironment_FullMethodName, EnvironmentServiceServer.UndeleteEnvironment),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/environment_service.proto",
}

// EnvironmentService_HTTPRules are the REST bindings of EnvironmentService.
var EnvironmentService_HTTPRules = []HTTPRule{
	{Method: "GetEnvironment", Verb: "GET", Path: "/v1/{name=environments/*}"},
	{Method: "ListEnvironments", Verb: "GET", Path: "/v1/environments"},
	{Method: "CreateEnvironment", Verb: "POST", Path: "/v1/environments", Body: "environment"},
	{Method: "UpdateEnvironment", Verb: "PATCH", Path: "/v1/{environment.name=environments/*}", Body: "environment"},
	{Method: "DeleteEnvironment", Verb: "DELETE", Path: "/v1/{name=environments/*}"},
	{Method: "UndeleteEnvironment", Verb: "POST", Path: "/v1/{name=environments/*}:undelete", Body: "*"},
}
