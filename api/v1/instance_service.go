package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	InstanceService_GetInstance_FullMethodName      = "/dbconsole.v1.InstanceService/GetInstance"
	InstanceService_ListInstances_FullMethodName    = "/dbconsole.v1.InstanceService/ListInstances"
	InstanceService_CreateInstance_FullMethodName   = "/dbconsole.v1.InstanceService/CreateInstance"
	InstanceService_UpdateInstance_FullMethodName   = "/dbconsole.v1.InstanceService/UpdateInstance"
	InstanceService_DeleteInstance_FullMethodName   = "/dbconsole.v1.InstanceService/DeleteInstance"
	InstanceService_UndeleteInstance_FullMethodName = "/dbconsole.v1.InstanceService/UndeleteInstance"
	InstanceService_SyncInstance_FullMethodName     = "/dbconsole.v1.InstanceService/SyncInstance"
	InstanceService_AddDataSource_FullMethodName    = "/dbconsole.v1.InstanceService/AddDataSource"
	InstanceService_RemoveDataSource_FullMethodName = "/dbconsole.v1.InstanceService/RemoveDataSource"
	InstanceService_UpdateDataSource_FullMethodName = "/dbconsole.v1.InstanceService/UpdateDataSource"
)

// InstanceServiceClient is the client API for InstanceService.
type InstanceServiceClient interface {
	GetInstance(ctx context.Context, in *GetInstanceRequest, opts ...grpc.CallOption) (*Instance, error)
	ListInstances(ctx context.Context, in *ListInstancesRequest, opts ...grpc.CallOption) (*ListInstancesResponse, error)
	CreateInstance(ctx context.Context, in *CreateInstanceRequest, opts ...grpc.CallOption) (*Instance, error)
	UpdateInstance(ctx context.Context, in *UpdateInstanceRequest, opts ...grpc.CallOption) (*Instance, error)
	DeleteInstance(ctx context.Context, in *DeleteInstanceRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UndeleteInstance(ctx context.Context, in *UndeleteInstanceRequest, opts ...grpc.CallOption) (*Instance, error)
	SyncInstance(ctx context.Context, in *SyncInstanceRequest, opts ...grpc.CallOption) (*SyncInstanceResponse, error)
	AddDataSource(ctx context.Context, in *AddDataSourceRequest, opts ...grpc.CallOption) (*Instance, error)
	RemoveDataSource(ctx context.Context, in *RemoveDataSourceRequest, opts ...grpc.CallOption) (*Instance, error)
	UpdateDataSource(ctx context.Context, in *UpdateDataSourceRequest, opts ...grpc.CallOption) (*Instance, error)
}

type instanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInstanceServiceClient(cc grpc.ClientConnInterface) InstanceServiceClient {
	return &instanceServiceClient{cc}
}

func (c *instanceServiceClient) GetInstance(ctx context.Context, in *GetInstanceRequest, opts ...grpc.CallOption) (*Instance, error) {
	return invoke[Instance](ctx, c.cc, InstanceService_GetInstance_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) ListInstances(ctx context.Context, in *ListInstancesRequest, opts ...grpc.CallOption) (*ListInstancesResponse, error) {
	return invoke[ListInstancesResponse](ctx, c.cc, InstanceService_ListInstances_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) CreateInstance(ctx context.Context, in *CreateInstanceRequest, opts ...grpc.CallOption) (*Instance, error) {
	return invoke[Instance](ctx, c.cc, InstanceService_CreateInstance_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) UpdateInstance(ctx context.Context, in *UpdateInstanceRequest, opts ...grpc.CallOption) (*Instance, error) {
	return invoke[Instance](ctx, c.cc, InstanceService_UpdateInstance_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) DeleteInstance(ctx context.Context, in *DeleteInstanceRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, InstanceService_DeleteInstance_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) UndeleteInstance(ctx context.Context, in *UndeleteInstanceRequest, opts ...grpc.CallOption) (*Instance, error) {
	return invoke[Instance](ctx, c.cc, InstanceService_UndeleteInstance_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) SyncInstance(ctx context.Context, in *SyncInstanceRequest, opts ...grpc.CallOption) (*SyncInstanceResponse, error) {
	return invoke[SyncInstanceResponse](ctx, c.cc, InstanceService_SyncInstance_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) AddDataSource(ctx context.Context, in *AddDataSourceRequest, opts ...grpc.CallOption) (*Instance, error) {
	return invoke[Instance](ctx, c.cc, InstanceService_AddDataSource_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) RemoveDataSource(ctx context.Context, in *RemoveDataSourceRequest, opts ...grpc.CallOption) (*Instance, error) {
	return invoke[Instance](ctx, c.cc, InstanceService_RemoveDataSource_FullMethodName, in, opts...)
}

func (c *instanceServiceClient) UpdateDataSource(ctx context.Context, in *UpdateDataSourceRequest, opts ...grpc.CallOption) (*Instance, error) {
	return invoke[Instance](ctx, c.cc, InstanceService_UpdateDataSource_FullMethodName, in, opts...)
}

// InstanceServiceServer is the server API for InstanceService.
type InstanceServiceServer interface {
	GetInstance(context.Context, *GetInstanceRequest) (*Instance, error)
	ListInstances(context.Context, *ListInstancesRequest) (*ListInstancesResponse, error)
	CreateInstance(context.Context, *CreateInstanceRequest) (*Instance, error)
	UpdateInstance(context.Context, *UpdateInstanceRequest) (*Instance, error)
	DeleteInstance(context.Context, *DeleteInstanceRequest) (*emptypb.Empty, error)
	UndeleteInstance(context.Context, *UndeleteInstanceRequest) (*Instance, error)
	SyncInstance(context.Context, *SyncInstanceRequest) (*SyncInstanceResponse, error)
	AddDataSource(context.Context, *AddDataSourceRequest) (*Instance, error)
	RemoveDataSource(context.Context, *RemoveDataSourceRequest) (*Instance, error)
	UpdateDataSource(context.Context, *UpdateDataSourceRequest) (*Instance, error)
}

// UnimplementedInstanceServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedInstanceServiceServer struct{}

func (UnimplementedInstanceServiceServer) GetInstance(context.Context, *GetInstanceRequest) (*Instance, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInstance not implemented")
}
func (UnimplementedInstanceServiceServer) ListInstances(context.Context, *ListInstancesRequest) (*ListInstancesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListInstances not implemented")
}
func (UnimplementedInstanceServiceServer) CreateInstance(context.Context, *CreateInstanceRequest) (*Instance, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateInstance not implemented")
}
func (UnimplementedInstanceServiceServer) UpdateInstance(context.Context, *UpdateInstanceRequest) (*Instance, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateInstance not implemented")
}
func (UnimplementedInstanceServiceServer) DeleteInstance(context.Context, *DeleteInstanceRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteInstance not implemented")
}
func (UnimplementedInstanceServiceServer) UndeleteInstance(context.Context, *UndeleteInstanceRequest) (*Instance, error) {
	return nil, status.Error(codes.Unimplemented, "method UndeleteInstance not implemented")
}
func (UnimplementedInstanceServiceServer) SyncInstance(context.Context, *SyncInstanceRequest) (*SyncInstanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SyncInstance not implemented")
}
func (UnimplementedInstanceServiceServer) AddDataSource(context.Context, *AddDataSourceRequest) (*Instance, error) {
	return nil, status.Error(codes.Unimplemented, "method AddDataSource not implemented")
}
func (UnimplementedInstanceServiceServer) RemoveDataSource(context.Context, *RemoveDataSourceRequest) (*Instance, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveDataSource not implemented")
}
func (UnimplementedInstanceServiceServer) UpdateDataSource(context.Context, *UpdateDataSourceRequest) (*Instance, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateDataSource not implemented")
}

func RegisterInstanceServiceServer(s grpc.ServiceRegistrar, srv InstanceServiceServer) {
	s.RegisterService(&InstanceService_ServiceDesc, srv)
}

// InstanceService_ServiceDesc is the grpc.ServiceDesc for InstanceService.
var InstanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.InstanceService",
	HandlerType: (*InstanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetInstance",
			Handler:    unaryHandler(InstanceService_GetInstance_FullMethodName, InstanceServiceServer.GetInstance),
		},
		{
			MethodName: "ListInstances",
			Handler:    unaryHandler(InstanceService_ListInstances_FullMethodName, InstanceServiceServer.ListInstances),
		},
		{
			MethodName: "CreateInstance",
			Handler:    unaryHandler(InstanceService_CreateInstance_FullMethodName, InstanceServiceServer.CreateInstance),
		},
		{
			MethodName: "UpdateInstance",
			Handler:    unaryHandler(InstanceService_UpdateInstance_FullMethodName, InstanceServiceServer.UpdateInstance),
		},
		{
			MethodName: "DeleteInstance",
			Handler:    unaryHandler(InstanceService_DeleteInstance_FullMethodName, InstanceServiceServer.DeleteInstance),
		},
		{
			MethodName: "UndeleteInstance",
			Handler:    unaryHandler(InstanceService_UndeleteInstance_FullMethodName, InstanceServiceServer.UndeleteInstance),
		},
		{
			MethodName: "SyncInstance",
			Handler:    unaryHandler(InstanceService_SyncInstance_FullMethodName, InstanceServiceServer.SyncInstance),
		},
		{
			MethodName: "AddDataSource",
			Handler:    unaryHandler(InstanceService_AddDataSource_FullMethodName, InstanceServiceServer.AddDataSource),
		},
		{
			MethodName: "RemoveDataSource",
			Handler:    unaryHandler(InstanceService_RemoveDataSource_FullMethodName, InstanceServiceServer.RemoveDataSource),
		},
		{
			MethodName: "UpdateDataSource",
			Handler:    unaryHandler(InstanceService_UpdateDataSource_FullMethodName, InstanceServiceServer.UpdateDataSource),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/instance_service.proto",
}

// InstanceService_HTTPRules are the REST bindings of InstanceService.
var InstanceService_HTTPRules = []HTTPRule{
	{Method: "GetInstance", Verb: "GET", Path: "/v1/{name=instances/*}"},
	{Method: "ListInstances", Verb: "GET", Path: "/v1/instances"},
	{Method: "CreateInstance", Verb: "POST", Path: "/v1/instances", Body: "instance"},
	{Method: "UpdateInstance", Verb: "PATCH", Path: "/v1/{instance.name=instances/*}", Body: "instance"},
	{Method: "DeleteInstance", Verb: "DELETE", Path: "/v1/{name=instances/*}"},
	{Method: "UndeleteInstance", Verb: "POST", Path: "/v1/{name=instances/*}:undelete", Body: "*"},
	{Method: "SyncInstance", Verb: "POST", Path: "/v1/{name=instances/*}:sync", Body: "*"},
	{Method: "AddDataSource", Verb: "POST", Path: "/v1/{name=instances/*}:addDataSource", Body: "*"},
	{Method: "RemoveDataSource", Verb: "POST", Path: "/v1/{name=instances/*}:removeDataSource", Body: "*"},
	{Method: "UpdateDataSource", Verb: "PATCH", Path: "/v1/{name=instances/*}:updateDataSource", Body: "*"},
}
