package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	VCSConnectorService_CreateVCSConnector_FullMethodName = "/dbconsole.v1.VCSConnectorService/CreateVCSConnector"
	VCSConnectorService_GetVCSConnector_FullMethodName    = "/dbconsole.v1.VCSConnectorService/GetVCSConnector"
	VCSConnectorService_ListVCSConnectors_FullMethodName  = "/dbconsole.v1.VCSConnectorService/ListVCSConnectors"
	VCSConnectorService_UpdateVCSConnector_FullMethodName = "/dbconsole.v1.VCSConnectorService/UpdateVCSConnector"
	VCSConnectorService_DeleteVCSConnector_FullMethodName = "/dbconsole.v1.VCSConnectorService/DeleteVCSConnector"
)

// VCSConnectorServiceClient is the client API for VCSConnectorService.
type VCSConnectorServiceClient interface {
	CreateVCSConnector(ctx context.Context, in *CreateVCSConnectorRequest, opts ...grpc.CallOption) (*VCSConnector, error)
	GetVCSConnector(ctx context.Context, in *GetVCSConnectorRequest, opts ...grpc.CallOption) (*VCSConnector, error)
	ListVCSConnectors(ctx context.Context, in *ListVCSConnectorsRequest, opts ...grpc.CallOption) (*ListVCSConnectorsResponse, error)
	UpdateVCSConnector(ctx context.Context, in *UpdateVCSConnectorRequest, opts ...grpc.CallOption) (*VCSConnector, error)
	DeleteVCSConnector(ctx context.Context, in *DeleteVCSConnectorRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type vcsConnectorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVCSConnectorServiceClient(cc grpc.ClientConnInterface) VCSConnectorServiceClient {
	return &vcsConnectorServiceClient{cc}
}

func (c *vcsConnectorServiceClient) CreateVCSConnector(ctx context.Context, in *CreateVCSConnectorRequest, opts ...grpc.CallOption) (*VCSConnector, error) {
	return invoke[VCSConnector](ctx, c.cc, VCSConnectorService_CreateVCSConnector_FullMethodName, in, opts...)
}

func (c *vcsConnectorServiceClient) GetVCSConnector(ctx context.Context, in *GetVCSConnectorRequest, opts ...grpc.CallOption) (*VCSConnector, error) {
	return invoke[VCSConnector](ctx, c.cc, VCSConnectorService_GetVCSConnector_FullMethodName, in, opts...)
}

func (c *vcsConnectorServiceClient) ListVCSConnectors(ctx context.Context, in *ListVCSConnectorsRequest, opts ...grpc.CallOption) (*ListVCSConnectorsResponse, error) {
	return invoke[ListVCSConnectorsResponse](ctx, c.cc, VCSConnectorService_ListVCSConnectors_FullMethodName, in, opts...)
}

func (c *vcsConnectorServiceClient) UpdateVCSConnector(ctx context.Context, in *UpdateVCSConnectorRequest, opts ...grpc.CallOption) (*VCSConnector, error) {
	return invoke[VCSConnector](ctx, c.cc, VCSConnectorService_UpdateVCSConnector_FullMethodName, in, opts...)
}

func (c *vcsConnectorServiceClient) DeleteVCSConnector(ctx context.Context, in *DeleteVCSConnectorRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, VCSConnectorService_DeleteVCSConnector_FullMethodName, in, opts...)
}

// VCSConnectorServiceServer is the server API for VCSConnectorService.
type VCSConnectorServiceServer interface {
	CreateVCSConnector(context.Context, *CreateVCSConnectorRequest) (*VCSConnector, error)
	GetVCSConnector(context.Context, *GetVCSConnectorRequest) (*VCSConnector, error)
	ListVCSConnectors(context.Context, *ListVCSConnectorsRequest) (*ListVCSConnectorsResponse, error)
	UpdateVCSConnector(context.Context, *UpdateVCSConnectorRequest) (*VCSConnector, error)
	DeleteVCSConnector(context.Context, *DeleteVCSConnectorRequest) (*emptypb.Empty, error)
}

// UnimplementedVCSConnectorServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedVCSConnectorServiceServer struct{}

func (UnimplementedVCSConnectorServiceServer) CreateVCSConnector(context.Context, *CreateVCSConnectorRequest) (*VCSConnector, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateVCSConnector not implemented")
}
func (UnimplementedVCSConnectorServiceServer) GetVCSConnector(context.Context, *GetVCSConnectorRequest) (*VCSConnector, error) {
	return nil, status.Error(codes.Unimplemented, "method GetVCSConnector not implemented")
}
func (UnimplementedVCSConnectorServiceServer) ListVCSConnectors(context.Context, *ListVCSConnectorsRequest) (*ListVCSConnectorsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVCSConnectors not implemented")
}
func (UnimplementedVCSConnectorServiceServer) UpdateVCSConnector(context.Context, *UpdateVCSConnectorRequest) (*VCSConnector, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateVCSConnector not implemented")
}
func (UnimplementedVCSConnectorServiceServer) DeleteVCSConnector(context.Context, *DeleteVCSConnectorRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteVCSConnector not implemented")
}

func RegisterVCSConnectorServiceServer(s grpc.ServiceRegistrar, srv VCSConnectorServiceServer) {
	s.RegisterService(&VCSConnectorService_ServiceDesc, srv)
}

// VCSConnectorService_ServiceDesc is the grpc.ServiceDesc for VCSConnectorService.
var VCSConnectorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.VCSConnectorService",
	HandlerType: (*VCSConnectorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateVCSConnector",
			Handler:    unaryHandler(VCSConnectorService_CreateVCSConnector_FullMethodName, VCSConnectorServiceServer.CreateVCSConnector),
		},
		{
			MethodName: "GetVCSConnector",
			Handler:    unaryHandler(VCSConnectorService_GetVCSConnector_FullMethodName, VCSConnectorServiceServer.GetVCSConnector),
		},
		{
			MethodName: "ListVCSConnectors",
			Handler:    unaryHandler(VCSConnectorService_ListVCSConnectors_FullMethodName, VCSConnectorServiceServer.ListVCSConnectors),
		},
		{
			MethodName: "UpdateVCSConnector",
			Handler:    unaryHandler(VCSConnectorService_UpdateVCSConnector_FullMethodName, VCSConnectorServiceServer.UpdateVCSConnector),
		},
		{
			MethodName: "DeleteVCSConnector",
			Handler:    unaryHandler(VCSConnectorService_DeleteVCSConnector_FullMethodName, VCSConnectorServiceServer.DeleteVCSConnector),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/vcs_connector_service.proto",
}

// VCSConnectorService_HTTPRules are the REST bindings of VCSConnectorService.
var VCSConnectorService_HTTPRules = []HTTPRule{
	{Method: "CreateVCSConnector", Verb: "POST", Path: "/v1/{parent=projects/*}/vcsConnectors", Body: "vcs_connector"},
	{Method: "GetVCSConnector", Verb: "GET", Path: "/v1/{name=projects/*/vcsConnectors/*}"},
	{Method: "ListVCSConnectors", Verb: "GET", Path: "/v1/{parent=projects/*}/vcsConnectors"},
	{Method: "UpdateVCSConnector", Verb: "PATCH", Path: "/v1/{vcs_connector.name=projects/*/vcsConnectors/*}", Body: "vcs_connector"},
	{Method: "DeleteVCSConnector", Verb: "DELETE", Path: "/v1/{name=projects/*/vcsConnectors/*}"},
}
