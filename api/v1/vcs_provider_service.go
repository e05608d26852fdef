package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	VCSProviderService_GetVCSProvider_FullMethodName                = "/dbconsole.v1.VCSProviderService/GetVCSProvider"
	VCSProviderService_ListVCSProviders_FullMethodName              = "/dbconsole.v1.VCSProviderService/ListVCSProviders"
	VCSProviderService_CreateVCSProvider_FullMethodName             = "/dbconsole.v1.VCSProviderService/CreateVCSProvider"
	VCSProviderService_UpdateVCSProvider_FullMethodName             = "/dbconsole.v1.VCSProviderService/UpdateVCSProvider"
	VCSProviderService_DeleteVCSProvider_FullMethodName             = "/dbconsole.v1.VCSProviderService/DeleteVCSProvider"
	VCSProviderService_SearchVCSProviderRepositories_FullMethodName = "/dbconsole.v1.VCSProviderService/SearchVCSProviderRepositories"
	VCSProviderService_ListVCSConnectorsInProvider_FullMethodName   = "/dbconsole.v1.VCSProviderService/ListVCSConnectorsInProvider"
)

// VCSProviderServiceClient is the client API for VCSProviderService.
type VCSProviderServiceClient interface {
	GetVCSProvider(ctx context.Context, in *GetVCSProviderRequest, opts ...grpc.CallOption) (*VCSProvider, error)
	ListVCSProviders(ctx context.Context, in *ListVCSProvidersRequest, opts ...grpc.CallOption) (*ListVCSProvidersResponse, error)
	CreateVCSProvider(ctx context.Context, in *CreateVCSProviderRequest, opts ...grpc.CallOption) (*VCSProvider, error)
	UpdateVCSProvider(ctx context.Context, in *UpdateVCSProviderRequest, opts ...grpc.CallOption) (*VCSProvider, error)
	DeleteVCSProvider(ctx context.Context, in *DeleteVCSProviderRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	SearchVCSProviderRepositories(ctx context.Context, in *SearchVCSProviderRepositoriesRequest, opts ...grpc.CallOption) (*SearchVCSProviderRepositoriesResponse, error)
	ListVCSConnectorsInProvider(ctx context.Context, in *ListVCSConnectorsInProviderRequest, opts ...grpc.CallOption) (*ListVCSConnectorsInProviderResponse, error)
}

type vcsProviderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVCSProviderServiceClient(cc grpc.ClientConnInterface) VCSProviderServiceClient {
	return &vcsProviderServiceClient{cc}
}

func (c *vcsProviderServiceClient) GetVCSProvider(ctx context.Context, in *GetVCSProviderRequest, opts ...grpc.CallOption) (*VCSProvider, error) {
	return invoke[VCSProvider](ctx, c.cc, VCSProviderService_GetVCSProvider_FullMethodName, in, opts...)
}

func (c *vcsProviderServiceClient) ListVCSProviders(ctx context.Context, in *ListVCSProvidersRequest, opts ...grpc.CallOption) (*ListVCSProvidersResponse, error) {
	return invoke[ListVCSProvidersResponse](ctx, c.cc, VCSProviderService_ListVCSProviders_FullMethodName, in, opts...)
}

func (c *vcsProviderServiceClient) CreateVCSProvider(ctx context.Context, in *CreateVCSProviderRequest, opts ...grpc.CallOption) (*VCSProvider, error) {
	return invoke[VCSProvider](ctx, c.cc, VCSProviderService_CreateVCSProvider_FullMethodName, in, opts...)
}

func (c *vcsProviderServiceClient) UpdateVCSProvider(ctx context.Context, in *UpdateVCSProviderRequest, opts ...grpc.CallOption) (*VCSProvider, error) {
	return invoke[VCSProvider](ctx, c.cc, VCSProviderService_UpdateVCSProvider_FullMethodName, in, opts...)
}

func (c *vcsProviderServiceClient) DeleteVCSProvider(ctx context.Context, in *DeleteVCSProviderRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, VCSProviderService_DeleteVCSProvider_FullMethodName, in, opts...)
}

func (c *vcsProviderServiceClient) SearchVCSProviderRepositories(ctx context.Context, in *SearchVCSProviderRepositoriesRequest, opts ...grpc.CallOption) (*SearchVCSProviderRepositoriesResponse, error) {
	return invoke[SearchVCSProviderRepositoriesResponse](ctx, c.cc, VCSProviderService_SearchVCSProviderRepositories_FullMethodName, in, opts...)
}

func (c *vcsProviderServiceClient) ListVCSConnectorsInProvider(ctx context.Context, in *ListVCSConnectorsInProviderRequest, opts ...grpc.CallOption) (*ListVCSConnectorsInProviderResponse, error) {
	return invoke[ListVCSConnectorsInProviderResponse](ctx, c.cc, VCSProviderService_ListVCSConnectorsInProvider_FullMethodName, in, opts...)
}

// VCSProviderServiceServer is the server API for VCSProviderService.
type VCSProviderServiceServer interface {
	GetVCSProvider(context.Context, *GetVCSProviderRequest) (*VCSProvider, error)
	ListVCSProviders(context.Context, *ListVCSProvidersRequest) (*ListVCSProvidersResponse, error)
	CreateVCSProvider(context.Context, *CreateVCSProviderRequest) (*VCSProvider, error)
	UpdateVCSProvider(context.Context, *UpdateVCSProviderRequest) (*VCSProvider, error)
	DeleteVCSProvider(context.Context, *DeleteVCSProviderRequest) (*emptypb.Empty, error)
	SearchVCSProviderRepositories(context.Context, *SearchVCSProviderRepositoriesRequest) (*SearchVCSProviderRepositoriesResponse, error)
	ListVCSConnectorsInProvider(context.Context, *ListVCSConnectorsInProviderRequest) (*ListVCSConnectorsInProviderResponse, error)
}

// UnimplementedVCSProviderServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedVCSProviderServiceServer struct{}

func (UnimplementedVCSProviderServiceServer) GetVCSProvider(context.Context, *GetVCSProviderRequest) (*VCSProvider, error) {
	return nil, status.Error(codes.Unimplemented, "method GetVCSProvider not implemented")
}
func (UnimplementedVCSProviderServiceServer) ListVCSProviders(context.Context, *ListVCSProvidersRequest) (*ListVCSProvidersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVCSProviders not implemented")
}
func (UnimplementedVCSProviderServiceServer) CreateVCSProvider(context.Context, *CreateVCSProviderRequest) (*VCSProvider, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateVCSProvider not implemented")
}
func (UnimplementedVCSProviderServiceServer) UpdateVCSProvider(context.Context, *UpdateVCSProviderRequest) (*VCSProvider, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateVCSProvider not implemented")
}
func (UnimplementedVCSProviderServiceServer) DeleteVCSProvider(context.Context, *DeleteVCSProviderRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteVCSProvider not implemented")
}
func (UnimplementedVCSProviderServiceServer) SearchVCSProviderRepositories(context.Context, *SearchVCSProviderRepositoriesRequest) (*SearchVCSProviderRepositoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchVCSProviderRepositories not implemented")
}
func (UnimplementedVCSProviderServiceServer) ListVCSConnectorsInProvider(context.Context, *ListVCSConnectorsInProviderRequest) (*ListVCSConnectorsInProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVCSConnectorsInProvider not implemented")
}

func RegisterVCSProviderServiceServer(s grpc.ServiceRegistrar, srv VCSProviderServiceServer) {
	s.RegisterService(&VCSProviderService_ServiceDesc, srv)
}

// VCSProviderService_ServiceDesc is the grpc.ServiceDesc for VCSProviderService.
var VCSProviderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.VCSProviderService",
	HandlerType: (*VCSProviderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetVCSProvider",
			Handler:    unaryHandler(VCSProviderService_GetVCSProvider_FullMethodName, VCSProviderServiceServer.GetVCSProvider),
		},
		{
			MethodName: "ListVCSProviders",
			Handler:    unaryHandler(VCSProviderService_ListVCSProviders_FullMethodName, VCSProviderServiceServer.ListVCSProviders),
		},
		{
			MethodName: "CreateVCSProvider",
			Handler:    unaryHandler(VCSProviderService_CreateVCSProvider_FullMethodName, VCSProviderServiceServer.CreateVCSProvider),
		},
		{
			MethodName: "UpdateVCSProvider",
			Handler:    unaryHandler(VCSProviderService_UpdateVCSProvider_FullMethodName, VCSProviderServiceServer.UpdateVCSProvider),
		},
		{
			MethodName: "DeleteVCSProvider",
			Handler:    unaryHandler(VCSProviderService_DeleteVCSProvider_FullMethodName, VCSProviderServiceServer.DeleteVCSProvider),
		},
		{
			MethodName: "SearchVCSProviderRepositories",
			Handler:    unaryHandler(VCSProviderService_SearchVCSProviderRepositories_FullMethodName, VCSProviderServiceServer.SearchVCSProviderRepositories),
		},
		{
			MethodName: "ListVCSConnectorsInProvider",
			Handler:    unaryHandler(VCSProviderService_ListVCSConnectorsInProvider_FullMethodName, VCSProviderServiceServer.ListVCSConnectorsInProvider),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/vcs_provider_service.proto",
}

// VCSProviderService_HTTPRules are the REST bindings of VCSProviderService.
var VCSProviderService_HTTPRules = []HTTPRule{
	{Method: "GetVCSProvider", Verb: "GET", Path: "/v1/{name=vcsProviders/*}"},
	{Method: "ListVCSProviders", Verb: "GET", Path: "/v1/vcsProviders"},
	{Method: "CreateVCSProvider", Verb: "POST", Path: "/v1/vcsProviders", Body: "vcs_provider"},
	{Method: "UpdateVCSProvider", Verb: "PATCH", Path: "/v1/{vcs_provider.name=vcsProviders/*}", Body: "vcs_provider"},
	{Method: "DeleteVCSProvider", Verb: "DELETE", Path: "/v1/{name=vcsProviders/*}"},
	{Method: "SearchVCSProviderRepositories", Verb: "POST", Path: "/v1/{name=vcsProviders/*}:searchRepositories", Body: "*"},
	{Method: "ListVCSConnectorsInProvider", Verb: "GET", Path: "/v1/{name=vcsProviders/*}/vcsConnectors"},
}
