package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	IdentityProviderService_GetIdentityProvider_FullMethodName      = "/dbconsole.v1.IdentityProviderService/GetIdentityProvider"
	IdentityProviderService_ListIdentityProviders_FullMethodName    = "/dbconsole.v1.IdentityProviderService/ListIdentityProviders"
	IdentityProviderService_CreateIdentityProvider_FullMethodName   = "/dbconsole.v1.IdentityProviderService/CreateIdentityProvider"
	IdentityProviderService_UpdateIdentityProvider_FullMethodName   = "/dbconsole.v1.IdentityProviderService/UpdateIdentityProvider"
	IdentityProviderService_DeleteIdentityProvider_FullMethodName   = "/dbconsole.v1.IdentityProviderService/DeleteIdentityProvider"
	IdentityProviderService_UndeleteIdentityProvider_FullMethodName = "/dbconsole.v1.IdentityProviderService/UndeleteIdentityProvider"
	IdentityProviderService_TestIdentityProvider_FullMethodName     = "/dbconsole.v1.IdentityProviderService/TestIdentityProvider"
)

// IdentityProviderServiceClient is the client API for IdentityProviderService.
type IdentityProviderServiceClient interface {
	GetIdentityProvider(ctx context.Context, in *GetIdentityProviderRequest, opts ...grpc.CallOption) (*IdentityProvider, error)
	ListIdentityProviders(ctx context.Context, in *ListIdentityProvidersRequest, opts ...grpc.CallOption) (*ListIdentityProvidersResponse, error)
	CreateIdentityProvider(ctx context.Context, in *CreateIdentityProviderRequest, opts ...grpc.CallOption) (*IdentityProvider, error)
	UpdateIdentityProvider(ctx context.Context, in *UpdateIdentityProviderRequest, opts ...grpc.CallOption) (*IdentityProvider, error)
	DeleteIdentityProvider(ctx context.Context, in *DeleteIdentityProviderRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UndeleteIdentityProvider(ctx context.Context, in *UndeleteIdentityProviderRequest, opts ...grpc.CallOption) (*IdentityProvider, error)
	TestIdentityProvider(ctx context.Context, in *TestIdentityProviderRequest, opts ...grpc.CallOption) (*TestIdentityProviderResponse, error)
}

type identityProviderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIdentityProviderServiceClient(cc grpc.ClientConnInterface) IdentityProviderServiceClient {
	return &identityProviderServiceClient{cc}
}

func (c *identityProviderServiceClient) GetIdentityProvider(ctx context.Context, in *GetIdentityProviderRequest, opts ...grpc.CallOption) (*IdentityProvider, error) {
	return invoke[IdentityProvider](ctx, c.cc, IdentityProviderService_GetIdentityProvider_FullMethodName, in, opts...)
}

func (c *identityProviderServiceClient) ListIdentityProviders(ctx context.Context, in *ListIdentityProvidersRequest, opts ...grpc.CallOption) (*ListIdentityProvidersResponse, error) {
	return invoke[ListIdentityProvidersResponse](ctx, c.cc, IdentityProviderService_ListIdentityProviders_FullMethodName, in, opts...)
}

func (c *identityProviderServiceClient) CreateIdentityProvider(ctx context.Context, in *CreateIdentityProviderRequest, opts ...grpc.CallOption) (*IdentityProvider, error) {
	return invoke[IdentityProvider](ctx, c.cc, IdentityProviderService_CreateIdentityProvider_FullMethodName, in, opts...)
}

func (c *identityProviderServiceClient) UpdateIdentityProvider(ctx context.Context, in *UpdateIdentityProviderRequest, opts ...grpc.CallOption) (*IdentityProvider, error) {
	return invoke[IdentityProvider](ctx, c.cc, IdentityProviderService_UpdateIdentityProvider_FullMethodName, in, opts...)
}

func (c *identityProviderServiceClient) DeleteIdentityProvider(ctx context.Context, in *DeleteIdentityProviderRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, IdentityProviderService_DeleteIdentityProvider_FullMethodName, in, opts...)
}

func (c *identityProviderServiceClient) UndeleteIdentityProvider(ctx context.Context, in *UndeleteIdentityProviderRequest, opts ...grpc.CallOption) (*IdentityProvider, error) {
	return invoke[IdentityProvider](ctx, c.cc, IdentityProviderService_UndeleteIdentityProvider_FullMethodName, in, opts...)
}

func (c *identityProviderServiceClient) TestIdentityProvider(ctx context.Context, in *TestIdentityProviderRequest, opts ...grpc.CallOption) (*TestIdentityProviderResponse, error) {
	return invoke[TestIdentityProviderResponse](ctx, c.cc, IdentityProviderService_TestIdentityProvider_FullMethodName, in, opts...)
}

// IdentityProviderServiceServer is the server API for IdentityProviderService.
type IdentityProviderServiceServer interface {
	GetIdentityProvider(context.Context, *GetIdentityProviderRequest) (*IdentityProvider, error)
	ListIdentityProviders(context.Context, *ListIdentityProvidersRequest) (*ListIdentityProvidersResponse, error)
	CreateIdentityProvider(context.Context, *CreateIdentityProviderRequest) (*IdentityProvider, error)
	UpdateIdentityProvider(context.Context, *UpdateIdentityProviderRequest) (*IdentityProvider, error)
	DeleteIdentityProvider(context.Context, *DeleteIdentityProviderRequest) (*emptypb.Empty, error)
	UndeleteIdentityProvider(context.Context, *UndeleteIdentityProviderRequest) (*IdentityProvider, error)
	TestIdentityProvider(context.Context, *TestIdentityProviderRequest) (*TestIdentityProviderResponse, error)
}

// UnimplementedIdentityProviderServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedIdentityProviderServiceServer struct{}

func (UnimplementedIdentityProviderServiceServer) GetIdentityProvider(context.Context, *GetIdentityProviderRequest) (*IdentityProvider, error) {
	return nil, status.Error(codes.Unimplemented, "method GetIdentityProvider not implemented")
}
func (UnimplementedIdentityProviderServiceServer) ListIdentityProviders(context.Context, *ListIdentityProvidersRequest) (*ListIdentityProvidersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListIdentityProviders not implemented")
}
func (UnimplementedIdentityProviderServiceServer) CreateIdentityProvider(context.Context, *CreateIdentityProviderRequest) (*IdentityProvider, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateIdentityProvider not implemented")
}
func (UnimplementedIdentityProviderServiceServer) UpdateIdentityProvider(context.Context, *UpdateIdentityProviderRequest) (*IdentityProvider, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateIdentityProvider not implemented")
}
func (UnimplementedIdentityProviderServiceServer) DeleteIdentityProvider(context.Context, *DeleteIdentityProviderRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteIdentityProvider not implemented")
}
func (UnimplementedIdentityProviderServiceServer) UndeleteIdentityProvider(context.Context, *UndeleteIdentityProviderRequest) (*IdentityProvider, error) {
	return nil, status.Error(codes.Unimplemented, "method UndeleteIdentityProvider not implemented")
}
func (UnimplementedIdentityProviderServiceServer) TestIdentityProvider(context.Context, *TestIdentityProviderRequest) (*TestIdentityProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TestIdentityProvider not implemented")
}

func RegisterIdentityProviderServiceServer(s grpc.ServiceRegistrar, srv IdentityProviderServiceServer) {
	s.RegisterService(&IdentityProviderService_ServiceDesc, srv)
}

// IdentityProviderService_ServiceDesc is the grpc.ServiceDesc for IdentityProviderService.
var IdentityProviderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.IdentityProviderService",
	HandlerType: (*IdentityProviderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetIdentityProvider",
			Handler:    unaryHandler(IdentityProviderService_GetIdentityProvider_FullMethodName, IdentityProviderServiceServer.GetIdentityProvider),
		},
		{
			MethodName: "ListIdentityProviders",
			Handler:    unaryHandler(IdentityProviderService_ListIdentityProviders_FullMethodName, IdentityProviderServiceServer.ListIdentityProviders),
		},
		{
			MethodName: "CreateIdentityProvider",
			Handler:    unaryHandler(IdentityProviderService_CreateIdentityProvider_FullMethodName, IdentityProviderServiceServer.CreateIdentityProvider),
		},
		{
			MethodName: "UpdateIdentityProvider",
			Handler:    unaryHandler(IdentityProviderService_UpdateIdentityProvider_FullMethodName, IdentityProviderServiceServer.UpdateIdentityProvider),
		},
		{
			MethodName: "DeleteIdentityProvider",
			Handler:    unaryHandler(IdentityProviderService_DeleteIdentityProvider_FullMethodName, IdentityProviderServiceServer.DeleteIdentityProvider),
		},
		{
			MethodName: "UndeleteIdentityProvider",
			Handler:    unaryHandler(IdentityProviderService_UndeleteIdentityProvider_FullMethodName, IdentityProviderServiceServer.UndeleteIdentityProvider),
		},
		{
			MethodName: "TestIdentityProvider",
			Handler:    unaryHandler(IdentityProviderService_TestIdentityProvider_FullMethodName, IdentityProviderServiceServer.TestIdentityProvider),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/idp_service.proto",
}

// IdentityProviderService_HTTPRules are the REST bindings of IdentityProviderService.
var IdentityProviderService_HTTPRules = []HTTPRule{
	{Method: "GetIdentityProvider", Verb: "GET", Path: "/v1/{name=idps/*}"},
	{Method: "ListIdentityProviders", Verb: "GET", Path: "/v1/idps"},
	{Method: "CreateIdentityProvider", Verb: "POST", Path: "/v1/idps", Body: "identity_provider"},
	{Method: "UpdateIdentityProvider", Verb: "PATCH", Path: "/v1/{identity_provider.name=idps/*}", Body: "identity_provider"},
	{Method: "DeleteIdentityProvider", Verb: "DELETE", Path: "/v1/{name=idps/*}"},
	{Method: "UndeleteIdentityProvider", Verb: "POST", Path: "/v1/{name=idps/*}:undelete", Body: "*"},
	{Method: "TestIdentityProvider", Verb: "POST", Path: "/v1/{identity_provider.name=idps/*}:test", Body: "*"},
}
