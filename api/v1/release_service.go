package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	ReleaseService_GetRelease_FullMethodName      = "/dbconsole.v1.ReleaseService/GetRelease"
	ReleaseService_ListReleases_FullMethodName    = "/dbconsole.v1.ReleaseService/ListReleases"
	ReleaseService_CreateRelease_FullMethodName   = "/dbconsole.v1.ReleaseService/CreateRelease"
	ReleaseService_UpdateRelease_FullMethodName   = "/dbconsole.v1.ReleaseService/UpdateRelease"
	ReleaseService_DeleteRelease_FullMethodName   = "/dbconsole.v1.ReleaseService/DeleteRelease"
	ReleaseService_UndeleteRelease_FullMethodName = "/dbconsole.v1.ReleaseService/UndeleteRelease"
	ReleaseService_CheckRelease_FullMethodName    = "/dbconsole.v1.ReleaseService/CheckRelease"
)

// ReleaseServiceClient is the client API for ReleaseService.
type ReleaseServiceClient interface {
	GetRelease(ctx context.Context, in *GetReleaseRequest, opts ...grpc.CallOption) (*Release, error)
	ListReleases(ctx context.Context, in *ListReleasesRequest, opts ...grpc.CallOption) (*ListReleasesResponse, error)
	CreateRelease(ctx context.Context, in *CreateReleaseRequest, opts ...grpc.CallOption) (*Release, error)
	UpdateRelease(ctx context.Context, in *UpdateReleaseRequest, opts ...grpc.CallOption) (*Release, error)
	DeleteRelease(ctx context.Context, in *DeleteReleaseRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UndeleteRelease(ctx context.Context, in *UndeleteReleaseRequest, opts ...grpc.CallOption) (*Release, error)
	CheckRelease(ctx context.Context, in *CheckReleaseRequest, opts ...grpc.CallOption) (*CheckReleaseResponse, error)
}

type releaseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReleaseServiceClient(cc grpc.ClientConnInterface) ReleaseServiceClient {
	return &releaseServiceClient{cc}
}

func (c *releaseServiceClient) GetRelease(ctx context.Context, in *GetReleaseRequest, opts ...grpc.CallOption) (*Release, error) {
	return invoke[Release](ctx, c.cc, ReleaseService_GetRelease_FullMethodName, in, opts...)
}

func (c *releaseServiceClient) ListReleases(ctx context.Context, in *ListReleasesRequest, opts ...grpc.CallOption) (*ListReleasesResponse, error) {
	return invoke[ListReleasesResponse](ctx, c.cc, ReleaseService_ListReleases_FullMethodName, in, opts...)
}

func (c *releaseServiceClient) CreateRelease(ctx context.Context, in *CreateReleaseRequest, opts ...grpc.CallOption) (*Release, error) {
	return invoke[Release](ctx, c.cc, ReleaseService_CreateRelease_FullMethodName, in, opts...)
}

func (c *releaseServiceClient) UpdateRelease(ctx context.Context, in *UpdateReleaseRequest, opts ...grpc.CallOption) (*Release, error) {
	return invoke[Release](ctx, c.cc, ReleaseService_UpdateRelease_FullMethodName, in, opts...)
}

func (c *releaseServiceClient) DeleteRelease(ctx context.Context, in *DeleteReleaseRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, ReleaseService_DeleteRelease_FullMethodName, in, opts...)
}

func (c *releaseServiceClient) UndeleteRelease(ctx context.Context, in *UndeleteReleaseRequest, opts ...grpc.CallOption) (*Release, error) {
	return invoke[Release](ctx, c.cc, ReleaseService_UndeleteRelease_FullMethodName, in, opts...)
}

func (c *releaseServiceClient) CheckRelease(ctx context.Context, in *CheckReleaseRequest, opts ...grpc.CallOption) (*CheckReleaseResponse, error) {
	return invoke[CheckReleaseResponse](ctx, c.cc, ReleaseService_CheckRelease_FullMethodName, in, opts...)
}

// ReleaseServiceServer is the server API for ReleaseService.
type ReleaseServiceServer interface {
	GetRelease(context.Context, *GetReleaseRequest) (*Release, error)
	ListReleases(context.Context, *ListReleasesRequest) (*ListReleasesResponse, error)
	CreateRelease(context.Context, *CreateReleaseRequest) (*Release, error)
	UpdateRelease(context.Context, *UpdateReleaseRequest) (*Release, error)
	DeleteRelease(context.Context, *DeleteReleaseRequest) (*emptypb.Empty, error)
	UndeleteRelease(context.Context, *UndeleteReleaseRequest) (*Release, error)
	CheckRelease(context.Context, *CheckReleaseRequest) (*CheckReleaseResponse, error)
}

// UnimplementedReleaseServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedReleaseServiceServer struct{}

func (UnimplementedReleaseServiceServer) GetRelease(context.Context, *GetReleaseRequest) (*Release, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRelease not implemented")
}
func (UnimplementedReleaseServiceServer) ListReleases(context.Context, *ListReleasesRequest) (*ListReleasesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListReleases not implemented")
}
func (UnimplementedReleaseServiceServer) CreateRelease(context.Context, *CreateReleaseRequest) (*Release, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRelease not implemented")
}
func (UnimplementedReleaseServiceServer) UpdateRelease(context.Context, *UpdateReleaseRequest) (*Release, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateRelease not implemented")
}
func (UnimplementedReleaseServiceServer) DeleteRelease(context.Context, *DeleteReleaseRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteRelease not implemented")
}
func (UnimplementedReleaseServiceServer) UndeleteRelease(context.Context, *UndeleteReleaseRequest) (*Release, error) {
	return nil, status.Error(codes.Unimplemented, "method UndeleteRelease not implemented")
}
func (UnimplementedReleaseServiceServer) CheckRelease(context.Context, *CheckReleaseRequest) (*CheckReleaseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckRelease not implemented")
}

func RegisterReleaseServiceServer(s grpc.ServiceRegistrar, srv ReleaseServiceServer) {
	s.RegisterService(&ReleaseService_ServiceDesc, srv)
}

// ReleaseService_ServiceDesc is the grpc.ServiceDesc for ReleaseService.
var ReleaseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.ReleaseService",
	HandlerType: (*ReleaseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetRelease",
			Handler:    unaryHandler(ReleaseService_GetRelease_FullMethodName, ReleaseServiceServer.GetRelease),
		},
		{
			MethodName: "ListReleases",
			Handler:    unaryHandler(ReleaseService_ListReleases_FullMethodName, ReleaseServiceServer.ListReleases),
		},
		{
			MethodName: "CreateRelease",
			Handler:    unaryHandler(ReleaseService_CreateRelease_FullMethodName, ReleaseServiceServer.CreateRelease),
		},
		{
			MethodName: "UpdateRelease",
			Handler:    unaryHandler(ReleaseService_UpdateRelease_FullMethodName, ReleaseServiceServer.UpdateRelease),
		},
		{
			MethodName: "DeleteRelease",
			Handler:    unaryHandler(ReleaseService_DeleteRelease_FullMethodName, ReleaseServiceServer.DeleteRelease),
		},
		{
			MethodName: "UndeleteRelease",
			Handler:    unaryHandler(ReleaseService_UndeleteRelease_FullMethodName, ReleaseServiceServer.UndeleteRelease),
		},
		{
			MethodName: "CheckRelease",
			Handler:    unaryHandler(ReleaseService_CheckRelease_FullMethodName, ReleaseServiceServer.CheckRelease),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/release_service.proto",
}

// ReleaseService_HTTPRules are the REST bindings of ReleaseService.
var ReleaseService_HTTPRules = []HTTPRule{
	{Method: "GetRelease", Verb: "GET", Path: "/v1/{name=projects/*/releases/*}"},
	{Method: "ListReleases", Verb: "GET", Path: "/v1/{parent=projects/*}/releases"},
	{Method: "CreateRelease", Verb: "POST", Path: "/v1/{parent=projects/*}/releases", Body: "release"},
	{Method: "UpdateRelease", Verb: "PATCH", Path: "/v1/{release.name=projects/*/releases/*}", Body: "release"},
	{Method: "DeleteRelease", Verb: "DELETE", Path: "/v1/{name=projects/*/releases/*}"},
	{Method: "UndeleteRelease", Verb: "POST", Path: "/v1/{name=projects/*/releases/*}:undelete", Body: "*"},
	{Method: "CheckRelease", Verb: "POST", Path: "/v1/{parent=projects/*}/releases:check", Body: "*"},
}
