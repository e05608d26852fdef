package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	ReviewConfigService_CreateReviewConfig_FullMethodName = "/dbconsole.v1.ReviewConfigService/CreateReviewConfig"
	ReviewConfigService_ListReviewConfigs_FullMethodName  = "/dbconsole.v1.ReviewConfigService/ListReviewConfigs"
	ReviewConfigService_GetReviewConfig_FullMethodName    = "/dbconsole.v1.ReviewConfigService/GetReviewConfig"
	ReviewConfigService_UpdateReviewConfig_FullMethodName = "/dbconsole.v1.ReviewConfigService/UpdateReviewConfig"
	ReviewConfigService_DeleteReviewConfig_FullMethodName = "/dbconsole.v1.ReviewConfigService/DeleteReviewConfig"
)

// ReviewConfigServiceClient is the client API for ReviewConfigService.
type ReviewConfigServiceClient interface {
	CreateReviewConfig(ctx context.Context, in *CreateReviewConfigRequest, opts ...grpc.CallOption) (*ReviewConfig, error)
	ListReviewConfigs(ctx context.Context, in *ListReviewConfigsRequest, opts ...grpc.CallOption) (*ListReviewConfigsResponse, error)
	GetReviewConfig(ctx context.Context, in *GetReviewConfigRequest, opts ...grpc.CallOption) (*ReviewConfig, error)
	UpdateReviewConfig(ctx context.Context, in *UpdateReviewConfigRequest, opts ...grpc.CallOption) (*ReviewConfig, error)
	DeleteReviewConfig(ctx context.Context, in *DeleteReviewConfigRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type reviewConfigServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReviewConfigServiceClient(cc grpc.ClientConnInterface) ReviewConfigServiceClient {
	return &reviewConfigServiceClient{cc}
}

func (c *reviewConfigServiceClient) CreateReviewConfig(ctx context.Context, in *CreateReviewConfigRequest, opts ...grpc.CallOption) (*ReviewConfig, error) {
	return invoke[ReviewConfig](ctx, c.cc, ReviewConfigService_CreateReviewConfig_FullMethodName, in, opts...)
}

func (c *reviewConfigServiceClient) ListReviewConfigs(ctx context.Context, in *ListReviewConfigsRequest, opts ...grpc.CallOption) (*ListReviewConfigsResponse, error) {
	return invoke[ListReviewConfigsResponse](ctx, c.cc, ReviewConfigService_ListReviewConfigs_FullMethodName, in, opts...)
}

func (c *reviewConfigServiceClient) GetReviewConfig(ctx context.Context, in *GetReviewConfigRequest, opts ...grpc.CallOption) (*ReviewConfig, error) {
	return invoke[ReviewConfig](ctx, c.cc, ReviewConfigService_GetReviewConfig_FullMethodName, in, opts...)
}

func (c *reviewConfigServiceClient) UpdateReviewConfig(ctx context.Context, in *UpdateReviewConfigRequest, opts ...grpc.CallOption) (*ReviewConfig, error) {
	return invoke[ReviewConfig](ctx, c.cc, ReviewConfigService_UpdateReviewConfig_FullMethodName, in, opts...)
}

func (c *reviewConfigServiceClient) DeleteReviewConfig(ctx context.Context, in *DeleteReviewConfigRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, ReviewConfigService_DeleteReviewConfig_FullMethodName, in, opts...)
}

// ReviewConfigServiceServer is the server API for ReviewConfigService.
type ReviewConfigServiceServer interface {
	CreateReviewConfig(context.Context, *CreateReviewConfigRequest) (*ReviewConfig, error)
	ListReviewConfigs(context.Context, *ListReviewConfigsRequest) (*ListReviewConfigsResponse, error)
	GetReviewConfig(context.Context, *GetReviewConfigRequest) (*ReviewConfig, error)
	UpdateReviewConfig(context.Context, *UpdateReviewConfigRequest) (*ReviewConfig, error)
	DeleteReviewConfig(context.Context, *DeleteReviewConfigRequest) (*emptypb.Empty, error)
}

// UnimplementedReviewConfigServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedReviewConfigServiceServer struct{}

func (UnimplementedReviewConfigServiceServer) CreateReviewConfig(context.Context, *CreateReviewConfigRequest) (*ReviewConfig, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateReviewConfig not implemented")
}
func (UnimplementedReviewConfigServiceServer) ListReviewConfigs(context.Context, *ListReviewConfigsRequest) (*ListReviewConfigsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListReviewConfigs not implemented")
}
func (UnimplementedReviewConfigServiceServer) GetReviewConfig(context.Context, *GetReviewConfigRequest) (*ReviewConfig, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReviewConfig not implemented")
}
func (UnimplementedReviewConfigServiceServer) UpdateReviewConfig(context.Context, *UpdateReviewConfigRequest) (*ReviewConfig, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateReviewConfig not implemented")
}
func (UnimplementedReviewConfigServiceServer) DeleteReviewConfig(context.Context, *DeleteReviewConfigRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteReviewConfig not implemented")
}

func RegisterReviewConfigServiceServer(s grpc.ServiceRegistrar, srv ReviewConfigServiceServer) {
	s.RegisterService(&ReviewConfigService_ServiceDesc, srv)
}

// ReviewConfigService_ServiceDesc is the grpc.ServiceDesc for ReviewConfigService.
var ReviewConfigService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.ReviewConfigService",
	HandlerType: (*ReviewConfigServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateReviewConfig",
			Handler:    unaryHandler(ReviewConfigService_CreateReviewConfig_FullMethodName, ReviewConfigServiceServer.CreateReviewConfig),
		},
		{
			MethodName: "ListReviewConfigs",
			Handler:    unaryHandler(ReviewConfigService_ListReviewConfigs_FullMethodName, ReviewConfigServiceServer.ListReviewConfigs),
		},
		{
			MethodName: "GetReviewConfig",
			Handler:    unaryHandler(ReviewConfigService_GetReviewConfig_FullMethodName, ReviewConfigServiceServer.GetReviewConfig),
		},
		{
			MethodName: "UpdateReviewConfig",
			Handler:    unaryHandler(ReviewConfigService_UpdateReviewConfig_FullMethodName, ReviewConfigServiceServer.UpdateReviewConfig),
		},
		{
			MethodName: "DeleteReviewConfig",
			Handler:    unaryHandler(ReviewConfigService_DeleteReviewConfig_FullMethodName, ReviewConfigServiceServer.DeleteReviewConfig),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/review_config_service.proto",
}

// ReviewConfigService_HTTPRules are the REST bindings of ReviewConfigService.
var ReviewConfigService_HTTPRules = []HTTPRule{
	{Method: "CreateReviewConfig", Verb: "POST", Path: "/v1/reviewConfigs", Body: "review_config"},
	{Method: "ListReviewConfigs", Verb: "GET", Path: "/v1/reviewConfigs"},
	{Method: "GetReviewConfig", Verb: "GET", Path: "/v1/{name=reviewConfigs/*}"},
	{Method: "UpdateReviewConfig", Verb: "PATCH", Path: "/v1/{review_config.name=reviewConfigs/*}", Body: "review_config"},
	{Method: "DeleteReviewConfig", Verb: "DELETE", Path: "/v1/{name=reviewConfigs/*}"},
}
