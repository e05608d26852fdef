package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AnomalyService_SearchAnomalies_FullMethodName = "/dbconsole.v1.AnomalyService/SearchAnomalies"
)

// AnomalyServiceClient is the client API for AnomalyService.
type AnomalyServiceClient interface {
	SearchAnomalies(ctx context.Context, in *SearchAnomaliesRequest, opts ...grpc.CallOption) (*SearchAnomaliesResponse, error)
}

type anomalyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAnomalyServiceClient(cc grpc.ClientConnInterface) AnomalyServiceClient {
	return &anomalyServiceClient{cc}
}

func (c *anomalyServiceClient) SearchAnomalies(ctx context.Context, in *SearchAnomaliesRequest, opts ...grpc.CallOption) (*SearchAnomaliesResponse, error) {
	return invoke[SearchAnomaliesResponse](ctx, c.cc, AnomalyService_SearchAnomalies_FullMethodName, in, opts...)
}

// AnomalyServiceServer is the server API for AnomalyService.
type AnomalyServiceServer interface {
	SearchAnomalies(context.Context, *SearchAnomaliesRequest) (*SearchAnomaliesResponse, error)
}

// UnimplementedAnomalyServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedAnomalyServiceServer struct{}

func (UnimplementedAnomalyServiceServer) SearchAnomalies(context.Context, *SearchAnomaliesRequest) (*SearchAnomaliesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchAnomalies not implemented")
}

func RegisterAnomalyServiceServer(s grpc.ServiceRegistrar, srv AnomalyServiceServer) {
	s.RegisterService(&AnomalyService_ServiceDesc, srv)
}

// AnomalyService_ServiceDesc is the grpc.ServiceDesc for AnomalyService.
var AnomalyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.AnomalyService",
	HandlerType: (*AnomalyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SearchAnomalies",
			Handler:    unaryHandler(AnomalyService_SearchAnomalies_FullMethodName, AnomalyServiceServer.SearchAnomalies),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/anomaly_service.proto",
}

// AnomalyService_HTTPRules are the REST bindings of AnomalyService.
var AnomalyService_HTTPRules = []HTTPRule{
	{Method: "SearchAnomalies", Verb: "POST", Path: "/v1/anomalies:search", Body: "*"},
	{Method: "SearchAnomalies", Verb: "POST", Path: "/v1/{parent=projects/*}/anomalies:search", Body: "*"},
}
