package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AuditLogService_SearchAuditLogs_FullMethodName = "/dbconsole.v1.AuditLogService/SearchAuditLogs"
	AuditLogService_ExportAuditLogs_FullMethodName = "/dbconsole.v1.AuditLogService/ExportAuditLogs"
)

// AuditLogServiceClient is the client API for AuditLogService.
type AuditLogServiceClient interface {
	SearchAuditLogs(ctx context.Context, in *SearchAuditLogsRequest, opts ...grpc.CallOption) (*SearchAuditLogsResponse, error)
	ExportAuditLogs(ctx context.Context, in *ExportAuditLogsRequest, opts ...grpc.CallOption) (*ExportAuditLogsResponse, error)
}

type auditLogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuditLogServiceClient(cc grpc.ClientConnInterface) AuditLogServiceClient {
	return &auditLogServiceClient{cc}
}

func (c *auditLogServiceClient) SearchAuditLogs(ctx context.Context, in *SearchAuditLogsRequest, opts ...grpc.CallOption) (*SearchAuditLogsResponse, error) {
	return invoke[SearchAuditLogsResponse](ctx, c.cc, AuditLogService_SearchAuditLogs_FullMethodName, in, opts...)
}

func (c *auditLogServiceClient) ExportAuditLogs(ctx context.Context, in *ExportAuditLogsRequest, opts ...grpc.CallOption) (*ExportAuditLogsResponse, error) {
	return invoke[ExportAuditLogsResponse](ctx, c.cc, AuditLogService_ExportAuditLogs_FullMethodName, in, opts...)
}

// AuditLogServiceServer is the server API for AuditLogService.
type AuditLogServiceServer interface {
	SearchAuditLogs(context.Context, *SearchAuditLogsRequest) (*SearchAuditLogsResponse, error)
	ExportAuditLogs(context.Context, *ExportAuditLogsRequest) (*ExportAuditLogsResponse, error)
}

// UnimplementedAuditLogServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedAuditLogServiceServer struct{}

func (UnimplementedAuditLogServiceServer) SearchAuditLogs(context.Context, *SearchAuditLogsRequest) (*SearchAuditLogsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchAuditLogs not implemented")
}
func (UnimplementedAuditLogServiceServer) ExportAuditLogs(context.Context, *ExportAuditLogsRequest) (*ExportAuditLogsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportAuditLogs not implemented")
}

func RegisterAuditLogServiceServer(s grpc.ServiceRegistrar, srv AuditLogServiceServer) {
	s.RegisterService(&AuditLogService_ServiceDesc, srv)
}

// AuditLogService_ServiceDesc is the grpc.ServiceDesc for AuditLogService.
var AuditLogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.AuditLogService",
	HandlerType: (*AuditLogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SearchAuditLogs",
			Handler:    unaryHandler(AuditLogService_SearchAuditLogs_FullMethodName, AuditLogServiceServer.SearchAuditLogs),
		},
		{
			MethodName: "ExportAuditLogs",
			Handler:    unaryHandler(AuditLogService_ExportAuditLogs_FullMethodName, AuditLogServiceServer.ExportAuditLogs),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/audit_log_service.proto",
}

// AuditLogService_HTTPRules are the REST bindings of AuditLogService.
var AuditLogService_HTTPRules = []HTTPRule{
	{Method: "SearchAuditLogs", Verb: "POST", Path: "/v1/auditLogs:search", Body: "*"},
	{Method: "SearchAuditLogs", Verb: "POST", Path: "/v1/{parent=projects/*}/auditLogs:search", Body: "*"},
	{Method: "ExportAuditLogs", Verb: "POST", Path: "/v1/auditLogs:export", Body: "*"},
	{Method: "ExportAuditLogs", Verb: "POST", Path: "/v1/{parent=projects/*}/auditLogs:export", Body: "*"},
}
