package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	OrgPolicyService_GetPolicy_FullMethodName    = "/dbconsole.v1.OrgPolicyService/GetPolicy"
	OrgPolicyService_ListPolicies_FullMethodName = "/dbconsole.v1.OrgPolicyService/ListPolicies"
	OrgPolicyService_CreatePolicy_FullMethodName = "/dbconsole.v1.OrgPolicyService/CreatePolicy"
	OrgPolicyService_UpdatePolicy_FullMethodName = "/dbconsole.v1.OrgPolicyService/UpdatePolicy"
	OrgPolicyService_DeletePolicy_FullMethodName = "/dbconsole.v1.OrgPolicyService/DeletePolicy"
)

// OrgPolicyServiceClient is the client API for OrgPolicyService.
type OrgPolicyServiceClient interface {
	GetPolicy(ctx context.Context, in *GetPolicyRequest, opts ...grpc.CallOption) (*Policy, error)
	ListPolicies(ctx context.Context, in *ListPoliciesRequest, opts ...grpc.CallOption) (*ListPoliciesResponse, error)
	CreatePolicy(ctx context.Context, in *CreatePolicyRequest, opts ...grpc.CallOption) (*Policy, error)
	UpdatePolicy(ctx context.Context, in *UpdatePolicyRequest, opts ...grpc.CallOption) (*Policy, error)
	DeletePolicy(ctx context.Context, in *DeletePolicyRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type orgPolicyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrgPolicyServiceClient(cc grpc.ClientConnInterface) OrgPolicyServiceClient {
	return &orgPolicyServiceClient{cc}
}

func (c *orgPolicyServiceClient) GetPolicy(ctx context.Context, in *GetPolicyRequest, opts ...grpc.CallOption) (*Policy, error) {
	return invoke[Policy](ctx, c.cc, OrgPolicyService_GetPolicy_FullMethodName, in, opts...)
}

func (c *orgPolicyServiceClient) ListPolicies(ctx context.Context, in *ListPoliciesRequest, opts ...grpc.CallOption) (*ListPoliciesResponse, error) {
	return invoke[ListPoliciesResponse](ctx, c.cc, OrgPolicyService_ListPolicies_FullMethodName, in, opts...)
}

func (c *orgPolicyServiceClient) CreatePolicy(ctx context.Context, in *CreatePolicyRequest, opts ...grpc.CallOption) (*Policy, error) {
	return invoke[Policy](ctx, c.cc, OrgPolicyService_CreatePolicy_FullMethodName, in, opts...)
}

func (c *orgPolicyServiceClient) UpdatePolicy(ctx context.Context, in *UpdatePolicyRequest, opts ...grpc.CallOption) (*Policy, error) {
	return invoke[Policy](ctx, c.cc, OrgPolicyService_UpdatePolicy_FullMethodName, in, opts...)
}

func (c *orgPolicyServiceClient) DeletePolicy(ctx context.Context, in *DeletePolicyRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, OrgPolicyService_DeletePolicy_FullMethodName, in, opts...)
}

// OrgPolicyServiceServer is the server API for OrgPolicyService.
type OrgPolicyServiceServer interface {
	GetPolicy(context.Context, *GetPolicyRequest) (*Policy, error)
	ListPolicies(context.Context, *ListPoliciesRequest) (*ListPoliciesResponse, error)
	CreatePolicy(context.Context, *CreatePolicyRequest) (*Policy, error)
	UpdatePolicy(context.Context, *UpdatePolicyRequest) (*Policy, error)
	DeletePolicy(context.Context, *DeletePolicyRequest) (*emptypb.Empty, error)
}

// UnimplementedOrgPolicyServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedOrgPolicyServiceServer struct{}

func (UnimplementedOrgPolicyServiceServer) GetPolicy(context.Context, *GetPolicyRequest) (*Policy, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPolicy not implemented")
}
func (UnimplementedOrgPolicyServiceServer) ListPolicies(context.Context, *ListPoliciesRequest) (*ListPoliciesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPolicies not implemented")
}
func (UnimplementedOrgPolicyServiceServer) CreatePolicy(context.Context, *CreatePolicyRequest) (*Policy, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePolicy not implemented")
}
func (UnimplementedOrgPolicyServiceServer) UpdatePolicy(context.Context, *UpdatePolicyRequest) (*Policy, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePolicy not implemented")
}
func (UnimplementedOrgPolicyServiceServer) DeletePolicy(context.Context, *DeletePolicyRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePolicy not implemented")
}

func RegisterOrgPolicyServiceServer(s grpc.ServiceRegistrar, srv OrgPolicyServiceServer) {
	s.RegisterService(&OrgPolicyService_ServiceDesc, srv)
}

// OrgPolicyService_ServiceDesc is the grpc.ServiceDesc for OrgPolicyService.
var OrgPolicyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.OrgPolicyService",
	HandlerType: (*OrgPolicyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetPolicy",
			Handler:    unaryHandler(OrgPolicyService_GetPolicy_FullMethodName, OrgPolicyServiceServer.GetPolicy),
		},
		{
			MethodName: "ListPolicies",
			Handler:    unaryHandler(OrgPolicyService_ListPolicies_FullMethodName, OrgPolicyServiceServer.ListPolicies),
		},
		{
			MethodName: "CreatePolicy",
			Handler:    unaryHandler(OrgPolicyService_CreatePolicy_FullMethodName, OrgPolicyServiceServer.CreatePolicy),
		},
		{
			MethodName: "UpdatePolicy",
			Handler:    unaryHandler(OrgPolicyService_UpdatePolicy_FullMethodName, OrgPolicyServiceServer.UpdatePolicy),
		},
		{
			MethodName: "DeletePolicy",
			Handler:    unaryHandler(OrgPolicyService_DeletePolicy_FullMethodName, OrgPolicyServiceServer.DeletePolicy),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/org_policy_service.proto",
}

// OrgPolicyService_HTTPRules are the REST bindings of OrgPolicyService.
var OrgPolicyService_HTTPRules = []HTTPRule{
	{Method: "GetPolicy", Verb: "GET", Path: "/v1/{name=policies/*}"},
	{Method: "GetPolicy", Verb: "GET", Path: "/v1/{name=projects/*/policies/*}"},
	{Method: "GetPolicy", Verb: "GET", Path: "/v1/{name=environments/*/policies/*}"},
	{Method: "GetPolicy", Verb: "GET", Path: "/v1/{name=instances/*/policies/*}"},
	{Method: "GetPolicy", Verb: "GET", Path: "/v1/{name=instances/*/databases/*/policies/*}"},
	{Method: "ListPolicies", Verb: "GET", Path: "/v1/policies"},
	{Method: "ListPolicies", Verb: "GET", Path: "/v1/{parent=projects/*}/policies"},
	{Method: "ListPolicies", Verb: "GET", Path: "/v1/{parent=environments/*}/policies"},
	{Method: "ListPolicies", Verb: "GET", Path: "/v1/{parent=instances/*}/policies"},
	{Method: "ListPolicies", Verb: "GET", Path: "/v1/{parent=instances/*/databases/*}/policies"},
	{Method: "CreatePolicy", Verb: "POST", Path: "/v1/policies", Body: "policy"},
	{Method: "CreatePolicy", Verb: "POST", Path: "/v1/{parent=projects/*}/policies", Body: "policy"},
	{Method: "CreatePolicy", Verb: "POST", Path: "/v1/{parent=environments/*}/policies", Body: "policy"},
	{Method: "CreatePolicy", Verb: "POST", Path: "/v1/{parent=instances/*}/policies", Body: "policy"},
	{Method: "CreatePolicy", Verb: "POST", Path: "/v1/{parent=instances/*/databases/*}/policies", Body: "policy"},
	{Method: "UpdatePolicy", Verb: "PATCH", Path: "/v1/{policy.name=policies/*}", Body: "policy"},
	{Method: "UpdatePolicy", Verb: "PATCH", Path: "/v1/{policy.name=projects/*/policies/*}", Body: "policy"},
	{Method: "UpdatePolicy", Verb: "PATCH", Path: "/v1/{policy.name=environments/*/policies/*}", Body: "policy"},
	{Method: "UpdatePolicy", Verb: "PATCH", Path: "/v1/{policy.name=instances/*/policies/*}", Body: "policy"},
	{Method: "UpdatePolicy", Verb: "PATCH", Path: "/v1/{policy.name=instances/*/databases/*/policies/*}", Body: "policy"},
	{Method: "DeletePolicy", Verb: "DELETE", Path: "/v1/{name=policies/*}"},
	{Method: "DeletePolicy", Verb: "DELETE", Path: "/v1/{name=projects/*/policies/*}"},
	{Method: "DeletePolicy", Verb: "DELETE", Path: "/v1/{name=environments/*/policies/*}"},
	{Method: "DeletePolicy", Verb: "DELETE", Path: "/v1/{name=instances/*/policies/*}"},
	{Method: "DeletePolicy", Verb: "DELETE", Path: "/v1/{name=instances/*/databases/*/policies/*}"},
}
