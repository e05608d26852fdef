package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	AuthService_GetUser_FullMethodName      = "/dbconsole.v1.AuthService/GetUser"
	AuthService_ListUsers_FullMethodName    = "/dbconsole.v1.AuthService/ListUsers"
	AuthService_CreateUser_FullMethodName   = "/dbconsole.v1.AuthService/CreateUser"
	AuthService_UpdateUser_FullMethodName   = "/dbconsole.v1.AuthService/UpdateUser"
	AuthService_DeleteUser_FullMethodName   = "/dbconsole.v1.AuthService/DeleteUser"
	AuthService_UndeleteUser_FullMethodName = "/dbconsole.v1.AuthService/UndeleteUser"
	AuthService_Login_FullMethodName        = "/dbconsole.v1.AuthService/Login"
	AuthService_Logout_FullMethodName       = "/dbconsole.v1.AuthService/Logout"
)

// AuthServiceClient is the client API for AuthService.
type AuthServiceClient interface {
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error)
	UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error)
	DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UndeleteUser(ctx context.Context, in *UndeleteUserRequest, opts ...grpc.CallOption) (*User, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, AuthService_GetUser_FullMethodName, in, opts...)
}

func (c *authServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, AuthService_ListUsers_FullMethodName, in, opts...)
}

func (c *authServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, AuthService_CreateUser_FullMethodName, in, opts...)
}

func (c *authServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, AuthService_UpdateUser_FullMethodName, in, opts...)
}

func (c *authServiceClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, AuthService_DeleteUser_FullMethodName, in, opts...)
}

func (c *authServiceClient) UndeleteUser(ctx context.Context, in *UndeleteUserRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, AuthService_UndeleteUser_FullMethodName, in, opts...)
}

func (c *authServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AuthService_Login_FullMethodName, in, opts...)
}

func (c *authServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, AuthService_Logout_FullMethodName, in, opts...)
}

// AuthServiceServer is the server API for AuthService.
type AuthServiceServer interface {
	GetUser(context.Context, *GetUserRequest) (*User, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	CreateUser(context.Context, *CreateUserRequest) (*User, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*User, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*emptypb.Empty, error)
	UndeleteUser(context.Context, *UndeleteUserRequest) (*User, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*emptypb.Empty, error)
}

// UnimplementedAuthServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) GetUser(context.Context, *GetUserRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedAuthServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsers not implemented")
}
func (UnimplementedAuthServiceServer) CreateUser(context.Context, *CreateUserRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateUser not implemented")
}
func (UnimplementedAuthServiceServer) UpdateUser(context.Context, *UpdateUserRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateUser not implemented")
}
func (UnimplementedAuthServiceServer) DeleteUser(context.Context, *DeleteUserRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteUser not implemented")
}
func (UnimplementedAuthServiceServer) UndeleteUser(context.Context, *UndeleteUserRequest) (*User, error) {
	return nil, status.Error(codes.Unimplemented, "method UndeleteUser not implemented")
}
func (UnimplementedAuthServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAuthServiceServer) Logout(context.Context, *LogoutRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for AuthService.
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dbconsole.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetUser",
			Handler:    unaryHandler(AuthService_GetUser_FullMethodName, AuthServiceServer.GetUser),
		},
		{
			MethodName: "ListUsers",
			Handler:    unaryHandler(AuthService_ListUsers_FullMethodName, AuthServiceServer.ListUsers),
		},
		{
			MethodName: "CreateUser",
			Handler:    unaryHandler(AuthService_CreateUser_FullMethodName, AuthServiceServer.CreateUser),
		},
		{
			MethodName: "UpdateUser",
			Handler:    unaryHandler(AuthService_UpdateUser_FullMethodName, AuthServiceServer.UpdateUser),
		},
		{
			MethodName: "DeleteUser",
			Handler:    unaryHandler(AuthService_DeleteUser_FullMethodName, AuthServiceServer.DeleteUser),
		},
		{
			MethodName: "UndeleteUser",
			Handler:    unaryHandler(AuthService_UndeleteUser_FullMethodName, AuthServiceServer.UndeleteUser),
		},
		{
			MethodName: "Login",
			Handler:    unaryHandler(AuthService_Login_FullMethodName, AuthServiceServer.Login),
		},
		{
			MethodName: "Logout",
			Handler:    unaryHandler(AuthService_Logout_FullMethodName, AuthServiceServer.Logout),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dbconsole/v1/auth_service.proto",
}

// AuthService_HTTPRules are the REST bindings of AuthService.
var AuthService_HTTPRules = []HTTPRule{
	{Method: "GetUser", Verb: "GET", Path: "/v1/{name=users/*}"},
	{Method: "ListUsers", Verb: "GET", Path: "/v1/users"},
	{Method: "CreateUser", Verb: "POST", Path: "/v1/users", Body: "user"},
	{Method: "UpdateUser", Verb: "PATCH", Path: "/v1/{user.name=users/*}", Body: "user"},
	{Method: "DeleteUser", Verb: "DELETE", Path: "/v1/{name=users/*}"},
	{Method: "UndeleteUser", Verb: "POST", Path: "/v1/{name=users/*}:undelete", Body: "*"},
	{Method: "Login", Verb: "POST", Path: "/v1/auth/login", Body: "*"},
	{Method: "Logout", Verb: "POST", Path: "/v1/auth/logout", Body: "*"},
}
