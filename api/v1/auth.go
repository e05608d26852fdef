package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type UserType int32

const (
	UserType_USER_TYPE_UNSPECIFIED UserType = 0
	UserType_USER                  UserType = 1
	UserType_SYSTEM_BOT            UserType = 2
	UserType_SERVICE_ACCOUNT       UserType = 3
)

var (
	UserType_name = map[int32]string{
		0: "USER_TYPE_UNSPECIFIED",
		1: "USER",
		2: "SYSTEM_BOT",
		3: "SERVICE_ACCOUNT",
	}
	UserType_value = map[string]int32{
		"USER_TYPE_UNSPECIFIED": 0,
		"USER":                  1,
		"SYSTEM_BOT":            2,
		"SERVICE_ACCOUNT":       3,
	}
)

func (x UserType) String() string             { return wire.EnumName(UserType_name, int32(x)) }
func (UserType) EnumValues() map[string]int32 { return UserType_value }

type User struct {
	// Format: users/{email}
	Name     string   `protobuf:"1,name"`
	State    State    `protobuf:"2,state"`
	Email    string   `protobuf:"3,email"`
	Title    string   `protobuf:"4,title"`
	UserType UserType `protobuf:"5,user_type"`
	// Input only. Never returned.
	Password   string                 `protobuf:"6,password"`
	Phone      string                 `protobuf:"7,phone"`
	CreateTime *timestamppb.Timestamp `protobuf:"8,create_time"`
	// Workspace roles, e.g. roles/workspaceAdmin.
	Roles []string `protobuf:"9,roles"`
}

type GetUserRequest struct {
	// Format: users/{email}
	Name string `protobuf:"1,name"`
}

type ListUsersRequest struct {
	PageSize    int32  `protobuf:"1,page_size"`
	PageToken   string `protobuf:"2,page_token"`
	ShowDeleted bool   `protobuf:"3,show_deleted"`
	// e.g. email.contains("@example.com") && user_type == "USER"
	Filter string `protobuf:"4,filter"`
}

type ListUsersResponse struct {
	Users         []*User `protobuf:"1,users"`
	NextPageToken string  `protobuf:"2,next_page_token"`
}

type CreateUserRequest struct {
	User *User `protobuf:"1,user"`
}

type UpdateUserRequest struct {
	User       *User                  `protobuf:"1,user"`
	UpdateMask *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
	// Required when a user changes their own password.
	OtpCode *string `protobuf:"3,otp_code"`
}

type DeleteUserRequest struct {
	Name string `protobuf:"1,name"`
}

type UndeleteUserRequest struct {
	Name string `protobuf:"1,name"`
}

type LoginRequest struct {
	Email    string `protobuf:"1,email"`
	Password string `protobuf:"2,password"`
	// When set the token is also returned as an access-token cookie.
	Web bool `protobuf:"3,web"`
	// Format: idps/{idp}
	IdpName    string                   `protobuf:"4,idp_name"`
	IdpContext *IdentityProviderContext `protobuf:"5,idp_context"`
}

type LoginResponse struct {
	Token                string `protobuf:"1,token"`
	User                 *User  `protobuf:"2,user"`
	RequireResetPassword bool   `protobuf:"3,require_reset_password"`
}

type LogoutRequest struct{}

// IdentityProviderContext carries the result of the browser side of an IdP
// login. Only one of the contexts is set.
type IdentityProviderContext struct {
	Oauth2Context *OAuth2IdentityProviderContext `protobuf:"1,oauth2_context,oneof=context"`
	OidcContext   *OIDCIdentityProviderContext   `protobuf:"2,oidc_context,oneof=context"`
}

type OAuth2IdentityProviderContext struct {
	Code string `protobuf:"1,code"`
}

type OIDCIdentityProviderContext struct {
	Code string `protobuf:"1,code"`
}
