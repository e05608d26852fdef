package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type IdentityProviderType int32

const (
	IdentityProviderType_IDENTITY_PROVIDER_TYPE_UNSPECIFIED IdentityProviderType = 0
	IdentityProviderType_OAUTH2                             IdentityProviderType = 1
	IdentityProviderType_OIDC                               IdentityProviderType = 2
	IdentityProviderType_LDAP                               IdentityProviderType = 3
)

var (
	IdentityProviderType_name = map[int32]string{
		0: "IDENTITY_PROVIDER_TYPE_UNSPECIFIED",
		1: "OAUTH2",
		2: "OIDC",
		3: "LDAP",
	}
	IdentityProviderType_value = map[string]int32{
		"IDENTITY_PROVIDER_TYPE_UNSPECIFIED": 0,
		"OAUTH2":                             1,
		"OIDC":                               2,
		"LDAP":                               3,
	}
)

func (x IdentityProviderType) String() string {
	return wire.EnumName(IdentityProviderType_name, int32(x))
}
func (IdentityProviderType) EnumValues() map[string]int32 { return IdentityProviderType_value }

type OAuth2AuthStyle int32

const (
	OAuth2AuthStyle_OAUTH2_AUTH_STYLE_UNSPECIFIED OAuth2AuthStyle = 0
	OAuth2AuthStyle_IN_PARAMS                     OAuth2AuthStyle = 1
	OAuth2AuthStyle_IN_HEADER                     OAuth2AuthStyle = 2
)

var (
	OAuth2AuthStyle_name = map[int32]string{
		0: "OAUTH2_AUTH_STYLE_UNSPECIFIED",
		1: "IN_PARAMS",
		2: "IN_HEADER",
	}
	OAuth2AuthStyle_value = map[string]int32{
		"OAUTH2_AUTH_STYLE_UNSPECIFIED": 0,
		"IN_PARAMS":                     1,
		"IN_HEADER":                     2,
	}
)

func (x OAuth2AuthStyle) String() string {
	return wire.EnumName(OAuth2AuthStyle_name, int32(x))
}
func (OAuth2AuthStyle) EnumValues() map[string]int32 { return OAuth2AuthStyle_value }

type IdentityProvider struct {
	// Format: idps/{idp}
	Name   string                  `protobuf:"1,name"`
	State  State                   `protobuf:"2,state"`
	Title  string                  `protobuf:"3,title"`
	Domain string                  `protobuf:"4,domain"`
	Type   IdentityProviderType    `protobuf:"5,type"`
	Config *IdentityProviderConfig `protobuf:"6,config"`
}

// IdentityProviderConfig holds exactly one of the provider configurations.
type IdentityProviderConfig struct {
	Oauth2Config *OAuth2IdentityProviderConfig `protobuf:"1,oauth2_config,oneof=config"`
	OidcConfig   *OIDCIdentityProviderConfig   `protobuf:"2,oidc_config,oneof=config"`
	LdapConfig   *LDAPIdentityProviderConfig   `protobuf:"3,ldap_config,oneof=config"`
}

type OAuth2IdentityProviderConfig struct {
	AuthUrl     string `protobuf:"1,auth_url"`
	TokenUrl    string `protobuf:"2,token_url"`
	UserInfoUrl string `protobuf:"3,user_info_url"`
	ClientId    string `protobuf:"4,client_id"`
	// Input only. Never returned.
	ClientSecret  string          `protobuf:"5,client_secret"`
	Scopes        []string        `protobuf:"6,scopes"`
	FieldMapping  *FieldMapping   `protobuf:"7,field_mapping"`
	SkipTlsVerify bool            `protobuf:"8,skip_tls_verify"`
	AuthStyle     OAuth2AuthStyle `protobuf:"9,auth_style"`
}

type OIDCIdentityProviderConfig struct {
	Issuer   string `protobuf:"1,issuer"`
	ClientId string `protobuf:"2,client_id"`
	// Input only. Never returned.
	ClientSecret  string          `protobuf:"3,client_secret"`
	Scopes        []string        `protobuf:"4,scopes"`
	FieldMapping  *FieldMapping   `protobuf:"5,field_mapping"`
	SkipTlsVerify bool            `protobuf:"6,skip_tls_verify"`
	AuthStyle     OAuth2AuthStyle `protobuf:"7,auth_style"`
}

type LDAPIdentityProviderConfig struct {
	Host   string `protobuf:"1,host"`
	Port   int32  `protobuf:"2,port"`
	BindDn string `protobuf:"3,bind_dn"`
	// Input only. Never returned.
	BindPassword string        `protobuf:"4,bind_password"`
	BaseDn       string        `protobuf:"5,base_dn"`
	UserFilter   string        `protobuf:"6,user_filter"`
	FieldMapping *FieldMapping `protobuf:"7,field_mapping"`
}

// FieldMapping names the user-info claims that fill in a user.
type FieldMapping struct {
	// Claim holding the user's email. Required.
	Identifier  string `protobuf:"1,identifier"`
	DisplayName string `protobuf:"2,display_name"`
	Phone       string `protobuf:"3,phone"`
}

type GetIdentityProviderRequest struct {
	Name string `protobuf:"1,name"`
}

type ListIdentityProvidersRequest struct {
	PageSize    int32  `protobuf:"1,page_size"`
	PageToken   string `protobuf:"2,page_token"`
	ShowDeleted bool   `protobuf:"3,show_deleted"`
}

type ListIdentityProvidersResponse struct {
	IdentityProviders []*IdentityProvider `protobuf:"1,identity_providers"`
	NextPageToken     string              `protobuf:"2,next_page_token"`
}

type CreateIdentityProviderRequest struct {
	IdentityProvider   *IdentityProvider `protobuf:"1,identity_provider"`
	IdentityProviderId string            `protobuf:"2,identity_provider_id"`
}

type UpdateIdentityProviderRequest struct {
	IdentityProvider *IdentityProvider      `protobuf:"1,identity_provider"`
	UpdateMask       *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
}

type DeleteIdentityProviderRequest struct {
	Name string `protobuf:"1,name"`
}

type UndeleteIdentityProviderRequest struct {
	Name string `protobuf:"1,name"`
}

type TestIdentityProviderRequest struct {
	// The provider to test. It does not need to be saved.
	IdentityProvider *IdentityProvider        `protobuf:"1,identity_provider"`
	Context          *IdentityProviderContext `protobuf:"2,context"`
}

type TestIdentityProviderResponse struct {
	// Claims returned by the provider's user-info endpoint.
	Claims map[string]string `protobuf:"1,claims"`
	// The user the claims map to.
	UserInfo *User `protobuf:"2,user_info"`
}
