package idp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

// fakeProvider serves a token endpoint, a userinfo endpoint and an OIDC
// discovery document.
func fakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"issuer":"` + srv.URL + `","authorization_endpoint":"` + srv.URL + `/authorize","token_endpoint":"` + srv.URL + `/token","userinfo_endpoint":"` + srv.URL + `/userinfo"}`))
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-123" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"ana@example.com","name":"Ana","id":42,"verified":true,"groups":["a","b"]}`))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func oauth2IDP(url string) *v1pb.IdentityProvider {
	return &v1pb.IdentityProvider{
		Name:  "idps/corp",
		Title: "Corp",
		Type:  v1pb.IdentityProviderType_OAUTH2,
		Config: &v1pb.IdentityProviderConfig{Oauth2Config: &v1pb.OAuth2IdentityProviderConfig{
			AuthUrl:      url + "/authorize",
			TokenUrl:     url + "/token",
			UserInfoUrl:  url + "/userinfo",
			ClientId:     "client",
			ClientSecret: "secret",
			FieldMapping: &v1pb.FieldMapping{Identifier: "email", DisplayName: "name"},
			AuthStyle:    v1pb.OAuth2AuthStyle_IN_PARAMS,
		}},
	}
}

func TestOAuth2UserInfo(t *testing.T) {
	srv := fakeProvider(t)
	p, err := New(context.Background(), oauth2IDP(srv.URL), "http://localhost/oauth/callback")
	require.NoError(t, err)

	info, err := p.UserInfo(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", info.Identifier)
	assert.Equal(t, "Ana", info.DisplayName)
	assert.Equal(t, "42", info.Claims["id"])
	assert.Equal(t, "true", info.Claims["verified"])
	assert.Equal(t, `["a","b"]`, info.Claims["groups"])

	_, err = p.UserInfo(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestOIDCDiscovery(t *testing.T) {
	srv := fakeProvider(t)
	p, err := New(context.Background(), &v1pb.IdentityProvider{
		Title: "OIDC",
		Type:  v1pb.IdentityProviderType_OIDC,
		Config: &v1pb.IdentityProviderConfig{OidcConfig: &v1pb.OIDCIdentityProviderConfig{
			Issuer:       srv.URL,
			ClientId:     "client",
			ClientSecret: "secret",
			FieldMapping: &v1pb.FieldMapping{Identifier: "email"},
		}},
	}, "http://localhost/oauth/callback")
	require.NoError(t, err)

	info, err := p.UserInfo(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", info.Identifier)
	assert.Equal(t, "ana", info.DisplayName)
}

func TestMissingIdentifierClaim(t *testing.T) {
	_, err := mapClaims(map[string]any{"name": "Ana"}, &v1pb.FieldMapping{Identifier: "email"})
	assert.ErrorIs(t, err, ErrNoIdentifier)
}

func TestLDAPUnsupported(t *testing.T) {
	_, err := New(context.Background(), &v1pb.IdentityProvider{
		Type:   v1pb.IdentityProviderType_LDAP,
		Config: &v1pb.IdentityProviderConfig{LdapConfig: &v1pb.LDAPIdentityProviderConfig{Host: "ldap"}},
	}, "")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(oauth2IDP("https://idp.example.com")))

	missingMapping := oauth2IDP("https://idp.example.com")
	missingMapping.Config.Oauth2Config.FieldMapping = nil
	assert.Error(t, Validate(missingMapping))

	wrongConfig := oauth2IDP("https://idp.example.com")
	wrongConfig.Type = v1pb.IdentityProviderType_OIDC
	assert.Error(t, Validate(wrongConfig))

	assert.NoError(t, Validate(&v1pb.IdentityProvider{
		Title: "Directory",
		Type:  v1pb.IdentityProviderType_LDAP,
		Config: &v1pb.IdentityProviderConfig{LdapConfig: &v1pb.LDAPIdentityProviderConfig{
			Host: "ldap.example.com", Port: 389, BaseDn: "dc=example,dc=com",
			FieldMapping: &v1pb.FieldMapping{Identifier: "mail"},
		}},
	}))
}
