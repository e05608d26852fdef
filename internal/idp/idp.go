// Package idp signs users in through external identity providers: OAuth2
// authorization code exchange and OpenID Connect discovery.
package idp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

var (
	ErrUnsupported  = errors.New("identity provider type is not supported")
	ErrNoIdentifier = errors.New("user info has no identifier claim")
)

// CallbackPath is appended to the external URL to form the OAuth2
// redirect URL.
const CallbackPath = "/oauth/callback"

// UserInfo is the identity returned by a provider.
type UserInfo struct {
	Identifier  string
	DisplayName string
	Phone       string
	Claims      map[string]string
}

// Provider exchanges an authorization code for the user's identity.
type Provider interface {
	UserInfo(ctx context.Context, code string) (*UserInfo, error)
}

// Validate checks that the config of p matches its type.
func Validate(p *v1pb.IdentityProvider) error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Config == nil {
		return errors.New("config is required")
	}
	switch p.Type {
	case v1pb.IdentityProviderType_OAUTH2:
		c := p.Config.Oauth2Config
		if c == nil {
			return errors.New("oauth2_config is required for OAUTH2 providers")
		}
		if c.AuthUrl == "" || c.TokenUrl == "" || c.UserInfoUrl == "" || c.ClientId == "" {
			return errors.New("auth_url, token_url, user_info_url and client_id are required")
		}
		return validateMapping(c.FieldMapping)
	case v1pb.IdentityProviderType_OIDC:
		c := p.Config.OidcConfig
		if c == nil {
			return errors.New("oidc_config is required for OIDC providers")
		}
		if c.Issuer == "" || c.ClientId == "" {
			return errors.New("issuer and client_id are required")
		}
		return validateMapping(c.FieldMapping)
	case v1pb.IdentityProviderType_LDAP:
		c := p.Config.LdapConfig
		if c == nil {
			return errors.New("ldap_config is required for LDAP providers")
		}
		if c.Host == "" || c.Port <= 0 || c.BaseDn == "" {
			return errors.New("host, port and base_dn are required")
		}
		return validateMapping(c.FieldMapping)
	}
	return fmt.Errorf("invalid identity provider type %s", p.Type)
}

func validateMapping(m *v1pb.FieldMapping) error {
	if m == nil || m.Identifier == "" {
		return errors.New("field_mapping.identifier is required")
	}
	return nil
}

// New returns the provider for p. redirectURL must match the one used
// when the authorization code was requested.
func New(ctx context.Context, p *v1pb.IdentityProvider, redirectURL string) (Provider, error) {
	if p.Config == nil {
		return nil, errors.New("identity provider has no config")
	}
	switch p.Type {
	case v1pb.IdentityProviderType_OAUTH2:
		c := p.Config.Oauth2Config
		if c == nil {
			return nil, errors.New("identity provider has no oauth2 config")
		}
		return &oauth2Provider{
			config: oauth2.Config{
				ClientID:     c.ClientId,
				ClientSecret: c.ClientSecret,
				RedirectURL:  redirectURL,
				Scopes:       c.Scopes,
				Endpoint: oauth2.Endpoint{
					AuthURL:   c.AuthUrl,
					TokenURL:  c.TokenUrl,
					AuthStyle: authStyle(c.AuthStyle),
				},
			},
			userInfoURL: c.UserInfoUrl,
			mapping:     c.FieldMapping,
			client:      httpClient(c.SkipTlsVerify),
		}, nil
	case v1pb.IdentityProviderType_OIDC:
		c := p.Config.OidcConfig
		if c == nil {
			return nil, errors.New("identity provider has no oidc config")
		}
		client := httpClient(c.SkipTlsVerify)
		d, err := discover(ctx, client, c.Issuer)
		if err != nil {
			return nil, err
		}
		scopes := c.Scopes
		if len(scopes) == 0 {
			scopes = []string{"openid", "profile", "email"}
		}
		return &oauth2Provider{
			config: oauth2.Config{
				ClientID:     c.ClientId,
				ClientSecret: c.ClientSecret,
				RedirectURL:  redirectURL,
				Scopes:       scopes,
				Endpoint: oauth2.Endpoint{
					AuthURL:   d.AuthorizationEndpoint,
					TokenURL:  d.TokenEndpoint,
					AuthStyle: authStyle(c.AuthStyle),
				},
			},
			userInfoURL: d.UserinfoEndpoint,
			mapping:     c.FieldMapping,
			client:      client,
		}, nil
	case v1pb.IdentityProviderType_LDAP:
		return nil, ErrUnsupported
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, p.Type)
}

func authStyle(s v1pb.OAuth2AuthStyle) oauth2.AuthStyle {
	switch s {
	case v1pb.OAuth2AuthStyle_IN_PARAMS:
		return oauth2.AuthStyleInParams
	case v1pb.OAuth2AuthStyle_IN_HEADER:
		return oauth2.AuthStyleInHeader
	}
	return oauth2.AuthStyleAutoDetect
}

func httpClient(skipTLSVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if skipTLSVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &http.Client{Transport: transport, Timeout: 30 * time.Second}
}

type oauth2Provider struct {
	config      oauth2.Config
	userInfoURL string
	mapping     *v1pb.FieldMapping
	client      *http.Client
}

func (p *oauth2Provider) UserInfo(ctx context.Context, code string) (*UserInfo, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	var raw map[string]any
	if err := getJSON(ctx, p.config.Client(ctx, token), p.userInfoURL, &raw); err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	return mapClaims(raw, p.mapping)
}

func mapClaims(raw map[string]any, mapping *v1pb.FieldMapping) (*UserInfo, error) {
	claims := make(map[string]string, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case string:
			claims[k] = x
		case float64:
			claims[k] = strconv.FormatFloat(x, 'f', -1, 64)
		case bool:
			claims[k] = strconv.FormatBool(x)
		case nil:
		default:
			b, err := json.Marshal(x)
			if err == nil {
				claims[k] = string(b)
			}
		}
	}
	info := &UserInfo{Claims: claims}
	if mapping != nil {
		info.Identifier = claims[mapping.Identifier]
		info.DisplayName = claims[mapping.DisplayName]
		info.Phone = claims[mapping.Phone]
	}
	if info.Identifier == "" {
		return nil, ErrNoIdentifier
	}
	if info.DisplayName == "" {
		info.DisplayName, _, _ = strings.Cut(info.Identifier, "@")
	}
	return info, nil
}

type discovery struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserinfoEndpoint      string `json:"userinfo_endpoint"`
}

func discover(ctx context.Context, client *http.Client, issuer string) (*discovery, error) {
	var d discovery
	url := strings.TrimSuffix(issuer, "/") + "/.well-known/openid-configuration"
	if err := getJSON(ctx, client, url, &d); err != nil {
		return nil, fmt.Errorf("discover %s: %w", issuer, err)
	}
	if d.TokenEndpoint == "" || d.UserinfoEndpoint == "" {
		return nil, fmt.Errorf("discover %s: missing token or userinfo endpoint", issuer)
	}
	return &d, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %s: %s", url, resp.Status, strings.TrimSpace(string(body)))
	}
	return json.Unmarshal(body, out)
}
