// Package client dials a dbconsole server and keeps CLI login tokens in the
// system keyring.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

const keyringService = "dbconsole"

// ErrNotLoggedIn is returned when no token is stored for a server.
var ErrNotLoggedIn = errors.New("not logged in, run `dbconsole login` first")

// SaveToken stores the session token for addr.
func SaveToken(addr, token string) error {
	if err := keyring.Set(keyringService, addr, token); err != nil {
		return fmt.Errorf("store token in keyring: %w", err)
	}
	return nil
}

// LoadToken returns the session token stored for addr.
func LoadToken(addr string) (string, error) {
	token, err := keyring.Get(keyringService, addr)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("read token from keyring: %w", err)
	}
	return token, nil
}

// DeleteToken forgets the session token for addr. Deleting a missing token
// is not an error.
func DeleteToken(addr string) error {
	if err := keyring.Delete(keyringService, addr); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete token from keyring: %w", err)
	}
	return nil
}

// bearer attaches a session token to every call.
type bearer string

func (b bearer) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	if b == "" {
		return nil, nil
	}
	return map[string]string{"authorization": "Bearer " + string(b)}, nil
}

func (bearer) RequireTransportSecurity() bool { return false }

// Client bundles the service clients of one connection.
type Client struct {
	conn *grpc.ClientConn

	Auth         v1pb.AuthServiceClient
	Environments v1pb.EnvironmentServiceClient
	Instances    v1pb.InstanceServiceClient
	Databases    v1pb.DatabaseServiceClient
	Policies     v1pb.OrgPolicyServiceClient
	Releases     v1pb.ReleaseServiceClient
	AuditLogs    v1pb.AuditLogServiceClient
	Anomalies    v1pb.AnomalyServiceClient

	IdentityProviders v1pb.IdentityProviderServiceClient
	ReviewConfigs     v1pb.ReviewConfigServiceClient
	VCSProviders      v1pb.VCSProviderServiceClient
	VCSConnectors     v1pb.VCSConnectorServiceClient
}

// Dial connects to the gRPC endpoint at addr. An empty token dials
// anonymously.
func Dial(addr, token string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(bearer(token)),
	}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	return New(conn), nil
}

// New wraps an established connection.
func New(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:         conn,
		Auth:         v1pb.NewAuthServiceClient(conn),
		Environments: v1pb.NewEnvironmentServiceClient(conn),
		Instances:    v1pb.NewInstanceServiceClient(conn),
		Databases:    v1pb.NewDatabaseServiceClient(conn),
		Policies:     v1pb.NewOrgPolicyServiceClient(conn),
		Releases:     v1pb.NewReleaseServiceClient(conn),
		AuditLogs:    v1pb.NewAuditLogServiceClient(conn),
		Anomalies:    v1pb.NewAnomalyServiceClient(conn),

		IdentityProviders: v1pb.NewIdentityProviderServiceClient(conn),
		ReviewConfigs:     v1pb.NewReviewConfigServiceClient(conn),
		VCSProviders:      v1pb.NewVCSProviderServiceClient(conn),
		VCSConnectors:     v1pb.NewVCSConnectorServiceClient(conn),
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
