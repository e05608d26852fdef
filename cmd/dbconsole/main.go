package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/idot-digital/dbconsole/internal/client"
)

var (
	serverAddr string
	timeout    time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "dbconsole",
	Short:         "dbconsole command line interface",
	Long:          "Manage environments, instances, policies, releases and audit logs of a dbconsole server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addr := os.Getenv("DBCONSOLE_ADDR")
	if addr == "" {
		addr = "localhost:50051"
	}
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", addr, "gRPC address of the dbconsole server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout of each request")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(environmentsCmd)
	rootCmd.AddCommand(instancesCmd)
	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(auditLogsCmd)
	rootCmd.AddCommand(releasesCmd)
	rootCmd.AddCommand(treeCmd)
}

// connect dials the server with the stored login token.
func connect(cmd *cobra.Command) (*client.Client, context.Context, context.CancelFunc, error) {
	token, err := client.LoadToken(serverAddr)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := client.Dial(serverAddr, token)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	return c, ctx, func() {
		cancel()
		c.Close()
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
