package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/models"
)

var (
	envShowDeleted bool
	envTitle       string
	envProtected   bool
	envColor       string
)

// environmentsCmd represents the environments command
var environmentsCmd = &cobra.Command{
	Use:     "environments",
	Aliases: []string{"env"},
	Short:   "Manage environments",
}

var listEnvironmentsCmd = &cobra.Command{
	Use:   "list",
	Short: "List environments in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tTITLE\tORDER\tTIER\tSTATE")
		req := &v1pb.ListEnvironmentsRequest{ShowDeleted: envShowDeleted}
		for {
			resp, err := c.Environments.ListEnvironments(ctx, req)
			if err != nil {
				return fmt.Errorf("list environments: %w", err)
			}
			for _, e := range resp.Environments {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.Name, e.Title, e.Order, e.Tier, e.State)
			}
			if resp.NextPageToken == "" {
				break
			}
			req.PageToken = resp.NextPageToken
		}
		return w.Flush()
	},
}

var createEnvironmentCmd = &cobra.Command{
	Use:   "create [environment-id]",
	Short: "Create an environment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		title := envTitle
		if title == "" {
			title = args[0]
		}
		tier := v1pb.EnvironmentTier_UNPROTECTED
		if envProtected {
			tier = v1pb.EnvironmentTier_PROTECTED
		}
		env, err := c.Environments.CreateEnvironment(ctx, &v1pb.CreateEnvironmentRequest{
			EnvironmentId: args[0],
			Environment:   &v1pb.Environment{Title: title, Tier: tier, Color: envColor},
		})
		if err != nil {
			return fmt.Errorf("create environment: %w", err)
		}
		fmt.Printf("Created %s (order %d)\n", env.Name, env.Order)
		return nil
	},
}

var deleteEnvironmentCmd = &cobra.Command{
	Use:   "delete [environment-id]",
	Short: "Delete an environment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		name := models.FormatEnvironment(args[0])
		if _, err := c.Environments.DeleteEnvironment(ctx, &v1pb.DeleteEnvironmentRequest{Name: name}); err != nil {
			return fmt.Errorf("delete environment: %w", err)
		}
		fmt.Printf("Deleted %s\n", name)
		return nil
	},
}

func init() {
	listEnvironmentsCmd.Flags().BoolVar(&envShowDeleted, "show-deleted", false, "Include deleted environments")
	createEnvironmentCmd.Flags().StringVar(&envTitle, "title", "", "Display title, defaults to the id")
	createEnvironmentCmd.Flags().BoolVar(&envProtected, "protected", false, "Create a protected environment")
	createEnvironmentCmd.Flags().StringVar(&envColor, "color", "", "Hex color such as #4f46e5")

	environmentsCmd.AddCommand(listEnvironmentsCmd)
	environmentsCmd.AddCommand(createEnvironmentCmd)
	environmentsCmd.AddCommand(deleteEnvironmentCmd)
}
