package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/models"
)

var instanceFilter string

// instancesCmd represents the instances command
var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "Manage database instances",
}

var listInstancesCmd = &cobra.Command{
	Use:   "list",
	Short: "List instances",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tTITLE\tENGINE\tVERSION\tENVIRONMENT\tLAST SYNC")
		req := &v1pb.ListInstancesRequest{Filter: instanceFilter}
		for {
			resp, err := c.Instances.ListInstances(ctx, req)
			if err != nil {
				return fmt.Errorf("list instances: %w", err)
			}
			for _, inst := range resp.Instances {
				synced := "never"
				if inst.LastSyncTime != nil {
					synced = humanize.Time(inst.LastSyncTime.AsTime())
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", inst.Name, inst.Title, inst.Engine, inst.EngineVersion, inst.Environment, synced)
			}
			if resp.NextPageToken == "" {
				break
			}
			req.PageToken = resp.NextPageToken
		}
		return w.Flush()
	},
}

var syncInstanceCmd = &cobra.Command{
	Use:   "sync [instance-id]",
	Short: "Sync the schema metadata of an instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		name := models.FormatInstance(args[0])
		resp, err := c.Instances.SyncInstance(ctx, &v1pb.SyncInstanceRequest{Name: name})
		if err != nil {
			return fmt.Errorf("sync instance: %w", err)
		}
		fmt.Printf("Synced %s, found %d databases\n", name, len(resp.Databases))
		for _, db := range resp.Databases {
			fmt.Printf("  %s\n", db)
		}
		return nil
	},
}

func init() {
	listInstancesCmd.Flags().StringVar(&instanceFilter, "filter", "", `Filter expression, e.g. engine == "MYSQL"`)

	instancesCmd.AddCommand(listInstancesCmd)
	instancesCmd.AddCommand(syncInstanceCmd)
}
