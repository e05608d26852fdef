package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/models"
)

var (
	releaseProject string
	releaseTargets []string
)

// releasesCmd represents the releases command
var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Work with releases",
}

var checkReleaseCmd = &cobra.Command{
	Use:   "check [file.sql...]",
	Short: "Run SQL review on migration files",
	Long: "Check migration files against the SQL review rules in effect for each target database. " +
		"Files are versioned by their base name. The command fails when the overall risk is HIGH.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		release := &v1pb.Release{}
		for _, path := range args {
			statement, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			version := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			release.Files = append(release.Files, &v1pb.Release_File{
				Id:        version,
				Path:      path,
				Type:      v1pb.ReleaseFileType_VERSIONED,
				Version:   version,
				Statement: statement,
			})
		}

		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		resp, err := c.Releases.CheckRelease(ctx, &v1pb.CheckReleaseRequest{
			Parent:  models.FormatProject(releaseProject),
			Release: release,
			Targets: releaseTargets,
		})
		if err != nil {
			return fmt.Errorf("check release: %w", err)
		}
		for _, r := range resp.Results {
			fmt.Printf("%s on %s: %s\n", r.File, r.Target, r.RiskLevel)
			for _, a := range r.Advices {
				line := ""
				if a.StartPosition != nil {
					line = fmt.Sprintf(" line %d", a.StartPosition.Line)
				}
				fmt.Printf("  [%s]%s %s: %s\n", a.Status, line, a.Title, a.Content)
			}
		}
		fmt.Printf("Overall risk: %s\n", resp.RiskLevel)
		if resp.RiskLevel == v1pb.RiskLevel_HIGH {
			return fmt.Errorf("release check found high risk changes")
		}
		return nil
	},
}

func init() {
	checkReleaseCmd.Flags().StringVar(&releaseProject, "project", "", "Project id the release belongs to")
	checkReleaseCmd.Flags().StringSliceVar(&releaseTargets, "target", nil, "Target database, instances/{i}/databases/{d}, repeatable")
	checkReleaseCmd.MarkFlagRequired("project")
	checkReleaseCmd.MarkFlagRequired("target")

	releasesCmd.AddCommand(checkReleaseCmd)
}
