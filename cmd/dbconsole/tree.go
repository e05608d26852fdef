package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/models"
)

var (
	treeFactors []string
	treeProject string
	treeFilter  string
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show databases grouped as in the SQL editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		req := &v1pb.GetDatabaseTreeRequest{Factors: treeFactors, Filter: treeFilter}
		if treeProject != "" {
			req.Project = models.FormatProject(treeProject)
		}
		tree, err := c.Databases.GetDatabaseTree(ctx, req)
		if err != nil {
			return fmt.Errorf("get database tree: %w", err)
		}
		fmt.Printf("Grouped by %s\n", strings.Join(tree.Factors, " > "))
		printTree(os.Stdout, tree.Nodes, 0)
		return nil
	},
}

func printTree(w io.Writer, nodes []*v1pb.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch n.Type {
		case v1pb.TreeNode_DATABASE:
			fmt.Fprintf(w, "%s- %s\n", indent, n.Database)
		default:
			fmt.Fprintf(w, "%s%s (%d)\n", indent, n.Title, countDatabases(n))
			printTree(w, n.Children, depth+1)
		}
	}
}

func countDatabases(n *v1pb.TreeNode) int {
	if n.Type == v1pb.TreeNode_DATABASE {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += countDatabases(child)
	}
	return total
}

func init() {
	treeCmd.Flags().StringSliceVar(&treeFactors, "factor", nil, "Grouping factor: project, instance, environment or label:<key>, repeatable")
	treeCmd.Flags().StringVar(&treeProject, "project", "", "Only show databases of this project id")
	treeCmd.Flags().StringVar(&treeFilter, "filter", "", "Filter applied to databases before grouping")
}
