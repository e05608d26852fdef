package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/wire"
)

var (
	policyParent string
	policyType   string
)

// policiesCmd represents the policies command
var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "Inspect organization policies",
}

var getPolicyCmd = &cobra.Command{
	Use:   "get [policy-name]",
	Short: "Print a policy as JSON",
	Long:  "Print a policy as JSON, e.g. `dbconsole policies get environments/prod/policies/rollout-policy`.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		p, err := c.Policies.GetPolicy(ctx, &v1pb.GetPolicyRequest{Name: args[0]})
		if err != nil {
			return fmt.Errorf("get policy: %w", err)
		}
		b, err := wire.MarshalJSON(p)
		if err != nil {
			return err
		}
		var out any
		if err := json.Unmarshal(b, &out); err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

var listPoliciesCmd = &cobra.Command{
	Use:   "list",
	Short: "List the policies set on a resource",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		req := &v1pb.ListPoliciesRequest{Parent: policyParent}
		if policyType != "" {
			v, ok := v1pb.PolicyType_value[policyType]
			if !ok {
				return fmt.Errorf("unknown policy type %q", policyType)
			}
			t := v1pb.PolicyType(v)
			req.PolicyType = &t
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tENFORCE\tINHERIT")
		for {
			resp, err := c.Policies.ListPolicies(ctx, req)
			if err != nil {
				return fmt.Errorf("list policies: %w", err)
			}
			for _, p := range resp.Policies {
				fmt.Fprintf(w, "%s\t%s\t%t\t%t\n", p.Name, p.Type, p.Enforce, p.InheritFromParent)
			}
			if resp.NextPageToken == "" {
				break
			}
			req.PageToken = resp.NextPageToken
		}
		return w.Flush()
	},
}

func init() {
	listPoliciesCmd.Flags().StringVar(&policyParent, "parent", "", "Resource the policies are set on, empty for the workspace")
	listPoliciesCmd.Flags().StringVar(&policyType, "type", "", "Only list policies of this type, e.g. SQL_REVIEW")

	policiesCmd.AddCommand(getPolicyCmd)
	policiesCmd.AddCommand(listPoliciesCmd)
}
