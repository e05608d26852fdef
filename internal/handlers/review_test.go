package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/advisor"
	"github.com/idot-digital/dbconsole/internal/auth"
)

func TestPolicies(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signUp(t, "ada@example.com")

	rollout, err := env.Policies.CreatePolicy(admin, &v1pb.CreatePolicyRequest{
		Type:   v1pb.PolicyType_ROLLOUT_POLICY,
		Policy: &v1pb.Policy{RolloutPolicy: &v1pb.RolloutPolicy{Automatic: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "policies/rollout-policy", rollout.Name)
	assert.Equal(t, v1pb.PolicyResourceType_WORKSPACE, rollout.ResourceType)

	review, err := env.Policies.CreatePolicy(admin, &v1pb.CreatePolicyRequest{
		Parent: "environments/prod",
		Type:   v1pb.PolicyType_SQL_REVIEW,
		Policy: &v1pb.Policy{SqlReviewPolicy: &v1pb.SQLReviewPolicy{
			Rules: []*v1pb.SQLReviewRule{{Type: advisor.RuleTableRequirePK, Level: v1pb.SQLReviewRuleLevel_ERROR}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "environments/prod/policies/sql-review", review.Name)
	assert.Equal(t, v1pb.PolicyResourceType_ENVIRONMENT, review.ResourceType)

	_, err = env.Policies.CreatePolicy(admin, &v1pb.CreatePolicyRequest{
		Parent: "environments/prod",
		Type:   v1pb.PolicyType_TAG,
		Policy: &v1pb.Policy{RolloutPolicy: &v1pb.RolloutPolicy{}},
	})
	requireCode(t, codes.InvalidArgument, err)

	_, err = env.Policies.CreatePolicy(admin, &v1pb.CreatePolicyRequest{
		Parent: "environments/prod",
		Type:   v1pb.PolicyType_SQL_REVIEW,
		Policy: &v1pb.Policy{SqlReviewPolicy: &v1pb.SQLReviewPolicy{
			Rules: []*v1pb.SQLReviewRule{{Type: "no.such-rule", Level: v1pb.SQLReviewRuleLevel_ERROR}},
		}},
	})
	requireCode(t, codes.InvalidArgument, err)

	workspace, err := env.Policies.ListPolicies(admin, &v1pb.ListPoliciesRequest{})
	require.NoError(t, err)
	require.Len(t, workspace.Policies, 1)
	assert.Equal(t, rollout.Name, workspace.Policies[0].Name)

	sqlReview := v1pb.PolicyType_SQL_REVIEW
	onProd, err := env.Policies.ListPolicies(admin, &v1pb.ListPoliciesRequest{Parent: "environments/prod", PolicyType: &sqlReview})
	require.NoError(t, err)
	require.Len(t, onProd.Policies, 1)

	got, err := env.Policies.GetPolicy(admin, &v1pb.GetPolicyRequest{Name: review.Name})
	require.NoError(t, err)
	require.NotNil(t, got.SqlReviewPolicy)
	assert.Len(t, got.SqlReviewPolicy.Rules, 1)

	created, err := env.Policies.UpdatePolicy(admin, &v1pb.UpdatePolicyRequest{
		Policy:       &v1pb.Policy{Name: "projects/shop/policies/disable-copy-data", DisableCopyDataPolicy: &v1pb.DisableCopyDataPolicy{}},
		UpdateMask:   &fieldmaskpb.FieldMask{Paths: []string{"disable_copy_data_policy"}},
		AllowMissing: true,
	})
	require.NoError(t, err)
	assert.Equal(t, v1pb.PolicyType_DISABLE_COPY_DATA, created.Type)

	_, err = env.Policies.DeletePolicy(admin, &v1pb.DeletePolicyRequest{Name: review.Name})
	require.NoError(t, err)
	_, err = env.Policies.GetPolicy(admin, &v1pb.GetPolicyRequest{Name: review.Name})
	requireCode(t, codes.NotFound, err)
}

func setUpReleaseTarget(t *testing.T, env *testEnv) context.Context {
	t.Helper()
	admin := env.signUp(t, "ada@example.com")
	env.createEnvironment(t, admin, "prod", 1)
	env.instances.set("db1", &fakeDriver{version: "8.0.36", databases: []string{"orders"}})
	env.createInstance(t, admin, "mysql1", "db1", "environments/prod")
	return admin
}

func checkScript(t *testing.T, env *testEnv, ctx context.Context, script string) *v1pb.CheckReleaseResponse {
	t.Helper()
	resp, err := env.Releases.CheckRelease(ctx, &v1pb.CheckReleaseRequest{
		Parent: "projects/shop",
		Release: &v1pb.Release{Files: []*v1pb.Release_File{
			{Id: "1", Path: "migrations/001.sql", Version: "001", Statement: []byte(script)},
		}},
		Targets: []string{"instances/mysql1/databases/orders"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	return resp
}

func codesOf(advices []*v1pb.Advice) []int32 {
	var out []int32
	for _, a := range advices {
		out = append(out, a.Code)
	}
	return out
}

func TestCheckReleaseUsesEnvironmentPolicy(t *testing.T) {
	env := newTestEnv(t)
	admin := setUpReleaseTarget(t, env)

	resp := checkScript(t, env, admin, "CREATE TABLE t (id INT)")
	assert.Equal(t, []int32{advisor.CodeOK}, codesOf(resp.Results[0].Advices))

	_, err := env.Policies.CreatePolicy(admin, &v1pb.CreatePolicyRequest{
		Parent: "environments/prod",
		Type:   v1pb.PolicyType_SQL_REVIEW,
		Policy: &v1pb.Policy{SqlReviewPolicy: &v1pb.SQLReviewPolicy{
			Rules: []*v1pb.SQLReviewRule{{Type: advisor.RuleTableRequirePK, Level: v1pb.SQLReviewRuleLevel_ERROR}},
		}},
	})
	require.NoError(t, err)

	resp = checkScript(t, env, admin, "CREATE TABLE t (id INT)")
	result := resp.Results[0]
	assert.Equal(t, "migrations/001.sql", result.File)
	assert.Equal(t, "instances/mysql1/databases/orders", result.Target)
	assert.Equal(t, []int32{advisor.CodeTableNoPK}, codesOf(result.Advices))
	assert.Equal(t, v1pb.Advice_ERROR, result.Advices[0].Status)
	assert.Equal(t, v1pb.RiskLevel_MODERATE, resp.RiskLevel)
}

func TestCheckReleaseUsesReviewConfigs(t *testing.T) {
	env := newTestEnv(t)
	admin := setUpReleaseTarget(t, env)

	_, err := env.ReviewConfigs.CreateReviewConfig(admin, &v1pb.CreateReviewConfigRequest{ReviewConfig: &v1pb.ReviewConfig{
		Name:      "reviewConfigs/strict",
		Title:     "Strict",
		Enabled:   true,
		Rules:     []*v1pb.SQLReviewRule{{Type: advisor.RuleTableNoDrop, Level: v1pb.SQLReviewRuleLevel_WARNING}},
		Resources: []string{"projects/shop"},
	}})
	require.NoError(t, err)

	resp := checkScript(t, env, admin, "DROP TABLE t")
	assert.Equal(t, []int32{advisor.CodeTableDropDisallowed}, codesOf(resp.Results[0].Advices))
	assert.Equal(t, v1pb.Advice_WARNING, resp.Results[0].Advices[0].Status)
	assert.Equal(t, v1pb.RiskLevel_HIGH, resp.RiskLevel)

	_, err = env.ReviewConfigs.UpdateReviewConfig(admin, &v1pb.UpdateReviewConfigRequest{
		ReviewConfig: &v1pb.ReviewConfig{Name: "reviewConfigs/strict", Enabled: false},
		UpdateMask:   &fieldmaskpb.FieldMask{Paths: []string{"enabled"}},
	})
	require.NoError(t, err)
	resp = checkScript(t, env, admin, "DROP TABLE t")
	assert.Equal(t, []int32{advisor.CodeOK}, codesOf(resp.Results[0].Advices))
}

func TestCheckReleaseRejectsUnknownTargets(t *testing.T) {
	env := newTestEnv(t)
	admin := setUpReleaseTarget(t, env)

	_, err := env.Releases.CheckRelease(admin, &v1pb.CheckReleaseRequest{
		Parent:  "projects/shop",
		Release: &v1pb.Release{Files: []*v1pb.Release_File{{Id: "1", Statement: []byte("SELECT 1")}}},
		Targets: []string{"instances/mysql1/databases/missing"},
	})
	requireCode(t, codes.InvalidArgument, err)

	_, err = env.Releases.CheckRelease(admin, &v1pb.CheckReleaseRequest{
		Parent:  "projects/shop",
		Release: &v1pb.Release{Files: []*v1pb.Release_File{{Id: "1", Statement: []byte("SELECT 1")}}},
	})
	requireCode(t, codes.InvalidArgument, err)
}

func TestReleases(t *testing.T) {
	env := newTestEnv(t)
	member := env.signUp(t, "ada@example.com")

	created, err := env.Releases.CreateRelease(member, &v1pb.CreateReleaseRequest{
		Parent: "projects/shop",
		Release: &v1pb.Release{Title: "v1", Files: []*v1pb.Release_File{
			{Id: "1", Path: "001.sql", Version: "001", Statement: []byte("CREATE TABLE t (id INT PRIMARY KEY)")},
			{Id: "2", Path: "002.sql", Version: "002", Statement: []byte("ALTER TABLE t ADD COLUMN a INT")},
		}},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^projects/shop/releases/[0-9a-f-]{36}$`, created.Name)
	assert.Equal(t, "users/ada@example.com", created.Creator)
	assert.NotEmpty(t, created.Digest)
	require.Len(t, created.Files, 2)
	assert.Nil(t, created.Files[0].Statement)
	assert.Equal(t, int64(len("CREATE TABLE t (id INT PRIMARY KEY)")), created.Files[0].StatementSize)
	assert.Len(t, created.Files[0].SheetSha256, 64)

	_, err = env.Releases.CreateRelease(member, &v1pb.CreateReleaseRequest{
		Parent: "projects/shop",
		Release: &v1pb.Release{Files: []*v1pb.Release_File{
			{Id: "1", Statement: []byte("SELECT 1")},
			{Id: "1", Statement: []byte("SELECT 2")},
		}},
	})
	requireCode(t, codes.InvalidArgument, err)

	list, err := env.Releases.ListReleases(member, &v1pb.ListReleasesRequest{Parent: "projects/shop"})
	require.NoError(t, err)
	require.Len(t, list.Releases, 1)

	_, err = env.Releases.DeleteRelease(member, &v1pb.DeleteReleaseRequest{Name: created.Name})
	require.NoError(t, err)
	list, err = env.Releases.ListReleases(member, &v1pb.ListReleasesRequest{Parent: "projects/shop"})
	require.NoError(t, err)
	assert.Empty(t, list.Releases)
}

func TestDatabaseTree(t *testing.T) {
	env := newTestEnv(t)
	admin := setUpReleaseTarget(t, env)

	_, err := env.Databases.UpdateDatabase(admin, &v1pb.UpdateDatabaseRequest{
		Database:   &v1pb.Database{Name: "instances/mysql1/databases/orders", Project: "projects/shop"},
		UpdateMask: &fieldmaskpb.FieldMask{Paths: []string{"project"}},
	})
	require.NoError(t, err)

	tree, err := env.Databases.GetDatabaseTree(admin, &v1pb.GetDatabaseTreeRequest{Factors: []string{"project", "environment"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"project", "environment"}, tree.Factors)
	require.Len(t, tree.Nodes, 1)
	assert.Equal(t, v1pb.TreeNode_PROJECT, tree.Nodes[0].Type)
	require.Len(t, tree.Nodes[0].Children, 1)
	envNode := tree.Nodes[0].Children[0]
	assert.Equal(t, v1pb.TreeNode_ENVIRONMENT, envNode.Type)
	require.Len(t, envNode.Children, 1)
	assert.Equal(t, "instances/mysql1/databases/orders", envNode.Children[0].Database)

	_, err = env.Databases.GetDatabaseTree(admin, &v1pb.GetDatabaseTreeRequest{Factors: []string{"color"}})
	requireCode(t, codes.InvalidArgument, err)
}

func TestSearchAnomaliesOfUnreachableInstance(t *testing.T) {
	env := newTestEnv(t)
	admin := setUpReleaseTarget(t, env)
	member := env.signUp(t, "bob@example.com", auth.RoleWorkspaceMember)

	resp, err := env.Anomalies.SearchAnomalies(member, &v1pb.SearchAnomaliesRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Anomalies)

	env.instances.mu.Lock()
	delete(env.instances.drivers, "db1")
	env.instances.mu.Unlock()
	_, err = env.Instances.SyncInstance(admin, &v1pb.SyncInstanceRequest{Name: "instances/mysql1"})
	requireCode(t, codes.FailedPrecondition, err)

	resp, err = env.Anomalies.SearchAnomalies(member, &v1pb.SearchAnomaliesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Anomalies, 1)
	assert.Equal(t, "instances/mysql1", resp.Anomalies[0].Resource)
	assert.Equal(t, v1pb.Anomaly_INSTANCE_CONNECTION, resp.Anomalies[0].Type)
}
