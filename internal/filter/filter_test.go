package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/wire"
)

func TestMatch(t *testing.T) {
	env := &v1pb.Environment{
		Name:  "environments/prod",
		Title: "Production",
		Order: 2,
		State: v1pb.State_ACTIVE,
		Tier:  v1pb.EnvironmentTier_PROTECTED,
	}

	tests := []struct {
		filter string
		want   bool
	}{
		{`title == "Production"`, true},
		{`title != "Production"`, false},
		{`order > 1 && order <= 2`, true},
		{`order < 1 || tier == "PROTECTED"`, true},
		{`!(tier == "PROTECTED")`, false},
		{`tier in ["PROTECTED", "UNPROTECTED"]`, true},
		{`state in ["DELETED"]`, false},
		{`name.startsWith("environments/")`, true},
		{`title.endsWith("tion") && title.contains("duc")`, true},
		{`color == ""`, true},
		{`(order == 1 || order == 2) && !(title == "Test")`, true},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			expr, err := Parse(tt.filter)
			require.NoError(t, err)
			got, err := expr.Match(env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchNestedAndTimes(t *testing.T) {
	db := &v1pb.Database{
		Name:               "instances/mysql/databases/orders",
		SuccessfulSyncTime: timestamppb.New(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
		Labels:             map[string]string{"tenant": "acme"},
	}

	for filter, want := range map[string]bool{
		`labels.tenant == "acme"`:                          true,
		`labels.region == "eu"`:                            false,
		`successful_sync_time >= "2024-01-01T00:00:00Z"`:   true,
		`successfulSyncTime < "2024-03-01T11:00:00+00:00"`: false,
		`has(labels.tenant) && !has(labels.region)`:        true,
		`labels.region < "a"`:                              true,
		`"acme" in [labels.tenant, "other"]`:               true,
	} {
		expr, err := Parse(filter)
		require.NoError(t, err, filter)
		got, err := expr.Match(db)
		require.NoError(t, err, filter)
		assert.Equal(t, want, got, filter)
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	expr, err := Parse("  ")
	require.NoError(t, err)
	assert.Nil(t, expr)

	ok, err := expr.Match(&v1pb.Environment{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, expr.Validate(func(string) bool { return false }))
}

func TestValidate(t *testing.T) {
	known := func(path string) bool { return wire.HasField(&v1pb.Environment{}, path) }

	expr, err := Parse(`title == "a" && tier == "PROTECTED"`)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"title", "tier"}, expr.Fields())
	assert.NoError(t, expr.Validate(known))

	expr, err = Parse(`owner == "bob"`)
	require.NoError(t, err)
	assert.ErrorContains(t, expr.Validate(known), `unknown field "owner"`)
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		`title ==`,
		`title == "a" &&`,
		`(title == "a"`,
		`title == "a" extra`,
		`title = "a"`,
		`tier in "PROTECTED"`,
		`title == "unterminated`,
		`tags.all(t, t == "a")`,
	} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestMatchLists(t *testing.T) {
	user := &v1pb.User{Name: "users/ann", Roles: []string{"roles/workspaceAdmin", "roles/workspaceMember"}}

	for filter, want := range map[string]bool{
		`"roles/workspaceAdmin" in roles`: true,
		`"roles/projectOwner" in roles`:   false,
		`size(roles) == 2`:                true,
	} {
		expr, err := Parse(filter)
		require.NoError(t, err, filter)
		got, err := expr.Match(user)
		require.NoError(t, err, filter)
		assert.Equal(t, want, got, filter)
	}
}

func TestMatchTypeError(t *testing.T) {
	expr, err := Parse(`title > 3`)
	require.NoError(t, err)
	_, err = expr.Match(&v1pb.Environment{Title: "prod"})
	assert.Error(t, err)
}
