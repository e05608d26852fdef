package sqleditor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

func TestParseFactors(t *testing.T) {
	factors, err := ParseFactors(nil)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	assert.Equal(t, v1pb.TreeNode_PROJECT, factors[0].Type)

	factors, err = ParseFactors([]string{"environment", "label:tenant", "instance"})
	require.NoError(t, err)
	assert.Equal(t, "label:tenant", factors[1].String())
	assert.Equal(t, "tenant", factors[1].LabelKey)

	for _, bad := range [][]string{
		{"project", "project"},
		{"label:a", "label:a"},
		{"label:"},
		{"schema"},
	} {
		_, err := ParseFactors(bad)
		assert.Error(t, err, bad)
	}

	_, err = ParseFactors([]string{"label:a", "label:b"})
	assert.NoError(t, err)
}

func testBuilder() *Builder {
	return NewBuilder(
		[]*v1pb.Environment{
			{Name: "environments/test", Title: "Test", Order: 0},
			{Name: "environments/prod", Title: "Prod", Order: 1},
		},
		[]*v1pb.Instance{
			{Name: "instances/mysql1", Title: "MySQL One"},
		},
	)
}

func TestBuildByEnvironmentOrder(t *testing.T) {
	dbs := []*v1pb.Database{
		{Name: "instances/mysql1/databases/orders", EffectiveEnvironment: "environments/prod"},
		{Name: "instances/mysql1/databases/users", EffectiveEnvironment: "environments/test"},
		{Name: "instances/mysql1/databases/audit", EffectiveEnvironment: "environments/prod"},
		{Name: "instances/mysql1/databases/scratch"},
	}
	factors, err := ParseFactors([]string{"environment"})
	require.NoError(t, err)
	nodes := testBuilder().Build(factors, dbs)

	require.Len(t, nodes, 3)
	assert.Equal(t, "Test", nodes[0].Title)
	assert.Equal(t, "Prod", nodes[1].Title)
	assert.Equal(t, EmptyTitle, nodes[2].Title)

	prod := nodes[1]
	assert.Equal(t, "environments/prod", prod.Key)
	require.Len(t, prod.Children, 2)
	assert.Equal(t, "audit", prod.Children[0].Title)
	assert.Equal(t, "orders", prod.Children[1].Title)
	assert.True(t, prod.Children[0].IsLeaf)
	assert.Equal(t, "instances/mysql1/databases/audit", prod.Children[0].Database)
}

func TestBuildNestedWithLabels(t *testing.T) {
	dbs := []*v1pb.Database{
		{Name: "instances/mysql1/databases/a", Project: "projects/shop", Labels: map[string]string{"tenant": "acme"}},
		{Name: "instances/mysql1/databases/b", Project: "projects/shop"},
		{Name: "instances/mysql1/databases/c", Project: "projects/shop", Labels: map[string]string{"tenant": "bolt"}},
		{Name: "instances/mysql1/databases/d", Project: "projects/blog", Labels: map[string]string{"tenant": "acme"}},
	}
	factors, err := ParseFactors([]string{"project", "label:tenant", "instance"})
	require.NoError(t, err)
	nodes := testBuilder().Build(factors, dbs)

	require.Len(t, nodes, 2)
	assert.Equal(t, "blog", nodes[0].Title)
	shop := nodes[1]
	assert.Equal(t, "shop", shop.Title)
	require.Len(t, shop.Children, 3)
	assert.Equal(t, "acme", shop.Children[0].Title)
	assert.Equal(t, "bolt", shop.Children[1].Title)
	assert.Equal(t, EmptyTitle, shop.Children[2].Title)
	assert.Equal(t, "tenant", shop.Children[0].LabelKey)
	assert.Equal(t, "acme", shop.Children[0].LabelValue)
	assert.Equal(t, "projects/shop/labels/tenant=acme", shop.Children[0].Key)

	inst := shop.Children[0].Children
	require.Len(t, inst, 1)
	assert.Equal(t, "MySQL One", inst[0].Title)
	assert.Equal(t, v1pb.TreeNode_INSTANCE, inst[0].Type)

	keys := map[string]bool{}
	leafCount := 0
	Walk(nodes, func(n *v1pb.TreeNode) {
		assert.False(t, keys[n.Key], "duplicate key %s", n.Key)
		keys[n.Key] = true
		if n.IsLeaf {
			leafCount++
		}
	})
	assert.Equal(t, len(dbs), leafCount)
}

func TestBuildEmpty(t *testing.T) {
	factors, err := ParseFactors(nil)
	require.NoError(t, err)
	assert.Empty(t, testBuilder().Build(factors, nil))
}
