package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

func names(recs []*Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

func TestMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	t.Cleanup(func() { s.Close() })

	now := time.Now().UTC()
	rec := &Record{Kind: KindEnvironment, Name: "environments/prod", CreateTime: now, UpdateTime: now, Payload: []byte{1}}
	require.NoError(t, s.Create(ctx, rec))
	assert.ErrorIs(t, s.Create(ctx, rec), ErrAlreadyExists)

	// Stored records do not alias the caller's payload.
	rec.Payload[0] = 9
	got, err := s.Get(ctx, KindEnvironment, "environments/prod")
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got.Payload)

	_, err = s.Get(ctx, KindInstance, "environments/prod")
	assert.ErrorIs(t, err, ErrNotFound, "kinds are separate")

	got.Deleted = true
	got.Payload = []byte{2}
	require.NoError(t, s.Update(ctx, got))
	got, err = s.Get(ctx, KindEnvironment, "environments/prod")
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.Equal(t, []byte{2}, got.Payload)

	assert.ErrorIs(t, s.Update(ctx, &Record{Kind: KindEnvironment, Name: "environments/test"}), ErrNotFound)

	require.NoError(t, s.Delete(ctx, KindEnvironment, "environments/prod"))
	assert.ErrorIs(t, s.Delete(ctx, KindEnvironment, "environments/prod"), ErrNotFound)
}

func TestMemoryList(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range []struct{ name, parent string }{
		{"instances/a/databases/x", "instances/a"},
		{"instances/b/databases/y", "instances/b"},
		{"instances/a/databases/z", "instances/a"},
	} {
		require.NoError(t, s.Create(ctx, &Record{
			Kind:       KindDatabase,
			Name:       r.name,
			Parent:     r.parent,
			CreateTime: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	// Same creation time as the first record; insertion order breaks the tie.
	require.NoError(t, s.Create(ctx, &Record{Kind: KindDatabase, Name: "instances/c/databases/w", Parent: "instances/c", CreateTime: base, Deleted: true}))

	recs, err := s.List(ctx, KindDatabase, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"instances/a/databases/x", "instances/b/databases/y", "instances/a/databases/z"}, names(recs))

	recs, err = s.List(ctx, KindDatabase, ListOptions{ShowDeleted: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"instances/a/databases/x", "instances/c/databases/w", "instances/b/databases/y", "instances/a/databases/z"}, names(recs))

	recs, err = s.List(ctx, KindDatabase, ListOptions{Parent: "instances/a", Descending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"instances/a/databases/z", "instances/a/databases/x"}, names(recs))

	recs, err = s.List(ctx, KindPolicy, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestTypedHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	env := &v1pb.Environment{Name: "environments/prod", Title: "Prod", Order: 1}
	rec, err := Insert(ctx, s, KindEnvironment, env.Name, "", env)
	require.NoError(t, err)
	assert.False(t, rec.CreateTime.IsZero())

	_, err = Insert(ctx, s, KindEnvironment, env.Name, "", env)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	loaded, rec, err := Load[v1pb.Environment](ctx, s, KindEnvironment, env.Name)
	require.NoError(t, err)
	assert.Equal(t, env, loaded)

	loaded.Title = "Production"
	require.NoError(t, Save(ctx, s, rec, loaded))

	_, err = Insert(ctx, s, KindEnvironment, "environments/test", "", &v1pb.Environment{Name: "environments/test", Title: "Test"})
	require.NoError(t, err)

	envs, recs, err := LoadAll[v1pb.Environment](ctx, s, KindEnvironment, ListOptions{})
	require.NoError(t, err)
	require.Len(t, envs, 2)
	require.Len(t, recs, 2)
	assert.Equal(t, "Production", envs[0].Title)
	assert.Equal(t, "environments/test", recs[1].Name)

	_, _, err = Load[v1pb.Environment](ctx, s, KindEnvironment, "environments/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
