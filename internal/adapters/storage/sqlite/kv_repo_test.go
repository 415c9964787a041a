package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "state.db")

	repo, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, repo.Close())
}

func TestKVRepo_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer repo.Close()

	_, ok, err := repo.Get(ctx, "pf.posts")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Set(ctx, "pf.posts", "[]"))
	require.NoError(t, repo.Set(ctx, "pf.posts", `[{"id":"a"}]`))

	v, ok, err := repo.Get(ctx, "pf.posts")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"a"}]`, v)
}

func TestKVRepo_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	repo, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "pf.userLocation", `{"lat":13.7,"lng":100.5}`))
	require.NoError(t, repo.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "pf.userLocation")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"lat":13.7,"lng":100.5}`, v)
}

func TestKVRepo_EmptyKey(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer repo.Close()

	require.ErrorIs(t, repo.Set(context.Background(), "", "x"), ErrKeyRequired)
}
