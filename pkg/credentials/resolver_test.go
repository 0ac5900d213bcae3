package credentials_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftkit/pkg/credentials"
)

type failingStorage struct {
	getErr error
	setErr error
}

func (f *failingStorage) Get(ctx context.Context) (string, error) { return "", f.getErr }
func (f *failingStorage) Set(ctx context.Context, v string) error { return f.setErr }

func TestResolver_NoSources(t *testing.T) {
	t.Parallel()

	r := credentials.NewResolver()
	_, ok := r.Resolve(context.Background())
	assert.False(t, ok)
}

func TestResolver_PriorityOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	storage := credentials.NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, "persisted-key"))

	r := credentials.NewResolver(
		credentials.WithStorage(storage),
		credentials.WithBuildDefault("build-key"),
	)

	// Persisted beats build default.
	got, ok := r.Resolve(ctx)
	require.True(t, ok)
	assert.Equal(t, "persisted-key", got)

	// Session beats both once supplied.
	require.NoError(t, r.Supply(ctx, "session-key"))
	got, ok = r.Resolve(ctx)
	require.True(t, ok)
	assert.Equal(t, "session-key", got)
}

func TestResolver_BuildDefaultLast(t *testing.T) {
	t.Parallel()

	r := credentials.NewResolver(
		credentials.WithStorage(credentials.NewMemoryStorage()),
		credentials.WithBuildDefault("build-key"),
	)

	got, ok := r.Resolve(context.Background())
	require.True(t, ok)
	assert.Equal(t, "build-key", got)
}

func TestResolver_SupplyPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := credentials.NewMemoryStorage()
	r := credentials.NewResolver(credentials.WithStorage(storage))

	require.NoError(t, r.Supply(ctx, "  user-key  "))

	stored, err := storage.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-key", stored, "supplied credential is trimmed and persisted")

	// A fresh resolver over the same storage picks it up: future sessions
	// resolve without re-prompting.
	fresh := credentials.NewResolver(credentials.WithStorage(storage))
	got, ok := fresh.Resolve(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-key", got)
}

func TestResolver_SupplyEmpty(t *testing.T) {
	t.Parallel()

	r := credentials.NewResolver()
	assert.ErrorIs(t, r.Supply(context.Background(), "   "), credentials.ErrEmptyCredential)
}

func TestResolver_StorageFailureDegrades(t *testing.T) {
	t.Parallel()

	r := credentials.NewResolver(
		credentials.WithStorage(&failingStorage{getErr: errors.New("disk gone")}),
		credentials.WithBuildDefault("build-key"),
	)

	got, ok := r.Resolve(context.Background())
	require.True(t, ok)
	assert.Equal(t, "build-key", got)
}

func TestResolver_SupplySurvivesStorageWriteFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := credentials.NewResolver(
		credentials.WithStorage(&failingStorage{getErr: credentials.ErrNotFound, setErr: errors.New("readonly fs")}),
	)

	err := r.Supply(ctx, "user-key")
	require.Error(t, err)

	// Session slot still resolves for the rest of the process lifetime.
	got, ok := r.Resolve(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-key", got)
}

func TestResolver_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := credentials.NewResolver()
	require.NoError(t, r.Supply(ctx, "user-key"))

	r.Clear()
	_, ok := r.Resolve(ctx)
	assert.False(t, ok)
}
