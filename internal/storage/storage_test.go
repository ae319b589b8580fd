package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseKV runs the behaviour every backend must share.
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "resumeData")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "resumeData", `{"summary":"first"}`))
	require.NoError(t, kv.Set(ctx, "resumeData", `{"summary":"second"}`))
	require.NoError(t, kv.Set(ctx, "selectedTemplate", "classic"))

	v, ok, err := kv.Get(ctx, "resumeData")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"summary":"second"}`, v)

	v, ok, err = kv.Get(ctx, "selectedTemplate")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "classic", v)

	require.NoError(t, kv.Delete(ctx, "resumeData"))
	require.NoError(t, kv.Delete(ctx, "resumeData"), "deleting an absent key is not an error")

	_, ok, err = kv.Get(ctx, "resumeData")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	exerciseKV(t, kv)
}

func TestMemoryKV_Closed(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Close())

	_, _, err := kv.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, kv.Set(context.Background(), "k", "v"), ErrClosed)
}

func TestFileKV(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	exerciseKV(t, kv)
}

func TestFileKV_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "customColors", `{"primary":"#000000"}`))

	second, err := NewFileKV(dir)
	require.NoError(t, err)
	v, ok, err := second.Get(ctx, "customColors")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"primary":"#000000"}`, v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSQLiteKV(t *testing.T) {
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	defer kv.Close()
	exerciseKV(t, kv)
}

func TestRedisKV(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping integration test")
	}
	kv, err := NewRedisKV(context.Background(), addr, "", 0)
	require.NoError(t, err)
	defer kv.Close()

	exerciseKV(t, WithPrefix(kv, "test:"))
}

func TestWithPrefix(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryKV()

	assert.Same(t, inner, WithPrefix(inner, "").(*MemoryKV))

	alice := WithPrefix(inner, "alice:")
	bob := WithPrefix(inner, "bob:")
	require.NoError(t, alice.Set(ctx, "selectedTemplate", "tech"))
	require.NoError(t, bob.Set(ctx, "selectedTemplate", "minimal"))

	v, _, err := inner.Get(ctx, "alice:selectedTemplate")
	require.NoError(t, err)
	assert.Equal(t, "tech", v)

	v, _, err = bob.Get(ctx, "selectedTemplate")
	require.NoError(t, err)
	assert.Equal(t, "minimal", v)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory default", func(t *testing.T) {
		kv, err := Open(ctx, Options{})
		require.NoError(t, err)
		assert.IsType(t, &MemoryKV{}, kv)
	})

	t.Run("file with namespace", func(t *testing.T) {
		kv, err := Open(ctx, Options{Backend: BackendFile, Path: t.TempDir(), Namespace: "work"})
		require.NoError(t, err)
		assert.IsType(t, &PrefixedKV{}, kv)
		exerciseKV(t, kv)
	})

	t.Run("sqlite in directory", func(t *testing.T) {
		dir := t.TempDir()
		kv, err := Open(ctx, Options{Backend: BackendSQLite, Path: dir})
		require.NoError(t, err)
		defer kv.Close()
		assert.FileExists(t, filepath.Join(dir, "resume.db"))
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Open(ctx, Options{Backend: "floppy"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "floppy")
	})
}

func TestBackendError(t *testing.T) {
	cause := errors.New("disk full")
	err := backendErr("file", "set", "resumeData", cause)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "file", be.Backend)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `file storage: set "resumeData": disk full`, err.Error())

	assert.NoError(t, backendErr("file", "set", "k", nil))
}
