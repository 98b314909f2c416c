package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreCreatesDirAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "2024-2025高校本科生就业情况分析报告.md")
	store := NewFileStore(path)

	got, err := store.Save(context.Background(), "# 第一版")
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = store.Save(context.Background(), "# 第二版")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# 第二版", string(data))
}

func TestFileStoreErrors(t *testing.T) {
	_, err := NewFileStore("").Save(context.Background(), "x")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFileStore(filepath.Join(t.TempDir(), "r.md")).Save(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, err = NewFileStore(filepath.Join(blocker, "r.md")).Save(context.Background(), "x")
	assert.Error(t, err)
}
