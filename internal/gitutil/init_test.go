package gitutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRepo_CreatesRepository(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, InitRepo(root))

	info, err := os.Stat(filepath.Join(root, ".git"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitRepo_AlreadyInitializedFails(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, InitRepo(root))

	err := InitRepo(root)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "init git repository")
}
