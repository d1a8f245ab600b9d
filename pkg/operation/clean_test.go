package operation

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanddino/facefix/pkg/config"
)

func TestCleanOperation_RemovesBackups(t *testing.T) {
	root := writeTree(t, map[string]string{
		"mod.ini":            "this = ResourceFaceDiffuse\n",
		"mod_backup.bak":     "ps-t0 = ResourceFaceDiffuse\n",
		"sub/old_backup.bak": "x",
	})
	cfg := config.Default()
	cfg.Root = root

	op := NewCleanOperation(testOptions(t, cfg))
	require.NoError(t, op.Execute(context.Background()))

	assert.NoFileExists(t, filepath.Join(root, "mod_backup.bak"))
	assert.NoFileExists(t, filepath.Join(root, "sub", "old_backup.bak"))
	assert.FileExists(t, filepath.Join(root, "mod.ini"))
}

func TestCleanOperation_ConfirmDeclined(t *testing.T) {
	root := writeTree(t, map[string]string{
		"mod_backup.bak": "x",
	})
	cfg := config.Default()
	cfg.Root = root

	opts := testOptions(t, cfg)
	opts.Confirm = func(prompt string) bool { return false }
	require.NoError(t, NewCleanOperation(opts).Execute(context.Background()))

	assert.FileExists(t, filepath.Join(root, "mod_backup.bak"))
}

func TestCleanOperation_NothingToDo(t *testing.T) {
	root := writeTree(t, map[string]string{"mod.ini": "x"})
	cfg := config.Default()
	cfg.Root = root

	require.NoError(t, NewCleanOperation(testOptions(t, cfg)).Execute(context.Background()))
	assert.FileExists(t, filepath.Join(root, "mod.ini"))
}
