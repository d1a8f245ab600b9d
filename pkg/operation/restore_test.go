package operation

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanddino/facefix/pkg/config"
)

func TestRestoreOperation_RoundTrip(t *testing.T) {
	original := "[Override]\n  ps-t0 = ResourceFaceDiffuse.normal\n"
	root := writeTree(t, map[string]string{"face.ini": original})
	cfg := config.Default()
	cfg.Root = root

	// Fix first, then restore: the original content must come back.
	require.NoError(t, NewFixOperation(testOptions(t, cfg), true).Execute(context.Background()))
	require.NotEqual(t, original, readFile(t, filepath.Join(root, "face.ini")))

	require.NoError(t, NewRestoreOperation(testOptions(t, cfg)).Execute(context.Background()))
	assert.Equal(t, original, readFile(t, filepath.Join(root, "face.ini")))
	assert.FileExists(t, filepath.Join(root, "face_backup.bak"), "restore keeps the backup")
}

func TestRestoreOperation_UppercaseExtensionTarget(t *testing.T) {
	root := writeTree(t, map[string]string{
		"face.INI":        "this = ResourceFaceDiffuse\n",
		"face_backup.bak": "ps-t0 = ResourceFaceDiffuse\n",
	})
	cfg := config.Default()
	cfg.Root = root

	require.NoError(t, NewRestoreOperation(testOptions(t, cfg)).Execute(context.Background()))
	assert.Equal(t, "ps-t0 = ResourceFaceDiffuse\n", readFile(t, filepath.Join(root, "face.INI")))
}

func TestRestoreOperation_ConfirmDeclined(t *testing.T) {
	root := writeTree(t, map[string]string{
		"face.ini":        "this = ResourceFaceDiffuse\n",
		"face_backup.bak": "ps-t0 = ResourceFaceDiffuse\n",
	})
	cfg := config.Default()
	cfg.Root = root

	opts := testOptions(t, cfg)
	opts.Confirm = func(prompt string) bool { return false }
	require.NoError(t, NewRestoreOperation(opts).Execute(context.Background()))

	assert.Equal(t, "this = ResourceFaceDiffuse\n", readFile(t, filepath.Join(root, "face.ini")))
}

func TestRestoreOperation_NothingToDo(t *testing.T) {
	root := writeTree(t, map[string]string{"mod.ini": "x"})
	cfg := config.Default()
	cfg.Root = root

	require.NoError(t, NewRestoreOperation(testOptions(t, cfg)).Execute(context.Background()))
}
