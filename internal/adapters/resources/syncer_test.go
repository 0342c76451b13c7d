package resources_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fsadapter "go.trai.ch/rebuild/internal/adapters/fs"
	"go.trai.ch/rebuild/internal/adapters/resources"
	"go.trai.ch/rebuild/internal/core/domain"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func setup(t *testing.T) *domain.Config {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "assets", "logo.png"), "png", base)
	writeFile(t, filepath.Join(root, "assets", "notes.txt"), "txt", base)
	writeFile(t, filepath.Join(root, "shaders", "basic.vert"), "vert", base)
	writeFile(t, filepath.Join(root, "shaders", "post", "blur.frag"), "frag", base)

	return &domain.Config{
		Root:    root,
		ExeDir:  filepath.Join(root, "bin"),
		ExeFile: "app",
		Resources: []domain.ResourceMapping{
			{Pattern: "assets/*.png", Dest: "assets"},
			{Pattern: "shaders", Dest: ""},
		},
	}
}

func destinations(copied []domain.CopiedResource) []string {
	out := make([]string, 0, len(copied))
	for _, c := range copied {
		out = append(out, c.Destination)
	}
	return out
}

func TestSyncer_Sync(t *testing.T) {
	cfg := setup(t)
	syncer := resources.New(fsadapter.NewWalker())
	bin := cfg.ExeDir

	t.Run("copies missing files and trees", func(t *testing.T) {
		copied, err := syncer.Sync(context.Background(), cfg)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(bin, "assets", "logo.png"),
			filepath.Join(bin, "shaders", "basic.vert"),
			filepath.Join(bin, "shaders", "post", "blur.frag"),
		}, destinations(copied))
		assert.NoFileExists(t, filepath.Join(bin, "assets", "notes.txt"))

		data, err := os.ReadFile(filepath.Join(bin, "shaders", "post", "blur.frag"))
		require.NoError(t, err)
		assert.Equal(t, "frag", string(data))

		info, err := os.Stat(filepath.Join(bin, "assets", "logo.png"))
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(base), "modification time is preserved")
	})

	t.Run("skips up to date copies", func(t *testing.T) {
		copied, err := syncer.Sync(context.Background(), cfg)
		require.NoError(t, err)
		assert.Empty(t, copied)
	})

	t.Run("recopies newer sources", func(t *testing.T) {
		writeFile(t, filepath.Join(cfg.Root, "shaders", "basic.vert"), "vert v2", base.Add(time.Minute))

		copied, err := syncer.Sync(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(bin, "shaders", "basic.vert")}, destinations(copied))

		data, err := os.ReadFile(filepath.Join(bin, "shaders", "basic.vert"))
		require.NoError(t, err)
		assert.Equal(t, "vert v2", string(data))
	})

	t.Run("keeps destinations newer than their source", func(t *testing.T) {
		dst := filepath.Join(bin, "assets", "logo.png")
		writeFile(t, dst, "edited", base.Add(time.Hour))

		copied, err := syncer.Sync(context.Background(), cfg)
		require.NoError(t, err)
		assert.Empty(t, copied)

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "edited", string(data))
	})
}

func TestSyncer_Sync_NoMatches(t *testing.T) {
	cfg := setup(t)
	cfg.Resources = []domain.ResourceMapping{{Pattern: "missing/*.dat", Dest: "data"}}

	copied, err := resources.New(fsadapter.NewWalker()).Sync(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, copied)
}

func TestSyncer_Sync_AggregatesErrors(t *testing.T) {
	cfg := setup(t)
	writeFile(t, filepath.Join(cfg.Root, "blocker"), "", base)
	cfg.Resources = []domain.ResourceMapping{
		{Pattern: "assets/*.png", Dest: "blocker"},
		{Pattern: "shaders", Dest: "blocker"},
		{Pattern: "assets/*.txt", Dest: "docs"},
	}
	cfg.ExeDir = cfg.Root

	copied, err := resources.New(fsadapter.NewWalker()).Sync(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceSyncFailed)
	assert.Equal(t, []string{filepath.Join(cfg.Root, "docs", "notes.txt")}, destinations(copied),
		"a failing mapping does not stop the others")
}

func TestSyncer_Sync_UnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	cfg := setup(t)
	cfg.Resources = []domain.ResourceMapping{{Pattern: "shaders", Dest: ""}}
	post := filepath.Join(cfg.Root, "shaders", "post")
	require.NoError(t, os.Chmod(post, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(post, 0o750) //nolint:gosec // restore test directory
	})

	copied, err := resources.New(fsadapter.NewWalker()).Sync(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceSyncFailed)
	assert.ErrorContains(t, err, "failed to walk path")
	assert.Equal(t, []string{filepath.Join(cfg.ExeDir, "shaders", "basic.vert")}, destinations(copied),
		"readable files of the tree are still copied")
}

func TestSyncer_Sync_Cancelled(t *testing.T) {
	cfg := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resources.New(fsadapter.NewWalker()).Sync(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
}
