package ops

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDataDir(t *testing.T) (string, map[string]string) {
	t.Helper()
	src := filepath.Join(t.TempDir(), "data")
	files := map[string]string{
		"tasks/tasks.json":    `{"tasks":[{"id":"t1","title":"Laundry"}]}`,
		"tasks/cleanup.json":  `{"lastCleanup":"2026-03-14"}`,
		"pet/pet.json":        `{"name":"Buddy","type":"🐱","xp":40}`,
		"notes/notes.txt":     "remember the milk",
		"streak/streak.json":  `{"currentStreak":3}`,
	}
	for rel, content := range files {
		path := filepath.Join(src, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return src, files
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	src, files := seedDataDir(t)
	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	require.NoError(t, Backup(src, archive))

	restoreDir := filepath.Join(t.TempDir(), "restore")
	require.NoError(t, Restore(archive, restoreDir))

	for rel, want := range files {
		b, err := os.ReadFile(filepath.Join(restoreDir, rel))
		require.NoError(t, err, rel)
		assert.Equal(t, want, string(b))
	}

	srcDigest, err := Digest(src)
	require.NoError(t, err)
	restoredDigest, err := Digest(restoreDir)
	require.NoError(t, err)
	assert.Equal(t, srcDigest, restoredDigest)
}

func TestVerifyListsEntries(t *testing.T) {
	src, files := seedDataDir(t)
	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	require.NoError(t, Backup(src, archive))

	names, err := Verify(archive)
	require.NoError(t, err)
	assert.Len(t, names, len(files))
	assert.Contains(t, names, "tasks/tasks.json")
}

func TestDigestDetectsDrift(t *testing.T) {
	src, _ := seedDataDir(t)
	before, err := Digest(src)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(src, "notes/notes.txt"), []byte("changed"), 0o644))
	after, err := Digest(src)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestRestoreRejectsPathTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "bad.tar.gz")
	f, err := os.Create(archive)
	require.NoError(t, err)

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "../escape.txt",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len("bad")),
	}))
	_, err = tw.Write([]byte("bad"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	assert.Error(t, Restore(archive, filepath.Join(t.TempDir(), "out")))
	_, err = Verify(archive)
	assert.Error(t, err)
}

func TestBackupMissingSourceFails(t *testing.T) {
	assert.Error(t, Backup(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "a.tar.gz")))
}
