package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepareTree(t *testing.T) string {
	dir := t.TempDir()
	for _, name := range []string{"a.ts", "src/b.ts", "src/deep/c.ts", "src/d.go", "node_modules/lib/e.ts"} {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), os.ModePerm))
		require.NoError(t, os.WriteFile(full, []byte(name), 0644))
	}
	return dir
}

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(filepath.Join(dir, "foo/bar"))
	assert.NoError(t, err)
}

func TestDirExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir + "foo")
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestFileExists(t *testing.T) {
	dir := prepareTree(t)
	fs := New()

	result, err := fs.FileExists(filepath.Join(dir, "a.ts"))
	assert.NoError(t, err)
	assert.True(t, result)

	result, err = fs.FileExists(filepath.Join(dir, "src"))
	assert.NoError(t, err)
	assert.False(t, result)

	result, err = fs.FileExists(filepath.Join(dir, "missing.ts"))
	assert.NoError(t, err)
	assert.False(t, result)
}

func TestReadWriteRemove(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	name := filepath.Join(dir, "file.txt")

	require.NoError(t, fs.WriteFile(name, "contents"))
	data, err := fs.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))

	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, fs.Remove(name))
	_, err = fs.ReadFile(name)
	assert.Error(t, err)
}

func TestTempFile(t *testing.T) {
	dir := t.TempDir()

	f, err := New().TempFile(dir, "worker-*.log")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, dir, filepath.Dir(f.Name()))
	assert.True(t, strings.HasPrefix(filepath.Base(f.Name()), "worker-"))
}

func TestGlob(t *testing.T) {
	dir := prepareTree(t)
	fs := New()

	tests := []struct {
		name     string
		pattern  string
		expected []string
		wantErr  bool
	}{
		{
			name:     "recursive",
			pattern:  "src/**/*.ts",
			expected: []string{"src/b.ts", "src/deep/c.ts"},
		},
		{
			name:     "top level only",
			pattern:  "*.ts",
			expected: []string{"a.ts"},
		},
		{
			name:     "no match",
			pattern:  "**/*.rs",
			expected: []string{},
		},
		{
			name:    "bad pattern",
			pattern: "src/[",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := fs.Glob(dir, tt.pattern)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected := make([]string, 0, len(tt.expected))
			for _, e := range tt.expected {
				expected = append(expected, filepath.Join(dir, e))
			}
			sort.Strings(result)
			assert.Equal(t, expected, result)
		})
	}
}

func TestWalkFiles(t *testing.T) {
	dir := prepareTree(t)
	fs := New()

	var visited []string
	err := fs.WalkFiles(dir, func(name string) bool { return name == "node_modules" }, func(path string) error {
		rel, err := filepath.Rel(dir, path)
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(visited)
	assert.Equal(t, []string{"a.ts", "src/b.ts", "src/d.go", "src/deep/c.ts"}, visited)

	err = fs.WalkFiles(filepath.Join(dir, "missing"), nil, func(string) error { return nil })
	assert.Error(t, err)
}
