package openfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/entity"
	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
	"github.com/uber/projectd/src/projectd/internal/fs"
	"github.com/uber/projectd/src/projectd/internal/fs/fsmock"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRepository(fsys fs.FS) *repository {
	return New(Params{
		FS:     fsys,
		Logger: zap.NewNop().Sugar(),
		Stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
	}).(*repository)
}

func TestGetOrCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockFS(ctrl)
	fsMock.EXPECT().ReadFile("/w/a.ts").Return([]byte("abc"), nil).Times(1)
	fsMock.EXPECT().ReadFile("/w/missing.ts").Return(nil, os.ErrNotExist)

	r := newTestRepository(fsMock)
	ctx := context.Background()

	contents, err := r.GetOrCreate(ctx, "/w/a.ts")
	require.NoError(t, err)
	assert.Equal(t, "abc", contents)

	// A second open reuses the buffer.
	contents, err = r.GetOrCreate(ctx, "/w/a.ts")
	require.NoError(t, err)
	assert.Equal(t, "abc", contents)

	_, err = r.GetOrCreate(ctx, "/w/missing.ts")
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, []string{"/w/a.ts"}, r.OpenFilePaths())
	assert.Equal(t, map[string]int{"/w": 1}, r.watchedDirs)
}

func TestEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockFS(ctrl)
	fsMock.EXPECT().ReadFile("/w/a.ts").Return([]byte("let a = 1;\nlet b = 2;\n"), nil)

	r := newTestRepository(fsMock)
	ctx := context.Background()
	var edits []entity.FileEdit
	r.SubscribeDidEdit(func(e entity.FileEdit) { edits = append(edits, e) })

	_, err := r.GetOrCreate(ctx, "/w/a.ts")
	require.NoError(t, err)

	edit := entity.CodeEdit{
		From:    entity.Position{Line: 1, Ch: 4},
		To:      entity.Position{Line: 1, Ch: 5},
		NewText: "bee",
	}
	require.NoError(t, r.Edit(ctx, "/w/a.ts", edit))

	contents, err := r.Contents("/w/a.ts")
	require.NoError(t, err)
	assert.Equal(t, "let a = 1;\nlet bee = 2;\n", contents)
	assert.True(t, r.IsDirty("/w/a.ts"))
	assert.Equal(t, []entity.FileEdit{{FilePath: "/w/a.ts", Edit: edit}}, edits)

	err = r.Edit(ctx, "/w/a.ts", entity.CodeEdit{From: entity.Position{Ch: 3}, To: entity.Position{Ch: 1}})
	assert.Error(t, err)
	assert.Len(t, edits, 1)

	err = r.Edit(ctx, "/w/b.ts", edit)
	assert.True(t, projectderrors.IsFileNotOpen(err))
}

func TestSaveAndClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockFS(ctrl)
	fsMock.EXPECT().ReadFile("/w/a.ts").Return([]byte("a"), nil)
	fsMock.EXPECT().WriteFile("/w/a.ts", "ab").Return(nil)
	fsMock.EXPECT().ReadFile("/w/a.ts").Return([]byte("ab"), nil)

	r := newTestRepository(fsMock)
	ctx := context.Background()
	_, err := r.GetOrCreate(ctx, "/w/a.ts")
	require.NoError(t, err)
	require.NoError(t, r.Edit(ctx, "/w/a.ts", entity.CodeEdit{
		From:    entity.Position{Ch: 1},
		To:      entity.Position{Ch: 1},
		NewText: "b",
	}))

	require.NoError(t, r.Save(ctx, "/w/a.ts"))
	assert.False(t, r.IsDirty("/w/a.ts"))

	require.NoError(t, r.Close(ctx, "/w/a.ts"))
	assert.Empty(t, r.OpenFilePaths())
	assert.Empty(t, r.watchedDirs)

	// Closed files are read from disk.
	contents, err := r.Contents("/w/a.ts")
	require.NoError(t, err)
	assert.Equal(t, "ab", contents)

	assert.True(t, projectderrors.IsFileNotOpen(r.Save(ctx, "/w/a.ts")))
	assert.True(t, projectderrors.IsFileNotOpen(r.Close(ctx, "/w/a.ts")))
}

func TestSaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockFS(ctrl)
	fsMock.EXPECT().ReadFile("/w/a.ts").Return([]byte("a"), nil)
	fsMock.EXPECT().WriteFile("/w/a.ts", "a").Return(os.ErrPermission)

	r := newTestRepository(fsMock)
	_, err := r.GetOrCreate(context.Background(), "/w/a.ts")
	require.NoError(t, err)
	assert.ErrorIs(t, r.Save(context.Background(), "/w/a.ts"), os.ErrPermission)
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	b := filepath.Join(dir, "b.ts")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0644))

	r := newTestRepository(fs.New())
	ctx := context.Background()
	var changes []entity.FilePathWithContent
	r.SubscribeSavedFileChangedOnDisk(func(c entity.FilePathWithContent) { changes = append(changes, c) })

	_, err := r.GetOrCreate(ctx, a)
	require.NoError(t, err)
	_, err = r.GetOrCreate(ctx, b)
	require.NoError(t, err)
	require.NoError(t, r.Edit(ctx, b, entity.CodeEdit{NewText: "unsaved "}))

	require.NoError(t, os.WriteFile(a, []byte("a2"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("b2"), 0644))
	r.reload(a)
	r.reload(b)
	r.reload(filepath.Join(dir, "closed.ts"))
	// Same contents again are not a change.
	r.reload(a)

	assert.Equal(t, []entity.FilePathWithContent{{FilePath: a, Contents: "a2"}}, changes)
	contents, err := r.Contents(b)
	require.NoError(t, err)
	assert.Equal(t, "unsaved b", contents)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0644))

	lifecycle := fxtest.NewLifecycle(t)
	r := New(Params{
		FS:        fs.New(),
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NoopScope,
		Lifecycle: lifecycle,
	})

	var mu sync.Mutex
	var changes []entity.FilePathWithContent
	r.SubscribeSavedFileChangedOnDisk(func(c entity.FilePathWithContent) {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, c)
	})

	// Files opened before start are watched once the watcher exists.
	_, err := r.GetOrCreate(context.Background(), a)
	require.NoError(t, err)
	lifecycle.RequireStart()
	defer lifecycle.RequireStop()

	require.NoError(t, os.WriteFile(a, []byte("from disk"), 0644))
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changes) > 0 && changes[len(changes)-1].Contents == "from disk"
	}, 5*time.Second, 10*time.Millisecond)

	contents, err := r.Contents(a)
	require.NoError(t, err)
	assert.Equal(t, "from disk", contents)
}
