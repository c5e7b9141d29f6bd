// Package openfile keeps the contents of the files open in the editor.
package openfile

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/entity"
	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
	"github.com/uber/projectd/src/projectd/internal/event"
	"github.com/uber/projectd/src/projectd/internal/fs"
	"github.com/uber/projectd/src/projectd/mapper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "openfile"

// Module provides the open-file repository.
var Module = fx.Provide(New)

// Repository is the master's store of open files.
type Repository interface {
	// GetOrCreate opens filePath, reading it from disk when it is not open yet, and returns its contents.
	GetOrCreate(ctx context.Context, filePath string) (string, error)
	// Edit applies an editor edit to an open file.
	Edit(ctx context.Context, filePath string, edit entity.CodeEdit) error
	// Save writes an open file to disk.
	Save(ctx context.Context, filePath string) error
	// Close forgets an open file, discarding unsaved edits.
	Close(ctx context.Context, filePath string) error
	// OpenFilePaths returns the open files, sorted.
	OpenFilePaths() []string
	// Contents returns the contents of filePath, unsaved edits included. Files that are not open are read from disk.
	Contents(filePath string) (string, error)
	// IsDirty reports whether an open file has unsaved edits.
	IsDirty(filePath string) bool

	SubscribeDidEdit(fn func(entity.FileEdit)) (unsubscribe func())
	SubscribeSavedFileChangedOnDisk(fn func(entity.FilePathWithContent)) (unsubscribe func())
}

// Params are inbound parameters to initialize a new open-file repository.
type Params struct {
	fx.In

	FS        fs.FS
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Lifecycle fx.Lifecycle `optional:"true"`
}

type openFile struct {
	contents string
	dirty    bool
}

type repository struct {
	fs     fs.FS
	logger *zap.SugaredLogger
	stats  tally.Scope

	mu    sync.Mutex
	files map[string]*openFile
	// watchedDirs counts the open files of every watched directory.
	watchedDirs map[string]int

	watcher     *fsnotify.Watcher
	watchCloser chan struct{}
	watchDone   chan struct{}

	didEdit                event.Event[entity.FileEdit]
	savedFileChangedOnDisk event.Event[entity.FilePathWithContent]
}

// New creates an open-file repository. Open files are watched on disk between fx start and stop.
func New(p Params) Repository {
	r := &repository{
		fs:          p.FS,
		logger:      p.Logger.With("plugin", _nameKey),
		stats:       p.Stats.SubScope(_nameKey),
		files:       make(map[string]*openFile),
		watchedDirs: make(map[string]int),
		watchCloser: make(chan struct{}),
		watchDone:   make(chan struct{}),
	}

	if p.Lifecycle != nil {
		p.Lifecycle.Append(fx.Hook{
			OnStart: func(context.Context) error {
				r.startWatching()
				go r.handleChanges()
				return nil
			},
			OnStop: func(context.Context) error {
				close(r.watchCloser)
				<-r.watchDone
				return nil
			},
		})
	}
	return r
}

// startWatching creates the watcher and watches the directories of the files opened so far.
func (r *repository) startWatching() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		r.logger.Warnf("failed to create file watcher, changes on disk will be missed: %v", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcher = watcher
	for dir := range r.watchedDirs {
		if err := r.watcher.Add(dir); err != nil {
			r.logger.Warnf("failed to watch %q: %v", dir, err)
		}
	}
}

func (r *repository) GetOrCreate(ctx context.Context, filePath string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.files[filePath]; ok {
		return f.contents, nil
	}

	data, err := r.fs.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", filePath, err)
	}
	r.files[filePath] = &openFile{contents: string(data)}
	r.watchLocked(filePath)
	r.stats.Gauge("open_files").Update(float64(len(r.files)))
	return string(data), nil
}

func (r *repository) Edit(ctx context.Context, filePath string, edit entity.CodeEdit) error {
	r.mu.Lock()
	f, ok := r.files[filePath]
	if !ok {
		r.mu.Unlock()
		return &projectderrors.FileNotOpenError{FilePath: filePath}
	}
	contents, err := mapper.ApplyCodeEdit(f.contents, edit)
	if err != nil {
		r.mu.Unlock()
		return fmt.Errorf("editing %q: %w", filePath, err)
	}
	f.contents = contents
	f.dirty = true
	r.mu.Unlock()

	r.stats.Counter("edits").Inc(1)
	r.didEdit.Emit(entity.FileEdit{FilePath: filePath, Edit: edit})
	return nil
}

func (r *repository) Save(ctx context.Context, filePath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.files[filePath]
	if !ok {
		return &projectderrors.FileNotOpenError{FilePath: filePath}
	}
	if err := r.fs.WriteFile(filePath, f.contents); err != nil {
		return fmt.Errorf("saving %q: %w", filePath, err)
	}
	f.dirty = false
	return nil
}

func (r *repository) Close(ctx context.Context, filePath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[filePath]; !ok {
		return &projectderrors.FileNotOpenError{FilePath: filePath}
	}
	delete(r.files, filePath)
	r.unwatchLocked(filePath)
	r.stats.Gauge("open_files").Update(float64(len(r.files)))
	return nil
}

func (r *repository) OpenFilePaths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	filePaths := make([]string, 0, len(r.files))
	for p := range r.files {
		filePaths = append(filePaths, p)
	}
	sort.Strings(filePaths)
	return filePaths
}

func (r *repository) Contents(filePath string) (string, error) {
	r.mu.Lock()
	if f, ok := r.files[filePath]; ok {
		contents := f.contents
		r.mu.Unlock()
		return contents, nil
	}
	r.mu.Unlock()

	data, err := r.fs.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", filePath, err)
	}
	return string(data), nil
}

func (r *repository) IsDirty(filePath string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[filePath]
	return ok && f.dirty
}

func (r *repository) SubscribeDidEdit(fn func(entity.FileEdit)) func() {
	return r.didEdit.Subscribe(fn)
}

func (r *repository) SubscribeSavedFileChangedOnDisk(fn func(entity.FilePathWithContent)) func() {
	return r.savedFileChangedOnDisk.Subscribe(fn)
}

func (r *repository) watchLocked(filePath string) {
	dir := filepath.Dir(filePath)
	r.watchedDirs[dir]++
	if r.watchedDirs[dir] > 1 || r.watcher == nil {
		return
	}
	if err := r.watcher.Add(dir); err != nil {
		r.logger.Warnf("failed to watch %q: %v", dir, err)
	}
}

func (r *repository) unwatchLocked(filePath string) {
	dir := filepath.Dir(filePath)
	if r.watchedDirs[dir] == 0 {
		return
	}
	r.watchedDirs[dir]--
	if r.watchedDirs[dir] > 0 {
		return
	}
	delete(r.watchedDirs, dir)
	if r.watcher == nil {
		return
	}
	if err := r.watcher.Remove(dir); err != nil {
		r.logger.Debugf("failed to stop watching %q: %v", dir, err)
	}
}

func (r *repository) handleChanges() {
	defer close(r.watchDone)

	r.mu.Lock()
	watcher := r.watcher
	r.mu.Unlock()
	if watcher == nil {
		r.logger.Warn("File watcher unavailable, continuing without watching for changes")
		<-r.watchCloser
		return
	}

	for {
		select {
		case e := <-watcher.Events:
			if !e.Has(fsnotify.Create) && !e.Has(fsnotify.Write) {
				continue
			}
			r.reload(e.Name)
		case err := <-watcher.Errors:
			r.logger.Warnf("Failure in open file watcher: %v", err)
		case <-r.watchCloser:
			r.mu.Lock()
			r.watcher = nil
			r.mu.Unlock()
			if err := watcher.Close(); err != nil {
				r.logger.Warnf("Failed to close open file watcher: %v", err)
			}
			return
		}
	}
}

// reload picks up the contents on disk of a clean open file.
// Dirty files keep their unsaved edits.
func (r *repository) reload(filePath string) {
	filePath = filepath.Clean(filePath)

	r.mu.Lock()
	f, ok := r.files[filePath]
	if !ok || f.dirty {
		r.mu.Unlock()
		return
	}
	data, err := r.fs.ReadFile(filePath)
	if err != nil {
		r.mu.Unlock()
		r.logger.Debugf("unable to reload %q: %v", filePath, err)
		return
	}
	if string(data) == f.contents {
		r.mu.Unlock()
		return
	}
	f.contents = string(data)
	r.mu.Unlock()

	r.stats.Counter("disk_changes").Inc(1)
	r.savedFileChangedOnDisk.Emit(entity.FilePathWithContent{FilePath: filePath, Contents: string(data)})
}
