// Package activeproject owns the single active project of the worker and drives its analysis.
package activeproject

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/contract"
	"github.com/uber/projectd/src/projectd/controller/errorcache"
	"github.com/uber/projectd/src/projectd/controller/outputstatus"
	"github.com/uber/projectd/src/projectd/engine"
	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/clock"
	"github.com/uber/projectd/src/projectd/internal/debounce"
	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
	"github.com/uber/projectd/src/projectd/internal/event"
	"github.com/uber/projectd/src/projectd/internal/manifest"
	"github.com/uber/projectd/src/projectd/mapper"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=activeprojectmock/activeproject_mock.go -package=activeprojectmock . Controller

const (
	_nameKey = "activeproject"

	_projectRefreshDelayKey  = "activeProject.projectRefreshDelayMs"
	_fileRefreshDelayKey     = "activeProject.fileRefreshDelayMs"
	_smallEditLineThreshold  = "activeProject.smallEditLineThreshold"
	_defaultProjectRefreshMs = 3000
	_defaultFileRefreshMs    = 1000
	_defaultSmallEditLines   = 1000

	_projectRefreshKey = "project"
	_fileRefreshPrefix = "file:"
)

// Controller manages the active project.
type Controller interface {
	// SetActiveProjectConfigDetails selects the desired project, clears every error and synchronizes.
	SetActiveProjectConfigDetails(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error
	// Sync resolves the desired project against the available ones and rebuilds it.
	Sync(ctx context.Context) error
	// FilePathsUpdated recomputes the available projects from a new file listing.
	FilePathsUpdated(ctx context.Context, filePaths []string) error
	// FileEdited applies an editor edit to the active project.
	FileEdited(ctx context.Context, filePath string, edit entity.CodeEdit) error
	// FileChangedOnDisk replaces the contents of a saved file that changed on disk.
	FileChangedOnDisk(ctx context.Context, filePath string, contents string) error
	// RefreshAllProjectDiagnostics analyses every file of the active project now.
	RefreshAllProjectDiagnostics(ctx context.Context) error
	// ProjectForFile returns the engine of the active project when it contains filePath.
	ProjectForFile(filePath string) (engine.Engine, error)
	// CurrentProject returns the engine of the active project.
	CurrentProject() (engine.Engine, error)
	// ActiveProjectConfigDetails returns the active descriptor, if any.
	ActiveProjectConfigDetails() (entity.ProjectConfigDescriptor, bool)
	// AvailableProjects returns the projects found by the last file listing.
	AvailableProjects() []entity.ProjectConfigDescriptor
	// Format returns the edits formatting a file of the active project.
	Format(ctx context.Context, filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error)
	// FormatRange returns the edits formatting some lines of a file of the active project.
	FormatRange(ctx context.Context, filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error)

	SubscribeActiveProjectChanged(fn func(entity.ProjectConfigDescriptor)) (unsubscribe func())
	SubscribeAvailableProjectsUpdated(fn func([]entity.ProjectConfigDescriptor)) (unsubscribe func())
	SubscribeFilePathsUpdated(fn func([]string)) (unsubscribe func())
}

// Params are inbound parameters to initialize a new active project controller.
type Params struct {
	fx.In

	Config        config.Provider
	Logger        *zap.SugaredLogger
	Stats         tally.Scope
	Clock         clock.Clock
	Loader        *manifest.Loader
	EngineFactory engine.Factory
	ErrorCache    errorcache.Controller
	OutputStatus  outputstatus.Controller
	Master        contract.Master
	Lifecycle     fx.Lifecycle `optional:"true"`
}

// State is everything the controller knows about the active project.
type State struct {
	// Descriptor is the desired project until a sync resolves it, then the active one.
	Descriptor *entity.ProjectConfigDescriptor
	Project    *manifest.Project
	Engine     engine.Engine
	// InitialSyncPending is set between building an engine and its first full analysis.
	InitialSyncPending bool
	// Synced is set once a sync has been attempted.
	Synced bool
	// Available is nil until the first file listing arrives.
	Available []entity.ProjectConfigDescriptor
}

type controller struct {
	logger        *zap.SugaredLogger
	stats         tally.Scope
	clock         clock.Clock
	loader        *manifest.Loader
	engineFactory engine.Factory
	errorCache    errorcache.Controller
	outputStatus  outputstatus.Controller
	master        contract.Master
	debouncer     *debounce.Debouncer

	projectRefreshDelay time.Duration
	fileRefreshDelay    time.Duration
	smallEditLines      int

	// ctx bounds the analysis started by timers.
	ctx    context.Context
	cancel context.CancelFunc

	// mu serializes every turn of the state machine, debounced ones included.
	mu    sync.Mutex
	state State

	activeProjectChanged     event.Event[entity.ProjectConfigDescriptor]
	availableProjectsUpdated event.Event[[]entity.ProjectConfigDescriptor]
	filePathsUpdated         event.Event[[]string]
}

// New creates a new active project controller with no active project.
func New(p Params) (Controller, error) {
	projectRefreshMs, fileRefreshMs, smallEditLines := _defaultProjectRefreshMs, _defaultFileRefreshMs, _defaultSmallEditLines
	for key, target := range map[string]*int{
		_projectRefreshDelayKey: &projectRefreshMs,
		_fileRefreshDelayKey:    &fileRefreshMs,
		_smallEditLineThreshold: &smallEditLines,
	} {
		if err := p.Config.Get(key).Populate(target); err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &controller{
		logger:              p.Logger.With("plugin", _nameKey),
		stats:               p.Stats.SubScope(_nameKey),
		clock:               p.Clock,
		loader:              p.Loader,
		engineFactory:       p.EngineFactory,
		errorCache:          p.ErrorCache,
		outputStatus:        p.OutputStatus,
		master:              p.Master,
		debouncer:           debounce.New(p.Clock),
		projectRefreshDelay: time.Duration(projectRefreshMs) * time.Millisecond,
		fileRefreshDelay:    time.Duration(fileRefreshMs) * time.Millisecond,
		smallEditLines:      smallEditLines,
		ctx:                 ctx,
		cancel:              cancel,
	}

	if p.Lifecycle != nil {
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				c.stop()
				return nil
			},
		})
	}
	return c, nil
}

func (c *controller) stop() {
	c.debouncer.Stop()
	c.cancel()
}

func (c *controller) SetActiveProjectConfigDetails(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Descriptor = &descriptor
	c.activeProjectChanged.Emit(descriptor)
	c.errorCache.ClearErrors()
	return c.syncLocked(ctx)
}

func (c *controller) Sync(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncLocked(ctx)
}

func (c *controller) FilePathsUpdated(ctx context.Context, filePaths []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	available := c.loader.Discover(filePaths)
	if c.state.Available == nil || !slices.Equal(available, c.state.Available) {
		c.state.Available = available
		c.availableProjectsUpdated.Emit(slices.Clone(available))
	}

	// The active project must be rebuilt when it is gone from the listing,
	// e.g. the implicit project once a manifest shows up.
	if !c.state.Synced || !c.activeAvailableLocked() {
		return c.syncLocked(ctx)
	}
	return nil
}

func (c *controller) FileEdited(ctx context.Context, filePath string, edit entity.CodeEdit) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if eng := c.engineForLocked(filePath); eng != nil {
		if err := eng.ApplyEdit(filePath, edit); err != nil {
			return err
		}
		if edit.From.Line < c.smallEditLines {
			if err := c.refreshFileLocked(ctx, filePath); err != nil {
				return err
			}
		} else {
			c.debouncer.Trigger(_fileRefreshPrefix+filePath, c.fileRefreshDelay, func() {
				c.runTurn("file refresh", func(ctx context.Context) error {
					return c.refreshFileLocked(ctx, filePath)
				})
			})
		}
		c.scheduleProjectRefresh()
	}

	if c.isActiveManifestLocked(filePath) {
		return c.syncLocked(ctx)
	}
	return nil
}

func (c *controller) FileChangedOnDisk(ctx context.Context, filePath string, contents string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if eng := c.engineForLocked(filePath); eng != nil {
		eng.SetFileContents(filePath, contents)
		c.scheduleProjectRefresh()
	}

	if c.isActiveManifestLocked(filePath) {
		return c.syncLocked(ctx)
	}
	return nil
}

func (c *controller) RefreshAllProjectDiagnostics(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshAllLocked(ctx)
}

func (c *controller) ProjectForFile(filePath string) (engine.Engine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	eng := c.engineForLocked(filePath)
	if eng == nil {
		err := &projectderrors.NoActiveProjectForFilePathError{FilePath: filePath}
		c.logger.Error(err.Error())
		return nil, err
	}
	return eng, nil
}

func (c *controller) CurrentProject() (engine.Engine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Engine == nil {
		err := &projectderrors.NoActiveProjectError{}
		c.logger.Error(err.Error())
		return nil, err
	}
	return c.state.Engine, nil
}

func (c *controller) ActiveProjectConfigDetails() (entity.ProjectConfigDescriptor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Descriptor == nil {
		return entity.ProjectConfigDescriptor{}, false
	}
	return *c.state.Descriptor, true
}

func (c *controller) AvailableProjects() []entity.ProjectConfigDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.state.Available)
}

func (c *controller) Format(ctx context.Context, filePath string, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	eng, err := c.ProjectForFile(filePath)
	if err != nil {
		return nil, err
	}
	return eng.FormatDocument(filePath, options)
}

func (c *controller) FormatRange(ctx context.Context, filePath string, from, to entity.Position, options entity.EditorOptions) ([]entity.CodeEdit, error) {
	eng, err := c.ProjectForFile(filePath)
	if err != nil {
		return nil, err
	}
	return eng.FormatDocumentRange(filePath, from, to, options)
}

func (c *controller) SubscribeActiveProjectChanged(fn func(entity.ProjectConfigDescriptor)) func() {
	return c.activeProjectChanged.Subscribe(fn)
}

func (c *controller) SubscribeAvailableProjectsUpdated(fn func([]entity.ProjectConfigDescriptor)) func() {
	return c.availableProjectsUpdated.Subscribe(fn)
}

func (c *controller) SubscribeFilePathsUpdated(fn func([]string)) func() {
	return c.filePathsUpdated.Subscribe(fn)
}

// resolve picks the available project named like desired, or the first available one.
func resolve(available []entity.ProjectConfigDescriptor, desired *entity.ProjectConfigDescriptor) entity.ProjectConfigDescriptor {
	if desired != nil {
		for _, d := range available {
			if d.Name == desired.Name {
				return d
			}
		}
	}
	return available[0]
}

func (c *controller) syncLocked(ctx context.Context) error {
	available := c.state.Available
	if len(available) == 0 {
		// Without a file listing the desired project is taken as is.
		if c.state.Descriptor != nil && c.state.Descriptor.Valid() {
			available = []entity.ProjectConfigDescriptor{*c.state.Descriptor}
		} else {
			available = []entity.ProjectConfigDescriptor{entity.ImplicitProject(c.loader.Options().ImplicitProjectName)}
		}
	}
	return c.syncCoreLocked(ctx, resolve(available, c.state.Descriptor))
}

// syncCoreLocked drops the current engine, loads descriptor and builds a fresh engine for it.
// A manifest failure is reported as an error on the manifest and leaves no active engine.
func (c *controller) syncCoreLocked(ctx context.Context, descriptor entity.ProjectConfigDescriptor) error {
	c.stats.Counter("syncs").Inc(1)
	if c.state.Engine != nil {
		// Errors of the previous project are stale whatever the outcome.
		c.errorCache.SetErrorsByFilePaths(c.state.Engine.FilePaths(), nil)
	}
	c.state.Synced = true
	c.state.Project = nil
	c.state.Engine = nil
	c.debouncer.Cancel(_projectRefreshKey)

	project, err := c.loadProjectLocked(ctx, descriptor)
	if err != nil {
		return err
	}
	eng, err := c.engineFactory(ctx, project)
	if err != nil {
		return fmt.Errorf("creating engine for %q: %w", descriptor.Name, err)
	}
	c.pushOpenFiles(ctx, eng)

	c.state.Project = project
	c.state.Engine = eng
	c.filePathsUpdated.Emit(eng.FilePaths())

	if !descriptor.IsImplicit {
		c.errorCache.ClearErrorsForFilePath(descriptor.ManifestFilePath)
	}
	if c.state.Descriptor == nil || *c.state.Descriptor != descriptor {
		d := descriptor
		c.state.Descriptor = &d
		c.activeProjectChanged.Emit(descriptor)
	}

	c.state.InitialSyncPending = true
	return c.refreshAllLocked(ctx)
}

func (c *controller) loadProjectLocked(ctx context.Context, descriptor entity.ProjectConfigDescriptor) (*manifest.Project, error) {
	if descriptor.IsImplicit || descriptor.ManifestFilePath == "" {
		project, err := c.loader.InMemory("")
		if err != nil {
			return nil, fmt.Errorf("building implicit project: %w", err)
		}
		return project, nil
	}

	path := descriptor.ManifestFilePath
	var project *manifest.Project
	var err error
	if contents, ok := c.openFileContents(ctx, path); ok {
		project, err = c.loader.LoadContents(path, []byte(contents))
	} else {
		project, err = c.loader.Load(path)
	}
	if err != nil {
		c.stats.Counter("manifest_errors").Inc(1)
		c.logger.Errorf("loading project %q: %v", descriptor.Name, err)
		details := entity.BlandError(path, err.Error())
		if manifestErr, ok := projectderrors.AsManifestError(err); ok {
			details = manifestErr.Details
		}
		c.errorCache.SetErrorsByFilePaths([]string{path}, []entity.CodeError{details})
		return nil, err
	}
	return project, nil
}

// openFileContents returns the unsaved contents of filePath when the editor has it open.
func (c *controller) openFileContents(ctx context.Context, filePath string) (string, bool) {
	openFilePaths, err := c.master.GetOpenFilePaths(ctx)
	if err != nil {
		c.logger.Warnf("listing open files: %v", err)
		return "", false
	}
	if !slices.Contains(openFilePaths, filePath) {
		return "", false
	}
	contents, err := c.master.GetFileContents(ctx, filePath)
	if err != nil {
		c.logger.Warnf("reading open file %q: %v", filePath, err)
		return "", false
	}
	return contents, true
}

// pushOpenFiles copies the unsaved contents of open project files into a fresh engine.
func (c *controller) pushOpenFiles(ctx context.Context, eng engine.Engine) {
	openFilePaths, err := c.master.GetOpenFilePaths(ctx)
	if err != nil {
		c.logger.Warnf("listing open files: %v", err)
		return
	}
	for _, filePath := range openFilePaths {
		if !eng.IncludesSourceFile(filePath) {
			continue
		}
		contents, err := c.master.GetFileContents(ctx, filePath)
		if err != nil {
			c.logger.Warnf("reading open file %q: %v", filePath, err)
			continue
		}
		eng.SetFileContents(filePath, contents)
	}
}

// refreshAllLocked makes the diagnostics of the active project the only errors of its files.
func (c *controller) refreshAllLocked(ctx context.Context) error {
	eng := c.state.Engine
	if eng == nil {
		return nil
	}

	analysis := "incremental error analysis"
	if c.state.InitialSyncPending {
		analysis = "initial error analysis"
	}
	start := c.clock.Now()

	diagnostics, err := eng.GetDiagnostics(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", analysis, err)
	}
	errs := mapper.DiagnosticsToCodeErrors(diagnostics, contentsOf(eng))
	filePaths := eng.FilePaths()
	c.errorCache.SetErrorsByFilePaths(filePaths, errs)
	c.outputStatus.SetProjectErrors(filePaths, entity.GroupByFilePath(errs))

	c.state.InitialSyncPending = false
	c.stats.Counter("full_refresh").Inc(1)
	c.logger.Infow(analysis, "files", len(filePaths), "errors", len(errs), "duration", c.clock.Now().Sub(start))
	return nil
}

func (c *controller) refreshFileLocked(ctx context.Context, filePath string) error {
	eng := c.engineForLocked(filePath)
	if eng == nil {
		return nil
	}
	diagnostics, err := eng.GetDiagnosticsForFile(ctx, filePath)
	if err != nil {
		return fmt.Errorf("file error analysis of %q: %w", filePath, err)
	}
	errs := mapper.DiagnosticsToCodeErrors(diagnostics, contentsOf(eng))
	c.errorCache.SetErrorsByFilePaths([]string{filePath}, errs)
	c.outputStatus.SetFileErrors(filePath, errs)
	c.stats.Counter("file_refresh").Inc(1)
	return nil
}

func (c *controller) scheduleProjectRefresh() {
	c.debouncer.Trigger(_projectRefreshKey, c.projectRefreshDelay, func() {
		c.runTurn("project refresh", c.refreshAllLocked)
	})
}

// runTurn runs a debounced step under the controller lock. Failures have no caller and are logged.
func (c *controller) runTurn(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx.Err() != nil {
		return
	}
	if err := fn(c.ctx); err != nil {
		c.logger.Errorf("%s: %v", name, err)
	}
}

func (c *controller) engineForLocked(filePath string) engine.Engine {
	if c.state.Engine != nil && c.state.Engine.IncludesSourceFile(filePath) {
		return c.state.Engine
	}
	return nil
}

func (c *controller) activeAvailableLocked() bool {
	if c.state.Descriptor == nil {
		return false
	}
	return slices.Contains(c.state.Available, *c.state.Descriptor)
}

func (c *controller) isActiveManifestLocked(filePath string) bool {
	d := c.state.Descriptor
	return d != nil && !d.IsImplicit && d.ManifestFilePath == filePath
}

func contentsOf(eng engine.Engine) func(string) string {
	return func(filePath string) string {
		contents, _ := eng.Contents(filePath)
		return contents
	}
}
