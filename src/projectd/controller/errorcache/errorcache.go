// Package errorcache stores the diagnostics of one process and publishes bounded, debounced updates of them.
package errorcache

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/clock"
	"github.com/uber/projectd/src/projectd/internal/debounce"
	"github.com/uber/projectd/src/projectd/internal/event"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey   = "errorcache"
	_configKey = "errorCache"
	_emitKey   = "emit"

	_defaultEmitDelayMs = 250
	_defaultMaxPerFile  = 50
	_defaultMaxTotal    = 200
)

// Controller owns the current diagnostics of a process.
type Controller interface {
	// SetErrorsByFilePaths makes errors the only current errors of every path in filePaths.
	// Paths not listed in filePaths keep their errors.
	SetErrorsByFilePaths(filePaths []string, errors []entity.CodeError)
	// GetErrorsLimited returns a snapshot capped per file and in total.
	GetErrorsLimited() entity.LimitedErrorsUpdate
	// GetErrorsForFilePath returns the stored errors of one file.
	GetErrorsForFilePath(filePath string) []entity.CodeError
	// ClearErrors drops every stored error.
	ClearErrors()
	// ClearErrorsForFilePath drops the errors of one file.
	ClearErrorsForFilePath(filePath string)
	// ApplyDelta accepts a delta produced by another cache and passes it on.
	ApplyDelta(delta entity.ErrorCacheDelta)
	// SubscribeErrorsUpdated registers fn for every limited snapshot emitted.
	SubscribeErrorsUpdated(fn func(entity.LimitedErrorsUpdate)) (unsubscribe func())
	// SubscribeErrorsDelta registers fn for every delta emitted.
	SubscribeErrorsDelta(fn func(entity.ErrorCacheDelta)) (unsubscribe func())
}

// Config holds the errorCache configuration section.
type Config struct {
	EmitDelayMs int `yaml:"emitDelayMs"`
	MaxPerFile  int `yaml:"maxPerFile"`
	MaxTotal    int `yaml:"maxTotal"`
}

// Params are inbound parameters to initialize a new error cache.
type Params struct {
	fx.In

	Config    config.Provider
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Clock     clock.Clock
	Lifecycle fx.Lifecycle `optional:"true"`
}

type mode int

const (
	// modeRelay passes inbound deltas on without storing them.
	modeRelay mode = iota
	// modeMerge stores inbound deltas before passing them on.
	modeMerge
)

type controller struct {
	mode       mode
	logger     *zap.SugaredLogger
	stats      tally.Scope
	debouncer  *debounce.Debouncer
	emitDelay  time.Duration
	maxPerFile int
	maxTotal   int

	mu               sync.Mutex
	errorsByFilePath entity.ErrorsByFilePath
	// before holds, for every path changed locally since the last emission, its list at the time of the first change.
	before map[string][]entity.CodeError
	// initial is set by ClearErrors until the next emission.
	initial bool

	// emitMu keeps snapshots and their emission in the same order.
	emitMu        sync.Mutex
	errorsUpdated event.Event[entity.LimitedErrorsUpdate]
	errorsDelta   event.Event[entity.ErrorCacheDelta]
}

// NewWorker creates the cache of the analysis worker. Inbound deltas are relayed untouched.
func NewWorker(p Params) (Controller, error) {
	return newController(p, modeRelay)
}

// NewMaster creates the cache of the coordinating process. Inbound deltas are merged into its state and relayed.
func NewMaster(p Params) (Controller, error) {
	return newController(p, modeMerge)
}

func newController(p Params, m mode) (*controller, error) {
	cfg := Config{
		EmitDelayMs: _defaultEmitDelayMs,
		MaxPerFile:  _defaultMaxPerFile,
		MaxTotal:    _defaultMaxTotal,
	}
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, err
	}

	c := &controller{
		mode:             m,
		logger:           p.Logger.With("plugin", _nameKey),
		stats:            p.Stats.SubScope(_nameKey),
		debouncer:        debounce.New(p.Clock),
		emitDelay:        time.Duration(cfg.EmitDelayMs) * time.Millisecond,
		maxPerFile:       cfg.MaxPerFile,
		maxTotal:         cfg.MaxTotal,
		errorsByFilePath: make(entity.ErrorsByFilePath),
		before:           make(map[string][]entity.CodeError),
	}

	if p.Lifecycle != nil {
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				c.debouncer.Stop()
				return nil
			},
		})
	}
	return c, nil
}

func (c *controller) SetErrorsByFilePaths(filePaths []string, errors []entity.CodeError) {
	grouped := entity.GroupByFilePath(errors)

	c.mu.Lock()
	changed := false
	for filePath, errs := range grouped {
		if !entity.EqualErrors(c.errorsByFilePath[filePath], errs) {
			c.setLocked(filePath, errs)
			changed = true
		}
	}
	for _, filePath := range filePaths {
		if _, ok := grouped[filePath]; ok {
			continue
		}
		if len(c.errorsByFilePath[filePath]) > 0 {
			c.setLocked(filePath, []entity.CodeError{})
			changed = true
		}
	}
	c.mu.Unlock()

	if changed {
		c.scheduleEmit()
	}
}

func (c *controller) GetErrorsLimited() entity.LimitedErrorsUpdate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.limitedLocked()
}

func (c *controller) GetErrorsForFilePath(filePath string) []entity.CodeError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.CodeError{}, c.errorsByFilePath[filePath]...)
}

func (c *controller) ClearErrors() {
	c.mu.Lock()
	c.errorsByFilePath = make(entity.ErrorsByFilePath)
	c.before = make(map[string][]entity.CodeError)
	c.initial = true
	c.mu.Unlock()

	c.scheduleEmit()
}

func (c *controller) ClearErrorsForFilePath(filePath string) {
	c.mu.Lock()
	c.setLocked(filePath, []entity.CodeError{})
	c.mu.Unlock()

	c.scheduleEmit()
}

func (c *controller) ApplyDelta(delta entity.ErrorCacheDelta) {
	if c.mode == modeMerge {
		c.mu.Lock()
		changed := c.mergeLocked(delta)
		c.mu.Unlock()
		if changed {
			c.scheduleEmit()
		}
	}
	c.errorsDelta.Emit(delta)
}

func (c *controller) SubscribeErrorsUpdated(fn func(entity.LimitedErrorsUpdate)) func() {
	return c.errorsUpdated.Subscribe(fn)
}

func (c *controller) SubscribeErrorsDelta(fn func(entity.ErrorCacheDelta)) func() {
	return c.errorsDelta.Subscribe(fn)
}

// setLocked stores errs for filePath and remembers the previous list for the next delta.
func (c *controller) setLocked(filePath string, errs []entity.CodeError) {
	if _, ok := c.before[filePath]; !ok {
		c.before[filePath] = c.errorsByFilePath[filePath]
	}
	c.errorsByFilePath[filePath] = errs
}

// mergeLocked applies delta to the stored errors: an initial delta resets the cache,
// removed paths are cleared and added paths are replaced.
func (c *controller) mergeLocked(delta entity.ErrorCacheDelta) bool {
	changed := false
	if delta.Initial {
		for filePath, errs := range c.errorsByFilePath {
			if _, ok := delta.Added[filePath]; !ok && len(errs) > 0 {
				c.errorsByFilePath[filePath] = []entity.CodeError{}
			}
		}
		changed = true
	}
	for filePath := range delta.Removed {
		if _, ok := delta.Added[filePath]; ok {
			continue
		}
		if len(c.errorsByFilePath[filePath]) > 0 {
			c.errorsByFilePath[filePath] = []entity.CodeError{}
			changed = true
		}
	}
	for filePath, errs := range delta.Added {
		if !entity.EqualErrors(c.errorsByFilePath[filePath], errs) {
			c.errorsByFilePath[filePath] = errs
			changed = true
		}
	}
	return changed
}

func (c *controller) limitedLocked() entity.LimitedErrorsUpdate {
	filePaths := make([]string, 0, len(c.errorsByFilePath))
	for filePath := range c.errorsByFilePath {
		filePaths = append(filePaths, filePath)
	}
	sort.Strings(filePaths)

	limited := make(entity.ErrorsByFilePath, len(filePaths))
	synced := 0
	for _, filePath := range filePaths {
		if synced >= c.maxTotal {
			break
		}
		errs := c.errorsByFilePath[filePath]
		n := min(len(errs), c.maxPerFile, c.maxTotal-synced)
		limited[filePath] = errs[:n:n]
		synced += n
	}

	total := c.errorsByFilePath.Count()
	return entity.LimitedErrorsUpdate{
		ErrorsByFilePath: limited,
		TotalCount:       total,
		SyncCount:        synced,
		TooMany:          total > c.maxTotal,
	}
}

// takeDeltaLocked returns the local changes made since the last emission and forgets them.
func (c *controller) takeDeltaLocked() entity.ErrorCacheDelta {
	delta := entity.ErrorCacheDelta{
		Added:   make(entity.ErrorsByFilePath),
		Removed: make(entity.ErrorsByFilePath),
		Initial: c.initial,
	}
	if c.initial {
		for filePath, errs := range c.errorsByFilePath {
			if len(errs) > 0 {
				delta.Added[filePath] = errs
			}
		}
	} else {
		for filePath, before := range c.before {
			after := c.errorsByFilePath[filePath]
			if entity.EqualErrors(before, after) {
				continue
			}
			if len(before) > 0 {
				delta.Removed[filePath] = before
			}
			if len(after) > 0 {
				delta.Added[filePath] = after
			}
		}
	}
	c.before = make(map[string][]entity.CodeError)
	c.initial = false
	return delta
}

func (c *controller) scheduleEmit() {
	c.debouncer.Trigger(_emitKey, c.emitDelay, c.emit)
}

func (c *controller) emit() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	update := c.limitedLocked()
	delta := c.takeDeltaLocked()
	c.mu.Unlock()

	c.stats.Counter("emits").Inc(1)
	c.stats.Gauge("total_errors").Update(float64(update.TotalCount))
	c.logger.Debugf("emitting %d of %d errors", update.SyncCount, update.TotalCount)

	c.errorsUpdated.Emit(update)
	if !delta.Empty() {
		c.errorsDelta.Emit(delta)
	}
}
