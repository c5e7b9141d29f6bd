// Package outputstatus tracks whether the output of each project file is current.
package outputstatus

import (
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/event"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "outputstatus"

// Controller holds the output status cache of a process.
type Controller interface {
	// SetProjectErrors recomputes the status of every project file after a full analysis.
	// Changed files are published one by one, then the complete cache is published.
	SetProjectErrors(filePaths []string, errorsByFilePath entity.ErrorsByFilePath)
	// SetFileErrors recomputes the status of one file after an incremental analysis.
	SetFileErrors(filePath string, errors []entity.CodeError)
	// SetFileStatus stores a status computed elsewhere and publishes it when it changed.
	SetFileStatus(status entity.FileOutputStatus)
	// SetCache replaces the whole cache with one computed elsewhere and publishes it.
	SetCache(cache entity.OutputStatusCache)
	// Cache returns a copy of the cache.
	Cache() entity.OutputStatusCache
	// Clear forgets every status.
	Clear()
	// SubscribeFileOutputStatusUpdated registers fn for every changed file status.
	SubscribeFileOutputStatusUpdated(fn func(entity.FileOutputStatus)) (unsubscribe func())
	// SubscribeCompleteOutputStatusCacheUpdated registers fn for every complete cache published.
	SubscribeCompleteOutputStatusCacheUpdated(fn func(entity.OutputStatusCache)) (unsubscribe func())
}

// Params are inbound parameters to initialize a new output status controller.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type controller struct {
	logger *zap.SugaredLogger
	stats  tally.Scope

	mu    sync.Mutex
	cache entity.OutputStatusCache

	emitMu         sync.Mutex
	fileUpdated    event.Event[entity.FileOutputStatus]
	completeUpdate event.Event[entity.OutputStatusCache]
}

// New creates a new output status controller.
func New(p Params) Controller {
	return &controller{
		logger: p.Logger.With("plugin", _nameKey),
		stats:  p.Stats.SubScope(_nameKey),
		cache:  make(entity.OutputStatusCache),
	}
}

// statusFor derives the output state of a file from its errors. A file with errors cannot be emitted.
func statusFor(filePath string, errors []entity.CodeError) entity.FileOutputStatus {
	state := entity.OutputUpToDate
	for _, e := range errors {
		if e.Level == entity.LevelError {
			state = entity.OutputEmitSkipped
			break
		}
	}
	return entity.FileOutputStatus{InputFilePath: filePath, State: state}
}

func (c *controller) SetProjectErrors(filePaths []string, errorsByFilePath entity.ErrorsByFilePath) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	next := make(entity.OutputStatusCache, len(filePaths))
	var changed []entity.FileOutputStatus
	c.mu.Lock()
	for _, filePath := range filePaths {
		status := statusFor(filePath, errorsByFilePath[filePath])
		next[filePath] = status
		if previous, ok := c.cache[filePath]; !ok || previous != status {
			changed = append(changed, status)
		}
	}
	c.cache = next
	complete := c.copyLocked()
	c.mu.Unlock()

	for _, status := range changed {
		c.fileUpdated.Emit(status)
	}
	c.stats.Counter("file_updates").Inc(int64(len(changed)))
	c.stats.Counter("complete_updates").Inc(1)
	c.completeUpdate.Emit(complete)
}

func (c *controller) SetFileErrors(filePath string, errors []entity.CodeError) {
	c.SetFileStatus(statusFor(filePath, errors))
}

func (c *controller) SetFileStatus(status entity.FileOutputStatus) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	previous, ok := c.cache[status.InputFilePath]
	c.cache[status.InputFilePath] = status
	c.mu.Unlock()

	if ok && previous == status {
		return
	}
	c.stats.Counter("file_updates").Inc(1)
	c.fileUpdated.Emit(status)
}

func (c *controller) SetCache(cache entity.OutputStatusCache) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	c.cache = make(entity.OutputStatusCache, len(cache))
	for filePath, status := range cache {
		c.cache[filePath] = status
	}
	complete := c.copyLocked()
	c.mu.Unlock()

	c.stats.Counter("complete_updates").Inc(1)
	c.completeUpdate.Emit(complete)
}

func (c *controller) Cache() entity.OutputStatusCache {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

func (c *controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(entity.OutputStatusCache)
}

func (c *controller) SubscribeFileOutputStatusUpdated(fn func(entity.FileOutputStatus)) func() {
	return c.fileUpdated.Subscribe(fn)
}

func (c *controller) SubscribeCompleteOutputStatusCacheUpdated(fn func(entity.OutputStatusCache)) func() {
	return c.completeUpdate.Subscribe(fn)
}

func (c *controller) copyLocked() entity.OutputStatusCache {
	cache := make(entity.OutputStatusCache, len(c.cache))
	for filePath, status := range c.cache {
		cache[filePath] = status
	}
	return cache
}
