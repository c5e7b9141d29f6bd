package errorcache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/projectd/src/projectd/entity"
	"github.com/uber/projectd/src/projectd/internal/clock"
	"github.com/uber/projectd/src/projectd/internal/core/coretest"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	updates []entity.LimitedErrorsUpdate
	deltas  []entity.ErrorCacheDelta
}

func newTestController(t *testing.T, newFn func(Params) (Controller, error), yaml string) (Controller, *clock.Manual, *recorder, tally.TestScope) {
	clk := clock.NewManual(time.Time{})
	stats := tally.NewTestScope("testing", make(map[string]string, 0))
	c, err := newFn(Params{
		Config: coretest.Config(t, yaml),
		Logger: zap.NewNop().Sugar(),
		Stats:  stats,
		Clock:  clk,
	})
	require.NoError(t, err)

	rec := &recorder{}
	c.SubscribeErrorsUpdated(func(u entity.LimitedErrorsUpdate) { rec.updates = append(rec.updates, u) })
	c.SubscribeErrorsDelta(func(d entity.ErrorCacheDelta) { rec.deltas = append(rec.deltas, d) })
	return c, clk, rec, stats
}

func codeError(filePath, message string) entity.CodeError {
	return entity.CodeError{FilePath: filePath, Message: message, Level: entity.LevelError}
}

func codeErrors(filePath string, n int) []entity.CodeError {
	errs := make([]entity.CodeError, 0, n)
	for i := 0; i < n; i++ {
		errs = append(errs, codeError(filePath, fmt.Sprintf("error %d", i)))
	}
	return errs
}

func TestNewConfig(t *testing.T) {
	c, err := newController(Params{
		Config: coretest.Config(t, "errorCache:\n  emitDelayMs: 10\n  maxPerFile: 2\n  maxTotal: 3\n"),
		Logger: zap.NewNop().Sugar(),
		Stats:  tally.NoopScope,
		Clock:  clock.New(),
	}, modeMerge)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, c.emitDelay)
	assert.Equal(t, 2, c.maxPerFile)
	assert.Equal(t, 3, c.maxTotal)

	c, err = newController(Params{
		Config: coretest.Config(t, "service:\n  name: projectd\n"),
		Logger: zap.NewNop().Sugar(),
		Stats:  tally.NoopScope,
		Clock:  clock.New(),
	}, modeRelay)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, c.emitDelay)
	assert.Equal(t, 50, c.maxPerFile)
	assert.Equal(t, 200, c.maxTotal)
}

func TestSetErrorsByFilePathsIdempotent(t *testing.T) {
	c, clk, rec, stats := newTestController(t, NewWorker, "")
	errs := []entity.CodeError{codeError("/p/a.ts", "one"), codeError("/p/b.ts", "two")}

	c.SetErrorsByFilePaths([]string{"/p/a.ts", "/p/b.ts"}, errs)
	c.SetErrorsByFilePaths([]string{"/p/a.ts", "/p/b.ts"}, errs)
	clk.Advance(250 * time.Millisecond)
	require.Len(t, rec.updates, 1)
	assert.Equal(t, 2, rec.updates[0].TotalCount)

	// A no-op call schedules nothing.
	c.SetErrorsByFilePaths([]string{"/p/a.ts", "/p/b.ts"}, errs)
	assert.Equal(t, 0, clk.Pending())
	clk.Advance(time.Second)
	assert.Len(t, rec.updates, 1)

	assert.Equal(t, int64(1), stats.Snapshot().Counters()["testing.errorcache.emits+"].Value())
	assert.Equal(t, float64(2), stats.Snapshot().Gauges()["testing.errorcache.total_errors+"].Value())
}

func TestSetErrorsByFilePathsDebounces(t *testing.T) {
	c, clk, rec, _ := newTestController(t, NewWorker, "")

	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, []entity.CodeError{codeError("/p/a.ts", "one")})
	clk.Advance(200 * time.Millisecond)
	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, []entity.CodeError{codeError("/p/a.ts", "two")})
	clk.Advance(200 * time.Millisecond)
	assert.Empty(t, rec.updates)

	clk.Advance(50 * time.Millisecond)
	require.Len(t, rec.updates, 1)
	assert.Equal(t, "two", rec.updates[0].ErrorsByFilePath["/p/a.ts"][0].Message)
}

func TestSetErrorsByFilePathsClearing(t *testing.T) {
	c, clk, rec, _ := newTestController(t, NewWorker, "")

	c.SetErrorsByFilePaths([]string{"/p/f.ts"}, codeErrors("/p/f.ts", 3))
	clk.Advance(250 * time.Millisecond)
	require.Len(t, rec.updates, 1)

	c.SetErrorsByFilePaths([]string{"/p/f.ts"}, nil)
	clk.Advance(250 * time.Millisecond)
	require.Len(t, rec.updates, 2)
	errs, ok := rec.updates[1].ErrorsByFilePath["/p/f.ts"]
	assert.True(t, ok)
	assert.Empty(t, errs)
	assert.Empty(t, c.GetErrorsForFilePath("/p/f.ts"))

	// Clearing an already empty file is a no-op.
	c.SetErrorsByFilePaths([]string{"/p/f.ts"}, nil)
	clk.Advance(250 * time.Millisecond)
	assert.Len(t, rec.updates, 2)
}

func TestSetErrorsByFilePathsLeavesUnlistedFiles(t *testing.T) {
	c, _, _, _ := newTestController(t, NewWorker, "")

	c.SetErrorsByFilePaths([]string{"/p/a.ts", "/p/b.ts"}, []entity.CodeError{codeError("/p/a.ts", "a"), codeError("/p/b.ts", "b")})
	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, nil)

	assert.Empty(t, c.GetErrorsForFilePath("/p/a.ts"))
	assert.Equal(t, []entity.CodeError{codeError("/p/b.ts", "b")}, c.GetErrorsForFilePath("/p/b.ts"))
}

func TestSetErrorsByFilePathsOrderSensitive(t *testing.T) {
	c, clk, rec, _ := newTestController(t, NewWorker, "")
	first, second := codeError("/p/a.ts", "one"), codeError("/p/a.ts", "two")

	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, []entity.CodeError{first, second})
	clk.Advance(250 * time.Millisecond)
	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, []entity.CodeError{second, first})
	clk.Advance(250 * time.Millisecond)
	assert.Len(t, rec.updates, 2)
}

func TestGetErrorsLimited(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]int
		wantTotal   int
		wantSync    int
		wantTooMany bool
	}{
		{name: "empty", files: map[string]int{}},
		{name: "under caps", files: map[string]int{"/a": 3, "/b": 4}, wantTotal: 7, wantSync: 7},
		{name: "per file cap", files: map[string]int{"/a": 60}, wantTotal: 60, wantSync: 50},
		{name: "exactly total cap", files: map[string]int{"/a": 50, "/b": 50, "/c": 50, "/d": 50}, wantTotal: 200, wantSync: 200},
		{name: "over total cap", files: map[string]int{"/a": 30, "/b": 30, "/c": 30, "/d": 30, "/e": 30, "/f": 30, "/g": 30, "/h": 30}, wantTotal: 240, wantSync: 200, wantTooMany: true},
		{name: "over both caps", files: map[string]int{"/a": 120, "/b": 120, "/c": 120, "/d": 120, "/e": 120}, wantTotal: 600, wantSync: 200, wantTooMany: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _, _ := newTestController(t, NewMaster, "")
			var filePaths []string
			var errs []entity.CodeError
			for filePath, n := range tt.files {
				filePaths = append(filePaths, filePath)
				errs = append(errs, codeErrors(filePath, n)...)
			}
			c.SetErrorsByFilePaths(filePaths, errs)

			got := c.GetErrorsLimited()
			assert.Equal(t, tt.wantTotal, got.TotalCount)
			assert.Equal(t, tt.wantSync, got.SyncCount)
			assert.Equal(t, tt.wantTooMany, got.TooMany)
			assert.Equal(t, tt.wantSync, got.ErrorsByFilePath.Count())
			assert.LessOrEqual(t, got.ErrorsByFilePath.Count(), 200)
			for _, fileErrs := range got.ErrorsByFilePath {
				assert.LessOrEqual(t, len(fileErrs), 50)
			}
			assert.Equal(t, got, c.GetErrorsLimited())
		})
	}
}

func TestClearErrors(t *testing.T) {
	c, clk, rec, _ := newTestController(t, NewWorker, "")

	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, codeErrors("/p/a.ts", 2))
	c.ClearErrors()
	clk.Advance(250 * time.Millisecond)

	require.Len(t, rec.updates, 1)
	assert.Equal(t, 0, rec.updates[0].TotalCount)
	require.Len(t, rec.deltas, 1)
	assert.True(t, rec.deltas[0].Initial)
	assert.Empty(t, rec.deltas[0].Added)

	// Clearing always emits, even when nothing is stored.
	c.ClearErrors()
	clk.Advance(250 * time.Millisecond)
	assert.Len(t, rec.updates, 2)
}

func TestClearErrorsForFilePath(t *testing.T) {
	c, clk, rec, _ := newTestController(t, NewWorker, "")

	c.SetErrorsByFilePaths([]string{"/p/a.ts", "/p/b.ts"}, append(codeErrors("/p/a.ts", 2), codeErrors("/p/b.ts", 1)...))
	clk.Advance(250 * time.Millisecond)
	c.ClearErrorsForFilePath("/p/a.ts")
	clk.Advance(250 * time.Millisecond)

	require.Len(t, rec.updates, 2)
	assert.Equal(t, 1, rec.updates[1].TotalCount)
	require.Len(t, rec.deltas, 2)
	assert.Equal(t, entity.ErrorCacheDelta{
		Added:   entity.ErrorsByFilePath{},
		Removed: entity.ErrorsByFilePath{"/p/a.ts": codeErrors("/p/a.ts", 2)},
	}, rec.deltas[1])
}

func TestLocalDelta(t *testing.T) {
	c, clk, rec, _ := newTestController(t, NewWorker, "")

	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, []entity.CodeError{codeError("/p/a.ts", "one")})
	clk.Advance(250 * time.Millisecond)
	require.Len(t, rec.deltas, 1)
	assert.Equal(t, entity.ErrorCacheDelta{
		Added:   entity.ErrorsByFilePath{"/p/a.ts": {codeError("/p/a.ts", "one")}},
		Removed: entity.ErrorsByFilePath{},
	}, rec.deltas[0])

	// Changes that cancel out before the emission produce no delta.
	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, []entity.CodeError{codeError("/p/a.ts", "two")})
	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, []entity.CodeError{codeError("/p/a.ts", "one")})
	clk.Advance(250 * time.Millisecond)
	assert.Len(t, rec.deltas, 1)

	c.SetErrorsByFilePaths([]string{"/p/a.ts"}, []entity.CodeError{codeError("/p/a.ts", "three")})
	clk.Advance(250 * time.Millisecond)
	require.Len(t, rec.deltas, 2)
	assert.Equal(t, entity.ErrorCacheDelta{
		Added:   entity.ErrorsByFilePath{"/p/a.ts": {codeError("/p/a.ts", "three")}},
		Removed: entity.ErrorsByFilePath{"/p/a.ts": {codeError("/p/a.ts", "one")}},
	}, rec.deltas[1])
}

func TestApplyDeltaRelay(t *testing.T) {
	worker, workerClock, workerRec, _ := newTestController(t, NewWorker, "")
	master, masterClock, masterRec, _ := newTestController(t, NewMaster, "")
	worker.SubscribeErrorsDelta(master.ApplyDelta)

	e1 := codeError("/p/f.ts", "e1")
	worker.ApplyDelta(entity.ErrorCacheDelta{Added: entity.ErrorsByFilePath{"/p/f.ts": {e1}}, Removed: entity.ErrorsByFilePath{}})

	// The worker passes the delta on without storing it.
	assert.Empty(t, worker.GetErrorsForFilePath("/p/f.ts"))
	require.Len(t, workerRec.deltas, 1)
	workerClock.Advance(time.Second)
	assert.Empty(t, workerRec.updates)

	assert.Equal(t, []entity.CodeError{e1}, master.GetErrorsForFilePath("/p/f.ts"))
	require.Len(t, masterRec.deltas, 1)
	masterClock.Advance(250 * time.Millisecond)
	require.Len(t, masterRec.updates, 1)
	assert.Equal(t, entity.ErrorsByFilePath{"/p/f.ts": {e1}}, masterRec.updates[0].ErrorsByFilePath)
	assert.Equal(t, 1, masterRec.updates[0].TotalCount)
	// Merged changes are not emitted again as a local delta.
	assert.Len(t, masterRec.deltas, 1)
}

func TestLocalChangesReachMaster(t *testing.T) {
	worker, workerClock, _, _ := newTestController(t, NewWorker, "")
	master, masterClock, masterRec, _ := newTestController(t, NewMaster, "")
	worker.SubscribeErrorsDelta(master.ApplyDelta)

	worker.SetErrorsByFilePaths([]string{"/p/a.ts", "/p/b.ts"}, append(codeErrors("/p/a.ts", 2), codeErrors("/p/b.ts", 1)...))
	workerClock.Advance(250 * time.Millisecond)
	worker.SetErrorsByFilePaths([]string{"/p/a.ts"}, nil)
	workerClock.Advance(250 * time.Millisecond)
	masterClock.Advance(250 * time.Millisecond)

	assert.Empty(t, master.GetErrorsForFilePath("/p/a.ts"))
	assert.Equal(t, codeErrors("/p/b.ts", 1), master.GetErrorsForFilePath("/p/b.ts"))
	require.NotEmpty(t, masterRec.updates)
	assert.Equal(t, 1, masterRec.updates[len(masterRec.updates)-1].TotalCount)

	worker.ClearErrors()
	workerClock.Advance(250 * time.Millisecond)
	masterClock.Advance(250 * time.Millisecond)
	assert.Empty(t, master.GetErrorsForFilePath("/p/b.ts"))
	assert.Equal(t, 0, master.GetErrorsLimited().TotalCount)
}

func TestApplyDeltaMergeInitial(t *testing.T) {
	master, clk, rec, _ := newTestController(t, NewMaster, "")
	master.ApplyDelta(entity.ErrorCacheDelta{Added: entity.ErrorsByFilePath{"/p/a.ts": codeErrors("/p/a.ts", 2)}})
	master.ApplyDelta(entity.ErrorCacheDelta{Initial: true, Added: entity.ErrorsByFilePath{"/p/b.ts": codeErrors("/p/b.ts", 1)}})
	clk.Advance(250 * time.Millisecond)

	assert.Empty(t, master.GetErrorsForFilePath("/p/a.ts"))
	assert.Len(t, master.GetErrorsForFilePath("/p/b.ts"), 1)
	require.Len(t, rec.updates, 1)
	assert.Equal(t, 1, rec.updates[0].TotalCount)
	assert.Len(t, rec.deltas, 2)

	// A delta that changes nothing is still relayed but schedules no emission.
	master.ApplyDelta(entity.ErrorCacheDelta{Added: entity.ErrorsByFilePath{"/p/b.ts": codeErrors("/p/b.ts", 1)}})
	assert.Equal(t, 0, clk.Pending())
	assert.Len(t, rec.deltas, 3)
}

func TestStopCancelsPendingEmission(t *testing.T) {
	clk := clock.NewManual(time.Time{})
	lc := fxtest.NewLifecycle(t)
	c, err := NewWorker(Params{
		Config:    coretest.Config(t, ""),
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NoopScope,
		Clock:     clk,
		Lifecycle: lc,
	})
	require.NoError(t, err)
	lc.RequireStart()

	emitted := false
	c.SubscribeErrorsUpdated(func(entity.LimitedErrorsUpdate) { emitted = true })
	c.ClearErrors()
	lc.RequireStop()
	clk.Advance(time.Second)
	assert.False(t, emitted)
}
