package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunsInOrder(t *testing.T) {
	o := New()
	var (
		mu  sync.Mutex
		got []int
	)
	for i := 0; i < 100; i++ {
		i := i
		require.True(t, o.Post(func(context.Context) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, i)
		}))
	}
	go o.Run(context.Background())
	o.Close(true)

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestDo(t *testing.T) {
	o := New()
	go o.Run(context.Background())
	defer o.Close(true)

	ran := false
	o.Post(func(context.Context) { ran = true })

	err := o.Do(context.Background(), func(context.Context) error {
		assert.True(t, ran, "posted call must run first")
		return errors.New("sad")
	})
	assert.EqualError(t, err, "sad")
	assert.NoError(t, o.Do(context.Background(), func(context.Context) error { return nil }))
}

func TestDoUsesCallerContext(t *testing.T) {
	o := New()
	go o.Run(context.Background())
	defer o.Close(true)

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")
	require.NoError(t, o.Do(ctx, func(ctx context.Context) error {
		assert.Equal(t, "value", ctx.Value(key{}))
		return nil
	}))
}

func TestDoCancelled(t *testing.T) {
	o := New()
	release := make(chan struct{})
	o.Post(func(context.Context) { <-release })
	go o.Run(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := o.Do(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	o.Close(true)
}

func TestClosed(t *testing.T) {
	o := New()
	go o.Run(context.Background())
	o.Close(true)

	assert.False(t, o.Post(func(context.Context) {}))
	assert.ErrorIs(t, o.Do(context.Background(), func(context.Context) error { return nil }), ClosedError)
}

func TestCloseWithoutRunDropsCalls(t *testing.T) {
	o := New()
	ran := false
	o.Post(func(context.Context) { ran = true })
	o.Close(false)
	assert.False(t, ran)
	assert.False(t, o.Post(func(context.Context) {}))
}
