package async_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prysmaticlabs/numerics/async"
	"github.com/prysmaticlabs/numerics/testing/assert"
)

func TestRunEvery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	i := int32(0)
	async.RunEvery(ctx, 20*time.Millisecond, func() {
		atomic.AddInt32(&i, 1)
	})

	time.Sleep(100 * time.Millisecond)
	assert.NotEqual(t, int32(0), atomic.LoadInt32(&i), "Counter failed to increment with ticker")

	cancel()
	time.Sleep(50 * time.Millisecond)
	last := atomic.LoadInt32(&i)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, last, atomic.LoadInt32(&i), "Counter incremented after stop")
}
