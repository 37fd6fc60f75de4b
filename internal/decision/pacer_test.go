package decision

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Pacer(t *testing.T) {
	t.Run("second call waits out the interval", func(t *testing.T) {
		pacer := NewPacer(50 * time.Millisecond)
		ctx := context.Background()

		require.NoError(t, pacer.Wait(ctx))

		start := time.Now()
		require.NoError(t, pacer.Wait(ctx))
		require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("cancellation interrupts the wait", func(t *testing.T) {
		pacer := NewPacer(10 * time.Second)
		require.NoError(t, pacer.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := pacer.Wait(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("concurrent waiters are serialized", func(t *testing.T) {
		pacer := NewPacer(20 * time.Millisecond)
		ctx := context.Background()

		start := time.Now()
		done := make(chan struct{})
		for i := 0; i < 3; i++ {
			go func() {
				_ = pacer.Wait(ctx)
				done <- struct{}{}
			}()
		}
		for i := 0; i < 3; i++ {
			<-done
		}

		// first call is free, the other two each wait one interval
		require.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})
}
