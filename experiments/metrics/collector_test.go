package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts from many goroutines", func(t *testing.T) {
		c := NewCollector()
		c.Start("NegaMax", "UniformWeighting", 3, 4)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 1000; j++ {
					c.AddExpansion()
					c.AddComparison()
				}
			}()
		}
		wg.Wait()

		got := c.Complete()
		require.Equal(t, int64(8000), got.Expansions)
		require.Equal(t, int64(8000), got.Comparisons)
		require.Equal(t, "NegaMax", got.Algorithm)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, 4, got.Goroutines)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("MinMax", "UniformWeighting", 1, 1)
		c.AddExpansion()
		c.AddComparison()

		c.Start("MinMax", "UniformWeighting", 1, 1)

		got := c.Complete()
		require.Zero(t, got.Expansions)
		require.Zero(t, got.Comparisons)
	})
}
