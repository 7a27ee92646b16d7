package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/magber/frc-fetcher/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCompute(t *testing.T) {
	t.Run("hit returns the identical value without recomputing", func(t *testing.T) {
		store := New(metrics.NewMock())
		calls := 0

		first, err := GetOrCompute(store, "teams:2024txhou", func() ([]int, error) {
			calls++
			return []int{100, 254}, nil
		})
		require.NoError(t, err)

		second, err := GetOrCompute(store, "teams:2024txhou", func() ([]int, error) {
			calls++
			return nil, errors.New("should not be called")
		})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls, "Compute should run once per key")
		assert.Equal(t, 1, store.Len())
	})

	t.Run("failed computations are not cached", func(t *testing.T) {
		store := New(metrics.NewMock())
		calls := 0

		_, err := GetOrCompute(store, "sb:9999:2024", func() (string, error) {
			calls++
			return "", errors.New("provider down")
		})
		require.Error(t, err)
		assert.Equal(t, 0, store.Len())

		value, err := GetOrCompute(store, "sb:9999:2024", func() (string, error) {
			calls++
			return "recovered", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "recovered", value)
		assert.Equal(t, 2, calls, "A failed computation should be retried on the next lookup")
	})

	t.Run("records hits and misses", func(t *testing.T) {
		metr := metrics.NewMock()
		store := New(metr)

		for i := 0; i < 3; i++ {
			_, err := GetOrCompute(store, "events:254:2024", func() ([]string, error) {
				return []string{"2024txhou"}, nil
			})
			require.NoError(t, err)
		}

		assert.Equal(t, 1, metr.CacheMisses())
		assert.Equal(t, 2, metr.CacheHits())
	})

	t.Run("is safe for concurrent use across keys", func(t *testing.T) {
		store := New(metrics.NewMock())

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				key := fmt.Sprintf("awards:%d:2024txhou", n%10)
				value, err := GetOrCompute(store, key, func() (int, error) {
					return n % 10, nil
				})
				assert.NoError(t, err)
				assert.Equal(t, n%10, value)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 10, store.Len())
	})
}
