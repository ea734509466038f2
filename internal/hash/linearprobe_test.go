//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		for _, tableSize := range []int{1, 2, 3, 16, 17} {
			for start := 0; start < tableSize; start++ {
				// Prepare
				visit := make([]int, tableSize)

				// Execute
				for i := 0; i < tableSize; i++ {
					probe := ProbeIteration(start, i, tableSize)
					assert.GreaterOrEqualf(t, probe, 0, "probe not negative in iteration #%d", i)
					assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
					visit[probe]++
				}

				// Check
				for i := 0; i < tableSize; i++ {
					assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d (table size %d, start %d)", i, tableSize, start)
				}
			}
		}
	})

	t.Run("wraps to beginning of table", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, 2, ProbeIteration(2, 0, 4), "first probe at start")
		assert.Equal(t, 3, ProbeIteration(2, 1, 4), "second probe next to start")
		assert.Equal(t, 0, ProbeIteration(2, 2, 4), "third probe wraps")
		assert.Equal(t, 1, ProbeIteration(2, 3, 4), "fourth probe after wrap")
	})
}

func TestProbeLength(t *testing.T) {
	t.Run("is the inverse of probe iteration", func(t *testing.T) {
		tableSize := 7
		for start := 0; start < tableSize; start++ {
			for i := 0; i < tableSize; i++ {
				// Execute
				length := ProbeLength(start, ProbeIteration(start, i, tableSize), tableSize)

				// Check
				assert.Equalf(t, i, length, "length for start %d and iteration %d", start, i)
			}
		}
	})
}
