package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinJobs: 2}

	n := 1000
	seen := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, c := range seen {
		assert.Equal(t, int32(1), c, "job %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, Sequential())

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_FewJobs(t *testing.T) {
	// A single job runs on the calling goroutine.
	cfg := DefaultConfig()
	cfg.Enabled = true

	var order []int
	For(1, func(i int) {
		order = append(order, i)
	}, cfg)
	assert.Equal(t, []int{0}, order)

	For(0, func(int) { t.Fatal("no jobs expected") }, cfg)
}

func TestForErr(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinJobs: 2}
	errOdd := errors.New("odd")

	var ran atomic.Int32
	idx, err := ForErr(10, func(i int) error {
		ran.Add(1)
		if i%2 == 1 {
			return errOdd
		}
		return nil
	}, cfg)

	assert.Equal(t, int32(10), ran.Load(), "every job runs")
	assert.Equal(t, 1, idx)
	assert.ErrorIs(t, err, errOdd)

	idx, err = ForErr(4, func(int) error { return nil }, cfg)
	assert.NoError(t, err)
	assert.Equal(t, -1, idx)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 64

	work := func(i int) {
		x := float64(i)
		for range 10_000 {
			x = x*0.999 + 1
		}
		_ = x
	}

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			For(n, work, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			For(n, work, Sequential())
		}
	})
}
