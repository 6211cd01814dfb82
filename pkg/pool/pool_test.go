package pool

import(
	"sync/atomic"
	"testing"
)

func TestRun(t *testing.T) {
	defer func(w int) { Workers = w }(Workers)

	for _, workers := range []int{1, 3, 20} {
		Workers = workers

		seen := make([]int32, 1000)
		var calls int64
		Run(len(seen), func(i int) {
			atomic.AddInt32(&seen[i], 1)
			atomic.AddInt64(&calls, 1)
		})

		if calls != int64(len(seen)) {
			t.Errorf("workers=%d: %d calls, want %d", workers, calls, len(seen))
		}
		for i, n := range seen {
			if n != 1 {
				t.Errorf("workers=%d: index %d run %d times", workers, i, n)
			}
		}
	}

	Run(0, func(int) { t.Errorf("called with n=0") })
}
