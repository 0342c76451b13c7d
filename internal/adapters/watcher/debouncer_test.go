package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/adapters/watcher"
)

// recorder collects debouncer batches.
type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) get() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/project/src/main.cpp")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/project/src/main.cpp"}}, rec.get())
	})
}

func TestDebouncer_Add_CoalescesSortedAndDeduplicated(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(watcher.DefaultDebounceWindow, rec.callback)

		d.Add("/project/src/util.cpp")
		d.Add("/project/include/util.hpp")
		d.Add("/project/src/util.cpp")
		d.Add("/project/src/main.cpp")

		time.Sleep(2 * watcher.DefaultDebounceWindow)
		synctest.Wait()

		assert.Equal(t, [][]string{{
			"/project/include/util.hpp",
			"/project/src/main.cpp",
			"/project/src/util.cpp",
		}}, rec.get())
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/project/src/a.cpp")
		time.Sleep(60 * time.Millisecond)
		d.Add("/project/src/b.cpp")
		time.Sleep(60 * time.Millisecond)

		synctest.Wait()
		assert.Empty(t, rec.get(), "the second event restarts the window")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Len(t, rec.get(), 1)
		assert.Equal(t, []string{"/project/src/a.cpp", "/project/src/b.cpp"}, rec.get()[0])
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.callback)

		d.Add("/project/src/a.cpp")
		d.Stop()

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.get())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/project/src/a.cpp")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/src/b.cpp")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
	})
}
