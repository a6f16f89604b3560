package cleanup

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/logging"
)

type fakeDeleter struct {
	mu       sync.Mutex
	calls    map[string]int
	failures map[string]int // remaining failures per url
	block    chan struct{}
}

func newFakeDeleter() *fakeDeleter {
	return &fakeDeleter{calls: map[string]int{}, failures: map[string]int{}}
}

func (f *fakeDeleter) Delete(ctx context.Context, url string) error {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	if f.failures[url] > 0 {
		f.failures[url]--
		return errors.New("storage unavailable")
	}
	return nil
}

func (f *fakeDeleter) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

func testConfig(workers, buffer, retries int) *config.Config {
	return &config.Config{Cleanup: config.CleanupConfig{
		Workers:    workers,
		BufferSize: buffer,
		MaxRetries: retries,
		RetryDelay: 10 * time.Millisecond,
	}}
}

func TestManager_DeletesQueuedMedia(t *testing.T) {
	deleter := newFakeDeleter()
	m := NewManager(deleter, testConfig(2, 10, 0), logging.NewNopLogger())
	defer m.Shutdown()

	m.Discard("http://media/a", "", "http://media/b")

	require.Eventually(t, func() bool {
		return deleter.count("http://media/a") == 1 && deleter.count("http://media/b") == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, deleter.count(""))
}

func TestManager_RetriesThenSucceeds(t *testing.T) {
	deleter := newFakeDeleter()
	deleter.failures["http://media/flaky"] = 2
	m := NewManager(deleter, testConfig(1, 10, 3), logging.NewNopLogger())
	defer m.Shutdown()

	m.Discard("http://media/flaky")

	require.Eventually(t, func() bool {
		return deleter.count("http://media/flaky") == 3
	}, time.Second, 5*time.Millisecond)
}

func TestManager_GivesUpAfterMaxRetries(t *testing.T) {
	deleter := newFakeDeleter()
	deleter.failures["http://media/gone"] = 100
	m := NewManager(deleter, testConfig(1, 10, 2), logging.NewNopLogger())
	defer m.Shutdown()

	m.Discard("http://media/gone")

	require.Eventually(t, func() bool {
		return deleter.count("http://media/gone") == 3
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 3, deleter.count("http://media/gone"))
}

func TestManager_DropsWhenFull(t *testing.T) {
	deleter := newFakeDeleter()
	deleter.block = make(chan struct{})
	m := NewManager(deleter, testConfig(1, 1, 0), logging.NewNopLogger())

	// first is picked up by the blocked worker, second fills the buffer
	m.Discard("http://media/1")
	require.Eventually(t, func() bool { return len(m.tasks) == 0 }, time.Second, time.Millisecond)
	m.Discard("http://media/2")
	assert.NotPanics(t, func() { m.Discard("http://media/3") })
	assert.Len(t, m.tasks, 1)

	close(deleter.block)
	require.Eventually(t, func() bool {
		return deleter.count("http://media/1") == 1 && deleter.count("http://media/2") == 1
	}, time.Second, 5*time.Millisecond)
	m.Shutdown()
	assert.Equal(t, 0, deleter.count("http://media/3"))
}

func TestManager_ShutdownLogsQueuedMedia(t *testing.T) {
	deleter := newFakeDeleter()
	deleter.block = make(chan struct{})
	var out bytes.Buffer
	m := NewManager(deleter, testConfig(1, 2, 0), logging.NewWithWriter(&out, "debug"))

	m.Discard("http://media/busy")
	require.Eventually(t, func() bool { return len(m.tasks) == 0 }, time.Second, time.Millisecond)
	m.Discard("http://media/queued-1", "http://media/queued-2")
	require.Len(t, m.tasks, 2)

	m.Shutdown()

	assert.Empty(t, m.tasks)
	logs := out.String()
	assert.Contains(t, logs, "orphaned media http://media/queued-1")
	assert.Contains(t, logs, "orphaned media http://media/queued-2")
	assert.Equal(t, 0, deleter.count("http://media/queued-1"))
	assert.Equal(t, 0, deleter.count("http://media/queued-2"))
}

func TestManager_DiscardAfterShutdown(t *testing.T) {
	deleter := newFakeDeleter()
	m := NewManager(deleter, testConfig(1, 10, 0), logging.NewNopLogger())
	m.Shutdown()

	assert.NotPanics(t, func() { m.Discard("http://media/late") })
	assert.Equal(t, 0, deleter.count("http://media/late"))
}
