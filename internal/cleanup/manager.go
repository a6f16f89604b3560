// Package cleanup deletes orphaned media in the background so record
// deletion never waits on blob storage.
package cleanup

import (
	"context"
	"sync"
	"time"

	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/metrics"
)

// Deleter is satisfied by media.Store.
type Deleter interface {
	Delete(ctx context.Context, fileURL string) error
}

type task struct {
	url     string
	attempt int
}

type Manager struct {
	deleter    Deleter
	tasks      chan task
	workers    int
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration
	logger     *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewManager(deleter Deleter, cfg *config.Config, logger *logging.Logger) *Manager {
	workers := cfg.Cleanup.Workers
	if workers <= 0 {
		workers = 1
	}
	buffer := cfg.Cleanup.BufferSize
	if buffer <= 0 {
		buffer = 100
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		deleter:    deleter,
		tasks:      make(chan task, buffer),
		workers:    workers,
		maxRetries: cfg.Cleanup.MaxRetries,
		retryDelay: cfg.Cleanup.RetryDelay,
		timeout:    30 * time.Second,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.process()
	}
	return m
}

// Discard queues media URLs for deletion. Empty URLs are skipped and a full
// queue drops the URL with a warning.
func (m *Manager) Discard(urls ...string) {
	for _, u := range urls {
		if u == "" {
			continue
		}
		m.enqueue(task{url: u})
	}
}

func (m *Manager) enqueue(t task) {
	if m.ctx.Err() != nil {
		m.orphan(t)
		return
	}

	select {
	case m.tasks <- t:
		metrics.MediaCleanupQueueDepth.Set(float64(len(m.tasks)))
	case <-m.ctx.Done():
		m.orphan(t)
	default:
		metrics.MediaCleanupTotal.WithLabelValues("dropped").Inc()
		m.logger.Warnf("cleanup queue full, dropping media %s", t.url)
	}
}

func (m *Manager) process() {
	defer m.wg.Done()

	for {
		select {
		case t := <-m.tasks:
			metrics.MediaCleanupQueueDepth.Set(float64(len(m.tasks)))
			m.handle(t)
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Manager) handle(t task) {
	// select picks at random once Shutdown has cancelled
	if m.ctx.Err() != nil {
		m.orphan(t)
		return
	}

	ctx, cancel := context.WithTimeout(m.ctx, m.timeout)
	err := m.deleter.Delete(ctx, t.url)
	cancel()

	if err == nil {
		metrics.MediaCleanupTotal.WithLabelValues("deleted").Inc()
		return
	}

	if t.attempt < m.maxRetries {
		metrics.MediaCleanupTotal.WithLabelValues("retried").Inc()
		m.logger.WithField("attempt", t.attempt+1).WarnWithErr("media cleanup failed, retrying "+t.url, err)
		next := task{url: t.url, attempt: t.attempt + 1}
		time.AfterFunc(m.retryDelay, func() { m.enqueue(next) })
		return
	}

	metrics.MediaCleanupTotal.WithLabelValues("failed").Inc()
	m.logger.WarnWithErr("media cleanup gave up on "+t.url, err)
}

func (m *Manager) orphan(t task) {
	metrics.MediaCleanupTotal.WithLabelValues("dropped").Inc()
	m.logger.Warnf("cleanup stopped, leaving orphaned media %s", t.url)
}

// Shutdown stops the workers without deleting what is still queued. Every
// queued URL is logged as orphaned; pending retries are logged when their
// timer fires.
func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()

drain:
	for {
		select {
		case t := <-m.tasks:
			m.orphan(t)
		default:
			break drain
		}
	}
	metrics.MediaCleanupQueueDepth.Set(0)
	m.logger.Info("cleanup manager shutdown complete")
}
