package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/analytics-dashboard/internal/domain"
	"go.uber.org/zap"
)

// Ошибки постановки задач в очередь
var (
	ErrQueueFull   = errors.New("queue is full")
	ErrPoolStopped = errors.New("pool is stopped")
)

// Job представляет асинхронную операцию над хранилищем
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// MetricsRefresher обновляет метрики дашборда
type MetricsRefresher interface {
	RefreshMetrics(ctx context.Context) (domain.Metrics, error)
}

// Pool представляет пул воркеров для асинхронных операций
type Pool struct {
	workers         int
	queue           chan Job
	refresher       MetricsRefresher
	refreshInterval time.Duration
	logger          *zap.Logger
	wg              sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewPool создает новый worker pool. refreshInterval <= 0 отключает
// периодическое обновление метрик.
func NewPool(
	workers int,
	queueSize int,
	refresher MetricsRefresher,
	refreshInterval time.Duration,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:         workers,
		queue:           make(chan Job, queueSize),
		refresher:       refresher,
		refreshInterval: refreshInterval,
		logger:          logger,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	if p.refresher != nil && p.refreshInterval > 0 {
		p.wg.Add(1)
		go p.ticker(ctx)
	}
}

// Stop останавливает worker pool и дожидается завершения задач из очереди
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// Submit ставит задачу в очередь без блокировки
func (p *Pool) Submit(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.queue <- job:
		return nil
	default:
		p.logger.Warn("queue is full, skipping job", zap.String("job", job.Name))
		return ErrQueueFull
	}
}

// worker выполняет задачи из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case job, ok := <-p.queue:
			if !ok {
				return
			}
			p.process(ctx, job)
		}
	}
}

// ticker периодически ставит в очередь обновление метрик
func (p *Pool) ticker(ctx context.Context) {
	defer p.wg.Done()

	t := time.NewTicker(p.refreshInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("metrics ticker stopping")
			return
		case <-t.C:
			p.enqueueRefresh()
		}
	}
}

func (p *Pool) enqueueRefresh() {
	err := p.Submit(Job{
		Name: "refresh metrics",
		Run: func(ctx context.Context) error {
			_, err := p.refresher.RefreshMetrics(ctx)
			return err
		},
	})
	if err != nil && !errors.Is(err, ErrQueueFull) {
		p.logger.Debug("metrics refresh not scheduled", zap.Error(err))
	}
}

// process выполняет одну задачу
func (p *Pool) process(ctx context.Context, job Job) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("job panicked",
				zap.String("job", job.Name),
				zap.Any("panic", rec),
			)
		}
	}()

	p.logger.Debug("processing job", zap.String("job", job.Name))

	if err := job.Run(ctx); err != nil {
		p.logger.Warn("job failed",
			zap.String("job", job.Name),
			zap.Error(err),
		)
		return
	}

	p.logger.Debug("job completed", zap.String("job", job.Name))
}
