package service

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/avc-dev/shortlinks/internal/metrics"
	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// ClickHandler обрабатывает один переход по короткому коду
type ClickHandler func(ctx context.Context, code model.Code) error

// ClickProcessor учитывает переходы асинхронно: у каждого воркера своя ограниченная очередь.
// Переходы одного кода всегда попадают к одному воркеру и обрабатываются по порядку.
// Schedule никогда не блокирует: при переполненной очереди переход отбрасывается.
type ClickProcessor struct {
	queues []chan model.Code
	logger *zap.Logger

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewClickProcessor создает процессор с заданным числом воркеров.
// queueSize делится между воркерами поровну, с округлением вверх.
func NewClickProcessor(workers, queueSize int, logger *zap.Logger) *ClickProcessor {
	workers = max(workers, 1)
	perWorker := max((queueSize+workers-1)/workers, 1)

	queues := make([]chan model.Code, workers)
	for i := range queues {
		queues[i] = make(chan model.Code, perWorker)
	}

	return &ClickProcessor{
		queues: queues,
		logger: logger,
	}
}

// Start запускает воркеров. Повторный вызов ничего не делает.
// Отмена ctx не прерывает обработку уже поставленных в очередь переходов.
func (p *ClickProcessor) Start(ctx context.Context, handler ClickHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.stopped {
		return
	}
	p.started = true

	ctx = context.WithoutCancel(ctx)
	for i, queue := range p.queues {
		p.wg.Add(1)
		go func(workerID int, queue <-chan model.Code) {
			defer p.wg.Done()
			for code := range queue {
				if err := handler(ctx, code); err != nil {
					p.logger.Warn("failed to record click",
						zap.Int("worker", workerID),
						zap.String("code", code.String()),
						zap.Error(err),
					)
				}
			}
		}(i, queue)
	}
}

// Schedule ставит переход в очередь без ожидания
func (p *ClickProcessor) Schedule(code model.Code) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return
	}

	select {
	case p.queues[p.shard(code)] <- code:
	default:
		metrics.ClicksDropped.Inc()
		p.logger.Warn("click queue is full, click dropped", zap.String("code", code.String()))
	}
}

// shard номер воркера, отвечающего за код
func (p *ClickProcessor) shard(code model.Code) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(code))
	return int(h.Sum32() % uint32(len(p.queues)))
}

// Stop закрывает очередь и ждёт, пока воркеры обработают оставшиеся переходы
func (p *ClickProcessor) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	for _, queue := range p.queues {
		close(queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
}
