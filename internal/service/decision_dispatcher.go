package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fraud-engine/internal/kafka"
	"fraud-engine/internal/models"
)

type DecisionRecorder interface {
	Insert(ctx context.Context, record *models.DecisionRecord) error
}

// DecisionDispatcher runs the post-decision side effects (audit row, kafka
// event) on a worker pool so they never delay or fail the scoring response.
type DecisionDispatcher struct {
	recorder DecisionRecorder
	producer kafka.Producer
	timeout  time.Duration
	log      *slog.Logger

	queue    chan models.DecisionEvent
	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once

	// mu orders Submit against Shutdown: once stopped is set under the write
	// lock, no event can enter the queue behind the draining workers.
	mu      sync.RWMutex
	stopped bool
}

// NewDecisionDispatcher starts workers goroutines. recorder may be nil when
// auditing is disabled.
func NewDecisionDispatcher(
	recorder DecisionRecorder,
	producer kafka.Producer,
	workers int,
	queueSize int,
	log *slog.Logger,
) *DecisionDispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &DecisionDispatcher{
		recorder: recorder,
		producer: producer,
		timeout:  5 * time.Second,
		log:      log,
		queue:    make(chan models.DecisionEvent, queueSize),
		stopCh:   make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

// Submit queues an event without blocking; it is dropped when the queue is
// full or the dispatcher is shutting down.
func (d *DecisionDispatcher) Submit(event models.DecisionEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.log.Warn("dispatcher stopped, decision event dropped",
			slog.String("transaction_id", event.TransactionID.String()))
		return
	}

	select {
	case d.queue <- event:
	default:
		d.log.Error("очередь событий переполнена, событие отброшено",
			slog.String("transaction_id", event.TransactionID.String()),
			slog.String("status", string(event.Status)))
	}
}

func (d *DecisionDispatcher) worker(id int) {
	defer d.wg.Done()
	d.log.Debug("decision worker started", slog.Int("worker_id", id))

	for {
		select {
		case event := <-d.queue:
			d.handle(id, event)

		case <-d.stopCh:
			// досылаем то, что уже лежит в очереди
			for {
				select {
				case event := <-d.queue:
					d.handle(id, event)
				default:
					d.log.Debug("decision worker stopping", slog.Int("worker_id", id))
					return
				}
			}
		}
	}
}

func (d *DecisionDispatcher) handle(workerID int, event models.DecisionEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if d.recorder != nil {
		if err := d.recorder.Insert(ctx, recordFromEvent(event)); err != nil {
			d.log.Error("audit insert failed",
				slog.Int("worker_id", workerID),
				slog.String("transaction_id", event.TransactionID.String()),
				slog.String("error", err.Error()))
		}
	}

	if !event.Notable() {
		return
	}

	if err := d.producer.PublishDecision(ctx, event); err != nil {
		d.log.Error("kafka send failed",
			slog.Int("worker_id", workerID),
			slog.String("transaction_id", event.TransactionID.String()),
			slog.String("error", err.Error()))
		return
	}
	d.log.Debug("decision event sent to kafka",
		slog.Int("worker_id", workerID),
		slog.String("transaction_id", event.TransactionID.String()))
}

func recordFromEvent(e models.DecisionEvent) *models.DecisionRecord {
	return &models.DecisionRecord{
		ID:               e.TransactionID,
		UserID:           e.UserID,
		Amount:           e.Amount,
		Merchant:         e.Merchant,
		Location:         e.Location,
		DeviceID:         e.DeviceID,
		Status:           e.Status,
		RiskScore:        e.RiskScore,
		RulesTriggered:   e.RulesTriggered,
		ProcessingTimeMs: e.ProcessingTimeMs,
		TransactionTime:  e.Timestamp,
	}
}

func (d *DecisionDispatcher) Shutdown(ctx context.Context) error {
	d.log.Info("shutting down decision dispatcher")

	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		d.mu.Unlock()
		close(d.stopCh)
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.log.Info("all decision workers stopped")
		return nil
	case <-ctx.Done():
		d.log.Warn("shutdown timeout exceeded")
		return ctx.Err()
	}
}
