package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"workdesk/pkg/logger"
)

// Константы для сообщений журнала автосохранения.
const (
	logAutosaveStarted = "autosave loop started"
	logAutosaveStopped = "autosave loop stopped"
	logAutosaveSkipped = "autosave tick skipped, save in flight"
	logAutosaveReset   = "autosave interval changed"
	logAutosaveFailed  = "autosave failed"
	logAutosaveDone    = "autosave completed"
)

// SaveFunc выполняет одно сохранение.
type SaveFunc func(ctx context.Context) error

// Autosaver периодически вызывает сохранение. Тик, пришедший во время
// незавершенного сохранения, пропускается, очередь не накапливается.
type Autosaver struct {
	interval time.Duration
	save     SaveFunc

	inFlight atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
	resetCh  chan time.Duration
}

// NewAutosaver создает цикл автосохранения с заданным интервалом.
func NewAutosaver(interval time.Duration, save SaveFunc) *Autosaver {
	return &Autosaver{
		interval: interval,
		save:     save,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		resetCh:  make(chan time.Duration, 1),
	}
}

// Run крутит цикл автосохранения до Stop или отмены контекста.
func (a *Autosaver) Run(ctx context.Context) {
	log := logger.Log(ctx).With(zap.String("method", "Autosaver.Run"))
	log.Info(ctx, logAutosaveStarted, zap.Duration("interval", a.interval))

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	defer close(a.doneCh)

	for {
		select {
		case <-ctx.Done():
			log.Info(ctx, logAutosaveStopped)
			return
		case <-a.stopCh:
			log.Info(ctx, logAutosaveStopped)
			return
		case interval := <-a.resetCh:
			a.interval = interval
			ticker.Reset(interval)
			log.Info(ctx, logAutosaveReset, zap.Duration("interval", interval))
		case <-ticker.C:
			a.Trigger(ctx)
		}
	}
}

// Reset меняет интервал автосохранения на лету. Нулевой или
// отрицательный интервал игнорируется.
func (a *Autosaver) Reset(interval time.Duration) {
	if interval <= 0 {
		return
	}

	select {
	case a.resetCh <- interval:
	default:
	}
}

// Trigger запускает одно сохранение, если предыдущее уже завершилось.
// Возвращает true, когда сохранение было выполнено.
func (a *Autosaver) Trigger(ctx context.Context) bool {
	log := logger.Log(ctx).With(zap.String("method", "Autosaver.Trigger"))

	if !a.inFlight.CompareAndSwap(false, true) {
		log.Debug(ctx, logAutosaveSkipped)
		return false
	}
	defer a.inFlight.Store(false)

	if err := a.save(ctx); err != nil {
		log.Error(ctx, logAutosaveFailed, zap.Error(err))
		return true
	}

	log.Debug(ctx, logAutosaveDone)

	return true
}

// Stop останавливает цикл и дожидается его завершения.
func (a *Autosaver) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
	<-a.doneCh
}
