package engine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
)

const defaultTickInterval = 16 * time.Millisecond

// Ticker Компонент, который двигается по тикам цикла
type Ticker interface {
	Tick(dt time.Duration)
}

// TickerFunc Функция как Ticker
type TickerFunc func(dt time.Duration)

func (f TickerFunc) Tick(dt time.Duration) { f(dt) }

// Loop Единственная горутина, которая владеет состоянием движка.
// Тикает с периодом interval и между тиками выполняет команды из Call.
type Loop struct {
	interval time.Duration
	tickers  []Ticker
	cmds     chan func()
	stopped  chan struct{}
	onStop   []func()
	log      *zap.Logger
}

// NewLoop Создать цикл. Тикеры вызываются в порядке передачи.
func NewLoop(interval time.Duration, logger *zap.Logger, tickers ...Ticker) *Loop {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		interval: interval,
		tickers:  tickers,
		cmds:     make(chan func()),
		stopped:  make(chan struct{}),
		log:      logger,
	}
}

// OnStop Регистрирует действие при остановке цикла. Вызывать до Run.
func (l *Loop) OnStop(fn func()) {
	l.onStop = append(l.onStop, fn)
}

// Run Крутит цикл до отмены ctx. Незавершенные спины после остановки
// больше никогда не разрешатся.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer func() {
		for _, fn := range l.onStop {
			fn()
		}
		close(l.stopped)
	}()

	l.log.Info("engine loop started", zap.Duration("interval", l.interval))
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			l.log.Info("engine loop stopped")
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			l.tick(dt)
		case fn := <-l.cmds:
			l.exec(fn)
		}
	}
}

func (l *Loop) tick(dt time.Duration) {
	defer l.recover("tick")
	for _, t := range l.tickers {
		t.Tick(dt)
	}
}

func (l *Loop) exec(fn func()) {
	defer l.recover("command")
	fn()
}

func (l *Loop) recover(where string) {
	if e := recover(); e != nil {
		l.log.Error("engine loop panic",
			zap.String("where", where),
			zap.Any("panic", e),
			zap.ByteString("stack", debug.Stack()),
		)
	}
}

// Call Выполняет fn в горутине цикла и ждет завершения
func (l *Loop) Call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	wrapped := func() {
		defer close(done)
		fn()
	}
	select {
	case l.cmds <- wrapped:
	case <-l.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return fmt.Errorf("submit command: %w", ctx.Err())
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait command: %w", ctx.Err())
	}
}

// Stopped Канал закрывается после остановки цикла
func (l *Loop) Stopped() <-chan struct{} {
	return l.stopped
}
