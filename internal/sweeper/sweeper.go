package sweeper

import (
	"context"
	"time"
)

// HoldSweeper интерфейс сервиса зачистки истёкших удержаний
type HoldSweeper interface {
	SweepExpiredHolds(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper фоновая зачистка истёкших удержаний.
// Чисто гигиеническая: доступность и подтверждение корректны и без неё,
// истёкшие холды отфильтровываются на чтении
type Sweeper struct {
	service  HoldSweeper
	interval time.Duration
	logger   Logger
}

// New создает новый экземпляр зачистки
func New(service HoldSweeper, interval time.Duration, logger Logger) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает цикл зачистки до отмены контекста.
// Блокирует вызывающую горутину
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Sweeper: started with interval %s", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweeper: stopped")
			return
		case <-ticker.C:
			if _, err := s.service.SweepExpiredHolds(ctx); err != nil {
				s.logger.Error("Sweeper: sweep failed: %v", err)
			}
		}
	}
}
