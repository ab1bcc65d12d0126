// Package debug holds periodic runtime loggers started when config.Debug is
// set. They help tell a leaking tick loop apart from ordinary heap growth.
package debug

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"sync"
	"time"
)

// StartGoroutineLogger logs goroutine count and stack memory every interval
// until the returned stop function is called.
func StartGoroutineLogger(interval time.Duration, logger *slog.Logger) (stop func()) {
	if interval <= 0 {
		interval = time.Second
	}
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	return every(interval, func() {
		metrics.Read(samples)
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		logger.Info("goroutine-stacks",
			slog.Uint64("goroutines", samples[0].Value.Uint64()),
			slog.Uint64("stack_inuse", ms.StackInuse),
			slog.Uint64("stack_sys", ms.StackSys),
		)
	})
}

// every runs fn on its own goroutine every interval. The returned function
// stops it and may be called more than once.
func every(interval time.Duration, fn func()) func() {
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
