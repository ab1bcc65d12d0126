package app

import (
	"log/slog"
	"time"

	"github.com/tobilastik/iphone-stopwatch-clone/domain/clock"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// tkScheduler runs repeating callbacks on Tk's event loop thread. Each run
// re-arms a single TclAfter, so a slow callback delays the next one instead
// of queueing them.
type tkScheduler struct {
	logger *slog.Logger
	after  func(time.Duration, func()) string
	cancel func(id string)
}

type tkHandle struct {
	afterID   string
	cancelled bool
	cancel    func(id string)
}

func newTkScheduler(logger *slog.Logger) *tkScheduler {
	return &tkScheduler{
		logger: logger,
		after:  func(d time.Duration, fn func()) string { return TclAfter(d, fn) },
		cancel: TclAfterCancel,
	}
}

func (s *tkScheduler) Every(interval time.Duration, fn func()) clock.Handle {
	h := &tkHandle{cancel: s.cancel}
	var arm func()
	arm = func() {
		h.afterID = s.after(interval, func() {
			if h.cancelled {
				return
			}
			s.run(fn)
			if !h.cancelled {
				arm()
			}
		})
	}
	arm()
	return h
}

func (s *tkScheduler) run(fn func()) {
	defer recoverLog(s.logger, "scheduled callback panic")
	fn()
}

// Cancel removes the pending TclAfter. Idempotent.
func (h *tkHandle) Cancel() {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	if h.afterID != "" && h.cancel != nil {
		h.cancel(h.afterID)
	}
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r)
		}
	}
}

var _ clock.Scheduler = (*tkScheduler)(nil)
