package app

import (
	"log/slog"
	"time"

	"github.com/tobilastik/iphone-stopwatch-clone/config"
	"github.com/tobilastik/iphone-stopwatch-clone/domain/clock"
	"github.com/tobilastik/iphone-stopwatch-clone/ui/model"
	"github.com/tobilastik/iphone-stopwatch-clone/ui/presenter"
	"github.com/tobilastik/iphone-stopwatch-clone/ui/view"
)

// Container assembles the model, clock, presenter and the root view.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	Clock     clock.Source
	Stopwatch *model.StopwatchModel
	Loop      *presenter.Loop
	RootView  *view.RootView
	Presenter *presenter.StopwatchPresenter
}

// BuildContainer constructs all components. No widgets are created; call
// RootView.Build on the Tk thread before rendering.
func BuildContainer(cfg *config.Config, logger *slog.Logger, clk clock.Source, sched clock.Scheduler) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, Logger: logger, Clock: clk}
	c.Stopwatch = model.NewStopwatchModel()
	c.Loop = presenter.NewLoop(sched, time.Duration(cfg.TickMillis)*time.Millisecond)
	c.RootView = view.NewRootView(logger)
	c.Presenter = presenter.NewStopwatchPresenter(c.Stopwatch, clk, c.Loop, c.RootView, logger)
	return c
}
