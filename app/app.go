package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/tobilastik/iphone-stopwatch-clone/config"
	"github.com/tobilastik/iphone-stopwatch-clone/debug"
	"github.com/tobilastik/iphone-stopwatch-clone/domain/clock"
	"github.com/tobilastik/iphone-stopwatch-clone/ui/theme"
)

type app struct {
	config    *config.Config
	logger    *slog.Logger
	width     int
	height    int
	container *AppContainer
	stopDebug []func()
	closed    bool
}

func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{config: cfg, logger: logger, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the screen and blocks in the Tk event loop until the window
// is closed.
func (a *app) Start() {
	theme.SetDark(a.config != nil && a.config.DarkMode)

	a.container = BuildContainer(a.config, a.logger, clock.System(), newTkScheduler(a.logger))
	p := a.container.Presenter
	a.container.RootView.Build(p.PressLeft, p.PressRight)
	p.Render()

	if a.config != nil && a.config.Debug {
		a.stopDebug = append(a.stopDebug,
			debug.StartGoroutineLogger(5*time.Second, a.logger),
			debug.StartMemLogger(5*time.Second, a.logger),
		)
	}
	if a.logger != nil {
		a.logger.Info("stopwatch started", "tick", a.container.Loop.Interval())
	}

	App.Wait()
}

// exitHandler tears the screen down. The tick loop is cancelled before the
// window is destroyed so no callback can reach a destroyed view.
func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	if a.container != nil {
		a.container.Presenter.Close()
	}
	for _, stop := range a.stopDebug {
		stop()
	}
	Destroy(App)
}
