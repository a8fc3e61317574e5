package app

import (
	"runtime"

	"sanin-savara/internal/analysis"
	"sanin-savara/internal/controllers"
	"sanin-savara/internal/logger"
	"sanin-savara/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName             = "Sanin-Savara Tooth Size Analysis"
	AppID               = "com.orthodontics.saninsavara"
	AppVersion          = "1.0.0"
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 800
	MinWindowWidth      = 600
	MinWindowHeight     = 480
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	logger     logger.Logger
	lifecycle  *Lifecycle
}

// NewApplication builds the window, view and controller and wires them
// together.
func NewApplication(cfg Config) (*Application, error) {
	log := logger.New(cfg.LogLevel, cfg.JSONLogs)

	return newApplication(fyneapp.NewWithID(AppID), cfg, log), nil
}

func newApplication(fyneApp fyne.App, cfg Config, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"go_version":    runtime.Version(),
	})

	view := views.NewMainView(window)
	controller := controllers.NewMainController(analysis.NewArchAnalyzer(), log)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		logger:     log,
		lifecycle:  NewLifecycle(log, controller),
	}

	application.setupWindowEvents()

	log.Info("Application", "initialization complete", nil)
	return application
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	a.lifecycle.ListenForSignals(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// Controller exposes the controller driving the main view.
func (a *Application) Controller() *controllers.MainController {
	return a.controller
}
