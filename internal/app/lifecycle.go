package app

import (
	"sync"

	"sanin-savara/internal/controllers"
	"sanin-savara/internal/logger"
	"sanin-savara/internal/shutdown"
)

// Lifecycle tears the application down exactly once, whether the window
// was closed or a signal arrived.
type Lifecycle struct {
	shutdown *shutdown.Manager
	logger   logger.Logger
	once     sync.Once
}

func NewLifecycle(log logger.Logger, controller *controllers.MainController) *Lifecycle {
	manager := shutdown.NewManager(log)
	manager.Register(controller)

	return &Lifecycle{
		shutdown: manager,
		logger:   log,
	}
}

// Register adds a component to be stopped before those registered earlier.
func (l *Lifecycle) Register(component shutdown.Shutdownable) {
	l.shutdown.Register(component)
}

// ListenForSignals stops the application on SIGINT or SIGTERM and then
// runs quit.
func (l *Lifecycle) ListenForSignals(quit func()) {
	l.shutdown.Listen(quit)
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
		l.shutdown.Shutdown()
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdown.Done()
}
