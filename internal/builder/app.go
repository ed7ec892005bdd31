package builder

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/futig/blog-generator/internal/tui"
	"github.com/futig/blog-generator/internal/usecase/blog"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// App represents the web application with all its components
type App struct {
	server  *http.Server
	usecase *blog.Usecase
	logger  *zap.Logger
}

// Run starts the application and blocks until a shutdown signal or a
// server error
func (a *App) Run() error {
	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		a.logger.Error("Server error", zap.Error(err))
		return err
	case sig := <-sigChan:
		a.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	return a.shutdown()
}

// shutdown stops accepting requests, then gives in-flight generation calls
// the rest of the deadline to resolve
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("Shutting down server gracefully")

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
		return err
	}

	done := make(chan struct{})
	go func() {
		a.usecase.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("In-flight generations resolved")
	case <-ctx.Done():
		a.logger.Warn("Shutdown deadline reached with generations still in flight")
	}

	a.logger.Info("Application stopped gracefully")
	_ = a.logger.Sync()
	return nil
}

// TUIApp runs the terminal UI
type TUIApp struct {
	model  tui.Model
	logger *zap.Logger
}

// Run blocks until the user quits
func (a *TUIApp) Run() error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Info("Starting terminal UI")
	p := tea.NewProgram(a.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		a.logger.Error("Terminal UI error", zap.Error(err))
		return err
	}

	a.logger.Info("Terminal UI stopped")
	return nil
}
