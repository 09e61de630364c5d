package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yungbote/orbital-nexus-backend/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init app: %v\n", err)
		os.Exit(1)
	}
	application.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- application.Run() }()

	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			application.Log.Error("Server failed", "error", err)
			exitCode = 1
		}
	case <-ctx.Done():
		application.Log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), application.Cfg.ShutdownTimeout)
	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Log.Error("Graceful shutdown failed", "error", err)
		exitCode = 1
	}
	cancel()
	os.Exit(exitCode)
}
