package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/api"
	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/library"
)

// boundOperations lists the operations the dispatch layer binds, with the
// signatures clients call them by.
var boundOperations = []string{
	"list_papers(offset: int = 0, limit: int = 10)",
	"search_papers(query: string)",
	"read_paper(title: string)",
	"refresh_backup()",
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	logger := slog.Default()

	lib := library.New(cfg, logger)
	router := api.NewRouter(api.NewHandler(lib, Version))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	fmt.Println("EndNote library reader is starting...")
	fmt.Println("Bound operations:")
	for _, op := range boundOperations {
		fmt.Printf("- %s\n", op)
	}

	go func() {
		logger.Info("server starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}
