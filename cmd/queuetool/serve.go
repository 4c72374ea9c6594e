package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveFlags struct {
	port int
	dir  string
}

func init() {
	sf := new(serveFlags)
	serveCmd := &cobra.Command{
		Use:   "serve [-p port] [-d dir]",
		Short: "Serve static files from a directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(sf)
		},
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
	}
	fs := serveCmd.Flags()
	fs.IntVarP(&sf.port, "port", "p", 9999, "listen port")
	fs.StringVarP(&sf.dir, "dir", "d", ".", "directory to serve")
	rootCmd.AddCommand(serveCmd)
}

func runServe(sf *serveFlags) error {
	lg, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger, %w", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", sf.port),
		Handler: accessLog(lg, http.FileServer(http.Dir(sf.dir))),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	lg.Info("listening", zap.Int("port", sf.port), zap.String("dir", sf.dir))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server exited, %w", err)
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func accessLog(lg *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		lg.Info("access",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}
