// internal/app/bootstrap/server.go
package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gatherhub/gatherhub/internal/app/system/dbguard"
	"github.com/gatherhub/gatherhub/internal/app/system/httpjson"
	"github.com/gatherhub/gatherhub/internal/app/system/indexes"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
)

// Run loads configuration, wires the service together, and serves
// until SIGINT/SIGTERM.
//
// A store that is down at boot does not abort startup: the guard is
// left disconnected, the process serves 503s on data routes, and the
// per-request probe reconnects once the store returns.
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	var logger *zap.Logger
	if cfg.Env == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	httpjson.SetDebug(cfg.Debug)
	timeouts.Configure(timeouts.Config{
		Ping:   cfg.PingTimeout,
		Short:  cfg.ShortTimeout,
		Medium: cfg.MediumTimeout,
		Long:   cfg.LongTimeout,
	})

	guard, err := dbguard.New(cfg.MongoURI, logger)
	if err != nil {
		return err
	}

	bootCtx, bootCancel := context.WithTimeout(context.Background(), timeouts.Long())
	if err := guard.Connect(bootCtx, cfg.ConnectAttempts, cfg.ConnectBackoff); err != nil {
		logger.Warn("store unreachable at boot; serving degraded until it returns", zap.Error(err))
	} else {
		if err := indexes.EnsureAll(bootCtx, guard.Database(cfg.MongoDatabase)); err != nil {
			logger.Warn("index setup failed", zap.Error(err))
		}
	}
	bootCancel()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      BuildHandler(cfg, guard, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shut down", zap.Error(err))
	}
	if err := guard.Disconnect(ctx); err != nil {
		logger.Error("store disconnect failed", zap.Error(err))
	}

	logger.Info("server exited")
	return nil
}
