package main

import (
	"context"
	"designers/internal/api"
	"designers/internal/config"
	"designers/internal/database"
	"designers/internal/llm"
	"designers/internal/model"
	"designers/internal/service"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig()
			if err != nil {
				return fmt.Errorf("parse config: %w", err)
			}
			setupLogging(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
}

func runServer(ctx context.Context, cfg config.Config) error {
	repo, provider := model.InitRepository(&cfg)
	if pooled, ok := provider.(*database.PooledProvider); ok {
		defer pooled.Close()
	}

	// 缺少密钥时不退出，只是 /generate_text 返回 503
	generator, err := llm.NewTextGenerator(cfg)
	if err != nil {
		return fmt.Errorf("init llm provider: %w", err)
	}
	if generator == nil {
		logrus.WithField("env", cfg.ProviderKeyName()).Warn("llm provider key not set, text generation disabled")
	}
	generation := service.NewGenerationService(generator, cfg.LLMModel, service.NewInteractionLogger(repo))

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.NewHTTPHandler(cfg, repo, generation))

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  180 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"host":       serverHost,
			"db_type":    cfg.DBType,
			"llm_driver": cfg.Driver(),
		}).Info("服务器启动")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("服务器启动失败")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logrus.Info("shutting down http server")
	return httpServer.Shutdown(shutdownCtx)
}
