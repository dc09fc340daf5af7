package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homebar/internal/api"
	"homebar/internal/llm"
	"homebar/internal/metrics"
	"homebar/internal/model"
	"homebar/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd 启动 HTTP 服务
type ServeCmd struct{}

func (s *ServeCmd) Run(ctx *Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return err
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return err
	}

	client, err := llm.NewChatClient(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise chat client")
		return err
	}
	if client == nil {
		logrus.Warn("no language model key configured, suggestions use placeholders")
	}
	gateway := llm.NewGateway(client, cfg.LLMTemperature)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m, err = metrics.New(nil)
		if err != nil {
			logrus.WithError(err).Error("failed to initialise metrics")
			return err
		}
	}

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store, gateway, m)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return err
	}

	// 设置Gin模式
	if ctx != nil && ctx.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      httpHandler.NewRouter(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 2 * llm.RequestTimeout,
		IdleTimeout:  120 * time.Second,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"host":        serverHost,
			"auth":        cfg.OwnerAuthEnabled(),
			"llm_enabled": gateway.Enabled(),
			"storage":     cfg.StorageType,
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
	case <-signalCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logrus.Info("server_shutting_down")
	return httpServer.Shutdown(shutdownCtx)
}
