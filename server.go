package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/config"
	"bitbucket.org/wilckenslagers/brewery_backend/handlers"
	"bitbucket.org/wilckenslagers/brewery_backend/reports"
	"bitbucket.org/wilckenslagers/brewery_backend/store"
	"bitbucket.org/wilckenslagers/brewery_backend/workflow"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownGrace = 10 * time.Second

func main() {
	cfg := config.Load()
	logger := config.GetLogger()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	st, err := store.Open(cfg, logger)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"field": "database",
			"path":  cfg.DatabasePath,
		}).Fatal(err.Error())
	}
	defer st.Close()

	vessels := workflow.NewVesselManager(st, logger)
	billing := workflow.NewBillingLedger(st, logger)
	facade := reports.NewFacade(st)
	h := handlers.New(st, vessels, billing, facade, logger, cfg.ExportDir)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if allowed := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); allowed != "" {
		corsConfig.AllowOrigins = splitAndTrim(allowed)
	} else {
		// Single-user local deployment; developer convenience.
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	r.Use(cors.New(corsConfig))

	h.Register(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		// ListenAndServe returns http.ErrServerClosed on graceful shutdown.
		serverErrCh <- srv.ListenAndServe()
	}()

	logger.WithFields(logrus.Fields{
		"port": cfg.Port,
		"db":   cfg.DatabasePath,
	}).Info("brewery backend started")

	select {
	case <-sigCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithFields(logrus.Fields{"field": "shutdown"}).Error(err.Error())
		}
	case err := <-serverErrCh:
		if err != nil && err != http.ErrServerClosed {
			logger.WithFields(logrus.Fields{"field": "server"}).Fatal(err.Error())
		}
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
