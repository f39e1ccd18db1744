package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danhquyen2004/Block-Blast/pkg/api"
	"github.com/danhquyen2004/Block-Blast/pkg/config"
	"github.com/danhquyen2004/Block-Blast/pkg/game"
	"github.com/danhquyen2004/Block-Blast/pkg/log"
	"github.com/danhquyen2004/Block-Blast/pkg/repositories"
	"github.com/danhquyen2004/Block-Blast/pkg/version"
	"github.com/danhquyen2004/Block-Blast/pkg/workers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting block blast server version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := repositories.Open(ctx, cfg.DatabaseURL, cfg.MigrationsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(context.Background())

	saveRequests := make(chan workers.SaveRequest, cfg.SaveQueueSize)
	saveWorker := workers.NewSaveWorker(workers.NewSaveWorkerOptions{
		Repository: repository,
		Requests:   saveRequests,
		Timeout:    cfg.SaveTimeout,
	})
	saveCtx, saveCancel := context.WithCancel(context.Background())
	saveDone := make(chan struct{})
	go func() {
		defer close(saveDone)
		saveWorker.Start(saveCtx)
	}()

	sessionManager := game.NewSessionManager(game.NewSessionManagerOptions{
		Repository:   repository,
		Rules:        cfg.Game.Rules(),
		SaveRequests: saveRequests,
	})

	reaperWorker := workers.NewReaperWorker(workers.NewReaperWorkerOptions{
		Sessions: sessionManager,
		MaxIdle:  cfg.SessionIdleTimeout,
		Interval: cfg.ReapInterval,
	})
	go reaperWorker.Start(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:           cfg.Port,
		SessionManager: sessionManager,
	}
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: cfg.TLSCertFile,
			KeyFile:  cfg.TLSKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go func() {
		server.Start()
		cancel()
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-interrupt:
		log.Info("Received %s, shutting down", sig)
	case <-ctx.Done():
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := server.Stop(stopCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}

	cancel()
	waitForSaves(stopCtx, saveRequests)
	saveCancel()
	<-saveDone
}

// waitForSaves blocks until the save queue is empty or ctx expires.
func waitForSaves(ctx context.Context, saveRequests chan workers.SaveRequest) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for len(saveRequests) > 0 {
		select {
		case <-ctx.Done():
			log.Warn("Dropping %d pending saves", len(saveRequests))
			return
		case <-ticker.C:
		}
	}
}
