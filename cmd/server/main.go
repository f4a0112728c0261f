package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/config"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/handler"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/router"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/upstream"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize upstream API clients
	base := upstream.NewClient(&cfg.Upstream)
	projectAPI := upstream.NewProjectClient(base)
	drawingAPI := upstream.NewDrawingClient(base)
	commentAPI := upstream.NewCommentClient(base)
	notificationAPI := upstream.NewNotificationClient(base)
	directoryAPI := upstream.NewDirectoryClient(base)
	accountAPI := upstream.NewAccountClient(base)

	// Initialize services
	dashboardSvc := service.NewDashboardService(projectAPI, drawingAPI, notificationAPI)
	drawingSvc := service.NewDrawingService(drawingAPI)
	commentSvc := service.NewCommentService(commentAPI, drawingAPI)
	notificationSvc := service.NewNotificationService(notificationAPI, cfg.Cache.MaxEntries, cfg.Cache.TTL)
	directorySvc := service.NewDirectoryService(directoryAPI, cfg.Cache.TTL)
	accountSvc := service.NewAccountService(accountAPI)
	exportSvc := service.NewExportService(projectAPI, drawingAPI, cfg.Export.SheetName, cfg.Export.MaxRows)

	// Initialize handlers
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	drawingH := handler.NewDrawingHandler(drawingSvc)
	commentH := handler.NewCommentHandler(commentSvc)
	notificationH := handler.NewNotificationHandler(notificationSvc)
	directoryH := handler.NewDirectoryHandler(directorySvc)
	accountH := handler.NewAccountHandler(accountSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(base)

	// Setup router
	r := router.Setup(cfg, dashboardH, drawingH, commentH, notificationH, directoryH, accountH, exportH, healthH)

	// Background refresh of cached unread counts
	pollCtx, stopPoller := context.WithCancel(context.Background())
	defer stopPoller()
	if cfg.Poll.Enabled {
		poller := service.NewNotificationPoller(notificationSvc, cfg.Poll.Interval)
		go poller.Start(pollCtx)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	stopPoller()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Print("Server stopped")
	return nil
}
