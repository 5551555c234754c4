package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	ordersserver "github.com/Apurer/go-gin-orders-api/go"
	orderworkflows "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/workflows"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	platformobservability "github.com/Apurer/go-gin-orders-api/internal/platform/observability"
)

const serviceName = "orders-api"

// Run boots the orders HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger.With(slog.String("environment", cfg.Environment))

	repos, cleanupRepos := BuildRepositories(ctx, cfg, logger)
	defer cleanupRepos()
	orderService := NewOrderService(repos, instruments)

	var workflows orderports.WorkflowOrchestrator = orderworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := ConnectTemporal(cfg, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline CreateOrder", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		workflows = orderworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := ordersserver.ApiHandleFunctions{
		OrderAPI: ordersserver.NewOrderAPI(orderService, workflows),
	}
	engine := gin.Default()
	engine.Use(otelgin.Middleware(serviceName))
	router := ordersserver.NewRouterWithGinEngine(engine, handlers)

	addr := cfg.Addr()
	logger.Info("orders API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("orders API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
