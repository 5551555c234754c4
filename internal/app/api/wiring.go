package api

import (
	"context"
	"errors"
	"log/slog"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	customermemory "github.com/Apurer/go-gin-orders-api/internal/domains/customers/adapters/memory"
	customerpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/customers/adapters/persistence/postgres"
	customerports "github.com/Apurer/go-gin-orders-api/internal/domains/customers/ports"
	ordermemory "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/persistence/postgres"
	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	productmemory "github.com/Apurer/go-gin-orders-api/internal/domains/products/adapters/memory"
	productpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/products/adapters/persistence/postgres"
	productports "github.com/Apurer/go-gin-orders-api/internal/domains/products/ports"
	"github.com/Apurer/go-gin-orders-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-orders-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-orders-api/internal/platform/postgres"
)

// Repositories bundles the stores the orders use case depends on.
type Repositories struct {
	Customers customerports.Repository
	Products  productports.Repository
	Orders    orderports.Repository
}

// MemoryRepositories returns empty in-memory stores.
func MemoryRepositories() Repositories {
	return Repositories{
		Customers: customermemory.NewRepository(),
		Products:  productmemory.NewRepository(),
		Orders:    ordermemory.NewRepository(),
	}
}

// BuildRepositories connects to Postgres and migrates the schema. Without a DSN, or when the
// database is unreachable, it falls back to in-memory stores.
func BuildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (Repositories, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return MemoryRepositories(), func() {}
	}
	db, closeDB, err := platformpostgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return MemoryRepositories(), func() {}
	}
	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		logger.Warn("failed to migrate postgres schema, falling back to memory", slog.String("error", err.Error()))
		closeDB()
		return MemoryRepositories(), func() {}
	}
	logger.Info("order repositories configured with postgres")
	return Repositories{
		Customers: customerpostgres.NewRepository(db),
		Products:  productpostgres.NewRepository(db),
		Orders:    orderpostgres.NewRepository(db),
	}, closeDB
}

// NewOrderService builds the orders use case wrapped with logging, tracing and metrics.
func NewOrderService(repos Repositories, instruments *platformobservability.Instruments) orderports.Service {
	core := orderapp.NewService(repos.Orders, repos.Products, repos.Customers)
	return orderobs.New(
		core,
		orderobs.WithLogger(effectiveLogger(instruments)),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
}

// ConnectTemporal dials the configured Temporal frontend with tracing and structured logging.
func ConnectTemporal(cfg Config, instruments *platformobservability.Instruments, tracerName string) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer(tracerName),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}
