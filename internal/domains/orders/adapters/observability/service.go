package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core orders service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder",
		trace.WithAttributes(
			attribute.String("customer.id", input.CustomerID),
			attribute.Int("order.requested_lines", len(input.Products)),
		))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.String("customer.id", input.CustomerID), slog.Int("order.requested_lines", len(input.Products)))
	result, err := s.inner.CreateOrder(ctx, input)
	if err != nil {
		reason := failureReason(err)
		s.metrics.recordFailure(ctx, reason)
		return nil, s.handleError(ctx, span, err, "failed to create order",
			slog.String("customer.id", input.CustomerID), slog.String("reason", reason))
	}
	span.SetAttributes(attribute.String("order.id", result.ID))
	s.metrics.recordCreated(ctx, result)
	s.logInfo(ctx, "order created",
		slog.String("order.id", result.ID),
		slog.String("customer.id", result.CustomerID),
		slog.Int("order.lines", len(result.Lines)),
		slog.String("order.total", result.Total().String()))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "loading order", slog.String("order.id", id))
	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	s.logInfo(ctx, "order loaded", slog.String("order.id", result.ID), slog.Int("order.lines", len(result.Lines)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

// failureReason buckets errors into a small, fixed set of metric label values.
func failureReason(err error) string {
	switch {
	case errors.Is(err, orderapp.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, orderapp.ErrNoProductsFound):
		return "no_products_found"
	case errors.Is(err, orderapp.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, orderapp.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, orderapp.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, orderapp.ErrStockUpdateFailed):
		return "stock_update_failed"
	default:
		return "internal"
	}
}

type serviceMetrics struct {
	ordersCreated metric.Int64Counter
	orderFailures metric.Int64Counter
	unitsOrdered  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.orders_created", metric.WithDescription("Number of orders created"))
	orderFailures, _ := m.Int64Counter("orders.service.order_failures", metric.WithDescription("Number of rejected or failed order creations"))
	unitsOrdered, _ := m.Int64Counter("orders.service.units_ordered", metric.WithDescription("Product units taken from stock by orders"))
	return serviceMetrics{ordersCreated: ordersCreated, orderFailures: orderFailures, unitsOrdered: unitsOrdered}
}

func (m serviceMetrics) recordCreated(ctx context.Context, order *orderdomain.Order) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1)
	}
	if m.unitsOrdered != nil {
		var units int64
		for _, line := range order.Lines {
			units += int64(line.Quantity)
		}
		m.unitsOrdered.Add(ctx, units)
	}
}

func (m serviceMetrics) recordFailure(ctx context.Context, reason string) {
	if m.orderFailures != nil {
		m.orderFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	}
}

var _ orderports.Service = (*Service)(nil)
