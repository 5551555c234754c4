package ordersserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	orderhttpmapper "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/http/mapper"
	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-gin-orders-api/internal/shared/errors"
)

// OrderAPI wires HTTP transport with the orders bounded context service and workflows.
type OrderAPI struct {
	service   orderports.Service
	workflows orderports.WorkflowOrchestrator
	responder *apierrors.ChainedResponder
}

// NewOrderAPI creates an OrderAPI. When workflows is nil orders are created through the service directly.
func NewOrderAPI(service orderports.Service, workflows orderports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{
		service:   service,
		workflows: workflows,
		responder: apierrors.NewChainedResponder("", orderProblem),
	}
}

// Post /v1/orders
// Create an order for a customer
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	input := orderhttpmapper.ToCreateOrderInput(toTransportCreateOrder(payload))
	order, err := api.createOrder(c.Request.Context(), input)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromTransportOrder(orderhttpmapper.FromDomainOrder(order)))
}

func (api *OrderAPI) createOrder(ctx context.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.CreateOrder(ctx, input)
	}
	return api.service.CreateOrder(ctx, input)
}

// Get /v1/orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", c.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		api.responder.BadRequest(c, fmt.Sprintf("invalid format for parameter orderId: %v", err))
		return
	}
	order, err := api.service.GetOrder(c.Request.Context(), orderID)
	if errors.Is(err, orderapp.ErrOrderNotFound) {
		api.responder.Respond(c, apierrors.NewNotFoundProblem("order", orderID))
		return
	}
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromTransportOrder(orderhttpmapper.FromDomainOrder(order)))
}

func toTransportCreateOrder(payload CreateOrderRequest) orderhttpmapper.CreateOrder {
	products := make([]orderhttpmapper.LineRequest, 0, len(payload.Products))
	for _, p := range payload.Products {
		products = append(products, orderhttpmapper.LineRequest{ProductID: p.Id, Quantity: p.Quantity})
	}
	return orderhttpmapper.CreateOrder{CustomerID: payload.CustomerId, Products: products}
}

func fromTransportOrder(order orderhttpmapper.Order) Order {
	out := Order{
		Id:            order.ID,
		CustomerId:    order.CustomerID,
		CreatedAt:     order.CreatedAt,
		Total:         order.Total,
		OrderProducts: make([]OrderProduct, 0, len(order.Lines)),
	}
	for _, line := range order.Lines {
		out.OrderProducts = append(out.OrderProducts, OrderProduct{
			Id:        line.ID,
			ProductId: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return out
}
