package workflows

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/go-gin-orders-api/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-gin-orders-api/internal/durable/temporal/workflows/orders"
)

var sampleInput = ports.CreateOrderInput{
	CustomerID: "c1",
	Products:   []orderdomain.LineRequest{{ProductID: "p1", Quantity: 2}},
}

func TestTemporalOrderWorkflows_CreateOrder(t *testing.T) {
	c := &mocks.Client{}
	run := &mocks.WorkflowRun{}
	c.On("ExecuteWorkflow", mock.Anything,
		mock.MatchedBy(func(opts client.StartWorkflowOptions) bool {
			return opts.TaskQueue == orderworkflows.OrderCreationTaskQueue &&
				opts.WorkflowIDReusePolicy == enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE &&
				strings.HasPrefix(opts.ID, "order-creation-c1-")
		}),
		orderworkflows.OrderCreationWorkflowName,
		mock.MatchedBy(func(in orderworkflows.OrderCreationWorkflowInput) bool {
			return in.Command.CustomerID == "c1" && in.TraceID != ""
		}),
	).Return(run, nil).Once()
	run.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(1).(*orderdomain.Order) = orderdomain.Order{ID: "o1", CustomerID: "c1"}
	}).Return(nil).Once()

	order, err := NewTemporalOrderWorkflows(c).CreateOrder(context.Background(), sampleInput)
	require.NoError(t, err)
	require.Equal(t, "o1", order.ID)
	c.AssertExpectations(t)
	run.AssertExpectations(t)
}

func TestTemporalOrderWorkflows_RestoresBusinessErrors(t *testing.T) {
	c := &mocks.Client{}
	run := &mocks.WorkflowRun{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(run, nil)
	failure := temporal.NewNonRetryableApplicationError("customer 'c1' does not exist",
		orderactivities.ErrTypeCustomerNotFound, nil, orderactivities.FailureDetails{CustomerID: "c1"})
	run.On("Get", mock.Anything, mock.Anything).Return(failure)

	_, err := NewTemporalOrderWorkflows(c).CreateOrder(context.Background(), sampleInput)
	require.ErrorIs(t, err, orderapp.ErrCustomerNotFound)
	var customerErr *orderapp.CustomerNotFoundError
	require.True(t, errors.As(err, &customerErr))
	require.Equal(t, "c1", customerErr.CustomerID)
}

func TestTemporalOrderWorkflows_StartFailure(t *testing.T) {
	c := &mocks.Client{}
	startErr := errors.New("namespace not found")
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, startErr)

	_, err := NewTemporalOrderWorkflows(c).CreateOrder(context.Background(), sampleInput)
	require.ErrorIs(t, err, startErr)
}

func TestTemporalOrderWorkflows_NotConfigured(t *testing.T) {
	var o *TemporalOrderWorkflows
	_, err := o.CreateOrder(context.Background(), sampleInput)
	require.Error(t, err)
}

type stubService struct {
	input ports.CreateOrderInput
}

func (s *stubService) CreateOrder(_ context.Context, input ports.CreateOrderInput) (*orderdomain.Order, error) {
	s.input = input
	return &orderdomain.Order{ID: "inline"}, nil
}

func (s *stubService) GetOrder(context.Context, string) (*orderdomain.Order, error) {
	return nil, orderapp.ErrOrderNotFound
}

func TestInlineOrderWorkflows_DelegatesToService(t *testing.T) {
	svc := &stubService{}
	order, err := NewInlineOrderWorkflows(svc).CreateOrder(context.Background(), sampleInput)
	require.NoError(t, err)
	require.Equal(t, "inline", order.ID)
	require.Equal(t, sampleInput, svc.input)

	_, err = NewInlineOrderWorkflows(nil).CreateOrder(context.Background(), sampleInput)
	require.Error(t, err)
}

func TestBuildOrderCreationWorkflowID_IsUnique(t *testing.T) {
	first := buildOrderCreationWorkflowID(sampleInput, "trace")
	second := buildOrderCreationWorkflowID(sampleInput, "trace")
	require.True(t, strings.HasPrefix(first, "order-creation-c1-trace-"))
	require.NotEqual(t, first, second)
}
