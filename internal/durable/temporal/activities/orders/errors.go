package orders

import (
	"errors"
	"fmt"
	"strings"

	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
)

// Application error types carried across the workflow boundary.
const (
	ErrTypeCustomerNotFound  = "CustomerNotFound"
	ErrTypeNoProductsFound   = "NoProductsFound"
	ErrTypeProductNotFound   = "ProductNotFound"
	ErrTypeInsufficientStock = "InsufficientStock"
	ErrTypeInvalidInput      = "InvalidInput"
	ErrTypeStockUpdateFailed = "StockUpdateFailed"
)

// FailureDetails is the payload attached to a business failure.
type FailureDetails struct {
	CustomerID string   `json:"customerId,omitempty"`
	ProductID  string   `json:"productId,omitempty"`
	ProductIDs []string `json:"productIds,omitempty"`
	Requested  int64    `json:"requested,omitempty"`
	Available  int32    `json:"available,omitempty"`
	OrderID    string   `json:"orderId,omitempty"`
	Message    string   `json:"message,omitempty"`
}

// EncodeError converts orders business errors into non-retryable application errors.
// Other errors are returned unchanged.
func EncodeError(err error) error {
	if err == nil {
		return nil
	}
	var (
		customerErr *orderapp.CustomerNotFoundError
		noneErr     *orderapp.NoProductsFoundError
		productErr  *orderapp.ProductNotFoundError
		stockErr    *orderapp.InsufficientStockError
		updateErr   *orderapp.StockUpdateError
	)
	switch {
	case errors.As(err, &customerErr):
		return nonRetryable(err, ErrTypeCustomerNotFound, FailureDetails{CustomerID: customerErr.CustomerID})
	case errors.As(err, &noneErr):
		return nonRetryable(err, ErrTypeNoProductsFound, FailureDetails{ProductIDs: noneErr.ProductIDs})
	case errors.As(err, &productErr):
		return nonRetryable(err, ErrTypeProductNotFound, FailureDetails{ProductID: productErr.ProductID})
	case errors.As(err, &stockErr):
		return nonRetryable(err, ErrTypeInsufficientStock, FailureDetails{
			ProductID: stockErr.ProductID,
			Requested: stockErr.Requested,
			Available: stockErr.Available,
		})
	case errors.As(err, &updateErr):
		return nonRetryable(err, ErrTypeStockUpdateFailed, FailureDetails{OrderID: updateErr.OrderID, Message: updateErr.Err.Error()})
	case errors.Is(err, orderapp.ErrInvalidInput):
		message := strings.TrimPrefix(err.Error(), orderapp.ErrInvalidInput.Error()+": ")
		return nonRetryable(err, ErrTypeInvalidInput, FailureDetails{Message: message})
	}
	return err
}

func nonRetryable(err error, errType string, details FailureDetails) error {
	return temporal.NewNonRetryableApplicationError(err.Error(), errType, nil, details)
}

// DecodeError restores the typed orders error from an application error found in err's chain.
// Errors without a known application error type are returned unchanged.
func DecodeError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	var details FailureDetails
	if appErr.HasDetails() {
		if detailErr := appErr.Details(&details); detailErr != nil {
			return err
		}
	}
	switch appErr.Type() {
	case ErrTypeCustomerNotFound:
		return &orderapp.CustomerNotFoundError{CustomerID: details.CustomerID}
	case ErrTypeNoProductsFound:
		return &orderapp.NoProductsFoundError{ProductIDs: details.ProductIDs}
	case ErrTypeProductNotFound:
		return &orderapp.ProductNotFoundError{ProductID: details.ProductID}
	case ErrTypeInsufficientStock:
		return &orderapp.InsufficientStockError{
			ProductID: details.ProductID,
			Requested: details.Requested,
			Available: details.Available,
		}
	case ErrTypeStockUpdateFailed:
		return &orderapp.StockUpdateError{OrderID: details.OrderID, Err: errors.New(details.Message)}
	case ErrTypeInvalidInput:
		return fmt.Errorf("%w: %s", orderapp.ErrInvalidInput, details.Message)
	}
	return err
}
