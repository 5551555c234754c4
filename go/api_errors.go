package ordersserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	apierrors "github.com/Apurer/go-gin-orders-api/internal/shared/errors"
)

// orderProblem translates orders use case errors into problem details.
func orderProblem(err error) (apierrors.ProblemDetail, bool) {
	var (
		customerErr *orderapp.CustomerNotFoundError
		noneErr     *orderapp.NoProductsFoundError
		productErr  *orderapp.ProductNotFoundError
		stockErr    *orderapp.InsufficientStockError
		updateErr   *orderapp.StockUpdateError
	)
	switch {
	case errors.As(err, &customerErr):
		return apierrors.ErrUnknownCustomer.WithDetail(err.Error()).
			WithExtension("customerId", customerErr.CustomerID), true
	case errors.As(err, &noneErr):
		return apierrors.ErrUnknownProduct.WithDetail(err.Error()).
			WithExtension("productIds", noneErr.ProductIDs), true
	case errors.As(err, &productErr):
		return apierrors.ErrUnknownProduct.WithDetail(err.Error()).
			WithExtension("productId", productErr.ProductID), true
	case errors.As(err, &stockErr):
		return apierrors.ErrInsufficientStock.WithDetail(err.Error()).
			WithExtension("productId", stockErr.ProductID).
			WithExtension("requestedQuantity", stockErr.Requested), true
	case errors.As(err, &updateErr):
		return apierrors.ErrStockNotUpdated.WithDetail(err.Error()).
			WithExtension("orderId", updateErr.OrderID), true
	case errors.Is(err, orderapp.ErrCustomerNotFound):
		return apierrors.ErrUnknownCustomer.WithDetail(err.Error()), true
	case errors.Is(err, orderapp.ErrNoProductsFound), errors.Is(err, orderapp.ErrProductNotFound):
		return apierrors.ErrUnknownProduct.WithDetail(err.Error()), true
	case errors.Is(err, orderapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, orderapp.ErrOrderNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// respondBindingError reports validator failures field by field and anything else as a bad request.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		apierrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = validationMessage(fe)
	}
	apierrors.DefaultResponder.ValidationFailed(c, fields)
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}
