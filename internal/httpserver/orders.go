package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"bookstore-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type placeOrderRequest struct {
	CustomerForm domain.CustomerForm `json:"customerForm"`
	Cart         domain.ShoppingCart `json:"cart"`
}

type placeOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

func placeOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		orderID, err := orders.PlaceOrder(c.Request.Context(), req.CustomerForm, req.Cart)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, placeOrderResponse{OrderID: orderID})
	}
}

func getOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		details, err := orders.GetOrderDetails(c.Request.Context(), orderID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

// writeError maps domain error kinds onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
