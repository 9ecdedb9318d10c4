package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// @Summary Create order
// @Description Create a new order for a user; the product list starts empty
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	order, err := ctrl.orderService.CreateOrder(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrderDate):
			c.JSON(http.StatusBadRequest, models.MessageResponse{
				Message: "Invalid order date, expected format " + models.OrderDateLayout,
			})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to create order"})
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// @Summary Add product to order
// @Description Associate a product with an order; duplicates are rejected
// @Tags Orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /orders/{order_id}/add_product/{product_id} [put]
func (ctrl *OrderController) AddProduct(c *gin.Context) {
	orderID, productID, ok := ctrl.pairParams(c)
	if !ok {
		return
	}

	product, err := ctrl.orderService.AddProduct(orderID, productID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Order not found"})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Product not found"})
		case errors.Is(err, services.ErrDuplicateOrderProduct):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Product already added to this order"})
		default:
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to add product to order"})
		}
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Product '%s' added to Order %d", product.ProductName, orderID),
	})
}

// @Summary Remove product from order
// @Description Dissociate a product from an order
// @Tags Orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /orders/{order_id}/remove_product/{product_id} [delete]
func (ctrl *OrderController) RemoveProduct(c *gin.Context) {
	orderID, productID, ok := ctrl.pairParams(c)
	if !ok {
		return
	}

	if err := ctrl.orderService.RemoveProduct(orderID, productID); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Order not found"})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Product not found"})
		case errors.Is(err, services.ErrProductNotInOrder):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Product is not associated with this order"})
		default:
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to remove product from order"})
		}
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Product '%d' successfully removed from Order %d", productID, orderID),
	})
}

// @Summary Get orders for user
// @Description Get all orders of a user with their nested products
// @Tags Orders
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Order
// @Failure 404 {object} models.MessageResponse
// @Router /orders/user/{user_id} [get]
func (ctrl *OrderController) GetOrdersForUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid user id"})
		return
	}

	orders, err := ctrl.orderService.GetOrdersForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to retrieve orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Get products for order
// @Description Get the products associated with an order
// @Tags Orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {array} models.Product
// @Failure 404 {object} models.MessageResponse
// @Router /orders/{order_id}/products [get]
func (ctrl *OrderController) GetProductsForOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid order id"})
		return
	}

	products, err := ctrl.orderService.GetProductsForOrder(orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ctrl *OrderController) pairParams(c *gin.Context) (orderID, productID int, ok bool) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid order id"})
		return 0, 0, false
	}
	productID, err = strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid product id"})
		return 0, 0, false
	}
	return orderID, productID, true
}
