package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const productListCacheKey = "products_list"

type ProductController struct {
	productService *services.ProductService
	cache          *redis.Client
}

// NewProductController accepts a nil cache; listings are then always
// served from the database.
func NewProductController(productService *services.ProductService, cache *redis.Client) *ProductController {
	return &ProductController{productService: productService, cache: cache}
}

func (ctrl *ProductController) invalidateProductCache() {
	if ctrl.cache == nil {
		return
	}
	ctrl.cache.Del(context.Background(), productListCacheKey)
}

// @Summary Get all products
// @Description Get list of all products
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := context.Background()

	if ctrl.cache != nil {
		cached, err := ctrl.cache.Get(ctx, productListCacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.productService.GetAllProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to retrieve products"})
		return
	}

	jsonData, err := json.Marshal(products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to retrieve products"})
		return
	}

	if ctrl.cache != nil {
		ctrl.cache.Set(ctx, productListCacheKey, string(jsonData), 5*time.Minute)
	}
	c.Data(http.StatusOK, "application/json", jsonData)
}

// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.MessageResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid product id"})
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Create product
// @Description Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product data"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string][]string
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	product, err := ctrl.productService.CreateProduct(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to create product"})
		return
	}

	ctrl.invalidateProductCache()
	c.JSON(http.StatusOK, product)
}

// @Summary Update product
// @Description Replace all product fields
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.UpdateProductRequest true "Product data"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} models.MessageResponse
// @Router /products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid product id"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	product, err := ctrl.productService.UpdateProduct(id, req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to update product"})
		return
	}

	ctrl.invalidateProductCache()
	c.JSON(http.StatusOK, product)
}

// @Summary Delete product
// @Description Delete a product not referenced by any order
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid product id"})
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid product id"})
		case errors.Is(err, services.ErrProductInOrders):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Product belongs to existing orders"})
		default:
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to delete product"})
		}
		return
	}

	ctrl.invalidateProductCache()
	c.JSON(http.StatusOK, models.MessageResponse{Message: fmt.Sprintf("Successfully deleted product %d", id)})
}
