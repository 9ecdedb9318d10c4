package routes

import (
	"ecommerce-api/controllers"
	"ecommerce-api/repositories"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, db repositories.DB, cache *redis.Client) {
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo), cache)
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, userRepo, productRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/users", userCtrl.GetAllUsers)
	router.GET("/users/:id", userCtrl.GetUserByID)
	router.POST("/users", userCtrl.CreateUser)
	router.PUT("/users/:id", userCtrl.UpdateUser)
	router.DELETE("/users/:id", userCtrl.DeleteUser)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.POST("/products", productCtrl.CreateProduct)
	router.PUT("/products/:id", productCtrl.UpdateProduct)
	router.DELETE("/products/:id", productCtrl.DeleteProduct)

	router.POST("/orders", orderCtrl.CreateOrder)
	router.PUT("/orders/:order_id/add_product/:product_id", orderCtrl.AddProduct)
	router.DELETE("/orders/:order_id/remove_product/:product_id", orderCtrl.RemoveProduct)
	router.GET("/orders/user/:user_id", orderCtrl.GetOrdersForUser)
	router.GET("/orders/:order_id/products", orderCtrl.GetProductsForOrder)
}
