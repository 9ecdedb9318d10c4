package main

import (
	"log"

	"ecommerce-api/config"
	_ "ecommerce-api/docs"
	"ecommerce-api/middleware"
	"ecommerce-api/routes"

	"github.com/gin-gonic/gin"
)

// @title E-commerce API
// @version 1.0
// @description CRUD REST API over users, products and orders with an order-product association.
// @BasePath /
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	pool := config.ConnectDB()
	defer pool.Close()

	cache := config.ConnectRedis()
	if cache != nil {
		defer cache.Close()
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, pool, cache)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
