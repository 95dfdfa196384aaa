package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"shopapi/config"
	"shopapi/controller"
	"shopapi/middleware"
	"shopapi/routes"
	"shopapi/service"
)

func main() {
	db, err := config.Connect()
	if err != nil {
		log.Fatalf("Unable to connect to the database: %v", err)
	}
	log.Println("Connection has been established successfully.")
	rdb := config.NewRedisClient()

	catalog := service.NewCatalogService(db)
	orders := service.NewOrderService(db)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.AdminRoute(router, controller.NewAdminController(catalog, orders))
	routes.ClientRoute(router, controller.NewClientController(catalog, orders), rdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}
