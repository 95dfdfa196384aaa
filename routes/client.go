package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shopapi/controller"
	"shopapi/middleware"
)

// ClientRoute sets up the storefront surface under /client. Order placement
// is rate limited when a Redis client is available.
func ClientRoute(router *gin.Engine, client *controller.ClientController, rdb *redis.Client) {
	clientRoutes := router.Group("/client")
	{
		clientRoutes.GET("/products", client.GetAllProducts)
		clientRoutes.GET("/products/:id", client.GetProduct)
		clientRoutes.POST("/orders", middleware.RateLimiter(rdb), client.CreateOrder)
	}
}
