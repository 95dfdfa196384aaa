package routes

import (
	"github.com/gin-gonic/gin"

	"shopapi/controller"
)

// AdminRoute sets up the administrative surface under /admin.
func AdminRoute(router *gin.Engine, admin *controller.AdminController) {
	// Group routes for better organization
	adminRoutes := router.Group("/admin")
	{
		adminRoutes.POST("/products", admin.AddProduct)
		adminRoutes.GET("/products", admin.GetProducts)
		adminRoutes.GET("/products/:id", admin.GetProductByID)
		adminRoutes.PUT("/products/:id", admin.UpdateProduct)
		adminRoutes.DELETE("/products/:id", admin.DeleteProduct)
		adminRoutes.GET("/orders", admin.GetOrders)
		adminRoutes.GET("/orders/:id", admin.GetOrderByID)
		adminRoutes.DELETE("/orders/:id", admin.DeleteOrder)
	}
}
