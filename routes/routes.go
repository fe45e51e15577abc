package routes

import (
	"storefront-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full HTTP surface onto the router.
func RegisterRoutes(r *gin.Engine, pc *controllers.ProductController, cc *controllers.CheckoutController, sc *controllers.StatusController) {
	r.GET("/", sc.Root)
	r.GET("/health", sc.Health)
	r.GET("/test", sc.Test)

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", pc.GetProducts)
			products.POST("", pc.CreateProduct)
			products.GET("/:id", pc.GetProductByID)
			products.PUT("/:id", pc.UpdateProduct)
			products.DELETE("/:id", pc.DeleteProduct)
		}

		api.POST("/checkout/create-session", cc.CreateSession)
	}
}
