package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/services"
)

func SetupRoutes(router *gin.Engine, sessions *services.Sessions, jwtSecret string) {
	cartCtrl := &controllers.CartController{Sessions: sessions}
	checkoutCtrl := &controllers.CheckoutController{Sessions: sessions}
	orderCtrl := &controllers.OrderController{Sessions: sessions}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(jwtSecret))
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		auth.POST("/cart/toggle", cartCtrl.Toggle)
		auth.PUT("/cart/open", cartCtrl.SetOpen)

		auth.GET("/checkout", checkoutCtrl.Status)
		auth.POST("/checkout", checkoutCtrl.Begin)
		auth.DELETE("/checkout", checkoutCtrl.Cancel)
		auth.POST("/checkout/submit", checkoutCtrl.Submit)
		auth.POST("/checkout/retry", checkoutCtrl.Retry)

		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
	}
}
