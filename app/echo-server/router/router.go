package router

import (
	"github.com/labstack/echo/v4"

	"kiranaMarket/internal/rest"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc, selfOrAdmin echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/logout", handler.Logout, authRequired)

	users.PUT("/:id", handler.UpdateUser, authRequired, selfOrAdmin)
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, selfOrAdmin)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts, authRequired)
	products.GET("/:id", handler.GetProductByID, authRequired)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired)

	orders.POST("", handler.CreateOrder)
	orders.GET("/mine", handler.GetMyOrders)
	orders.GET("", handler.GetAllOrders, adminOnly)
	orders.GET("/:id", handler.GetOrderByID)
	orders.PUT("/:id/status", handler.UpdateOrderStatus, adminOnly)
	orders.DELETE("/:id", handler.DeleteOrder, adminOnly)
}

func SetupCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	categories := api.Group("/categories")

	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.POST("", handler.CreateCategory, authRequired, adminOnly)
	categories.PUT("/:id", handler.UpdateCategory, authRequired, adminOnly)
	categories.DELETE("/:id", handler.DeleteCategory, authRequired, adminOnly)
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.GET("", handler.Recommend)
	reco.GET("/debug", handler.DebugRecommend, adminOnly)
	reco.POST("/feedback", handler.Feedback)
}

func SetRecoAdminRoutes(api *echo.Group, handler *rest.RecoAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/reco", authRequired, adminOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}
