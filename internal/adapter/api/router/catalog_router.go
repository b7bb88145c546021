package router

import (
	"github.com/labstack/echo/v4"

	"osta/internal/adapter/api/handler"
	"osta/internal/adapter/api/middleware"
)

func SetupCatalogRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	categories := e.Group("/v1/categories")
	categories.GET("", catalogHandler.ListCategories)
	categories.GET("/top", catalogHandler.TopCategories)
	categories.GET("/with-providers", catalogHandler.CategoriesWithProviders)
	categories.GET("/:name/providers", catalogHandler.ProvidersByCategory)
	categories.POST("", catalogHandler.CreateCategory, adminMiddleware.AdminOnly)
	categories.PATCH("/:id", catalogHandler.UpdateCategory, adminMiddleware.AdminOnly)
	categories.DELETE("/:id", catalogHandler.DeleteCategory, adminMiddleware.AdminOnly)

	subcategories := e.Group("/v1/subcategories")
	subcategories.GET("", catalogHandler.ListSubcategories)
	subcategories.POST("", catalogHandler.CreateSubcategory, adminMiddleware.AdminOnly)
	subcategories.DELETE("/:id", catalogHandler.DeleteSubcategory, adminMiddleware.AdminOnly)

	regions := e.Group("/v1/regions")
	regions.GET("", catalogHandler.ListRegions)
	regions.POST("/cities", catalogHandler.AddCity, adminMiddleware.AdminOnly)
	regions.POST("/areas", catalogHandler.AddArea, adminMiddleware.AdminOnly)
}
