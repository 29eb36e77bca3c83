package router

import (
	"github.com/labstack/echo/v4"

	"ghargpt/internal/adapter/api/handler"
)

func SetupPropertyRouter(e *echo.Echo) {
	propertyHandler := handler.GetPropertyHandler()

	properties := e.Group("/properties")
	properties.GET("", propertyHandler.ListProperties)
	properties.POST("", propertyHandler.CreateProperty)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.PUT("/:id", propertyHandler.UpdateProperty)
	properties.PATCH("/:id", propertyHandler.UpdateProperty)
	properties.DELETE("/:id", propertyHandler.DeleteProperty)
}
