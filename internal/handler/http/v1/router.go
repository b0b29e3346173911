package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты работы с местоположениями
	location := api.Group("/location")
	{
		location.POST("/track", h.trackLocation)
		location.GET("/latest", h.latestLocation)
		location.GET("/history", h.locationHistory)
		location.GET("/stats", h.locationStats)
		location.POST("/distance", h.calculateDistance)
		location.DELETE("/delete/:id", h.deleteLocation)
	}

	// Список недавно наблюдавшихся пользователей
	api.GET("/users", h.recentUsers)

	// Служебные маршруты
	api.GET("/health", h.healthCheck)
	api.GET("/info", h.apiInfo)
}
