package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Подача заявки публична, всё остальное — для аутентифицированных ответственных
	requests := api.Group("/requests")
	{
		requests.POST("", h.createHelpRequest)
		requests.GET("", auth, h.listHelpRequests)
		requests.GET("/nearby", auth, h.findNearby)
		requests.GET("/:id", auth, h.getHelpRequest)
		requests.PUT("/:id", auth, h.updateStatus)
	}

	// Канал вещания для дашбордов
	api.GET("/ws", auth, h.serveWS)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
