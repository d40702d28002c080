package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
	}

	r.GET("/verify-id/:memberID", h.verifyID)

	m := r.Group("/member/:id")
	{
		m.GET("/digital-id", h.digitalID)
		m.POST("/digital-id/regenerate", h.regenerateDigitalID)
	}
}
