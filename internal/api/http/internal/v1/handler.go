package v1

import (
	"github.com/vibe-gaming/clan-api/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Clan API
// @version 1.0
// @description Clan records with CSV import and export

// @BasePath /

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initClansRoutes(api)
	h.initCSVRoutes(api)
}
