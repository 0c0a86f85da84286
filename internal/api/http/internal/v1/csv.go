package v1

import (
	"errors"
	"net/http"

	"github.com/vibe-gaming/clan-api/internal/service"
	"github.com/vibe-gaming/clan-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initCSVRoutes(api *gin.RouterGroup) {
	api.POST("/upload_csv", h.uploadCSV)
	api.GET("/clans/export_csv", h.exportCSV)
}

// @Summary Upload CSV
// @Tags CSV
// @Description Import clans from the server-local CSV file (columns name, region)
// @ModuleID uploadCSV
// @Produce  json
// @Success 200 {object} MessageStruct
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /upload_csv [post]
func (h *Handler) uploadCSV(c *gin.Context) {
	if _, err := h.services.ClanFiles.Import(c.Request.Context()); err != nil {
		if errors.Is(err, service.ErrMalformedCSV) {
			logger.Warn("csv import rejected", zap.Error(err))
			errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		internalErrorResponse(c, "csv import failed", err)
		return
	}

	messageResponse(c, CSVUploadedMessage)
}

// @Summary Export CSV
// @Tags CSV
// @Description Write all clans to the server-local export file, replacing it
// @ModuleID exportCSV
// @Produce  json
// @Success 200 {object} MessageStruct
// @Failure 500 {object} ErrorStruct
// @Router /clans/export_csv [get]
func (h *Handler) exportCSV(c *gin.Context) {
	if _, err := h.services.ClanFiles.Export(c.Request.Context()); err != nil {
		internalErrorResponse(c, "csv export failed", err)
		return
	}

	messageResponse(c, CSVExportedMessage)
}
