package v1

import (
	"errors"
	"net/http"

	"github.com/vibe-gaming/clan-api/internal/domain"
	"github.com/vibe-gaming/clan-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initClansRoutes(api *gin.RouterGroup) {
	clans := api.Group("/clans")
	{
		clans.POST("", h.createClan)
		clans.GET("", h.getClans)
		clans.GET("/:clan_id", h.getClanByID)
		clans.DELETE("/:clan_id", h.deleteClan)
	}
}

type createClanInput struct {
	Name   string  `json:"name" binding:"required,notblank"`
	Region *string `json:"region"`
}

type getClansQuery struct {
	Region *string `form:"region"`
	Sort   string  `form:"sort" binding:"omitempty,oneof=asc desc"`
}

// @Summary Create Clan
// @Tags Clans
// @Description Create a clan; id and created_at are assigned by the server
// @ModuleID createClan
// @Accept  json
// @Produce  json
// @Param input body createClanInput true "clan"
// @Success 200 {object} domain.Clan
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /clans [post]
func (h *Handler) createClan(c *gin.Context) {
	var input createClanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	clan, err := h.services.Clans.Create(c.Request.Context(), service.ClanCreate{
		Name:   input.Name,
		Region: input.Region,
	})
	if err != nil {
		internalErrorResponse(c, "create clan failed", err)
		return
	}

	c.JSON(http.StatusOK, clan)
}

// @Summary Get Clans
// @Tags Clans
// @Description List clans, optionally filtered by region and sorted by created_at
// @ModuleID getClans
// @Accept  json
// @Produce  json
// @Param region query string false "exact region match"
// @Param sort query string false "created_at order" Enums(asc, desc)
// @Success 200 {array} domain.Clan
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /clans [get]
func (h *Handler) getClans(c *gin.Context) {
	var query getClansQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		validationErrorResponse(c, err)
		return
	}

	clans, err := h.services.Clans.GetAll(c.Request.Context(), domain.ClanFilter{
		Region: query.Region,
		Sort:   query.Sort,
	})
	if err != nil {
		internalErrorResponse(c, "get clans failed", err)
		return
	}

	c.JSON(http.StatusOK, clans)
}

// @Summary Get Clan
// @Tags Clans
// @Description Get a clan by id
// @ModuleID getClanByID
// @Accept  json
// @Produce  json
// @Param clan_id path string true "clan id"
// @Success 200 {object} domain.Clan
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /clans/{clan_id} [get]
func (h *Handler) getClanByID(c *gin.Context) {
	id, ok := clanIDParam(c)
	if !ok {
		return
	}

	clan, err := h.services.Clans.GetOneByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClanNotFound) {
			errorResponse(c, http.StatusNotFound, ClanNotFoundMessage)
			return
		}
		internalErrorResponse(c, "get clan failed", err)
		return
	}

	c.JSON(http.StatusOK, clan)
}

// @Summary Delete Clan
// @Tags Clans
// @Description Permanently delete a clan
// @ModuleID deleteClan
// @Accept  json
// @Produce  json
// @Param clan_id path string true "clan id"
// @Success 200 {object} MessageStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /clans/{clan_id} [delete]
func (h *Handler) deleteClan(c *gin.Context) {
	id, ok := clanIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Clans.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClanNotFound) {
			errorResponse(c, http.StatusNotFound, ClanNotFoundMessage)
			return
		}
		internalErrorResponse(c, "delete clan failed", err)
		return
	}

	messageResponse(c, ClanDeletedMessage)
}

// clanIDParam parses the clan_id path segment. An id that is not a uuid cannot
// name a stored clan, so it is answered with the same 404 as a missing one.
func clanIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("clan_id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, ClanNotFoundMessage)
		return uuid.Nil, false
	}
	return id, true
}
