package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roshdman/backend/src/service"
)

type CharityHandler struct {
	charityService *service.CharityService
}

func NewCharityHandler(charityService *service.CharityService) *CharityHandler {
	return &CharityHandler{charityService: charityService}
}

// List godoc
// @Summary List charities
// @Description The static charity collection penalty payments are donated to
// @Tags charities
// @Produce json
// @Success 200 {array} domain.Charity
// @Failure 500 {object} MessageResponse
// @Router /charities [get]
func (h *CharityHandler) List(c *gin.Context) {
	charities, err := h.charityService.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, charities)
}
