package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roshdman/backend/src/service"
)

type StatisticsHandler struct {
	statisticsService *service.StatisticsService
}

func NewStatisticsHandler(statisticsService *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// ProfileResponse wraps profile stats with a message
type ProfileResponse struct {
	Stats   *service.ProfileStats `json:"stats"`
	Message string                `json:"message"`
}

// WeeklyResponse wraps weekly stats with a message
type WeeklyResponse struct {
	Stats   *service.WeeklyStats `json:"stats"`
	Message string               `json:"message"`
}

// Profile godoc
// @Summary Profile statistics
// @Description Lifetime counters over the user's own challenges
// @Tags statistics
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} ProfileResponse
// @Failure 500 {object} MessageResponse
// @Router /profile/{userId} [get]
func (h *StatisticsHandler) Profile(c *gin.Context) {
	stats, err := h.statisticsService.Profile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Stats: stats, Message: "profile statistics"})
}

// Weekly godoc
// @Summary Weekly statistics
// @Description Penalty counts and amounts over the trailing seven days with a daily breakdown
// @Tags statistics
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} WeeklyResponse
// @Failure 500 {object} MessageResponse
// @Router /statistics/{userId} [get]
func (h *StatisticsHandler) Weekly(c *gin.Context) {
	stats, err := h.statisticsService.Weekly(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, WeeklyResponse{Stats: stats, Message: "weekly statistics"})
}
