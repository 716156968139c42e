package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/service"
)

type ChallengeHandler struct {
	challengeService *service.ChallengeService
}

func NewChallengeHandler(challengeService *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// CreateChallengeRequest represents the request payload for challenge creation
type CreateChallengeRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	Penalty     int    `json:"penalty" binding:"required,gt=0"`
	CharityID   string `json:"charityId" binding:"required"`
}

// RecordPenaltyRequest carries the id of the user recording the miss. It is
// deliberately not marked required: an absent recordedBy fails the
// owner-or-witness check and comes back as 403, not 400.
type RecordPenaltyRequest struct {
	RecordedBy string `json:"recordedBy"`
}

// ConfirmPaymentRequest identifies the owner confirming the payment
type ConfirmPaymentRequest struct {
	UserID string `json:"userId"`
}

// AddWitnessRequest identifies the user to add as witness
type AddWitnessRequest struct {
	WitnessID string `json:"witnessId"`
}

// ChallengeResponse wraps a challenge with a message
type ChallengeResponse struct {
	Challenge *domain.Challenge `json:"challenge"`
	Message   string            `json:"message"`
}

// PenaltyResponse wraps the updated challenge and the new penalty event
type PenaltyResponse struct {
	Challenge *domain.Challenge    `json:"challenge"`
	Penalty   *domain.PenaltyEvent `json:"penalty"`
	Message   string               `json:"message"`
}

// Create godoc
// @Summary Create a challenge
// @Description Create a self-commitment with a duration, a per-miss penalty and a charity
// @Tags challenges
// @Accept json
// @Produce json
// @Param request body CreateChallengeRequest true "Challenge payload"
// @Success 200 {object} ChallengeResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /challenges [post]
func (h *ChallengeHandler) Create(c *gin.Context) {
	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, domain.NewError(domain.ErrorCodeParameterInvalid, err, domain.WithMsg("userId, title, a positive duration, a positive penalty and charityId are required")))
		return
	}

	challenge, err := h.challengeService.Create(
		c.Request.Context(),
		req.UserID,
		req.Title,
		req.Description,
		req.Duration,
		req.Penalty,
		req.CharityID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChallengeResponse{Challenge: challenge, Message: "challenge created"})
}

// RecordPenalty godoc
// @Summary Record a penalty
// @Description Record a missed check-in on a challenge; owner or witness only
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge id"
// @Param request body RecordPenaltyRequest true "Recorder payload"
// @Success 200 {object} PenaltyResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /challenges/{id}/penalties [post]
func (h *ChallengeHandler) RecordPenalty(c *gin.Context) {
	var req RecordPenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, domain.NewError(domain.ErrorCodeParameterInvalid, err, domain.WithMsg("invalid request payload")))
		return
	}

	challenge, penalty, err := h.challengeService.RecordPenalty(c.Request.Context(), c.Param("id"), req.RecordedBy)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PenaltyResponse{Challenge: challenge, Penalty: penalty, Message: "penalty recorded"})
}

// ConfirmPayment godoc
// @Summary Confirm a penalty payment
// @Description Zero the accrued penalties, delete the events and restart the challenge; owner only
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge id"
// @Param request body ConfirmPaymentRequest true "Owner payload"
// @Success 200 {object} ChallengeResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /challenges/{id}/confirm-payment [post]
func (h *ChallengeHandler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, domain.NewError(domain.ErrorCodeParameterInvalid, err, domain.WithMsg("invalid request payload")))
		return
	}

	challenge, err := h.challengeService.ConfirmPayment(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChallengeResponse{Challenge: challenge, Message: "payment confirmed and penalties reset"})
}

// AddWitness godoc
// @Summary Add a witness
// @Description Grant another user permission to record penalties on the challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge id"
// @Param request body AddWitnessRequest true "Witness payload"
// @Success 200 {object} ChallengeResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /challenges/{id}/witnesses [post]
func (h *ChallengeHandler) AddWitness(c *gin.Context) {
	var req AddWitnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, domain.NewError(domain.ErrorCodeParameterInvalid, err, domain.WithMsg("invalid request payload")))
		return
	}

	challenge, err := h.challengeService.AddWitness(c.Request.Context(), c.Param("id"), req.WitnessID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChallengeResponse{Challenge: challenge, Message: "witness added"})
}

// ListForUser godoc
// @Summary List a user's challenges
// @Description Every challenge the user owns or witnesses, in store order
// @Tags challenges
// @Produce json
// @Param id path string true "User id"
// @Success 200 {array} domain.Challenge
// @Failure 500 {object} MessageResponse
// @Router /challenges/{id} [get]
func (h *ChallengeHandler) ListForUser(c *gin.Context) {
	// The path segment is a user id here; gin requires the same param name
	// across /challenges/:id routes.
	challenges, err := h.challengeService.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenges)
}

// ListPenalties godoc
// @Summary List a challenge's penalty events
// @Tags challenges
// @Produce json
// @Param id path string true "Challenge id"
// @Success 200 {array} domain.PenaltyEvent
// @Failure 500 {object} MessageResponse
// @Router /challenges/{id}/penalties [get]
func (h *ChallengeHandler) ListPenalties(c *gin.Context) {
	penalties, err := h.challengeService.ListPenalties(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, penalties)
}
