package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/service"
)

type InvitationHandler struct {
	invitationService *service.InvitationService
}

func NewInvitationHandler(invitationService *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// InviteRequest represents the request payload for sending an invitation
type InviteRequest struct {
	FromUserID  string `json:"fromUserId" binding:"required"`
	ToUserID    string `json:"toUserId" binding:"required"`
	ChallengeID string `json:"challengeId" binding:"required"`
}

// InvitationResponse wraps an invitation with a message
type InvitationResponse struct {
	Invitation *domain.Invitation `json:"invitation"`
	Message    string             `json:"message"`
}

// Invite godoc
// @Summary Invite a user to witness a challenge
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body InviteRequest true "Invitation payload"
// @Success 200 {object} InvitationResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /invitations [post]
func (h *InvitationHandler) Invite(c *gin.Context) {
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, domain.NewError(domain.ErrorCodeParameterInvalid, err, domain.WithMsg("fromUserId, toUserId and challengeId are required")))
		return
	}

	invitation, err := h.invitationService.Invite(c.Request.Context(), req.FromUserID, req.ToUserID, req.ChallengeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, InvitationResponse{Invitation: invitation, Message: "invitation sent"})
}

// ListForUser godoc
// @Summary List invitations addressed to a user
// @Tags invitations
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} domain.Invitation
// @Failure 500 {object} MessageResponse
// @Router /invitations/{userId} [get]
func (h *InvitationHandler) ListForUser(c *gin.Context) {
	invitations, err := h.invitationService.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}
