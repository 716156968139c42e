package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/repository"
	"github.com/rs/zerolog"
)

type InvitationService struct {
	store *repository.Store
}

func NewInvitationService(store *repository.Store) *InvitationService {
	return &InvitationService{store: store}
}

// logger wraps the execution context with component info
func (s *InvitationService) logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("service", "invitation").Logger()
	return &l
}

// Invite records a witness invitation. Both users and the challenge must
// exist. Invitations are created pending and stay pending; nothing in the
// system accepts, declines or expires them.
func (s *InvitationService) Invite(ctx context.Context, fromUserID, toUserID, challengeID string) (*domain.Invitation, error) {
	var result domain.Invitation

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.FindUser(fromUserID) == nil || doc.FindUser(toUserID) == nil || doc.FindChallenge(challengeID) == nil {
			return domain.NewError(
				domain.ErrorCodeResourceNotFound,
				fmt.Errorf("invitation referents missing: from=%q to=%q challenge=%q", fromUserID, toUserID, challengeID),
				domain.WithMsg("user or challenge not found"),
			)
		}

		invitation := domain.Invitation{
			ID:          uuid.NewString(),
			FromUserID:  fromUserID,
			ToUserID:    toUserID,
			ChallengeID: challengeID,
			Status:      domain.InvitationStatusPending,
			CreatedAt:   time.Now().UTC(),
		}
		doc.Invitations = append(doc.Invitations, invitation)
		result = invitation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().
		Str("invitation_id", result.ID).
		Str("from_user_id", fromUserID).
		Str("to_user_id", toUserID).
		Str("challenge_id", challengeID).
		Msg("invitation sent")
	return &result, nil
}

// ListForUser returns invitations addressed to the user, in store order.
func (s *InvitationService) ListForUser(ctx context.Context, userID string) ([]domain.Invitation, error) {
	result := make([]domain.Invitation, 0)

	err := s.store.View(ctx, func(doc *domain.Document) error {
		for _, inv := range doc.Invitations {
			if inv.ToUserID == userID {
				result = append(result, inv)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
