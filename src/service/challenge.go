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

type ChallengeService struct {
	store *repository.Store
}

func NewChallengeService(store *repository.Store) *ChallengeService {
	return &ChallengeService{store: store}
}

// logger wraps the execution context with component info
func (s *ChallengeService) logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("service", "challenge").Logger()
	return &l
}

func challengeNotFound(id string) domain.DomainError {
	return domain.NewError(
		domain.ErrorCodeResourceNotFound,
		fmt.Errorf("challenge %q not found", id),
		domain.WithMsg("challenge not found"),
	)
}

// Create stores a new challenge owned by userID with zeroed progress and
// penalty counters. charityID is kept as-is, unvalidated.
func (s *ChallengeService) Create(ctx context.Context, userID, title, description string, duration, penalty int, charityID string) (*domain.Challenge, error) {
	var result domain.Challenge

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		challenge := domain.Challenge{
			ID:           uuid.NewString(),
			UserID:       userID,
			Title:        title,
			Description:  description,
			Duration:     duration,
			Penalty:      penalty,
			CharityID:    charityID,
			Progress:     0,
			TotalPenalty: 0,
			Witnesses:    []string{},
			CreatedAt:    time.Now().UTC(),
		}
		doc.Challenges = append(doc.Challenges, challenge)
		result = challenge
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().
		Str("challenge_id", result.ID).
		Str("user_id", userID).
		Int("duration", duration).
		Int("penalty", penalty).
		Msg("challenge created")
	return &result, nil
}

// AddWitness grants witnessID permission to record penalties. Adding a user
// who is already a witness is a no-op.
func (s *ChallengeService) AddWitness(ctx context.Context, challengeID, witnessID string) (*domain.Challenge, error) {
	var result domain.Challenge

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		challenge := doc.FindChallenge(challengeID)
		if challenge == nil {
			return challengeNotFound(challengeID)
		}
		if doc.FindUser(witnessID) == nil {
			return domain.NewError(
				domain.ErrorCodeResourceNotFound,
				fmt.Errorf("witness user %q not found", witnessID),
				domain.WithMsg("witness user not found"),
			)
		}

		if !challenge.HasWitness(witnessID) {
			challenge.Witnesses = append(challenge.Witnesses, witnessID)
		}
		result = *challenge
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("challenge_id", challengeID).Str("witness_id", witnessID).Msg("witness added")
	return &result, nil
}

// RecordPenalty marks a missed check-in: progress advances by one (clamped
// at the duration), the challenge's penalty amount is added to the running
// total, and a penalty event is appended. Only the owner or a witness may
// record one.
func (s *ChallengeService) RecordPenalty(ctx context.Context, challengeID, recordedBy string) (*domain.Challenge, *domain.PenaltyEvent, error) {
	var (
		resultChallenge domain.Challenge
		resultEvent     domain.PenaltyEvent
	)

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		challenge := doc.FindChallenge(challengeID)
		if challenge == nil {
			return challengeNotFound(challengeID)
		}
		if !challenge.CanRecordPenalty(recordedBy) {
			return domain.NewError(
				domain.ErrorCodeAuthPermissionDenied,
				fmt.Errorf("user %q is neither owner nor witness of challenge %q", recordedBy, challengeID),
				domain.WithMsg("only the challenge owner or a witness can record a penalty"),
			)
		}

		challenge.Progress = min(challenge.Progress+1, challenge.Duration)
		challenge.TotalPenalty += challenge.Penalty

		by := recordedBy
		if by == "" {
			by = challenge.UserID
		}
		event := domain.PenaltyEvent{
			ID:          uuid.NewString(),
			ChallengeID: challengeID,
			Date:        time.Now().UTC(),
			Amount:      challenge.Penalty,
			RecordedBy:  by,
		}
		doc.Penalties = append(doc.Penalties, event)

		resultChallenge = *challenge
		resultEvent = event
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger(ctx).Info().
		Str("challenge_id", challengeID).
		Str("recorded_by", resultEvent.RecordedBy).
		Int("amount", resultEvent.Amount).
		Int("progress", resultChallenge.Progress).
		Msg("penalty recorded")
	return &resultChallenge, &resultEvent, nil
}

// ConfirmPayment zeroes the accrued penalty total, deletes the challenge's
// penalty events and resets progress, restarting the challenge. Ownership is
// part of the lookup: a non-owner gets the same not-found as a bad id.
func (s *ChallengeService) ConfirmPayment(ctx context.Context, challengeID, userID string) (*domain.Challenge, error) {
	var result domain.Challenge

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		challenge := doc.FindChallenge(challengeID)
		if challenge == nil || challenge.UserID != userID {
			return domain.NewError(
				domain.ErrorCodeResourceNotFound,
				fmt.Errorf("challenge %q not found for user %q", challengeID, userID),
				domain.WithMsg("challenge not found or access denied"),
			)
		}

		challenge.TotalPenalty = 0
		challenge.Progress = 0

		remaining := doc.Penalties[:0]
		for _, p := range doc.Penalties {
			if p.ChallengeID != challengeID {
				remaining = append(remaining, p)
			}
		}
		doc.Penalties = remaining

		result = *challenge
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("challenge_id", challengeID).Str("user_id", userID).Msg("payment confirmed, penalties reset")
	return &result, nil
}

// ListForUser returns every challenge the user owns or witnesses, in store
// order.
func (s *ChallengeService) ListForUser(ctx context.Context, userID string) ([]domain.Challenge, error) {
	result := make([]domain.Challenge, 0)

	err := s.store.View(ctx, func(doc *domain.Document) error {
		for _, c := range doc.Challenges {
			if c.UserID == userID || c.HasWitness(userID) {
				result = append(result, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListPenalties returns the challenge's penalty events in store order.
func (s *ChallengeService) ListPenalties(ctx context.Context, challengeID string) ([]domain.PenaltyEvent, error) {
	result := make([]domain.PenaltyEvent, 0)

	err := s.store.View(ctx, func(doc *domain.Document) error {
		for _, p := range doc.Penalties {
			if p.ChallengeID == challengeID {
				result = append(result, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
