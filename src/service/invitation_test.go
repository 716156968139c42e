package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvite_RequiresAllReferents(t *testing.T) {
	store := testutil.SetupTestStore(t)
	challenges := NewChallengeService(store)
	svc := NewInvitationService(store)
	ctx := testutil.Context()

	seedUser(t, store, "u1", "Ali")
	seedUser(t, store, "u2", "Reza")

	challenge, err := challenges.Create(ctx, "u1", "Walk", "", 7, 500, "charity1")
	require.NoError(t, err)

	cases := []struct {
		name string
		from string
		to   string
		ch   string
	}{
		{"unknown sender", "ghost", "u2", challenge.ID},
		{"unknown recipient", "u1", "ghost", challenge.ID},
		{"unknown challenge", "u1", "u2", "ghost"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Invite(ctx, tc.from, tc.to, tc.ch)
			require.Error(t, err)

			var domainErr domain.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus())
		})
	}
}

func TestInvite_CreatedPending(t *testing.T) {
	store := testutil.SetupTestStore(t)
	challenges := NewChallengeService(store)
	svc := NewInvitationService(store)
	ctx := testutil.Context()

	seedUser(t, store, "u1", "Ali")
	seedUser(t, store, "u2", "Reza")

	challenge, err := challenges.Create(ctx, "u1", "Walk", "", 7, 500, "charity1")
	require.NoError(t, err)

	invitation, err := svc.Invite(ctx, "u1", "u2", challenge.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, invitation.ID)
	assert.Equal(t, domain.InvitationStatusPending, invitation.Status)
	assert.False(t, invitation.CreatedAt.IsZero())
}

func TestInvitationListForUser_FiltersByRecipient(t *testing.T) {
	store := testutil.SetupTestStore(t)
	challenges := NewChallengeService(store)
	svc := NewInvitationService(store)
	ctx := testutil.Context()

	seedUser(t, store, "u1", "Ali")
	seedUser(t, store, "u2", "Reza")
	seedUser(t, store, "u3", "Sara")

	challenge, err := challenges.Create(ctx, "u1", "Walk", "", 7, 500, "charity1")
	require.NoError(t, err)

	_, err = svc.Invite(ctx, "u1", "u2", challenge.ID)
	require.NoError(t, err)
	_, err = svc.Invite(ctx, "u1", "u3", challenge.ID)
	require.NoError(t, err)

	forReza, err := svc.ListForUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, forReza, 1)
	assert.Equal(t, "u2", forReza[0].ToUserID)

	forNobody, err := svc.ListForUser(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, forNobody)
}
