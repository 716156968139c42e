package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/repository"
	"github.com/roshdman/backend/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedUser inserts a user record directly, skipping the password hashing
// the identity service would do.
func seedUser(t *testing.T, store *repository.Store, id, name string) {
	t.Helper()
	err := store.Update(context.Background(), func(doc *domain.Document) error {
		doc.Users = append(doc.Users, domain.User{ID: id, Name: name, Email: name + "@x.com"})
		return nil
	})
	require.NoError(t, err)
}

func TestChallengeCreate_InitializesCounters(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	challenge, err := svc.Create(ctx, "u1", "Run daily", "30 minutes", 30, 5000, "charity1")
	require.NoError(t, err)

	assert.NotEmpty(t, challenge.ID)
	assert.Equal(t, "u1", challenge.UserID)
	assert.Equal(t, 0, challenge.Progress)
	assert.Equal(t, 0, challenge.TotalPenalty)
	assert.Empty(t, challenge.Witnesses)
	assert.False(t, challenge.CreatedAt.IsZero())
}

func TestRecordPenalty_ProgressClampedAtDuration(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	challenge, err := svc.Create(ctx, "u1", "Sleep early", "", 2, 1000, "charity1")
	require.NoError(t, err)

	var last *domain.Challenge
	for i := 0; i < 5; i++ {
		last, _, err = svc.RecordPenalty(ctx, challenge.ID, "u1")
		require.NoError(t, err)
	}

	assert.Equal(t, 2, last.Progress)
	assert.Equal(t, 5000, last.TotalPenalty)

	events, err := svc.ListPenalties(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Len(t, events, 5)
}

func TestRecordPenalty_OwnerOrWitnessOnly(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	seedUser(t, store, "u2", "Reza")

	challenge, err := svc.Create(ctx, "u1", "No sugar", "", 7, 2000, "charity1")
	require.NoError(t, err)

	_, _, err = svc.RecordPenalty(ctx, challenge.ID, "u2")
	require.Error(t, err)

	var domainErr domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus())

	_, err = svc.AddWitness(ctx, challenge.ID, "u2")
	require.NoError(t, err)

	updated, event, err := svc.RecordPenalty(ctx, challenge.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Progress)
	assert.Equal(t, "u2", event.RecordedBy)
	assert.Equal(t, 2000, event.Amount)
}

func TestRecordPenalty_UnknownChallenge(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)

	_, _, err := svc.RecordPenalty(testutil.Context(), "missing", "u1")
	require.Error(t, err)

	var domainErr domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus())
}

func TestAddWitness_Idempotent(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	seedUser(t, store, "u2", "Reza")

	challenge, err := svc.Create(ctx, "u1", "Read", "", 10, 1000, "charity2")
	require.NoError(t, err)

	_, err = svc.AddWitness(ctx, challenge.ID, "u2")
	require.NoError(t, err)

	updated, err := svc.AddWitness(ctx, challenge.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, updated.Witnesses)
}

func TestAddWitness_UnknownUser(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	challenge, err := svc.Create(ctx, "u1", "Read", "", 10, 1000, "charity2")
	require.NoError(t, err)

	_, err = svc.AddWitness(ctx, challenge.ID, "ghost")
	require.Error(t, err)

	var domainErr domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus())
}

func TestConfirmPayment_ResetsEverything(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	challenge, err := svc.Create(ctx, "u1", "Meditate", "", 5, 10000, "charity1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, err = svc.RecordPenalty(ctx, challenge.ID, "u1")
		require.NoError(t, err)
	}

	reset, err := svc.ConfirmPayment(ctx, challenge.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, reset.Progress)
	assert.Equal(t, 0, reset.TotalPenalty)

	events, err := svc.ListPenalties(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestConfirmPayment_NonOwnerGetsNotFound(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	challenge, err := svc.Create(ctx, "u1", "Meditate", "", 5, 10000, "charity1")
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, challenge.ID, "u2")
	require.Error(t, err)

	var domainErr domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus())
}

func TestConfirmPayment_LeavesOtherChallengesAlone(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	first, err := svc.Create(ctx, "u1", "First", "", 5, 1000, "charity1")
	require.NoError(t, err)
	second, err := svc.Create(ctx, "u1", "Second", "", 5, 1000, "charity1")
	require.NoError(t, err)

	_, _, err = svc.RecordPenalty(ctx, first.ID, "u1")
	require.NoError(t, err)
	_, _, err = svc.RecordPenalty(ctx, second.ID, "u1")
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(ctx, first.ID, "u1")
	require.NoError(t, err)

	events, err := svc.ListPenalties(ctx, second.ID)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestListForUser_IncludesWitnessedChallenges(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewChallengeService(store)
	ctx := testutil.Context()

	seedUser(t, store, "u2", "Reza")

	owned, err := svc.Create(ctx, "u2", "Own", "", 5, 1000, "charity1")
	require.NoError(t, err)

	witnessed, err := svc.Create(ctx, "u1", "Watch me", "", 5, 1000, "charity1")
	require.NoError(t, err)
	_, err = svc.AddWitness(ctx, witnessed.ID, "u2")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "u3", "Unrelated", "", 5, 1000, "charity1")
	require.NoError(t, err)

	challenges, err := svc.ListForUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, challenges, 2)
	assert.Equal(t, owned.ID, challenges[0].ID)
	assert.Equal(t, witnessed.ID, challenges[1].ID)
}
