package service

import (
	"context"
	"testing"
	"time"

	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/repository"
	"github.com/roshdman/backend/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPenalty inserts a penalty event with a chosen timestamp, which the
// challenge service never does.
func seedPenalty(t *testing.T, store *repository.Store, challengeID string, amount int, date time.Time) {
	t.Helper()
	err := store.Update(context.Background(), func(doc *domain.Document) error {
		doc.Penalties = append(doc.Penalties, domain.PenaltyEvent{
			ID:          "p-" + date.Format(time.RFC3339Nano),
			ChallengeID: challengeID,
			Date:        date,
			Amount:      amount,
			RecordedBy:  "u1",
		})
		return nil
	})
	require.NoError(t, err)
}

func TestProfile_CountsOwnChallengesOnly(t *testing.T) {
	store := testutil.SetupTestStore(t)
	challenges := NewChallengeService(store)
	svc := NewStatisticsService(store)
	ctx := testutil.Context()

	seedUser(t, store, "u1", "Ali")

	active, err := challenges.Create(ctx, "u1", "Active", "", 5, 1000, "charity1")
	require.NoError(t, err)

	done, err := challenges.Create(ctx, "u1", "Done", "", 1, 2000, "charity1")
	require.NoError(t, err)
	_, _, err = challenges.RecordPenalty(ctx, done.ID, "u1")
	require.NoError(t, err)

	// A challenge u1 merely witnesses must not count
	other, err := challenges.Create(ctx, "u2", "Other", "", 5, 1000, "charity1")
	require.NoError(t, err)
	_, err = challenges.AddWitness(ctx, other.ID, "u1")
	require.NoError(t, err)

	_, _, err = challenges.RecordPenalty(ctx, active.ID, "u1")
	require.NoError(t, err)

	stats, err := svc.Profile(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalChallenges)
	assert.Equal(t, 1, stats.ActiveChallenges)
	assert.Equal(t, 1, stats.CompletedChallenges)
	assert.Equal(t, 3000, stats.TotalPenalties)
}

func TestWeekly_ExcludesEventsOlderThanSevenDays(t *testing.T) {
	store := testutil.SetupTestStore(t)
	challenges := NewChallengeService(store)
	svc := NewStatisticsService(store)
	ctx := testutil.Context()

	challenge, err := challenges.Create(ctx, "u1", "Run", "", 30, 1000, "charity1")
	require.NoError(t, err)

	now := time.Now().UTC()
	seedPenalty(t, store, challenge.ID, 1000, now.AddDate(0, 0, -1))
	seedPenalty(t, store, challenge.ID, 2000, now.AddDate(0, 0, -3))
	seedPenalty(t, store, challenge.ID, 4000, now.AddDate(0, 0, -30))

	stats, err := svc.Weekly(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.WeeklyCount)
	assert.Equal(t, 3000, stats.WeeklyTotalPenalty)

	// The old event still shows up in the unrestricted penalty list
	events, err := challenges.ListPenalties(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestWeekly_DailyBreakdownOrderedOldestToNewest(t *testing.T) {
	store := testutil.SetupTestStore(t)
	challenges := NewChallengeService(store)
	svc := NewStatisticsService(store)
	ctx := testutil.Context()

	challenge, err := challenges.Create(ctx, "u1", "Run", "", 30, 1000, "charity1")
	require.NoError(t, err)

	now := time.Now().UTC()
	seedPenalty(t, store, challenge.ID, 1000, now)
	seedPenalty(t, store, challenge.ID, 2000, now)
	seedPenalty(t, store, challenge.ID, 3000, now.AddDate(0, 0, -2))

	stats, err := svc.Weekly(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stats.DailyBreakdown, 7)

	today := stats.DailyBreakdown[6]
	assert.Equal(t, now.Format(time.DateOnly), today.Date)
	assert.Equal(t, 2, today.Count)
	assert.Equal(t, 3000, today.Amount)

	twoDaysAgo := stats.DailyBreakdown[4]
	assert.Equal(t, now.AddDate(0, 0, -2).Format(time.DateOnly), twoDaysAgo.Date)
	assert.Equal(t, 1, twoDaysAgo.Count)
	assert.Equal(t, 3000, twoDaysAgo.Amount)

	oldest := stats.DailyBreakdown[0]
	assert.Equal(t, now.AddDate(0, 0, -6).Format(time.DateOnly), oldest.Date)
	assert.Equal(t, 0, oldest.Count)
}

func TestWeekly_IgnoresOtherUsersChallenges(t *testing.T) {
	store := testutil.SetupTestStore(t)
	challenges := NewChallengeService(store)
	svc := NewStatisticsService(store)
	ctx := testutil.Context()

	mine, err := challenges.Create(ctx, "u1", "Mine", "", 30, 1000, "charity1")
	require.NoError(t, err)
	theirs, err := challenges.Create(ctx, "u2", "Theirs", "", 30, 1000, "charity1")
	require.NoError(t, err)

	now := time.Now().UTC()
	seedPenalty(t, store, mine.ID, 1000, now)
	seedPenalty(t, store, theirs.ID, 9000, now)

	stats, err := svc.Weekly(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.WeeklyCount)
	assert.Equal(t, 1000, stats.WeeklyTotalPenalty)
}
