package service

import (
	"context"
	"time"

	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/repository"
	"github.com/rs/zerolog"
)

// ProfileStats aggregates a user's own challenges; witnessed challenges do
// not count.
type ProfileStats struct {
	TotalChallenges     int `json:"totalChallenges"`
	ActiveChallenges    int `json:"activeChallenges"`
	CompletedChallenges int `json:"completedChallenges"`
	TotalPenalties      int `json:"totalPenalties"`
}

// DailyStat is one calendar day of the weekly breakdown.
type DailyStat struct {
	Date   string `json:"date"`
	Count  int    `json:"count"`
	Amount int    `json:"amount"`
}

// WeeklyStats covers the trailing seven calendar days, breakdown ordered
// oldest to newest with today last.
type WeeklyStats struct {
	WeeklyCount        int         `json:"weeklyCount"`
	WeeklyTotalPenalty int         `json:"weeklyTotalPenalty"`
	DailyBreakdown     []DailyStat `json:"dailyBreakdown"`
}

type StatisticsService struct {
	store *repository.Store
}

func NewStatisticsService(store *repository.Store) *StatisticsService {
	return &StatisticsService{store: store}
}

// logger wraps the execution context with component info
func (s *StatisticsService) logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("service", "statistics").Logger()
	return &l
}

// Profile computes lifetime counters over the user's own challenges.
func (s *StatisticsService) Profile(ctx context.Context, userID string) (*ProfileStats, error) {
	var stats ProfileStats

	err := s.store.View(ctx, func(doc *domain.Document) error {
		for _, c := range doc.Challenges {
			if c.UserID != userID {
				continue
			}
			stats.TotalChallenges++
			if c.Completed() {
				stats.CompletedChallenges++
			} else {
				stats.ActiveChallenges++
			}
			stats.TotalPenalties += c.TotalPenalty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Debug().Str("user_id", userID).Int("total", stats.TotalChallenges).Msg("profile stats computed")
	return &stats, nil
}

// Weekly computes penalty totals over the trailing seven calendar days for
// the user's own challenges. The cutoff is "now" minus seven days, computed
// once per request; the daily breakdown buckets events by UTC calendar date.
func (s *StatisticsService) Weekly(ctx context.Context, userID string) (*WeeklyStats, error) {
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -7)

	stats := WeeklyStats{DailyBreakdown: make([]DailyStat, 0, 7)}

	err := s.store.View(ctx, func(doc *domain.Document) error {
		owned := make(map[string]bool)
		for _, c := range doc.Challenges {
			if c.UserID == userID {
				owned[c.ID] = true
			}
		}

		events := make([]domain.PenaltyEvent, 0)
		for _, p := range doc.Penalties {
			if owned[p.ChallengeID] {
				events = append(events, p)
			}
		}

		for _, p := range events {
			if !p.Date.Before(cutoff) {
				stats.WeeklyCount++
				stats.WeeklyTotalPenalty += p.Amount
			}
		}

		for i := 6; i >= 0; i-- {
			day := now.AddDate(0, 0, -i)
			entry := DailyStat{Date: day.Format(time.DateOnly)}
			for _, p := range events {
				if sameDay(p.Date.UTC(), day) {
					entry.Count++
					entry.Amount += p.Amount
				}
			}
			stats.DailyBreakdown = append(stats.DailyBreakdown, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Debug().Str("user_id", userID).Int("weekly_count", stats.WeeklyCount).Msg("weekly stats computed")
	return &stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
