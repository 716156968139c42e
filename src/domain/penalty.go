package domain

import "time"

// PenaltyEvent records a single missed check-in. Amount is copied from the
// challenge's penalty at recording time so later edits cannot rewrite
// history.
type PenaltyEvent struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challengeId"`
	Date        time.Time `json:"date"`
	Amount      int       `json:"amount"`
	RecordedBy  string    `json:"recordedBy"`
}
