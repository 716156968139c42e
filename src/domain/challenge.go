package domain

import (
	"slices"
	"time"
)

// Challenge is a self-commitment: Duration check-ins, Penalty accrued per
// recorded miss. CharityID is a free reference; it is not validated against
// the charity collection.
type Challenge struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     int       `json:"duration"`
	Penalty      int       `json:"penalty"`
	CharityID    string    `json:"charityId"`
	Progress     int       `json:"progress"`
	TotalPenalty int       `json:"totalPenalty"`
	Witnesses    []string  `json:"witnesses"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasWitness reports whether userID is in the witness set.
func (c *Challenge) HasWitness(userID string) bool {
	return slices.Contains(c.Witnesses, userID)
}

// CanRecordPenalty reports whether userID may record a penalty: the owner
// or any witness, nobody else.
func (c *Challenge) CanRecordPenalty(userID string) bool {
	return c.UserID == userID || c.HasWitness(userID)
}

// Completed reports whether the challenge reached its duration.
func (c *Challenge) Completed() bool {
	return c.Progress >= c.Duration
}
