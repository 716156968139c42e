package domain

import "time"

// InvitationStatusPending is the only status the system ever assigns; there
// is no accept/decline/expire transition.
const InvitationStatusPending = "pending"

// Invitation asks another user to witness a challenge.
type Invitation struct {
	ID          string    `json:"id"`
	FromUserID  string    `json:"fromUserId"`
	ToUserID    string    `json:"toUserId"`
	ChallengeID string    `json:"challengeId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
