package events

import "time"

const PasswordResetRequestedTopic = "conta.auth.password_reset.requested.v1"

type PasswordResetRequestedEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	ResetToken string    `json:"reset_token"`
	OccurredAt time.Time `json:"occurred_at"`
}
