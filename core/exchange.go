package core

import "time"

// Exchange is one human message paired with the assistant's reply. Exchanges
// are created atomically together with their tool attribution and are never
// mutated or individually deleted afterwards; only whole-session deletion is
// supported.
type Exchange struct {
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}
