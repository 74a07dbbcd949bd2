package models

// Profile is the raw /auth/me response. Balance, Transactions and Status
// are optional on the wire; FromProfile fills in the documented defaults.
type Profile struct {
	UserID       int64         `json:"user_id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	Roles        []string      `json:"roles,omitempty"`
	Balance      *int64        `json:"balance,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
	Status       string        `json:"status,omitempty"`
}
