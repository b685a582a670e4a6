package entities

import "time"

// SessionStatus represents the lifecycle state of a game session
type SessionStatus string

const (
	SessionActive    SessionStatus = "ACTIVE"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionCancelled SessionStatus = "CANCELLED"
)

// GameSession represents a single paid bingo round funded by a player's
// entry fee. Sessions move ACTIVE -> COMPLETED when a win is awarded, or
// ACTIVE -> CANCELLED when closed without a payout.
type GameSession struct {
	ID          string        // UUID assigned by the ledger
	PlayerID    string        // Owning player
	EntryFee    Cents         // Fixed at creation
	PrizePool   Cents         // Fixed at creation
	StartTime   time.Time
	EndTime     time.Time     // Zero until the session is closed
	Status      SessionStatus
	Winner      string        // Set when the session completes
	PrizeAmount Cents         // Set when the session completes
}

// IsActive reports whether the session can still accept a win or cancel.
func (s *GameSession) IsActive() bool {
	return s.Status == SessionActive
}

// IsClosed reports whether the session has reached a terminal state.
func (s *GameSession) IsClosed() bool {
	return s.Status == SessionCompleted || s.Status == SessionCancelled
}
