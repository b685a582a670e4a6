package archive

import (
	"time"

	"github.com/tomashops/bingobest/pkg/entities"
)

// ESSession represents a closed game session document in Elasticsearch
type ESSession struct {
	SessionID   string    `json:"session_id"`
	PlayerID    string    `json:"player_id"`
	EntryFee    int64     `json:"entry_fee"`
	PrizePool   int64     `json:"prize_pool"`
	PrizeAmount int64     `json:"prize_amount"`
	Winner      string    `json:"winner,omitempty"`
	Status      string    `json:"status"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// newESSession converts a closed session into its archive document
func newESSession(session *entities.GameSession) *ESSession {
	return &ESSession{
		SessionID:   session.ID,
		PlayerID:    session.PlayerID,
		EntryFee:    int64(session.EntryFee),
		PrizePool:   int64(session.PrizePool),
		PrizeAmount: int64(session.PrizeAmount),
		Winner:      session.Winner,
		Status:      string(session.Status),
		StartTime:   session.StartTime,
		EndTime:     session.EndTime,
	}
}
