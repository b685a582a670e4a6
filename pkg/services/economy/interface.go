package economy

import (
	"context"

	"github.com/tomashops/bingobest/pkg/entities"
)

// GameStats aggregates counts across the whole economy for dashboards.
type GameStats struct {
	TotalPlayers      int
	TotalSessions     int
	ActiveSessions    int
	CompletedSessions int
	CancelledSessions int
	House             *entities.HouseAccount
}

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_economy_service
type Ledger interface {
	CreateAccount(ctx context.Context, playerID string, initialBalance entities.Cents) (*entities.PlayerAccount, error)
	Account(ctx context.Context, playerID string) (*entities.PlayerAccount, error)
	Deposit(ctx context.Context, playerID string, amount entities.Cents, description string) (*entities.PlayerAccount, error)
	ChargeEntryFee(ctx context.Context, playerID string, fee entities.Cents, sessionID string) (*entities.PlayerAccount, error)
	StartSession(ctx context.Context, playerID string, entryFee, prizePool entities.Cents) (*entities.GameSession, error)
	AwardWin(ctx context.Context, sessionID string, prize entities.Cents) (*entities.GameSession, error)
	CancelSession(ctx context.Context, sessionID string) (*entities.GameSession, error)
	Withdraw(ctx context.Context, playerID string, amount entities.Cents) (*entities.PlayerAccount, error)
	AddBonus(ctx context.Context, playerID string, amount entities.Cents, reason string) (*entities.PlayerAccount, error)
	House(ctx context.Context) (*entities.HouseAccount, error)
	Stats(ctx context.Context) (*GameStats, error)
	Entries(ctx context.Context, playerID string, limit int) ([]*entities.LedgerEntry, error)
	Reset(ctx context.Context) error
}
