package economy

import (
	"context"

	"github.com/tomashops/bingobest/pkg/entities"
)

// Repository defines the interface for economy data operations
type Repository interface {
	// GetAccount retrieves a player account by ID
	GetAccount(ctx context.Context, playerID string) (*entities.PlayerAccount, error)

	// SaveAccount creates or updates a player account
	SaveAccount(ctx context.Context, account *entities.PlayerAccount) error

	// ListAccounts retrieves all player accounts
	ListAccounts(ctx context.Context) ([]*entities.PlayerAccount, error)

	// GetSession retrieves a game session by ID
	GetSession(ctx context.Context, sessionID string) (*entities.GameSession, error)

	// SaveSession creates or updates a game session
	SaveSession(ctx context.Context, session *entities.GameSession) error

	// ListSessions retrieves all game sessions
	ListSessions(ctx context.Context) ([]*entities.GameSession, error)

	// GetHouse retrieves the house account snapshot
	GetHouse(ctx context.Context) (*entities.HouseAccount, error)

	// SaveHouse updates the house account
	SaveHouse(ctx context.Context, house *entities.HouseAccount) error

	// AddEntry records a new ledger entry
	AddEntry(ctx context.Context, entry *entities.LedgerEntry) error

	// GetEntries retrieves recent ledger entries for a player
	GetEntries(ctx context.Context, playerID string, limit int) ([]*entities.LedgerEntry, error)

	// GetEntriesByType retrieves entries of a specific type for a player
	GetEntriesByType(ctx context.Context, playerID string, entryType entities.EntryType, limit int) ([]*entities.LedgerEntry, error)

	// Reset clears all accounts, sessions and entries and zeroes the house
	Reset(ctx context.Context) error
}
