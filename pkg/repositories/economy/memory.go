package economy

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tomashops/bingobest/pkg/entities"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrSessionNotFound = errors.New("session not found")
)

// MemoryRepository implements Repository using in-memory storage. This is
// the authoritative store for the economy: all state is lost on restart.
type MemoryRepository struct {
	accounts map[string]*entities.PlayerAccount
	sessions map[string]*entities.GameSession
	entries  map[string][]*entities.LedgerEntry
	house    entities.HouseAccount
	mu       sync.RWMutex
}

// NewMemoryRepository creates a new in-memory economy repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		accounts: make(map[string]*entities.PlayerAccount),
		sessions: make(map[string]*entities.GameSession),
		entries:  make(map[string][]*entities.LedgerEntry),
	}
}

// GetAccount retrieves a player account by ID
func (r *MemoryRepository) GetAccount(ctx context.Context, playerID string) (*entities.PlayerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[playerID]
	if !exists {
		return nil, ErrAccountNotFound
	}

	// Return a copy to prevent concurrent modification
	accountCopy := *account
	return &accountCopy, nil
}

// SaveAccount creates or updates a player account
func (r *MemoryRepository) SaveAccount(ctx context.Context, account *entities.PlayerAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.LastUpdated = time.Now()

	// Store a copy to prevent concurrent modification
	accountCopy := *account
	r.accounts[account.ID] = &accountCopy

	return nil
}

// ListAccounts retrieves all player accounts
func (r *MemoryRepository) ListAccounts(ctx context.Context) ([]*entities.PlayerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*entities.PlayerAccount, 0, len(r.accounts))
	for _, account := range r.accounts {
		accountCopy := *account
		accounts = append(accounts, &accountCopy)
	}

	return accounts, nil
}

// GetSession retrieves a game session by ID
func (r *MemoryRepository) GetSession(ctx context.Context, sessionID string) (*entities.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}

	sessionCopy := *session
	return &sessionCopy, nil
}

// SaveSession creates or updates a game session
func (r *MemoryRepository) SaveSession(ctx context.Context, session *entities.GameSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessionCopy := *session
	r.sessions[session.ID] = &sessionCopy

	return nil
}

// ListSessions retrieves all game sessions
func (r *MemoryRepository) ListSessions(ctx context.Context) ([]*entities.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*entities.GameSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessionCopy := *session
		sessions = append(sessions, &sessionCopy)
	}

	return sessions, nil
}

// GetHouse retrieves the house account snapshot
func (r *MemoryRepository) GetHouse(ctx context.Context) (*entities.HouseAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	houseCopy := r.house
	return &houseCopy, nil
}

// SaveHouse updates the house account
func (r *MemoryRepository) SaveHouse(ctx context.Context, house *entities.HouseAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	house.LastUpdated = time.Now()
	r.house = *house

	return nil
}

// AddEntry records a new ledger entry
func (r *MemoryRepository) AddEntry(ctx context.Context, entry *entities.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Generate a UUID if not provided
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	// Set timestamp if not provided
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	entryCopy := *entry

	if _, exists := r.entries[entry.PlayerID]; !exists {
		r.entries[entry.PlayerID] = make([]*entities.LedgerEntry, 0)
	}

	r.entries[entry.PlayerID] = append(r.entries[entry.PlayerID], &entryCopy)

	return nil
}

// GetEntries retrieves recent ledger entries for a player
func (r *MemoryRepository) GetEntries(ctx context.Context, playerID string, limit int) ([]*entities.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, exists := r.entries[playerID]
	if !exists {
		return make([]*entities.LedgerEntry, 0), nil
	}

	// Get the most recent entries up to the limit
	result := make([]*entities.LedgerEntry, 0, limit)

	start := 0
	if len(entries) > limit {
		start = len(entries) - limit
	}

	for i := start; i < len(entries); i++ {
		entryCopy := *entries[i]
		result = append(result, &entryCopy)
	}

	return result, nil
}

// GetEntriesByType retrieves entries of a specific type for a player
func (r *MemoryRepository) GetEntriesByType(ctx context.Context, playerID string, entryType entities.EntryType, limit int) ([]*entities.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, exists := r.entries[playerID]
	if !exists {
		return make([]*entities.LedgerEntry, 0), nil
	}

	// Filter entries by type, most recent first
	filtered := make([]*entities.LedgerEntry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(filtered) < limit; i-- {
		if entries[i].Type == entryType {
			entryCopy := *entries[i]
			filtered = append(filtered, &entryCopy)
		}
	}

	return filtered, nil
}

// Reset clears all accounts, sessions and entries and zeroes the house
func (r *MemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = make(map[string]*entities.PlayerAccount)
	r.sessions = make(map[string]*entities.GameSession)
	r.entries = make(map[string][]*entities.LedgerEntry)
	r.house = entities.HouseAccount{}

	return nil
}
