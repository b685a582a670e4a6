package economy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tomashops/bingobest/pkg/entities"
	economyRepo "github.com/tomashops/bingobest/pkg/repositories/economy"
)

var (
	ErrAccountExists            = errors.New("account already exists")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrInsufficientWithdrawable = errors.New("insufficient withdrawable funds")
	ErrNonPositiveAmount        = errors.New("amount must be positive")
	ErrSessionNotActive         = errors.New("session is not active")
)

// Service is the authoritative ledger for the game economy. It owns the
// precondition-check-then-mutate discipline: every operation validates fully
// before touching any balance, so a failed call leaves no partial effect.
//
// A single mutex serializes mutating operations. The original design ran on
// one event loop and got per-call atomicity for free; a global lock buys the
// same guarantee here and the expected throughput is low.
type Service struct {
	repo economyRepo.Repository
	mu   sync.Mutex
}

// NewService creates a new economy service
func NewService(repo economyRepo.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateAccount creates a new player account. The initial balance lands in
// withdrawable funds; bonus funds start at zero. Creating an account that
// already exists fails rather than silently overwriting it.
func (s *Service) CreateAccount(ctx context.Context, playerID string, initialBalance entities.Cents) (*entities.PlayerAccount, error) {
	if initialBalance < 0 {
		return nil, ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.repo.GetAccount(ctx, playerID)
	if err == nil {
		log.Printf("[ECONOMY] Refusing to re-create existing account %s", playerID)
		return nil, ErrAccountExists
	}
	if !errors.Is(err, economyRepo.ErrAccountNotFound) {
		return nil, err
	}

	account := &entities.PlayerAccount{
		ID:                  playerID,
		WithdrawableBalance: initialBalance,
		CreatedAt:           time.Now(),
	}
	account.RecalcBalance()

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	log.Printf("[ECONOMY] Created account %s with starting balance %s", playerID, initialBalance)
	return account, nil
}

// Account retrieves a player account snapshot
func (s *Service) Account(ctx context.Context, playerID string) (*entities.PlayerAccount, error) {
	return s.repo.GetAccount(ctx, playerID)
}

// Deposit credits real money to a player. Deposits always land in
// withdrawable funds.
func (s *Service) Deposit(ctx context.Context, playerID string, amount entities.Cents, description string) (*entities.PlayerAccount, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.repo.GetAccount(ctx, playerID)
	if err != nil {
		log.Printf("[ECONOMY] Deposit failed, no account for %s: %v", playerID, err)
		return nil, err
	}

	account.WithdrawableBalance += amount
	account.TotalDeposited += amount
	account.RecalcBalance()

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	log.Printf("[ECONOMY] Deposit %s for %s, balance now %s", amount, playerID, account.Balance)

	s.recordEntry(ctx, &entities.LedgerEntry{
		PlayerID:     playerID,
		Amount:       amount,
		Type:         entities.EntryTypeDeposit,
		Description:  description,
		BalanceAfter: account.Balance,
	})

	return account, nil
}

// ChargeEntryFee debits a game entry fee from a player and credits it to the
// house. Withdrawable funds are consumed first; any remainder comes out of
// bonus funds. The balance precheck plus integer cents guarantee the bonus
// component never goes negative.
func (s *Service) ChargeEntryFee(ctx context.Context, playerID string, fee entities.Cents, sessionID string) (*entities.PlayerAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.chargeEntryFee(ctx, playerID, fee, sessionID)
}

// chargeEntryFee is ChargeEntryFee without the lock, for use by StartSession.
func (s *Service) chargeEntryFee(ctx context.Context, playerID string, fee entities.Cents, sessionID string) (*entities.PlayerAccount, error) {
	if fee <= 0 {
		return nil, ErrNonPositiveAmount
	}

	account, err := s.repo.GetAccount(ctx, playerID)
	if err != nil {
		log.Printf("[ECONOMY] Entry fee failed, no account for %s: %v", playerID, err)
		return nil, err
	}

	if !account.CanAfford(fee) {
		log.Printf("[ECONOMY] Entry fee %s refused for %s, balance %s", fee, playerID, account.Balance)
		return nil, ErrInsufficientFunds
	}

	// Withdrawable first, remainder from bonus
	fromWithdrawable := fee
	if fromWithdrawable > account.WithdrawableBalance {
		fromWithdrawable = account.WithdrawableBalance
	}
	account.WithdrawableBalance -= fromWithdrawable
	account.BonusBalance -= fee - fromWithdrawable

	account.TotalFeesPaid += fee
	account.GamesPlayed++
	account.RecalcBalance()

	house, err := s.repo.GetHouse(ctx)
	if err != nil {
		return nil, err
	}
	house.TotalFeesCollected += fee
	house.NetProfit += fee
	house.ActiveGames++

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	if err := s.repo.SaveHouse(ctx, house); err != nil {
		return nil, err
	}

	log.Printf("[ECONOMY] Entry fee %s charged to %s (withdrawable %s, bonus %s)",
		fee, playerID, account.WithdrawableBalance, account.BonusBalance)

	s.recordEntry(ctx, &entities.LedgerEntry{
		PlayerID:     playerID,
		Amount:       -fee,
		Type:         entities.EntryTypeEntryFee,
		ReferenceID:  sessionID,
		Description:  "game entry fee",
		BalanceAfter: account.Balance,
	})

	return account, nil
}

// StartSession charges the entry fee and opens a new active game session.
// If the fee cannot be charged no session is created, and the fee is never
// charged twice.
func (s *Service) StartSession(ctx context.Context, playerID string, entryFee, prizePool entities.Cents) (*entities.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &entities.GameSession{
		ID:        uuid.New().String(),
		PlayerID:  playerID,
		EntryFee:  entryFee,
		PrizePool: prizePool,
		StartTime: time.Now(),
		Status:    entities.SessionActive,
	}

	if _, err := s.chargeEntryFee(ctx, playerID, entryFee, session.ID); err != nil {
		return nil, fmt.Errorf("error charging entry fee: %w", err)
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("[ECONOMY] Session %s started for %s (fee %s, prize pool %s)",
		session.ID, playerID, entryFee, prizePool)

	return session, nil
}

// AwardWin pays a prize to the session's player and closes the session.
// Winnings always land in withdrawable funds.
func (s *Service) AwardWin(ctx context.Context, sessionID string, prize entities.Cents) (*entities.GameSession, error) {
	if prize <= 0 {
		return nil, ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		log.Printf("[ECONOMY] Win refused, unknown session %s: %v", sessionID, err)
		return nil, err
	}

	if !session.IsActive() {
		log.Printf("[ECONOMY] Win refused, session %s is %s", sessionID, session.Status)
		return nil, ErrSessionNotActive
	}

	account, err := s.repo.GetAccount(ctx, session.PlayerID)
	if err != nil {
		log.Printf("[ECONOMY] Win refused, no account for %s: %v", session.PlayerID, err)
		return nil, err
	}

	account.WithdrawableBalance += prize
	account.TotalWinnings += prize
	account.GamesWon++
	account.RecalcBalance()

	house, err := s.repo.GetHouse(ctx)
	if err != nil {
		return nil, err
	}
	house.TotalPrizesPaid += prize
	house.NetProfit -= prize
	house.ActiveGames--

	session.Status = entities.SessionCompleted
	session.EndTime = time.Now()
	session.Winner = session.PlayerID
	session.PrizeAmount = prize

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	if err := s.repo.SaveHouse(ctx, house); err != nil {
		return nil, err
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("[ECONOMY] Win %s paid to %s for session %s, balance now %s",
		prize, session.PlayerID, sessionID, account.Balance)

	s.recordEntry(ctx, &entities.LedgerEntry{
		PlayerID:     session.PlayerID,
		Amount:       prize,
		Type:         entities.EntryTypePrize,
		ReferenceID:  sessionID,
		Description:  "game prize",
		BalanceAfter: account.Balance,
	})

	return session, nil
}

// CancelSession closes an active session without a payout. The house keeps
// the entry fee, so the fee and prize counters stay monotonic and NetProfit
// stays reconciled; only the active game count is released.
func (s *Service) CancelSession(ctx context.Context, sessionID string) (*entities.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.IsActive() {
		return nil, ErrSessionNotActive
	}

	house, err := s.repo.GetHouse(ctx)
	if err != nil {
		return nil, err
	}
	house.ActiveGames--

	session.Status = entities.SessionCancelled
	session.EndTime = time.Now()

	if err := s.repo.SaveHouse(ctx, house); err != nil {
		return nil, err
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("[ECONOMY] Session %s cancelled", sessionID)
	return session, nil
}

// Withdraw cashes out withdrawable funds. Bonus funds never count toward
// eligibility, even when the total balance would cover the amount; that is
// the core business rule of the whole economy.
func (s *Service) Withdraw(ctx context.Context, playerID string, amount entities.Cents) (*entities.PlayerAccount, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.repo.GetAccount(ctx, playerID)
	if err != nil {
		log.Printf("[ECONOMY] Withdrawal failed, no account for %s: %v", playerID, err)
		return nil, err
	}

	if !account.CanWithdraw(amount) {
		log.Printf("[ECONOMY] Withdrawal %s refused for %s, withdrawable %s (bonus %s is not eligible)",
			amount, playerID, account.WithdrawableBalance, account.BonusBalance)
		return nil, ErrInsufficientWithdrawable
	}

	account.WithdrawableBalance -= amount
	account.RecalcBalance()

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	log.Printf("[ECONOMY] Withdrawal %s for %s, balance now %s", amount, playerID, account.Balance)

	s.recordEntry(ctx, &entities.LedgerEntry{
		PlayerID:     playerID,
		Amount:       -amount,
		Type:         entities.EntryTypeWithdrawal,
		Description:  "cash withdrawal",
		BalanceAfter: account.Balance,
	})

	return account, nil
}

// AddBonus credits promotional funds to a player. Bonus credits land in the
// bonus balance only and are excluded from withdrawal eligibility.
func (s *Service) AddBonus(ctx context.Context, playerID string, amount entities.Cents, reason string) (*entities.PlayerAccount, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.repo.GetAccount(ctx, playerID)
	if err != nil {
		log.Printf("[ECONOMY] Bonus failed, no account for %s: %v", playerID, err)
		return nil, err
	}

	account.BonusBalance += amount
	account.RecalcBalance()

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	log.Printf("[ECONOMY] Bonus %s (%s) for %s, balance now %s", amount, reason, playerID, account.Balance)

	s.recordEntry(ctx, &entities.LedgerEntry{
		PlayerID:     playerID,
		Amount:       amount,
		Type:         entities.EntryTypeBonus,
		Description:  reason,
		BalanceAfter: account.Balance,
	})

	return account, nil
}

// House returns a copy of the house account snapshot
func (s *Service) House(ctx context.Context) (*entities.HouseAccount, error) {
	return s.repo.GetHouse(ctx)
}

// Stats returns aggregate counts across the economy
func (s *Service) Stats(ctx context.Context) (*GameStats, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	house, err := s.repo.GetHouse(ctx)
	if err != nil {
		return nil, err
	}

	stats := &GameStats{
		TotalPlayers:  len(accounts),
		TotalSessions: len(sessions),
		House:         house,
	}

	for _, session := range sessions {
		switch session.Status {
		case entities.SessionActive:
			stats.ActiveSessions++
		case entities.SessionCompleted:
			stats.CompletedSessions++
		case entities.SessionCancelled:
			stats.CancelledSessions++
		}
	}

	return stats, nil
}

// Entries retrieves recent ledger entries for a player
func (s *Service) Entries(ctx context.Context, playerID string, limit int) ([]*entities.LedgerEntry, error) {
	return s.repo.GetEntries(ctx, playerID, limit)
}

// Reset clears all accounts and sessions and zeroes the house account.
// Intended for test isolation.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Printf("[ECONOMY] Resetting all economy state")
	return s.repo.Reset(ctx)
}

// recordEntry writes an audit entry. The fund movement has already been
// committed, so a failed audit write is logged rather than unwound.
func (s *Service) recordEntry(ctx context.Context, entry *entities.LedgerEntry) {
	entry.ID = uuid.New().String()
	entry.Timestamp = time.Now()

	if err := s.repo.AddEntry(ctx, entry); err != nil {
		log.Printf("[ECONOMY] Error recording %s entry for %s: %v", entry.Type, entry.PlayerID, err)
	}
}
