package entities

import (
	"time"
)

// PlayerAccount represents a player's funds in the game economy, split into
// withdrawable funds (deposits and winnings) and bonus funds (promotional
// credits, spendable but never cashed out).
type PlayerAccount struct {
	ID                  string // Player identifier
	Balance             Cents  // Total usable funds, always WithdrawableBalance + BonusBalance
	WithdrawableBalance Cents  // Funds eligible for withdrawal
	BonusBalance        Cents  // Promotional funds, play only

	// Lifetime statistics, never decremented
	TotalDeposited Cents
	TotalWinnings  Cents
	TotalFeesPaid  Cents
	GamesPlayed    int
	GamesWon       int

	CreatedAt   time.Time
	LastUpdated time.Time
}

// RecalcBalance recomputes Balance from its two components. Balance is never
// an independent source of truth; every mutation site calls this.
func (a *PlayerAccount) RecalcBalance() {
	a.Balance = a.WithdrawableBalance + a.BonusBalance
}

// CanAfford reports whether the account's total funds cover the amount.
func (a *PlayerAccount) CanAfford(amount Cents) bool {
	return a.Balance >= amount
}

// CanWithdraw reports whether the amount is covered by withdrawable funds
// alone. Bonus funds never count toward withdrawal eligibility.
func (a *PlayerAccount) CanWithdraw(amount Cents) bool {
	return a.WithdrawableBalance >= amount
}

// WinRate returns the player's win rate as a percentage.
func (a *PlayerAccount) WinRate() float64 {
	if a.GamesPlayed == 0 {
		return 0.0
	}
	return float64(a.GamesWon) / float64(a.GamesPlayed) * 100.0
}

// NetProfit returns lifetime winnings minus lifetime fees paid.
func (a *PlayerAccount) NetProfit() Cents {
	return a.TotalWinnings - a.TotalFeesPaid
}
