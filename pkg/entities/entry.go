package entities

import "time"

// EntryType represents the type of ledger entry
type EntryType string

const (
	EntryTypeDeposit    EntryType = "DEPOSIT"
	EntryTypeEntryFee   EntryType = "ENTRY_FEE"
	EntryTypePrize      EntryType = "PRIZE"
	EntryTypeWithdrawal EntryType = "WITHDRAWAL"
	EntryTypeBonus      EntryType = "BONUS"
)

// LedgerEntry is the audit record written alongside every fund movement.
type LedgerEntry struct {
	ID           string    // Unique identifier
	PlayerID     string    // Player associated with the entry
	Amount       Cents     // Signed: positive for credits, negative for debits
	Type         EntryType // Kind of fund movement
	ReferenceID  string    // Optional reference (e.g. session ID for fees and prizes)
	Description  string    // Human-readable description
	Timestamp    time.Time // When the movement occurred
	BalanceAfter Cents     // Player balance after this entry
}
