package entities

import "time"

// HouseAccount is the operator's aggregate ledger of fees collected versus
// prizes paid. There is exactly one per economy. TotalFeesCollected and
// TotalPrizesPaid only ever grow; NetProfit is updated incrementally at the
// same call sites, so any new mutation site must touch all three together.
type HouseAccount struct {
	TotalFeesCollected Cents
	TotalPrizesPaid    Cents
	NetProfit          Cents
	ActiveGames        int
	LastUpdated        time.Time
}

// Reconciled reports whether the incrementally maintained NetProfit still
// matches fees collected minus prizes paid.
func (h *HouseAccount) Reconciled() bool {
	return h.NetProfit == h.TotalFeesCollected-h.TotalPrizesPaid
}
