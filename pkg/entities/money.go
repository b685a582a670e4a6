package entities

import "fmt"

// Cents represents a monetary amount in US cents. All balances and fees in
// the economy are integer minor units so repeated deposit/fee/win cycles
// never accumulate floating-point drift.
type Cents int64

// CentsFromDollars converts a dollar amount to cents, rounding to the
// nearest cent.
func CentsFromDollars(dollars float64) Cents {
	if dollars < 0 {
		return Cents(dollars*100 - 0.5)
	}
	return Cents(dollars*100 + 0.5)
}

// Dollars returns the amount as a float64 dollar value. Display only.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// String formats the amount as a dollar string, e.g. "$12.34" or "-$0.50".
func (c Cents) String() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
