package main

import (
	"time"

	"github.com/pterm/pterm"

	"github.com/tomashops/bingobest/pkg/bingo"
)

// prizeMultiplier sets the prize pool relative to the entry fee
const prizeMultiplier = 9

// maxCalls is how many numbers the caller draws before the round is a bust.
// Every card blacks out by call 75, so an uncapped round always wins.
const maxCalls = 40

// playRound runs a complete bingo round: charge the entry fee, draw numbers
// until the card wins or the caller runs dry, then settle the session.
func (c *console) playRound() {
	playerID, ok := c.pickPlayer()
	if !ok {
		return
	}

	fee, ok := c.askAmount("Entry fee in cents")
	if !ok {
		return
	}

	session, err := c.ledger.StartSession(c.ctx, playerID, fee, fee*prizeMultiplier)
	if err != nil {
		pterm.Error.Printfln("Could not start session: %v", err)
		return
	}

	pterm.Info.Printfln("Session %s started. Prize pool: %s", session.ID, session.PrizePool)
	pterm.Println()

	card := bingo.NewCard()
	caller := bingo.NewCaller()
	renderCard(card)

	won := false
	for call := 0; call < maxCalls; call++ {
		number, ok := caller.Draw()
		if !ok {
			break
		}

		if card.Mark(number) {
			pterm.Printfln("%s-%d %s", bingo.ColumnName((number-1)/15), number, pterm.LightGreen("marked"))
		} else {
			pterm.Printfln("%s-%d", bingo.ColumnName((number-1)/15), number)
		}

		if pattern, ok := card.CheckWin(); ok {
			pterm.Println()
			pterm.Success.Printfln("BINGO! Winning pattern: %s after %d calls", pattern, len(caller.Called()))
			won = true
			break
		}

		time.Sleep(50 * time.Millisecond)
	}

	pterm.Println()
	renderCard(card)
	pterm.Println()

	if won {
		settled, err := c.ledger.AwardWin(c.ctx, session.ID, session.PrizePool)
		if err != nil {
			pterm.Error.Printfln("Could not pay out prize: %v", err)
			return
		}
		pterm.Success.Printfln("Paid %s to %s", settled.PrizeAmount, settled.Winner)
		return
	}

	if _, err := c.ledger.CancelSession(c.ctx, session.ID); err != nil {
		pterm.Error.Printfln("Could not close session: %v", err)
		return
	}
	pterm.Info.Println("No bingo this time. The house keeps the entry fee.")
}
