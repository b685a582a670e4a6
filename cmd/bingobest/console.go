package main

import (
	"github.com/pterm/pterm"

	"github.com/tomashops/bingobest/pkg/bingo"
	"github.com/tomashops/bingobest/pkg/entities"
	"github.com/tomashops/bingobest/pkg/services/economy"
	"github.com/tomashops/bingobest/pkg/services/leaderboard"
)

// renderCard prints a bingo card as a table, highlighting marked squares
func renderCard(card *bingo.Card) {
	data := make(pterm.TableData, 0, bingo.Size+1)

	header := make([]string, bingo.Size)
	for col := 0; col < bingo.Size; col++ {
		header[col] = bingo.ColumnName(col)
	}
	data = append(data, header)

	for row := 0; row < bingo.Size; row++ {
		line := make([]string, bingo.Size)
		for col := 0; col < bingo.Size; col++ {
			number := card.Numbers[row][col]
			cell := "FREE"
			if number != 0 {
				cell = pterm.Sprintf("%d", number)
			}
			if card.Marked[row][col] {
				cell = pterm.BgGreen.Sprint(cell)
			}
			line[col] = cell
		}
		data = append(data, line)
	}

	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}

// renderAccount prints a player's balances and lifetime totals in a box
func renderAccount(account *entities.PlayerAccount) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintf(
		"Balance: %s\nWithdrawable: %s\nBonus: %s\n\nDeposited: %s\nWinnings: %s\nFees paid: %s\nGames: %d (won %d)\nNet profit: %s\n",
		account.Balance,
		pterm.LightGreen(account.WithdrawableBalance.String()),
		pterm.LightYellow(account.BonusBalance.String()),
		account.TotalDeposited,
		account.TotalWinnings,
		account.TotalFeesPaid,
		account.GamesPlayed,
		account.GamesWon,
		account.NetProfit(),
	)
	pterm.Println(box.WithTitle(pterm.LightCyan(account.ID)).WithTitleTopCenter().Sprint(body))
}

// renderEntries prints recent ledger entries, oldest first
func renderEntries(entries []*entities.LedgerEntry) {
	data := pterm.TableData{{"When", "Type", "Amount", "Balance after", "Description"}}
	for _, entry := range entries {
		amount := entry.Amount.String()
		if entry.Amount > 0 {
			amount = pterm.LightGreen("+" + amount)
		} else {
			amount = pterm.LightRed(amount)
		}
		data = append(data, []string{
			entry.Timestamp.Format("15:04:05"),
			string(entry.Type),
			amount,
			entry.BalanceAfter.String(),
			entry.Description,
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// renderHouse prints the house dashboard
func renderHouse(stats *economy.GameStats) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	profit := stats.House.NetProfit.String()
	if stats.House.NetProfit >= 0 {
		profit = pterm.LightGreen(profit)
	} else {
		profit = pterm.LightRed(profit)
	}

	body := pterm.Sprintf(
		"Fees collected: %s\nPrizes paid: %s\nNet profit: %s\nActive games: %d\n\nPlayers: %d\nSessions: %d (%d active, %d completed, %d cancelled)\n",
		stats.House.TotalFeesCollected,
		stats.House.TotalPrizesPaid,
		profit,
		stats.House.ActiveGames,
		stats.TotalPlayers,
		stats.TotalSessions,
		stats.ActiveSessions,
		stats.CompletedSessions,
		stats.CancelledSessions,
	)
	pterm.Println(box.WithTitle(pterm.LightYellow("|THE HOUSE|")).WithTitleTopCenter().Sprint(body))
}

// renderLeaderboard prints the standings table
func renderLeaderboard(board *leaderboard.Leaderboard) {
	if len(board.Players) == 0 {
		pterm.Info.Println("Nobody has played yet")
		return
	}

	data := pterm.TableData{{"Rank", "Player", "Winnings", "Games", "Win rate"}}
	for _, player := range board.Players {
		name := player.ID
		if player.IsTopWinner {
			name = pterm.LightYellow(name + " *")
		}
		data = append(data, []string{
			pterm.Sprintf("%d", player.Rank),
			name,
			player.TotalWinnings.String(),
			pterm.Sprintf("%d", player.GamesPlayed),
			pterm.Sprintf("%.1f%%", player.WinRate),
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
