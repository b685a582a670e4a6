package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tomashops/bingobest/pkg/entities"
	economyRepo "github.com/tomashops/bingobest/pkg/repositories/economy"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	service *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.service = NewService(economyRepo.NewMemoryRepository())
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

// account returns the current snapshot for a player and asserts the
// balance decomposition invariant while it is at it.
func (s *ServiceSuite) account(playerID string) *entities.PlayerAccount {
	account, err := s.service.Account(s.ctx, playerID)
	s.Require().NoError(err)
	s.Equal(account.WithdrawableBalance+account.BonusBalance, account.Balance,
		"balance must equal withdrawable + bonus")
	return account
}

func (s *ServiceSuite) house() *entities.HouseAccount {
	house, err := s.service.House(s.ctx)
	s.Require().NoError(err)
	s.True(house.Reconciled(), "house net profit must reconcile with fees minus prizes")
	return house
}

func (s *ServiceSuite) TestCreateAccount() {
	account, err := s.service.CreateAccount(s.ctx, "player1", 2000)
	s.NoError(err)
	s.Equal(entities.Cents(2000), account.Balance)
	s.Equal(entities.Cents(2000), account.WithdrawableBalance)
	s.Equal(entities.Cents(0), account.BonusBalance)
}

func (s *ServiceSuite) TestCreateAccountDuplicate() {
	_, err := s.service.CreateAccount(s.ctx, "player1", 2000)
	s.NoError(err)

	_, err = s.service.CreateAccount(s.ctx, "player1", 500)
	s.ErrorIs(err, ErrAccountExists)

	// Original balance must be untouched
	s.Equal(entities.Cents(2000), s.account("player1").Balance)
}

func (s *ServiceSuite) TestAccountNotFound() {
	_, err := s.service.Account(s.ctx, "ghost")
	s.ErrorIs(err, economyRepo.ErrAccountNotFound)
}

func (s *ServiceSuite) TestDeposit() {
	s.service.CreateAccount(s.ctx, "player1", 0)

	account, err := s.service.Deposit(s.ctx, "player1", 1500, "paypal deposit")
	s.NoError(err)
	s.Equal(entities.Cents(1500), account.Balance)
	s.Equal(entities.Cents(1500), account.WithdrawableBalance)
	s.Equal(entities.Cents(1500), account.TotalDeposited)
}

func (s *ServiceSuite) TestDepositRejectsNonPositiveAmounts() {
	s.service.CreateAccount(s.ctx, "player1", 1000)

	_, err := s.service.Deposit(s.ctx, "player1", -500, "bad")
	s.ErrorIs(err, ErrNonPositiveAmount)

	_, err = s.service.Deposit(s.ctx, "player1", 0, "bad")
	s.ErrorIs(err, ErrNonPositiveAmount)

	// Account unchanged on both failures
	account := s.account("player1")
	s.Equal(entities.Cents(1000), account.Balance)
	s.Equal(entities.Cents(0), account.TotalDeposited)
}

func (s *ServiceSuite) TestDepositMissingAccount() {
	_, err := s.service.Deposit(s.ctx, "ghost", 500, "orphan")
	s.ErrorIs(err, economyRepo.ErrAccountNotFound)
}

func (s *ServiceSuite) TestEntryFeeConsumesWithdrawableFirst() {
	// withdrawable 300, bonus 1000, fee 500 -> withdrawable 0, bonus 800
	s.service.CreateAccount(s.ctx, "player1", 300)
	s.service.AddBonus(s.ctx, "player1", 1000, "welcome")

	account, err := s.service.ChargeEntryFee(s.ctx, "player1", 500, "")
	s.NoError(err)
	s.Equal(entities.Cents(0), account.WithdrawableBalance)
	s.Equal(entities.Cents(800), account.BonusBalance)
	s.Equal(entities.Cents(800), account.Balance)
}

func (s *ServiceSuite) TestEntryFeeInsufficientFunds() {
	s.service.CreateAccount(s.ctx, "player1", 300)

	_, err := s.service.ChargeEntryFee(s.ctx, "player1", 500, "")
	s.ErrorIs(err, ErrInsufficientFunds)

	// No partial effect
	account := s.account("player1")
	s.Equal(entities.Cents(300), account.Balance)
	s.Equal(0, account.GamesPlayed)
	house := s.house()
	s.Equal(entities.Cents(0), house.TotalFeesCollected)
	s.Equal(0, house.ActiveGames)
}

func (s *ServiceSuite) TestEntryFeeCreditsHouse() {
	s.service.CreateAccount(s.ctx, "player1", 2000)

	_, err := s.service.ChargeEntryFee(s.ctx, "player1", 500, "")
	s.NoError(err)

	house := s.house()
	s.Equal(entities.Cents(500), house.TotalFeesCollected)
	s.Equal(entities.Cents(500), house.NetProfit)
	s.Equal(1, house.ActiveGames)

	account := s.account("player1")
	s.Equal(entities.Cents(500), account.TotalFeesPaid)
	s.Equal(1, account.GamesPlayed)
}

func (s *ServiceSuite) TestStartSessionChargesFeeOnce() {
	s.service.CreateAccount(s.ctx, "player1", 2000)

	session, err := s.service.StartSession(s.ctx, "player1", 500, 4500)
	s.NoError(err)
	s.NotEmpty(session.ID)
	s.Equal(entities.SessionActive, session.Status)
	s.Equal(entities.Cents(500), session.EntryFee)
	s.Equal(entities.Cents(4500), session.PrizePool)

	account := s.account("player1")
	s.Equal(entities.Cents(1500), account.Balance)
	s.Equal(1, account.GamesPlayed)
}

func (s *ServiceSuite) TestStartSessionFeeFailureCreatesNoSession() {
	s.service.CreateAccount(s.ctx, "player1", 100)

	_, err := s.service.StartSession(s.ctx, "player1", 500, 4500)
	s.ErrorIs(err, ErrInsufficientFunds)

	stats, err := s.service.Stats(s.ctx)
	s.NoError(err)
	s.Equal(0, stats.TotalSessions)
}

func (s *ServiceSuite) TestSessionIDsAreUnique() {
	s.service.CreateAccount(s.ctx, "player1", 10000)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		session, err := s.service.StartSession(s.ctx, "player1", 100, 500)
		s.Require().NoError(err)
		s.False(seen[session.ID], "session IDs must be unique")
		seen[session.ID] = true
	}
}

func (s *ServiceSuite) TestAwardWin() {
	s.service.CreateAccount(s.ctx, "player1", 2000)
	session, _ := s.service.StartSession(s.ctx, "player1", 500, 4500)

	completed, err := s.service.AwardWin(s.ctx, session.ID, 4500)
	s.NoError(err)
	s.Equal(entities.SessionCompleted, completed.Status)
	s.Equal("player1", completed.Winner)
	s.Equal(entities.Cents(4500), completed.PrizeAmount)
	s.False(completed.EndTime.IsZero())

	account := s.account("player1")
	s.Equal(entities.Cents(6000), account.WithdrawableBalance)
	s.Equal(entities.Cents(4500), account.TotalWinnings)
	s.Equal(1, account.GamesWon)

	house := s.house()
	s.Equal(entities.Cents(4500), house.TotalPrizesPaid)
	s.Equal(entities.Cents(-4000), house.NetProfit)
	s.Equal(0, house.ActiveGames)
}

func (s *ServiceSuite) TestAwardWinAlwaysLandsInWithdrawable() {
	// Fund the session entirely from bonus money; winnings still cash out
	s.service.CreateAccount(s.ctx, "player1", 0)
	s.service.AddBonus(s.ctx, "player1", 1000, "welcome")
	session, err := s.service.StartSession(s.ctx, "player1", 500, 2000)
	s.Require().NoError(err)

	_, err = s.service.AwardWin(s.ctx, session.ID, 2000)
	s.NoError(err)

	account := s.account("player1")
	s.Equal(entities.Cents(2000), account.WithdrawableBalance)
	s.Equal(entities.Cents(500), account.BonusBalance)
}

func (s *ServiceSuite) TestAwardWinUnknownSession() {
	s.service.CreateAccount(s.ctx, "player1", 2000)

	_, err := s.service.AwardWin(s.ctx, "no-such-session", 4500)
	s.ErrorIs(err, economyRepo.ErrSessionNotFound)

	// Player and house untouched
	s.Equal(entities.Cents(2000), s.account("player1").Balance)
	s.Equal(entities.Cents(0), s.house().TotalPrizesPaid)
}

func (s *ServiceSuite) TestAwardWinCompletedSession() {
	s.service.CreateAccount(s.ctx, "player1", 2000)
	session, _ := s.service.StartSession(s.ctx, "player1", 500, 4500)
	s.service.AwardWin(s.ctx, session.ID, 4500)

	beforeAccount := s.account("player1")
	beforeHouse := s.house()

	_, err := s.service.AwardWin(s.ctx, session.ID, 4500)
	s.ErrorIs(err, ErrSessionNotActive)

	s.Equal(beforeAccount.Balance, s.account("player1").Balance)
	s.Equal(beforeHouse.TotalPrizesPaid, s.house().TotalPrizesPaid)
	s.Equal(beforeHouse.ActiveGames, s.house().ActiveGames)
}

func (s *ServiceSuite) TestCancelSession() {
	s.service.CreateAccount(s.ctx, "player1", 2000)
	session, _ := s.service.StartSession(s.ctx, "player1", 500, 4500)

	cancelled, err := s.service.CancelSession(s.ctx, session.ID)
	s.NoError(err)
	s.Equal(entities.SessionCancelled, cancelled.Status)
	s.False(cancelled.EndTime.IsZero())

	// House keeps the fee but releases the active game slot
	house := s.house()
	s.Equal(entities.Cents(500), house.TotalFeesCollected)
	s.Equal(0, house.ActiveGames)

	// A cancelled session cannot be won
	_, err = s.service.AwardWin(s.ctx, session.ID, 4500)
	s.ErrorIs(err, ErrSessionNotActive)
}

func (s *ServiceSuite) TestWithdraw() {
	s.service.CreateAccount(s.ctx, "player1", 2000)

	account, err := s.service.Withdraw(s.ctx, "player1", 1200)
	s.NoError(err)
	s.Equal(entities.Cents(800), account.WithdrawableBalance)
	s.Equal(entities.Cents(800), account.Balance)
}

func (s *ServiceSuite) TestWithdrawIgnoresBonusFunds() {
	// balance 2500 covers 2000, but withdrawable 1500 does not
	s.service.CreateAccount(s.ctx, "player1", 1500)
	s.service.AddBonus(s.ctx, "player1", 1000, "daily")

	account := s.account("player1")
	s.Equal(entities.Cents(2500), account.Balance)

	_, err := s.service.Withdraw(s.ctx, "player1", 2000)
	s.ErrorIs(err, ErrInsufficientWithdrawable)

	// Unchanged on failure
	account = s.account("player1")
	s.Equal(entities.Cents(1500), account.WithdrawableBalance)
	s.Equal(entities.Cents(1000), account.BonusBalance)

	// The withdrawable part alone is fine
	_, err = s.service.Withdraw(s.ctx, "player1", 1500)
	s.NoError(err)
	s.Equal(entities.Cents(1000), s.account("player1").Balance)
}

func (s *ServiceSuite) TestWithdrawNeverGoesNegative() {
	s.service.CreateAccount(s.ctx, "player1", 500)

	_, err := s.service.Withdraw(s.ctx, "player1", 501)
	s.ErrorIs(err, ErrInsufficientWithdrawable)
	s.Equal(entities.Cents(500), s.account("player1").WithdrawableBalance)
}

func (s *ServiceSuite) TestAddBonus() {
	s.service.CreateAccount(s.ctx, "player1", 1500)

	account, err := s.service.AddBonus(s.ctx, "player1", 1000, "daily")
	s.NoError(err)
	s.Equal(entities.Cents(1000), account.BonusBalance)
	s.Equal(entities.Cents(2500), account.Balance)
	s.Equal(entities.Cents(1500), account.WithdrawableBalance)
}

func (s *ServiceSuite) TestAddBonusRejectsNonPositiveAmounts() {
	s.service.CreateAccount(s.ctx, "player1", 1500)

	_, err := s.service.AddBonus(s.ctx, "player1", 0, "nothing")
	s.ErrorIs(err, ErrNonPositiveAmount)
	s.Equal(entities.Cents(0), s.account("player1").BonusBalance)
}

// TestFullGameCycle walks the complete economic scenario: a player funds an
// account, pays an entry fee, wins a prize, takes a bonus, and tries to cash
// out more than their withdrawable funds.
func (s *ServiceSuite) TestFullGameCycle() {
	_, err := s.service.CreateAccount(s.ctx, "player1", 2000)
	s.Require().NoError(err)

	session, err := s.service.StartSession(s.ctx, "player1", 500, 4500)
	s.Require().NoError(err)

	account := s.account("player1")
	s.Equal(entities.Cents(1500), account.WithdrawableBalance)
	s.Equal(entities.Cents(0), account.BonusBalance)
	s.Equal(entities.Cents(1500), account.Balance)

	house := s.house()
	s.Equal(entities.Cents(500), house.TotalFeesCollected)
	s.Equal(entities.Cents(500), house.NetProfit)
	s.Equal(1, house.ActiveGames)

	_, err = s.service.AwardWin(s.ctx, session.ID, 4500)
	s.Require().NoError(err)

	account = s.account("player1")
	s.Equal(entities.Cents(6000), account.WithdrawableBalance)
	s.Equal(entities.Cents(4500), account.TotalWinnings)
	s.Equal(1, account.GamesWon)

	house = s.house()
	s.Equal(entities.Cents(4500), house.TotalPrizesPaid)
	s.Equal(entities.Cents(-4000), house.NetProfit)
	s.Equal(0, house.ActiveGames)

	_, err = s.service.AddBonus(s.ctx, "player1", 1000, "loyalty")
	s.Require().NoError(err)

	// Bonus inflates the balance but not what can be cashed out
	_, err = s.service.Withdraw(s.ctx, "player1", 6500)
	s.ErrorIs(err, ErrInsufficientWithdrawable)

	_, err = s.service.Withdraw(s.ctx, "player1", 6000)
	s.NoError(err)

	account = s.account("player1")
	s.Equal(entities.Cents(0), account.WithdrawableBalance)
	s.Equal(entities.Cents(1000), account.BonusBalance)
	s.Equal(entities.Cents(1000), account.Balance)
}

func (s *ServiceSuite) TestLedgerEntriesRecorded() {
	s.service.CreateAccount(s.ctx, "player1", 2000)
	s.service.Deposit(s.ctx, "player1", 1000, "paypal deposit")
	session, _ := s.service.StartSession(s.ctx, "player1", 500, 4500)
	s.service.AwardWin(s.ctx, session.ID, 4500)
	s.service.AddBonus(s.ctx, "player1", 300, "daily")
	s.service.Withdraw(s.ctx, "player1", 1000)

	entries, err := s.service.Entries(s.ctx, "player1", 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 5)

	types := make([]entities.EntryType, 0, len(entries))
	for _, entry := range entries {
		types = append(types, entry.Type)
	}
	s.Equal([]entities.EntryType{
		entities.EntryTypeDeposit,
		entities.EntryTypeEntryFee,
		entities.EntryTypePrize,
		entities.EntryTypeBonus,
		entities.EntryTypeWithdrawal,
	}, types)

	// Fee and prize entries reference their session
	s.Equal(session.ID, entries[1].ReferenceID)
	s.Equal(session.ID, entries[2].ReferenceID)
	s.Equal(entities.Cents(-500), entries[1].Amount)
}

func (s *ServiceSuite) TestStats() {
	s.service.CreateAccount(s.ctx, "player1", 5000)
	s.service.CreateAccount(s.ctx, "player2", 5000)

	first, _ := s.service.StartSession(s.ctx, "player1", 500, 2000)
	s.service.StartSession(s.ctx, "player2", 500, 2000)
	third, _ := s.service.StartSession(s.ctx, "player1", 500, 2000)

	s.service.AwardWin(s.ctx, first.ID, 2000)
	s.service.CancelSession(s.ctx, third.ID)

	stats, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, stats.TotalPlayers)
	s.Equal(3, stats.TotalSessions)
	s.Equal(1, stats.ActiveSessions)
	s.Equal(1, stats.CompletedSessions)
	s.Equal(1, stats.CancelledSessions)
	s.Equal(entities.Cents(1500), stats.House.TotalFeesCollected)
	s.Equal(1, stats.House.ActiveGames)
}

func (s *ServiceSuite) TestReset() {
	s.service.CreateAccount(s.ctx, "player1", 2000)
	session, _ := s.service.StartSession(s.ctx, "player1", 500, 2000)
	s.service.AwardWin(s.ctx, session.ID, 2000)

	s.NoError(s.service.Reset(s.ctx))

	_, err := s.service.Account(s.ctx, "player1")
	s.ErrorIs(err, economyRepo.ErrAccountNotFound)

	stats, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, stats.TotalPlayers)
	s.Equal(0, stats.TotalSessions)

	house := s.house()
	s.Equal(entities.Cents(0), house.TotalFeesCollected)
	s.Equal(entities.Cents(0), house.TotalPrizesPaid)
	s.Equal(entities.Cents(0), house.NetProfit)
	s.Equal(0, house.ActiveGames)
}
