package economy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tomashops/bingobest/pkg/entities"
)

type MemoryRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	repo *MemoryRepository
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, new(MemoryRepositorySuite))
}

func (s *MemoryRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = NewMemoryRepository()
}

func (s *MemoryRepositorySuite) TestGetAccountNotFound() {
	_, err := s.repo.GetAccount(s.ctx, "ghost")
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *MemoryRepositorySuite) TestSaveAndGetAccount() {
	account := &entities.PlayerAccount{
		ID:                  "alice",
		Balance:             1000,
		WithdrawableBalance: 700,
		BonusBalance:        300,
		CreatedAt:           time.Now(),
	}

	err := s.repo.SaveAccount(s.ctx, account)
	s.Require().NoError(err)
	s.False(account.LastUpdated.IsZero(), "LastUpdated not set on save")

	loaded, err := s.repo.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(entities.Cents(1000), loaded.Balance)
	s.Equal(entities.Cents(700), loaded.WithdrawableBalance)
	s.Equal(entities.Cents(300), loaded.BonusBalance)
}

func (s *MemoryRepositorySuite) TestGetAccountReturnsCopy() {
	account := &entities.PlayerAccount{ID: "alice", Balance: 1000}
	s.Require().NoError(s.repo.SaveAccount(s.ctx, account))

	loaded, err := s.repo.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	loaded.Balance = 9999

	again, err := s.repo.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(entities.Cents(1000), again.Balance, "mutating a loaded account leaked into the store")
}

func (s *MemoryRepositorySuite) TestListAccounts() {
	s.Require().NoError(s.repo.SaveAccount(s.ctx, &entities.PlayerAccount{ID: "alice"}))
	s.Require().NoError(s.repo.SaveAccount(s.ctx, &entities.PlayerAccount{ID: "bob"}))

	accounts, err := s.repo.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Len(accounts, 2)
}

func (s *MemoryRepositorySuite) TestSaveAndGetSession() {
	session := &entities.GameSession{
		ID:        "session-1",
		PlayerID:  "alice",
		EntryFee:  500,
		PrizePool: 4500,
		StartTime: time.Now(),
		Status:    entities.SessionActive,
	}

	err := s.repo.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	loaded, err := s.repo.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal("alice", loaded.PlayerID)
	s.Equal(entities.Cents(500), loaded.EntryFee)
	s.True(loaded.IsActive())

	_, err = s.repo.GetSession(s.ctx, "session-2")
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRepositorySuite) TestHouseDefaultsToZero() {
	house, err := s.repo.GetHouse(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.Cents(0), house.TotalFeesCollected)
	s.Equal(entities.Cents(0), house.NetProfit)
	s.Equal(0, house.ActiveGames)
}

func (s *MemoryRepositorySuite) TestSaveAndGetHouse() {
	house := &entities.HouseAccount{
		TotalFeesCollected: 500,
		TotalPrizesPaid:    0,
		NetProfit:          500,
		ActiveGames:        1,
	}

	err := s.repo.SaveHouse(s.ctx, house)
	s.Require().NoError(err)

	loaded, err := s.repo.GetHouse(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.Cents(500), loaded.TotalFeesCollected)
	s.Equal(1, loaded.ActiveGames)
	s.True(loaded.Reconciled())
}

func (s *MemoryRepositorySuite) TestAddEntryAssignsIDAndTimestamp() {
	entry := &entities.LedgerEntry{
		PlayerID: "alice",
		Amount:   1000,
		Type:     entities.EntryTypeDeposit,
	}

	err := s.repo.AddEntry(s.ctx, entry)
	s.Require().NoError(err)
	s.NotEmpty(entry.ID, "entry ID not generated")
	s.False(entry.Timestamp.IsZero(), "entry timestamp not set")
}

func (s *MemoryRepositorySuite) TestGetEntriesLimit() {
	for i := 0; i < 5; i++ {
		err := s.repo.AddEntry(s.ctx, &entities.LedgerEntry{
			PlayerID: "alice",
			Amount:   entities.Cents(100 * (i + 1)),
			Type:     entities.EntryTypeDeposit,
		})
		s.Require().NoError(err)
	}

	entries, err := s.repo.GetEntries(s.ctx, "alice", 3)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	// Most recent three in chronological order
	s.Equal(entities.Cents(300), entries[0].Amount)
	s.Equal(entities.Cents(500), entries[2].Amount)

	entries, err = s.repo.GetEntries(s.ctx, "nobody", 10)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *MemoryRepositorySuite) TestGetEntriesByType() {
	s.Require().NoError(s.repo.AddEntry(s.ctx, &entities.LedgerEntry{PlayerID: "alice", Amount: 1000, Type: entities.EntryTypeDeposit}))
	s.Require().NoError(s.repo.AddEntry(s.ctx, &entities.LedgerEntry{PlayerID: "alice", Amount: -500, Type: entities.EntryTypeEntryFee}))
	s.Require().NoError(s.repo.AddEntry(s.ctx, &entities.LedgerEntry{PlayerID: "alice", Amount: 2000, Type: entities.EntryTypeDeposit}))

	deposits, err := s.repo.GetEntriesByType(s.ctx, "alice", entities.EntryTypeDeposit, 10)
	s.Require().NoError(err)
	s.Require().Len(deposits, 2)
	// Most recent first
	s.Equal(entities.Cents(2000), deposits[0].Amount)
	s.Equal(entities.Cents(1000), deposits[1].Amount)
}

func (s *MemoryRepositorySuite) TestReset() {
	s.Require().NoError(s.repo.SaveAccount(s.ctx, &entities.PlayerAccount{ID: "alice", Balance: 1000}))
	s.Require().NoError(s.repo.SaveSession(s.ctx, &entities.GameSession{ID: "session-1", PlayerID: "alice"}))
	s.Require().NoError(s.repo.SaveHouse(s.ctx, &entities.HouseAccount{NetProfit: 500, TotalFeesCollected: 500}))
	s.Require().NoError(s.repo.AddEntry(s.ctx, &entities.LedgerEntry{PlayerID: "alice", Amount: 1000, Type: entities.EntryTypeDeposit}))

	err := s.repo.Reset(s.ctx)
	s.Require().NoError(err)

	_, err = s.repo.GetAccount(s.ctx, "alice")
	s.ErrorIs(err, ErrAccountNotFound)

	sessions, err := s.repo.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(sessions)

	house, err := s.repo.GetHouse(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.Cents(0), house.NetProfit)

	entries, err := s.repo.GetEntries(s.ctx, "alice", 10)
	s.Require().NoError(err)
	s.Empty(entries)
}
