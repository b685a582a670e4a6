package leaderboard

import (
	"context"
	"sort"
	"time"

	"github.com/tomashops/bingobest/pkg/entities"
	economyRepo "github.com/tomashops/bingobest/pkg/repositories/economy"
)

// Service provides ranked player standings for the dashboard
type Service struct {
	repository economyRepo.Repository
}

// NewService creates a new leaderboard service
func NewService(repository economyRepo.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// PlayerRank represents a player's account with ranking information
type PlayerRank struct {
	*entities.PlayerAccount
	Rank        int     `json:"rank"`
	WinRate     float64 `json:"win_rate"`
	ProfitRate  float64 `json:"profit_rate"`
	IsTopWinner bool    `json:"is_top_winner"`
	IsTopPlayer bool    `json:"is_top_player"`
}

// Leaderboard represents a paginated leaderboard of player standings
type Leaderboard struct {
	Players        []*PlayerRank `json:"players"`
	TotalPlayers   int           `json:"total_players"`
	CurrentPage    int           `json:"current_page"`
	TotalPages     int           `json:"total_pages"`
	PlayersPerPage int           `json:"players_per_page"`
	LastUpdated    time.Time     `json:"last_updated"`
}

// Standings retrieves a paginated leaderboard ranked by total winnings
func (s *Service) Standings(ctx context.Context, page, playersPerPage int) (*Leaderboard, error) {
	// Default values
	if page < 1 {
		page = 1
	}
	if playersPerPage < 1 {
		playersPerPage = 10
	}

	accounts, err := s.repository.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	// Convert to PlayerRank and calculate additional metrics
	playerRanks := make([]*PlayerRank, 0, len(accounts))
	for _, account := range accounts {
		// Skip players who never played
		if account.GamesPlayed == 0 {
			continue
		}

		winRate := float64(account.GamesWon) / float64(account.GamesPlayed)
		var profitRate float64
		if account.TotalFeesPaid > 0 {
			profitRate = float64(account.TotalWinnings) / float64(account.TotalFeesPaid)
		}

		playerRanks = append(playerRanks, &PlayerRank{
			PlayerAccount: account,
			WinRate:       winRate,
			ProfitRate:    profitRate,
		})
	}

	// Sort by total winnings (descending)
	sort.Slice(playerRanks, func(i, j int) bool {
		return playerRanks[i].TotalWinnings > playerRanks[j].TotalWinnings
	})

	// Mark top winner and top player
	if len(playerRanks) > 0 {
		playerRanks[0].IsTopWinner = true

		mostGamesIdx := 0
		for i := 1; i < len(playerRanks); i++ {
			if playerRanks[i].GamesPlayed > playerRanks[mostGamesIdx].GamesPlayed {
				mostGamesIdx = i
			}
		}
		playerRanks[mostGamesIdx].IsTopPlayer = true
	}

	// Assign ranks
	for i := range playerRanks {
		playerRanks[i].Rank = i + 1
	}

	// Calculate pagination
	totalPlayers := len(playerRanks)
	totalPages := (totalPlayers + playersPerPage - 1) / playersPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * playersPerPage
	end := start + playersPerPage
	if end > totalPlayers {
		end = totalPlayers
	}

	var currentPagePlayers []*PlayerRank
	if start < totalPlayers {
		currentPagePlayers = playerRanks[start:end]
	} else {
		currentPagePlayers = []*PlayerRank{}
	}

	return &Leaderboard{
		Players:        currentPagePlayers,
		TotalPlayers:   totalPlayers,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PlayersPerPage: playersPerPage,
		LastUpdated:    time.Now(),
	}, nil
}
