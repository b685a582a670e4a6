package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/tomashops/bingobest/internal/config"
	"github.com/tomashops/bingobest/internal/logging"
	"github.com/tomashops/bingobest/pkg/entities"
	"github.com/tomashops/bingobest/pkg/repositories/archive"
	economyRepo "github.com/tomashops/bingobest/pkg/repositories/economy"
	"github.com/tomashops/bingobest/pkg/scheduler"
	"github.com/tomashops/bingobest/pkg/services/economy"
	"github.com/tomashops/bingobest/pkg/services/leaderboard"
	"github.com/tomashops/bingobest/pkg/services/payments"
)

func main() {
	logger := logging.Default

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading configuration: %v", err)
		os.Exit(1)
	}
	if cfg.IsDevelopment() {
		logger = logging.NewLogger(logging.DEBUG)
	}

	// Initialize repository
	var repo economyRepo.Repository

	if cfg.StorageType == config.StorageSQLite {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			logger.Error("Failed to create data directory: %v", err)
			os.Exit(1)
		}

		sqliteRepo, err := economyRepo.NewSQLiteRepository(cfg.DatabasePath())
		if err != nil {
			logger.Warn("Failed to initialize SQLite repository: %v", err)
			logger.Warn("Falling back to in-memory repository")
			repo = economyRepo.NewMemoryRepository()
		} else {
			defer sqliteRepo.Close()
			repo = sqliteRepo
			logger.Info("Using SQLite repository at %s", cfg.DatabasePath())
		}
	} else {
		repo = economyRepo.NewMemoryRepository()
		logger.Info("Using in-memory repository (data will be lost on exit)")
	}

	ledger := economy.NewService(repo)
	boards := leaderboard.NewService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional session archive
	if cfg.ArchiveEnabled {
		archiveRepo, err := archive.NewRepository(&archive.Config{
			URL:      cfg.ArchiveURL,
			Username: cfg.ArchiveUsername,
			Password: cfg.ArchivePassword,
		})
		if err != nil {
			logger.Warn("Session archive disabled: %v", err)
		} else {
			sweeper := scheduler.NewArchiveScheduler(repo, archiveRepo, cfg.ArchiveInterval)
			sweeper.Start(ctx)
			defer sweeper.Stop()
			logger.Info("Archiving closed sessions to %s every %s", cfg.ArchiveURL, cfg.ArchiveInterval)
		}
	}

	// Shut down cleanly on Ctrl+C
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		cancel()
		pterm.Println()
		os.Exit(0)
	}()

	console := &console{
		ctx:    ctx,
		cfg:    cfg,
		ledger: ledger,
		boards: boards,
		paypal: payments.NewService(payments.NewPayPalProvider(), ledger),
		crypto: payments.NewService(payments.NewCryptoProvider(), ledger),
	}
	console.run()
}

type console struct {
	ctx    context.Context
	cfg    *config.Config
	ledger economy.Ledger
	boards *leaderboard.Service
	paypal *payments.Service
	crypto *payments.Service
}

func (c *console) run() {
	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Bingo", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Best", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println()

	for {
		action, _ := pterm.DefaultInteractiveSelect.
			WithOptions([]string{
				"Create account",
				"Deposit",
				"Play a round",
				"Withdraw",
				"Add bonus",
				"Account details",
				"House dashboard",
				"Leaderboard",
				"Quit",
			}).
			WithDefaultText("Pick an action").
			Show()
		pterm.Println()

		switch action {
		case "Create account":
			c.createAccount()
		case "Deposit":
			c.deposit()
		case "Play a round":
			c.playRound()
		case "Withdraw":
			c.withdraw()
		case "Add bonus":
			c.addBonus()
		case "Account details":
			c.accountDetails()
		case "House dashboard":
			c.houseDashboard()
		case "Leaderboard":
			c.leaderboard()
		case "Quit":
			pterm.Info.Println("Hasta luego")
			return
		}
		pterm.Println()
	}
}

func (c *console) createAccount() {
	playerID, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Player name").Show()
	if playerID == "" {
		pterm.Warning.Println("A player name is required")
		return
	}

	account, err := c.ledger.CreateAccount(c.ctx, playerID, c.cfg.StartingBalance)
	if err != nil {
		pterm.Error.Printfln("Could not create account: %v", err)
		return
	}

	pterm.Success.Printfln("Welcome, %s! Balance: %s", account.ID, account.Balance)
}

func (c *console) deposit() {
	playerID, ok := c.pickPlayer()
	if !ok {
		return
	}

	amount, ok := c.askAmount("Deposit amount in cents")
	if !ok {
		return
	}

	method, _ := pterm.DefaultInteractiveSelect.
		WithOptions([]string{"PayPal", "Crypto"}).
		WithDefaultText("Payment method").
		Show()

	svc := c.paypal
	if method == "Crypto" {
		svc = c.crypto
	}

	spinner, _ := pterm.DefaultSpinner.Start("Processing payment...")
	account, err := svc.Deposit(c.ctx, playerID, amount)
	if err != nil {
		spinner.Fail(err.Error())
		return
	}
	spinner.Success("Payment captured")

	pterm.Success.Printfln("Deposited %s. New balance: %s", amount, account.Balance)
}

func (c *console) withdraw() {
	playerID, ok := c.pickPlayer()
	if !ok {
		return
	}

	amount, ok := c.askAmount("Withdrawal amount in cents")
	if !ok {
		return
	}

	account, err := c.ledger.Withdraw(c.ctx, playerID, amount)
	if err != nil {
		pterm.Error.Printfln("Withdrawal refused: %v", err)
		return
	}

	pterm.Success.Printfln("Withdrew %s. Withdrawable balance: %s", amount, account.WithdrawableBalance)
}

func (c *console) addBonus() {
	playerID, ok := c.pickPlayer()
	if !ok {
		return
	}

	amount, ok := c.askAmount("Bonus amount in cents")
	if !ok {
		return
	}

	reason, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Reason").WithDefaultValue("promotion").Show()

	account, err := c.ledger.AddBonus(c.ctx, playerID, amount, reason)
	if err != nil {
		pterm.Error.Printfln("Could not grant bonus: %v", err)
		return
	}

	pterm.Success.Printfln("Granted %s bonus. Bonus balance: %s", amount, account.BonusBalance)
}

func (c *console) accountDetails() {
	playerID, ok := c.pickPlayer()
	if !ok {
		return
	}

	account, err := c.ledger.Account(c.ctx, playerID)
	if err != nil {
		pterm.Error.Printfln("Could not load account: %v", err)
		return
	}

	renderAccount(account)

	entries, err := c.ledger.Entries(c.ctx, playerID, 10)
	if err == nil && len(entries) > 0 {
		renderEntries(entries)
	}
}

func (c *console) houseDashboard() {
	stats, err := c.ledger.Stats(c.ctx)
	if err != nil {
		pterm.Error.Printfln("Could not load house stats: %v", err)
		return
	}

	renderHouse(stats)
}

func (c *console) leaderboard() {
	standings, err := c.boards.Standings(c.ctx, 1, 10)
	if err != nil {
		pterm.Error.Printfln("Could not load leaderboard: %v", err)
		return
	}

	renderLeaderboard(standings)
}

// pickPlayer lets the user choose one of the known accounts
func (c *console) pickPlayer() (string, bool) {
	stats, err := c.ledger.Stats(c.ctx)
	if err != nil || stats.TotalPlayers == 0 {
		pterm.Warning.Println("No accounts yet. Create one first.")
		return "", false
	}

	playerID, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Player name").Show()
	if playerID == "" {
		pterm.Warning.Println("A player name is required")
		return "", false
	}

	return playerID, true
}

func (c *console) askAmount(prompt string) (entities.Cents, bool) {
	raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		pterm.Warning.Println("Enter a positive whole number of cents")
		return 0, false
	}

	return entities.Cents(value), true
}
