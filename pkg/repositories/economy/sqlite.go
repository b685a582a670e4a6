package economy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/tomashops/bingobest/pkg/entities"
)

// SQLite table schemas
const (
	createAccountsTableSQL = `
	CREATE TABLE IF NOT EXISTS accounts (
		player_id TEXT PRIMARY KEY,
		balance INTEGER NOT NULL DEFAULT 0,
		withdrawable_balance INTEGER NOT NULL DEFAULT 0,
		bonus_balance INTEGER NOT NULL DEFAULT 0,
		total_deposited INTEGER NOT NULL DEFAULT 0,
		total_winnings INTEGER NOT NULL DEFAULT 0,
		total_fees_paid INTEGER NOT NULL DEFAULT 0,
		games_played INTEGER NOT NULL DEFAULT 0,
		games_won INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createSessionsTableSQL = `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		entry_fee INTEGER NOT NULL,
		prize_pool INTEGER NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP,
		status TEXT NOT NULL,
		winner TEXT,
		prize_amount INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (player_id) REFERENCES accounts(player_id)
	)`

	createHouseTableSQL = `
	CREATE TABLE IF NOT EXISTS house (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		total_fees_collected INTEGER NOT NULL DEFAULT 0,
		total_prizes_paid INTEGER NOT NULL DEFAULT 0,
		net_profit INTEGER NOT NULL DEFAULT 0,
		active_games INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createEntriesTableSQL = `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		type TEXT NOT NULL,
		reference_id TEXT,
		description TEXT,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		balance_after INTEGER NOT NULL,
		FOREIGN KEY (player_id) REFERENCES accounts(player_id)
	)`

	createEntryIndexesSQL = `
	CREATE INDEX IF NOT EXISTS idx_entries_player_id ON entries(player_id);
	CREATE INDEX IF NOT EXISTS idx_entries_type ON entries(type);
	CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON entries(timestamp DESC)
	`
)

// sqliteTimeFormat is the standardized timestamp format used on writes
const sqliteTimeFormat = "2006-01-02 15:04:05"

// parseSQLiteTime parses a timestamp column. SQLite might store timestamps
// in different formats, so try the common ones.
func parseSQLiteTime(value string) (time.Time, error) {
	formats := []string{
		sqliteTimeFormat,            // SQLite default format
		"2006-01-02T15:04:05Z",      // ISO 8601 format
		"2006-01-02T15:04:05-07:00", // ISO 8601 with timezone
		time.RFC3339,
	}

	var parseErr error
	for _, format := range formats {
		t, err := time.Parse(format, value)
		if err == nil {
			return t, nil
		}
		parseErr = err
	}

	return time.Time{}, fmt.Errorf("error parsing timestamp '%s': %w", value, parseErr)
}

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Create tables if they don't exist
	for _, schema := range []string{
		createAccountsTableSQL,
		createSessionsTableSQL,
		createHouseTableSQL,
		createEntriesTableSQL,
		createEntryIndexesSQL,
	} {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("error creating schema: %w", err)
		}
	}

	// Seed the single house row
	if _, err := db.Exec(`INSERT OR IGNORE INTO house (id) VALUES (1)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("error seeding house account: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// GetAccount retrieves a player account by ID
func (r *SQLiteRepository) GetAccount(ctx context.Context, playerID string) (*entities.PlayerAccount, error) {
	query := `SELECT player_id, balance, withdrawable_balance, bonus_balance,
		total_deposited, total_winnings, total_fees_paid, games_played, games_won,
		created_at, updated_at
		FROM accounts WHERE player_id = ?`

	var account entities.PlayerAccount
	var createdAt, updatedAt string

	err := r.db.QueryRowContext(ctx, query, playerID).Scan(
		&account.ID,
		&account.Balance,
		&account.WithdrawableBalance,
		&account.BonusBalance,
		&account.TotalDeposited,
		&account.TotalWinnings,
		&account.TotalFeesPaid,
		&account.GamesPlayed,
		&account.GamesWon,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("error getting account: %w", err)
	}

	if account.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
		return nil, err
	}
	if account.LastUpdated, err = parseSQLiteTime(updatedAt); err != nil {
		return nil, err
	}

	return &account, nil
}

// SaveAccount creates or updates a player account
func (r *SQLiteRepository) SaveAccount(ctx context.Context, account *entities.PlayerAccount) error {
	account.LastUpdated = time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = account.LastUpdated
	}

	query := `
		INSERT INTO accounts (
			player_id, balance, withdrawable_balance, bonus_balance,
			total_deposited, total_winnings, total_fees_paid, games_played, games_won,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			balance = excluded.balance,
			withdrawable_balance = excluded.withdrawable_balance,
			bonus_balance = excluded.bonus_balance,
			total_deposited = excluded.total_deposited,
			total_winnings = excluded.total_winnings,
			total_fees_paid = excluded.total_fees_paid,
			games_played = excluded.games_played,
			games_won = excluded.games_won,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Balance,
		account.WithdrawableBalance,
		account.BonusBalance,
		account.TotalDeposited,
		account.TotalWinnings,
		account.TotalFeesPaid,
		account.GamesPlayed,
		account.GamesWon,
		account.CreatedAt.Format(sqliteTimeFormat),
		account.LastUpdated.Format(sqliteTimeFormat),
	)

	if err != nil {
		return fmt.Errorf("error saving account: %w", err)
	}

	return nil
}

// ListAccounts retrieves all player accounts
func (r *SQLiteRepository) ListAccounts(ctx context.Context) ([]*entities.PlayerAccount, error) {
	query := `SELECT player_id, balance, withdrawable_balance, bonus_balance,
		total_deposited, total_winnings, total_fees_paid, games_played, games_won,
		created_at, updated_at
		FROM accounts`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*entities.PlayerAccount

	for rows.Next() {
		var account entities.PlayerAccount
		var createdAt, updatedAt string

		err := rows.Scan(
			&account.ID,
			&account.Balance,
			&account.WithdrawableBalance,
			&account.BonusBalance,
			&account.TotalDeposited,
			&account.TotalWinnings,
			&account.TotalFeesPaid,
			&account.GamesPlayed,
			&account.GamesWon,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}

		if account.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
			return nil, err
		}
		if account.LastUpdated, err = parseSQLiteTime(updatedAt); err != nil {
			return nil, err
		}

		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}

// GetSession retrieves a game session by ID
func (r *SQLiteRepository) GetSession(ctx context.Context, sessionID string) (*entities.GameSession, error) {
	query := `SELECT id, player_id, entry_fee, prize_pool, start_time, end_time,
		status, winner, prize_amount
		FROM sessions WHERE id = ?`

	var session entities.GameSession
	var startTime string
	var endTime, winner sql.NullString

	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID,
		&session.PlayerID,
		&session.EntryFee,
		&session.PrizePool,
		&startTime,
		&endTime,
		&session.Status,
		&winner,
		&session.PrizeAmount,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error getting session: %w", err)
	}

	if session.StartTime, err = parseSQLiteTime(startTime); err != nil {
		return nil, err
	}
	if endTime.Valid {
		if session.EndTime, err = parseSQLiteTime(endTime.String); err != nil {
			return nil, err
		}
	}
	if winner.Valid {
		session.Winner = winner.String
	}

	return &session, nil
}

// SaveSession creates or updates a game session
func (r *SQLiteRepository) SaveSession(ctx context.Context, session *entities.GameSession) error {
	var endTime interface{}
	if !session.EndTime.IsZero() {
		endTime = session.EndTime.Format(sqliteTimeFormat)
	}

	query := `
		INSERT INTO sessions (
			id, player_id, entry_fee, prize_pool, start_time, end_time, status, winner, prize_amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			end_time = excluded.end_time,
			status = excluded.status,
			winner = excluded.winner,
			prize_amount = excluded.prize_amount
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.PlayerID,
		session.EntryFee,
		session.PrizePool,
		session.StartTime.Format(sqliteTimeFormat),
		endTime,
		session.Status,
		session.Winner,
		session.PrizeAmount,
	)

	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// ListSessions retrieves all game sessions
func (r *SQLiteRepository) ListSessions(ctx context.Context) ([]*entities.GameSession, error) {
	query := `SELECT id, player_id, entry_fee, prize_pool, start_time, end_time,
		status, winner, prize_amount
		FROM sessions ORDER BY start_time DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*entities.GameSession

	for rows.Next() {
		var session entities.GameSession
		var startTime string
		var endTime, winner sql.NullString

		err := rows.Scan(
			&session.ID,
			&session.PlayerID,
			&session.EntryFee,
			&session.PrizePool,
			&startTime,
			&endTime,
			&session.Status,
			&winner,
			&session.PrizeAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}

		if session.StartTime, err = parseSQLiteTime(startTime); err != nil {
			return nil, err
		}
		if endTime.Valid {
			if session.EndTime, err = parseSQLiteTime(endTime.String); err != nil {
				return nil, err
			}
		}
		if winner.Valid {
			session.Winner = winner.String
		}

		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}

// GetHouse retrieves the house account snapshot
func (r *SQLiteRepository) GetHouse(ctx context.Context) (*entities.HouseAccount, error) {
	query := `SELECT total_fees_collected, total_prizes_paid, net_profit, active_games, updated_at
		FROM house WHERE id = 1`

	var house entities.HouseAccount
	var updatedAt string

	err := r.db.QueryRowContext(ctx, query).Scan(
		&house.TotalFeesCollected,
		&house.TotalPrizesPaid,
		&house.NetProfit,
		&house.ActiveGames,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error getting house account: %w", err)
	}

	if house.LastUpdated, err = parseSQLiteTime(updatedAt); err != nil {
		return nil, err
	}

	return &house, nil
}

// SaveHouse updates the house account
func (r *SQLiteRepository) SaveHouse(ctx context.Context, house *entities.HouseAccount) error {
	house.LastUpdated = time.Now()

	query := `
		UPDATE house
		SET total_fees_collected = ?,
			total_prizes_paid = ?,
			net_profit = ?,
			active_games = ?,
			updated_at = ?
		WHERE id = 1
	`

	_, err := r.db.ExecContext(ctx, query,
		house.TotalFeesCollected,
		house.TotalPrizesPaid,
		house.NetProfit,
		house.ActiveGames,
		house.LastUpdated.Format(sqliteTimeFormat),
	)

	if err != nil {
		return fmt.Errorf("error saving house account: %w", err)
	}

	return nil
}

// AddEntry records a new ledger entry
func (r *SQLiteRepository) AddEntry(ctx context.Context, entry *entities.LedgerEntry) error {
	// Generate ID if not provided
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	// Set timestamp if not provided
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	query := `
		INSERT INTO entries (
			id, player_id, amount, type, reference_id, description, timestamp, balance_after
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.PlayerID,
		entry.Amount,
		entry.Type,
		entry.ReferenceID,
		entry.Description,
		entry.Timestamp.Format(sqliteTimeFormat),
		entry.BalanceAfter,
	)

	if err != nil {
		return fmt.Errorf("error adding ledger entry: %w", err)
	}

	return nil
}

// GetEntries retrieves recent ledger entries for a player
func (r *SQLiteRepository) GetEntries(ctx context.Context, playerID string, limit int) ([]*entities.LedgerEntry, error) {
	query := `
		SELECT id, player_id, amount, type, reference_id, description, timestamp, balance_after
		FROM entries
		WHERE player_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`

	return r.queryEntries(ctx, query, playerID, limit)
}

// GetEntriesByType retrieves entries of a specific type for a player
func (r *SQLiteRepository) GetEntriesByType(ctx context.Context, playerID string, entryType entities.EntryType, limit int) ([]*entities.LedgerEntry, error) {
	query := `
		SELECT id, player_id, amount, type, reference_id, description, timestamp, balance_after
		FROM entries
		WHERE player_id = ? AND type = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`

	return r.queryEntries(ctx, query, playerID, entryType, limit)
}

func (r *SQLiteRepository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]*entities.LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying entries: %w", err)
	}
	defer rows.Close()

	var entries []*entities.LedgerEntry

	for rows.Next() {
		var entry entities.LedgerEntry
		var timestamp string

		err := rows.Scan(
			&entry.ID,
			&entry.PlayerID,
			&entry.Amount,
			&entry.Type,
			&entry.ReferenceID,
			&entry.Description,
			&timestamp,
			&entry.BalanceAfter,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning entry row: %w", err)
		}

		if entry.Timestamp, err = parseSQLiteTime(timestamp); err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	return entries, nil
}

// Reset clears all accounts, sessions and entries and zeroes the house
func (r *SQLiteRepository) Reset(ctx context.Context) error {
	for _, stmt := range []string{
		`DELETE FROM entries`,
		`DELETE FROM sessions`,
		`DELETE FROM accounts`,
		`UPDATE house SET total_fees_collected = 0, total_prizes_paid = 0, net_profit = 0, active_games = 0 WHERE id = 1`,
	} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error resetting economy: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
