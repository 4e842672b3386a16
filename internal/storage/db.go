package storage

import (
	"context"
	"database/sql"
	"errors"

	"finmentor/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// ErrUserNotFound is returned when a lookup matches no user row.
var ErrUserNotFound = errors.New("user not found")

// DB wraps a sql.DB connection and hands out request-scoped sessions.
type DB struct {
	conn *sql.DB
}

// NewDB opens a database connection and runs migrations. The database
// file is created if it does not exist yet.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY and keeps :memory: databases stable across sessions.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			monthly_income REAL NOT NULL,
			financial_goal TEXT NOT NULL DEFAULT '',
			mood TEXT NOT NULL DEFAULT 'neutral'
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			amount REAL NOT NULL,
			category TEXT NOT NULL,
			date TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Session is a request-scoped handle to the store. Exactly one handler
// invocation uses it, and the caller must Close it on every exit path.
type Session struct {
	conn *sql.Conn
	ctx  context.Context
}

// Session checks a dedicated connection out of the pool for one request.
func (db *DB) Session(ctx context.Context) (*Session, error) {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{conn: conn, ctx: ctx}, nil
}

// Close returns the connection to the pool.
func (s *Session) Close() error {
	return s.conn.Close()
}

// CreateUser inserts a new user and fills in its generated ID.
func (s *Session) CreateUser(u *models.User) error {
	result, err := s.conn.ExecContext(s.ctx,
		"INSERT INTO users (email, name, monthly_income, financial_goal, mood) VALUES (?, ?, ?, ?, ?)",
		u.Email, u.Name, u.MonthlyIncome, u.FinancialGoal, u.Mood,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// GetUserByID retrieves a user by ID.
func (s *Session) GetUserByID(id int64) (*models.User, error) {
	row := s.conn.QueryRowContext(s.ctx,
		"SELECT id, email, name, monthly_income, financial_goal, mood FROM users WHERE id = ?",
		id,
	)

	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.MonthlyIncome, &u.FinancialGoal, &u.Mood); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail retrieves a user by email.
func (s *Session) GetUserByEmail(email string) (*models.User, error) {
	row := s.conn.QueryRowContext(s.ctx,
		"SELECT id, email, name, monthly_income, financial_goal, mood FROM users WHERE email = ?",
		email,
	)

	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.MonthlyIncome, &u.FinancialGoal, &u.Mood); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateUserMood overwrites the user's mood field.
func (s *Session) UpdateUserMood(id int64, mood string) error {
	_, err := s.conn.ExecContext(s.ctx,
		"UPDATE users SET mood = ? WHERE id = ?",
		mood, id,
	)
	return err
}

// CreateTransaction inserts a new transaction and fills in its generated ID.
func (s *Session) CreateTransaction(t *models.Transaction) error {
	result, err := s.conn.ExecContext(s.ctx,
		"INSERT INTO transactions (user_id, amount, category, date) VALUES (?, ?, ?, ?)",
		t.UserID, t.Amount, t.Category, t.Date,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

// ListTransactions retrieves all transactions for a user in creation
// order. An unknown user yields an empty slice, not an error.
func (s *Session) ListTransactions(userID int64) ([]models.Transaction, error) {
	rows, err := s.conn.QueryContext(s.ctx,
		"SELECT id, user_id, amount, category, date FROM transactions WHERE user_id = ? ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Date); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}
