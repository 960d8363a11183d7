package profile

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("profile: not found")

// Store provides SQLite-backed persistence for the financial profile.
type Store struct {
	db *sql.DB
}

// Open opens or creates the profile database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening profile db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Seed populates an empty database with the default profile, goals,
// and investments. A database that already has a profile is left alone.
func (s *Store) Seed() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM profile").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.SaveProfile(DefaultProfile()); err != nil {
		return err
	}
	for _, g := range DefaultGoals() {
		if err := s.SaveGoal(g); err != nil {
			return err
		}
	}
	for _, inv := range DefaultInvestments() {
		if err := s.SaveInvestment(inv); err != nil {
			return err
		}
	}
	return nil
}

// SaveProfile replaces the stored profile in one transaction.
func (s *Store) SaveProfile(p Profile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(`INSERT OR REPLACE INTO profile (id, income, updated_at)
		VALUES (1, ?, ?)`, p.Income, now); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return err
	}
	for cat, amt := range p.Expenses {
		if _, err := tx.Exec("INSERT INTO expenses (category, amount) VALUES (?, ?)", cat, amt); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("DELETE FROM balances"); err != nil {
		return err
	}
	for name, amt := range p.Assets {
		if _, err := tx.Exec("INSERT INTO balances (kind, name, amount) VALUES ('asset', ?, ?)", name, amt); err != nil {
			return err
		}
	}
	for name, amt := range p.Liabilities {
		if _, err := tx.Exec("INSERT INTO balances (kind, name, amount) VALUES ('liability', ?, ?)", name, amt); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return err
	}
	for name, pct := range p.CategoryPct {
		if _, err := tx.Exec("INSERT INTO categories (name, pct) VALUES (?, ?)", name, pct); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadProfile reads the stored profile. Returns ErrNotFound on a fresh
// database.
func (s *Store) LoadProfile() (Profile, error) {
	p := Profile{
		Expenses:    make(map[string]float64),
		Assets:      make(map[string]float64),
		Liabilities: make(map[string]float64),
		CategoryPct: make(map[string]float64),
	}

	err := s.db.QueryRow("SELECT income FROM profile WHERE id = 1").Scan(&p.Income)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}

	rows, err := s.db.Query("SELECT category, amount FROM expenses")
	if err != nil {
		return Profile{}, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var cat string
		var amt float64
		if err := rows.Scan(&cat, &amt); err != nil {
			return Profile{}, err
		}
		p.Expenses[cat] = amt
	}
	if err := rows.Err(); err != nil {
		return Profile{}, err
	}

	balRows, err := s.db.Query("SELECT kind, name, amount FROM balances")
	if err != nil {
		return Profile{}, err
	}
	defer func() { _ = balRows.Close() }()
	for balRows.Next() {
		var kind, name string
		var amt float64
		if err := balRows.Scan(&kind, &name, &amt); err != nil {
			return Profile{}, err
		}
		if kind == "asset" {
			p.Assets[name] = amt
		} else {
			p.Liabilities[name] = amt
		}
	}
	if err := balRows.Err(); err != nil {
		return Profile{}, err
	}

	catRows, err := s.db.Query("SELECT name, pct FROM categories")
	if err != nil {
		return Profile{}, err
	}
	defer func() { _ = catRows.Close() }()
	for catRows.Next() {
		var name string
		var pct float64
		if err := catRows.Scan(&name, &pct); err != nil {
			return Profile{}, err
		}
		p.CategoryPct[name] = pct
	}
	return p, catRows.Err()
}

// SaveGoal inserts or updates a goal, assigning an ID when missing.
func (s *Store) SaveGoal(g Goal) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Created.IsZero() {
		g.Created = time.Now()
	}
	deadline := ""
	if !g.Deadline.IsZero() {
		deadline = g.Deadline.UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO goals (id, name, target, saved, deadline, created)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.Target, g.Saved, deadline, g.Created.UTC().Format(time.RFC3339))
	return err
}

// ListGoals returns all goals, oldest first.
func (s *Store) ListGoals() ([]Goal, error) {
	rows, err := s.db.Query("SELECT id, name, target, saved, deadline, created FROM goals ORDER BY created")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var goals []Goal
	for rows.Next() {
		var g Goal
		var deadline, created sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &g.Target, &g.Saved, &deadline, &created); err != nil {
			return nil, err
		}
		if deadline.Valid && deadline.String != "" {
			g.Deadline, _ = time.Parse(time.RFC3339, deadline.String)
		}
		if created.Valid {
			g.Created, _ = time.Parse(time.RFC3339, created.String)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// AddToGoal adds an amount to a goal's saved balance.
func (s *Store) AddToGoal(id string, amount float64) error {
	res, err := s.db.Exec("UPDATE goals SET saved = saved + ? WHERE id = ?", amount, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal.
func (s *Store) DeleteGoal(id string) error {
	res, err := s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveInvestment inserts or updates a holding, assigning an ID when missing.
func (s *Store) SaveInvestment(inv Investment) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	date := ""
	if !inv.Date.IsZero() {
		date = inv.Date.UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO investments
		(id, type, name, amount, current_value, ticker, notes, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Type, inv.Name, inv.Amount, inv.CurrentValue, inv.Ticker, inv.Notes, date)
	return err
}

// ListInvestments returns all holdings, oldest first.
func (s *Store) ListInvestments() ([]Investment, error) {
	rows, err := s.db.Query(`SELECT id, type, name, amount, current_value, ticker, notes, date
		FROM investments ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var invs []Investment
	for rows.Next() {
		var inv Investment
		var ticker, notes, date sql.NullString
		if err := rows.Scan(&inv.ID, &inv.Type, &inv.Name, &inv.Amount, &inv.CurrentValue,
			&ticker, &notes, &date); err != nil {
			return nil, err
		}
		inv.Ticker = ticker.String
		inv.Notes = notes.String
		if date.Valid && date.String != "" {
			inv.Date, _ = time.Parse(time.RFC3339, date.String)
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

// DeleteInvestment removes a holding.
func (s *Store) DeleteInvestment(id string) error {
	res, err := s.db.Exec("DELETE FROM investments WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
