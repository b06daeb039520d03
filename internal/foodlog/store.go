// Package foodlog persists a food catalogue and per-user intake logs and
// derives daily summaries, deficiency status and classifier features from
// them. PostgreSQL (through pgx) and SQLite are supported.
package foodlog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Skufu/nutririsk/internal/logger"
)

var (
	// ErrNotFound is returned when a food item or log entry does not exist
	// or belongs to another user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidEntry is returned for a log entry the store refuses to save.
	ErrInvalidEntry = errors.New("invalid entry")
)

// Dialect selects placeholder syntax and migrations.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

//go:embed schema/postgres.sql
var postgresSchema string

//go:embed schema/sqlite.sql
var sqliteSchema string

const dateLayout = "2006-01-02"

// FoodItem is a catalogue entry. Nutrient amounts are per 100 g.
type FoodItem struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name" binding:"required"`
	Iron    float64 `json:"iron" binding:"gte=0"`
	Calcium float64 `json:"calcium" binding:"gte=0"`
	Protein float64 `json:"protein" binding:"gte=0"`
	Region  string  `json:"region"`
}

// Entry is one logged serving. Date is YYYY-MM-DD.
type Entry struct {
	ID       int64   `json:"id"`
	UserID   string  `json:"user_id"`
	FoodID   int64   `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"gt=0"`
	Date     string  `json:"date"`
}

type Store struct {
	db      *sql.DB
	dialect Dialect
	log     *logger.Logger
	now     func() time.Time
}

// DialectFor picks the backend for dsn: postgres URLs use pgx, anything
// else is treated as a SQLite path.
func DialectFor(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return Postgres
	}
	return SQLite
}

// Open connects to dsn, verifies the connection and applies migrations.
func Open(ctx context.Context, dsn string, log *logger.Logger) (*Store, error) {
	dialect := DialectFor(dsn)
	driver, schema := "sqlite3", sqliteSchema
	if dialect == Postgres {
		driver, schema = "pgx", postgresSchema
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if dialect == SQLite {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	log.Info("food log store ready", "driver", driver)
	return New(db, dialect, log), nil
}

// New wraps an open database without running migrations.
func New(db *sql.DB, dialect Dialect, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{db: db, dialect: dialect, log: log, now: time.Now}
}

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// rebind rewrites ? placeholders as $1, $2, ... for postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const foodColumns = "id, name, iron, calcium, protein, region"

type scanner interface {
	Scan(dest ...any) error
}

func scanFood(row scanner) (FoodItem, error) {
	var f FoodItem
	err := row.Scan(&f.ID, &f.Name, &f.Iron, &f.Calcium, &f.Protein, &f.Region)
	return f, err
}

func (s *Store) queryFoods(ctx context.Context, query string, args ...any) ([]FoodItem, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query food items: %w", err)
	}
	defer rows.Close()

	items := []FoodItem{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food items: %w", err)
	}
	return items, nil
}

func (s *Store) ListFoodItems(ctx context.Context) ([]FoodItem, error) {
	return s.queryFoods(ctx, "SELECT "+foodColumns+" FROM food_items ORDER BY id")
}

// RegionalFoods lists catalogue items whose region equals state, ignoring case.
func (s *Store) RegionalFoods(ctx context.Context, state string) ([]FoodItem, error) {
	return s.queryFoods(ctx, "SELECT "+foodColumns+" FROM food_items WHERE LOWER(region) = LOWER(?) ORDER BY id", strings.TrimSpace(state))
}

func (s *Store) GetFoodItem(ctx context.Context, id int64) (FoodItem, error) {
	row := s.db.QueryRowContext(ctx, s.rebind("SELECT "+foodColumns+" FROM food_items WHERE id = ?"), id)
	f, err := scanFood(row)
	if errors.Is(err, sql.ErrNoRows) {
		return FoodItem{}, fmt.Errorf("food item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return FoodItem{}, fmt.Errorf("get food item %d: %w", id, err)
	}
	return f, nil
}

func (s *Store) CreateFoodItem(ctx context.Context, f FoodItem) (FoodItem, error) {
	err := s.db.QueryRowContext(ctx,
		s.rebind("INSERT INTO food_items (name, iron, calcium, protein, region) VALUES (?, ?, ?, ?, ?) RETURNING id"),
		f.Name, f.Iron, f.Calcium, f.Protein, f.Region,
	).Scan(&f.ID)
	if err != nil {
		return FoodItem{}, fmt.Errorf("insert food item: %w", err)
	}
	s.log.Debug("food item created", "id", f.ID, "name", f.Name)
	return f, nil
}

func (s *Store) UpdateFoodItem(ctx context.Context, f FoodItem) (FoodItem, error) {
	res, err := s.db.ExecContext(ctx,
		s.rebind("UPDATE food_items SET name = ?, iron = ?, calcium = ?, protein = ?, region = ? WHERE id = ?"),
		f.Name, f.Iron, f.Calcium, f.Protein, f.Region, f.ID,
	)
	if err != nil {
		return FoodItem{}, fmt.Errorf("update food item %d: %w", f.ID, err)
	}
	if err := affectedOne(res, "food item", f.ID); err != nil {
		return FoodItem{}, err
	}
	return f, nil
}

func (s *Store) DeleteFoodItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM food_items WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete food item %d: %w", id, err)
	}
	return affectedOne(res, "food item", id)
}

func affectedOne(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: rows affected: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}

const entryColumns = "id, user_id, food_id, quantity, log_date"

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.UserID, &e.FoodID, &e.Quantity, &e.Date)
	return e, err
}

// ListEntries returns the user's log, newest first.
func (s *Store) ListEntries(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT "+entryColumns+" FROM food_logs WHERE user_id = ? ORDER BY log_date DESC, id DESC"), userID)
	if err != nil {
		return nil, fmt.Errorf("query food logs: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food logs: %w", err)
	}
	return entries, nil
}

func (s *Store) GetEntry(ctx context.Context, userID string, id int64) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind("SELECT "+entryColumns+" FROM food_logs WHERE id = ? AND user_id = ?"), id, userID)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("food log %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get food log %d: %w", id, err)
	}
	return e, nil
}

// CreateEntry logs a serving for the user. A blank date means today; the
// referenced food item must exist.
func (s *Store) CreateEntry(ctx context.Context, userID string, e Entry) (Entry, error) {
	if e.Date == "" {
		e.Date = s.today().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, e.Date); err != nil {
		return Entry{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidEntry, e.Date)
	}
	if _, err := s.GetFoodItem(ctx, e.FoodID); err != nil {
		return Entry{}, err
	}

	e.UserID = userID
	err := s.db.QueryRowContext(ctx,
		s.rebind("INSERT INTO food_logs (user_id, food_id, quantity, log_date) VALUES (?, ?, ?, ?) RETURNING id"),
		e.UserID, e.FoodID, e.Quantity, e.Date,
	).Scan(&e.ID)
	if err != nil {
		return Entry{}, fmt.Errorf("insert food log: %w", err)
	}
	s.log.Debug("food log created", "id", e.ID, "user_id", userID, "food_id", e.FoodID)
	return e, nil
}

func (s *Store) DeleteEntry(ctx context.Context, userID string, id int64) error {
	res, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM food_logs WHERE id = ? AND user_id = ?"), id, userID)
	if err != nil {
		return fmt.Errorf("delete food log %d: %w", id, err)
	}
	return affectedOne(res, "food log", id)
}
