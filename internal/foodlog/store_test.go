package foodlog

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

func setupMockStore(t *testing.T, dialect Dialect) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := New(db, dialect, nil)
	s.now = func() time.Time { return fixedNow }
	return s, mock
}

func intakeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"log_date", "iron", "calcium", "protein", "quantity"}).
		AddRow("2026-03-10", 2.7, 99.0, 2.9, 200.0).
		AddRow("2026-03-08", 10.0, 0.0, 20.0, 50.0)
}

func foodRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "iron", "calcium", "protein", "region"}).
		AddRow(int64(1), "Spinach", 2.7, 99.0, 2.9, "Kerala").
		AddRow(int64(2), "Ghee", 0.0, 0.0, 0.0, "Kerala").
		AddRow(int64(3), "Ragi", 3.9, 344.0, 7.3, "Kerala")
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, Postgres, DialectFor("postgres://u:p@localhost/db"))
	assert.Equal(t, Postgres, DialectFor("POSTGRESQL://localhost/db"))
	assert.Equal(t, SQLite, DialectFor("./data/foodlog.db"))
	assert.Equal(t, SQLite, DialectFor("file::memory:?cache=shared"))
}

func TestRebind(t *testing.T) {
	pg, _ := setupMockStore(t, Postgres)
	assert.Equal(t, "a = $1 AND b = $2", pg.rebind("a = ? AND b = ?"))

	lite, _ := setupMockStore(t, SQLite)
	assert.Equal(t, "a = ? AND b = ?", lite.rebind("a = ? AND b = ?"))
}

func TestCreateFoodItem(t *testing.T) {
	s, mock := setupMockStore(t, Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO food_items (name, iron, calcium, protein, region) VALUES ($1, $2, $3, $4, $5) RETURNING id")).
		WithArgs("Spinach", 2.7, 99.0, 2.9, "Kerala").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	f, err := s.CreateFoodItem(context.Background(), FoodItem{Name: "Spinach", Iron: 2.7, Calcium: 99, Protein: 2.9, Region: "Kerala"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFoodItemNotFound(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectQuery(`SELECT .* FROM food_items WHERE id = \?`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetFoodItem(context.Background(), 9)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteMissingRows(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectExec(`UPDATE food_items`).
		WithArgs("Dal", 3.3, 50.0, 9.0, "", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM food_logs`).
		WithArgs(int64(3), "bob").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM food_logs`).
		WithArgs(int64(3), "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := s.UpdateFoodItem(context.Background(), FoodItem{ID: 4, Name: "Dal", Iron: 3.3, Calcium: 50, Protein: 9})
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.DeleteEntry(context.Background(), "bob", 3), ErrNotFound)
	require.NoError(t, s.DeleteEntry(context.Background(), "alice", 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntryDefaultsToToday(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectQuery(`SELECT .* FROM food_items WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "iron", "calcium", "protein", "region"}).
			AddRow(int64(1), "Spinach", 2.7, 99.0, 2.9, "Kerala"))
	mock.ExpectQuery(`INSERT INTO food_logs`).
		WithArgs("alice", int64(1), 150.0, "2026-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	e, err := s.CreateEntry(context.Background(), "alice", Entry{FoodID: 1, Quantity: 150, UserID: "mallory"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), e.ID)
	assert.Equal(t, "alice", e.UserID)
	assert.Equal(t, "2026-03-10", e.Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntryRejectsBadDate(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	_, err := s.CreateEntry(context.Background(), "alice", Entry{FoodID: 1, Quantity: 100, Date: "10/03/2026"})
	require.ErrorIs(t, err, ErrInvalidEntry)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesIsUserScoped(t *testing.T) {
	s, mock := setupMockStore(t, Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("FROM food_logs WHERE user_id = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "food_id", "quantity", "log_date"}).
			AddRow(int64(2), "alice", int64(1), 100.0, "2026-03-10"))

	entries, err := s.ListEntries(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWeeklyIsOldestFirst(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectQuery(`FROM food_logs l`).
		WithArgs("alice", "2026-03-04", "2026-03-10").
		WillReturnRows(intakeRows())

	week, err := s.Weekly(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, "2026-03-04", week[0].Date)
	assert.Equal(t, "2026-03-10", week[6].Date)
	assert.Equal(t, Intake{}, week[0].Intake)
	assert.Equal(t, Intake{Iron: 5, Calcium: 0, Protein: 10}, week[4].Intake)
	assert.Equal(t, Intake{Iron: 5.4, Calcium: 198, Protein: 5.8}, week[6].Intake)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeatures(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectQuery(`FROM food_logs l`).
		WithArgs("alice", "2026-03-04", "2026-03-10").
		WillReturnRows(intakeRows())

	f, err := s.Features(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1.49, f.AvgIron)
	assert.Equal(t, 28.29, f.AvgCalcium)
	assert.Equal(t, 2.26, f.AvgProtein)
	assert.Equal(t, 0.29, f.Consistency)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeaturesWithoutLogs(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectQuery(`FROM food_logs l`).
		WillReturnRows(sqlmock.NewRows([]string{"log_date", "iron", "calcium", "protein", "quantity"}))

	_, err := s.Features(context.Background(), "alice")
	require.ErrorIs(t, err, ErrNotEnoughData)
}

func TestGrade(t *testing.T) {
	assert.Equal(t, StatusLow, Grade(799.99, 1000))
	assert.Equal(t, StatusAdequate, Grade(800, 1000))
	assert.Equal(t, StatusAdequate, Grade(1200, 1000))
	assert.Equal(t, StatusHigh, Grade(1200.01, 1000))
}

func TestDeficiencySuggestsRegionalFoods(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectQuery(`FROM food_logs l`).
		WithArgs("alice", "2026-03-10", "2026-03-10").
		WillReturnRows(intakeRows())
	mock.ExpectQuery(`FROM food_items WHERE LOWER\(region\) = LOWER\(\?\)`).
		WithArgs("Kerala").
		WillReturnRows(foodRows())

	r, err := s.Deficiency(context.Background(), "alice", "Pregnant", "Kerala")
	require.NoError(t, err)
	assert.Equal(t, "pregnant", string(r.LifeStage))
	assert.Equal(t, Levels{Iron: StatusLow, Calcium: StatusLow, Protein: StatusLow}, r.Status)
	assert.Equal(t, []string{"Spinach", "Ragi"}, r.Suggestions["iron"])
	assert.Equal(t, DeficiencyDisclaimer, r.Disclaimer)
	assert.Empty(t, r.AIExplanation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeficiencyAdequateSkipsRegionalLookup(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectQuery(`FROM food_logs l`).
		WillReturnRows(sqlmock.NewRows([]string{"log_date", "iron", "calcium", "protein", "quantity"}).
			AddRow("2026-03-10", 9.0, 500.0, 23.0, 200.0))

	r, err := s.Deficiency(context.Background(), "alice", "unknown", "")
	require.NoError(t, err)
	assert.Equal(t, "adult", string(r.LifeStage))
	assert.Equal(t, Levels{Iron: StatusAdequate, Calcium: StatusAdequate, Protein: StatusAdequate}, r.Status)
	assert.Empty(t, r.Suggestions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPickFoodsCapsAtFive(t *testing.T) {
	foods := make([]FoodItem, 0, 8)
	for i := 0; i < 8; i++ {
		foods = append(foods, FoodItem{Name: string(rune('A' + i)), Protein: 1})
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, pickFoods(foods, "protein"))
	assert.Empty(t, pickFoods(foods, "iron"))
}

func TestDailyRoundsTodaysIntake(t *testing.T) {
	s, mock := setupMockStore(t, Postgres)

	mock.ExpectQuery(regexp.QuoteMeta(`l.user_id = $1 AND l.log_date >= $2 AND l.log_date <= $3`)).
		WithArgs("alice", "2026-03-10", "2026-03-10").
		WillReturnRows(intakeRows())

	day, err := s.Daily(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, DaySummary{Date: "2026-03-10", Intake: Intake{Iron: 5.4, Calcium: 198, Protein: 5.8}}, day)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionalUsesAdultTarget(t *testing.T) {
	s, mock := setupMockStore(t, SQLite)

	mock.ExpectQuery(`FROM food_logs l`).
		WithArgs("alice", "2026-03-10", "2026-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"log_date", "iron", "calcium", "protein", "quantity"}).
			AddRow("2026-03-10", 8.0, 100.0, 40.0, 200.0))
	mock.ExpectQuery(`FROM food_items WHERE LOWER\(region\) = LOWER\(\?\)`).
		WithArgs("kerala").
		WillReturnRows(foodRows())

	recs, err := s.Regional(context.Background(), "alice", "kerala")
	require.NoError(t, err)
	assert.Equal(t, "kerala", recs.State)
	assert.Equal(t, map[string][]string{"calcium": {"Spinach", "Ragi"}}, recs.Recommendations)
	require.NoError(t, mock.ExpectationsWereMet())
}
