package pg

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibCalc/internal/domain"
	"fibCalc/internal/pkg/testutil"
)

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupPgDB поднимает PostgreSQL, подключается через наш модуль и накатывает миграцию.
func setupPgDB(t *testing.T) *DB {
	t.Helper()

	c := testutil.StartPostgres(t)

	db, err := New(&Config{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Name:     c.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось создать pg.DB")
	t.Cleanup(func() {
		db.Close()
	})

	require.NoError(t, Migrate(context.Background(), db), "не удалось создать таблицу calculations")
	return db
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "u", Password: "p", Name: "fib", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=fib sslmode=disable", cfg.DSN())
}

func TestPgRepo_SaveCalculation(t *testing.T) {
	db := setupPgDB(t)
	repo := NewCalculationRepo(db, newTestLogger())
	ctx := context.Background()

	calc := domain.Calculation{
		Position:  30,
		Strategy:  domain.StrategyMemo,
		Value:     1346269,
		Duration:  120 * time.Microsecond,
		Timestamp: time.Now(),
	}

	require.NoError(t, repo.SaveCalculation(ctx, calc), "SaveCalculation должен успешно сохранить")

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM calculations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "в таблице должна быть 1 запись")
}

func TestPgRepo_GetHistory(t *testing.T) {
	db := setupPgDB(t)
	repo := NewCalculationRepo(db, newTestLogger())
	ctx := context.Background()

	calcs := []domain.Calculation{
		{Position: 5, Strategy: "plain", Value: 8, Timestamp: time.Now().Add(-2 * time.Second)},
		{Position: 10, Strategy: "memo", Value: 89, CacheHit: true, Timestamp: time.Now().Add(-1 * time.Second)},
		// значение больше MaxInt64 — проверка NUMERIC-колонки
		{Position: 92, Strategy: "memo", Value: 12200160415121876738, Duration: time.Millisecond, Timestamp: time.Now()},
	}
	for _, calc := range calcs {
		require.NoError(t, repo.SaveCalculation(ctx, calc))
	}

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")
	require.Len(t, history, 3)

	// последние сначала
	assert.Equal(t, uint64(12200160415121876738), history[0].Value)
	assert.Equal(t, time.Millisecond, history[0].Duration)
	assert.Equal(t, uint64(89), history[1].Value)
	assert.True(t, history[1].CacheHit)
	assert.Equal(t, uint64(8), history[2].Value)
	assert.NotZero(t, history[0].ID, "ID должен быть назначен")
}

func TestPgRepo_GetHistory_Empty(t *testing.T) {
	db := setupPgDB(t)
	repo := NewCalculationRepo(db, newTestLogger())

	history, err := repo.GetHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPgRepo_Ping(t *testing.T) {
	db := setupPgDB(t)
	repo := NewCalculationRepo(db, newTestLogger())

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestNew_Unreachable(t *testing.T) {
	_, err := New(&Config{Host: "127.0.0.1", Port: "1", User: "x", Password: "x", Name: "x", SSLMode: "disable"})
	assert.Error(t, err)
}
