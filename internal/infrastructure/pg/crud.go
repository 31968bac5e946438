package pg

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fibCalc/internal/domain"
	"fibCalc/internal/ports"
)

var _ ports.ICalculationRepository = (*CalculationRepo)(nil)

// CalculationRepo реализует ports.ICalculationRepository для PostgreSQL.
type CalculationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewCalculationRepo возвращает репозиторий вычислений.
func NewCalculationRepo(db *DB, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{db: db, log: log}
}

// SaveCalculation сохраняет вычисление в БД.
func (r *CalculationRepo) SaveCalculation(ctx context.Context, calc domain.Calculation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (position, strategy, value, duration_ns, cache_hit, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		calc.Position, calc.Strategy, strconv.FormatUint(calc.Value, 10),
		calc.Duration.Nanoseconds(), calc.CacheHit, calc.Timestamp)
	if err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю вычислений из БД (последние сначала).
func (r *CalculationRepo) GetHistory(ctx context.Context) ([]domain.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, position, strategy, value::TEXT, duration_ns, cache_hit, created_at
		 FROM calculations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	list := []domain.Calculation{}
	for rows.Next() {
		var (
			calc     domain.Calculation
			value    string
			duration int64
		)
		if err := rows.Scan(&calc.ID, &calc.Position, &calc.Strategy, &value, &duration, &calc.CacheHit, &calc.Timestamp); err != nil {
			return nil, err
		}
		calc.Value, err = strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", value, err)
		}
		calc.Duration = time.Duration(duration)
		list = append(list, calc)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
