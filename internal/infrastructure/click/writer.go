package click

import (
	"context"
	"fmt"

	"fibCalc/internal/domain"
	"fibCalc/internal/ports"
)

const calculationsAnalytics = "calculations_analytics"

var _ ports.ICalculationAnalytics = (*CalculationWriter)(nil)

// CalculationWriter записывает вычисления в ClickHouse для аналитики (GROUP BY strategy, cache_hit, по времени).
type CalculationWriter struct {
	db *Client
}

// NewCalculationWriter создаёт писатель вычислений для аналитики.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db}
}

func (w *CalculationWriter) table() string {
	return w.db.database + "." + calculationsAnalytics
}

// EnsureTable создаёт таблицу аналитики, если её ещё нет. Вызови один раз при старте приложения.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			position Int32,
			strategy LowCardinality(String),
			value UInt64,
			duration_ns Int64,
			cache_hit Bool,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, strategy)
		PARTITION BY toYYYYMM(created_at)`,
		w.table(),
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.ICalculationAnalytics: пишет одно вычисление в ClickHouse.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, calc domain.Calculation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (position, strategy, value, duration_ns, cache_hit, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		w.table(),
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		int32(calc.Position), calc.Strategy, calc.Value, calc.Duration.Nanoseconds(), calc.CacheHit, calc.Timestamp)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}
