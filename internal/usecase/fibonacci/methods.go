package fibonacci

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fibCalc/internal/domain"
	"fibCalc/internal/fibonacci"
	"fibCalc/internal/ports"
)

// Calculate — проверяет лимиты, считает выбранной стратегией, сохраняет в БД и отправляет событие в брокер.
func (u *UseCase) Calculate(ctx context.Context, position int, strategy string) (*domain.Calculation, error) {
	if err := u.checkLimits(position, strategy); err != nil {
		return nil, err
	}

	start := time.Now()
	value, hit, err := u.compute(position, strategy)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}
	observeComputation(strategy, hit, elapsed.Seconds())

	calc := domain.Calculation{
		Position:  position,
		Strategy:  strategy,
		Value:     value,
		Duration:  elapsed,
		CacheHit:  hit,
		Timestamp: time.Now(),
	}

	key := eventKey(strategy, position)
	if u.repo != nil {
		if err := u.repo.SaveCalculation(ctx, calc); err != nil {
			return nil, fmt.Errorf("save calculation: %w", err)
		}
		u.log.Info("calculation saved", "key", key, "value", value, "cache_hit", hit)
	}

	if u.broker != nil {
		payload, err := json.Marshal(calc)
		if err != nil {
			return nil, err
		}
		if err := u.broker.Send(ctx, []byte(key), payload); err != nil {
			u.log.Warn("broker send", "key", key, "error", err)
		} else {
			u.log.Info("calculation published", "key", key)
		}
	}

	return &calc, nil
}

// Compare — прогоняет обе стратегии для одной позиции: сначала memo, затем plain.
func (u *UseCase) Compare(ctx context.Context, position int) (*domain.Comparison, error) {
	if err := u.checkLimits(position, domain.StrategyPlain); err != nil {
		return nil, err
	}

	cmp := domain.Comparison{Position: position}

	start := time.Now()
	memoValue, hit, err := u.compute(position, domain.StrategyMemo)
	cmp.MemoDuration = time.Since(start)
	if err != nil {
		return nil, err
	}
	observeComputation(domain.StrategyMemo, hit, cmp.MemoDuration.Seconds())

	start = time.Now()
	plainValue, _, err := u.compute(position, domain.StrategyPlain)
	cmp.PlainDuration = time.Since(start)
	if err != nil {
		return nil, err
	}
	observeComputation(domain.StrategyPlain, false, cmp.PlainDuration.Seconds())

	cmp.MemoValue, cmp.PlainValue = memoValue, plainValue
	if !cmp.Equal() {
		u.log.Error("strategies disagree", "position", position, "memo", memoValue, "plain", plainValue)
	}
	u.log.Info("comparison done", "position", position,
		"memo", cmp.MemoDuration, "plain", cmp.PlainDuration, "speedup", cmp.Speedup())

	return &cmp, nil
}

// History — история вычислений (обвязка над репозиторием). Без репозитория история пустая.
func (u *UseCase) History(ctx context.Context) ([]domain.Calculation, error) {
	if u.repo == nil {
		return []domain.Calculation{}, nil
	}
	return u.repo.GetHistory(ctx)
}

// CacheStats — размер кэша memo и наибольшая закэшированная позиция.
func (u *UseCase) CacheStats(_ context.Context) ports.CacheStats {
	u.mu.Lock()
	defer u.mu.Unlock()

	stats := ports.CacheStats{Entries: u.memo.Len(), MaxPosition: -1}
	if positions := u.memo.Positions(); len(positions) > 0 {
		stats.MaxPosition = positions[len(positions)-1]
	}
	return stats
}

// HandleCalculationEvent вызывается консьюмером при получении события из топика вычислений.
// События с позицией вне 0..MaxPosition пропускаются: повтор их не исправит.
func (u *UseCase) HandleCalculationEvent(ctx context.Context, calc domain.Calculation) error {
	if u.analytics == nil {
		return nil
	}
	if calc.Position < 0 || calc.Position > fibonacci.MaxPosition {
		u.log.Warn("analytics event skipped: position out of range", "position", calc.Position, "strategy", calc.Strategy)
		return nil
	}
	if err := u.analytics.WriteCalculation(ctx, calc); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("calculation stored to click", "position", calc.Position, "strategy", calc.Strategy, "value", calc.Value)
	return nil
}

// checkLimits отсекает позиции, которые не помещаются в uint64 или слишком долго считаются plain.
// Отрицательные позиции пропускаются дальше: их отклоняет валидатор стратегии.
func (u *UseCase) checkLimits(position int, strategy string) error {
	if position > fibonacci.MaxPosition {
		return fmt.Errorf("%w: %d > %d", domain.ErrPositionTooLarge, position, fibonacci.MaxPosition)
	}
	if strategy == domain.StrategyPlain && u.limits.PlainMaxPosition > 0 && position > u.limits.PlainMaxPosition {
		return fmt.Errorf("%w: %d > %d for plain strategy", domain.ErrPositionTooLarge, position, u.limits.PlainMaxPosition)
	}
	return nil
}

// compute считает значение выбранной стратегией; hit — значение уже было в кэше memo.
func (u *UseCase) compute(position int, strategy string) (value uint64, hit bool, err error) {
	st, err := u.strategies.Lookup(strategy)
	if err != nil {
		return 0, false, err
	}
	if st.Name() != domain.StrategyMemo {
		value, err = st.Compute(position)
		return value, false, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	_, hit = u.memo.Cached(position)
	value, err = st.Compute(position)
	memoCacheEntries.Set(float64(u.memo.Len()))
	return value, hit, err
}
