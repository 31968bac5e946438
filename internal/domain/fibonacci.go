package domain

import (
	"errors"
	"time"
)

// ErrInvalidArgument — вид ошибки для некорректных входных данных (отрицательная позиция).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownStrategy возвращается, когда стратегия вычисления не поддерживается.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrPositionTooLarge возвращается, когда позиция превышает лимиты сервиса.
var ErrPositionTooLarge = errors.New("position too large")

// InvalidPositionError — отказ валидатора: позиция отрицательная.
type InvalidPositionError struct {
	Position int
}

func (e *InvalidPositionError) Error() string {
	return "Position must be non-negative"
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidArgument).
func (e *InvalidPositionError) Unwrap() error {
	return ErrInvalidArgument
}

// Названия стратегий.
const (
	StrategyPlain = "plain"
	StrategyMemo  = "memo"
)

// Calculation — запись об одном вычислении числа Фибоначчи.
type Calculation struct {
	ID        int           `json:"id"`
	Position  int           `json:"position"`
	Strategy  string        `json:"strategy"`
	Value     uint64        `json:"value"`
	Duration  time.Duration `json:"duration_ns"`
	CacheHit  bool          `json:"cache_hit"`
	Timestamp time.Time     `json:"timestamp"`
}

// Comparison — результат прогона обеих стратегий для одной позиции.
type Comparison struct {
	Position      int
	PlainValue    uint64
	MemoValue     uint64
	PlainDuration time.Duration
	MemoDuration  time.Duration
}

// Equal сообщает, совпали ли результаты стратегий.
func (c Comparison) Equal() bool {
	return c.PlainValue == c.MemoValue
}

// Speedup — во сколько раз мемоизированная стратегия быстрее обычной.
// Если memo отработал быстрее разрешения таймера, возвращает 0.
func (c Comparison) Speedup() float64 {
	if c.MemoDuration <= 0 {
		return 0
	}
	return float64(c.PlainDuration) / float64(c.MemoDuration)
}
