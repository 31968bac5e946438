package fibonacci

import (
	"log/slog"
	"strconv"
	"sync"

	"fibCalc/internal/fibonacci"
	"fibCalc/internal/ports"
)

// Limits — ограничения сервиса на позицию. Переменные: FIBONACCI_LIMITS_PLAIN_MAX_POSITION.
type Limits struct {
	PlainMaxPosition int `split_words:"true" default:"35"`
}

// eventKey формирует ключ события для брокера, например "memo:30".
func eventKey(strategy string, position int) string {
	return strategy + ":" + strconv.Itoa(position)
}

var _ ports.IFibonacciUseCase = (*UseCase)(nil)

// UseCase — бизнес-логика вычисления чисел Фибоначчи.
// Memo не потокобезопасен, поэтому все обращения к нему идут под mu.
type UseCase struct {
	strategies fibonacci.Strategies

	mu   sync.Mutex
	memo *fibonacci.Memo

	limits    Limits
	repo      ports.ICalculationRepository
	broker    ports.IProducer
	analytics ports.ICalculationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс. repo, broker и analytics могут быть nil — тогда соответствующий шаг пропускается.
func New(repo ports.ICalculationRepository, broker ports.IProducer, analytics ports.ICalculationAnalytics, limits Limits, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	plain, memo := fibonacci.NewPlain(), fibonacci.NewMemo()
	return &UseCase{
		strategies: fibonacci.Strategies{plain.Name(): plain, memo.Name(): memo},
		memo:       memo,
		limits:     limits,
		repo:       repo,
		broker:     broker,
		analytics:  analytics,
		log:        log,
	}
}
