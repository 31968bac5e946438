package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"fibCalc/internal/domain"
)

// CacheStats — состояние кэша мемоизированной стратегии.
type CacheStats struct {
	Entries     int
	MaxPosition int // -1, если кэш пуст
}

// IFibonacciUseCase — контракт бизнес-логики: вычисление, сравнение стратегий, история, события из Kafka.
type IFibonacciUseCase interface {
	Calculate(ctx context.Context, position int, strategy string) (*domain.Calculation, error)
	Compare(ctx context.Context, position int) (*domain.Comparison, error)
	History(ctx context.Context) ([]domain.Calculation, error)
	CacheStats(ctx context.Context) CacheStats
	HandleCalculationEvent(ctx context.Context, calc domain.Calculation) error
}
