package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"fibCalc/internal/domain"
)

// ICalculationRepository — контракт сохранения и чтения истории вычислений.
type ICalculationRepository interface {
	SaveCalculation(ctx context.Context, calc domain.Calculation) error
	GetHistory(ctx context.Context) ([]domain.Calculation, error)
	Ping(ctx context.Context) error
}
