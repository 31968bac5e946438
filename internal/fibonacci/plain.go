package fibonacci

import "fibCalc/internal/domain"

// Plain — обычная рекурсия без кэша, O(2^n) вызовов. Состояния между вызовами не хранит.
type Plain struct {
	compute Func
}

// NewPlain создаёт стратегию обычной рекурсии.
func NewPlain() *Plain {
	p := &Plain{}
	p.compute = ValidatePosition(func(position int) (uint64, error) {
		return Recurrence(position, p.Compute)
	})
	return p
}

// Name возвращает название стратегии.
func (p *Plain) Name() string {
	return domain.StrategyPlain
}

// Compute вычисляет F(position); каждый рекурсивный вызов снова проходит через Compute.
func (p *Plain) Compute(position int) (uint64, error) {
	return p.compute(position)
}
