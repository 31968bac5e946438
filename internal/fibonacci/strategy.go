package fibonacci

import (
	"fmt"

	"fibCalc/internal/domain"
)

// Strategy — способ вычисления F(position).
type Strategy interface {
	Name() string
	Compute(position int) (uint64, error)
}

var (
	_ Strategy = (*Plain)(nil)
	_ Strategy = (*Memo)(nil)
)

// Strategies — набор стратегий по имени.
type Strategies map[string]Strategy

// NewStrategies возвращает обе стратегии; кэш memo общий для всех вызовов через этот набор.
func NewStrategies() Strategies {
	plain, memo := NewPlain(), NewMemo()
	return Strategies{plain.Name(): plain, memo.Name(): memo}
}

// Lookup возвращает стратегию по имени или domain.ErrUnknownStrategy.
func (s Strategies) Lookup(name string) (Strategy, error) {
	st, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStrategy, name)
	}
	return st, nil
}
