package fibonacci

import (
	"sort"

	"fibCalc/internal/domain"
)

// Memo — рекурсия с мемоизацией: каждая позиция считается один раз, дальше берётся из кэша за O(1).
// Кэш растёт монотонно и живёт столько же, сколько Memo. Без внешней синхронизации
// Memo нельзя вызывать из нескольких горутин.
type Memo struct {
	cache   map[int]uint64
	compute Func
	recurse Func // подзадачи рекуррентного соотношения, по умолчанию Compute
}

// NewMemo создаёт стратегию с пустым кэшем.
func NewMemo() *Memo {
	m := &Memo{cache: make(map[int]uint64)}
	m.compute = ValidatePosition(m.lookup)
	m.recurse = m.Compute
	return m
}

// Name возвращает название стратегии.
func (m *Memo) Name() string {
	return domain.StrategyMemo
}

// Compute вычисляет F(position). Рекурсивные вызовы возвращаются в Compute,
// поэтому проходят и валидатор, и кэш.
func (m *Memo) Compute(position int) (uint64, error) {
	return m.compute(position)
}

func (m *Memo) lookup(position int) (uint64, error) {
	if v, ok := m.cache[position]; ok {
		return v, nil
	}
	v, err := Recurrence(position, m.recurse)
	if err != nil {
		return 0, err
	}
	m.cache[position] = v
	return v, nil
}

// Cached возвращает значение из кэша без вычисления.
func (m *Memo) Cached(position int) (uint64, bool) {
	v, ok := m.cache[position]
	return v, ok
}

// Len — количество позиций в кэше.
func (m *Memo) Len() int {
	return len(m.cache)
}

// Positions возвращает закэшированные позиции по возрастанию.
func (m *Memo) Positions() []int {
	out := make([]int, 0, len(m.cache))
	for p := range m.cache {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
