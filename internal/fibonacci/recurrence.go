// Package fibonacci — вычисление чисел Фибоначчи двумя стратегиями (обычная рекурсия и рекурсия
// с мемоизацией) поверх одной реализации рекуррентного соотношения.
//
// Нумерация: F(0) = F(1) = 1, то есть последовательность 1, 1, 2, 3, 5, ...
package fibonacci

// MaxPosition — наибольшая позиция, значение которой помещается в uint64.
const MaxPosition = 92

// Func — вычисление значения по позиции. Через Func рекуррентное соотношение
// делегирует подзадачи выбранной стратегии.
type Func func(position int) (uint64, error)

// Recurrence реализует F(n) = F(n-1) + F(n-2) с F(0) = F(1) = 1.
// Подзадачи решает recurse; сама функция не валидирует вход и ничего не кэширует.
func Recurrence(position int, recurse Func) (uint64, error) {
	if position == 0 || position == 1 {
		return 1, nil
	}
	a, err := recurse(position - 1)
	if err != nil {
		return 0, err
	}
	b, err := recurse(position - 2)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}
