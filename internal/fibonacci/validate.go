package fibonacci

import "fibCalc/internal/domain"

// ValidatePosition оборачивает функцию вычисления проверкой позиции.
// Для отрицательной позиции возвращает *domain.InvalidPositionError и f не вызывает.
func ValidatePosition[T any](f func(position int) (T, error)) func(position int) (T, error) {
	return func(position int) (T, error) {
		if position < 0 {
			var zero T
			return zero, &domain.InvalidPositionError{Position: position}
		}
		return f(position)
	}
}
